package day12

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func TestSolve_Sample(t *testing.T) {
	in, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	ans, err := Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 25, Part2: 286}, ans)
}

func TestShips_Trace(t *testing.T) {
	ship, wp := NewShip(), NewWaypointShip()
	for _, s := range []string{"F10", "N3", "F7", "R90", "F11"} {
		a, err := ParseAction(s)
		require.NoError(t, err)
		ship, wp = ship.Apply(a), wp.Apply(a)
	}
	assert.Equal(t, Ship{Pos: Point{17, -8}, Heading: South}, ship)
	assert.Equal(t, WaypointShip{Pos: Point{214, -72}, Waypoint: Point{4, -10}}, wp)
}

func TestParseAction_Rotations(t *testing.T) {
	tests := []struct {
		in   string
		want Point
	}{
		{"L90", North},
		{"L180", West},
		{"L270", South},
		{"R90", South},
		{"R180", West},
		{"R270", North},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			a, err := ParseAction(tt.in)
			require.NoError(t, err)
			assert.Equal(t, Rotate, a.Kind)
			assert.Equal(t, tt.want, East.Mul(a.Delta))
		})
	}
}

func TestParseAction_Errors(t *testing.T) {
	for _, s := range []string{"", "F", "L45", "X10", "Nfoo"} {
		_, err := ParseAction(s)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, s)
	}
}
