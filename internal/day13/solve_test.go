package day13

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
	assert.Equal(t, puzzle.Answer{Part1: 295, Part2: 1068781}, ans)
}

func TestEGCD(t *testing.T) {
	x, y, d := EGCD(240, 46)
	assert.Equal(t, int64(-9), x)
	assert.Equal(t, int64(47), y)
	assert.Equal(t, int64(2), d)
	assert.Equal(t, d, 240*x+46*y)
}

func TestModInv(t *testing.T) {
	inv, ok := ModInv(5, 9)
	require.True(t, ok)
	assert.Equal(t, int64(2), inv)

	_, ok = ModInv(6, 9)
	assert.False(t, ok)
}

func TestCRT(t *testing.T) {
	x, err := CRT([]int64{2, 3, 2}, []int64{3, 5, 7})
	require.NoError(t, err)
	assert.Equal(t, int64(23), x)

	_, err = CRT([]int64{1, 2}, []int64{4, 6})
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		schedule string
		want     int64
	}{
		{"17,x,13,19", 3417},
		{"67,7,59,61", 754018},
		{"67,x,7,59,61", 779210},
		{"67,7,x,59,61", 1261476},
		{"1789,37,47,1889", 1202161486},
		// Moduli whose product is close to 2^60.
		{"1000003,1000033,1000037", 0},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			buses, err := ParseSchedule(tt.schedule)
			require.NoError(t, err)
			got, err := Alignment(buses)
			require.NoError(t, err)
			if tt.want != 0 {
				assert.Equal(t, tt.want, got)
			}
			for _, b := range buses {
				assert.Zero(t, (got+b.Offset)%b.ID, "bus %d", b.ID)
			}
		})
	}
}

func TestParseSchedule_Errors(t *testing.T) {
	for _, s := range []string{"x,x", "7,a", "0,3"} {
		_, err := ParseSchedule(s)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, s)
	}
}
