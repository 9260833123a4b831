package day11

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func loadGrid(t *testing.T) *Grid {
	t.Helper()
	in, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	g, err := Parse(in)
	require.NoError(t, err)
	return g
}

func TestSolve_Sample(t *testing.T) {
	in, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	ans, err := Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 37, Part2: 26}, ans)
}

func TestLayout_AdjacentRounds(t *testing.T) {
	l := NewLayout(loadGrid(t), false, 4)

	require.True(t, l.Step())
	want1 := strings.Join([]string{
		"#.##.##.##",
		"#######.##",
		"#.#.#..#..",
		"####.##.##",
		"#.##.##.##",
		"#.#####.##",
		"..#.#.....",
		"##########",
		"#.######.#",
		"#.#####.##",
	}, "\n")
	assert.Equal(t, want1, l.String())

	require.True(t, l.Step())
	want2 := strings.Join([]string{
		"#.LL.L#.##",
		"#LLLLLL.L#",
		"L.L.L..L..",
		"#LLL.LL.L#",
		"#.LL.LL.LL",
		"#.LLLL#.##",
		"..L.L.....",
		"#LLLLLLLL#",
		"#.LLLLLL.L",
		"#.#LLLL.##",
	}, "\n")
	assert.Equal(t, want2, l.String())

	l.Settle()
	assert.Equal(t, 37, l.Occupied())
	assert.False(t, l.Step())
}

func TestGrid_Neighbors(t *testing.T) {
	g, err := Parse([]byte("L.L.L\n.....\nL.L.L\n"))
	require.NoError(t, err)

	// The top-left seat sees right, down and diagonally down-right.
	assert.ElementsMatch(t, []int{2, 10, 12}, g.neighbors(true)[0])
	assert.Empty(t, g.neighbors(false)[0])
	// The bottom-middle seat sees every other seat and touches none.
	assert.ElementsMatch(t, []int{0, 2, 4, 10, 14}, g.neighbors(true)[12])
	assert.Empty(t, g.neighbors(false)[12])
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Parse([]byte("LL\nL\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
