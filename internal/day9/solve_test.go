package day9

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

func loadSample(t *testing.T) []uint64 {
	t.Helper()
	in, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)
	nums, err := input.Ints[uint64](input.StringLines(string(in)))
	require.NoError(t, err)
	return nums
}

func TestSolveWith_Sample(t *testing.T) {
	ans, err := SolveWith(loadSample(t), 5)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 127, Part2: 62}, ans)
}

func TestFindInvalid(t *testing.T) {
	idx, v, ok := FindInvalid(loadSample(t), 5)
	require.True(t, ok)
	assert.Equal(t, 14, idx)
	assert.Equal(t, uint64(127), v)

	// 1..25 then 26, 49, 100: 100 is the first number with no pair.
	nums := make([]uint64, 0, 28)
	for i := uint64(1); i <= 25; i++ {
		nums = append(nums, i)
	}
	nums = append(nums, 26, 49, 100)
	_, v, ok = FindInvalid(nums, Preamble)
	require.True(t, ok)
	assert.Equal(t, uint64(100), v)

	// A value that is only twice a window member is not a valid sum.
	_, v, ok = FindInvalid([]uint64{1, 5, 10}, 2)
	require.True(t, ok)
	assert.Equal(t, uint64(10), v)

	_, _, ok = FindInvalid([]uint64{1, 2, 3}, 2)
	assert.False(t, ok)
}

func TestFindContiguousSum(t *testing.T) {
	run, ok := FindContiguousSum(loadSample(t)[:14], 127)
	require.True(t, ok)
	assert.Equal(t, []uint64{15, 25, 47, 40}, run)

	_, ok = FindContiguousSum([]uint64{7, 1}, 7)
	assert.False(t, ok, "a single number is not a run")
}

func TestSolve_Errors(t *testing.T) {
	_, err := Solve(context.Background(), []byte("1\nx\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Solve(context.Background(), []byte("1\n2\n"))
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)
}
