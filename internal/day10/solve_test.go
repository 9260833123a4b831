package day10

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func TestSolve_Samples(t *testing.T) {
	tests := []struct {
		file string
		want puzzle.Answer
	}{
		{"testdata/small.txt", puzzle.Answer{Part1: 7 * 5, Part2: 8}},
		{"testdata/large.txt", puzzle.Answer{Part1: 22 * 10, Part2: 19208}},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			in, err := os.ReadFile(tt.file)
			require.NoError(t, err)

			ans, err := Solve(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ans)
		})
	}
}

func TestChain(t *testing.T) {
	chain := Chain([]int{16, 10, 15, 5, 1, 11, 7, 19, 6, 12, 4})
	assert.Equal(t, []int{0, 1, 4, 5, 6, 7, 10, 11, 12, 15, 16, 19, 22}, chain)

	distr, err := Distribution(chain)
	require.NoError(t, err)
	assert.Equal(t, [MaxStep]int{7, 0, 5}, distr)
}

func TestDistribution_Gap(t *testing.T) {
	_, err := Distribution(Chain([]int{1, 8}))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Distribution(Chain([]int{1, 1}))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
