package days

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func TestRegistry_AllDays(t *testing.T) {
	reg := Registry()
	require.Equal(t, 19, reg.Len())

	for i, d := range reg.Days() {
		assert.Equal(t, i+1, d.Number(), d.Name)
		assert.NotEmpty(t, d.Title, d.Name)
	}

	_, err := reg.Lookup("day20")
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

// Every solver's own sample, run through the registry.
func TestRegistry_Samples(t *testing.T) {
	tests := []struct {
		day  string
		file string
		want puzzle.Answer
	}{
		{"day1", "sample.txt", puzzle.Answer{Part1: 514579, Part2: 241861950}},
		{"day6", "sample.txt", puzzle.Answer{Part1: 11, Part2: 6}},
		{"day7", "sample.txt", puzzle.Answer{Part1: 4, Part2: 32}},
		{"day12", "sample.txt", puzzle.Answer{Part1: 25, Part2: 286}},
		{"day13", "sample.txt", puzzle.Answer{Part1: 295, Part2: 1068781}},
		{"day19", "sample.txt", puzzle.Answer{Part1: 3, Part2: 12}},
	}
	reg := Registry()
	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			d, err := reg.Lookup(tt.day)
			require.NoError(t, err)

			in, err := os.ReadFile(filepath.Join("..", tt.day, "testdata", tt.file))
			require.NoError(t, err)

			ans, err := d.Solve(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ans)
		})
	}
}
