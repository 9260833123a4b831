package day7

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func TestSolve_Sample(t *testing.T) {
	in, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	ans, err := Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 4, Part2: 32}, ans)
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		line string
		want Rule
	}{
		{
			"light red bags contain 1 bright white bag, 2 muted yellow bags.",
			Rule{Bag: "light red", Contains: []Content{{1, "bright white"}, {2, "muted yellow"}}},
		},
		{
			"faded blue bags contain no other bags.",
			Rule{Bag: "faded blue"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.want.Bag, func(t *testing.T) {
			got, err := ParseRule(tt.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseRule mismatch (-want +got):\n%s", diff)
			}
		})
	}

	r, err := ParseRule("light red bags contain 1 bright white bag, 2 muted yellow bags.")
	require.NoError(t, err)
	assert.Equal(t, "light red => [1 bright white, 2 muted yellow]", r.String())
}

func TestCountContained_Deep(t *testing.T) {
	g, err := NewGraph([]Rule{
		{Bag: "shiny gold", Contains: []Content{{2, "dark red"}}},
		{Bag: "dark red", Contains: []Content{{2, "dark orange"}}},
		{Bag: "dark orange", Contains: []Content{{2, "dark yellow"}}},
		{Bag: "dark yellow", Contains: []Content{{2, "dark green"}}},
		{Bag: "dark green", Contains: []Content{{2, "dark blue"}}},
		{Bag: "dark blue", Contains: []Content{{2, "dark violet"}}},
		{Bag: "dark violet"},
	})
	require.NoError(t, err)

	n, err := g.CountContained(Target)
	require.NoError(t, err)
	assert.Equal(t, int64(126), n)
}

func TestGraph_Errors(t *testing.T) {
	_, err := NewGraph([]Rule{{Bag: "a", Contains: []Content{{1, "ghost"}}}})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	g, err := NewGraph([]Rule{
		{Bag: "a", Contains: []Content{{1, "b"}}},
		{Bag: "b", Contains: []Content{{1, "a"}}},
	})
	require.NoError(t, err)
	_, err = g.CountContained("a")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = g.CountContainers(Target)
	assert.ErrorIs(t, err, puzzle.ErrNoSolution)

	_, err = ParseRule("nonsense")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
