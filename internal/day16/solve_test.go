package day16

import (
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func load(t *testing.T, name string) []byte {
	t.Helper()
	in, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return in
}

func TestNewRangeSet(t *testing.T) {
	tests := []struct {
		name string
		in   []Range
		want RangeSet
	}{
		{"empty", nil, RangeSet{}},
		{"disjoint", []Range{{12, 13}, {5, 10}}, RangeSet{{5, 10}, {12, 13}}},
		{"overlap", []Range{{11, 13}, {9, 11}, {5, 10}}, RangeSet{{5, 13}}},
		{"touching", []Range{{12, 13}, {9, 11}, {5, 10}}, RangeSet{{5, 13}}},
		{"gap", []Range{{12, 13}, {9, 11}, {5, 7}}, RangeSet{{5, 7}, {9, 13}}},
		{"nested", []Range{{10, 11}, {8, 13}, {3, 6}}, RangeSet{{3, 6}, {8, 13}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NewRangeSet(tt.in)); diff != "" {
				t.Errorf("NewRangeSet mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("departure location: 26-724 or 743-964")
	require.NoError(t, err)
	assert.Equal(t, Rule{Name: "departure location", Ranges: [2]Range{{26, 724}, {743, 964}}}, r)

	for _, bad := range []string{"no colon", "a: 1-2", "a: 1-2 or 5", "a: 3-1 or 5-6"} {
		_, err := ParseRule(bad)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}
}

func TestParseTicket(t *testing.T) {
	got, err := ParseTicket("242,255,344,634,710,124,813,241,697,342,600,637,202,421,75,195,496,470,806,554")
	require.NoError(t, err)
	assert.Equal(t, Ticket{242, 255, 344, 634, 710, 124, 813, 241, 697, 342, 600, 637, 202, 421, 75, 195, 496, 470, 806, 554}, got)
}

func TestSolve_Sample(t *testing.T) {
	ans, err := Solve(context.Background(), load(t, "sample.txt"))
	require.NoError(t, err)
	// No departure fields: the product is empty.
	assert.Equal(t, puzzle.Answer{Part1: 4 + 55 + 12, Part2: 1}, ans)
}

func TestAssign(t *testing.T) {
	notes, err := Parse(load(t, "fields.txt"))
	require.NoError(t, err)
	assert.Len(t, notes.ValidTickets(), 3)

	assignment, err := notes.Assign()
	require.NoError(t, err)
	// Positions hold row, class, seat.
	assert.Equal(t, []int{1, 0, 2}, assignment)

	ans, err := Solve(context.Background(), load(t, "fields.txt"))
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Part1: 0, Part2: 11 * 13}, ans)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("a: 1-2 or 3-4\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Parse([]byte("a: 1-2 or 3-4\n\nyour ticket:\n1,2\n\nnearby tickets:\n1\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
