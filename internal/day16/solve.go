// Package day16 solves "Ticket Translation".
package day16

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// DeparturePrefix selects the fields multiplied together for part 2.
const DeparturePrefix = "departure"

// Range is an inclusive interval.
type Range struct{ Lo, Hi int }

func (r Range) Contains(v int) bool { return r.Lo <= v && v <= r.Hi }

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

// RangeSet is a sorted list of disjoint, non-adjacent ranges.
type RangeSet []Range

// NewRangeSet sorts ranges by start and merges overlapping or touching ones.
func NewRangeSet(ranges []Range) RangeSet {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int { return a.Lo - b.Lo })

	merged := RangeSet{}
	for i := 0; i < len(sorted); {
		cur := sorted[i]
		i++
		for i < len(sorted) && sorted[i].Lo <= cur.Hi+1 {
			cur.Hi = max(cur.Hi, sorted[i].Hi)
			i++
		}
		merged = append(merged, cur)
	}
	return merged
}

func (s RangeSet) Contains(v int) bool {
	for _, r := range s {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// Rule names a ticket field and its two valid ranges.
type Rule struct {
	Name   string
	Ranges [2]Range
}

func (r Rule) Valid(v int) bool {
	return r.Ranges[0].Contains(v) || r.Ranges[1].Contains(v)
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, puzzle.Malformed("range %q", s)
	}
	a, err := input.Atoi[int](lo)
	if err != nil {
		return Range{}, err
	}
	b, err := input.Atoi[int](hi)
	if err != nil {
		return Range{}, err
	}
	if a > b {
		return Range{}, puzzle.Malformed("empty range %q", s)
	}
	return Range{a, b}, nil
}

// ParseRule reads "departure location: 26-724 or 743-964".
func ParseRule(s string) (Rule, error) {
	name, rest, ok := strings.Cut(s, ": ")
	if !ok {
		return Rule{}, puzzle.Malformed("rule %q", s)
	}
	first, second, ok := strings.Cut(rest, " or ")
	if !ok {
		return Rule{}, puzzle.Malformed("rule %q", s)
	}
	r := Rule{Name: name}
	var err error
	if r.Ranges[0], err = parseRange(first); err != nil {
		return Rule{}, err
	}
	if r.Ranges[1], err = parseRange(second); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Ticket is a list of field values.
type Ticket []int

// ParseTicket reads a comma separated line of values.
func ParseTicket(s string) (Ticket, error) {
	return input.Ints[int](strings.Split(s, ","))
}

// Notes is the whole puzzle input.
type Notes struct {
	Rules  []Rule
	Mine   Ticket
	Nearby []Ticket
}

// Parse reads the rules, "your ticket:" and "nearby tickets:" sections.
func Parse(in []byte) (*Notes, error) {
	blocks := input.Blocks(strings.TrimRight(string(in), "\n"))
	if len(blocks) != 3 {
		return nil, puzzle.Malformed("want 3 sections, got %d", len(blocks))
	}
	n := &Notes{}
	for _, line := range strings.Split(blocks[0], "\n") {
		r, err := ParseRule(line)
		if err != nil {
			return nil, err
		}
		n.Rules = append(n.Rules, r)
	}

	mine, ok := strings.CutPrefix(blocks[1], "your ticket:\n")
	if !ok {
		return nil, puzzle.Malformed("missing \"your ticket:\" section")
	}
	t, err := ParseTicket(mine)
	if err != nil {
		return nil, fmt.Errorf("your ticket: %w", err)
	}
	n.Mine = t

	nearby, ok := strings.CutPrefix(blocks[2], "nearby tickets:")
	if !ok {
		return nil, puzzle.Malformed("missing \"nearby tickets:\" section")
	}
	for i, line := range strings.Split(strings.TrimPrefix(nearby, "\n"), "\n") {
		if line == "" {
			continue
		}
		t, err := ParseTicket(line)
		if err != nil {
			return nil, fmt.Errorf("nearby ticket %d: %w", i+1, err)
		}
		if len(t) != len(n.Rules) {
			return nil, puzzle.Malformed("nearby ticket %d has %d fields, want %d", i+1, len(t), len(n.Rules))
		}
		n.Nearby = append(n.Nearby, t)
	}
	if len(n.Mine) != len(n.Rules) {
		return nil, puzzle.Malformed("your ticket has %d fields, want %d", len(n.Mine), len(n.Rules))
	}
	return n, nil
}

// RangeSet merges every rule's ranges.
func (n *Notes) RangeSet() RangeSet {
	ranges := make([]Range, 0, 2*len(n.Rules))
	for _, r := range n.Rules {
		ranges = append(ranges, r.Ranges[:]...)
	}
	return NewRangeSet(ranges)
}

// ErrorRate sums the nearby values that fit no rule at all.
func (n *Notes) ErrorRate() int {
	set := n.RangeSet()
	rate := 0
	for _, t := range n.Nearby {
		for _, v := range t {
			if !set.Contains(v) {
				rate += v
			}
		}
	}
	return rate
}

// ValidTickets drops nearby tickets with any value outside every rule.
func (n *Notes) ValidTickets() []Ticket {
	set := n.RangeSet()
	var valid []Ticket
	for _, t := range n.Nearby {
		if !slices.ContainsFunc(t, func(v int) bool { return !set.Contains(v) }) {
			valid = append(valid, t)
		}
	}
	return valid
}

// Assign returns, for each field position, the index of the rule that
// describes it. Candidates are rules valid for every value in the column;
// positions with fewer candidates are tried first and the search backtracks.
func (n *Notes) Assign() ([]int, error) {
	tickets := n.ValidTickets()
	type column struct {
		pos        int
		candidates []int
	}
	cols := make([]column, len(n.Rules))
	for pos := range cols {
		cols[pos].pos = pos
		for ri, r := range n.Rules {
			ok := true
			for _, t := range tickets {
				if !r.Valid(t[pos]) {
					ok = false
					break
				}
			}
			if ok {
				cols[pos].candidates = append(cols[pos].candidates, ri)
			}
		}
	}
	slices.SortStableFunc(cols, func(a, b column) int {
		return len(a.candidates) - len(b.candidates)
	})

	used := make([]bool, len(n.Rules))
	chosen := make([]int, len(cols))
	var search func(i int) bool
	search = func(i int) bool {
		if i == len(cols) {
			return true
		}
		for _, ri := range cols[i].candidates {
			if used[ri] {
				continue
			}
			used[ri] = true
			chosen[i] = ri
			if search(i + 1) {
				return true
			}
			used[ri] = false
		}
		return false
	}
	if !search(0) {
		return nil, puzzle.NoSolution("no rule assignment fits every column")
	}

	assignment := make([]int, len(cols))
	for i, c := range cols {
		assignment[c.pos] = chosen[i]
	}
	return assignment, nil
}

// Solve reports the scanning error rate and the departure product.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	notes, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans := puzzle.Answer{Part1: int64(notes.ErrorRate())}

	assignment, err := notes.Assign()
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans.Part2 = 1
	for pos, ri := range assignment {
		if strings.HasPrefix(notes.Rules[ri].Name, DeparturePrefix) {
			ans.Part2 *= int64(notes.Mine[pos])
		}
	}
	slog.Debug("ticket fields", "rules", len(notes.Rules), "nearby", len(notes.Nearby), "assignment", assignment)
	return ans, nil
}
