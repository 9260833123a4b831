// Package day1 solves "Report Repair": find the expense entries that sum to
// 2020.
package day1

import (
	"context"
	"log/slog"
	"slices"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/timer"
)

// Year is the target sum.
const Year = 2020

// Entries is a set of expense report values.
type Entries struct {
	sorted []uint32
	set    map[uint32]struct{}
}

// NewEntries builds the set, dropping duplicates.
func NewEntries(values []uint32) *Entries {
	e := &Entries{set: make(map[uint32]struct{}, len(values))}
	for _, v := range values {
		if _, ok := e.set[v]; ok {
			continue
		}
		e.set[v] = struct{}{}
		e.sorted = append(e.sorted, v)
	}
	slices.Sort(e.sorted)
	return e
}

// Contains reports whether v is in the set.
func (e *Entries) Contains(v uint32) bool {
	_, ok := e.set[v]
	return ok
}

// TwoSum finds a, b in the set with a + b == sum.
func (e *Entries) TwoSum(sum uint32) (a, b uint32, ok bool) {
	for _, x := range e.sorted {
		if x > sum {
			continue
		}
		if other := sum - x; e.Contains(other) {
			return x, other, true
		}
	}
	return 0, 0, false
}

// ThreeSum finds a, b, c in the set with a + b + c == sum.
func (e *Entries) ThreeSum(sum uint32) (a, b, c uint32, ok bool) {
	for _, x := range e.sorted {
		if x > sum {
			continue
		}
		if y, z, found := e.TwoSum(sum - x); found {
			return x, y, z, true
		}
	}
	return 0, 0, 0, false
}

// Solve reads one entry per line.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	var values []uint32
	for _, line := range input.Lines(in) {
		v, err := input.Atoi[uint32](string(line))
		if err != nil {
			return puzzle.Answer{}, err
		}
		values = append(values, v)
	}
	entries := NewEntries(values)

	var ans puzzle.Answer

	var (
		a, b uint32
		ok   bool
	)
	timer.Run("two_sum", func() { a, b, ok = entries.TwoSum(Year) })
	if !ok {
		return ans, puzzle.NoSolution("no two entries sum to %d", Year)
	}
	ans.Part1 = int64(a) * int64(b)
	slog.Debug("two_sum", "a", a, "b", b, "product", ans.Part1)

	defer timer.Start("three_sum").Stop()
	x, y, z, ok := entries.ThreeSum(Year)
	if !ok {
		return ans, puzzle.NoSolution("no three entries sum to %d", Year)
	}
	ans.Part2 = int64(x) * int64(y) * int64(z)
	slog.Debug("three_sum", "a", x, "b", y, "c", z, "product", ans.Part2)

	return ans, nil
}
