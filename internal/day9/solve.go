// Package day9 solves "Encoding Error".
package day9

import (
	"context"
	"log/slog"
	"slices"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Preamble is the window length of the real XMAS stream.
const Preamble = 25

// window is a multiset of the last n values.
type window map[uint64]int

func (w window) add(v uint64) { w[v]++ }

func (w window) remove(v uint64) {
	if w[v]--; w[v] == 0 {
		delete(w, v)
	}
}

func (w window) hasTwoSum(sum uint64) bool {
	for x := range w {
		if x >= sum {
			continue
		}
		if y := sum - x; x != y && w[y] > 0 {
			return true
		}
	}
	return false
}

// FindInvalid returns the index and value of the first number after the
// preamble that is not the sum of two distinct values among the preceding
// preamble numbers.
func FindInvalid(nums []uint64, preamble int) (idx int, v uint64, ok bool) {
	if preamble <= 0 || len(nums) <= preamble {
		return 0, 0, false
	}
	w := make(window, preamble)
	for _, n := range nums[:preamble] {
		w.add(n)
	}
	for i := preamble; i < len(nums); i++ {
		if !w.hasTwoSum(nums[i]) {
			return i, nums[i], true
		}
		w.remove(nums[i-preamble])
		w.add(nums[i])
	}
	return 0, 0, false
}

// FindContiguousSum returns a run of at least two consecutive numbers adding
// up to sum.
func FindContiguousSum(nums []uint64, sum uint64) ([]uint64, bool) {
	var (
		start int
		total uint64
	)
	for end, n := range nums {
		total += n
		for total > sum && start < end {
			total -= nums[start]
			start++
		}
		if total == sum && end > start {
			return nums[start : end+1], true
		}
	}
	return nil, false
}

// SolveWith answers both parts for an arbitrary preamble length.
func SolveWith(nums []uint64, preamble int) (puzzle.Answer, error) {
	idx, invalid, ok := FindInvalid(nums, preamble)
	if !ok {
		return puzzle.Answer{}, puzzle.NoSolution("every number is a sum of its preamble")
	}
	slog.Debug("invalid number", "index", idx, "value", invalid)

	run, ok := FindContiguousSum(nums[:idx], invalid)
	if !ok {
		return puzzle.Answer{}, puzzle.NoSolution("no contiguous run sums to %d", invalid)
	}
	weakness := slices.Min(run) + slices.Max(run)
	return puzzle.Answer{Part1: int64(invalid), Part2: int64(weakness)}, nil
}

// Solve uses the standard 25 number preamble.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	nums, err := input.Ints[uint64](input.StringLines(string(in)))
	if err != nil {
		return puzzle.Answer{}, err
	}
	return SolveWith(nums, Preamble)
}
