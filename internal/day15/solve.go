// Package day15 solves "Rambunctious Recitation", a Van Eck style
// memory game.
package day15

import (
	"context"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/timer"
)

const (
	ShortRound = 2020
	LongRound  = 30_000_000
)

// Play returns the number spoken on the given 1-based round. Every spoken
// number is smaller than the round it is spoken on, so last-spoken rounds
// live in a dense slice instead of a map.
func Play(start []int, round int) int {
	if round <= len(start) {
		return start[round-1]
	}
	size := round
	for _, n := range start {
		size = max(size, n+1)
	}
	last := make([]int32, size)
	for i, n := range start[:len(start)-1] {
		last[n] = int32(i + 1)
	}
	cur := start[len(start)-1]
	for turn := len(start); turn < round; turn++ {
		next := 0
		if prev := last[cur]; prev != 0 {
			next = turn - int(prev)
		}
		last[cur] = int32(turn)
		cur = next
	}
	return cur
}

// Parse reads the comma separated starting numbers from the first line.
func Parse(in []byte) ([]int, error) {
	lines := input.StringLines(string(in))
	if len(lines) == 0 || lines[0] == "" {
		return nil, puzzle.Malformed("no starting numbers")
	}
	nums, err := input.Ints[int](strings.Split(lines[0], ","))
	if err != nil {
		return nil, err
	}
	for _, n := range nums {
		if n < 0 {
			return nil, puzzle.Malformed("negative starting number %d", n)
		}
		if n >= LongRound {
			return nil, puzzle.Malformed("starting number %d is not below %d", n, LongRound)
		}
	}
	return nums, nil
}

// Solve plays to rounds 2020 and 30,000,000.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	start, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	timer.Run("short_game", func() { ans.Part1 = int64(Play(start, ShortRound)) })
	timer.Run("long_game", func() { ans.Part2 = int64(Play(start, LongRound)) })
	return ans, nil
}
