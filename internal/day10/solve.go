// Package day10 solves "Adapter Array".
package day10

import (
	"context"
	"log/slog"
	"slices"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// MaxStep is the largest joltage jump an adapter accepts.
const MaxStep = 3

// Chain returns the sorted joltages with the outlet (0) prepended and the
// device (max+3) appended.
func Chain(adapters []int) []int {
	chain := make([]int, 0, len(adapters)+2)
	chain = append(chain, 0)
	chain = append(chain, adapters...)
	slices.Sort(chain)
	return append(chain, chain[len(chain)-1]+MaxStep)
}

// Distribution counts the 1, 2 and 3 jolt differences along chain.
func Distribution(chain []int) ([MaxStep]int, error) {
	var distr [MaxStep]int
	for i := 1; i < len(chain); i++ {
		d := chain[i] - chain[i-1]
		if d < 1 || d > MaxStep {
			return distr, puzzle.Malformed("joltage step %d between %d and %d", d, chain[i-1], chain[i])
		}
		distr[d-1]++
	}
	return distr, nil
}

// CountArrangements counts the paths from the outlet to the device. The
// chain is a topologically sorted DAG, so paths[i] is the sum of paths[j]
// over the next adapters j within MaxStep.
func CountArrangements(chain []int) int64 {
	n := len(chain)
	paths := make([]int64, n)
	paths[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		for j := i + 1; j < n && j <= i+MaxStep; j++ {
			if chain[j] > chain[i]+MaxStep {
				break
			}
			paths[i] += paths[j]
		}
	}
	return paths[0]
}

// Solve chains every adapter.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	adapters, err := input.Ints[int](input.StringLines(string(in)))
	if err != nil {
		return puzzle.Answer{}, err
	}
	chain := Chain(adapters)
	distr, err := Distribution(chain)
	if err != nil {
		return puzzle.Answer{}, err
	}
	slog.Debug("joltage differences", "ones", distr[0], "twos", distr[1], "threes", distr[2])

	return puzzle.Answer{
		Part1: int64(distr[0]) * int64(distr[2]),
		Part2: CountArrangements(chain),
	}, nil
}
