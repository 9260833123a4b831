// Package day6 solves "Custom Customs".
package day6

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

const responseWidth = 26

// ResponseSet holds the questions answered "yes", one bit per letter a..z.
type ResponseSet uint32

// None is the empty set.
const None ResponseSet = 0

// All holds every question.
const All ResponseSet = 1<<responseWidth - 1

// ParseResponses reads one person's answers.
func ParseResponses(s string) (ResponseSet, error) {
	var r ResponseSet
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, puzzle.Malformed("unexpected answer %q", c)
		}
		r |= 1 << (c - 'a')
	}
	return r, nil
}

// Union returns r ∪ o.
func (r ResponseSet) Union(o ResponseSet) ResponseSet { return r | o }

// Intersect returns r ∩ o.
func (r ResponseSet) Intersect(o ResponseSet) ResponseSet { return r & o }

// Count is the number of yes answers.
func (r ResponseSet) Count() int { return bits.OnesCount32(uint32(r)) }

func (r ResponseSet) String() string {
	return fmt.Sprintf("ResponseSet(%026b)", uint32(r))
}

// Solve sums per group the questions anyone answered and the questions
// everyone answered.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	var ans puzzle.Answer
	groups := input.Blocks(string(in))
	for _, group := range groups {
		union, inter := None, All
		people := 0
		for _, line := range strings.Split(group, "\n") {
			if line == "" {
				continue
			}
			r, err := ParseResponses(line)
			if err != nil {
				return puzzle.Answer{}, err
			}
			union = union.Union(r)
			inter = inter.Intersect(r)
			people++
		}
		if people == 0 {
			continue
		}
		ans.Part1 += int64(union.Count())
		ans.Part2 += int64(inter.Count())
	}
	slog.Debug("groups tallied", "groups", len(groups), "union", ans.Part1, "intersection", ans.Part2)
	return ans, nil
}
