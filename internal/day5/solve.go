// Package day5 solves "Binary Boarding".
package day5

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

const (
	positionLen = 10
	colLen      = 3
	rowLen      = positionLen - colLen
	colMask     = 1<<colLen - 1
)

// Position is a boarding pass decoded to its 10 bits: 7 row bits followed by
// 3 column bits.
type Position uint16

// ParsePosition decodes a pass like "FBFBBFFRLR".
func ParsePosition(s string) (Position, error) {
	if len(s) != positionLen {
		return 0, puzzle.Malformed("boarding pass %q must have %d characters", s, positionLen)
	}
	var pos Position
	for i := 0; i < positionLen; i++ {
		var bit Position
		switch c := s[i]; {
		case i < rowLen && c == 'B', i >= rowLen && c == 'R':
			bit = 1
		case i < rowLen && c == 'F', i >= rowLen && c == 'L':
		default:
			return 0, puzzle.Malformed("unexpected %q at %d in boarding pass %q", c, i, s)
		}
		pos |= bit << (positionLen - i - 1)
	}
	return pos, nil
}

// Row is the 0..127 row number.
func (p Position) Row() int { return int(p >> colLen) }

// Col is the 0..7 column number.
func (p Position) Col() int { return int(p & colMask) }

// SeatID is row*8 + col.
func (p Position) SeatID() int { return p.Row()*8 + p.Col() }

func (p Position) String() string {
	var sb strings.Builder
	for i := positionLen - 1; i >= 0; i-- {
		one := p&(1<<i) != 0
		switch {
		case i >= colLen && one:
			sb.WriteByte('B')
		case i >= colLen:
			sb.WriteByte('F')
		case one:
			sb.WriteByte('R')
		default:
			sb.WriteByte('L')
		}
	}
	return sb.String()
}

// FindGap returns the seat id missing between the first pair of consecutive
// sorted ids that are not adjacent.
func FindGap(sorted []int) (int, bool) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return sorted[i-1] + 1, true
		}
	}
	return 0, false
}

// Solve reports the highest seat id and the free seat.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	var ids []int
	for _, line := range input.StringLines(string(in)) {
		if line == "" {
			continue
		}
		pos, err := ParsePosition(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		ids = append(ids, pos.SeatID())
	}
	if len(ids) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("no seats")
	}
	slices.Sort(ids)

	mine, ok := FindGap(ids)
	if !ok {
		return puzzle.Answer{}, puzzle.NoSolution("failed to find my seat id")
	}
	slog.Debug("seats", "count", len(ids), "max", ids[len(ids)-1], "mine", mine)
	return puzzle.Answer{Part1: int64(ids[len(ids)-1]), Part2: int64(mine)}, nil
}
