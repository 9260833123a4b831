// Package day3 solves "Toboggan Trajectory".
package day3

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

const (
	openChar = '.'
	treeChar = '#'
	maxWidth = 64
)

// Slope is a toboggan step: right DX, down DY.
type Slope struct{ DX, DY int }

// Slopes are the trajectories checked for part 2.
var Slopes = []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// row is a horizontal strip of the map packed into a bitmask.
type row uint64

func (r row) isTree(x int) bool {
	return r&(1<<uint(x)) != 0
}

// Geology is the repeating tree map.
type Geology struct {
	width int
	rows  []row
}

// Parse builds the map from lines of '.' and '#'.
func Parse(in []byte) (*Geology, error) {
	lines := input.Lines(in)
	if len(lines) == 0 {
		return nil, puzzle.Malformed("empty map")
	}
	g := &Geology{width: len(lines[0])}
	if g.width > maxWidth {
		return nil, puzzle.Malformed("map width %d exceeds %d", g.width, maxWidth)
	}
	for y, line := range lines {
		if len(line) != g.width {
			return nil, puzzle.Malformed("row %d has width %d, want %d", y, len(line), g.width)
		}
		var r row
		for x, c := range line {
			switch c {
			case treeChar:
				r |= 1 << uint(x)
			case openChar:
			default:
				return nil, puzzle.Malformed("unexpected character %q at row %d", c, y)
			}
		}
		g.rows = append(g.rows, r)
	}
	return g, nil
}

// Height is the number of rows.
func (g *Geology) Height() int { return len(g.rows) }

// IsTree reports whether (x, y) holds a tree; x wraps around.
func (g *Geology) IsTree(x, y int) bool {
	return g.rows[y].isTree(x % g.width)
}

// CountTrees counts trees hit going down slope s from the top-left corner.
func (g *Geology) CountTrees(s Slope) int {
	count := 0
	for x, y := 0, 0; y < g.Height(); x, y = x+s.DX, y+s.DY {
		if g.IsTree(x, y) {
			count++
		}
	}
	return count
}

func (g *Geology) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * len(g.rows))
	for _, r := range g.rows {
		for x := 0; x < g.width; x++ {
			if r.isTree(x) {
				sb.WriteByte(treeChar)
			} else {
				sb.WriteByte(openChar)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Solve counts trees on slope (3,1) and multiplies the counts over all Slopes.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	g, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}

	ans := puzzle.Answer{Part1: int64(g.CountTrees(Slope{3, 1})), Part2: 1}
	for _, s := range Slopes {
		count := g.CountTrees(s)
		slog.Debug("slope", "dx", s.DX, "dy", s.DY, "count", count)
		ans.Part2 *= int64(count)
	}
	return ans, nil
}
