// Package day11 solves "Seating System", a cellular automaton over the seats
// of a waiting area.
package day11

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/timer"
)

const (
	floorChar    = '.'
	emptyChar    = 'L'
	occupiedChar = '#'
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is the floor plan: which cells hold a seat.
type Grid struct {
	rows, cols int
	seats      *bitset.BitSet
}

// Parse reads rows of 'L' and '.'.
func Parse(in []byte) (*Grid, error) {
	lines := input.StringLines(string(in))
	if len(lines) == 0 {
		return nil, puzzle.Malformed("empty seat layout")
	}
	g := &Grid{rows: len(lines), cols: len(lines[0])}
	g.seats = bitset.New(uint(g.rows * g.cols))
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, puzzle.Malformed("row %d has width %d, want %d", r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case emptyChar:
				g.seats.Set(uint(g.index(r, c)))
			case floorChar:
			default:
				return nil, puzzle.Malformed("unexpected character %q at row %d", line[c], r)
			}
		}
	}
	return g, nil
}

func (g *Grid) index(r, c int) int { return r*g.cols + c }

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) isSeat(r, c int) bool {
	return g.seats.Test(uint(g.index(r, c)))
}

// neighbors lists, for every cell, the seats that count as its neighbors.
// With lineOfSight the first seat in each direction counts, otherwise only
// the eight adjacent cells.
func (g *Grid) neighbors(lineOfSight bool) [][]int {
	out := make([][]int, g.rows*g.cols)
	for i, ok := g.seats.NextSet(0); ok; i, ok = g.seats.NextSet(i + 1) {
		r, c := int(i)/g.cols, int(i)%g.cols
		idxs := make([]int, 0, len(directions))
		for _, d := range directions {
			nr, nc := r+d[0], c+d[1]
			for g.inBounds(nr, nc) {
				if g.isSeat(nr, nc) {
					idxs = append(idxs, g.index(nr, nc))
					break
				}
				if !lineOfSight {
					break
				}
				nr, nc = nr+d[0], nc+d[1]
			}
		}
		out[i] = idxs
	}
	return out
}

// Layout is the occupancy state for one rule set.
type Layout struct {
	grid      *Grid
	neighbors [][]int
	threshold int
	occupied  *bitset.BitSet
	scratch   *bitset.BitSet
}

// NewLayout starts with every seat empty. A seat empties once at least
// threshold of its neighbors are occupied.
func NewLayout(g *Grid, lineOfSight bool, threshold int) *Layout {
	n := uint(g.rows * g.cols)
	return &Layout{
		grid:      g,
		neighbors: g.neighbors(lineOfSight),
		threshold: threshold,
		occupied:  bitset.New(n),
		scratch:   bitset.New(n),
	}
}

// Step advances one round and reports whether anything changed.
func (l *Layout) Step() bool {
	l.scratch.ClearAll()
	seats := l.grid.seats
	for i, ok := seats.NextSet(0); ok; i, ok = seats.NextSet(i + 1) {
		count := 0
		for _, n := range l.neighbors[i] {
			if l.occupied.Test(uint(n)) {
				count++
			}
		}
		occupied := l.occupied.Test(i)
		if (!occupied && count == 0) || (occupied && count < l.threshold) {
			l.scratch.Set(i)
		}
	}
	l.occupied, l.scratch = l.scratch, l.occupied
	return !l.occupied.Equal(l.scratch)
}

// Settle steps until the layout stops changing and returns the rounds taken.
func (l *Layout) Settle() int {
	rounds := 0
	for l.Step() {
		rounds++
	}
	return rounds
}

// Occupied counts the occupied seats.
func (l *Layout) Occupied() int {
	return int(l.occupied.Count())
}

func (l *Layout) String() string {
	var b strings.Builder
	g := l.grid
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			i := uint(g.index(r, c))
			switch {
			case !g.seats.Test(i):
				b.WriteByte(floorChar)
			case l.occupied.Test(i):
				b.WriteByte(occupiedChar)
			default:
				b.WriteByte(emptyChar)
			}
		}
	}
	return b.String()
}

// Solve settles the adjacent rules (threshold 4) and the line of sight rules
// (threshold 5).
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	g, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var ans puzzle.Answer
	timer.Run("adjacent", func() {
		l := NewLayout(g, false, 4)
		rounds := l.Settle()
		ans.Part1 = int64(l.Occupied())
		slog.Debug("settled", "rules", "adjacent", "rounds", rounds)
	})
	timer.Run("line_of_sight", func() {
		l := NewLayout(g, true, 5)
		rounds := l.Settle()
		ans.Part2 = int64(l.Occupied())
		slog.Debug("settled", "rules", "line_of_sight", "rounds", rounds)
	})
	return ans, nil
}
