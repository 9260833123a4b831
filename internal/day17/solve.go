// Package day17 solves "Conway Cubes" on a dense, padded 3D or 4D grid.
package day17

import (
	"context"
	"log/slog"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/timer"
)

// Cycles is the boot sequence length.
const Cycles = 6

// Slice is the initial 2D plane, indexed [y][x].
type Slice [][]bool

// Parse reads rows of '#' (active) and '.' (inactive).
func Parse(in []byte) (Slice, error) {
	lines := input.StringLines(string(in))
	if len(lines) == 0 || lines[0] == "" {
		return nil, puzzle.Malformed("empty slice")
	}
	s := make(Slice, len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, puzzle.Malformed("row %d has width %d, want %d", y, len(line), len(lines[0]))
		}
		s[y] = make([]bool, len(line))
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case '#':
				s[y][x] = true
			case '.':
			default:
				return nil, puzzle.Malformed("unexpected character %q at row %d", line[x], y)
			}
		}
	}
	return s, nil
}

// Pocket is the pocket dimension. Axes are x, y, z, w; a 3D pocket keeps w
// at size 1.
type Pocket struct {
	size    [4]int
	stride  [4]int
	active  []bool
	scratch []bool
	offsets []int
}

// NewPocket embeds s in the z=0 (and w=0) plane of a grid padded so that
// cycles steps never reach the border.
func NewPocket(s Slice, dims, cycles int) *Pocket {
	pad := cycles + 1
	p := &Pocket{}
	p.size = [4]int{len(s[0]) + 2*pad, len(s) + 2*pad, 1 + 2*pad, 1}
	if dims == 4 {
		p.size[3] = 1 + 2*pad
	}
	n := 1
	for d := range p.size {
		p.stride[d] = n
		n *= p.size[d]
	}
	p.active = make([]bool, n)
	p.scratch = make([]bool, n)

	for y, row := range s {
		for x, on := range row {
			p.active[p.index(x+pad, y+pad, pad, p.size[3]/2)] = on
		}
	}

	var delta [4]int
	var walk func(d int)
	walk = func(d int) {
		if d == len(delta) {
			off := 0
			for i, v := range delta {
				off += v * p.stride[i]
			}
			if off != 0 {
				p.offsets = append(p.offsets, off)
			}
			return
		}
		lo, hi := -1, 1
		if p.size[d] == 1 {
			lo, hi = 0, 0
		}
		for v := lo; v <= hi; v++ {
			delta[d] = v
			walk(d + 1)
		}
	}
	walk(0)
	return p
}

func (p *Pocket) index(x, y, z, w int) int {
	return x*p.stride[0] + y*p.stride[1] + z*p.stride[2] + w*p.stride[3]
}

// interior is the coordinate range whose neighbors are all in bounds.
func (p *Pocket) interior(d int) (lo, hi int) {
	if p.size[d] == 1 {
		return 0, 1
	}
	return 1, p.size[d] - 1
}

// Step runs one cycle: an active cube stays active with 2 or 3 active
// neighbors, an inactive cube activates with exactly 3.
func (p *Pocket) Step() {
	clear(p.scratch)
	wlo, whi := p.interior(3)
	zlo, zhi := p.interior(2)
	ylo, yhi := p.interior(1)
	xlo, xhi := p.interior(0)
	for w := wlo; w < whi; w++ {
		for z := zlo; z < zhi; z++ {
			for y := ylo; y < yhi; y++ {
				for x := xlo; x < xhi; x++ {
					i := p.index(x, y, z, w)
					n := 0
					for _, off := range p.offsets {
						if p.active[i+off] {
							n++
						}
					}
					p.scratch[i] = n == 3 || (n == 2 && p.active[i])
				}
			}
		}
	}
	p.active, p.scratch = p.scratch, p.active
}

// Count returns the number of active cubes.
func (p *Pocket) Count() int {
	n := 0
	for _, on := range p.active {
		if on {
			n++
		}
	}
	return n
}

// Boot runs cycles steps and returns the active count.
func Boot(s Slice, dims, cycles int) int {
	p := NewPocket(s, dims, cycles)
	for range cycles {
		p.Step()
	}
	slog.Debug("booted", "dims", dims, "neighbors", len(p.offsets), "active", p.Count())
	return p.Count()
}

// Solve boots the 3D and 4D pockets.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	s, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}
	var ans puzzle.Answer
	timer.Run("boot_3d", func() { ans.Part1 = int64(Boot(s, 3, Cycles)) })
	timer.Run("boot_4d", func() { ans.Part2 = int64(Boot(s, 4, Cycles)) })
	return ans, nil
}
