// Package day14 solves "Docking Data": a 36-bit memory written through value
// masks (v1) or floating address masks (v2).
package day14

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

const (
	wordBits  = 36
	valueMask = 1<<wordBits - 1

	// maxFloating bounds the 2^k address fan-out of a single v2 write.
	maxFloating = 16
)

// Mask is a parsed "mask = ..." line.
type Mask struct {
	Ones, Zeros uint64
}

// Floating is the set of X bits.
func (m Mask) Floating() uint64 {
	return ^(m.Ones | m.Zeros) & valueMask
}

func (m Mask) String() string {
	var b strings.Builder
	for i := wordBits - 1; i >= 0; i-- {
		bit := uint64(1) << i
		switch {
		case m.Ones&bit != 0:
			b.WriteByte('1')
		case m.Zeros&bit != 0:
			b.WriteByte('0')
		default:
			b.WriteByte('X')
		}
	}
	return b.String()
}

// ParseMask reads the 36 character 0/1/X mask, most significant bit first.
func ParseMask(s string) (Mask, error) {
	if len(s) != wordBits {
		return Mask{}, puzzle.Malformed("mask %q has %d bits, want %d", s, len(s), wordBits)
	}
	var m Mask
	for i := 0; i < len(s); i++ {
		bit := uint64(1) << (wordBits - 1 - i)
		switch s[i] {
		case '1':
			m.Ones |= bit
		case '0':
			m.Zeros |= bit
		case 'X':
		default:
			return Mask{}, puzzle.Malformed("mask %q: unexpected %q", s, s[i])
		}
	}
	return m, nil
}

// Instr is either a mask update (IsMask) or a memory write.
type Instr struct {
	IsMask bool
	Mask   Mask
	Addr   uint64
	Value  uint64
}

func (in Instr) String() string {
	if in.IsMask {
		return "mask = " + in.Mask.String()
	}
	return fmt.Sprintf("mem[%d] = %d", in.Addr, in.Value)
}

var memRe = regexp.MustCompile(`^mem\[([0-9]+)\] = ([0-9]+)$`)

// Parse reads the initialization program.
func Parse(in []byte) ([]Instr, error) {
	var prog []Instr
	for i, line := range input.StringLines(string(in)) {
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "mask = "); ok {
			m, err := ParseMask(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			prog = append(prog, Instr{IsMask: true, Mask: m})
			continue
		}
		sub := memRe.FindStringSubmatch(line)
		if sub == nil {
			return nil, puzzle.Malformed("line %d: %q", i+1, line)
		}
		addr, err1 := strconv.ParseUint(sub[1], 10, wordBits)
		value, err2 := strconv.ParseUint(sub[2], 10, wordBits)
		if err1 != nil || err2 != nil {
			return nil, puzzle.Malformed("line %d: value out of range in %q", i+1, line)
		}
		prog = append(prog, Instr{Addr: addr, Value: value})
	}
	return prog, nil
}

// Pdep deposits the low bits of src into the set bit positions of mask,
// lowest first. All other bits of the result are zero.
func Pdep(src, mask uint64) uint64 {
	var dst uint64
	for m := mask; m != 0; m &= m - 1 {
		if src&1 != 0 {
			dst |= m & -m
		}
		src >>= 1
	}
	return dst
}

// MaskPermutations lists every subset of mask's bits, e.g. for 1101:
// 0000 0001 0100 0101 1000 1001 1100 1101.
func MaskPermutations(mask uint64) []uint64 {
	n := uint64(1) << bits.OnesCount64(mask)
	out := make([]uint64, n)
	for i := range n {
		out[i] = Pdep(i, mask)
	}
	return out
}

// Memory is the sparse docking memory.
type Memory struct {
	mask   Mask
	masked bool
	mem    map[uint64]uint64
}

// NewMemory returns an empty memory with no mask set.
func NewMemory() *Memory {
	return &Memory{mem: make(map[uint64]uint64)}
}

// errNoMask formats the error for a write that comes before any mask.
const errNoMask = "mem[%d] written before any mask"

// ApplyV1 masks the value: ones set, zeros cleared.
func (m *Memory) ApplyV1(in Instr) error {
	if in.IsMask {
		m.mask, m.masked = in.Mask, true
		return nil
	}
	if !m.masked {
		return puzzle.Malformed(errNoMask, in.Addr)
	}
	m.mem[in.Addr] = (in.Value | m.mask.Ones) &^ m.mask.Zeros & valueMask
	return nil
}

// ApplyV2 masks the address: ones set, zeros unchanged, and every floating
// bit takes both values.
func (m *Memory) ApplyV2(in Instr) error {
	if in.IsMask {
		if k := bits.OnesCount64(in.Mask.Floating()); k > maxFloating {
			return puzzle.Malformed("mask %s has %d floating bits, at most %d supported", in.Mask, k, maxFloating)
		}
		m.mask, m.masked = in.Mask, true
		return nil
	}
	if !m.masked {
		return puzzle.Malformed(errNoMask, in.Addr)
	}
	floating := m.mask.Floating()
	base := (in.Addr | m.mask.Ones) &^ floating
	for _, f := range MaskPermutations(floating) {
		m.mem[base|f] = in.Value
	}
	return nil
}

// Sum adds every value left in memory.
func (m *Memory) Sum() int64 {
	var s uint64
	for _, v := range m.mem {
		s += v
	}
	return int64(s)
}

// Len is the number of written addresses.
func (m *Memory) Len() int { return len(m.mem) }

// RunV1 executes prog with value masking.
func RunV1(prog []Instr) (*Memory, error) {
	m := NewMemory()
	for _, in := range prog {
		if err := m.ApplyV1(in); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RunV2 executes prog with address masking.
func RunV2(prog []Instr) (*Memory, error) {
	m := NewMemory()
	for _, in := range prog {
		if err := m.ApplyV2(in); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Solve runs the program under both decoder versions.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	prog, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}
	v1, err := RunV1(prog)
	if err != nil {
		return puzzle.Answer{}, err
	}
	v2, err := RunV2(prog)
	if err != nil {
		return puzzle.Answer{}, err
	}
	slog.Debug("memory", "v1_addresses", v1.Len(), "v2_addresses", v2.Len())
	return puzzle.Answer{Part1: v1.Sum(), Part2: v2.Sum()}, nil
}
