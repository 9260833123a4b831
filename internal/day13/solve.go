// Package day13 solves "Shuttle Search" with modular arithmetic.
package day13

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// EGCD returns x, y, d with a*x + b*y = d = gcd(a, b).
func EGCD(a, b int64) (x, y, d int64) {
	rp, r := a, b
	sp, s := int64(1), int64(0)
	tp, t := int64(0), int64(1)
	for r != 0 {
		q := rp / r
		rp, r = r, rp-q*r
		sp, s = s, sp-q*s
		tp, t = t, tp-q*t
	}
	return sp, tp, rp
}

// mod is the Euclidean remainder, always in [0, m).
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ModInv returns the inverse of a modulo m. ok is false unless a and m are
// coprime.
func ModInv(a, m int64) (inv int64, ok bool) {
	x, _, d := EGCD(mod(a, m), m)
	if d != 1 {
		return 0, false
	}
	return mod(x, m), true
}

// CRT solves x ≡ a[i] (mod n[i]) for pairwise coprime moduli and returns
// the least non-negative solution.
//
//	N   = n_1 * ... * n_k
//	N_i = N / n_i
//	M_i = N_i⁻¹ mod n_i
//	x   = Σ a_i M_i N_i  (mod N)
//
// a_i M_i is reduced mod n_i first so every term stays below N.
func CRT(a, n []int64) (int64, error) {
	if len(a) != len(n) {
		return 0, puzzle.Malformed("%d residues for %d moduli", len(a), len(n))
	}
	total := input.Product(n)
	var x int64
	for i, ni := range n {
		Ni := total / ni
		Mi, ok := ModInv(Ni, ni)
		if !ok {
			return 0, puzzle.NoSolution("modulus %d shares a factor with the others", ni)
		}
		term := mod(mod(a[i], ni)*Mi, ni) * Ni
		x = mod(x+term, total)
	}
	return x, nil
}

// Bus is a scheduled bus and its required offset from the departure time.
type Bus struct {
	ID     int64
	Offset int64
}

// ParseSchedule reads "7,13,x,x,59"; x entries only advance the offset.
func ParseSchedule(line string) ([]Bus, error) {
	var buses []Bus
	for i, f := range strings.Split(line, ",") {
		if f == "x" {
			continue
		}
		id, err := input.Atoi[int64](f)
		if err != nil {
			return nil, err
		}
		if id <= 0 {
			return nil, puzzle.Malformed("bus id %d", id)
		}
		buses = append(buses, Bus{ID: id, Offset: int64(i)})
	}
	if len(buses) == 0 {
		return nil, puzzle.Malformed("no buses in schedule %q", line)
	}
	return buses, nil
}

// EarliestBus returns the bus leaving first at or after t and the wait.
// Ties keep the bus listed first.
func EarliestBus(t int64, buses []Bus) (bus Bus, wait int64) {
	wait = -1
	for _, b := range buses {
		w := mod(-t, b.ID)
		if wait < 0 || w < wait {
			bus, wait = b, w
		}
	}
	return bus, wait
}

// Alignment returns the earliest t at which every bus i departs at t+Offset_i,
// that is t ≡ -Offset_i (mod ID_i).
func Alignment(buses []Bus) (int64, error) {
	a := make([]int64, len(buses))
	n := make([]int64, len(buses))
	for i, b := range buses {
		a[i] = mod(b.ID-b.Offset, b.ID)
		n[i] = b.ID
	}
	return CRT(a, n)
}

// Solve reads the earliest timestamp and the schedule.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	lines := input.StringLines(string(in))
	if len(lines) < 2 {
		return puzzle.Answer{}, puzzle.Malformed("want 2 lines, got %d", len(lines))
	}
	t, err := input.Atoi[int64](lines[0])
	if err != nil {
		return puzzle.Answer{}, err
	}
	buses, err := ParseSchedule(lines[1])
	if err != nil {
		return puzzle.Answer{}, err
	}

	bus, wait := EarliestBus(t, buses)
	slog.Debug("earliest bus", "id", bus.ID, "wait", wait)

	aligned, err := Alignment(buses)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: bus.ID * wait, Part2: aligned}, nil
}
