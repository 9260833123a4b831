// Package puzzle defines the contract shared by every daily solver and the
// registry the CLI dispatches through.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Answer holds the two results every day produces.
type Answer struct {
	Part1 int64 `json:"part1"`
	Part2 int64 `json:"part2"`
}

// Solver turns one puzzle input into its answers.
type Solver func(ctx context.Context, input []byte) (Answer, error)

// Day describes a registered solver unit.
type Day struct {
	Name  string // "day1" .. "day19"
	Title string
	Solve Solver
}

// Number returns the numeric suffix of the day name, or 0 if there is none.
func (d Day) Number() int {
	n, err := strconv.Atoi(strings.TrimPrefix(d.Name, "day"))
	if err != nil {
		return 0
	}
	return n
}

var (
	// ErrUnknownDay is returned by Lookup for names that were never registered.
	ErrUnknownDay = errors.New("unknown day")

	// ErrMalformedInput marks a puzzle input that violates its day's format.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNoSolution marks a well-formed input for which the search found nothing.
	ErrNoSolution = errors.New("no solution")

	// ErrPanic marks a solver that panicked; the runner converts the panic.
	ErrPanic = errors.New("solver panicked")
)

// Malformed builds an error wrapping ErrMalformedInput.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// NoSolution builds an error wrapping ErrNoSolution.
func NoSolution(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNoSolution, fmt.Sprintf(format, args...))
}

// Registry maps day names to solvers.
type Registry struct {
	days map[string]Day
}

// NewRegistry creates a registry holding the given days.
// Registering the same name twice panics.
func NewRegistry(days ...Day) *Registry {
	r := &Registry{days: make(map[string]Day, len(days))}
	for _, d := range days {
		r.Register(d)
	}
	return r
}

// Register adds a day. It panics on a duplicate or empty name since that is a
// programming error in the registry table, not a runtime condition.
func (r *Registry) Register(d Day) {
	if d.Name == "" || d.Solve == nil {
		panic("puzzle: day needs a name and a solver")
	}
	if _, dup := r.days[d.Name]; dup {
		panic(fmt.Sprintf("puzzle: day %q registered twice", d.Name))
	}
	r.days[d.Name] = d
}

// Lookup returns the day registered under name.
func (r *Registry) Lookup(name string) (Day, error) {
	d, ok := r.days[name]
	if !ok {
		return Day{}, fmt.Errorf("%w: %q", ErrUnknownDay, name)
	}
	return d, nil
}

// Days returns all registered days ordered by day number.
func (r *Registry) Days() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := out[i].Number(), out[j].Number()
		if ni != nj {
			return ni < nj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Len reports the number of registered days.
func (r *Registry) Len() int {
	return len(r.days)
}
