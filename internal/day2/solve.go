// Package day2 solves "Password Philosophy".
package day2

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

var entryRx = regexp.MustCompile(`(?m)^([0-9]+)-([0-9]+) ([a-z]): ([a-z]+)$`)

// Entry is one line of the password database.
type Entry struct {
	Min, Max uint8
	Letter   byte
	Password string
}

// ValidV1 checks the sled rental policy: Letter occurs between Min and Max
// times.
func (e Entry) ValidV1() bool {
	n := strings.Count(e.Password, string(e.Letter))
	return int(e.Min) <= n && n <= int(e.Max)
}

// ValidV2 checks the toboggan policy: exactly one of the 1-based positions
// Min and Max holds Letter.
func (e Entry) ValidV2() (bool, error) {
	i1, i2 := int(e.Min)-1, int(e.Max)-1
	if i1 < 0 || i2 < 0 || i1 >= len(e.Password) || i2 >= len(e.Password) {
		return false, puzzle.Malformed("position out of range in %d-%d %c: %s", e.Min, e.Max, e.Letter, e.Password)
	}
	return (e.Password[i1] == e.Letter) != (e.Password[i2] == e.Letter), nil
}

// Parse extracts every well-formed entry. Lines that do not match the entry
// pattern are skipped.
func Parse(s string) ([]Entry, error) {
	var entries []Entry
	for _, m := range entryRx.FindAllStringSubmatch(s, -1) {
		lo, err := input.Atoi[uint8](m[1])
		if err != nil {
			return nil, err
		}
		hi, err := input.Atoi[uint8](m[2])
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Min: lo, Max: hi, Letter: m[3][0], Password: m[4]})
	}
	return entries, nil
}

// Solve counts passwords valid under each policy.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	entries, err := Parse(string(in))
	if err != nil {
		return puzzle.Answer{}, err
	}

	var ans puzzle.Answer
	for _, e := range entries {
		if e.ValidV1() {
			ans.Part1++
		}
		ok, err := e.ValidV2()
		if err != nil {
			return puzzle.Answer{}, err
		}
		if ok {
			ans.Part2++
		}
	}
	slog.Debug("passwords checked", "entries", len(entries), "valid_v1", ans.Part1, "valid_v2", ans.Part2)
	return ans, nil
}
