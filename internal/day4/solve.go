// Package day4 solves "Passport Processing".
package day4

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Field names in the batch file.
const (
	BirthYear      = "byr"
	IssueYear      = "iyr"
	ExpirationYear = "eyr"
	Height         = "hgt"
	HairColor      = "hcl"
	EyeColor       = "ecl"
	PassportID     = "pid"
	CountryID      = "cid"
)

// Required lists the fields a passport must carry; cid is optional.
var Required = []string{BirthYear, IssueYear, ExpirationYear, Height, HairColor, EyeColor, PassportID}

var known = map[string]bool{
	BirthYear: true, IssueYear: true, ExpirationYear: true, Height: true,
	HairColor: true, EyeColor: true, PassportID: true, CountryID: true,
}

var eyeColors = map[string]bool{
	"amb": true, "blu": true, "brn": true, "gry": true, "grn": true, "hzl": true, "oth": true,
}

// Passport is the raw key/value record.
type Passport map[string]string

// ParsePassport reads whitespace separated key:value fields.
func ParsePassport(s string) (Passport, error) {
	p := make(Passport)
	for _, field := range strings.Fields(s) {
		key, value, ok := strings.Cut(field, ":")
		if !ok || strings.Contains(value, ":") {
			return nil, puzzle.Malformed("invalid field %q", field)
		}
		if !known[key] {
			return nil, puzzle.Malformed("invalid field name %q", key)
		}
		p[key] = value
	}
	return p, nil
}

// HasRequired reports whether every required field is present.
func (p Passport) HasRequired() bool {
	for _, k := range Required {
		if _, ok := p[k]; !ok {
			return false
		}
	}
	return true
}

// Validate checks every required field's value. It assumes HasRequired.
func (p Passport) Validate() error {
	if err := numRange(p[BirthYear], 1920, 2002); err != nil {
		return fmt.Errorf("invalid birth year: %w", err)
	}
	if err := numRange(p[IssueYear], 2010, 2020); err != nil {
		return fmt.Errorf("invalid issue year: %w", err)
	}
	if err := numRange(p[ExpirationYear], 2020, 2030); err != nil {
		return fmt.Errorf("invalid expiration: %w", err)
	}
	if err := validHeight(p[Height]); err != nil {
		return fmt.Errorf("invalid height: %w", err)
	}
	if !validHairColor(p[HairColor]) {
		return fmt.Errorf("invalid hair color %q", p[HairColor])
	}
	if !eyeColors[p[EyeColor]] {
		return fmt.Errorf("invalid eye color %q", p[EyeColor])
	}
	if !validPassportID(p[PassportID]) {
		return fmt.Errorf("invalid passport id %q", p[PassportID])
	}
	return nil
}

func numRange(s string, lo, hi uint64) error {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	if n < lo || n > hi {
		return fmt.Errorf("value out of range: %d", n)
	}
	return nil
}

func validHeight(s string) error {
	if v, ok := strings.CutSuffix(s, "in"); ok {
		return numRange(v, 59, 76)
	}
	if v, ok := strings.CutSuffix(s, "cm"); ok {
		return numRange(v, 150, 193)
	}
	return fmt.Errorf("invalid height units in %q", s)
}

func validHairColor(s string) bool {
	rest, ok := strings.CutPrefix(s, "#")
	if !ok || len(rest) != 6 {
		return false
	}
	for _, c := range rest {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

func validPassportID(s string) bool {
	if len(s) != 9 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Solve counts passports with all required fields, then those that also
// validate.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	var ans puzzle.Answer
	for i, block := range input.Blocks(string(in)) {
		p, err := ParsePassport(block)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("failed to parse passport %d: %w", i, err)
		}
		if !p.HasRequired() {
			continue
		}
		ans.Part1++
		if err := p.Validate(); err != nil {
			slog.Debug("passport rejected", "index", i, "reason", err)
			continue
		}
		ans.Part2++
	}
	return ans, nil
}
