// Package input holds the small file and parsing helpers every day shares.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/phlip9/aoc20/internal/puzzle"
)

const newline = '\n'

// ReadFile reads the whole file at path into memory.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return buf, nil
}

// Lines splits b on newlines and stops at the first empty piece, so a
// trailing newline (or a blank separator line) ends the sequence.
func Lines(b []byte) [][]byte {
	var out [][]byte
	for len(b) > 0 {
		i := bytes.IndexByte(b, newline)
		var piece []byte
		if i < 0 {
			piece, b = b, nil
		} else {
			piece, b = b[:i], b[i+1:]
		}
		if len(piece) == 0 {
			break
		}
		out = append(out, piece)
	}
	return out
}

// StringLines splits s into lines. A final trailing newline does not produce
// an empty line and "\r\n" endings are accepted. Empty lines in the middle are
// kept.
func StringLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Blocks splits s on blank lines.
func Blocks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n\n")
}

// Atoi parses a base-10 integer into T, rejecting values that do not fit.
func Atoi[T constraints.Integer](s string) (T, error) {
	var zero T
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return zero, puzzle.Malformed("invalid number %q", s)
	}
	v := T(n)
	if int64(v) != n || (v < 0) != (n < 0) {
		return zero, puzzle.Malformed("number %d out of range", n)
	}
	return v, nil
}

// Ints parses one integer per line.
func Ints[T constraints.Integer](lines []string) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, l := range lines {
		v, err := Atoi[T](strings.TrimSpace(l))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Product multiplies all values together; the empty product is 1.
func Product[T constraints.Integer](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}
