// Package day18 solves "Operation Order": arithmetic with unusual operator
// precedence.
package day18

import (
	"context"
	"fmt"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Kind is a token type.
type Kind uint8

const (
	Num Kind = iota
	Add
	Mul
	LParen
	RParen
)

// Token is a lexed symbol; Val is set for Num.
type Token struct {
	Kind Kind
	Val  int64
}

// Tokenize lexes single digit numbers, + * ( ) and skips spaces.
func Tokenize(s string) ([]Token, error) {
	var toks []Token
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			toks = append(toks, Token{Num, int64(c - '0')})
		case c == '+':
			toks = append(toks, Token{Kind: Add})
		case c == '*':
			toks = append(toks, Token{Kind: Mul})
		case c == '(':
			toks = append(toks, Token{Kind: LParen})
		case c == ')':
			toks = append(toks, Token{Kind: RParen})
		case c == ' ':
		default:
			return nil, puzzle.Malformed("unexpected %q at column %d", c, i+1)
		}
	}
	return toks, nil
}

// Precedence selects the operator rules.
type Precedence uint8

const (
	// LeftToRight gives + and * equal precedence.
	LeftToRight Precedence = iota
	// AdditionFirst makes + bind tighter than *.
	AdditionFirst
)

// split finds the operator evaluated last: the rightmost lowest-precedence
// operator outside parentheses, or -1 if there is none.
func split(toks []Token, prec Precedence) (int, error) {
	depth := 0
	add := -1
	for i := len(toks) - 1; i >= 0; i-- {
		switch toks[i].Kind {
		case RParen:
			depth++
		case LParen:
			if depth--; depth < 0 {
				return 0, puzzle.Malformed("unbalanced '('")
			}
		case Mul:
			if depth == 0 {
				return i, nil
			}
		case Add:
			if depth == 0 {
				if prec == LeftToRight {
					return i, nil
				}
				if add < 0 {
					add = i
				}
			}
		}
	}
	if depth != 0 {
		return 0, puzzle.Malformed("unbalanced ')'")
	}
	return add, nil
}

// Eval evaluates a token stream.
func Eval(toks []Token, prec Precedence) (int64, error) {
	switch {
	case len(toks) == 0:
		return 0, puzzle.Malformed("empty expression")
	case len(toks) == 1 && toks[0].Kind == Num:
		return toks[0].Val, nil
	}
	i, err := split(toks, prec)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		if toks[0].Kind != LParen || toks[len(toks)-1].Kind != RParen {
			return 0, puzzle.Malformed("missing operator")
		}
		return Eval(toks[1:len(toks)-1], prec)
	}
	left, err := Eval(toks[:i], prec)
	if err != nil {
		return 0, err
	}
	right, err := Eval(toks[i+1:], prec)
	if err != nil {
		return 0, err
	}
	if toks[i].Kind == Add {
		return left + right, nil
	}
	return left * right, nil
}

// EvalString tokenizes and evaluates one line.
func EvalString(s string, prec Precedence) (int64, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return 0, err
	}
	return Eval(toks, prec)
}

// Solve sums every line under both precedence rules.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	var ans puzzle.Answer
	for i, line := range input.StringLines(string(in)) {
		if line == "" {
			continue
		}
		v1, err := EvalString(line, LeftToRight)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		v2, err := EvalString(line, AdditionFirst)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		ans.Part1 += v1
		ans.Part2 += v2
	}
	return ans, nil
}
