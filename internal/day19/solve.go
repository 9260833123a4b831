// Package day19 solves "Monster Messages" by compiling the grammar into a
// single regular expression.
package day19

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Kind is the shape of a rule.
type Kind uint8

const (
	// Literal matches one character.
	Literal Kind = iota
	// Alternatives matches any of several sequences of rules.
	Alternatives
	// OneOrMore matches Arg[0] repeated, the regular form of "8: 42 | 42 8".
	OneOrMore
	// Balanced matches Arg[0]{k} Arg[1]{k}, the bounded form of "11: 42 31 | 42 11 31".
	Balanced
)

// BalancedDepth bounds k for Balanced rules.
const BalancedDepth = 4

// Rule is one grammar production.
type Rule struct {
	Kind Kind
	Char byte
	Alts [][]int
	Arg  []int
}

// Lit builds a literal rule.
func Lit(c byte) Rule { return Rule{Kind: Literal, Char: c} }

// Seq builds an alternatives rule from its sequences.
func Seq(alts ...[]int) Rule { return Rule{Kind: Alternatives, Alts: alts} }

func (r Rule) String() string {
	switch r.Kind {
	case Literal:
		return strconv.Quote(string(r.Char))
	case OneOrMore:
		return fmt.Sprintf("%d | %d self", r.Arg[0], r.Arg[0])
	case Balanced:
		return fmt.Sprintf("%d %d | %d self %d", r.Arg[0], r.Arg[1], r.Arg[0], r.Arg[1])
	}
	alts := make([]string, len(r.Alts))
	for i, seq := range r.Alts {
		ids := make([]string, len(seq))
		for j, id := range seq {
			ids[j] = strconv.Itoa(id)
		}
		alts[i] = strings.Join(ids, " ")
	}
	return strings.Join(alts, " | ")
}

// ParseRule reads the body of a rule: `"a"`, `4 1`, `2 3 | 3 2`.
func ParseRule(s string) (Rule, error) {
	if len(s) == 3 && s[0] == '"' && s[2] == '"' {
		return Lit(s[1]), nil
	}
	var r Rule
	r.Kind = Alternatives
	for _, alt := range strings.Split(s, " | ") {
		fields := strings.Fields(alt)
		if len(fields) == 0 {
			return Rule{}, puzzle.Malformed("empty alternative in rule %q", s)
		}
		seq := make([]int, len(fields))
		for i, f := range fields {
			id, err := input.Atoi[uint8](f)
			if err != nil {
				return Rule{}, fmt.Errorf("rule %q: %w", s, err)
			}
			seq[i] = int(id)
		}
		r.Alts = append(r.Alts, seq)
	}
	return r, nil
}

// Rules is the grammar keyed by rule id.
type Rules map[int]Rule

// ParseRules reads "N: body" lines.
func ParseRules(s string) (Rules, error) {
	rules := make(Rules)
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		idStr, body, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, puzzle.Malformed("rule line %q", line)
		}
		id, err := input.Atoi[uint8](idStr)
		if err != nil {
			return nil, err
		}
		r, err := ParseRule(body)
		if err != nil {
			return nil, err
		}
		rules[int(id)] = r
	}
	return rules, nil
}

// WithLoops returns a copy with rules 8 and 11 replaced by their looping
// versions.
func (rs Rules) WithLoops() Rules {
	out := make(Rules, len(rs))
	for id, r := range rs {
		out[id] = r
	}
	out[8] = Rule{Kind: OneOrMore, Arg: []int{42}}
	out[11] = Rule{Kind: Balanced, Arg: []int{42, 31}}
	return out
}

type compiler struct {
	rules Rules
	done  map[int]string
	busy  map[int]bool
}

func (c *compiler) expr(id int) (string, error) {
	if s, ok := c.done[id]; ok {
		return s, nil
	}
	if c.busy[id] {
		return "", puzzle.Malformed("rule %d refers to itself", id)
	}
	r, ok := c.rules[id]
	if !ok {
		return "", puzzle.Malformed("missing rule %d", id)
	}
	c.busy[id] = true
	defer delete(c.busy, id)

	var b strings.Builder
	switch r.Kind {
	case Literal:
		b.WriteString(regexp.QuoteMeta(string(r.Char)))
	case Alternatives:
		b.WriteString("(?:")
		for i, seq := range r.Alts {
			if i > 0 {
				b.WriteByte('|')
			}
			for _, sub := range seq {
				s, err := c.expr(sub)
				if err != nil {
					return "", err
				}
				b.WriteString(s)
			}
		}
		b.WriteByte(')')
	case OneOrMore:
		s, err := c.expr(r.Arg[0])
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "(?:%s)+", s)
	case Balanced:
		left, err := c.expr(r.Arg[0])
		if err != nil {
			return "", err
		}
		right, err := c.expr(r.Arg[1])
		if err != nil {
			return "", err
		}
		b.WriteString("(?:")
		for k := 1; k <= BalancedDepth; k++ {
			if k > 1 {
				b.WriteByte('|')
			}
			fmt.Fprintf(&b, "(?:%s){%d}(?:%s){%d}", left, k, right, k)
		}
		b.WriteByte(')')
	}
	c.done[id] = b.String()
	return c.done[id], nil
}

// Compile turns rule root into an anchored regular expression.
func (rs Rules) Compile(root int) (*regexp.Regexp, error) {
	c := &compiler{rules: rs, done: make(map[int]string), busy: make(map[int]bool)}
	expr, err := c.expr(root)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("compile rule %d: %w", root, err)
	}
	slog.Debug("compiled grammar", "root", root, "pattern_len", len(expr))
	return re, nil
}

// CountMatches counts the messages rule 0 matches completely.
func CountMatches(rs Rules, messages []string) (int, error) {
	re, err := rs.Compile(0)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range messages {
		if re.MatchString(m) {
			n++
		}
	}
	return n, nil
}

// Parse splits the input into rules and messages.
func Parse(in []byte) (Rules, []string, error) {
	blocks := input.Blocks(string(in))
	if len(blocks) != 2 {
		return nil, nil, puzzle.Malformed("want rules and messages, got %d sections", len(blocks))
	}
	rules, err := ParseRules(blocks[0])
	if err != nil {
		return nil, nil, err
	}
	return rules, input.StringLines(blocks[1]), nil
}

// Solve counts matches with the rules as given and with rules 8 and 11 looping.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	rules, messages, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n1, err := CountMatches(rules, messages)
	if err != nil {
		return puzzle.Answer{}, err
	}
	n2, err := CountMatches(rules.WithLoops(), messages)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(n1), Part2: int64(n2)}, nil
}
