// Package day7 solves "Handy Haversacks": a weighted containment graph of
// bag colors.
package day7

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Target is the bag both parts ask about.
const Target = "shiny gold"

// Content is one "N <color> bag(s)" clause.
type Content struct {
	Count int
	Bag   string
}

// Rule is one line: Bag contains Contains.
type Rule struct {
	Bag      string
	Contains []Content
}

func (r Rule) String() string {
	parts := make([]string, len(r.Contains))
	for i, c := range r.Contains {
		parts[i] = fmt.Sprintf("%d %s", c.Count, c.Bag)
	}
	return fmt.Sprintf("%s => [%s]", r.Bag, strings.Join(parts, ", "))
}

// ParseRule reads "light red bags contain 1 bright white bag, 2 muted yellow bags.".
func ParseRule(s string) (Rule, error) {
	bag, rest, ok := strings.Cut(s, " bags contain ")
	if !ok {
		return Rule{}, puzzle.Malformed("rule %q has no \"bags contain\"", s)
	}
	rule := Rule{Bag: bag}
	rest = strings.TrimSuffix(rest, ".")
	for _, clause := range strings.Split(rest, ", ") {
		name, ok := strings.CutSuffix(clause, " bags")
		if !ok {
			name, ok = strings.CutSuffix(clause, " bag")
		}
		if !ok {
			return Rule{}, puzzle.Malformed("clause %q in rule %q", clause, s)
		}
		if name == "no other" {
			break
		}
		num, color, ok := strings.Cut(name, " ")
		if !ok {
			return Rule{}, puzzle.Malformed("clause %q in rule %q", clause, s)
		}
		n, err := input.Atoi[uint8](num)
		if err != nil {
			return Rule{}, err
		}
		rule.Contains = append(rule.Contains, Content{Count: int(n), Bag: color})
	}
	return rule, nil
}

type edge struct {
	to     int
	weight int
}

// Graph indexes bags and their containment edges in both directions.
type Graph struct {
	index  map[string]int
	out    [][]edge
	in     [][]int
	nameOf []string
}

// NewGraph builds the graph from parsed rules. Every contained bag must have a
// rule of its own.
func NewGraph(rules []Rule) (*Graph, error) {
	g := &Graph{
		index:  make(map[string]int, len(rules)),
		out:    make([][]edge, len(rules)),
		in:     make([][]int, len(rules)),
		nameOf: make([]string, len(rules)),
	}
	for i, r := range rules {
		g.index[r.Bag] = i
		g.nameOf[i] = r.Bag
	}
	for i, r := range rules {
		for _, c := range r.Contains {
			j, ok := g.index[c.Bag]
			if !ok {
				return nil, puzzle.Malformed("bag %q contains unknown bag %q", r.Bag, c.Bag)
			}
			g.out[i] = append(g.out[i], edge{to: j, weight: c.Count})
			g.in[j] = append(g.in[j], i)
		}
	}
	return g, nil
}

func (g *Graph) lookup(bag string) (int, error) {
	i, ok := g.index[bag]
	if !ok {
		return 0, puzzle.NoSolution("no rule for bag %q", bag)
	}
	return i, nil
}

// CountContainers returns how many distinct bags eventually contain bag.
func (g *Graph) CountContainers(bag string) (int, error) {
	start, err := g.lookup(bag)
	if err != nil {
		return 0, err
	}
	seen := make([]bool, len(g.in))
	seen[start] = true
	stack := []int{start}
	count := 0
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range g.in[n] {
			if !seen[p] {
				seen[p] = true
				count++
				stack = append(stack, p)
			}
		}
	}
	return count, nil
}

// CountContained returns the number of bags inside one bag:
//
//	contained(i) = Σ w(i,j) * (1 + contained(j))
func (g *Graph) CountContained(bag string) (int64, error) {
	start, err := g.lookup(bag)
	if err != nil {
		return 0, err
	}
	const (
		unvisited = iota
		active
		done
	)
	state := make([]int, len(g.out))
	contained := make([]int64, len(g.out))

	var visit func(n int) error
	visit = func(n int) error {
		switch state[n] {
		case done:
			return nil
		case active:
			return puzzle.Malformed("bag %q transitively contains itself", g.nameOf[n])
		}
		state[n] = active
		var sum int64
		for _, e := range g.out[n] {
			if err := visit(e.to); err != nil {
				return err
			}
			sum += int64(e.weight) * (1 + contained[e.to])
		}
		contained[n] = sum
		state[n] = done
		return nil
	}
	if err := visit(start); err != nil {
		return 0, err
	}
	return contained[start], nil
}

// Solve answers both questions about the shiny gold bag.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	var rules []Rule
	for _, line := range input.StringLines(string(in)) {
		if line == "" {
			continue
		}
		r, err := ParseRule(line)
		if err != nil {
			return puzzle.Answer{}, err
		}
		rules = append(rules, r)
	}
	g, err := NewGraph(rules)
	if err != nil {
		return puzzle.Answer{}, err
	}

	containers, err := g.CountContainers(Target)
	if err != nil {
		return puzzle.Answer{}, err
	}
	contained, err := g.CountContained(Target)
	if err != nil {
		return puzzle.Answer{}, err
	}
	slog.Debug("bag graph", "bags", len(rules), "containers", containers, "contained", contained)
	return puzzle.Answer{Part1: int64(containers), Part2: contained}, nil
}
