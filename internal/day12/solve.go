// Package day12 solves "Rain Risk". Positions and headings are Gaussian
// integers, so turning is multiplication by a unit.
package day12

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Point is x + yi with east as +x and north as +y.
type Point struct{ X, Y int }

var (
	North = Point{0, 1}
	South = Point{0, -1}
	East  = Point{1, 0}
	West  = Point{-1, 0}
)

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns k * p.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Mul multiplies p and q as complex numbers, rotating p by q's angle.
func (p Point) Mul(q Point) Point { return Point{p.X*q.X - p.Y*q.Y, p.X*q.Y + p.Y*q.X} }

// Manhattan returns |X| + |Y|.
func (p Point) Manhattan() int { return input.Abs(p.X) + input.Abs(p.Y) }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// leftTurn maps a counterclockwise angle onto the unit that rotates by it.
var leftTurn = map[int]Point{
	90:  {0, 1},
	180: {-1, 0},
	270: {0, -1},
}

// Kind classifies an action.
type Kind uint8

const (
	Translate Kind = iota
	Rotate
	Forward
)

// Action is one parsed navigation instruction.
type Action struct {
	Kind  Kind
	Delta Point // Translate: offset; Rotate: unit multiplier
	N     int   // Forward: distance
}

// ParseAction reads "F10", "N3", "R90" and friends.
func ParseAction(s string) (Action, error) {
	if len(s) < 2 {
		return Action{}, puzzle.Malformed("action %q", s)
	}
	v, err := strconv.Atoi(s[1:])
	if err != nil {
		return Action{}, puzzle.Malformed("action %q: %v", s, err)
	}
	switch s[0] {
	case 'N':
		return Action{Kind: Translate, Delta: North.Scale(v)}, nil
	case 'S':
		return Action{Kind: Translate, Delta: South.Scale(v)}, nil
	case 'E':
		return Action{Kind: Translate, Delta: East.Scale(v)}, nil
	case 'W':
		return Action{Kind: Translate, Delta: West.Scale(v)}, nil
	case 'F':
		return Action{Kind: Forward, N: v}, nil
	case 'L', 'R':
		u, ok := leftTurn[v]
		if !ok {
			return Action{}, puzzle.Malformed("turn by %d degrees", v)
		}
		if s[0] == 'R' {
			// Three lefts make a right.
			u = u.Mul(u).Mul(u)
		}
		return Action{Kind: Rotate, Delta: u}, nil
	}
	return Action{}, puzzle.Malformed("unknown action %q", s[0])
}

// Ship moves along its heading.
type Ship struct {
	Pos, Heading Point
}

// NewShip starts at the origin facing east.
func NewShip() Ship { return Ship{Heading: East} }

// Apply returns the ship after action a.
func (s Ship) Apply(a Action) Ship {
	switch a.Kind {
	case Translate:
		s.Pos = s.Pos.Add(a.Delta)
	case Rotate:
		s.Heading = s.Heading.Mul(a.Delta)
	case Forward:
		s.Pos = s.Pos.Add(s.Heading.Scale(a.N))
	}
	return s
}

// WaypointShip moves toward a waypoint relative to itself; translations and
// rotations act on the waypoint.
type WaypointShip struct {
	Pos, Waypoint Point
}

// NewWaypointShip starts with the waypoint 10 east and 1 north.
func NewWaypointShip() WaypointShip {
	return WaypointShip{Waypoint: East.Scale(10).Add(North)}
}

// Apply returns the ship after action a.
func (s WaypointShip) Apply(a Action) WaypointShip {
	switch a.Kind {
	case Translate:
		s.Waypoint = s.Waypoint.Add(a.Delta)
	case Rotate:
		s.Waypoint = s.Waypoint.Mul(a.Delta)
	case Forward:
		s.Pos = s.Pos.Add(s.Waypoint.Scale(a.N))
	}
	return s
}

// Solve sails both ways and reports the Manhattan distances.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	ship, wp := NewShip(), NewWaypointShip()
	for i, line := range input.StringLines(string(in)) {
		a, err := ParseAction(line)
		if err != nil {
			return puzzle.Answer{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		ship = ship.Apply(a)
		wp = wp.Apply(a)
	}
	slog.Debug("final positions", "ship", ship.Pos, "waypoint_ship", wp.Pos)
	return puzzle.Answer{
		Part1: int64(ship.Pos.Manhattan()),
		Part2: int64(wp.Pos.Manhattan()),
	}, nil
}
