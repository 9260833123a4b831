// Package days wires every solver into one registry.
package days

import (
	"github.com/phlip9/aoc20/internal/day1"
	"github.com/phlip9/aoc20/internal/day10"
	"github.com/phlip9/aoc20/internal/day11"
	"github.com/phlip9/aoc20/internal/day12"
	"github.com/phlip9/aoc20/internal/day13"
	"github.com/phlip9/aoc20/internal/day14"
	"github.com/phlip9/aoc20/internal/day15"
	"github.com/phlip9/aoc20/internal/day16"
	"github.com/phlip9/aoc20/internal/day17"
	"github.com/phlip9/aoc20/internal/day18"
	"github.com/phlip9/aoc20/internal/day19"
	"github.com/phlip9/aoc20/internal/day2"
	"github.com/phlip9/aoc20/internal/day3"
	"github.com/phlip9/aoc20/internal/day4"
	"github.com/phlip9/aoc20/internal/day5"
	"github.com/phlip9/aoc20/internal/day6"
	"github.com/phlip9/aoc20/internal/day7"
	"github.com/phlip9/aoc20/internal/day8"
	"github.com/phlip9/aoc20/internal/day9"
	"github.com/phlip9/aoc20/internal/puzzle"
)

var all = []puzzle.Day{
	{Name: "day1", Title: "Report Repair", Solve: day1.Solve},
	{Name: "day2", Title: "Password Philosophy", Solve: day2.Solve},
	{Name: "day3", Title: "Toboggan Trajectory", Solve: day3.Solve},
	{Name: "day4", Title: "Passport Processing", Solve: day4.Solve},
	{Name: "day5", Title: "Binary Boarding", Solve: day5.Solve},
	{Name: "day6", Title: "Custom Customs", Solve: day6.Solve},
	{Name: "day7", Title: "Handy Haversacks", Solve: day7.Solve},
	{Name: "day8", Title: "Handheld Halting", Solve: day8.Solve},
	{Name: "day9", Title: "Encoding Error", Solve: day9.Solve},
	{Name: "day10", Title: "Adapter Array", Solve: day10.Solve},
	{Name: "day11", Title: "Seating System", Solve: day11.Solve},
	{Name: "day12", Title: "Rain Risk", Solve: day12.Solve},
	{Name: "day13", Title: "Shuttle Search", Solve: day13.Solve},
	{Name: "day14", Title: "Docking Data", Solve: day14.Solve},
	{Name: "day15", Title: "Rambunctious Recitation", Solve: day15.Solve},
	{Name: "day16", Title: "Ticket Translation", Solve: day16.Solve},
	{Name: "day17", Title: "Conway Cubes", Solve: day17.Solve},
	{Name: "day18", Title: "Operation Order", Solve: day18.Solve},
	{Name: "day19", Title: "Monster Messages", Solve: day19.Solve},
}

// Registry returns a fresh registry holding day1 through day19.
func Registry() *puzzle.Registry {
	return puzzle.NewRegistry(all...)
}
