package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/store"
)

// DayResult is the output of a single solved day.
type DayResult struct {
	Day   string `json:"day"`
	Part1 int64  `json:"part1"`
	Part2 int64  `json:"part2"`
}

func (r DayResult) String() string {
	return fmt.Sprintf("%s part1: %d\n%s part2: %d", r.Day, r.Part1, r.Day, r.Part2)
}

// NewDayCommand creates the subcommand that solves d.
func NewDayCommand(rootOpts *RootOptions, d puzzle.Day) *cobra.Command {
	short := d.Title
	if short == "" {
		short = "Solve " + d.Name
	}
	return &cobra.Command{
		Use:   d.Name + " <input-file>",
		Short: short,
		Long: fmt.Sprintf(`Solve %s against an input file and print both answers.

Exit codes:
  0 - Solved
  1 - Solver failed (malformed input, no solution)
  2 - Command error (missing or unreadable input file)`, d.Name),
		Args:          rootOpts.positional(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(rootOpts, d.Name, args[0], cmd)
		},
	}
}

func runDay(opts *RootOptions, day, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	st, err := opts.openStore()
	if err != nil {
		return f.Fail("failed to open database", err)
	}
	if st != nil {
		defer closeStore(st)
	}

	res, err := opts.newRunner(st).Run(cmd.Context(), day, path)
	if err != nil {
		return f.Fail(fmt.Sprintf("%s failed", day), err)
	}

	var traceID string
	if st != nil {
		traceID = res.RunID
	}
	return f.SuccessWithTrace(DayResult{
		Day:   res.Day,
		Part1: res.Answer.Part1,
		Part2: res.Answer.Part2,
	}, traceID)
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}
}
