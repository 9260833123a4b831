package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/phlip9/aoc20/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Day   string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded with --db, newest first.

Examples:
  aoc20 --db runs.db history
  aoc20 --db runs.db history --day day13 --limit 5`,
		Args:          opts.positional(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Day, "day", "", "only show runs of this day")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "max runs to show (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	if opts.Database == "" {
		return NewExitError(ExitCommandError, "history requires --db")
	}
	if opts.Day != "" {
		if _, err := opts.Registry.Lookup(opts.Day); err != nil {
			return f.Fail("invalid --day", err)
		}
	}

	st, err := opts.openStore()
	if err != nil {
		return f.Fail("failed to open database", err)
	}
	defer closeStore(st)

	runs, err := st.Recent(cmd.Context(), opts.Day, opts.Limit)
	if err != nil {
		return f.Fail("failed to read history", err)
	}
	f.VerboseLog("%d run(s) in %s", len(runs), opts.Database)

	if opts.Format == "json" {
		return f.Success(runs)
	}
	return outputHistoryText(cmd.OutOrStdout(), runs)
}

// outputHistoryText prints runs as an aligned table.
func outputHistoryText(w io.Writer, runs []store.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tDAY\tSTATUS\tPART 1\tPART 2\tELAPSED\tINPUT")
	for _, r := range runs {
		part1, part2 := p.Sprintf("%d", r.Answer.Part1), p.Sprintf("%d", r.Answer.Part2)
		if r.Status != store.StatusOK {
			part1, part2 = "-", "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format(time.DateTime),
			r.Day,
			r.Status,
			part1,
			part2,
			p.Sprintf("%.3fms", float64(r.Elapsed)/float64(time.Millisecond)),
			r.Input,
		)
	}
	return tw.Flush()
}
