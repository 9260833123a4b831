// Package cli builds the aoc20 command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phlip9/aoc20/internal/days"
	"github.com/phlip9/aoc20/internal/logging"
	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/runner"
	"github.com/phlip9/aoc20/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	LogFile  string // extra JSON log sink
	Database string // run history; empty disables recording

	// Registry is the set of days the CLI dispatches to.
	Registry *puzzle.Registry

	// IDGenerator allows overriding the run id generator (for testing).
	// If nil, runs get UUIDv7 ids.
	IDGenerator runner.IDGenerator

	closeLog func() error
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command with every built-in day.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{Registry: days.Registry()})
}

// NewRootCommandWithOptions creates the root command over opts.Registry.
// Each registered day becomes a subcommand. Callers that pass --log-file
// must call opts.CloseLog once the command has run, whatever its result.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	reg := opts.Registry

	cmd := &cobra.Command{
		Use:   "aoc20",
		Short: "Advent of Code 2020 solvers",
		Long: `Solve Advent of Code 2020 puzzles.

Each day is a subcommand that reads one puzzle input file and prints the
answers to both parts. Elapsed time is logged to stderr.

Examples:
  aoc20 day1 input/day1.txt
  aoc20 --format json day13 input/day13.txt
  aoc20 --db runs.db verify answers.yaml`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(opts, args, cmd)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			_, closeLog, err := logging.Setup(logging.Options{
				Verbose: opts.Verbose,
				Stderr:  cmd.ErrOrStderr(),
				LogFile: opts.LogFile,
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to set up logging", err)
			}
			opts.closeLog = closeLog
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "also write JSON logs to this file")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite run history")

	cmd.AddGroup(&cobra.Group{ID: "days", Title: "Puzzle days:"})
	for _, d := range reg.Days() {
		dayCmd := NewDayCommand(opts, d)
		dayCmd.GroupID = "days"
		cmd.AddCommand(dayCmd)
	}

	// Add subcommands
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewDaysCommand(opts))

	return cmd
}

// runRoot handles arguments that matched no subcommand: none at all, or a
// day name that is not registered.
func runRoot(opts *RootOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	if len(args) == 0 {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return f.Fail("aoc20", fmt.Errorf("%w: no command given", ErrUsage))
	}
	if _, err := opts.Registry.Lookup(args[0]); err != nil {
		return f.Fail("unknown command", err)
	}
	return f.Fail("unknown command", fmt.Errorf("%w: %q has no command", ErrUsage, args[0]))
}

// CloseLog releases the --log-file handle opened by the root command. It is
// safe to call more than once and when no log file was opened.
func (o *RootOptions) CloseLog() error {
	if o.closeLog == nil {
		return nil
	}
	closeLog := o.closeLog
	o.closeLog = nil
	return closeLog()
}

// positional wraps an argument validator so that argument mistakes exit
// with ExitCommandError and, in JSON mode, print an error envelope.
func (o *RootOptions) positional(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return o.formatter(cmd).Fail(cmd.Name(), fmt.Errorf("%w: %v", ErrUsage, err))
		}
		return nil
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// formatter returns an OutputFormatter writing to cmd's streams.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// openStore opens the --db store. It returns a nil store when no database
// was requested.
func (o *RootOptions) openStore() (*store.Store, error) {
	if o.Database == "" {
		return nil, nil
	}
	return store.Open(o.Database)
}

// newRunner builds a runner that records into st when st is non-nil.
func (o *RootOptions) newRunner(st *store.Store) *runner.Runner {
	var opts []runner.Option
	if o.IDGenerator != nil {
		opts = append(opts, runner.WithIDGenerator(o.IDGenerator))
	}
	if st != nil {
		opts = append(opts, runner.WithRecorder(st))
	}
	return runner.New(o.Registry, opts...)
}
