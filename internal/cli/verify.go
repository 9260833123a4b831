package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/phlip9/aoc20/internal/manifest"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Concurrency int // overrides the manifest's concurrency when > 0
}

// PuzzleOutcome is the verdict for one manifest entry.
type PuzzleOutcome struct {
	Day   string `json:"day"`
	Input string `json:"input"`
	Pass  bool   `json:"pass"`
	Part1 int64  `json:"part1"`
	Part2 int64  `json:"part2"`
	Error string `json:"error,omitempty"`
}

// VerifyResult holds the overall verify result.
type VerifyResult struct {
	Puzzles []PuzzleOutcome `json:"puzzles"`
	Passed  int             `json:"passed"`
	Failed  int             `json:"failed"`
	Total   int             `json:"total"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <manifest>",
		Short: "Check solvers against known answers",
		Long: `Run every puzzle listed in a YAML manifest and compare the answers.

Manifest format:
  concurrency: 4          # optional
  puzzles:
    - day: day1
      input: inputs/day1.txt   # relative to the manifest
      expect:
        part1: 514579
        part2: 241861950

Exit codes:
  0 - All puzzles passed
  1 - One or more puzzles failed
  2 - Command error (missing or invalid manifest)

Examples:
  aoc20 verify answers.yaml
  aoc20 verify answers.yaml --concurrency 8 --format json`,
		Args:          opts.positional(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "max days solved at once (default: manifest value, else unlimited)")

	return cmd
}

func runVerify(opts *VerifyOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	m, err := manifest.Load(path)
	if err != nil {
		return f.Fail("failed to load manifest", err)
	}

	st, err := opts.openStore()
	if err != nil {
		return f.Fail("failed to open database", err)
	}
	if st != nil {
		defer closeStore(st)
	}

	concurrency := m.Concurrency
	if opts.Concurrency > 0 {
		concurrency = opts.Concurrency
	}

	results, err := opts.newRunner(st).RunAll(cmd.Context(), m.Jobs(), concurrency)
	if err != nil {
		return f.Fail("verify interrupted", err)
	}

	result := VerifyResult{
		Puzzles: make([]PuzzleOutcome, len(results)),
		Total:   len(results),
	}
	for i, res := range results {
		p := m.Puzzles[i]
		outcome := PuzzleOutcome{
			Day:   p.Day,
			Input: p.Input,
			Part1: res.Answer.Part1,
			Part2: res.Answer.Part2,
		}
		if err := p.Check(res); err != nil {
			outcome.Error = err.Error()
			result.Failed++
		} else {
			outcome.Pass = true
			result.Passed++
		}
		result.Puzzles[i] = outcome
	}

	if opts.Format == "json" {
		return outputVerifyJSON(cmd.OutOrStdout(), result)
	}
	return outputVerifyText(cmd.OutOrStdout(), result)
}

// outputVerifyJSON outputs the verify result as JSON.
func outputVerifyJSON(w io.Writer, result VerifyResult) error {
	response := CLIResponse{
		Status: "ok",
		Data:   result,
	}
	if result.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    CodeVerifyFailed,
			Message: fmt.Sprintf("%d puzzle(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d puzzle(s) failed", result.Failed))
	}
	return nil
}

// outputVerifyText prints one line per puzzle and a summary.
func outputVerifyText(w io.Writer, result VerifyResult) error {
	r := lipgloss.NewRenderer(w)
	pass := r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Render("PASS")
	fail := r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render("FAIL")
	dim := r.NewStyle().Faint(true)
	p := message.NewPrinter(language.English)

	for _, o := range result.Puzzles {
		if o.Pass {
			p.Fprintf(w, "%s %-5s %d / %d %s\n", pass, o.Day, o.Part1, o.Part2, dim.Render(o.Input))
			continue
		}
		p.Fprintf(w, "%s %-5s %s\n", fail, o.Day, dim.Render(o.Input))
		fmt.Fprintf(w, "  %s\n", o.Error)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Verify Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d puzzle(s) failed", result.Failed))
	}
	return nil
}
