// Package runner executes solvers against input files: it times each solve,
// turns panics into errors, stamps runs with ids and hands results to an
// optional recorder.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/timer"
)

// Result is one finished run.
type Result struct {
	RunID     string
	Day       string
	Input     string
	Answer    puzzle.Answer
	StartedAt time.Time
	Elapsed   time.Duration
	Err       error
}

// OK reports whether the solver produced an answer.
func (r Result) OK() bool { return r.Err == nil }

// Recorder persists results. The store implements it.
type Recorder interface {
	Record(ctx context.Context, r Result) error
}

// Job names a day and the input file to feed it.
type Job struct {
	Day   string
	Input string
}

// Runner runs days out of a registry.
type Runner struct {
	reg    *puzzle.Registry
	ids    IDGenerator
	rec    Recorder
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithIDGenerator replaces the UUIDv7 run id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Runner) { r.ids = g }
}

// WithRecorder stores every result, including failures.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.rec = rec }
}

// WithClock replaces time.Now for StartedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithLogger replaces slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// New creates a runner over reg.
func New(reg *puzzle.Registry, opts ...Option) *Runner {
	r := &Runner{
		reg:    reg,
		ids:    UUIDv7Generator{},
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run solves one day. Unknown days and unreadable inputs fail before a run
// starts and are only returned. Solver failures, panics included, are
// returned and also carried in Result.Err so they can be recorded.
func (r *Runner) Run(ctx context.Context, day, path string) (Result, error) {
	d, err := r.reg.Lookup(day)
	if err != nil {
		return Result{}, err
	}
	in, err := input.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RunID:     r.ids.Generate(),
		Day:       d.Name,
		Input:     path,
		StartedAt: r.now(),
	}
	t := timer.Start(d.Name).WithLogger(r.logger)
	res.Answer, res.Err = solve(ctx, r.logger, d, in)
	res.Elapsed = t.Stop()

	if res.Err != nil {
		r.logger.Error("solve failed", "day", d.Name, "run_id", res.RunID, "error", res.Err)
	} else {
		r.logger.Debug("solved", "day", d.Name, "run_id", res.RunID, "part1", res.Answer.Part1, "part2", res.Answer.Part2)
	}

	if r.rec != nil {
		if err := r.rec.Record(ctx, res); err != nil {
			return res, fmt.Errorf("record run %s: %w", res.RunID, err)
		}
	}
	return res, res.Err
}

func solve(ctx context.Context, logger *slog.Logger, d puzzle.Day, in []byte) (ans puzzle.Answer, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Debug("solver panic", "day", d.Name, "stack", string(debug.Stack()))
			ans, err = puzzle.Answer{}, fmt.Errorf("%w: %s: %v", puzzle.ErrPanic, d.Name, p)
		}
	}()
	return d.Solve(ctx, in)
}

// RunAll runs jobs with at most concurrency in flight and returns results in
// job order. Per-job failures land in Result.Err; the returned error is only
// set when ctx is cancelled.
func (r *Runner) RunAll(ctx context.Context, jobs []Job, concurrency int) ([]Result, error) {
	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Run(ctx, job.Day, job.Input)
			if res.RunID == "" {
				res = Result{Day: job.Day, Input: job.Input}
			}
			res.Err = err
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
