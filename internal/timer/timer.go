// Package timer reports the wall time spent in a scope.
//
// The usual form is a deferred stop, which also fires while a panic unwinds:
//
//	defer timer.Start("part1").Stop()
package timer

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// Timer measures one scope. It is not safe for concurrent use.
type Timer struct {
	label  string
	at     string
	start  time.Time
	logger *slog.Logger
	now    func() time.Time
}

// Start begins timing a scope labelled label, remembering the caller's
// file:line for the report.
func Start(label string) *Timer {
	return start(label, 2)
}

func start(label string, skip int) *Timer {
	return &Timer{
		label: label,
		at:    callerPos(skip + 1),
		start: time.Now(),
		now:   time.Now,
	}
}

// WithLogger directs the report to l instead of slog.Default().
func (t *Timer) WithLogger(l *slog.Logger) *Timer {
	t.logger = l
	return t
}

// Elapsed returns the time since Start.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Stop logs the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	logger := t.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("time elapsed",
		"label", t.label,
		"at", t.at,
		"elapsed", elapsed,
	)
	return elapsed
}

// Measure times fn and returns its result.
func Measure[T any](label string, fn func() T) T {
	defer start(label, 2).Stop()
	return fn()
}

// Run times fn.
func Run(label string, fn func()) {
	defer start(label, 2).Stop()
	fn()
}

func callerPos(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file)), line)
}
