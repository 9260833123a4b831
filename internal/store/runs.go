package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/runner"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// timeLayout is fixed width so started_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one row of run history.
type Run struct {
	ID        string        `json:"id"`
	Day       string        `json:"day"`
	Input     string        `json:"input"`
	Status    string        `json:"status"`
	Answer    puzzle.Answer `json:"answer"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Record implements runner.Recorder.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - a run recorded twice is
// silently ignored.
func (s *Store) Record(ctx context.Context, r runner.Result) error {
	status, errText := StatusOK, ""
	if r.Err != nil {
		status, errText = StatusError, r.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, day, input, status, part1, part2, error, started_at, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.RunID,
		r.Day,
		r.Input,
		status,
		r.Answer.Part1,
		r.Answer.Part2,
		errText,
		r.StartedAt.UTC().Format(timeLayout),
		r.Elapsed.Nanoseconds(),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the newest runs first, optionally only for one day.
// limit <= 0 returns every row.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) Recent(ctx context.Context, day string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, day, input, status, part1, part2, error, started_at, elapsed_ns
		FROM runs
		WHERE ? = '' OR day = ?
		ORDER BY started_at DESC, id COLLATE BINARY DESC
		LIMIT ?
	`, day, day, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun retrieves a single run by id.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, day, input, status, part1, part2, error, started_at, elapsed_ns
		FROM runs
		WHERE id = ?
	`, id)
	return scanRun(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		startedAt string
		elapsedNS int64
	)
	if err := sc.Scan(
		&r.ID, &r.Day, &r.Input, &r.Status, &r.Answer.Part1, &r.Answer.Part2,
		&r.Error, &startedAt, &elapsedNS,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	r.StartedAt = t
	r.Elapsed = time.Duration(elapsedNS)
	return r, nil
}
