package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/runner"
)

// createTestStore opens a fresh database under t.TempDir().
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var baseTime = time.Date(2020, 12, 1, 5, 0, 0, 0, time.UTC)

// createTestResult builds a successful result started minute minutes after
// baseTime.
func createTestResult(id, day string, minute int) runner.Result {
	return runner.Result{
		RunID:     id,
		Day:       day,
		Input:     "inputs/" + day + ".txt",
		Answer:    puzzle.Answer{Part1: int64(minute), Part2: int64(minute) * 10},
		StartedAt: baseTime.Add(time.Duration(minute) * time.Minute),
		Elapsed:   1500 * time.Microsecond,
	}
}
