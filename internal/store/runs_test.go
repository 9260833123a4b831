package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
	"github.com/phlip9/aoc20/internal/runner"
	"github.com/phlip9/aoc20/internal/testutil"
)

func TestRecord_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	res := createTestResult("run-1", "day1", 0)
	res.StartedAt = res.StartedAt.Add(123456789 * time.Nanosecond)
	require.NoError(t, s.Record(ctx, res))

	got, err := s.ReadRun(ctx, "run-1")
	require.NoError(t, err)
	assert.True(t, res.StartedAt.Equal(got.StartedAt), "started_at %v != %v", got.StartedAt, res.StartedAt)
	got.StartedAt = time.Time{}
	assert.Equal(t, Run{
		ID:      "run-1",
		Day:     "day1",
		Input:   "inputs/day1.txt",
		Status:  StatusOK,
		Answer:  puzzle.Answer{Part1: 0, Part2: 0},
		Elapsed: 1500 * time.Microsecond,
	}, got)
}

func TestRecord_Failure(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	res := createTestResult("run-err", "day8", 1)
	res.Answer = puzzle.Answer{}
	res.Err = puzzle.NoSolution("program terminates without repair")
	require.NoError(t, s.Record(ctx, res))

	got, err := s.ReadRun(ctx, "run-err")
	require.NoError(t, err)
	assert.Equal(t, StatusError, got.Status)
	assert.Equal(t, "no solution: program terminates without repair", got.Error)
}

func TestRecord_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, createTestResult("run-1", "day1", 1)))
	dup := createTestResult("run-1", "day2", 2)
	require.NoError(t, s.Record(ctx, dup))

	runs, err := s.Recent(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "day1", runs[0].Day, "first write wins")
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestRecent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i, day := range []string{"day1", "day2", "day1", "day3", "day1"} {
		id := "run-" + string(rune('a'+i))
		require.NoError(t, s.Record(ctx, createTestResult(id, day, i)))
	}

	all, err := s.Recent(ctx, "", 0)
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, r := range all {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"run-e", "run-d", "run-c", "run-b", "run-a"}, ids)

	day1, err := s.Recent(ctx, "day1", 2)
	require.NoError(t, err)
	require.Len(t, day1, 2)
	assert.Equal(t, "run-e", day1[0].ID)
	assert.Equal(t, "run-c", day1[1].ID)

	none, err := s.Recent(ctx, "day19", 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRecent_SubsecondOrdering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	early := createTestResult("run-early", "day1", 0)
	early.StartedAt = baseTime.Add(500 * time.Millisecond)
	late := createTestResult("run-late", "day1", 0)
	late.StartedAt = baseTime.Add(time.Second)
	require.NoError(t, s.Record(ctx, late))
	require.NoError(t, s.Record(ctx, early))

	runs, err := s.Recent(ctx, "day1", 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-late", runs[0].ID)
}

func TestStore_AsRunnerRecorder(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	reg := puzzle.NewRegistry(puzzle.Day{
		Name: "day1",
		Solve: func(_ context.Context, in []byte) (puzzle.Answer, error) {
			return puzzle.Answer{Part1: int64(len(in))}, nil
		},
	})
	clock := testutil.NewStepClock(baseTime, 250*time.Millisecond)
	r := runner.New(reg,
		runner.WithRecorder(s),
		runner.WithClock(clock.Now),
		runner.WithIDGenerator(runner.NewFixedGenerator("run-a", "run-b", "run-c")),
	)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0644))
	for i := 0; i < 3; i++ {
		_, err := r.Run(ctx, "day1", path)
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"run-c", "run-b", "run-a"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
	assert.True(t, runs[0].StartedAt.Equal(baseTime.Add(500*time.Millisecond)))
	assert.Equal(t, int64(5), runs[2].Answer.Part1)
	assert.Equal(t, path, runs[2].Input)
}
