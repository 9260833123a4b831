package day14

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func load(t *testing.T, name string) []byte {
	t.Helper()
	in, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return in
}

func TestRunV1_Sample(t *testing.T) {
	prog, err := Parse(load(t, "values.txt"))
	require.NoError(t, err)

	m, err := RunV1(prog)
	require.NoError(t, err)
	assert.Equal(t, int64(165), m.Sum())
	assert.Equal(t, uint64(64), m.mem[8])
	assert.Equal(t, uint64(101), m.mem[7])
}

func TestSolve_Sample(t *testing.T) {
	ans, err := Solve(context.Background(), load(t, "sample.txt"))
	require.NoError(t, err)
	// v1: 100 keeps bits 5 and 0 of the first mask -> 50; 1 -> 1.
	assert.Equal(t, puzzle.Answer{Part1: 51, Part2: 208}, ans)
}

func TestSolve_TooManyFloatingBits(t *testing.T) {
	_, err := Solve(context.Background(), load(t, "values.txt"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestWriteBeforeMask(t *testing.T) {
	in := []byte("mem[8] = 11\nmask = XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X\n")
	prog, err := Parse(in)
	require.NoError(t, err)

	_, err = RunV1(prog)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	_, err = RunV2(prog)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Solve(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "mem[8] written before any mask")
}

func TestMaskPermutations(t *testing.T) {
	assert.Equal(t,
		[]uint64{0b0000, 0b0001, 0b0100, 0b0101, 0b1000, 0b1001, 0b1100, 0b1101},
		MaskPermutations(0b1101))
	assert.Equal(t, []uint64{0}, MaskPermutations(0))
}

func TestPdep(t *testing.T) {
	assert.Equal(t, uint64(0b1001000001), Pdep(0b11001, 0b1001100101))
	assert.Equal(t, uint64(0), Pdep(0b11, 0))
}

func TestParseMask(t *testing.T) {
	s := "XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0X"
	m, err := ParseMask(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1000000), m.Ones)
	assert.Equal(t, uint64(0b10), m.Zeros)
	assert.Equal(t, s, m.String())

	for _, bad := range []string{"X", "XXXXXXXXXXXXXXXXXXXXXXXXXXXXX1XXXX0Z"} {
		_, err := ParseMask(bad)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, bad)
	}

	_, err = Parse([]byte("mem[x] = 3\n"))
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
