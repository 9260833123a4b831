package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlip9/aoc20/internal/puzzle"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0644))

	b, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(b))
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nbb\n", []string{"a", "bb"}},
		{"no trailing newline", "a\nbb", []string{"a", "bb"}},
		{"stops at blank", "a\n\nb\n", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, l := range Lines([]byte(tt.in)) {
				got = append(got, string(l))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringLines(t *testing.T) {
	assert.Nil(t, StringLines(""))
	assert.Equal(t, []string{"a", "", "b"}, StringLines("a\n\nb\n"))
	assert.Equal(t, []string{"a", "b"}, StringLines("a\r\nb\r\n"))
}

func TestBlocks(t *testing.T) {
	assert.Equal(t, []string{"a\nb", "c\n"}, Blocks("a\nb\n\nc\n"))
}

func TestAtoi(t *testing.T) {
	v, err := Atoi[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)

	_, err = Atoi[uint8]("256")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Atoi[uint32]("-1")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Atoi[int]("x")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestInts(t *testing.T) {
	got, err := Ints[int64]([]string{"1", " 2", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, -3}, got)

	_, err = Ints[int64]([]string{"1", "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestAbsProduct(t *testing.T) {
	assert.Equal(t, 4, Abs(-4))
	assert.Equal(t, int64(24), Product([]int64{1, 2, 3, 4}))
	assert.Equal(t, 1, Product[int](nil))
}
