package forthcore

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_isSpace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\r', '\f'} {
		require.True(t, isSpace(b))
	}
	for _, b := range []byte{'a', '0', '+', 0} {
		require.False(t, isSpace(b))
	}
}

func Test_getWord(t *testing.T) {
	c := newTestCore(t)
	c.SetStringInput("  foo   bar\nbaz")

	for _, want := range []string{"foo", "bar", "baz"} {
		got, err := c.getWord()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := c.getWord()
	require.Equal(t, io.EOF, err)
}

func Test_getWord_truncatesAtMaxLength(t *testing.T) {
	c := newTestCore(t)
	long := ""
	for i := 0; i < 3*MaxWordLength; i++ {
		long += "x"
	}
	c.SetStringInput(long)

	got, err := c.getWord()
	require.NoError(t, err)
	require.Len(t, got, MaxWordLength-1)
}

func Test_comment_stopsAtNewline(t *testing.T) {
	c := newTestCore(t)
	c.SetStringInput(" ignored line\nnext")
	require.NoError(t, c.comment())

	word, err := c.getWord()
	require.NoError(t, err)
	require.Equal(t, "next", word)
}

func Test_comment_atEOF(t *testing.T) {
	c := newTestCore(t)
	c.SetStringInput(" trailing comment, no newline")
	require.NoError(t, c.comment())
}
