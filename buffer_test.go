package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(lb *LineBuffer) []string {
	out := make([]string, lb.LineCount())
	for i := range out {
		out[i] = lb.Line(i).String()
	}
	return out
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"single unterminated", "hello", []string{"hello"}},
		{"single terminated", "hello\n", []string{"hello"}},
		{"leading blank", "\nabc\n", []string{"", "abc"}},
		{"trailing fragment", "a\nbc", []string{"a", "bc"}},
		{"blank lines", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"crlf", "ab\r\ncd\r\n", []string{"ab", "cd"}},
		{"only newline", "\n", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lb LineBuffer
			lb.Load(tt.text)
			assert.Equal(t, tt.want, lines(&lb))
		})
	}
}

func TestLoadClearsPriorContent(t *testing.T) {
	var lb LineBuffer
	lb.Load("one\ntwo\nthree\n")
	lb.Load("x")
	assert.Equal(t, []string{"x"}, lines(&lb))
}

func TestTextRoundTrip(t *testing.T) {
	for _, text := range []string{"", "a\n", "\nabc\n\n", "x\ny\nz\n", sampleText} {
		var lb LineBuffer
		lb.Load(text)
		assert.Equal(t, text, lb.Text())
	}

	// An unterminated last line gains a terminator.
	var lb LineBuffer
	lb.Load("a\nb")
	assert.Equal(t, "a\nb\n", lb.Text())
}

func TestInsertByte(t *testing.T) {
	var lb LineBuffer
	lb.Load("acd\n")

	lb.InsertByte(0, 1, 'b')
	lb.InsertByte(0, 0, '>')
	lb.InsertByte(0, 5, '!')
	assert.Equal(t, ">abcd!", lb.Line(0).String())
	assert.Equal(t, 6, lb.LineLength(0))
	assert.GreaterOrEqual(t, lb.Line(0).Cap(), lb.LineLength(0))
}

func TestInsertByteGrowsEmptyLine(t *testing.T) {
	var lb LineBuffer
	lb.Load("\n")
	for i := 0; i < 100; i++ {
		lb.InsertByte(0, i, 'x')
	}
	assert.Equal(t, strings.Repeat("x", 100), lb.Line(0).String())
	assert.GreaterOrEqual(t, lb.Line(0).Cap(), 100)
}

func TestDeleteByte(t *testing.T) {
	var lb LineBuffer
	lb.Load("abcd\n")
	lb.DeleteByte(0, 1)
	assert.Equal(t, "acd", lb.Line(0).String())
	lb.DeleteByte(0, 2)
	assert.Equal(t, "ac", lb.Line(0).String())
	lb.DeleteByte(0, 0)
	assert.Equal(t, "c", lb.Line(0).String())
}

func TestInsertDeleteInverse(t *testing.T) {
	var lb LineBuffer
	lb.Load("hello\nworld\n")
	for col := 0; col <= 5; col++ {
		lb.InsertByte(1, col, 'Z')
		lb.DeleteByte(1, col)
		require.Equal(t, "world", lb.Line(1).String(), "col %d", col)
	}
}

func TestSplitLine(t *testing.T) {
	var lb LineBuffer
	lb.Load("first\nhello\nlast\n")

	lb.SplitLine(1, 2)
	assert.Equal(t, []string{"first", "he", "llo", "last"}, lines(&lb))

	lb.SplitLine(0, 0)
	assert.Equal(t, []string{"", "first", "he", "llo", "last"}, lines(&lb))

	lb.SplitLine(4, 4)
	assert.Equal(t, []string{"", "first", "he", "llo", "last", ""}, lines(&lb))
}

func TestSplitLineDoesNotAlias(t *testing.T) {
	var lb LineBuffer
	lb.Load("abcdef\n")
	lb.SplitLine(0, 3)
	// Growing the truncated head must not overwrite the new tail line.
	lb.InsertByte(0, 3, 'X')
	assert.Equal(t, []string{"abcX", "def"}, lines(&lb))
}

func TestMergeLine(t *testing.T) {
	var lb LineBuffer
	lb.Load("abc\nde\nf\n")

	require.True(t, lb.MergeLine(0))
	assert.Equal(t, []string{"abcde", "f"}, lines(&lb))

	assert.False(t, lb.MergeLine(1), "last line has nothing to merge")
	assert.Equal(t, []string{"abcde", "f"}, lines(&lb))
}

func TestSplitMergeInverse(t *testing.T) {
	const text = "alpha\n\nbeta gamma\nz\n"
	var ref LineBuffer
	ref.Load(text)

	for row := 0; row < ref.LineCount(); row++ {
		for col := 0; col <= ref.LineLength(row); col++ {
			var lb LineBuffer
			lb.Load(text)
			lb.SplitLine(row, col)
			require.Equal(t, ref.LineCount()+1, lb.LineCount())
			require.True(t, lb.MergeLine(row))
			require.Equal(t, lines(&ref), lines(&lb), "row %d col %d", row, col)
		}
	}
}

func TestInsertLine(t *testing.T) {
	var lb LineBuffer
	lb.InsertLine(0)
	assert.Equal(t, []string{""}, lines(&lb))

	lb.InsertByte(0, 0, 'a')
	lb.InsertLine(1)
	lb.InsertLine(0)
	assert.Equal(t, []string{"", "a", ""}, lines(&lb))
}

func TestOutOfRangePanics(t *testing.T) {
	var lb LineBuffer
	lb.Load("abc\n")

	assert.Panics(t, func() { lb.LineLength(1) })
	assert.Panics(t, func() { lb.LineLength(-1) })
	assert.Panics(t, func() { lb.InsertByte(0, 4, 'x') })
	assert.Panics(t, func() { lb.DeleteByte(0, 3) })
	assert.Panics(t, func() { lb.SplitLine(0, 4) })
	assert.Panics(t, func() { lb.MergeLine(1) })
	assert.Panics(t, func() { lb.InsertLine(3) })
	assert.PanicsWithValue(t, "linebuffer: Line row 5 out of range [0,1)", func() { lb.Line(5) })
}
