package main

// Line storage for the editor. A LineBuffer owns an ordered, gap-free list of
// byte lines and offers the only mutations the editor needs: byte
// insert/delete and line split/merge.

import (
	"fmt"
	"strings"
)

// minLineCap is the smallest allocation made when a line first grows.
const minLineCap = 8

// Line is a single row of text without its terminator.
type Line struct {
	buf []byte // Content; len(buf) is the line size, cap(buf) its capacity.
}

// newLine copies b into a fresh line with capacity equal to its size.
func newLine(b []byte) Line {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Line{buf: buf}
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int { return len(l.buf) }

// Cap returns the allocated capacity of the line.
func (l *Line) Cap() int { return cap(l.buf) }

// Bytes returns the line content. The slice must not be modified.
func (l *Line) Bytes() []byte { return l.buf }

func (l *Line) String() string { return string(l.buf) }

// grow makes room for n more bytes, doubling the capacity when needed.
func (l *Line) grow(n int) {
	need := len(l.buf) + n
	if need <= cap(l.buf) {
		return
	}
	newCap := cap(l.buf) * 2
	if newCap < minLineCap {
		newCap = minLineCap
	}
	if newCap < need {
		newCap = need
	}
	buf := make([]byte, len(l.buf), newCap)
	copy(buf, l.buf)
	l.buf = buf
}

// insert puts c at col, shifting the tail right by one.
func (l *Line) insert(col int, c byte) {
	l.grow(1)
	l.buf = l.buf[:len(l.buf)+1]
	copy(l.buf[col+1:], l.buf[col:])
	l.buf[col] = c
}

// remove drops the byte at col, shifting the tail left by one.
func (l *Line) remove(col int) {
	copy(l.buf[col:], l.buf[col+1:])
	l.buf = l.buf[:len(l.buf)-1]
}

// appendBytes adds b at the end of the line.
func (l *Line) appendBytes(b []byte) {
	l.grow(len(b))
	l.buf = append(l.buf, b...)
}

// truncate cuts the line to its first n bytes, keeping the allocation.
func (l *Line) truncate(n int) {
	l.buf = l.buf[:n]
}

// LineBuffer is the whole document as an ordered list of lines. Row number
// equals index.
type LineBuffer struct {
	lines []Line
}

// Load replaces the buffer content with text split on line terminators. A
// "\r\n" pair counts as one terminator. A trailing unterminated fragment
// becomes the last line; empty text yields no lines.
func (lb *LineBuffer) Load(text string) {
	lb.lines = lb.lines[:0]
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lb.lines = append(lb.lines, newLine([]byte(text)))
			break
		}
		lb.lines = append(lb.lines, newLine([]byte(strings.TrimSuffix(text[:i], "\r"))))
		text = text[i+1:]
	}
}

// Text joins all lines back together, each followed by '\n'.
func (lb *LineBuffer) Text() string {
	var sb strings.Builder
	for i := range lb.lines {
		sb.Write(lb.lines[i].buf)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LineCount returns the number of lines in the buffer.
func (lb *LineBuffer) LineCount() int { return len(lb.lines) }

// Line returns the line at row.
func (lb *LineBuffer) Line(row int) *Line {
	lb.checkRow("Line", row)
	return &lb.lines[row]
}

// LineLength returns the size of the line at row.
func (lb *LineBuffer) LineLength(row int) int {
	lb.checkRow("LineLength", row)
	return len(lb.lines[row].buf)
}

// InsertByte inserts c at col (0..len inclusive) in line row.
func (lb *LineBuffer) InsertByte(row, col int, c byte) {
	lb.checkRow("InsertByte", row)
	l := &lb.lines[row]
	if col < 0 || col > l.Len() {
		panic(fmt.Sprintf("linebuffer: InsertByte column %d out of range [0,%d]", col, l.Len()))
	}
	l.insert(col, c)
}

// DeleteByte removes the byte at col (col < len) in line row.
func (lb *LineBuffer) DeleteByte(row, col int) {
	lb.checkRow("DeleteByte", row)
	l := &lb.lines[row]
	if col < 0 || col >= l.Len() {
		panic(fmt.Sprintf("linebuffer: DeleteByte column %d out of range [0,%d)", col, l.Len()))
	}
	l.remove(col)
}

// InsertLine inserts an empty line at row (0..LineCount inclusive).
func (lb *LineBuffer) InsertLine(row int) {
	if row < 0 || row > len(lb.lines) {
		panic(fmt.Sprintf("linebuffer: InsertLine row %d out of range [0,%d]", row, len(lb.lines)))
	}
	lb.lines = append(lb.lines, Line{})
	copy(lb.lines[row+1:], lb.lines[row:])
	lb.lines[row] = Line{}
}

// SplitLine moves the suffix [col, len) of line row into a new line at
// row+1. Following rows shift down by one.
func (lb *LineBuffer) SplitLine(row, col int) {
	lb.checkRow("SplitLine", row)
	cur := &lb.lines[row]
	if col < 0 || col > cur.Len() {
		panic(fmt.Sprintf("linebuffer: SplitLine column %d out of range [0,%d]", col, cur.Len()))
	}
	tail := newLine(cur.buf[col:])
	cur.truncate(col)

	lb.lines = append(lb.lines, Line{})
	copy(lb.lines[row+2:], lb.lines[row+1:])
	lb.lines[row+1] = tail
}

// MergeLine appends line row+1 to line row and removes row+1. It returns
// false and leaves the buffer untouched when row is the last line.
func (lb *LineBuffer) MergeLine(row int) bool {
	lb.checkRow("MergeLine", row)
	if row == len(lb.lines)-1 {
		return false
	}
	lb.lines[row].appendBytes(lb.lines[row+1].buf)

	copy(lb.lines[row+1:], lb.lines[row+2:])
	lb.lines[len(lb.lines)-1] = Line{}
	lb.lines = lb.lines[:len(lb.lines)-1]
	return true
}

func (lb *LineBuffer) checkRow(op string, row int) {
	if row < 0 || row >= len(lb.lines) {
		panic(fmt.Sprintf("linebuffer: %s row %d out of range [0,%d)", op, row, len(lb.lines)))
	}
}
