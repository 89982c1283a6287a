package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// viewRow returns the characters of viewport row y as drawn on s.
func viewRow(s *memScreen, e *Editor, y int) string {
	return s.Row(1+y, 1, 1+e.View().Cols)
}

func assertCursorAt(t *testing.T, s *memScreen, x, y int) {
	t.Helper()
	fg, bg := GetThemeColor(ColorText)
	c := s.Cell(1+x, 1+y)
	assert.Equal(t, bg, c.Fg, "cursor cell %d,%d foreground", x, y)
	assert.Equal(t, fg, c.Bg, "cursor cell %d,%d background", x, y)
}

func assertPlainAt(t *testing.T, s *memScreen, x, y int) {
	t.Helper()
	fg, bg := GetThemeColor(ColorText)
	c := s.Cell(1+x, 1+y)
	assert.Equal(t, fg, c.Fg, "cell %d,%d foreground", x, y)
	assert.Equal(t, bg, c.Bg, "cell %d,%d background", x, y)
}

func TestFullRefresh(t *testing.T) {
	e := newTestEditor(t, 3, 5, "abcdefg\nxy\n")
	s := newMemScreen(20, 10)
	r := NewRenderer(s)

	require.NoError(t, r.Draw(e, RedrawFull))
	assert.Equal(t, "abcde", viewRow(s, e, 0))
	assert.Equal(t, "xy   ", viewRow(s, e, 1))
	assert.Equal(t, "     ", viewRow(s, e, 2), "past end of buffer")
	assertCursorAt(t, s, 0, 0)
	assertPlainAt(t, s, 1, 0)

	assert.Equal(t, '┌', s.Cell(0, 0).Ch)
	assert.Equal(t, '┐', s.Cell(6, 0).Ch)
	assert.Equal(t, '└', s.Cell(0, 4).Ch)
	assert.Equal(t, '│', s.Cell(6, 2).Ch)
	assert.Equal(t, 1, r.refreshes)
	assert.Equal(t, 1, s.flushes)
}

func TestRefreshShowsScrolledTail(t *testing.T) {
	e := newTestEditor(t, 3, 5, "abcdefg")
	s := newMemScreen(20, 10)
	r := NewRenderer(s)
	require.NoError(t, r.Draw(e, RedrawFull))

	require.NoError(t, r.Draw(e, e.MoveEnd()))
	assert.Equal(t, "defg ", viewRow(s, e, 0))
	assertCursorAt(t, s, 4, 0)
	assert.Equal(t, ' ', s.Cell(5, 1).Ch)
	assert.Equal(t, 2, r.refreshes)
}

func TestLineUpdate(t *testing.T) {
	e := newTestEditor(t, 3, 5, "abcdefg\nxy\n")
	s := newMemScreen(20, 10)
	r := NewRenderer(s)
	require.NoError(t, r.Draw(e, RedrawFull))

	require.NoError(t, r.Draw(e, e.InsertChar('Z')))
	assert.Equal(t, "Zabcd", viewRow(s, e, 0))
	assert.Equal(t, "xy   ", viewRow(s, e, 1))
	assertPlainAt(t, s, 0, 0)
	assertCursorAt(t, s, 1, 0)
	assert.Equal(t, 1, r.refreshes)
	assert.Equal(t, 1, r.lineUpdates)
}

func TestCursorOnlyMove(t *testing.T) {
	e := newTestEditor(t, 3, 5, "abc\nxy\n")
	s := newMemScreen(20, 10)
	r := NewRenderer(s)
	require.NoError(t, r.Draw(e, RedrawFull))

	require.NoError(t, r.Draw(e, e.MoveDown()))
	assertPlainAt(t, s, 0, 0)
	assertCursorAt(t, s, 0, 1)
	assert.Equal(t, 'x', s.Cell(1, 2).Ch)

	require.NoError(t, r.Draw(e, e.MoveRight()))
	assertPlainAt(t, s, 0, 1)
	assertCursorAt(t, s, 1, 1)
	assert.Equal(t, 1, r.refreshes)
	assert.Equal(t, 0, r.lineUpdates)
}

func TestStatusBar(t *testing.T) {
	e := newTestEditor(t, 3, 30, "abc\nxy\n")
	s := newMemScreen(40, 10)
	r := NewRenderer(s)
	require.NoError(t, r.Draw(e, RedrawFull))

	status := s.Row(5, 0, 32)
	assert.True(t, strings.HasPrefix(status, " 1:1/2  view 0,0"), status)

	e.MoveDown()
	e.MoveEnd()
	require.NoError(t, r.Draw(e, RedrawNone))
	status = s.Row(5, 0, 32)
	assert.True(t, strings.HasPrefix(status, " 2:3/2  view 0,0"), status)
}

func TestDebugLogWindow(t *testing.T) {
	old := Config.NumLogsInDebugWindow
	Config.NumLogsInDebugWindow = 5
	t.Cleanup(func() { Config.NumLogsInDebugWindow = old })

	e := newTestEditor(t, 3, 5, "abc\n")
	e.showDebugLog = true
	s := newMemScreen(40, 12)
	r := NewRenderer(s)
	require.NoError(t, r.Draw(e, RedrawFull))

	assert.Contains(t, s.Row(6, 0, 40), "[DEBUG LOG]")
	assert.Contains(t, s.Row(7, 0, 40), "[Editor] Editor init")
	assert.Contains(t, s.Row(8, 0, 40), "Loaded 1 lines")
}

func TestDrawTextTruncates(t *testing.T) {
	s := newMemScreen(10, 1)
	r := NewRenderer(s)
	fg, bg := GetThemeColor(ColorDefault)

	r.drawText(0, 0, "abcdefgh", 5, fg, bg)
	assert.Equal(t, "abcd…     ", s.Row(0, 0, 10))
}
