package main

// Everything drawn around the emulated device screen: the border with the
// title, the position line under it and the optional log window.

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// drawText writes s at x, y, cut to at most width cells.
func (r *Renderer) drawText(x, y int, s string, width int, fg, bg termbox.Attribute) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, "…")
	for _, ch := range s {
		r.screen.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

// drawFrame draws the border around the device screen with the title
// centered in the top edge.
func (r *Renderer) drawFrame(e *Editor) {
	fg, bg := GetThemeColor(ColorFrame)
	left, top := r.x0-1, r.y0-1
	right, bottom := r.x0+e.view.Cols, r.y0+e.view.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetCell(x, top, '─', fg, bg)
		r.screen.SetCell(x, bottom, '─', fg, bg)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetCell(left, y, '│', fg, bg)
		r.screen.SetCell(right, y, '│', fg, bg)
	}
	r.screen.SetCell(left, top, '┌', fg, bg)
	r.screen.SetCell(right, top, '┐', fg, bg)
	r.screen.SetCell(left, bottom, '└', fg, bg)
	r.screen.SetCell(right, bottom, '┘', fg, bg)

	title := fmt.Sprintf(" picoed %s ", Version)
	titleFg, titleBg := GetThemeColor(ColorTitle)
	titleX := left + (e.view.Cols+2-runewidth.StringWidth(title))/2
	if titleX <= left {
		titleX = left + 1
	}
	r.drawText(titleX, top, title, e.view.Cols, titleFg, titleBg)
}

// statusLine describes the cursor and viewport position.
func statusLine(e *Editor) string {
	row, col := e.Position()
	return fmt.Sprintf(" %d:%d/%d  view %d,%d  F1 log  ^Q quit",
		row+1, col+1, e.buf.LineCount(), e.view.OriginRow, e.view.OriginCol)
}

// drawStatusBar fills the line under the frame with the cursor position.
func (r *Renderer) drawStatusBar(e *Editor) {
	y := r.y0 + e.view.Rows + 1
	width := e.view.Cols + 2
	fg, bg := GetThemeColor(ColorStatusBar)
	for x := 0; x < width; x++ {
		r.screen.SetCell(r.x0-1+x, y, ' ', fg, bg)
	}
	r.drawText(r.x0-1, y, statusLine(e), width, fg, bg)
}

// drawDebugLog draws the newest log messages under the status bar.
func (r *Renderer) drawDebugLog(e *Editor) {
	w, h := r.screen.Size()
	startY := r.y0 + e.view.Rows + 2
	width := max(w, e.view.Cols+2)
	fg, bg := GetThemeColor(ColorDebugWindow)

	lines := e.recentLogs(Config.NumLogsInDebugWindow)
	for y := startY; y <= startY+len(lines) && y < h; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetCell(x, y, ' ', fg, bg)
		}
	}

	title := "[DEBUG LOG]"
	titleFg, titleBg := GetThemeColor(ColorDebugTitle)
	r.drawText((width-len(title))/2, startY, title, width, titleFg, titleBg)
	for i, line := range lines {
		r.drawText(1, startY+1+i, line, width-2, fg, bg)
	}
}
