package main

// Renderer for the emulated device screen. It turns the editor's redraw
// directives into cell updates: a full refresh repaints every viewport cell,
// a line update repaints the cursor row, and the cursor itself is an overlay
// with inverted colors drawn last.

import "github.com/nsf/termbox-go"

// Renderer paints an Editor onto a Screen.
type Renderer struct {
	screen Screen
	x0, y0 int // Terminal cell of the viewport's top-left corner.

	cursorX, cursorY int  // Viewport cell holding the drawn cursor.
	cursorShown      bool // Whether cursorX/cursorY are valid.

	refreshes   int // Full refreshes performed.
	lineUpdates int // Single row repaints performed.
}

// NewRenderer creates a renderer that draws the device screen inside a one
// cell frame at the top-left corner of s.
func NewRenderer(s Screen) *Renderer {
	return &Renderer{screen: s, x0: 1, y0: 1}
}

// Draw executes a redraw directive and moves the cursor overlay.
func (r *Renderer) Draw(e *Editor, redraw Redraw) error {
	switch redraw {
	case RedrawFull:
		if err := r.refreshScreen(e); err != nil {
			return err
		}
	case RedrawLine:
		r.hideCursor(e)
		r.updateLine(e)
	default:
		r.hideCursor(e)
	}

	r.drawStatusBar(e)
	r.showCursor(e)
	return r.screen.Flush()
}

// cellChar returns the byte shown in viewport cell x, y, or a blank past the
// end of the line or buffer.
func cellChar(e *Editor, x, y int) rune {
	row := e.view.OriginRow + y
	if row >= e.buf.LineCount() {
		return ' '
	}
	line := e.buf.Line(row).Bytes()
	col := e.view.OriginCol + x
	if col >= len(line) {
		return ' '
	}
	return rune(line[col])
}

func (r *Renderer) drawCell(e *Editor, x, y int, fg, bg termbox.Attribute) {
	r.screen.SetCell(r.x0+x, r.y0+y, cellChar(e, x, y), fg, bg)
}

// refreshScreen clears the terminal and repaints everything.
func (r *Renderer) refreshScreen(e *Editor) error {
	fg, bg := GetThemeColor(ColorDefault)
	if err := r.screen.Clear(fg, bg); err != nil {
		return err
	}
	r.cursorShown = false
	r.refreshes++

	r.drawFrame(e)
	textFg, textBg := GetThemeColor(ColorText)
	for y := 0; y < e.view.Rows; y++ {
		for x := 0; x < e.view.Cols; x++ {
			r.drawCell(e, x, y, textFg, textBg)
		}
	}

	if e.showDebugLog {
		r.drawDebugLog(e)
	}
	return nil
}

// updateLine repaints the row holding the cursor.
func (r *Renderer) updateLine(e *Editor) {
	r.lineUpdates++
	fg, bg := GetThemeColor(ColorText)
	for x := 0; x < e.view.Cols; x++ {
		r.drawCell(e, x, e.cur.Row, fg, bg)
	}
}

// hideCursor restores the cell under the previously drawn cursor.
func (r *Renderer) hideCursor(e *Editor) {
	if !r.cursorShown {
		return
	}
	fg, bg := GetThemeColor(ColorText)
	r.drawCell(e, r.cursorX, r.cursorY, fg, bg)
	r.cursorShown = false
}

// showCursor draws the cursor cell with foreground and background swapped.
func (r *Renderer) showCursor(e *Editor) {
	fg, bg := GetThemeColor(ColorText)
	r.cursorX, r.cursorY = e.cur.Col, e.cur.Row
	r.drawCell(e, r.cursorX, r.cursorY, bg, fg)
	r.cursorShown = true
}
