package main

// Editing core of the application. The Editor groups the line buffer, the
// viewport and the cursor, and every command below moves that state from one
// consistent position to the next while reporting how much of the screen has
// to be repainted.

import "fmt"

// Redraw tells the renderer how much of the viewport changed.
type Redraw int

const (
	RedrawNone Redraw = iota // Only the cursor may have moved.
	RedrawLine               // Repaint the row holding the cursor.
	RedrawFull               // Repaint the whole viewport.
)

func (r Redraw) String() string {
	switch r {
	case RedrawNone:
		return "none"
	case RedrawLine:
		return "line"
	case RedrawFull:
		return "full"
	}
	return fmt.Sprintf("Redraw(%d)", int(r))
}

// Editor is the single editor state aggregate. It is created once at startup
// and handed around by pointer.
type Editor struct {
	buf  LineBuffer // Document lines.
	view Viewport   // Visible window into buf.
	cur  Cursor     // Cursor relative to view.

	logMessages    []string // Internal debug logs shown in the log window.
	maxLogMessages int      // Maximum capacity of the log ring buffer.
	showDebugLog   bool     // Visibility toggle for the log window.
	devMode        bool     // Check invariants after every command.
}

// NewEditor creates an editor with an empty buffer and a viewport sized from
// the display geometry.
func NewEditor(g Geometry, devMode bool) *Editor {
	e := &Editor{
		view:           Viewport{Rows: g.Rows(), Cols: g.Cols()},
		logMessages:    []string{},
		maxLogMessages: 50,
		devMode:        devMode,
	}
	e.addLog("Editor", fmt.Sprintf("Editor initialized with %dx%d viewport", e.view.Cols, e.view.Rows))
	return e
}

// Load replaces the document and puts the cursor at the top-left corner.
func (e *Editor) Load(text string) {
	e.buf.Load(text)
	e.view.OriginRow, e.view.OriginCol = 0, 0
	e.cur = Cursor{}
	e.addLog("Editor", fmt.Sprintf("Loaded %d lines", e.buf.LineCount()))
}

// Buffer returns the document.
func (e *Editor) Buffer() *LineBuffer { return &e.buf }

// View returns a copy of the viewport.
func (e *Editor) View() Viewport { return e.view }

// Cursor returns a copy of the relative cursor.
func (e *Editor) Cursor() Cursor { return e.cur }

// Position returns the absolute buffer position of the cursor.
func (e *Editor) Position() (row, col int) {
	return e.row(), e.col()
}

func (e *Editor) row() int { return e.view.OriginRow + e.cur.Row }
func (e *Editor) col() int { return e.view.OriginCol + e.cur.Col }

func (e *Editor) empty() bool { return e.buf.LineCount() == 0 }

// lineLength returns the length of the cursor line, 0 for an empty buffer.
func (e *Editor) lineLength() int {
	if e.empty() {
		return 0
	}
	return e.buf.LineLength(e.row())
}

// checkInvariants reports the first broken relation between buffer, viewport
// and cursor.
func (e *Editor) checkInvariants() error {
	v, c := e.view, e.cur
	switch {
	case v.OriginRow < 0 || v.OriginCol < 0:
		return fmt.Errorf("negative origin %d,%d", v.OriginRow, v.OriginCol)
	case c.Row < 0 || c.Row >= v.Rows:
		return fmt.Errorf("cursor row %d outside viewport of %d rows", c.Row, v.Rows)
	case c.Col < 0 || c.Col >= v.Cols:
		return fmt.Errorf("cursor column %d outside viewport of %d columns", c.Col, v.Cols)
	}
	if e.empty() {
		if e.row() != 0 || e.col() != 0 {
			return fmt.Errorf("cursor at %d,%d in empty buffer", e.row(), e.col())
		}
		return nil
	}
	if e.row() >= e.buf.LineCount() {
		return fmt.Errorf("cursor row %d past last line %d", e.row(), e.buf.LineCount()-1)
	}
	if l := e.lineLength(); e.col() > l {
		return fmt.Errorf("cursor column %d past end of line %d (length %d)", e.col(), e.row(), l)
	}
	return nil
}

// fixCursorPosition keeps the cursor inside or at the end of the current line
// after a vertical move. It returns true when the horizontal origin moved.
func (e *Editor) fixCursorPosition() bool {
	lineLen := e.lineLength()
	if e.col() <= lineLen {
		return false
	}

	// Line at least partially on screen: cursor goes to its visible end.
	if e.view.OriginCol < lineLen {
		e.cur.Col = lineLen - e.view.OriginCol
		return false
	}

	oldOrigin := e.view.OriginCol
	if lineLen >= e.view.Cols {
		// Long line, show its tail with the cursor in the last column.
		e.view.OriginCol = lineLen - e.view.Cols + 1
		e.cur.Col = e.view.Cols - 1
	} else {
		e.view.OriginCol = 0
		e.cur.Col = lineLen
	}
	return e.view.OriginCol != oldOrigin
}

// moveToColumn puts the cursor on absolute column x of the current line,
// scrolling horizontally when x is not visible. It returns true on scroll.
func (e *Editor) moveToColumn(x int) bool {
	scrolled := false
	if x < e.view.OriginCol || x >= e.view.OriginCol+e.view.Cols {
		e.view.OriginCol = max(x-e.view.Cols+1, 0)
		scrolled = true
	}
	e.cur.Col = x - e.view.OriginCol
	return scrolled
}

// MoveUp moves the cursor one row up, scrolling at the top edge.
func (e *Editor) MoveUp() Redraw {
	if e.empty() || e.row() == 0 {
		return RedrawNone
	}

	redraw := RedrawNone
	if e.cur.Row > 0 {
		e.cur.Row--
	} else {
		e.view.OriginRow--
		redraw = RedrawFull
	}

	if e.fixCursorPosition() {
		redraw = RedrawFull
	}
	return redraw
}

// MoveDown moves the cursor one row down, scrolling at the bottom edge.
func (e *Editor) MoveDown() Redraw {
	if e.empty() || e.row() == e.buf.LineCount()-1 {
		return RedrawNone
	}

	redraw := RedrawNone
	if e.cur.Row < e.view.Rows-1 {
		e.cur.Row++
	} else if e.buf.LineCount() > e.view.OriginRow+e.view.Rows {
		e.view.OriginRow++
		redraw = RedrawFull
	}

	if e.fixCursorPosition() {
		redraw = RedrawFull
	}
	return redraw
}

// MoveLeft moves the cursor one column left, scrolling at the left edge.
func (e *Editor) MoveLeft() Redraw {
	if e.cur.Col > 0 {
		e.cur.Col--
		return RedrawNone
	}
	if e.view.OriginCol > 0 {
		e.view.OriginCol--
		return RedrawFull
	}
	return RedrawNone
}

// MoveRight moves the cursor one column right, up to one past the last byte.
func (e *Editor) MoveRight() Redraw {
	if e.col() >= e.lineLength() {
		return RedrawNone
	}
	if e.cur.Col < e.view.Cols-1 {
		e.cur.Col++
		return RedrawNone
	}
	// Not at end of line, so the line reaches at least one column past the
	// right edge.
	e.view.OriginCol++
	return RedrawFull
}

// MoveHome jumps to column 0 of the current line.
func (e *Editor) MoveHome() Redraw {
	redraw := RedrawNone
	if e.view.OriginCol != 0 {
		redraw = RedrawFull
	}
	e.view.OriginCol = 0
	e.cur.Col = 0
	return redraw
}

// MoveEnd jumps just past the last byte of the current line.
func (e *Editor) MoveEnd() Redraw {
	if e.moveToColumn(e.lineLength()) {
		return RedrawFull
	}
	return RedrawNone
}

// InsertChar inserts c at the cursor and advances it by one column.
func (e *Editor) InsertChar(c byte) Redraw {
	if e.empty() {
		e.buf.InsertLine(0)
	}
	e.buf.InsertByte(e.row(), e.col(), c)

	if e.cur.Col < e.view.Cols-1 {
		e.cur.Col++
		return RedrawLine
	}
	e.view.OriginCol++
	return RedrawFull
}

// Enter splits the line at the cursor and moves to the start of the new line.
func (e *Editor) Enter() Redraw {
	if e.empty() {
		e.buf.InsertLine(0)
	}
	e.buf.SplitLine(e.row(), e.col())

	e.cur.Col = 0
	e.view.OriginCol = 0
	if e.cur.Row < e.view.Rows-1 {
		e.cur.Row++
	} else {
		e.view.OriginRow++
	}
	return RedrawFull
}

// Delete removes the byte under the cursor, or joins the next line when the
// cursor is at the end of the line.
func (e *Editor) Delete() Redraw {
	if e.empty() {
		return RedrawNone
	}
	if e.col() == e.lineLength() {
		if e.buf.MergeLine(e.row()) {
			return RedrawFull
		}
		return RedrawNone
	}
	e.buf.DeleteByte(e.row(), e.col())
	return RedrawLine
}

// Backspace removes the byte before the cursor, or joins the current line to
// the previous one when the cursor is at column 0.
func (e *Editor) Backspace() Redraw {
	if e.empty() {
		return RedrawNone
	}

	if e.col() == 0 {
		if e.row() == 0 {
			return RedrawNone
		}
		prevLen := e.buf.LineLength(e.row() - 1)
		e.buf.MergeLine(e.row() - 1)
		if e.cur.Row > 0 {
			e.cur.Row--
		} else {
			e.view.OriginRow--
		}
		e.moveToColumn(prevLen)
		return RedrawFull
	}

	e.buf.DeleteByte(e.row(), e.col()-1)
	if e.cur.Col > 0 {
		e.cur.Col--
		return RedrawLine
	}
	e.view.OriginCol--
	return RedrawFull
}
