package main

// Viewport and cursor state. The viewport is the window of the line buffer
// that fits on the display; the cursor is stored relative to it.

import "fmt"

// Geometry describes the physical display and the glyph cell used to derive
// the number of text rows and columns.
type Geometry struct {
	ScreenWidth  int // Display width in pixels.
	ScreenHeight int // Display height in pixels.
	CharWidth    int // Glyph cell width in pixels.
	CharHeight   int // Glyph cell height in pixels.
	LineDist     int // Blank pixels between text rows.
}

// Rows returns the number of text rows that fit on the display.
func (g Geometry) Rows() int {
	return g.ScreenHeight / (g.CharHeight + g.LineDist)
}

// Cols returns the number of text columns that fit on the display.
func (g Geometry) Cols() int {
	return g.ScreenWidth / g.CharWidth
}

// Validate reports geometry that would leave no room for a single cell.
func (g Geometry) Validate() error {
	if g.CharWidth <= 0 || g.CharHeight <= 0 {
		return fmt.Errorf("glyph size %dx%d must be positive", g.CharWidth, g.CharHeight)
	}
	if g.LineDist < 0 {
		return fmt.Errorf("line distance %d must not be negative", g.LineDist)
	}
	if g.Rows() < 1 || g.Cols() < 1 {
		return fmt.Errorf("screen %dx%d px holds no %dx%d glyph cell", g.ScreenWidth, g.ScreenHeight, g.CharWidth, g.CharHeight+g.LineDist)
	}
	return nil
}

// Viewport is the visible rectangle of the buffer. Rows and Cols are fixed
// after construction.
type Viewport struct {
	OriginRow int // Buffer row shown in the top screen row.
	OriginCol int // Buffer column shown in the leftmost screen column.
	Rows      int
	Cols      int
}

// Cursor is the edit point relative to the viewport origin.
type Cursor struct {
	Row int // 0 <= Row < Viewport.Rows
	Col int // 0 <= Col < Viewport.Cols
}
