// Package viewport tracks the cursor and the visible window over a document.
package viewport

import "github.com/lixenwraith/kilo/document"

// Cursor is the cursor position in document coordinates
// Y ranges over [0, NumRows]; Y == NumRows is the line past the end
// RX is derived from X by Recompute and never set directly
type Cursor struct {
	X  int // cx, logical column in row Y
	Y  int // cy, row index
	RX int // rx, render column
}

// Viewport is the top-left visible position plus the screen size
type Viewport struct {
	RowOff     int
	ColOff     int
	ScreenRows int
	ScreenCols int
}

// New creates a viewport at the document origin
func New(screenRows, screenCols int) *Viewport {
	return &Viewport{
		ScreenRows: screenRows,
		ScreenCols: screenCols,
	}
}

// Recompute derives c.RX and scrolls the window until the cursor is visible
// Only the window moves; the logical cursor position is never changed
func (v *Viewport) Recompute(c *Cursor, doc *document.Document) {
	c.RX = 0
	if row := doc.Row(c.Y); row != nil {
		c.RX = row.CxToRx(c.X)
	}

	if c.Y < v.RowOff {
		v.RowOff = c.Y
	}
	if v.ScreenRows > 0 && c.Y >= v.RowOff+v.ScreenRows {
		v.RowOff = c.Y - v.ScreenRows + 1
	}

	if c.RX < v.ColOff {
		v.ColOff = c.RX
	}
	if v.ScreenCols > 0 && c.RX >= v.ColOff+v.ScreenCols {
		v.ColOff = c.RX - v.ScreenCols + 1
	}
}

// ScreenCursor returns the 1-based terminal position of the cursor
// Valid after Recompute
func (v *Viewport) ScreenCursor(c Cursor) (row, col int) {
	return c.Y - v.RowOff + 1, c.RX - v.ColOff + 1
}

// Contains reports whether the cursor lies inside the window
func (v *Viewport) Contains(c Cursor) bool {
	return c.Y >= v.RowOff && c.Y < v.RowOff+v.ScreenRows &&
		c.RX >= v.ColOff && c.RX < v.ColOff+v.ScreenCols
}
