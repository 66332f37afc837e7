package editor

import "github.com/lixenwraith/kilo/input"

// applyMotion moves the cursor, then clamps X to the length of the row it landed on
func (e *Editor) applyMotion(op input.MotionOp) {
	switch op {
	case input.MotionLineStart:
		e.cursor.X = 0
	case input.MotionLineEnd:
		e.cursor.X = e.view.ScreenCols - 1
	case input.MotionPageUp:
		for i := 0; i < e.view.ScreenRows; i++ {
			e.moveCursor(input.MotionUp)
		}
	case input.MotionPageDown:
		for i := 0; i < e.view.ScreenRows; i++ {
			e.moveCursor(input.MotionDown)
		}
	default:
		e.moveCursor(op)
	}

	e.clampX()
}

// moveCursor applies one arrow step
// Left at column 0 wraps to the end of the previous row; Right at the end of a
// row wraps to the start of the next; Up/Down stay within [0, NumRows]
func (e *Editor) moveCursor(op input.MotionOp) {
	c := &e.cursor
	row := e.doc.Row(c.Y)

	switch op {
	case input.MotionLeft:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = e.doc.RowLen(c.Y)
		}
	case input.MotionRight:
		if row != nil {
			if c.X < row.Len() {
				c.X++
			} else {
				c.Y++
				c.X = 0
			}
		}
	case input.MotionUp:
		if c.Y > 0 {
			c.Y--
		}
	case input.MotionDown:
		if c.Y < e.doc.NumRows() {
			c.Y++
		}
	}
}

// clampX keeps X within the current row, 0 on the past-end row
func (e *Editor) clampX() {
	if n := e.doc.RowLen(e.cursor.Y); e.cursor.X > n {
		e.cursor.X = n
	}
	if e.cursor.X < 0 {
		e.cursor.X = 0
	}
}
