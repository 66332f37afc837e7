// @focus: #terminal { ansi }
package terminal

import "strconv"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi          = []byte("\x1b[")
	csiClearLine = []byte("\x1b[K")
	csiClear     = []byte("\x1b[2J")
	csiHome      = []byte("\x1b[H")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Device status report: terminal answers ESC [ rows ; cols R
	csiCursorQuery = []byte("\x1b[6n")
	// Cursor forward/down are clamped by the terminal at the screen edge
	csiCursorFarCorner = []byte("\x1b[999C\x1b[999B")

	crlf = []byte("\r\n")
)

// appendInt appends the decimal form of n, negative values clamp to 0
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(b, byte(n)+'0')
	}
	return strconv.AppendInt(b, int64(n), 10)
}

// appendCursorPos appends ESC [ row ; col H (1-based input)
func appendCursorPos(b []byte, row, col int) []byte {
	b = append(b, csi...)
	b = appendInt(b, row)
	b = append(b, ';')
	b = appendInt(b, col)
	return append(b, 'H')
}
