// @lixen: #focus{sys[term,io,output]}
// @lixen: #interact{trigger[output,ansi]}
package terminal

// Frame accumulates one full screen refresh
// Owned by a single refresh call; the bytes are handed to one Write and discarded
type Frame struct {
	buf []byte
}

// NewFrame creates a frame sized for a screen of rows x cols
func NewFrame(rows, cols int) *Frame {
	size := rows*(cols+len(csiClearLine)+len(crlf)) + 64
	if size < 64 {
		size = 64
	}
	return &Frame{buf: make([]byte, 0, size)}
}

// Begin hides the cursor and homes it so the body paints from the top-left
func (f *Frame) Begin() {
	f.buf = append(f.buf, csiCursorHide...)
	f.buf = append(f.buf, csiHome...)
}

// End places the cursor (1-based) and shows it again
func (f *Frame) End(row, col int) {
	f.buf = appendCursorPos(f.buf, row, col)
	f.buf = append(f.buf, csiCursorShow...)
}

// Write appends raw bytes, never fails
func (f *Frame) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

// WriteByte appends one byte
func (f *Frame) WriteByte(c byte) error {
	f.buf = append(f.buf, c)
	return nil
}

// WriteString appends s
func (f *Frame) WriteString(s string) (int, error) {
	f.buf = append(f.buf, s...)
	return len(s), nil
}

// ClearLine erases from the cursor to the end of the line
func (f *Frame) ClearLine() {
	f.buf = append(f.buf, csiClearLine...)
}

// NewLine moves to the start of the next line (output post-processing is off)
func (f *Frame) NewLine() {
	f.buf = append(f.buf, crlf...)
}

// Bytes returns the accumulated frame
func (f *Frame) Bytes() []byte {
	return f.buf
}

// Len returns the accumulated size
func (f *Frame) Len() int {
	return len(f.buf)
}

// Reset empties the frame keeping capacity
func (f *Frame) Reset() {
	f.buf = f.buf[:0]
}

// ClearScreenSequence returns clear-screen followed by home-cursor
func ClearScreenSequence() []byte {
	b := make([]byte, 0, len(csiClear)+len(csiHome))
	b = append(b, csiClear...)
	return append(b, csiHome...)
}
