// Package input maps decoded key events to viewer intents.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone   IntentType = iota // Ignored key (printable, escape, delete, timeout)
	IntentQuit                     // Ctrl+quit key
	IntentMotion                   // Arrows, Home/End, PageUp/PageDown
)

// MotionOp identifies motion algorithm
type MotionOp uint8

const (
	MotionNone     MotionOp = iota
	MotionLeft              // Left arrow, wraps to end of previous row
	MotionRight             // Right arrow, wraps to start of next row
	MotionUp                // Up arrow
	MotionDown              // Down arrow
	MotionLineStart         // Home
	MotionLineEnd           // End
	MotionPageUp            // PgUp, screenrows x Up
	MotionPageDown          // PgDn, screenrows x Down
)

// Intent is the result of looking up one key event
type Intent struct {
	Type   IntentType
	Motion MotionOp
}
