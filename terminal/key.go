// @focus: #sys { io } #input { keys }
package terminal

// EventType discriminates decoded key events
type EventType uint8

const (
	EventTimeout EventType = iota // No byte arrived within the read timeout
	EventChar                     // Plain byte, check Event.Char
	EventArrow                    // Arrow key, check Event.Dir
	EventNav                      // Navigation key, check Event.Nav
	EventEscape                   // Bare ESC or an unrecognized sequence
)

// Direction identifies an arrow key
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirRight
	DirLeft
)

// NavKind identifies a navigation key
type NavKind uint8

const (
	NavHome NavKind = iota
	NavEnd
	NavPageUp
	NavPageDown
	NavDelete
)

// Event is one decoded key event
type Event struct {
	Type EventType
	Char byte
	Dir  Direction
	Nav  NavKind
}

// Constructors for the tagged variants

func CharEvent(b byte) Event { return Event{Type: EventChar, Char: b} }
func ArrowEvent(d Direction) Event { return Event{Type: EventArrow, Dir: d} }
func NavEvent(k NavKind) Event { return Event{Type: EventNav, Nav: k} }
func EscapeEvent() Event { return Event{Type: EventEscape} }
func TimeoutEvent() Event { return Event{Type: EventTimeout} }

// CtrlKey returns the byte a terminal sends for Ctrl+k
func CtrlKey(k byte) byte {
	return k & 0x1f
}

// IsCtrl reports whether ev is Ctrl+k
func (ev Event) IsCtrl(k byte) bool {
	return ev.Type == EventChar && ev.Char == CtrlKey(k)
}
