package terminal

import "strconv"

var dirToName = map[Direction]string{
	DirUp:    "up",
	DirDown:  "down",
	DirRight: "right",
	DirLeft:  "left",
}

var navToName = map[NavKind]string{
	NavHome:     "home",
	NavEnd:      "end",
	NavPageUp:   "page_up",
	NavPageDown: "page_down",
	NavDelete:   "delete",
}

// String returns a canonical name for logging
func (ev Event) String() string {
	switch ev.Type {
	case EventTimeout:
		return "timeout"
	case EventEscape:
		return "escape"
	case EventArrow:
		return dirToName[ev.Dir]
	case EventNav:
		return navToName[ev.Nav]
	case EventChar:
		if ev.Char < 0x20 {
			return "ctrl_" + string(rune(ev.Char|0x60))
		}
		if ev.Char < 0x7f {
			return strconv.QuoteRune(rune(ev.Char))
		}
		return "0x" + strconv.FormatUint(uint64(ev.Char), 16)
	}
	return "unknown"
}
