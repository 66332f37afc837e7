package input

import (
	"fmt"

	"github.com/lixenwraith/kilo/constants"
	"github.com/lixenwraith/kilo/terminal"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// QuitKey quits when pressed with Ctrl
	QuitKey byte

	// Arrow and navigation key bindings
	ArrowKeys map[terminal.Direction]MotionOp
	NavKeys   map[terminal.NavKind]MotionOp
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		QuitKey: constants.DefaultQuitKey,
		ArrowKeys: map[terminal.Direction]MotionOp{
			terminal.DirLeft:  MotionLeft,
			terminal.DirRight: MotionRight,
			terminal.DirUp:    MotionUp,
			terminal.DirDown:  MotionDown,
		},
		NavKeys: map[terminal.NavKind]MotionOp{
			terminal.NavHome:     MotionLineStart,
			terminal.NavEnd:      MotionLineEnd,
			terminal.NavPageUp:   MotionPageUp,
			terminal.NavPageDown: MotionPageDown,
		},
	}
}

// NormalizeQuitKey lowercases a quit letter, rejecting anything else
func NormalizeQuitKey(k byte) (byte, error) {
	switch {
	case k >= 'a' && k <= 'z':
	case k >= 'A' && k <= 'Z':
		k += 'a' - 'A'
	default:
		return 0, fmt.Errorf("quit key %q: must be a letter", k)
	}
	return k, nil
}

// NewKeyTable returns the default bindings with a different quit letter
func NewKeyTable(quitKey byte) (*KeyTable, error) {
	k, err := NormalizeQuitKey(quitKey)
	if err != nil {
		return nil, err
	}

	kt := DefaultKeyTable()
	kt.QuitKey = k
	return kt, nil
}

// Lookup resolves one decoded event
func (kt *KeyTable) Lookup(ev terminal.Event) Intent {
	switch ev.Type {
	case terminal.EventChar:
		if ev.IsCtrl(kt.QuitKey) {
			return Intent{Type: IntentQuit}
		}
	case terminal.EventArrow:
		if op, ok := kt.ArrowKeys[ev.Dir]; ok {
			return Intent{Type: IntentMotion, Motion: op}
		}
	case terminal.EventNav:
		if op, ok := kt.NavKeys[ev.Nav]; ok {
			return Intent{Type: IntentMotion, Motion: op}
		}
	}
	return Intent{}
}
