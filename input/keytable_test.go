package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kilo/terminal"
)

func TestLookup_Default(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   terminal.Event
		want Intent
	}{
		{"ctrl q", terminal.CharEvent(0x11), Intent{Type: IntentQuit}},
		{"plain q", terminal.CharEvent('q'), Intent{}},
		{"left", terminal.ArrowEvent(terminal.DirLeft), Intent{IntentMotion, MotionLeft}},
		{"right", terminal.ArrowEvent(terminal.DirRight), Intent{IntentMotion, MotionRight}},
		{"up", terminal.ArrowEvent(terminal.DirUp), Intent{IntentMotion, MotionUp}},
		{"down", terminal.ArrowEvent(terminal.DirDown), Intent{IntentMotion, MotionDown}},
		{"home", terminal.NavEvent(terminal.NavHome), Intent{IntentMotion, MotionLineStart}},
		{"end", terminal.NavEvent(terminal.NavEnd), Intent{IntentMotion, MotionLineEnd}},
		{"page up", terminal.NavEvent(terminal.NavPageUp), Intent{IntentMotion, MotionPageUp}},
		{"page down", terminal.NavEvent(terminal.NavPageDown), Intent{IntentMotion, MotionPageDown}},
		{"delete ignored", terminal.NavEvent(terminal.NavDelete), Intent{}},
		{"escape ignored", terminal.EscapeEvent(), Intent{}},
		{"timeout ignored", terminal.TimeoutEvent(), Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Lookup(tt.ev))
		})
	}
}

func TestNewKeyTable_CustomQuit(t *testing.T) {
	kt, err := NewKeyTable('X')
	require.NoError(t, err)
	assert.Equal(t, byte('x'), kt.QuitKey)

	assert.Equal(t, IntentQuit, kt.Lookup(terminal.CharEvent(terminal.CtrlKey('x'))).Type)
	assert.Equal(t, IntentNone, kt.Lookup(terminal.CharEvent(terminal.CtrlKey('q'))).Type)
}

func TestNewKeyTable_RejectsNonLetter(t *testing.T) {
	_, err := NewKeyTable('1')
	assert.Error(t, err)
}

func TestNormalizeQuitKey(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
		ok   bool
	}{
		{'q', 'q', true},
		{'Q', 'q', true},
		{'z', 'z', true},
		{'1', 0, false},
		{'[', 0, false},
		{0x11, 0, false},
	}

	for _, tt := range tests {
		got, err := NormalizeQuitKey(tt.in)
		if !tt.ok {
			assert.Error(t, err, "key %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
