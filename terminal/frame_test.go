package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame_Sequences(t *testing.T) {
	f := NewFrame(2, 10)
	f.Begin()
	f.WriteString("hi")
	f.ClearLine()
	f.NewLine()
	f.WriteByte('~')
	f.ClearLine()
	f.End(3, 12)

	want := "\x1b[?25l\x1b[H" + "hi\x1b[K\r\n" + "~\x1b[K" + "\x1b[3;12H\x1b[?25h"
	assert.Equal(t, want, string(f.Bytes()))
	assert.Equal(t, len(want), f.Len())

	f.Reset()
	assert.Zero(t, f.Len())
}

func TestAppendInt(t *testing.T) {
	assert.Equal(t, "0", string(appendInt(nil, -5)))
	assert.Equal(t, "7", string(appendInt(nil, 7)))
	assert.Equal(t, "42", string(appendInt(nil, 42)))
	assert.Equal(t, "12345", string(appendInt(nil, 12345)))
}

func TestClearScreenSequence(t *testing.T) {
	assert.Equal(t, "\x1b[2J\x1b[H", string(ClearScreenSequence()))
}
