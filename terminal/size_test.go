package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCursorReply(t *testing.T) {
	rows, cols, err := ParseCursorReply([]byte("\x1b[24;80R"))
	require.NoError(t, err)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 80, cols)

	rows, cols, err = ParseCursorReply([]byte("\x1b[50;132"))
	require.NoError(t, err)
	assert.Equal(t, 50, rows)
	assert.Equal(t, 132, cols)
}

func TestParseCursorReply_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"24;80R",
		"\x1b[24R",
		"\x1b[;80R",
		"\x1b[24;R",
		"\x1b[24;80;1R",
		"\x1b[2a;80R",
		"\x1b[0;80R",
		"\x1b[99999;80R",
	} {
		_, _, err := ParseCursorReply([]byte(in))
		assert.ErrorIs(t, err, ErrSizeUnavailable, "input %q", in)
	}
}

func TestQuerySizeFallback(t *testing.T) {
	rw := newScript(bytesScript("\x1b[30;100R")...)

	rows, cols, err := querySizeFallback(rw, false)
	require.NoError(t, err)
	assert.Equal(t, 30, rows)
	assert.Equal(t, 100, cols)

	require.Len(t, rw.writes, 2)
	assert.Equal(t, "\x1b[999C\x1b[999B", string(rw.writes[0]))
	assert.Equal(t, "\x1b[6n", string(rw.writes[1]))
}

func TestQuerySizeFallback_FailFast(t *testing.T) {
	script := append([]int{timeout}, bytesScript("\x1b[30;100R")...)
	rw := newScript(script...)

	_, _, err := querySizeFallback(rw, false)
	assert.ErrorIs(t, err, ErrSizeUnavailable)
	assert.Len(t, rw.writes, 2)
}

func TestQuerySizeFallback_SingleRetry(t *testing.T) {
	script := append([]int{timeout}, bytesScript("\x1b[30;100R")...)
	rw := newScript(script...)

	rows, cols, err := querySizeFallback(rw, true)
	require.NoError(t, err)
	assert.Equal(t, 30, rows)
	assert.Equal(t, 100, cols)
	assert.Len(t, rw.writes, 3)
}

func TestQuerySizeFallback_RetryExhausted(t *testing.T) {
	rw := newScript(timeout, timeout)

	_, _, err := querySizeFallback(rw, true)
	assert.ErrorIs(t, err, ErrSizeUnavailable)
	assert.Len(t, rw.writes, 3)
}

func TestQuerySizeFallback_WriteError(t *testing.T) {
	rw := newScript()
	rw.err = errWriteFail

	_, _, err := querySizeFallback(rw, true)
	assert.True(t, errors.Is(err, errWriteFail))
	assert.False(t, errors.Is(err, ErrSizeUnavailable))
}
