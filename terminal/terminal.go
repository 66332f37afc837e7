package terminal

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/constants"
)

var (
	// ErrNotTerminal is returned by EnterRaw when stdin is not a tty
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrSizeUnavailable is returned when both window size paths fail
	ErrSizeUnavailable = errors.New("window size unavailable")
)

// Options configures a Session
type Options struct {
	// ReadTimeout is the idle read timeout in deciseconds (VTIME), minimum 1
	ReadTimeout uint8

	// SizeQueryRetry repeats the cursor position query once when the first
	// reply is missing or malformed
	SizeQueryRetry bool
}

// DefaultOptions returns a 100ms read timeout and fail-fast size query
func DefaultOptions() Options {
	return Options{ReadTimeout: constants.DefaultReadTimeout}
}

// active is the session currently holding raw mode, used by EmergencyReset
var active atomic.Pointer[Session]

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if the normal deferred ExitRaw cannot run
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiClear)
	w.Write(csiHome)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	if s := active.Load(); s != nil {
		s.ExitRaw()
	}
}
