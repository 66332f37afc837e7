//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/kilo/constants"
)

// Session owns raw mode on one terminal for the process lifetime
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	opts  Options

	orig    *unix.Termios
	entered atomic.Bool

	restoreOnce sync.Once
	restoreErr  error

	buf [1]byte
}

// NewSession creates a session over the given input and output files
func NewSession(in, out *os.File, opts Options) *Session {
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = constants.DefaultReadTimeout
	}
	return &Session{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
		opts:  opts,
	}
}

// EnterRaw captures the original attributes and switches to raw mode
// Once the attributes are captured, ExitRaw restores them even if this call fails later
func (s *Session) EnterRaw() error {
	if !term.IsTerminal(s.inFd) {
		return ErrNotTerminal
	}

	orig, err := unix.IoctlGetTermios(s.inFd, ioctlReadTermios)
	if err != nil {
		return errors.Wrap(err, "tcgetattr")
	}
	s.orig = orig
	s.entered.Store(true)
	active.Store(s)

	raw := makeRaw(*orig, s.opts.ReadTimeout)
	if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermios, &raw); err != nil {
		return errors.Wrap(err, "tcsetattr")
	}
	return nil
}

// ExitRaw restores the captured attributes
// Safe to call multiple times; only the first call after EnterRaw acts
func (s *Session) ExitRaw() error {
	if !s.entered.Load() {
		return nil
	}
	s.restoreOnce.Do(func() {
		if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermios, s.orig); err != nil {
			s.restoreErr = errors.Wrap(err, "tcsetattr")
		}
		active.CompareAndSwap(s, nil)
	})
	return s.restoreErr
}

// makeRaw derives raw attributes from orig
func makeRaw(orig unix.Termios, readTimeout uint8) unix.Termios {
	raw := orig

	// Input modes: no break, no CR-to-NL, no parity check, no strip char, no start/stop control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON

	// Output modes: disable post processing
	raw.Oflag &^= unix.OPOST

	// Control modes: set 8-bit chars
	raw.Cflag |= unix.CS8

	// Local modes: echoing off, canonical off, no extended functions, no signal chars
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	// Control characters: return after readTimeout deciseconds with or without data
	if readTimeout == 0 {
		readTimeout = 1
	}
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeout

	return raw
}

// ReadKeyByte performs one timed single-byte read
// A timeout returns ok=false with a nil error
func (s *Session) ReadKeyByte() (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(s.inFd), Events: unix.POLLIN},
	}
	timeoutMs := int(time.Duration(s.opts.ReadTimeout) * constants.ReadTimeoutUnit / time.Millisecond)

	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, false, errors.Wrap(err, "poll")
		}
		if n == 0 {
			return 0, false, nil // Timeout
		}
		break
	}

	if fds[0].Revents&unix.POLLIN == 0 && fds[0].Revents&(unix.POLLHUP|unix.POLLERR|unix.POLLNVAL) != 0 {
		return 0, false, errors.Wrap(io.ErrUnexpectedEOF, "read")
	}

	rn, err := unix.Read(s.inFd, s.buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "read")
	}
	if rn == 0 {
		return 0, false, nil
	}
	return s.buf[0], true, nil
}

// Write writes p to the terminal, retrying only on short writes
func (s *Session) Write(p []byte) error {
	return writeAll(func(b []byte) (int, error) { return unix.Write(s.outFd, b) }, p)
}

// writeAll loops write over p until done; a write making no progress is a short write
func writeAll(write func([]byte) (int, error), p []byte) error {
	for len(p) > 0 {
		n, err := write(p)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return errors.Wrap(err, "write")
		}
		if n <= 0 {
			return errors.Wrap(io.ErrShortWrite, "write")
		}
		p = p[n:]
	}
	return nil
}

// WindowSize returns the terminal dimensions
// The ioctl path is tried first; a zero-column answer or an error falls back
// to moving the cursor to the far corner and asking where it landed
func (s *Session) WindowSize() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return querySizeFallback(s, s.opts.SizeQueryRetry)
}
