package terminal

import (
	"github.com/pkg/errors"
)

// byteReadWriter is what the size fallback needs from a session
type byteReadWriter interface {
	ByteSource
	Write(p []byte) error
}

// maxReplyLen bounds the cursor position report read
const maxReplyLen = 32

// querySizeFallback moves the cursor to the bottom-right corner and reads back its position
// With retry, a missing or malformed report is queried once more before giving up
func querySizeFallback(rw byteReadWriter, retry bool) (int, int, error) {
	if err := rw.Write(csiCursorFarCorner); err != nil {
		return 0, 0, err
	}

	attempts := 1
	if retry {
		attempts = 2
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		rows, cols, err := queryCursorPosition(rw)
		if err == nil {
			return rows, cols, nil
		}
		if !errors.Is(err, ErrSizeUnavailable) {
			return 0, 0, err
		}
		lastErr = err
	}
	return 0, 0, lastErr
}

// queryCursorPosition sends the device status report request and parses the reply
func queryCursorPosition(rw byteReadWriter) (int, int, error) {
	if err := rw.Write(csiCursorQuery); err != nil {
		return 0, 0, err
	}

	var reply [maxReplyLen]byte
	n := 0
	for n < len(reply) {
		b, ok, err := rw.ReadKeyByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		reply[n] = b
		n++
		if b == 'R' {
			break
		}
	}
	return ParseCursorReply(reply[:n])
}

// ParseCursorReply parses ESC [ rows ; cols R
// The trailing R may be omitted
func ParseCursorReply(data []byte) (rows, cols int, err error) {
	if len(data) > 0 && data[len(data)-1] == 'R' {
		data = data[:len(data)-1]
	}
	if len(data) < 2 || data[0] != keyEsc || data[1] != '[' {
		return 0, 0, errors.Wrapf(ErrSizeUnavailable, "malformed cursor report %q", data)
	}

	state := 0 // 0=rows, 1=cols
	val := 0
	digits := 0

	for _, b := range data[2:] {
		switch {
		case b == ';':
			if state != 0 || digits == 0 {
				return 0, 0, errors.Wrapf(ErrSizeUnavailable, "malformed cursor report %q", data)
			}
			rows = val
			state++
			val = 0
			digits = 0
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 { // Sanity limit
				return 0, 0, errors.Wrapf(ErrSizeUnavailable, "cursor report out of range %q", data)
			}
		default:
			return 0, 0, errors.Wrapf(ErrSizeUnavailable, "malformed cursor report %q", data)
		}
	}

	if state != 1 || digits == 0 {
		return 0, 0, errors.Wrapf(ErrSizeUnavailable, "malformed cursor report %q", data)
	}
	cols = val
	if rows == 0 || cols == 0 {
		return 0, 0, errors.Wrapf(ErrSizeUnavailable, "zero size in cursor report %q", data)
	}
	return rows, cols, nil
}
