//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA
	// Flush pending input on change, as TCSAFLUSH does
	ioctlWriteTermios = unix.TIOCSETAF
)
