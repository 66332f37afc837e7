package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// Flush pending input on change, as TCSAFLUSH does
	ioctlWriteTermios = unix.TCSETSF
)
