// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for a full-frame text viewer.
//
// Features:
//   - Raw mode with a bounded read timeout (VMIN=0, VTIME=n)
//   - Timed single-byte reads; a timeout is not an error
//   - Window size query with a cursor-position report fallback
//   - Escape sequence decoding into key events (CSI and SS3 dialects)
//   - Restoration of the original terminal attributes exactly once, on exit or panic
//   - SIGWINCH resize notifications
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
