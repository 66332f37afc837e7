package constants

import "time"

// Version is shown in the welcome banner and by --version
const Version = "0.0.1"

// AppName names the binary, config directory and log file
const AppName = "kilo"

// Rendering
const (
	// DefaultTabStop is the render column multiple a tab advances to
	DefaultTabStop = 8

	// MaxTabStop bounds configured tab stops
	MaxTabStop = 32

	// FillerMarker starts every screen line past the end of the document
	FillerMarker = '~'

	// BannerRowDivisor places the welcome banner on screenrows/3
	BannerRowDivisor = 3
)

// Input
const (
	// DefaultReadTimeout is the raw mode idle read timeout in deciseconds (VTIME)
	DefaultReadTimeout = 1

	// ReadTimeoutUnit is the duration of one VTIME step
	ReadTimeoutUnit = 100 * time.Millisecond

	// DefaultQuitKey quits with Ctrl+DefaultQuitKey
	DefaultQuitKey = 'q'
)

// Logging
const (
	// LogDirName is created under the configured log directory
	LogDirName = "logs"

	// LogFileName is the active debug log
	LogFileName = "kilo.log"

	// MaxLogSize rotates the debug log once it grows past 10MB
	MaxLogSize = 10 * 1024 * 1024
)
