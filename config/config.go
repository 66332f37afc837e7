// Package config loads viewer settings from config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/constants"
	"github.com/lixenwraith/kilo/input"
)

// Config holds the settings read from config.toml
type Config struct {
	// TabStop is the column multiple tabs expand to
	TabStop int `toml:"tab_stop"`

	// ReadTimeout is the raw-mode read timeout in tenths of a second
	ReadTimeout int `toml:"read_timeout"`

	// QuitKey is the letter that quits when pressed with Ctrl
	QuitKey string `toml:"quit_key"`

	// Debug enables the log file
	Debug bool `toml:"debug"`

	// LogDir is the parent of the logs directory
	LogDir string `toml:"log_dir"`

	// SizeQueryRetry allows one extra cursor-position query when the
	// window size ioctl fails
	SizeQueryRetry bool `toml:"size_query_retry"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TabStop:     constants.DefaultTabStop,
		ReadTimeout: constants.DefaultReadTimeout,
		QuitKey:     string(rune(constants.DefaultQuitKey)),
		LogDir:      ".",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kilo/config.toml, falling back to ~/.config/kilo/config.toml
// Empty when neither can be resolved
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, constants.AppName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", constants.AppName, "config.toml")
}

// LoadFrom reads configuration from a specific file path
// Returns nil if the file doesn't exist (not an error)
// Keys absent from the file keep their defaults
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, nil
}

// Load reads and validates path, or DefaultPath when path is empty
// A missing default file yields Default(); a missing explicit file is an error
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		if explicit {
			return nil, errors.Wrapf(os.ErrNotExist, "config %s", path)
		}
		cfg = Default()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects out-of-range values
func (c *Config) Validate() error {
	if c.TabStop < 1 || c.TabStop > constants.MaxTabStop {
		return fmt.Errorf("tab_stop %d: must be between 1 and %d", c.TabStop, constants.MaxTabStop)
	}
	if c.ReadTimeout < 1 || c.ReadTimeout > 255 {
		return fmt.Errorf("read_timeout %d: must be between 1 and 255", c.ReadTimeout)
	}
	if _, err := c.QuitByte(); err != nil {
		return err
	}
	if c.LogDir == "" {
		return fmt.Errorf("log_dir: must not be empty")
	}
	return nil
}

// QuitByte returns the quit letter, lowercased
func (c *Config) QuitByte() (byte, error) {
	if len(c.QuitKey) != 1 {
		return 0, fmt.Errorf("quit_key %q: must be a single letter", c.QuitKey)
	}
	k, err := input.NormalizeQuitKey(c.QuitKey[0])
	if err != nil {
		return 0, errors.Wrap(err, "quit_key")
	}
	return k, nil
}
