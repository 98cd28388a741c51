package editor

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config tunes the interactive session. Zero values fall back to defaults.
type Config struct {
	// QuitTimes is how many times Ctrl-Q must be pressed in a row to abandon
	// unsaved changes.
	QuitTimes int `toml:"quit_times"`

	// StatusFg and StatusBg override the status bar colors (any color string
	// lipgloss accepts).
	StatusFg string `toml:"status_fg"`
	StatusBg string `toml:"status_bg"`

	// MessageTimeout is how long a status message stays visible, in seconds.
	MessageTimeout int `toml:"message_timeout"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		QuitTimes:      3,
		StatusFg:       "235",
		StatusBg:       "252",
		MessageTimeout: 5,
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}
	if cfg.MessageTimeout <= 0 {
		cfg.MessageTimeout = 5
	}
	return cfg, nil
}
