// Package config loads editor and caret settings from TOML files with
// sensible defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the root configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Caret  CaretConfig  `toml:"caret"`
}

// EditorConfig holds buffer and layout settings.
type EditorConfig struct {
	// TabWidth is the number of cells between tab stops.
	TabWidth int `toml:"tab_width"`

	// LineEnding selects the exported line ending style: "lf", "crlf"
	// or "cr".
	LineEnding string `toml:"line_ending"`
}

// CaretConfig holds caret behavior settings.
type CaretConfig struct {
	// Style selects the caret mode: "insert", "block" or "underscore".
	Style string `toml:"style"`

	// BlinkRateMS is the caret blink interval in milliseconds; zero
	// disables blinking.
	BlinkRateMS int `toml:"blink_rate_ms"`

	// AllowBehindLineEnd permits virtual positioning past line ends.
	AllowBehindLineEnd bool `toml:"allow_behind_line_end"`

	// AutoScroll keeps the caret on screen when it moves.
	AutoScroll bool `toml:"auto_scroll"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:   4,
			LineEnding: "lf",
		},
		Caret: CaretConfig{
			Style:       "insert",
			BlinkRateMS: 500,
			AutoScroll:  true,
		},
	}
}

// Load reads a TOML configuration file, layering it over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize repairs out-of-range values instead of failing; configuration
// mistakes should not take the editor down.
func (c *Config) normalize() {
	if c.Editor.TabWidth < 1 {
		c.Editor.TabWidth = Default().Editor.TabWidth
	}
	switch c.Editor.LineEnding {
	case "lf", "crlf", "cr":
	default:
		c.Editor.LineEnding = "lf"
	}
	if c.Caret.BlinkRateMS < 0 {
		c.Caret.BlinkRateMS = 0
	}
}

// BlinkRate returns the blink interval as a duration.
func (c CaretConfig) BlinkRate() time.Duration {
	return time.Duration(c.BlinkRateMS) * time.Millisecond
}
