// Package config loads the editor's TOML configuration, persists session
// state across runs, and watches configuration paths for changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid reports a configuration that parsed but failed validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the editor configuration.
type Config struct {
	// Theme is the color theme name.
	Theme string `toml:"theme"`

	// Language forces a language instead of detecting it from the file path.
	Language string `toml:"language"`

	Editor  EditorConfig  `toml:"editor"`
	Logging LoggingConfig `toml:"logging"`
	Paths   PathsConfig   `toml:"paths"`
}

// EditorConfig holds behavior settings for the editing surface.
type EditorConfig struct {
	// ScrollMargin is the number of context lines kept around the cursor.
	ScrollMargin int `toml:"scroll_margin"`

	// LineHeight is the rendered line height in pixels.
	LineHeight float64 `toml:"line_height"`

	// TabWidth is the number of columns a tab advances when rendered.
	TabWidth int `toml:"tab_width"`

	// SmoothScroll scrolls the wheel one line per tick instead of three.
	SmoothScroll bool `toml:"smooth_scroll"`
}

// LoggingConfig controls the application log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination; empty logs to stderr.
	File string `toml:"file"`
}

// PathsConfig points at user-provided resource locations.
type PathsConfig struct {
	// GrammarDir holds YAML grammar definitions loaded at startup.
	GrammarDir string `toml:"grammar_dir"`

	// ThemeDir holds JSON theme files loaded at startup.
	ThemeDir string `toml:"theme_dir"`

	// SessionFile is where session state persists between runs.
	SessionFile string `toml:"session_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: "dusk",
		Editor: EditorConfig{
			ScrollMargin: 3,
			LineHeight:   20,
			TabWidth:     4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML configuration file over the defaults. A missing file
// yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the configuration as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks value ranges after parsing.
func (c Config) Validate() error {
	if c.Editor.ScrollMargin < 0 {
		return fmt.Errorf("%w: editor.scroll_margin must not be negative, got %d",
			ErrInvalid, c.Editor.ScrollMargin)
	}
	if c.Editor.LineHeight <= 0 {
		return fmt.Errorf("%w: editor.line_height must be positive, got %v",
			ErrInvalid, c.Editor.LineHeight)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("%w: editor.tab_width must be at least 1, got %d",
			ErrInvalid, c.Editor.TabWidth)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
