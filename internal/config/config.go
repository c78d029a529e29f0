// SPDX-License-Identifier: MIT

// Package config loads the optional partree.toml file used by the CLI.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Output formats accepted by the solve command.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatDOT, FormatSVG}

// Sentinel errors for configuration problems.
var (
	// ErrUnknownKey is returned when the file holds keys this version does not know.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned when a value is out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the resolved CLI configuration.
type Config struct {
	// PathCompression enables path halving in representative lookups.
	PathCompression bool `toml:"path_compression"`

	// Format is one of FormatText, FormatDOT or FormatSVG.
	Format string `toml:"format"`

	// Output is the destination file; empty means stdout.
	Output string `toml:"output"`

	// HideUnused drops non-forest edges from DOT and SVG output.
	HideUnused bool `toml:"hide_unused"`

	Log LogConfig `toml:"log"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a charmbracelet/log level name: debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: FormatText,
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default. An empty path returns Default unchanged.
// Keys not declared on Config are rejected with ErrUnknownKey.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks Format and Log.Level.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q (want one of %s)", ErrInvalid, c.Format, strings.Join(Formats, ", "))
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}

	return lvl, nil
}
