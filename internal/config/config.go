// Package config loads settings for the arbor CLI.
//
// Settings come from an optional JSON config file overlaid with
// ARBOR_-prefixed environment variables; the environment wins. Unknown
// file members are ignored so configs stay forward-compatible.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// Errors returned by configuration loading.
var (
	// ErrInvalidConfig indicates the config file is not a JSON object.
	ErrInvalidConfig = errors.New("config: file must be a JSON object")

	// ErrUnknownTheme indicates an inspector theme name that is not
	// recognized.
	ErrUnknownTheme = errors.New("config: unknown inspector theme")

	// ErrInvalidTimeout indicates a zero or negative script timeout.
	ErrInvalidTimeout = errors.New("config: script timeout must be positive")
)

// Inspector themes.
const (
	// ThemeDepth colors nodes by their depth in the tree.
	ThemeDepth = "depth"

	// ThemeMono renders without color.
	ThemeMono = "mono"
)

// DefaultScriptTimeout bounds one Lua script run.
const DefaultScriptTimeout = 5 * time.Second

// Config holds the resolved settings for one CLI run.
type Config struct {
	// Dataset is the default dataset path used when no -load flag is
	// given.
	Dataset string

	// Pretty indents JSON dump output.
	Pretty bool

	// Balanced loads datasets through the balanced builder instead of
	// sequential inserts.
	Balanced bool

	// ScriptTimeout bounds one Lua script run.
	ScriptTimeout time.Duration

	// Theme selects the inspector color scheme.
	Theme string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Balanced:      true,
		ScriptTimeout: DefaultScriptTimeout,
		Theme:         ThemeDepth,
	}
}

// Load resolves settings from the config file at path (skipped when
// path is empty or the file does not exist) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing config file is not an error; defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := cfg.applyFile(data); err != nil {
				return cfg, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

// applyFile overlays settings from JSON config data.
func (c *Config) applyFile(data []byte) error {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return ErrInvalidConfig
	}

	if v := gjson.GetBytes(data, "dataset"); v.Exists() {
		c.Dataset = v.String()
	}
	if v := gjson.GetBytes(data, "pretty"); v.Exists() {
		c.Pretty = v.Bool()
	}
	if v := gjson.GetBytes(data, "balanced"); v.Exists() {
		c.Balanced = v.Bool()
	}
	if v := gjson.GetBytes(data, "script.timeout"); v.Exists() {
		d, err := time.ParseDuration(v.String())
		if err != nil {
			return fmt.Errorf("config: script.timeout: %w", err)
		}
		c.ScriptTimeout = d
	}
	if v := gjson.GetBytes(data, "inspector.theme"); v.Exists() {
		c.Theme = v.String()
	}
	return nil
}

// applyEnv overlays ARBOR_* environment variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("ARBOR_DATASET"); ok {
		c.Dataset = v
	}
	if v, ok := os.LookupEnv("ARBOR_PRETTY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ARBOR_PRETTY: %w", err)
		}
		c.Pretty = b
	}
	if v, ok := os.LookupEnv("ARBOR_BALANCED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: ARBOR_BALANCED: %w", err)
		}
		c.Balanced = b
	}
	if v, ok := os.LookupEnv("ARBOR_SCRIPT_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: ARBOR_SCRIPT_TIMEOUT: %w", err)
		}
		c.ScriptTimeout = d
	}
	if v, ok := os.LookupEnv("ARBOR_THEME"); ok {
		c.Theme = v
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Theme {
	case ThemeDepth, ThemeMono:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	if c.ScriptTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.ScriptTimeout)
	}
	return nil
}
