package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keychord/internal/config/loader"
	"github.com/dshills/keychord/internal/input/key"
	"github.com/dshills/keychord/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation and decode failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the application configuration.
type Config struct {
	Keyboard KeyboardConfig `toml:"keyboard"`
	Keymap   KeymapConfig   `toml:"keymap"`
	Log      logging.Config `toml:"log"`

	// Path is the file the config was loaded from, if any.
	Path string `toml:"-"`
}

// KeyboardConfig selects the layout and the display platform.
type KeyboardConfig struct {
	Layout        string `toml:"layout"`
	Platform      string `toml:"platform"`
	CommandLayout bool   `toml:"command_layout"`
}

// KeymapConfig lists user keymap sources and dispatch settings.
type KeymapConfig struct {
	Paths          []string `toml:"paths"`
	Scripts        []string `toml:"scripts"`
	Watch          bool     `toml:"watch"`
	PendingTimeout string   `toml:"pending_timeout"`
	IMEFallback    bool     `toml:"ime_fallback"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Keyboard: KeyboardConfig{Layout: "us", Platform: "auto"},
		Keymap:   KeymapConfig{Watch: true, PendingTimeout: "1s"},
		Log:      logging.DefaultConfig(),
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keychord", "config.toml")
}

// Load reads the config file at path, applies KEYCHORD_* overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg, err := LoadFrom(loader.NewTOMLLoader(path), loader.NewEnvLoader())
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadFrom layers sources over the defaults, later sources winning, and
// validates the result.
func LoadFrom(sources ...loader.Loader) (*Config, error) {
	merged := make(map[string]any)
	for _, src := range sources {
		settings, err := src.Load()
		if err != nil {
			return nil, err
		}
		loader.DeepMerge(merged, settings)
	}

	cfg := Default()
	if len(merged) > 0 {
		if err := decode(merged, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(settings map[string]any, cfg *Config) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return fmt.Errorf("%w: unknown settings %s", ErrInvalidConfig, strings.Join(keys, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := key.ParsePlatformStyle(c.Keyboard.Platform); err != nil {
		errs = append(errs, fmt.Errorf("%w: keyboard.platform: %v", ErrInvalidConfig, err))
	}
	if c.Keyboard.Layout == "" {
		errs = append(errs, fmt.Errorf("%w: keyboard.layout is empty", ErrInvalidConfig))
	}
	if _, err := parseTimeout(c.Keymap.PendingTimeout); err != nil {
		errs = append(errs, fmt.Errorf("%w: keymap.pending_timeout: %v", ErrInvalidConfig, err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: log: %v", ErrInvalidConfig, err))
	}
	return errors.Join(errs...)
}

// PlatformStyle returns the configured display platform.
func (c *Config) PlatformStyle() key.PlatformStyle {
	style, err := key.ParsePlatformStyle(c.Keyboard.Platform)
	if err != nil {
		return key.CurrentPlatformStyle()
	}
	return style
}

// PendingTimeout returns how long an incomplete chord waits for its next
// keystroke. Zero disables the timeout.
func (c *Config) PendingTimeout() time.Duration {
	d, _ := parseTimeout(c.Keymap.PendingTimeout)
	return d
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}
	return d, nil
}

// KeymapPaths returns the keymap files with relative paths resolved.
func (c *Config) KeymapPaths() []string {
	return c.resolve(c.Keymap.Paths)
}

// ScriptPaths returns the Lua keymap scripts with relative paths resolved.
func (c *Config) ScriptPaths() []string {
	return c.resolve(c.Keymap.Scripts)
}

func (c *Config) resolve(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, c.ResolvePath(p))
	}
	return out
}

// ResolvePath expands a leading ~ and makes p relative to the config
// file's directory.
func (c *Config) ResolvePath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) || c.Path == "" {
		return p
	}
	return filepath.Join(filepath.Dir(c.Path), p)
}
