// Package config loads lessonpad settings from a YAML file. A missing file
// means defaults; command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/lessonpad/internal/commands"
	"github.com/renato0307/lessonpad/internal/keyboard"
	"github.com/renato0307/lessonpad/internal/ui"
)

const (
	appDir     = "lessonpad"
	configFile = "config.yaml"
)

var (
	// ErrUnknownTheme is returned when theme names no built-in theme
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrInvalidConfig wraps field validation failures
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the full set of user settings.
type Config struct {
	Theme       string            `json:"theme" validate:"required"`
	Trigger     string            `json:"trigger" validate:"required,trigger"`
	FilterMode  string            `json:"filterMode" validate:"oneof=substring fuzzy"`
	Placeholder string            `json:"placeholder"`
	Menu        MenuConfig        `json:"menu"`
	Log         LogConfig         `json:"log"`
	Keys        map[string]string `json:"keys,omitempty"`
}

// MenuConfig sizes the block menu.
type MenuConfig struct {
	Width      int `json:"width" validate:"gte=24,lte=120"`
	MaxVisible int `json:"maxVisible" validate:"gte=3,lte=40"`
}

// LogConfig controls the log file. An empty File disables logging.
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level" validate:"oneof=debug info warn error"`
	Format     string `json:"format" validate:"oneof=text json"`
	MaxSizeMB  int    `json:"maxSizeMB" validate:"gte=1"`
	MaxBackups int    `json:"maxBackups" validate:"gte=0"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme:       "charm",
		Trigger:     "/",
		FilterMode:  string(commands.FilterSubstring),
		Placeholder: "Type '/' for commands",
		Menu: MenuConfig{
			Width:      44,
			MaxVisible: 10,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/lessonpad/config.yaml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads path over the defaults and validates the result. If path
// is empty DefaultPath is used. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints, the theme name and key overrides.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if !ui.HasTheme(c.Theme) {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, c.Theme, strings.Join(ui.AvailableThemes(), ", "))
	}
	if err := keyboard.Default().Apply(c.Keys); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalidConfig, err)
	}
	return nil
}

// TriggerRune returns the rune that opens the block menu.
func (c *Config) TriggerRune() rune {
	return []rune(c.Trigger)[0]
}

// KeyMap returns the key bindings with the configured overrides applied.
// Call it on a validated config.
func (c *Config) KeyMap() keyboard.KeyMap {
	keys := keyboard.Default()
	_ = keys.Apply(c.Keys)
	return keys.KeyMap(c.TriggerRune())
}

// YAML renders the config as it would be written to the config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
