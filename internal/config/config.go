package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains runtime options for the news view.
// Use DefaultConfig() to get sensible defaults, or Load() to read the environment.
type Config struct {
	// Terminal settings
	AltScreen bool `env:"ALT_SCREEN" envDefault:"true"` // Render in the alternate screen buffer (default: true)
	Mouse     bool `env:"MOUSE" envDefault:"true"`      // Enable mouse clicks on the controls (default: true)

	// Layout
	ImageWidth int `env:"IMAGE_WIDTH" envDefault:"64"` // Maximum image width in cells (default: 64)

	// Output mode
	Plain bool `env:"PLAIN" envDefault:"false"` // Print once without the interactive UI (default: false)

	// Logging
	LogFile string `env:"LOG_FILE"` // Debug log path; empty disables logging
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "NEWSVIEW_"

const (
	minImageWidth = 8
	maxImageWidth = 256
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AltScreen:  true,
		Mouse:      true,
		ImageWidth: 64,
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return load(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithAltScreen returns a copy of the config with the alternate screen enabled/disabled.
func (c Config) WithAltScreen(enabled bool) Config {
	c.AltScreen = enabled
	return c
}

// WithMouse returns a copy of the config with mouse support enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.Mouse = enabled
	return c
}

// WithImageWidth returns a copy of the config with a modified image width.
func (c Config) WithImageWidth(w int) Config {
	c.ImageWidth = w
	return c
}

// WithPlain returns a copy of the config with plain output enabled/disabled.
func (c Config) WithPlain(enabled bool) Config {
	c.Plain = enabled
	return c
}

// WithLogFile returns a copy of the config with a modified log path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.ImageWidth < minImageWidth || c.ImageWidth > maxImageWidth {
		return &ConfigError{Field: "ImageWidth", Message: fmt.Sprintf("must be between %d and %d", minImageWidth, maxImageWidth)}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
