package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Output formats accepted by Format.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatText = "text"
)

var (
	// ErrUnknownFormat is returned by Validate for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrInvalidWorkers is returned by Validate when batch.workers is below 1.
	ErrInvalidWorkers = errors.New("batch workers must be positive")
)

// BatchConfig holds settings for the batch runner.
type BatchConfig struct {
	Workers    int    `mapstructure:"workers"`
	EventsFile string `mapstructure:"events_file"`
	DebounceMS int    `mapstructure:"debounce_ms"`
}

// Config holds all runtime configuration for a tuvi invocation.
// Values are populated from .tuvi.yaml, TUVI_* env vars, and CLI flags.
type Config struct {
	Format        string      `mapstructure:"format"`
	LogLevel      string      `mapstructure:"log_level"`
	LogFormat     string      `mapstructure:"log_format"`
	Verbose       bool        `mapstructure:"verbose"`
	ReferenceYear int         `mapstructure:"reference_year"`
	Batch         BatchConfig `mapstructure:"batch"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("format", FormatYAML)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "console")
	viper.SetDefault("verbose", false)
	viper.SetDefault("reference_year", 0)
	viper.SetDefault("batch.workers", 4)
	viper.SetDefault("batch.events_file", "")
	viper.SetDefault("batch.debounce_ms", 100)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values Load cannot fix up on its own.
func (c Config) Validate() error {
	switch c.Format {
	case FormatYAML, FormatTOML, FormatJSON, FormatText:
	default:
		return fmt.Errorf("config: %w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("config: %w: %d", ErrInvalidWorkers, c.Batch.Workers)
	}
	return nil
}

// Debounce returns the watcher debounce window.
func (c Config) Debounce() time.Duration {
	if c.Batch.DebounceMS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Batch.DebounceMS) * time.Millisecond
}

// Year returns ReferenceYear, or the current year when it is unset.
func (c Config) Year(now time.Time) int {
	if c.ReferenceYear > 0 {
		return c.ReferenceYear
	}
	return now.Year()
}
