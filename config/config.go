/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

const (
	// DefaultMaxCallbacks is the capacity used when none is specified.
	// Kept small: every (type, capacity) pair owns one registry for the
	// lifetime of the process.
	DefaultMaxCallbacks = 4
	// DefaultLogLevel disables registry logging unless asked for.
	DefaultLogLevel = "disabled"
	// DefaultLogFormat emits one JSON object per event.
	DefaultLogFormat = FormatJSON
)

const (
	// FormatJSON selects zerolog's native JSON output.
	FormatJSON = "json"
	// FormatConsole selects zerolog.ConsoleWriter.
	FormatConsole = "console"
)

var (
	// ErrInvalidLogLevel is returned when LogLevel is not a zerolog level.
	ErrInvalidLogLevel = errors.New("ctorcb(config): invalid log level")
	// ErrInvalidLogFormat is returned when LogFormat is neither json nor console.
	ErrInvalidLogFormat = errors.New("ctorcb(config): invalid log format")
)

// Config carries the process-wide knobs of the notifier.
// Values are loaded from the environment by Load.
type Config struct {
	// LogLevel is a zerolog level name ("debug", "warn", "disabled", ...).
	LogLevel string `env:"CTORCB_LOG_LEVEL" envDefault:"disabled"`
	// LogFormat is either "json" or "console".
	LogFormat string `env:"CTORCB_LOG_FORMAT" envDefault:"json"`
}

// DefaultConfig is the configuration used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// NewConfig constructs a Config from the given options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option is a functional option that mutates a Config during construction.
type Option func(*Config)

// WithLogLevel sets the LogLevel option.
// An empty value resets to the default.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		if level == "" {
			c.LogLevel = DefaultLogLevel
			return
		}
		c.LogLevel = level
	}
}

// WithLogFormat sets the LogFormat option.
// An empty value resets to the default.
func WithLogFormat(format string) Option {
	return func(c *Config) {
		if format == "" {
			c.LogFormat = DefaultLogFormat
			return
		}
		c.LogFormat = format
	}
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatJSON, FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
}

var (
	loaded  Config
	loadErr error
	once    sync.Once
)

// Load parses the environment once and caches the result.
// On error the default configuration is returned together with the error.
func Load() (Config, error) {
	once.Do(func() {
		loaded, loadErr = Parse()
	})
	return loaded, loadErr
}

// Parse reads Config from the environment without caching.
// An invalid field is reset to its default and reported; valid fields are kept.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), err
	}

	var errs []error
	if _, err := cfg.Level(); err != nil {
		cfg.LogLevel = DefaultLogLevel
		errs = append(errs, err)
	}
	if cfg.LogFormat != FormatJSON && cfg.LogFormat != FormatConsole {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat))
		cfg.LogFormat = DefaultLogFormat
	}
	return cfg, errors.Join(errs...)
}
