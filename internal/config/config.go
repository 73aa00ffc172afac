// Package config loads waterjug settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waterjug/internal/input"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	Solver Solver `yaml:"solver"`
	Output Output `yaml:"output"`
	// Query is the puzzle solved when `solve` runs without arguments.
	Query input.Query `yaml:"query"`
}

// DefaultServerMaxStates bounds the work of one HTTP solve unless configured.
const DefaultServerMaxStates = 1 << 20

// Log configures the application logger.
type Log struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

// Server configures `waterjug serve`.
type Server struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// MaxStates bounds expanded states per request; it must be positive.
	MaxStates int `yaml:"max_states"`
}

// Solver configures `waterjug solve`.
type Solver struct {
	// MaxStates bounds expanded states per solve; 0 disables the limit.
	MaxStates int `yaml:"max_states"`
}

// Output configures how `waterjug solve` prints results.
type Output struct {
	// Format is text, markdown, json or yaml.
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Server: Server{Addr: ":8080", ShutdownTimeout: 5 * time.Second, MaxStates: DefaultServerMaxStates},
		Output: Output{Format: "text"},
		Query:  input.Query{X: 2, Y: 10, Z: 4},
	}
}

// Load reads path on top of Default. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Solver.MaxStates < 0 {
		return fmt.Errorf("%w: solver.max_states cannot be negative (%d)", ErrInvalidConfig, c.Solver.MaxStates)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout cannot be negative", ErrInvalidConfig)
	}
	if c.Server.MaxStates <= 0 {
		return fmt.Errorf("%w: server.max_states must be positive (%d)", ErrInvalidConfig, c.Server.MaxStates)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if err := c.Query.Validate(); err != nil {
		return fmt.Errorf("%w: query: %v", ErrInvalidConfig, err)
	}
	return nil
}
