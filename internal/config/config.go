// Package config loads charj.toml, the optional configuration file of the
// charj command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "charj.toml"

// Output formats.
const (
	FormatSExpr = "sexpr"
	FormatYAML  = "yaml"
)

// Config holds the complete command configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Parse  ParseConfig  `toml:"parse"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls how trees and diagnostics are printed
type OutputConfig struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

// ParseConfig controls multi-file parsing
type ParseConfig struct {
	// Jobs bounds the number of files parsed at once; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// LogConfig controls progress logging
type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not
// exist. Any other failure is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatSExpr
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
	if c.Parse.Jobs == 0 {
		c.Parse.Jobs = runtime.GOMAXPROCS(0)
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatSExpr, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatSExpr, FormatYAML, c.Output.Format)
	}
	if c.Parse.Jobs < 0 {
		return fmt.Errorf("parse.jobs must not be negative, got %d", c.Parse.Jobs)
	}
	return nil
}

// UseColor reports whether diagnostics may be styled.
func (c *Config) UseColor() bool {
	return c.Output.Color != nil && *c.Output.Color
}
