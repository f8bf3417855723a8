// Package config loads the gearscan CLI configuration from YAML.
//
// The engine itself takes no configuration; these settings only shape how
// the command line tool logs, renders and schedules its inputs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and Load for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ColorModes lists the accepted color modes.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Config holds all gearscan CLI settings.
type Config struct {
	Log     LogConfig    `yaml:"log"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // files analyzed concurrently
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// OutputConfig configures result rendering.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
	Color  string `yaml:"color"`  // auto, always, never
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorAuto,
		},
		Workers: 4,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every enumerated setting and the worker count.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		return fmt.Errorf("%w: log.encoding %q (want console or json)", ErrInvalidConfig, c.Log.Encoding)
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want one of %v)", ErrInvalidConfig, c.Output.Format, Formats)
	}
	if !slices.Contains(ColorModes, c.Output.Color) {
		return fmt.Errorf("%w: output.color %q (want one of %v)", ErrInvalidConfig, c.Output.Color, ColorModes)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// Logger builds a zap logger writing to stderr from the log settings.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Encoding == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
