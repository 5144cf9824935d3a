package app

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config captures runtime parameters for a CLI invocation.
type Config struct {
	EncodingName   string   `yaml:"encoding"`
	IgnoreSegments []string `yaml:"ignore"`
	TempBase       string   `yaml:"temp_base"`
	Debug          bool     `yaml:"-"`
	Version        string   `yaml:"-"`
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		EncodingName: "utf-8",
		TempBase:     os.TempDir(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// LoadConfigFile overlays settings from a YAML config file onto cfg. A
// missing file is not an error.
func LoadConfigFile(fs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// WithEncodingName sets the text encoding used by read/write commands.
func WithEncodingName(name string) ConfigOption {
	return func(cfg *Config) {
		if name != "" {
			cfg.EncodingName = name
		}
	}
}

// WithIgnoreSegments configures path segments skipped by traversal output.
func WithIgnoreSegments(segments []string) ConfigOption {
	return func(cfg *Config) {
		cfg.IgnoreSegments = append([]string{}, segments...)
	}
}

// WithTempBase overrides the base directory for temporary resources.
func WithTempBase(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.TempBase = path
		}
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
