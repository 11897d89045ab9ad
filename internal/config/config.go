// Package config loads shape-curl CLI settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCurl = "curl" // canonical curl command
	FormatHTTP = "http" // HTTP/1.1 wire format
	FormatAST  = "ast"  // shape-core AST as JSON
)

// Config holds CLI settings.
type Config struct {
	// Workers bounds parallel parses during import.
	Workers int `yaml:"workers"`
	// Strict rejects commands that end inside quotes.
	Strict bool `yaml:"strict"`
	// Format selects the output encoding.
	Format string `yaml:"format"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Workers: runtime.GOMAXPROCS(0),
		Strict:  false,
		Format:  FormatJSON,
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SHAPE_CURL_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHAPE_CURL_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("SHAPE_CURL_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("SHAPE_CURL_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Strict = b
		}
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatCurl, FormatHTTP, FormatAST:
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
