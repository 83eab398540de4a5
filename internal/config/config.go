// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sudhanva/roadmap-engine/internal/overrides"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP port for the serve command

	// Template source: exactly one of the two
	TemplatesDir string `json:"templates_dir,omitempty"` // Directory containing persona template JSON
	TemplatesURL string `json:"templates_url,omitempty"` // Base URL of a remote template endpoint

	// Content validation
	SchemaPath string `json:"schema_path,omitempty"` // Path to the template JSON Schema

	// Behavior
	Verbose   bool              `json:"verbose,omitempty"`   // Print detailed composition information
	Overrides *overrides.Policy `json:"overrides,omitempty"` // Override-rule thresholds; nil uses defaults
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. File and flag values
// take precedence through MergeWithDefaults.
func FromEnv() Config {
	cfg := Config{
		TemplatesDir: os.Getenv("TEMPLATES_DIR"),
		TemplatesURL: os.Getenv("TEMPLATES_URL"),
		SchemaPath:   os.Getenv("TEMPLATE_SCHEMA"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.TemplatesDir != "" && c.TemplatesURL != "" {
		return fmt.Errorf("config error: 'templates_dir' and 'templates_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.TemplatesDir != "" {
		if _, err := os.Stat(c.TemplatesDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: templates directory not found: %s", c.TemplatesDir)
		}
	}
	if c.SchemaPath != "" {
		if _, err := os.Stat(c.SchemaPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
		}
	}

	if c.Overrides != nil {
		p := c.Overrides
		if p.ExtendFactor <= 1 {
			return fmt.Errorf("config error: 'overrides.extend_factor' must be greater than 1")
		}
		if p.CompressFactor <= 0 || p.CompressFactor >= 1 {
			return fmt.Errorf("config error: 'overrides.compress_factor' must be between 0 and 1")
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags, and
// environment values as defaults for both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TemplatesDir == "" {
		result.TemplatesDir = defaults.TemplatesDir
	}
	if result.TemplatesURL == "" {
		result.TemplatesURL = defaults.TemplatesURL
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if result.Overrides == nil {
		result.Overrides = defaults.Overrides
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
