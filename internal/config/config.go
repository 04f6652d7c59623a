package config

import (
	"fmt"
	"strings"
)

// Config holds the application configuration. It is assembled once at
// startup and immutable afterwards; components receive it explicitly.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	// BaseURL is used only to format the short_url response field.
	// Any trailing slash is stripped at construction.
	BaseURL string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Verbose bool
}

// New creates a new config with the given parameters
func New(port, baseURL, dbPath string, verbose bool) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    port,
			BaseURL: strings.TrimRight(baseURL, "/"),
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		Logging: LoggingConfig{
			Verbose: verbose,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Server.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}

	return nil
}
