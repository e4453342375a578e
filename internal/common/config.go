// Package common provides shared utilities for Folio
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Folio
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Sources     SourcesConfig `toml:"sources"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds SurrealDB connection configuration
type StorageConfig struct {
	Address   string `toml:"address"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
}

// SourcesConfig holds configuration for the portfolio data sources tried in
// priority order by the source selector.
type SourcesConfig struct {
	AttemptTimeout string          `toml:"attempt_timeout"` // per-attempt budget, duration string
	Primary        SourceAPIConfig `toml:"primary"`
	Legacy         SourceAPIConfig `toml:"legacy"`
}

// SourceAPIConfig holds one upstream holdings API configuration.
type SourceAPIConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
}

// GetAttemptTimeout parses and returns the per-attempt timeout duration.
func (c *SourcesConfig) GetAttemptTimeout() time.Duration {
	d, err := time.ParseDuration(c.AttemptTimeout)
	if err != nil {
		return 2 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Address:   "ws://localhost:8000",
			Username:  "root",
			Password:  "root",
			Namespace: "folio",
			Database:  "folio",
		},
		Sources: SourcesConfig{
			AttemptTimeout: "2s",
			Primary: SourceAPIConfig{
				BaseURL:   "http://localhost:9000/api",
				RateLimit: 10,
			},
			Legacy: SourceAPIConfig{
				BaseURL:   "http://localhost:9001/v1",
				RateLimit: 5,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FOLIO_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FOLIO_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FOLIO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if addr := os.Getenv("FOLIO_SURREALDB_ADDRESS"); addr != "" {
		config.Storage.Address = addr
	}

	if user := os.Getenv("FOLIO_SURREALDB_USERNAME"); user != "" {
		config.Storage.Username = user
	}

	if pass := os.Getenv("FOLIO_SURREALDB_PASSWORD"); pass != "" {
		config.Storage.Password = pass
	}

	if ns := os.Getenv("FOLIO_SURREALDB_NAMESPACE"); ns != "" {
		config.Storage.Namespace = ns
	}

	if db := os.Getenv("FOLIO_SURREALDB_DATABASE"); db != "" {
		config.Storage.Database = db
	}

	if key := os.Getenv("FOLIO_PRIMARY_API_KEY"); key != "" {
		config.Sources.Primary.APIKey = key
	}

	if key := os.Getenv("FOLIO_LEGACY_API_KEY"); key != "" {
		config.Sources.Legacy.APIKey = key
	}

	if timeout := os.Getenv("FOLIO_SOURCE_TIMEOUT"); timeout != "" {
		if _, err := time.ParseDuration(timeout); err == nil {
			config.Sources.AttemptTimeout = timeout
		}
	}
}
