// Package config loads opmatrix runtime settings from YAML, .env files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	opmatrix "github.com/njchilds90/opmatrix"
)

// Config holds all opmatrix configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`

	// DefaultScale is used by the CLI when --scale is not given.
	DefaultScale int `yaml:"default_scale"`
}

// ServerConfig configures the HTTP tool server.
type ServerConfig struct {
	Addr              string `yaml:"addr"`
	MaxBodyBytes      int64  `yaml:"max_body_bytes"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ReadTimeout       string `yaml:"read_timeout"`
	WriteTimeout      string `yaml:"write_timeout"`
	IdleTimeout       string `yaml:"idle_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

// RenderConfig configures text rendering of matrices.
type RenderConfig struct {
	On  string `yaml:"on"`
	Off string `yaml:"off"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			MaxBodyBytes:      1 << 20,
			ReadHeaderTimeout: "5s",
			ReadTimeout:       "15s",
			WriteTimeout:      "15s",
			IdleTimeout:       "60s",
			ShutdownTimeout:   "10s",
		},
		Render: RenderConfig{
			On:  "█",
			Off: "·",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		DefaultScale: 1,
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Values from a .env file next to the working directory and from
// the process environment override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// .env is optional; real environment variables win over it.
	_ = godotenv.Load(".env")

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

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

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if addr := os.Getenv("OPMATRIX_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if level := os.Getenv("OPMATRIX_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("OPMATRIX_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if scale := os.Getenv("OPMATRIX_DEFAULT_SCALE"); scale != "" {
		s, err := opmatrix.ParseScale(scale)
		if err != nil {
			return fmt.Errorf("OPMATRIX_DEFAULT_SCALE: %w", err)
		}
		c.DefaultScale = int(s)
	}
	return nil
}

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address not configured (set server.addr or OPMATRIX_ADDR)")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if c.DefaultScale < 1 || c.DefaultScale > 3 {
		return fmt.Errorf("default_scale must be 1, 2 or 3, got %d", c.DefaultScale)
	}

	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.Logging.Format)
	}
	return nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// GetReadHeaderTimeout returns the read header timeout as a duration.
func (c *Config) GetReadHeaderTimeout() time.Duration {
	return parseDuration(c.Server.ReadHeaderTimeout, 5*time.Second)
}

// GetReadTimeout returns the read timeout as a duration.
func (c *Config) GetReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 15*time.Second)
}

// GetWriteTimeout returns the write timeout as a duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 15*time.Second)
}

// GetIdleTimeout returns the idle timeout as a duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return parseDuration(c.Server.IdleTimeout, 60*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown budget as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}
