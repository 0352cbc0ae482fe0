// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user config and data directories.
	AppName = "firstsource"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "firstsource.db"
	// DefaultPort matches the port the web frontend expects.
	DefaultPort = 3000
)

// Config holds process-wide configuration (read-only after startup).
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Chat    ChatConfig    `yaml:"chat,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Port            int           `yaml:"port,omitempty"`
	ReadTimeout     time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"write_timeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string `yaml:"allowed_origin,omitempty"`
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// StorageConfig holds configuration for the relational database.
type StorageConfig struct {
	// DSN is the SQLite data source: a file path, a file: URI or ":memory:".
	DSN string `yaml:"dsn,omitempty"`
	// QueryTimeout bounds every storage call.
	QueryTimeout time.Duration `yaml:"query_timeout,omitempty"`
}

// Source returns the DSN as the SQLite driver expects it, without any
// "sqlite://" URL scheme.
func (s StorageConfig) Source() string {
	return strings.TrimPrefix(strings.TrimSpace(s.DSN), "sqlite://")
}

// ChatConfig holds configuration for the assistant chat.
type ChatConfig struct {
	// ReplyDelay is how long interactive clients wait before showing a reply.
	ReplyDelay time.Duration `yaml:"reply_delay,omitempty"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level       string `yaml:"level,omitempty"`
	Development bool   `yaml:"development,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			AllowedOrigin:   "*",
		},
		Storage: StorageConfig{
			DSN:          DefaultDatabasePath(),
			QueryTimeout: 5 * time.Second,
		},
		Chat: ChatConfig{
			ReplyDelay: time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the per-user config file path.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}

// DefaultDatabasePath returns the per-user database file path.
func DefaultDatabasePath() string {
	return filepath.Join(xdg.DataHome, AppName, DefaultDatabaseFile)
}

// Load reads the config file at path. A missing file yields the defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
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

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.Storage.DSN = dsn
	}
	if level := os.Getenv("FIRSTSOURCE_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	return nil
}

// Validate checks the required settings.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Storage.Source() == "" {
		return fmt.Errorf("storage dsn is required")
	}
	return nil
}

// EnsureDataDir creates the parent directory of a file-backed DSN.
func (c *Config) EnsureDataDir() error {
	dsn := c.Storage.Source()
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}
