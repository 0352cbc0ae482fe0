package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# FirstSource Health configuration

server:
  port: 3000 # or set PORT
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
  allowed_origin: "*"

storage:
  # dsn: /path/to/firstsource.db (or set DATABASE_URL)
  query_timeout: 5s

chat:
  reply_delay: 1s

log:
  level: info # or set FIRSTSOURCE_LOG_LEVEL
  development: false
`

// WriteDefault writes a default config file at path, refusing to overwrite.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists reports whether a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
