package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("FIRSTSOURCE_LOG_LEVEL", "")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, DefaultDatabasePath(), cfg.Storage.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.Chat.ReplyDelay)
}

func TestLoad_DefaultYAMLMatchesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
  allowed_origin: https://app.example.org
storage:
  dsn: /tmp/test.db
  query_timeout: 2s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://app.example.org", cfg.Server.AllowedOrigin)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.QueryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("DATABASE_URL", "sqlite:///var/lib/firstsource.db")
	t.Setenv("FIRSTSOURCE_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "/var/lib/firstsource.db", cfg.Storage.Source())
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid PORT", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "abc")
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "70000")
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("blank dsn", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage:\n  dsn: \"sqlite://\"\n"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestStorageConfig_Source(t *testing.T) {
	assert.Equal(t, ":memory:", StorageConfig{DSN: ":memory:"}.Source())
	assert.Equal(t, "/data/app.db", StorageConfig{DSN: " sqlite:///data/app.db "}.Source())
	assert.Equal(t, "file:app.db?cache=shared", StorageConfig{DSN: "file:app.db?cache=shared"}.Source())
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path))
	assert.True(t, Exists(path))
	assert.Error(t, WriteDefault(path))
}

func TestEnsureDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	cfg := Default()
	cfg.Storage.DSN = filepath.Join(dir, "app.db")

	require.NoError(t, cfg.EnsureDataDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg.Storage.DSN = ":memory:"
	assert.NoError(t, cfg.EnsureDataDir())
}
