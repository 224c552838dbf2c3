package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoadFrom_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_driver: memory\nconfirm_delete: false\nlog_level: DEBUG\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.False(t, cfg.ConfirmDelete)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_driver: [unterminated"), 0644))

	_, err := LoadFrom(path)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.ServerAddr = "127.0.0.1:9000"
	cfg.LogConsole = true
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TICKETR_STORAGE", "postgres")
	t.Setenv("TICKETR_DATABASE_URL", "postgres://localhost/ticketr")
	t.Setenv("TICKETR_LOG_CONSOLE", "true")

	cfg := DefaultConfig()
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/ticketr", cfg.DatabaseURL)
	assert.True(t, cfg.LogConsole)
}

func TestLoadFrom_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.StorageDriver = "sqlite"
	cfg.LogLevel = "WARN"
	require.NoError(t, cfg.SaveTo(path))

	t.Setenv("TICKETR_STORAGE", "memory")
	t.Setenv("TICKETR_LOG_CONSOLE", "true")

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", loaded.StorageDriver)
	assert.True(t, loaded.LogConsole)
	assert.Equal(t, "WARN", loaded.LogLevel)
}

func TestSaveTo_KeepsEnvValuesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_driver: sqlite\n"), 0644))

	t.Setenv("TICKETR_STORAGE", "postgres")
	t.Setenv("TICKETR_DATABASE_URL", "postgres://ticketr:hunter2@db/ticketr")
	t.Setenv("TICKETR_LOG_LEVEL", "DEBUG")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "postgres://ticketr:hunter2@db/ticketr", cfg.DatabaseURL)

	// an explicit change to an env-backed field is still saved
	cfg.LogLevel = "ERROR"
	require.NoError(t, cfg.SaveTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2")
	assert.NotContains(t, string(data), "postgres")
	assert.Contains(t, string(data), "log_level: ERROR")

	// the in-memory config still carries the env values
	assert.Equal(t, "postgres", cfg.StorageDriver)
}
