package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "file", c.StorageBackend)
	assert.Equal(t, ".stockkeeper", c.DataDir)
	assert.Equal(t, "info", c.LogLevel)
}

func TestStorePath(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, filepath.Join(".stockkeeper", "store.json"), c.StorePath())

	c.StorageBackend = "sqlite"
	assert.Equal(t, filepath.Join(".stockkeeper", "stockkeeper.db"), c.StorePath())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-s", "sqlite", "-d", "/tmp/sk", "-l", "debug"}

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.StorageBackend)
	assert.Equal(t, "/tmp/sk", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app"}

	t.Setenv("STOCKKEEPER_STORAGE", "memory")
	t.Setenv("STOCKKEEPER_LOG_LEVEL", "warn")

	cfg := LoadConfig()

	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-s", "sqlite"}

	t.Setenv("STOCKKEEPER_STORAGE", "memory")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.StorageBackend)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage_backend":"sqlite","log_level":"error"}`), 0o660))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"app", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.StorageBackend)
	assert.Equal(t, "error", cfg.LogLevel)
	// untouched fields keep their defaults
	assert.Equal(t, ".stockkeeper", cfg.DataDir)
}
