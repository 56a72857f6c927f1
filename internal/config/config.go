package config

import "path/filepath"

// Config holds runtime settings for the stockkeeper CLI.
//
// Fields:
//   - StorageBackend: "file", "sqlite" or "memory".
//   - DataDir: directory holding the store document/database.
//   - LogFile: rotating log file path; empty logs to stderr.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	StorageBackend string
	DataDir        string
	LogFile        string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = "file"
	c.DataDir = ".stockkeeper"
	c.LogFile = filepath.Join(".stockkeeper", "stockkeeper.log")
	c.LogLevel = "info"
}

// StorePath returns the backend-specific path inside DataDir.
func (c *Config) StorePath() string {
	if c.StorageBackend == "sqlite" {
		return filepath.Join(c.DataDir, "stockkeeper.db")
	}
	return filepath.Join(c.DataDir, "store.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
