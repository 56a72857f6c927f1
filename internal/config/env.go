package config

import "github.com/caarlos0/env/v11"

// envConfig mirrors Config for environment parsing.
type envConfig struct {
	StorageBackend string `env:"STOCKKEEPER_STORAGE"`
	DataDir        string `env:"STOCKKEEPER_DATA_DIR"`
	LogFile        string `env:"STOCKKEEPER_LOG_FILE"`
	LogLevel       string `env:"STOCKKEEPER_LOG_LEVEL"`
}

// parseEnv overlays Config with any STOCKKEEPER_* variables that are set.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.StorageBackend != "" {
		cfg.StorageBackend = ec.StorageBackend
	}
	if ec.DataDir != "" {
		cfg.DataDir = ec.DataDir
	}
	if ec.LogFile != "" {
		cfg.LogFile = ec.LogFile
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
