package config

import (
	"encoding/json"
	"os"

	"github.com/bluemoon/stockkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; empty fields leave the earlier layer's
// value in place.
type JsonConfig struct {
	StorageBackend string `json:"storage_backend"`
	DataDir        string `json:"data_dir"`
	LogFile        string `json:"log_file"`
	LogLevel       string `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. No flag means no JSON is loaded. Read or unmarshal
// errors panic; the config file being present but unreadable is a setup
// problem worth failing loudly on.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageBackend != "" {
		cfg.StorageBackend = jc.StorageBackend
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
