package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/passvault-app/passvault/internal/flagx"
	"github.com/passvault-app/passvault/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for the timeout field, which allows parsing
// both string values such as "5m" and integer nanoseconds. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	DatabasePath       string         `json:"database_path"`
	LogLevel           string         `json:"log_level"`
	ExportDir          string         `json:"export_dir"`
	SessionIdleTimeout timex.Duration `json:"session_idle_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. If the file cannot be
// read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatabasePath = c.DatabasePath
	config.LogLevel = c.LogLevel
	config.ExportDir = c.ExportDir
	config.SessionIdleTimeout = time.Duration(c.SessionIdleTimeout.Duration)
}
