package config

import "time"

// Config holds runtime settings for the PassVault application.
//
// Fields:
//   - DatabasePath: path of the SQLite vault file.
//   - LogLevel: minimum log level (debug, info, warn, error).
//   - ExportDir: directory where export documents are written.
//   - SessionIdleTimeout: how long a session may stay idle before it is
//     locked. Zero disables auto-lock.
type Config struct {
	DatabasePath       string
	LogLevel           string
	ExportDir          string
	SessionIdleTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "vault.db"
	c.LogLevel = "info"
	c.ExportDir = "."
	c.SessionIdleTimeout = 15 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
