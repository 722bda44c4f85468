// Package config loads runtime configuration for PassVault.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path to the vault database file
//	-l string   log level (debug, info, warn, error)
//	-e string   directory for export files
//	-t int      session idle timeout (seconds, 0 disables auto-lock)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5m" or integer nanoseconds:
//
//	{
//	  "database_path": "vault.db",
//	  "log_level": "info",
//	  "export_dir": ".",
//	  "session_idle_timeout": "5m"
//	}
package config
