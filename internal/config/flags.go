package config

import (
	"flag"
	"os"
	"time"

	"github.com/passvault-app/passvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the vault database file (default from Config)
//	-l string   log level (default from Config)
//	-e string   export directory (default from Config)
//	-t int      session idle timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-e", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the vault database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for export files")
	idleTimeout := fs.Int("t", int(cfg.SessionIdleTimeout.Seconds()), "session idle timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionIdleTimeout = time.Duration(*idleTimeout) * time.Second
}
