package main

import (
	"context"
	"log"
	"os"

	"github.com/passvault-app/passvault/internal/buildinfo"
	"github.com/passvault-app/passvault/internal/cli"
	"github.com/passvault-app/passvault/internal/config"
	"github.com/passvault-app/passvault/internal/logging"
	"github.com/passvault-app/passvault/internal/storage"
	"github.com/passvault-app/passvault/internal/vault"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	repos, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer repos.Close()

	service := vault.NewService(repos, logger, cfg.SessionIdleTimeout)
	app := cli.NewApp(cfg, service, logger)

	app.Run(ctx)
}
