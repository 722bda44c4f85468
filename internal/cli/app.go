// Package cli implements the terminal front end of PassVault: a small REPL
// that binds to the vault service and renders plain data. It is the stand-in
// for any other presentation layer the service could back.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/passvault-app/passvault/internal/config"
	"github.com/passvault-app/passvault/internal/logging"
	"github.com/passvault-app/passvault/internal/vault"
)

type App struct {
	config  *config.Config
	service *vault.Service
	session *vault.Session
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, service *vault.Service, log logging.Logger) *App {
	return &App{
		config:  cfg,
		service: service,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "starting interactive session", "database", a.config.DatabasePath)
	runREPL(ctx, bufio.NewScanner(os.Stdin), a)
}
