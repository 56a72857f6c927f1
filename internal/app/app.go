// Package app implements the interactive command-line front end: a small
// REPL over the session manager, mirroring the screens of the original
// mobile app (login, inventory list, create, edit).
package app

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/bluemoon/stockkeeper/internal/appdata"
	"github.com/bluemoon/stockkeeper/internal/config"
	"github.com/bluemoon/stockkeeper/internal/logging"
	"github.com/bluemoon/stockkeeper/internal/session"
	"github.com/bluemoon/stockkeeper/internal/storage"
)

type App struct {
	config  *config.Config
	manager *session.Manager
	store   storage.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.StorageBackend, cfg.StorePath())
	if err != nil {
		return nil, err
	}

	data := appdata.NewAccessor(store, log)
	manager := session.NewManager(data, log)
	manager.Bootstrap(ctx)

	return &App{
		config:  cfg,
		manager: manager,
		store:   store,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Error(ctx, "closing store", "error", err)
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.manager.CurrentUser() != nil
}

func (a *App) status() string {
	if user := a.manager.CurrentUser(); user != nil {
		return user.Email
	}
	return "signed out"
}
