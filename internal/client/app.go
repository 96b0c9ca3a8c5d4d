package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaekyeom/go-bulletin-board/internal/adapter"
	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/internal/tui"
)

type App struct {
	cfg      *config.ClientConfig
	api      adapter.ServerAdapter
	storages *store.ClientStorages
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, api adapter.ServerAdapter, storages *store.ClientStorages, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || api == nil || storages == nil || ui == nil {
		return nil, errors.New("client: missing dependencies")
	}
	return &App{cfg: cfg, api: api, storages: storages, ui: ui, logger: log}, nil
}

// Run restores the persisted credential, if any, and hands the terminal to
// the UI. The UI starts in the unknown state either way; a restored token
// merely lets the startup auth-check succeed.
func (a *App) Run() error {
	ctx := context.Background()

	if a.cfg.Transport == config.TransportBearer {
		creds, err := a.storages.Credentials.Load(ctx)
		switch {
		case err == nil:
			a.api.SetToken(creds.Token)
			a.logger.Debug().Str("username", creds.Username).Msg("restored persisted credentials")
		case errors.Is(err, store.ErrLocalSessionNotFound):
			// First run or logged out: start anonymous.
		default:
			return fmt.Errorf("restore credentials: %w", err)
		}
	}

	return a.ui.Run(ctx)
}
