// Package tui implements the terminal client for the bulletin board: a
// session-gated board page plus login, register and compose forms, built on
// Bubble Tea.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaekyeom/go-bulletin-board/internal/adapter"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/internal/posts"
	"github.com/jaekyeom/go-bulletin-board/internal/session"
	"github.com/jaekyeom/go-bulletin-board/internal/store"
	"github.com/jaekyeom/go-bulletin-board/models"
)

type TUI struct {
	api       adapter.ServerAdapter
	creds     store.CredentialRepository
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(api adapter.ServerAdapter, creds store.CredentialRepository, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if api == nil || creds == nil {
		return nil, errors.New("tui: server adapter and credential repository are required")
	}
	return &TUI{api: api, creds: creds, buildInfo: buildInfo, logger: log}, nil
}

// Run owns the terminal until the user quits. The session and post stores
// live exactly as long as one program run.
func (t *TUI) Run(ctx context.Context) error {
	sess := session.NewStore()
	collection := posts.NewStore(sess)

	model := newAppModel(ctx, t.api, sess, collection, t.creds, t.buildInfo, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
