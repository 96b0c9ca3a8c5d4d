package store

import (
	"context"
	"fmt"

	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages initialises the server storage layer: it connects to
// PostgreSQL, runs pending schema migrations, and wires the repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}, nil
}
