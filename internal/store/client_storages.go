package store

import (
	"context"
	"fmt"

	"github.com/jaekyeom/go-bulletin-board/internal/config"
	"github.com/jaekyeom/go-bulletin-board/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// Credentials is the SQLite-backed store for the persisted session
	// credential (bearer-token deployments).
	Credentials CredentialRepository
}

// NewClientStorages initialises the client storage layer: it opens the local
// SQLite file (creating it if missing), ensures the schema exists, and wires
// the credential repository.
func NewClientStorages(cfg config.ClientConfig, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(context.Background(), cfg.DBPath, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewCredentialRepository(db, log),
	}, nil
}
