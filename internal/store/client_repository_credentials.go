package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekyeom/go-bulletin-board/internal/logger"
	"github.com/jaekyeom/go-bulletin-board/models"
)

// credentialRepository is the SQLite-backed implementation of
// [CredentialRepository]. The credentials table holds at most one row.
type credentialRepository struct {
	logger *logger.Logger
	db     *ClientDB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// local SQLite database.
func NewCredentialRepository(db *ClientDB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// Save writes the session credential, replacing whatever was stored before.
func (r *credentialRepository) Save(ctx context.Context, creds models.Credentials) error {
	const query = `INSERT INTO credentials (id, token, username) VALUES (1, ?, ?)
    ON CONFLICT (id) DO UPDATE SET token = excluded.token, username = excluded.username;`

	if _, err := r.db.ExecContext(ctx, query, creds.Token, creds.Username); err != nil {
		r.logger.Err(err).Str("func", "*credentialRepository.Save").Msg("error saving credentials")
		return fmt.Errorf("save credentials: %w", err)
	}

	return nil
}

// Load returns the persisted credential, or [ErrLocalSessionNotFound] when
// none has been saved.
func (r *credentialRepository) Load(ctx context.Context) (models.Credentials, error) {
	const query = `SELECT token, username FROM credentials WHERE id = 1;`

	var creds models.Credentials
	row := r.db.QueryRowContext(ctx, query)
	if err := row.Scan(&creds.Token, &creds.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credentials{}, ErrLocalSessionNotFound
		}

		r.logger.Err(err).Str("func", "*credentialRepository.Load").Msg("error loading credentials")
		return models.Credentials{}, fmt.Errorf("load credentials: %w", err)
	}

	return creds, nil
}

// Clear removes the persisted credential. Token and username go together.
func (r *credentialRepository) Clear(ctx context.Context) error {
	const query = `DELETE FROM credentials WHERE id = 1;`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		r.logger.Err(err).Str("func", "*credentialRepository.Clear").Msg("error clearing credentials")
		return fmt.Errorf("clear credentials: %w", err)
	}

	return nil
}
