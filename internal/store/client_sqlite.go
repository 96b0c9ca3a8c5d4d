package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jaekyeom/go-bulletin-board/internal/logger"
)

// ClientDB wraps the client's local SQLite database.
type ClientDB struct {
	*sql.DB
	logger *logger.Logger
}

const createCredentialsTable = `CREATE TABLE IF NOT EXISTS credentials (
    id       INTEGER PRIMARY KEY CHECK (id = 1),
    token    TEXT NOT NULL,
    username TEXT NOT NULL
);`

func NewConnectSQLite(ctx context.Context, dbPath string, log *logger.Logger) (*ClientDB, error) {
	// db lives in a file next to the client
	if err := createLocalDBFileIfNotExists(dbPath); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &ClientDB{DB: conn, logger: log}, nil
}

// Migrate creates the local schema. The client schema is a single table, so
// the goose machinery used on the server would be overkill here.
func (db *ClientDB) Migrate() error {
	if _, err := db.Exec(createCredentialsTable); err != nil {
		return fmt.Errorf("create credentials table: %w", err)
	}
	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
