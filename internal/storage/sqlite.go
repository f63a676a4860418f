package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteFile is the database file used by the sqlite backend.
const sqliteFile = "dundun.db"

// SQLiteBlobs stores blobs as rows of a single key-value table.
type SQLiteBlobs struct {
	db     *sql.DB
	logger *log.Logger
}

// OpenSQLiteBlobs opens or creates the database at path. Schema changes
// are logged to logger; a nil logger discards them.
func OpenSQLiteBlobs(path string, logger *log.Logger) (*SQLiteBlobs, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	b := &SQLiteBlobs{db: db, logger: logger}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return b, nil
}

func (b *SQLiteBlobs) migrate() error {
	var exists int
	err := b.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'blobs'`).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	b.logger.Printf("[sqlite] creating blobs table")
	_, err = b.db.Exec(`
		CREATE TABLE blobs (
			key        TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	return err
}

// ReadBlob returns the contents of the named blob.
func (b *SQLiteBlobs) ReadBlob(key string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT data FROM blobs WHERE key = ?`, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

// WriteBlob inserts or replaces the named blob.
func (b *SQLiteBlobs) WriteBlob(key string, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := b.db.Exec(`
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (b *SQLiteBlobs) Close() error {
	return b.db.Close()
}
