// Package sqlite keeps cart snapshots in an embedded SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const driverName = "sqlite3"

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS cart_snapshots (
	slot_key   TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`
	upsertSQL = `INSERT INTO cart_snapshots (slot_key, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	selectSQL = `SELECT payload FROM cart_snapshots WHERE slot_key = ?`
	deleteSQL = `DELETE FROM cart_snapshots WHERE slot_key = ?`
)

// cartSnapshotRepository implements repository.CartSnapshotRepository on SQLite.
type cartSnapshotRepository struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and prepares the snapshot table.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (repository.CartSnapshotRepository, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "failed to create sqlite directory")
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	// A single connection serialises writers and keeps an in-memory database alive.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to ping sqlite database")
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create cart_snapshots table")
	}

	return &cartSnapshotRepository{db: db}, nil
}

// SaveSnapshot upserts the row in a single statement.
func (repo *cartSnapshotRepository) SaveSnapshot(ctx context.Context, key string, data []byte) error {
	if _, err := repo.db.ExecContext(ctx, upsertSQL, key, data, time.Now().UTC()); err != nil {
		return errors.Wrapf(err, "failed to save snapshot %s", key)
	}

	return nil
}

func (repo *cartSnapshotRepository) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	if err := repo.db.QueryRowContext(ctx, selectSQL, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to load snapshot %s", key)
	}

	return data, nil
}

func (repo *cartSnapshotRepository) DeleteSnapshot(ctx context.Context, key string) error {
	if _, err := repo.db.ExecContext(ctx, deleteSQL, key); err != nil {
		return errors.Wrapf(err, "failed to delete snapshot %s", key)
	}

	return nil
}

func (repo *cartSnapshotRepository) Close() error {
	return errors.WithStack(repo.db.Close())
}
