// Package store persists clients in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

var (
	// ErrClientNotFound indicates the requested row does not exist.
	ErrClientNotFound = errors.New("client not found in store")
	// ErrLocked indicates another process has the data file open.
	ErrLocked = errors.New("client book is in use by another process")
)

// CurrentVersion is the schema version written to PRAGMA user_version.
// v1: clients table
// v2: created_at/updated_at columns
const CurrentVersion = 2

// Store is the SQLite-backed client store.
type Store struct {
	db   *sql.DB
	lock *fileLock
}

// Open opens or creates the store at path, holding an exclusive lock on
// "<path>.lock" until Close.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	lock, err := acquireLock(path + ".lock")
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Release()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, lock: lock}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		_ = lock.Release()
		return nil, err
	}
	return s, nil
}

// OpenInMemory opens an in-memory store (for testing).
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every pooled connection would otherwise get its own empty database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database and releases the file lock.
func (s *Store) Close() error {
	closeErr := s.db.Close()
	if s.lock != nil {
		if err := s.lock.Release(); err != nil && closeErr == nil {
			closeErr = err
		}
	}
	return closeErr
}

// Version returns the schema version recorded in the database.
func (s *Store) Version(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}

func (s *Store) migrate(ctx context.Context) error {
	version, err := s.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > CurrentVersion {
		return fmt.Errorf("database schema v%d is newer than supported v%d", version, CurrentVersion)
	}

	steps := []string{
		// v1
		`CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			address TEXT NOT NULL
		);`,
		// v2
		`ALTER TABLE clients ADD COLUMN created_at INTEGER NOT NULL DEFAULT 0;
		 ALTER TABLE clients ADD COLUMN updated_at INTEGER NOT NULL DEFAULT 0;`,
	}

	for v := version; v < CurrentVersion; v++ {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, steps[v]); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to migrate schema to v%d: %w", v+1, err)
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record schema v%d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}
