// Package history records completed catalog loads in a local SQLite
// database so `advisor history` can show what was loaded and when.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS loads (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    file       TEXT NOT NULL,
    loaded     INTEGER NOT NULL,
    skipped    INTEGER NOT NULL DEFAULT 0,
    bad_lines  INTEGER NOT NULL DEFAULT 0,
    loaded_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Entry is one recorded load.
type Entry struct {
	ID       int64
	File     string
	Loaded   int
	Skipped  int
	BadLines int
	LoadedAt time.Time
}

// Store persists load history in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath, enables WAL mode
// and a busy timeout, and creates the schema if missing.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// One connection is enough for a single-user CLI and sidesteps
	// SQLITE_BUSY contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record inserts one load entry.
func (s *Store) Record(ctx context.Context, file string, loaded, skipped, badLines int) error {
	const q = `INSERT INTO loads (file, loaded, skipped, bad_lines) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, file, loaded, skipped, badLines); err != nil {
		return fmt.Errorf("history: record load of %q: %w", file, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	const q = `
		SELECT id, file, loaded, skipped, bad_lines, loaded_at
		FROM loads ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query recent loads: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.File, &e.Loaded, &e.Skipped, &e.BadLines, &e.LoadedAt); err != nil {
			return nil, fmt.Errorf("history: scan load entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate load entries: %w", err)
	}
	return entries, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
