// Package sqlite persists external lookup outcomes and run history in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/famplex/famplex/internal/domain/entities"
	"github.com/famplex/famplex/internal/domain/ports"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Store implements ports.LookupCache and ports.RunHistory using SQLite.
type Store struct {
	db   *sql.DB
	path string
	ttl  time.Duration
}

// NewStore opens the database at path. Entries older than ttl are treated as misses.
func NewStore(path string, ttl time.Duration) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection keeps :memory: databases shared and serializes concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Store{
		db:   db,
		path: path,
		ttl:  ttl,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Outcomes of HGNC and PubChem lookups
	CREATE TABLE IF NOT EXISTS lookups (
		namespace TEXT NOT NULL,
		id TEXT NOT NULL,
		found INTEGER NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		checked_at INTEGER NOT NULL,
		PRIMARY KEY (namespace, id)
	);
	CREATE INDEX IF NOT EXISTS idx_lookups_checked ON lookups(checked_at);

	-- Check run history
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		errors INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		skipped TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := s.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Get returns a non-expired lookup outcome.
func (s *Store) Get(ctx context.Context, ns entities.Namespace, id string) (ports.LookupEntry, bool, error) {
	query := `SELECT found, label, checked_at FROM lookups WHERE namespace = ? AND id = ?`

	var (
		found     bool
		label     string
		checkedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, string(ns), id).Scan(&found, &label, &checkedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.LookupEntry{}, false, nil
	}
	if err != nil {
		return ports.LookupEntry{}, false, fmt.Errorf("finding lookup %s:%s: %w", ns, id, err)
	}

	entry := ports.LookupEntry{
		Namespace: ns,
		ID:        id,
		Found:     found,
		Label:     label,
		CheckedAt: time.Unix(0, checkedAt),
	}
	if s.expired(entry.CheckedAt) {
		return ports.LookupEntry{}, false, nil
	}
	return entry, true, nil
}

// Put stores or replaces a lookup outcome.
func (s *Store) Put(ctx context.Context, entry ports.LookupEntry) error {
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = timeNow()
	}

	query := `
		INSERT INTO lookups (namespace, id, found, label, checked_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(namespace, id) DO UPDATE SET
			found = excluded.found,
			label = excluded.label,
			checked_at = excluded.checked_at
	`
	_, err := s.db.ExecContext(ctx, query,
		string(entry.Namespace), entry.ID, entry.Found, entry.Label, entry.CheckedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving lookup %s:%s: %w", entry.Namespace, entry.ID, err)
	}
	return nil
}

// Purge deletes expired lookups and returns how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	cutoff := timeNow().Add(-s.ttl).UnixNano()
	result, err := s.db.ExecContext(ctx, `DELETE FROM lookups WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging lookups: %w", err)
	}
	return result.RowsAffected()
}

// CountLookups returns the number of stored lookups.
func (s *Store) CountLookups(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lookups`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting lookups: %w", err)
	}
	return count, nil
}

func (s *Store) expired(checkedAt time.Time) bool {
	return s.ttl > 0 && timeNow().Sub(checkedAt) > s.ttl
}

// RecordRun stores the outcome of a check run.
func (s *Store) RecordRun(ctx context.Context, run entities.RunSummary) error {
	var skipped sql.NullString
	if len(run.Skipped) > 0 {
		data, err := json.Marshal(run.Skipped)
		if err != nil {
			return fmt.Errorf("marshaling skipped checks: %w", err)
		}
		skipped = sql.NullString{String: string(data), Valid: true}
	}

	query := `INSERT INTO runs (id, started_at, failed, errors, warnings, skipped) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		run.ID, run.StartedAt.UnixNano(), run.Failed, run.Errors, run.Warnings, skipped)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]entities.RunSummary, error) {
	query := `
		SELECT id, started_at, failed, errors, warnings, skipped
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := make([]entities.RunSummary, 0, limit)
	for rows.Next() {
		var (
			run       entities.RunSummary
			startedAt int64
			skipped   sql.NullString
		)
		if err := rows.Scan(&run.ID, &startedAt, &run.Failed, &run.Errors, &run.Warnings, &skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.StartedAt = time.Unix(0, startedAt)

		if skipped.Valid && skipped.String != "" {
			if err := json.Unmarshal([]byte(skipped.String), &run.Skipped); err != nil {
				return nil, fmt.Errorf("unmarshaling skipped checks: %w", err)
			}
		}

		runs = append(runs, run)
	}
	return runs, rows.Err()
}
