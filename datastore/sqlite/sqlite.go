/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sqlite provides SQLite-backed collections and a persistent event log.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/suparena/structregistry/datastore"
	"github.com/suparena/structregistry/event"
	regerrors "github.com/suparena/structregistry/errors"
	_ "modernc.org/sqlite"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Open opens the SQLite database at path. ":memory:" opens a private in-memory
// database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps ":memory:" databases shared across statements.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// DataStore stores records of type T as JSON documents in one table keyed by id.
type DataStore[T any] struct {
	db      *sql.DB
	table   string
	kind    string
	keyFunc datastore.KeyFunc[T]
	events  *EventLog
}

// New creates the collection table if needed and returns a DataStore over it.
func New[T any](ctx context.Context, db *sql.DB, table, kind string, keyFunc datastore.KeyFunc[T]) (*DataStore[T], error) {
	if !tableNamePattern.MatchString(table) {
		return nil, regerrors.NewValidationError("table", fmt.Sprintf("invalid table name %q", table))
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id         TEXT PRIMARY KEY,
		body       TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`, table))
	if err != nil {
		return nil, fmt.Errorf("create table %s: %w", table, err)
	}

	return &DataStore[T]{db: db, table: table, kind: kind, keyFunc: keyFunc}, nil
}

// GetOne loads and decodes the record stored under key.
func (s *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT body FROM %s WHERE id = ?`, s.table), key,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, regerrors.NewNotFoundError(s.kind, key)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s %q: %w", s.kind, key, err)
	}

	result := new(T)
	if err := json.Unmarshal([]byte(body), result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s %q: %w", s.kind, key, err)
	}
	return result, nil
}

// WithEventLog attaches log so PutWithEvent can append notifications to it.
// log must share the DataStore's database.
func (s *DataStore[T]) WithEventLog(log *EventLog) *DataStore[T] {
	s.events = log
	return s
}

// Put upserts entity.
func (s *DataStore[T]) Put(ctx context.Context, entity T) error {
	body, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.kind, err)
	}
	return s.upsert(ctx, s.db, s.keyFunc(entity), body)
}

// PutWithEvent upserts entity and appends evt to the attached event log in one
// transaction: either both rows are committed or neither is. Without an attached
// log it behaves like Put.
func (s *DataStore[T]) PutWithEvent(ctx context.Context, entity T, evt event.StructCreated) error {
	if s.events == nil {
		return s.Put(ctx, entity)
	}
	body, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.kind, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s transaction: %w", s.kind, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.upsert(ctx, tx, s.keyFunc(entity), body); err != nil {
		return err
	}
	if err := s.events.insert(ctx, tx, evt); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", s.kind, err)
	}
	return nil
}

func (s *DataStore[T]) upsert(ctx context.Context, ex execer, key string, body []byte) error {
	_, err := ex.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`, s.table),
		key, string(body), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", s.kind, err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *DataStore[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, s.table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.kind, err)
	}
	return n, nil
}
