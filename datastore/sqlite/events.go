/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/suparena/structregistry/event"
	"go.uber.org/zap"
)

// EventLog appends StructCreated notifications to the events table.
type EventLog struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEventLog creates the events table if needed.
func NewEventLog(ctx context.Context, db *sql.DB, logger *zap.Logger) (*EventLog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS events (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id   TEXT NOT NULL,
		struct_id  TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create table events: %w", err)
	}
	return &EventLog{db: db, logger: logger}, nil
}

// Emit persists evt. A failed insert is logged and dropped.
func (l *EventLog) Emit(ctx context.Context, evt event.StructCreated) {
	if err := l.insert(ctx, l.db, evt); err != nil {
		l.logger.Warn("failed to persist event",
			zap.String("event_id", evt.EventID),
			zap.String("struct_id", evt.StructID),
			zap.Error(err),
		)
	}
}

func (l *EventLog) insert(ctx context.Context, ex execer, evt event.StructCreated) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO events (event_id, struct_id, created_at) VALUES (?, ?, ?)`,
		evt.EventID, evt.StructID, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// Events returns all persisted events in emission order.
func (l *EventLog) Events(ctx context.Context) ([]event.StructCreated, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT event_id, struct_id FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	var out []event.StructCreated
	for rows.Next() {
		var evt event.StructCreated
		if err := rows.Scan(&evt.EventID, &evt.StructID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}
