/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/structregistry/event"
)

// DataStore is one keyed collection of records of type T.
type DataStore[T any] interface {
	// GetOne returns a copy of the record stored under key, or an error matching
	// errors.ErrNotFound when there is none.
	GetOne(ctx context.Context, key string) (*T, error)

	// Put inserts entity, replacing any record with the same key.
	Put(ctx context.Context, entity T) error
}

// EventWriter is implemented by stores that can persist a record together with
// its StructCreated notification in one transaction.
type EventWriter[T any] interface {
	PutWithEvent(ctx context.Context, entity T, evt event.StructCreated) error
}

// KeyFunc extracts the collection key from a record.
type KeyFunc[T any] func(entity T) string

// CloneFunc returns a copy of a record that shares no mutable state with it.
type CloneFunc[T any] func(entity T) T
