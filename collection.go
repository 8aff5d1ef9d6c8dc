/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package structregistry

import (
	"context"

	"github.com/suparena/structregistry/datastore"
	"github.com/suparena/structregistry/event"
)

// Collection binds a record kind to the DataStore holding it.
// Values are cloned before they are handed to the store and after they come back,
// so no caller ever shares state with a stored record.
type Collection[T any] struct {
	kind  string
	store datastore.DataStore[T]
	key   datastore.KeyFunc[T]
	clone datastore.CloneFunc[T]
}

// NewCollection creates a Collection for kind over store.
func NewCollection[T any](kind string, store datastore.DataStore[T], key datastore.KeyFunc[T], clone datastore.CloneFunc[T]) *Collection[T] {
	return &Collection[T]{
		kind:  kind,
		store: store,
		key:   key,
		clone: clone,
	}
}

// Kind returns the record kind name
func (c *Collection[T]) Kind() string {
	return c.kind
}

// Put stores rec, replacing any record with the same key, and returns the key
func (c *Collection[T]) Put(ctx context.Context, rec T) (string, error) {
	if err := c.store.Put(ctx, c.clone(rec)); err != nil {
		return "", err
	}
	return c.key(rec), nil
}

// PutWithEvent stores rec like Put and returns the StructCreated notification for
// it. Stores implementing datastore.EventWriter commit the record and the
// notification in one transaction.
func (c *Collection[T]) PutWithEvent(ctx context.Context, rec T, eventID string) (event.StructCreated, error) {
	evt := event.StructCreated{EventID: eventID, StructID: c.key(rec)}
	if w, ok := c.store.(datastore.EventWriter[T]); ok {
		return evt, w.PutWithEvent(ctx, c.clone(rec), evt)
	}
	return evt, c.store.Put(ctx, c.clone(rec))
}

// Get returns an owned copy of the record stored under key
func (c *Collection[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	rec, err := c.store.GetOne(ctx, key)
	if err != nil {
		return zero, err
	}
	return c.clone(*rec), nil
}
