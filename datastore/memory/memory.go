/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides an in-process implementation of datastore.DataStore.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/structregistry/datastore"
	"github.com/suparena/structregistry/errors"
)

// DataStore keeps records in a map keyed by the record id.
// Records are cloned on the way in and on the way out.
type DataStore[T any] struct {
	mu       sync.RWMutex
	kind     string
	data     map[string]T
	keyFunc  datastore.KeyFunc[T]
	clone    datastore.CloneFunc[T]
	putError error
}

// New creates an empty DataStore. kind names the record type in errors.
func New[T any](kind string, keyFunc datastore.KeyFunc[T]) *DataStore[T] {
	return &DataStore[T]{
		kind:    kind,
		data:    make(map[string]T),
		keyFunc: keyFunc,
		clone:   func(v T) T { return v },
	}
}

// WithCloneFunc sets the function used to copy records that hold reference types
func (m *DataStore[T]) WithCloneFunc(f datastore.CloneFunc[T]) *DataStore[T] {
	m.clone = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putError = err
	return m
}

// GetOne retrieves a copy of the record stored under key
func (m *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entity, exists := m.data[key]
	if !exists {
		return nil, errors.NewNotFoundError(m.kindName(), key)
	}
	out := m.clone(entity)
	return &out, nil
}

// Put stores a copy of entity, replacing any record with the same key
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putError != nil {
		return m.putError
	}

	m.data[m.keyFunc(entity)] = m.clone(entity)
	return nil
}

// Helper methods for inspection

// Count returns the number of stored records
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Keys returns the stored keys in ascending order
func (m *DataStore[T]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clear removes all records
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

func (m *DataStore[T]) kindName() string {
	if m.kind != "" {
		return m.kind
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}
