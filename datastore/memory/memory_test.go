/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/suparena/structregistry/datastore"
	"github.com/suparena/structregistry/datastore/memory"
	regerrors "github.com/suparena/structregistry/errors"
	"github.com/suparena/structregistry/model"
)

// compile-time interface checks
var (
	_ datastore.DataStore[model.Inner] = (*memory.DataStore[model.Inner])(nil)
	_ datastore.DataStore[model.Outer] = (*memory.DataStore[model.Outer])(nil)
)

func newOuterStore() *memory.DataStore[model.Outer] {
	return memory.New(model.KindOuter, model.Outer.Key).WithCloneFunc(model.Outer.Clone)
}

func TestMemoryDataStore(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		store := memory.New(model.KindInner, model.Inner.Key)

		// Test Put
		inner := model.Inner{ID: "111", Value: "v", MyValue: "mv"}
		if err := store.Put(ctx, inner); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		// Test GetOne
		got, err := store.GetOne(ctx, "111")
		if err != nil {
			t.Fatalf("GetOne failed: %v", err)
		}
		if *got != inner {
			t.Fatalf("Retrieved record mismatch: %+v", got)
		}

		// Missing key
		_, err = store.GetOne(ctx, "999")
		if !regerrors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		if err.Error() != `Inner with key "999" not found` {
			t.Fatalf("Unexpected error message: %v", err)
		}
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		store := memory.New(model.KindInner, model.Inner.Key)

		_ = store.Put(ctx, model.Inner{ID: "1", Value: "first"})
		if err := store.Put(ctx, model.Inner{ID: "1", Value: "second"}); err != nil {
			t.Fatalf("overwrite should not fail: %v", err)
		}

		got, _ := store.GetOne(ctx, "1")
		if got.Value != "second" {
			t.Fatalf("Expected second value, got %q", got.Value)
		}
		if store.Count() != 1 {
			t.Fatalf("Expected count 1, got %d", store.Count())
		}
	})

	t.Run("CopiesAreIndependent", func(t *testing.T) {
		store := newOuterStore()

		outer := model.Outer{ID: "222", Extensions: map[string]string{"k": "v"}}
		_ = store.Put(ctx, outer)

		// mutate the caller's value after Put
		outer.Extensions["k"] = "changed"

		got, _ := store.GetOne(ctx, "222")
		if got.Extensions["k"] != "v" {
			t.Fatalf("stored value aliased caller map: %v", got.Extensions)
		}

		// mutate the returned value
		got.Extensions["new"] = "x"
		again, _ := store.GetOne(ctx, "222")
		if _, ok := again.Extensions["new"]; ok {
			t.Fatalf("stored value aliased returned map: %v", again.Extensions)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		store := memory.New(model.KindInner, model.Inner.Key)

		putErr := errors.New("ledger unavailable")
		store.WithPutError(putErr)

		err := store.Put(ctx, model.Inner{ID: "1"})
		if err != putErr {
			t.Fatalf("Expected put error, got: %v", err)
		}
		if store.Count() != 0 {
			t.Fatalf("failed Put must not mutate, count %d", store.Count())
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		store := memory.New(model.KindInner, model.Inner.Key)
		for _, id := range []string{"b", "a", "c"} {
			_ = store.Put(ctx, model.Inner{ID: id})
		}

		keys := store.Keys()
		if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
			t.Fatalf("unexpected keys: %v", keys)
		}

		store.Clear()
		if store.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", store.Count())
		}
	})
}
