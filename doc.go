/*
Package structregistry provides a registry of structured records: callers submit
typed Inner and Outer records, the registry stores them keyed by id, notifies
observers of creation, and returns owned copies on lookup.

Key Features:
  - Two independent collections, one per record kind, keyed only by id
  - Last-write-wins creates; records are never deleted or updated in place
  - Optional StructCreated notification after each successful create
  - Legacy JSON text entry points that decode before touching any state
  - Pluggable backends (memory, SQLite, DynamoDB) behind datastore.DataStore
  - Semantic error types with stable codes

Basic Usage:

	reg := structregistry.NewInMemory(
	    structregistry.WithEmitter(event.NewLogEmitter(logger)),
	)

	eventID := "evt-1"
	err := reg.CreateInner(ctx, model.Inner{ID: "111", Value: "v", MyValue: "mv"}, &eventID)

	inner, err := reg.GetInner(ctx, "111")
	_, err = reg.GetInner(ctx, "999") // errors.IsNotFound(err) == true

	// Legacy text input
	err = reg.CreateOuterText(ctx, `{"id":"222", ...}`, nil)

	// Shape classification is independent of any registry
	desc := structregistry.DetermineShape(shape.Circle{Radius: 1})

A configured registry can be opened from config.Load with Open; close it with
Registry.Close when done.
*/
package structregistry
