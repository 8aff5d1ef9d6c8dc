/*
Package datastore defines the collection contract backing the struct registry.

The main interface is DataStore[T], one keyed collection of records of type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key string) (*T, error)
	    Put(ctx context.Context, entity T) error
	}

Put has last-write-wins semantics: a record whose key is already present replaces
the stored one without error. GetOne returns an owned copy; callers may mutate it
freely.

Implementations:
  - memory: in-process maps, the default host state
  - sqlite: one table per collection in a SQLite database
  - ddb: DynamoDB single-table implementation keyed through index maps
*/
package datastore
