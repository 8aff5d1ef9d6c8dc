/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

Both record collections share one table. Keys are produced by expanding the index
map registered for the record type:

	InnerIndexMap = map[string]string{
	    "PK": "INNER#{id}",   // Becomes "INNER#111"
	    "SK": "INNER#{id}",
	}

Put writes the whole record plus the expanded key attributes and an EntityType
attribute naming the record kind. PutItem replaces any existing item, which gives
the registry its last-write-wins semantics. GetOne uses a consistent read and maps
a missing item to errors.NotFoundError.

The store depends on the Client interface rather than *dynamodb.Client so tests can
substitute an in-memory fake.
*/
package ddb
