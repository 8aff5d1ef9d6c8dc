/*
Package registry associates record types with the DynamoDB key patterns used to
store them.

Index Map Registry:
Associates Go types with DynamoDB key patterns:

	registry.RegisterIndexMap[model.Inner](map[string]string{
	    "PK": "INNER#{id}",
	    "SK": "INNER#{id}",
	})

Macros name attributes of the marshaled record (its dynamodbav tags). The registry
is thread-safe and is populated during initialization; the ddb package registers
the Inner and Outer maps in its init function.
*/
package registry
