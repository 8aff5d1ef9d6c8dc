/*
Package errors provides semantic error types for the struct registry.

The registry surfaces exactly two recoverable conditions to its callers: a lookup
against an absent key and a textual record that cannot be decoded. Both are typed
errors that match a sentinel through the standard errors.Is() function.

Common Errors:

	var (
	    ErrNotFound     = errors.New("record not found")
	    ErrDecode       = errors.New("record decode failed")
	    ErrInvalidInput = errors.New("invalid input")
	    ErrNoIndexMap   = errors.New("no index map found for type")
	)

Usage:

	inner, err := reg.GetInner(ctx, "111")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	    }
	    return err
	}

	// Callers outside Go get a stable code instead
	code := errors.Code(err) // "CODE_NOT_FOUND"

Any other error returned by the registry comes from the backing store and should be
treated as fatal for the enclosing call.
*/
package errors
