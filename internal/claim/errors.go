// server/internal/claim/errors.go
package claim

import (
	"errors"
	"fmt"
)

// ErrNotFound means the listing id does not refer to an existing listing.
var ErrNotFound = errors.New("listing not found")

// ErrNotAvailable means the listing was already fully claimed, cancelled or
// expired by the time the claim arrived. Terminal for this request; the
// caller should re-fetch the listing before retrying.
var ErrNotAvailable = errors.New("listing is no longer available")

// ValidationError rejects a malformed or out-of-range claim quantity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// StoreError wraps a persistence failure. The workflow never retries; the
// caller decides on retry/backoff.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
