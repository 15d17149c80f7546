// Package objerr exposes the typed errors returned by the 'objstore' result/value layer.
package objerr

import (
	"errors"
	"fmt"
)

// UsageError indicates the caller combined options which are mutually exclusive, for example fetching an encrypted
// object using a byte-range request. The request must be changed before being retried.
type UsageError struct {
	Reason string
}

// Error implements the 'error' interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid client usage: %s", e.Reason)
}

// IsUsageError returns a boolean indicating whether the given error is a 'UsageError'.
func IsUsageError(err error) bool {
	var usageError *UsageError
	return errors.As(err, &usageError)
}
