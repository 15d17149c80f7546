package objerr

import (
	"errors"
	"fmt"
)

// InconsistencyError indicates the service returned a response whose metadata is internally contradictory, for
// example only a subset of the encryption metadata headers required for decryption. Re-parsing the same response
// will not help; the request id should be quoted when raising a support ticket.
type InconsistencyError struct {
	Reason    string
	RequestID string
}

// Error implements the 'error' interface.
func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent response metadata: %s (request id %q)", e.Reason, e.RequestID)
}

// IsInconsistencyError returns a boolean indicating whether the given error is an 'InconsistencyError'.
func IsInconsistencyError(err error) bool {
	var inconsistencyError *InconsistencyError
	return errors.As(err, &inconsistencyError)
}
