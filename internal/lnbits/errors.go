package lnbits

import "fmt"

// ValidationError marks a raw payment record that cannot be normalized.
// Callers skip the record and continue with the rest of the batch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payment record: field %q %s", e.Field, e.Reason)
}

// StatusError reports a non-2xx response from the LNbits API.
type StatusError struct {
	Operation string
	Code      int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lnbits %s: unexpected status %d", e.Operation, e.Code)
}
