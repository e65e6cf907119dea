package api

import (
	"errors"
	"fmt"

	"github.com/platebook/platebook/pkg/api"
)

// TransportError covers network failures, timeouts and 5xx replies. These
// are retryable: the record stays pending and the push is re-attempted with
// backoff.
type TransportError struct {
	Err        error
	StatusCode int // 0 when the request never reached the server
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError covers 4xx replies other than 409. These are not
// retryable; the record needs a manual edit before another attempt.
type ValidationError struct {
	Message    string
	StatusCode int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (status %d): %s", e.StatusCode, e.Message)
}

// ConflictError is a 409: the optimistic-lock precondition failed. Current
// carries the record as the server has it now, when the server attached it.
type ConflictError struct {
	Current *api.Record
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: %s", e.Message)
}

// IsRetryable reports whether the error is transient and worth retrying
// with backoff.
func IsRetryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
