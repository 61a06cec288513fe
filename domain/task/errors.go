package task

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a task id is unknown to the store.
var ErrNotFound = errors.New("task not found")

// ValidationError reports a required field missing or malformed at
// submission time. It is detected before any repository call and blocks
// the operation locally.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// RemoteError reports a failed store operation. The message and detail
// from the store are surfaced verbatim; the operation is never retried.
type RemoteError struct {
	Op     string
	Detail string
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
