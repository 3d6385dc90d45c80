package editor

import (
	"errors"
	"fmt"
)

// Sentinel errors for session operations.
var (
	// ErrNotInitialized is returned by every operation on a session that is
	// not open.
	ErrNotInitialized = errors.New("editor session not initialized")

	// ErrAlreadyOpen is returned by Open on an open session.
	ErrAlreadyOpen = errors.New("editor session already open")

	// ErrEmptyQuery is returned by Find and ReplaceAll for an empty query or
	// replacement.
	ErrEmptyQuery = errors.New("empty search text")
)

// NotInitializedError names the operation attempted on a session that was
// never opened or has been closed.
type NotInitializedError struct {
	Op string
}

// Error implements the error interface.
func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrNotInitialized)
}

// Unwrap returns ErrNotInitialized.
func (e *NotInitializedError) Unwrap() error {
	return ErrNotInitialized
}
