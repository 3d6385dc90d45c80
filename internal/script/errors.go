package script

import (
	"errors"
	"fmt"
)

// ErrRuntimeClosed is returned when running a script on a closed runtime.
var ErrRuntimeClosed = errors.New("script runtime is closed")

// Error is a failed script run.
type Error struct {
	// Name identifies the script, usually its file name.
	Name string
	// Err is the Lua error.
	Err error
	// Cause is the last Go error raised into the script, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Name, e.Err)
}

// Unwrap returns the Lua error and the Go cause.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
