package lineindex

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is the sentinel matched by errors.Is for any OutOfRangeError.
var ErrOutOfRange = errors.New("line out of range")

// OutOfRangeError reports a query for a line that does not exist.
type OutOfRangeError struct {
	Line      int
	LineCount int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("line %d out of range [0, %d)", e.Line, e.LineCount)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
