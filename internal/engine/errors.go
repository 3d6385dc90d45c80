package engine

import (
	"errors"

	"github.com/dshills/codeditor/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates an operation was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrInvalidPattern indicates a search pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo
)
