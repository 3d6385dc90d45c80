package engine

import (
	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/engine/buffer"
	"github.com/dshills/codeditor/internal/engine/history"
)

// Default configuration values.
const (
	DefaultTabWidth       = buffer.DefaultTabWidth
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithSettings applies settings at creation. Options given after it still
// override individual values.
func WithSettings(s config.Settings) Option {
	return func(e *Engine) {
		e.settings = s.Normalize()
	}
}

// WithTabWidth sets the tab width for the engine.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.settings.TabWidth = width
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.settings.MaxUndoEntries = max
		}
	}
}

// WithReadOnly creates a read-only engine.
// Write operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.settings.ReadOnly = true
	}
}

// WithClipboard sets the clipboard used by Cut, Copy and Paste.
func WithClipboard(c Clipboard) Option {
	return func(e *Engine) {
		if c != nil {
			e.clipboard = c
		}
	}
}
