package engine

import (
	"io"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/engine/buffer"
	"github.com/dshills/codeditor/internal/engine/cursor"
	"github.com/dshills/codeditor/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Range is a half-open character range.
	Range = buffer.Range

	// Change records one applied replacement.
	Change = buffer.Change

	// Selection is the anchor/head selection.
	Selection = cursor.Selection

	// RevisionID identifies a buffer revision.
	RevisionID = buffer.RevisionID

	// Snapshot is an immutable copy of the buffer.
	Snapshot = buffer.Snapshot
)

// Engine combines a buffer, a selection, undo history and a clipboard
// behind the editing operations of a code editor.
//
// An Engine is owned by one goroutine. Hand a Snapshot to other goroutines
// that need to read the text.
type Engine struct {
	buf       *buffer.Buffer
	history   *history.History
	selection Selection
	clipboard Clipboard
	settings  config.Settings

	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := newEngine(opts)
	e.init(buffer.NewBufferFromString(e.initContent, buffer.WithTabWidth(e.settings.TabWidth)))
	return e
}

// NewFromReader creates an Engine from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	buf, err := buffer.NewBufferFromReader(r, buffer.WithTabWidth(e.settings.TabWidth))
	if err != nil {
		return nil, err
	}
	e.init(buf)
	return e, nil
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		settings:  config.Default(),
		clipboard: &MemoryClipboard{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) init(buf *buffer.Buffer) {
	e.buf = buf
	e.history = history.NewHistory(e.settings.MaxUndoEntries)
	e.history.Attach(buf)
	buf.OnChange(func(c Change) {
		e.selection = cursor.TransformSelection(e.selection, c)
	})
	e.selection = cursor.NewCursorSelection(0)
}

// Read Operations

// Text returns the full buffer content.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// TextRange returns the text in [start, end) after normalization.
func (e *Engine) TextRange(start, end int) string {
	return e.buf.TextRange(start, end)
}

// Len returns the number of characters in the buffer.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// IsEmpty returns true if the buffer is empty.
func (e *Engine) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineForOffset returns the line containing offset.
func (e *Engine) LineForOffset(offset int) int {
	return e.buf.LineForOffset(offset)
}

// LineStartOffset returns the offset of the first character of line.
func (e *Engine) LineStartOffset(line int) (int, error) {
	return e.buf.LineStartOffset(line)
}

// LineEndOffset returns the offset just past the last character of line,
// excluding its newline.
func (e *Engine) LineEndOffset(line int) (int, error) {
	return e.buf.LineEndOffset(line)
}

// LineText returns the text of line without its newline.
func (e *Engine) LineText(line int) (string, error) {
	return e.buf.LineText(line)
}

// LineStarts returns a copy of the line-start table.
func (e *Engine) LineStarts() []int {
	return e.buf.LineStarts()
}

// RevisionID returns the current buffer revision.
func (e *Engine) RevisionID() RevisionID {
	return e.buf.RevisionID()
}

// Snapshot returns an immutable copy of the buffer.
func (e *Engine) Snapshot() *Snapshot {
	return e.buf.Snapshot()
}

// CheckIndex compares the incrementally maintained line index against a
// full rebuild.
func (e *Engine) CheckIndex() error {
	return e.buf.CheckIndex()
}

// OnChange registers fn to be called after every applied change.
func (e *Engine) OnChange(fn func(Change)) {
	e.buf.OnChange(fn)
}

// Selection

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.selection
}

// SetSelection sets the selection, clamped to the buffer.
func (e *Engine) SetSelection(anchor, head int) {
	e.selection = cursor.NewSelection(anchor, head).Clamp(e.buf.Len())
}

// MoveCursor collapses the selection to offset, clamped to the buffer.
func (e *Engine) MoveCursor(offset int) {
	e.SetSelection(offset, offset)
}

// SelectedText returns the selected text.
func (e *Engine) SelectedText() string {
	r := e.selection.Range()
	return e.buf.TextRange(r.Start, r.End)
}

// Write Operations

// Replace replaces [start, end) with text. The range is normalized, never
// rejected. The selection follows the edit.
func (e *Engine) Replace(start, end int, text string) (Change, error) {
	if e.settings.ReadOnly {
		return Change{}, ErrReadOnly
	}
	return e.buf.Replace(start, end, text), nil
}

// Delete removes [start, end).
func (e *Engine) Delete(start, end int) error {
	_, err := e.Replace(start, end, "")
	return err
}

// SetText replaces the whole content and moves the cursor to the start.
func (e *Engine) SetText(text string) error {
	if _, err := e.Replace(0, e.buf.Len(), text); err != nil {
		return err
	}
	e.MoveCursor(0)
	return nil
}

// Undo reverts the most recent undo unit and places the cursor at the end
// of the restored text.
func (e *Engine) Undo() error {
	if e.settings.ReadOnly {
		return ErrReadOnly
	}
	entry, err := e.history.Undo(e.buf)
	if err != nil {
		return err
	}
	first := entry.Changes[0]
	e.MoveCursor(first.Range.Start + len([]rune(first.OldText)))
	return nil
}

// Redo reapplies the most recently undone unit.
func (e *Engine) Redo() error {
	if e.settings.ReadOnly {
		return ErrReadOnly
	}
	entry, err := e.history.Redo(e.buf)
	if err != nil {
		return err
	}
	e.MoveCursor(entry.Changes[len(entry.Changes)-1].NewRange.End)
	return nil
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// ClearHistory discards all undo and redo state.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// Transaction runs fn as a single undo unit. If fn fails, the changes it
// made are reverted and nothing is recorded.
func (e *Engine) Transaction(name string, fn func() error) error {
	return e.history.Transaction(name, fn)
}

// Settings

// Settings returns the applied settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// Apply replaces the settings record.
func (e *Engine) Apply(s config.Settings) {
	e.settings = s.Normalize()
	e.buf.SetTabWidth(e.settings.TabWidth)
	e.history.SetMaxEntries(e.settings.MaxUndoEntries)
}

// SetReadOnly toggles the read-only guard.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.settings.ReadOnly = readOnly
}

// IsReadOnly reports whether mutations are rejected.
func (e *Engine) IsReadOnly() bool {
	return e.settings.ReadOnly
}

// SetSyntaxHighlight toggles syntax highlighting.
func (e *Engine) SetSyntaxHighlight(enabled bool) {
	e.settings.SyntaxHighlight = enabled
}
