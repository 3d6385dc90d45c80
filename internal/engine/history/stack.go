package history

import (
	"errors"
	"time"

	"github.com/dshills/codeditor/internal/engine/buffer"
)

// DefaultMaxEntries bounds the undo stack when no limit is given.
const DefaultMaxEntries = 1000

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Entry is one undo unit: the changes it made in the order they were applied.
type Entry struct {
	Name      string
	Changes   []buffer.Change
	Timestamp time.Time
}

// History manages undo/redo state for a buffer.
type History struct {
	undoStack []*Entry
	redoStack []*Entry

	// Grouping state
	depth int
	group *Entry

	buf        *buffer.Buffer
	replaying  bool
	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Attach subscribes the history to buf's changes. CancelGroup reverts
// cancelled changes on buf.
func (h *History) Attach(buf *buffer.Buffer) {
	h.buf = buf
	buf.OnChange(h.Record)
}

// Record adds a change to the open group, or as its own undo unit.
// Changes made while undoing or redoing are ignored.
func (h *History) Record(change buffer.Change) {
	if h.replaying {
		return
	}
	if h.depth > 0 {
		h.group.Changes = append(h.group.Changes, change)
		return
	}
	h.push(&Entry{
		Name:      change.Type.String(),
		Changes:   []buffer.Change{change},
		Timestamp: time.Now(),
	})
}

func (h *History) push(e *Entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent undo unit and returns it.
func (h *History) Undo(buf *buffer.Buffer) (*Entry, error) {
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	h.replaying = true
	for i := len(e.Changes) - 1; i >= 0; i-- {
		inv := e.Changes[i].Invert()
		buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText)
	}
	h.replaying = false

	h.redoStack = append(h.redoStack, e)
	return e, nil
}

// Redo reapplies the most recently undone unit and returns it.
func (h *History) Redo(buf *buffer.Buffer) (*Entry, error) {
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	h.replaying = true
	for _, c := range e.Changes {
		buf.Replace(c.Range.Start, c.Range.End, c.NewText)
	}
	h.replaying = false

	h.undoStack = append(h.undoStack, e)
	return e, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns the next undo unit without removing it.
func (h *History) PeekUndo() (*Entry, bool) {
	if len(h.undoStack) == 0 {
		return nil, false
	}
	return h.undoStack[len(h.undoStack)-1], true
}

// BeginGroup starts a group. Changes recorded until the matching EndGroup
// form a single undo unit.
func (h *History) BeginGroup(name string) {
	h.depth++
	if h.depth == 1 {
		h.group = &Entry{Name: name}
	}
}

// EndGroup closes the current group. Empty groups are dropped.
func (h *History) EndGroup() {
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 {
		return
	}

	g := h.group
	h.group = nil
	if len(g.Changes) == 0 {
		return
	}
	g.Timestamp = time.Now()
	h.push(g)
}

// CancelGroup drops the open group without recording it and reverts its
// changes on the attached buffer, so the offsets held by older entries stay
// valid.
func (h *History) CancelGroup() {
	g := h.group
	h.depth = 0
	h.group = nil
	if g == nil || h.buf == nil {
		return
	}

	h.replaying = true
	for i := len(g.Changes) - 1; i >= 0; i-- {
		inv := g.Changes[i].Invert()
		h.buf.Replace(inv.Range.Start, inv.Range.End, inv.NewText)
	}
	h.replaying = false
}

// IsGrouping returns true if currently in a group.
func (h *History) IsGrouping() bool {
	return h.depth > 0
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.depth = 0
	h.group = nil
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// SetMaxEntries changes the undo limit, dropping the oldest entries if the
// stack is already longer. Values <= 0 restore DefaultMaxEntries.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		n = DefaultMaxEntries
	}
	h.maxEntries = n
	if excess := len(h.undoStack) - n; excess > 0 {
		h.undoStack = h.undoStack[excess:]
	}
}
