package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/codeditor/internal/engine/lineindex"
)

// ErrEditsOverlap is returned by ApplyEdits for edits that overlap or are not
// ordered from the highest offset down.
var ErrEditsOverlap = errors.New("edits overlap or are not in reverse order")

// Buffer is a mutable text with an incrementally maintained line index.
type Buffer struct {
	text       *gapBuffer
	lines      *lineindex.Index
	revisionID RevisionID
	tabWidth   int

	observers []func(Change)
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		text:       newGapBuffer(nil),
		lines:      lineindex.New(),
		revisionID: NewRevisionID(),
		tabWidth:   DefaultTabWidth,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// The line index is built with a single scan of s.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = newGapBuffer([]rune(s))
	b.lines = lineindex.FromString(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading buffer content: %w", err)
	}
	return NewBufferFromString(string(data), opts...), nil
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return b.text.String()
}

// TextRange returns the text in [start, end) after normalization.
func (b *Buffer) TextRange(start, end int) string {
	r := lineindex.Normalize(start, end, b.text.Len())
	return string(b.text.Slice(r.Start, r.End))
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.text.Len()
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.text.Len() == 0
}

// RuneAt returns the character at offset, or false if offset is out of range.
func (b *Buffer) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= b.text.Len() {
		return 0, false
	}
	return b.text.At(offset), true
}

// Line Operations

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return b.lines.LineCount()
}

// LineForOffset returns the line containing offset.
func (b *Buffer) LineForOffset(offset int) int {
	return b.lines.LineForOffset(offset)
}

// LineStartOffset returns the offset of the first character of line.
func (b *Buffer) LineStartOffset(line int) (int, error) {
	return b.lines.StartOffsetOfLine(line)
}

// LineEndOffset returns the offset of the newline ending line, or the buffer
// length for the last line.
func (b *Buffer) LineEndOffset(line int) (int, error) {
	return b.lines.EndOffsetOfLine(line)
}

// LineRange returns [start, end) of line, excluding its newline.
func (b *Buffer) LineRange(line int) (Range, error) {
	start, err := b.lines.StartOffsetOfLine(line)
	if err != nil {
		return Range{}, err
	}
	end, err := b.lines.EndOffsetOfLine(line)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// LineText returns the text of line without its newline.
func (b *Buffer) LineText(line int) (string, error) {
	r, err := b.LineRange(line)
	if err != nil {
		return "", err
	}
	return string(b.text.Slice(r.Start, r.End)), nil
}

// LineStarts returns a copy of the line-start table.
func (b *Buffer) LineStarts() []int {
	return b.lines.LineStarts()
}

// Write Operations

// Replace replaces [start, end) with text and returns the applied change.
// Every other mutation of the buffer goes through Replace.
//
// The range is normalized, never rejected. The line index is updated against
// the content as it was before the edit, then the storage is spliced.
func (b *Buffer) Replace(start, end int, text string) Change {
	r := b.lines.Replace(start, end, text, b.text)

	oldText := string(b.text.Slice(r.Start, r.End))
	newRunes := []rune(text)
	b.text.Replace(r.Start, r.End, newRunes)

	change := Change{
		Type:     changeTypeOf(r, text),
		Range:    r,
		NewRange: Range{Start: r.Start, End: r.Start + len(newRunes)},
		OldText:  oldText,
		NewText:  text,
	}
	if r.IsEmpty() && text == "" {
		change.Revision = b.revisionID
		return change
	}

	b.revisionID = NewRevisionID()
	change.Revision = b.revisionID
	for _, fn := range b.observers {
		fn(change)
	}
	return change
}

// Insert inserts text at offset.
func (b *Buffer) Insert(offset int, text string) Change {
	return b.Replace(offset, offset, text)
}

// Delete removes [start, end).
func (b *Buffer) Delete(start, end int) Change {
	return b.Replace(start, end, "")
}

// SetText replaces the whole content.
func (b *Buffer) SetText(text string) Change {
	return b.Replace(0, b.text.Len(), text)
}

// ApplyEdit applies a single edit.
func (b *Buffer) ApplyEdit(edit Edit) Change {
	return b.Replace(edit.Range.Start, edit.Range.End, edit.NewText)
}

// ApplyEdits applies multiple edits.
// Edits must be in reverse order (highest offset first) so earlier edits do
// not move the ranges of later ones.
func (b *Buffer) ApplyEdits(edits []Edit) ([]Change, error) {
	for i := 1; i < len(edits); i++ {
		if edits[i].Range.End > edits[i-1].Range.Start {
			return nil, ErrEditsOverlap
		}
	}

	changes := make([]Change, 0, len(edits))
	for _, edit := range edits {
		changes = append(changes, b.ApplyEdit(edit))
	}
	return changes, nil
}

// Metadata

// RevisionID returns the current revision.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	if width > 0 {
		b.tabWidth = width
	}
}

// OnChange registers fn to be called after every applied change.
// No-op replacements are not reported.
func (b *Buffer) OnChange(fn func(Change)) {
	b.observers = append(b.observers, fn)
}

// Snapshot returns an immutable copy of the current state.
// It may be read from any goroutine.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		text:       b.text.Slice(0, b.text.Len()),
		lines:      b.lines.Clone(),
		revisionID: b.revisionID,
		tabWidth:   b.tabWidth,
	}
}

// CheckIndex rebuilds the line index from the stored text and reports any
// difference from the incrementally maintained one.
func (b *Buffer) CheckIndex() error {
	if err := b.lines.Validate(); err != nil {
		return err
	}
	rebuilt := lineindex.Build(b.text)
	if !rebuilt.Equal(b.lines) {
		return fmt.Errorf("line index drifted: have %s, want %s",
			formatStarts(b.lines.LineStarts()), formatStarts(rebuilt.LineStarts()))
	}
	return nil
}

func formatStarts(starts []int) string {
	const limit = 16
	parts := make([]string, 0, min(len(starts), limit)+1)
	for i, s := range starts {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... (%d lines)", len(starts)))
			break
		}
		parts = append(parts, fmt.Sprint(s))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
