package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// closers maps opening brackets to the closer inserted with them.
var closers = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// Insert replaces the selection with text as if typed, then collapses the
// cursor after it.
//
// With insert_brackets on, a lone opening bracket also inserts its closer
// and leaves the cursor between the two. With indent_line on, a lone
// newline carries the current line's leading whitespace onto the new line,
// one level deeper after an opening brace.
func (e *Engine) Insert(text string) error {
	r := e.selection.Range()
	insert, cursorAt := text, utf8.RuneCountInString(text)

	switch {
	case e.settings.InsertBrackets && closers[text] != "":
		insert = text + closers[text]
	case e.settings.IndentLine && text == "\n":
		indent := e.indentAt(r.Start)
		insert = "\n" + indent
		cursorAt = utf8.RuneCountInString(insert)
	}

	c, err := e.Replace(r.Start, r.End, insert)
	if err != nil {
		return err
	}
	e.MoveCursor(c.Range.Start + cursorAt)
	return nil
}

// indentAt returns the indentation a new line broken at offset should get.
func (e *Engine) indentAt(offset int) string {
	line := e.buf.LineForOffset(offset)
	start, err := e.buf.LineStartOffset(line)
	if err != nil {
		return ""
	}
	before := e.buf.TextRange(start, offset)
	indent := before[:len(before)-len(strings.TrimLeft(before, " \t"))]

	if strings.HasSuffix(strings.TrimRight(before, " \t"), "{") {
		if strings.HasPrefix(indent, "\t") {
			indent += "\t"
		} else {
			indent += strings.Repeat(" ", e.buf.TabWidth())
		}
	}
	return indent
}

// Clipboard Operations

// Copy puts the selected text on the clipboard. An empty selection is a
// no-op.
func (e *Engine) Copy() error {
	if e.selection.IsEmpty() {
		return nil
	}
	if err := e.clipboard.WriteAll(e.SelectedText()); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Cut copies the selection to the clipboard and deletes it. An empty
// selection is a no-op.
func (e *Engine) Cut() error {
	if e.selection.IsEmpty() {
		return nil
	}
	if e.settings.ReadOnly {
		return ErrReadOnly
	}
	if err := e.Copy(); err != nil {
		return err
	}
	r := e.selection.Range()
	if _, err := e.Replace(r.Start, r.End, ""); err != nil {
		return err
	}
	e.MoveCursor(r.Start)
	return nil
}

// Paste replaces the selection with the clipboard text.
func (e *Engine) Paste() error {
	if e.settings.ReadOnly {
		return ErrReadOnly
	}
	text, err := e.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("reading clipboard: %w", err)
	}
	if text == "" {
		return nil
	}
	r := e.selection.Range()
	c, err := e.Replace(r.Start, r.End, text)
	if err != nil {
		return err
	}
	e.MoveCursor(c.NewRange.End)
	return nil
}
