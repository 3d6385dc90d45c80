package engine

// Line Operations

// CurrentLine returns the line holding the cursor head.
func (e *Engine) CurrentLine() int {
	return e.buf.LineForOffset(e.selection.Head)
}

// SelectAll selects the whole buffer.
func (e *Engine) SelectAll() {
	e.selection = Selection{Anchor: 0, Head: e.buf.Len()}
}

// SelectLine selects the current line without its newline.
func (e *Engine) SelectLine() {
	r, err := e.buf.LineRange(e.CurrentLine())
	if err != nil {
		return
	}
	e.selection = Selection{Anchor: r.Start, Head: r.End}
}

// DeleteLine removes the current line with its newline and puts the cursor
// at the start of the line that takes its place. On the last line the
// preceding newline goes instead.
func (e *Engine) DeleteLine() error {
	line := e.CurrentLine()
	r, err := e.buf.LineRange(line)
	if err != nil {
		return err
	}

	start, end := r.Start, r.End
	switch {
	case line < e.buf.LineCount()-1:
		end++
	case line > 0:
		start--
	}

	if _, err := e.Replace(start, end, ""); err != nil {
		return err
	}

	next := min(line, e.buf.LineCount()-1)
	offset, err := e.buf.LineStartOffset(next)
	if err != nil {
		return err
	}
	e.MoveCursor(offset)
	return nil
}

// DuplicateLine inserts a copy of the current line below it and moves the
// cursor to the same column on the copy.
func (e *Engine) DuplicateLine() error {
	line := e.CurrentLine()
	r, err := e.buf.LineRange(line)
	if err != nil {
		return err
	}
	column := e.selection.Head - r.Start
	text := e.buf.TextRange(r.Start, r.End)

	if _, err := e.Replace(r.End, r.End, "\n"+text); err != nil {
		return err
	}
	e.MoveCursor(r.End + 1 + column)
	return nil
}

// GotoLine moves the cursor to the start of line, clamped to the existing
// lines, and returns the line it moved to.
func (e *Engine) GotoLine(line int) int {
	line = min(max(line, 0), e.buf.LineCount()-1)
	offset, err := e.buf.LineStartOffset(line)
	if err != nil {
		return e.CurrentLine()
	}
	e.MoveCursor(offset)
	return line
}
