package buffer

import "github.com/dshills/codeditor/internal/engine/lineindex"

// Snapshot provides a read-only view of a buffer at a specific point in time.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	text       []rune
	lines      *lineindex.Index
	revisionID RevisionID
	tabWidth   int
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return string(s.text)
}

// TextRange returns the text in [start, end) after normalization.
func (s *Snapshot) TextRange(start, end int) string {
	r := lineindex.Normalize(start, end, len(s.text))
	return string(s.text[r.Start:r.End])
}

// Len returns the number of characters in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.text)
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.lines.LineCount()
}

// LineForOffset returns the line containing offset.
func (s *Snapshot) LineForOffset(offset int) int {
	return s.lines.LineForOffset(offset)
}

// LineStartOffset returns the offset of the first character of line.
func (s *Snapshot) LineStartOffset(line int) (int, error) {
	return s.lines.StartOffsetOfLine(line)
}

// LineEndOffset returns the offset of the newline ending line, or the
// snapshot length for the last line.
func (s *Snapshot) LineEndOffset(line int) (int, error) {
	return s.lines.EndOffsetOfLine(line)
}

// LineText returns the text of line without its newline.
func (s *Snapshot) LineText(line int) (string, error) {
	start, err := s.lines.StartOffsetOfLine(line)
	if err != nil {
		return "", err
	}
	end, err := s.lines.EndOffsetOfLine(line)
	if err != nil {
		return "", err
	}
	return string(s.text[start:end]), nil
}

// LineStarts returns a copy of the line-start table.
func (s *Snapshot) LineStarts() []int {
	return s.lines.LineStarts()
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// TabWidth returns the snapshot's tab width.
func (s *Snapshot) TabWidth() int {
	return s.tabWidth
}
