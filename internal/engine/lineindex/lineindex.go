package lineindex

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Index is an ordered table of line-start offsets.
//
// starts[i] is the offset of the first character of line i. The table is
// strictly increasing, never empty, and starts[0] is always 0.
type Index struct {
	starts []int
	length int
}

// New creates an index for an empty text: a single line starting at 0.
func New() *Index {
	return &Index{starts: []int{0}}
}

// Build creates an index by scanning src for newlines.
func Build(src Source) *Index {
	idx := New()
	n := src.Len()
	for i := 0; i < n; i++ {
		if src.At(i) == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	idx.length = n
	return idx
}

// FromString creates an index for s.
func FromString(s string) *Index {
	idx := New()
	i := 0
	for _, r := range s {
		if r == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
		i++
	}
	idx.length = i
	return idx
}

// Replace updates the index for the replacement of [start, end) of old by
// newText. old must be the content before the replacement; the caller applies
// the replacement to its own storage afterwards.
//
// The range is normalized with Normalize(start, end, old.Len()) and the
// normalized range is returned.
func (x *Index) Replace(start, end int, newText string, old Source) Range {
	r := Normalize(start, end, old.Len())
	delta := utf8.RuneCountInString(newText) - r.Len()

	startLine := x.LineForOffset(r.Start)

	// Each newline inside the replaced span ends the line after startLine.
	removed := 0
	for i := r.Start; i < r.End; i++ {
		if old.At(i) == '\n' {
			removed++
		}
	}
	if removed > 0 {
		hi := min(startLine+1+removed, len(x.starts))
		x.starts = slices.Delete(x.starts, startLine+1, hi)
	}

	if delta != 0 {
		for i := x.LineForOffset(r.Start) + 1; i < len(x.starts); i++ {
			x.starts[i] += delta
		}
	}

	// New line starts all fall between the entry of the line containing
	// r.Start and the shifted tail, so they are spliced in as one run.
	var added []int
	i := 0
	for _, c := range newText {
		if c == '\n' {
			added = append(added, r.Start+i+1)
		}
		i++
	}
	if len(added) > 0 {
		at := x.LineForOffset(r.Start) + 1
		x.starts = slices.Insert(x.starts, at, added...)
	}

	x.length = old.Len() + delta
	return r
}

// LineCount returns the number of lines. It is always at least 1.
func (x *Index) LineCount() int {
	return len(x.starts)
}

// Len returns the length of the indexed text in characters.
func (x *Index) Len() int {
	return x.length
}

// LineForOffset returns the line containing offset: the largest i with
// starts[i] <= offset. Offsets below 0 map to line 0 and offsets past the
// end map to the last line.
func (x *Index) LineForOffset(offset int) int {
	i, found := slices.BinarySearch(x.starts, offset)
	if found {
		return i
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// StartOffsetOfLine returns the offset of the first character of line.
func (x *Index) StartOffsetOfLine(line int) (int, error) {
	if err := x.checkLine(line); err != nil {
		return 0, err
	}
	return x.starts[line], nil
}

// EndOffsetOfLine returns the offset of line's terminating newline, or the
// text length for the last line.
func (x *Index) EndOffsetOfLine(line int) (int, error) {
	if err := x.checkLine(line); err != nil {
		return 0, err
	}
	if line == len(x.starts)-1 {
		return x.length, nil
	}
	return x.starts[line+1] - 1, nil
}

// LineStarts returns a copy of the line-start table.
func (x *Index) LineStarts() []int {
	return slices.Clone(x.starts)
}

// Clone returns an independent copy of the index.
func (x *Index) Clone() *Index {
	return &Index{starts: slices.Clone(x.starts), length: x.length}
}

// Equal reports whether two indexes hold the same table and length.
func (x *Index) Equal(other *Index) bool {
	return x.length == other.length && slices.Equal(x.starts, other.starts)
}

// Validate checks the structural invariants of the table.
func (x *Index) Validate() error {
	if len(x.starts) == 0 {
		return fmt.Errorf("empty line table")
	}
	if x.starts[0] != 0 {
		return fmt.Errorf("line 0 starts at %d", x.starts[0])
	}
	for i := 1; i < len(x.starts); i++ {
		if x.starts[i] <= x.starts[i-1] {
			return fmt.Errorf("line %d starts at %d, not after line %d at %d",
				i, x.starts[i], i-1, x.starts[i-1])
		}
	}
	if last := x.starts[len(x.starts)-1]; last > x.length {
		return fmt.Errorf("last line starts at %d past length %d", last, x.length)
	}
	return nil
}

func (x *Index) checkLine(line int) error {
	if line < 0 || line >= len(x.starts) {
		return &OutOfRangeError{Line: line, LineCount: len(x.starts)}
	}
	return nil
}
