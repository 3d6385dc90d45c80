package buffer

import (
	"fmt"

	"github.com/dshills/codeditor/internal/engine/lineindex"
)

// Range is a half-open character range [Start, End).
type Range = lineindex.Range

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// FormatRange returns a human-readable representation of r.
func FormatRange(r Range) string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}
