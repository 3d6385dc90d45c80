package lineindex

// Source is a read view of the text an Index describes.
// Offsets are rune offsets in [0, Len()).
type Source interface {
	Len() int
	At(offset int) rune
}

// Runes adapts a rune slice to Source.
type Runes []rune

// Len returns the number of runes.
func (r Runes) Len() int { return len(r) }

// At returns the rune at offset.
func (r Runes) At(offset int) rune { return r[offset] }

// Range is a half-open character range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Normalize applies the permissive range policy used by Replace against a
// text of the given length: end is clamped to length, an inverted range
// collapses to an empty range at start, and both bounds are then clamped
// into [0, length].
func Normalize(start, end, length int) Range {
	if end > length {
		end = length
	}
	if start > end {
		end = start
	}
	return Range{Start: clamp(start, length), End: clamp(end, length)}
}

func clamp(v, length int) int {
	if v < 0 {
		return 0
	}
	if v > length {
		return length
	}
	return v
}
