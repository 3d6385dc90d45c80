package cursor

import "github.com/dshills/codeditor/internal/engine/buffer"

// TransformOffset returns where offset ends up after change was applied.
//
// Transformation rules:
//   - If the change is entirely before offset: shift by the change's delta
//   - If the change starts at or after offset: offset unchanged
//   - If the change spans offset: move offset to the end of the new text
func TransformOffset(offset int, change buffer.Change) int {
	if change.Range.End <= offset {
		return offset + change.Delta()
	}
	if change.Range.Start >= offset {
		return offset
	}
	return change.NewRange.End
}

// TransformOffsetSticky is like TransformOffset but decides what happens to
// an offset sitting exactly at an insertion point: a sticky offset stays
// put, a non-sticky one moves to the end of the inserted text.
func TransformOffsetSticky(offset int, change buffer.Change, sticky bool) int {
	if change.Range.IsEmpty() && change.Range.Start == offset {
		if sticky {
			return offset
		}
		return change.NewRange.End
	}
	return TransformOffset(offset, change)
}

// TransformSelection updates a selection after a change.
// The head follows text typed at it; the anchor stays in place.
func TransformSelection(sel Selection, change buffer.Change) Selection {
	return Selection{
		Anchor: TransformOffsetSticky(sel.Anchor, change, true),
		Head:   TransformOffsetSticky(sel.Head, change, false),
	}
}
