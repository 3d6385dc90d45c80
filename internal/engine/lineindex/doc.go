// Package lineindex maintains the table of line-start offsets for a mutable
// text and keeps it consistent as ranges of that text are replaced.
//
// Offsets are measured in characters (runes), counted from the start of the
// document. Line 0 always starts at offset 0 and every '\n' starts a new line
// at the offset immediately after it. '\r' is an ordinary character.
//
// The index never stores text. Each edit is reported through Replace together
// with a read view of the content as it was before the edit, so only the lines
// touched by the edit are rewritten and everything after them is shifted:
//
//	idx := lineindex.New()
//	old := lineindex.Runes(nil)
//	idx.Replace(0, 0, "a\nb\nc", old) // starts: [0 2 4]
//
//	line := idx.LineForOffset(3)      // 1
//	start, _ := idx.StartOffsetOfLine(1) // 2
//
// Malformed ranges passed to Replace are normalized (clamped, or collapsed to
// an empty range) rather than rejected. Only line numbers outside
// [0, LineCount()) are errors.
//
// An Index is owned by a single goroutine. Readers on other goroutines must
// work on a Clone taken by the owner.
package lineindex
