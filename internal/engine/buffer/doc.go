// Package buffer provides the text buffer of an editing session: a growable
// character sequence paired with the line index that describes it.
//
// The buffer package provides:
//
//   - Rune storage in a gap buffer, so edits near the cursor are cheap
//   - A lineindex.Index kept in step with every edit
//   - A single mutation path, Replace, that every edit funnels through
//   - Immutable snapshots for readers on other goroutines
//   - Change notification for observers (history, dirty tracking)
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	buf.Insert(7, "Beautiful ") // "Hello, Beautiful World!"
//	buf.Delete(0, 7)            // "Beautiful World!"
//
//	snap := buf.Snapshot()
//	go func() {
//	    for i := 0; i < snap.LineCount(); i++ {
//	        line, _ := snap.LineText(i)
//	        // Process line...
//	    }
//	}()
//
// Offsets:
//
// All offsets are character (rune) offsets from the start of the buffer.
// Ranges are half-open, [Start, End). Out-of-bounds and inverted ranges are
// normalized rather than rejected: the end is clamped to the buffer length,
// an inverted range collapses to an empty range at its start, and both ends
// are clamped into [0, Len()].
//
// Ownership:
//
// A Buffer is owned by one goroutine, usually the one driving the editor.
// It has no internal locking. Other goroutines read through a Snapshot
// obtained by the owner and handed over to them.
package buffer
