// Package history provides undo/redo for a buffer.
//
// A History is attached to a buffer and records every change the buffer
// reports, so edits reach the undo stack no matter which path produced them.
// Undo and redo replay recorded changes through the buffer's own Replace, so
// the line index sees them like any other edit.
//
//	h := history.NewHistory(1000)
//	h.Attach(buf)
//
//	buf.Insert(0, "hello")
//	h.Undo(buf) // buffer is empty again
//	h.Redo(buf) // "hello"
//
// # Grouping
//
// Multiple changes can be grouped as a single undo unit:
//
//	h.BeginGroup("Replace all")
//	// ... multiple edits ...
//	h.EndGroup()
//
// Nested groups are folded into the outermost one.
package history
