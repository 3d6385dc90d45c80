// Package cursor provides the selection model of an editing session and
// the rules for moving a selection across an edit.
//
// A Selection has an anchor, where the selection started, and a head, where
// typing occurs. When Anchor == Head the selection is a plain cursor.
package cursor
