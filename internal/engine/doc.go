// Package engine provides the editing engine behind a code editor session.
//
// An Engine combines a buffer whose line-start index is maintained on every
// edit, an anchor/head selection, grouped undo/redo and a clipboard. Every
// mutation, including undo, redo, paste and replace-all, is a replacement
// of a character range, so the line index is updated incrementally and
// never rebuilt.
//
// # Architecture
//
//   - lineindex: the line-start table and its replacement protocol
//   - buffer: rune storage paired with one line index
//   - cursor: selections and their transformation across edits
//   - history: undo/redo of recorded changes
//
// # Ownership
//
// An Engine is not safe for concurrent use. One goroutine owns it;
// Snapshot returns an immutable copy that may be read from any goroutine.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("func main() {}"))
//
//	e.MoveCursor(13)
//	e.Insert("\n")  // auto-indented when indent_line is on
//
//	e.LineCount()          // 2
//	e.LineStartOffset(1)   // 14, nil
//
//	e.Undo()
//
// # Settings
//
// Apply hands the engine a config.Settings record. read_only rejects
// mutations with ErrReadOnly; insert_brackets and indent_line change what
// Insert types; bracket_matching, highlight_current_line and
// show_line_numbers gate MatchingBracket, CurrentLineRange and GutterWidth.
// The remaining display options are exposed through View.
package engine
