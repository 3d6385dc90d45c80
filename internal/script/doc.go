// Package script runs Lua edit scripts against an editor session.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. The global table editor exposes the session:
//
//	editor.set_text("a\nb\nc")
//	editor.replace(1, 1, "\n")        -- offsets are 0-based characters
//	print(editor.line_count())        -- 4
//	print(editor.line_start(2))       -- 3
//
// Line numbers and offsets are 0-based, the same as in Go. Errors from the
// session are raised as Lua errors; a script that does not catch them
// fails with a *Error that unwraps to the Go error.
package script
