package script

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/codeditor/internal/engine"
)

// editorModule builds the editor table.
func (r *Runtime) editorModule() *lua.LTable {
	return r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"text":            r.text,
		"len":             r.length,
		"replace":         r.replace,
		"insert":          r.insert,
		"set_text":        r.setText,
		"line_count":      r.lineCount,
		"line_for_offset": r.lineForOffset,
		"line_start":      r.lineStart,
		"line_end":        r.lineEnd,
		"selection":       r.selection,
		"undo":            r.undo,
		"redo":            r.redo,
		"select_all":      r.simple(r.session.SelectAll),
		"select_line":     r.simple(r.session.SelectLine),
		"delete_line":     r.simple(r.session.DeleteLine),
		"duplicate_line":  r.simple(r.session.DuplicateLine),
		"goto_line":       r.gotoLine,
		"find":            r.find,
		"replace_all":     r.replaceAll,
	})
}

// raise records err as the cause of the script failure and raises it.
func (r *Runtime) raise(L *lua.LState, err error) int {
	r.lastErr = err
	L.RaiseError("%s", err.Error())
	return 0
}

func (r *Runtime) text(L *lua.LState) int {
	L.Push(lua.LString(r.session.Text()))
	return 1
}

func (r *Runtime) length(L *lua.LState) int {
	n, err := r.session.Len()
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (r *Runtime) replace(L *lua.LState) int {
	start, end, text := L.CheckInt(1), L.CheckInt(2), L.CheckString(3)
	if err := r.session.ReplaceText(start, end, text); err != nil {
		return r.raise(L, err)
	}
	return 0
}

func (r *Runtime) insert(L *lua.LState) int {
	if err := r.session.Insert(L.CheckString(1)); err != nil {
		return r.raise(L, err)
	}
	return 0
}

func (r *Runtime) setText(L *lua.LState) int {
	if err := r.session.SetText(L.CheckString(1)); err != nil {
		return r.raise(L, err)
	}
	return 0
}

func (r *Runtime) lineCount(L *lua.LState) int {
	n, err := r.session.LineCount()
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (r *Runtime) lineForOffset(L *lua.LState) int {
	line, err := r.session.LineForIndex(L.CheckInt(1))
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(line))
	return 1
}

func (r *Runtime) lineStart(L *lua.LState) int {
	offset, err := r.session.IndexForStartOfLine(L.CheckInt(1))
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(offset))
	return 1
}

func (r *Runtime) lineEnd(L *lua.LState) int {
	offset, err := r.session.IndexForEndOfLine(L.CheckInt(1))
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(offset))
	return 1
}

// selection returns anchor and head.
func (r *Runtime) selection(L *lua.LState) int {
	sel, err := r.session.Selection()
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(sel.Anchor))
	L.Push(lua.LNumber(sel.Head))
	return 2
}

// undo returns false instead of failing when there is nothing to undo.
func (r *Runtime) undo(L *lua.LState) int {
	err := r.session.Undo()
	if errors.Is(err, engine.ErrNothingToUndo) {
		L.Push(lua.LFalse)
		return 1
	}
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LTrue)
	return 1
}

func (r *Runtime) redo(L *lua.LState) int {
	err := r.session.Redo()
	if errors.Is(err, engine.ErrNothingToRedo) {
		L.Push(lua.LFalse)
		return 1
	}
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LTrue)
	return 1
}

func (r *Runtime) gotoLine(L *lua.LState) int {
	line, err := r.session.GotoLine(L.CheckInt(1))
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(line))
	return 1
}

// find(query [, opts]) returns the start and end of the selected match, or
// nil. opts may set match_case, regex and whole_word.
func (r *Runtime) find(L *lua.LState) int {
	query := L.CheckString(1)
	opts := findOptions(L, 2, engine.FindOptions{})

	m, ok, err := r.session.Find(query, opts)
	if err != nil {
		return r.raise(L, err)
	}
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(m.Start))
	L.Push(lua.LNumber(m.End))
	return 2
}

// replace_all(query, replacement [, opts]) returns the replacement count.
// Matching is literal and case-sensitive unless opts say otherwise.
func (r *Runtime) replaceAll(L *lua.LState) int {
	query, replacement := L.CheckString(1), L.CheckString(2)
	opts := findOptions(L, 3, engine.FindOptions{MatchCase: true})

	n, err := r.session.ReplaceAllWith(query, replacement, opts)
	if err != nil {
		return r.raise(L, err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

func findOptions(L *lua.LState, idx int, opts engine.FindOptions) engine.FindOptions {
	tbl := L.OptTable(idx, nil)
	if tbl == nil {
		return opts
	}
	if v := tbl.RawGetString("match_case"); v != lua.LNil {
		opts.MatchCase = lua.LVAsBool(v)
	}
	opts.Regex = lua.LVAsBool(tbl.RawGetString("regex"))
	opts.WholeWord = lua.LVAsBool(tbl.RawGetString("whole_word"))
	return opts
}

// simple wraps an argument-less session operation.
func (r *Runtime) simple(op func() error) lua.LGFunction {
	return func(L *lua.LState) int {
		if err := op(); err != nil {
			return r.raise(L, err)
		}
		return 0
	}
}
