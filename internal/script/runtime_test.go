package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/editor"
	"github.com/dshills/codeditor/internal/engine"
	"github.com/dshills/codeditor/internal/engine/lineindex"
	"github.com/dshills/codeditor/internal/logging"
)

func newRuntime(t *testing.T, content string) (*Runtime, *editor.Session, *bytes.Buffer) {
	t.Helper()
	s := editor.NewSession(editor.WithLogger(logging.Discard()))
	require.NoError(t, s.Open(engine.New(engine.WithContent(content)), config.Default()))

	var out bytes.Buffer
	r := New(s, WithOutput(&out))
	t.Cleanup(r.Close)
	return r, s, &out
}

func TestLineScenariosFromLua(t *testing.T) {
	r, s, out := newRuntime(t, "")

	err := r.Run(context.Background(), "scenarios", `
		assert(editor.line_count() == 1)
		editor.replace(0, 0, "a\nb\nc")
		assert(editor.line_count() == 3)
		assert(editor.line_start(1) == 2 and editor.line_start(2) == 4)

		editor.replace(1, 1, "\n")
		assert(editor.text() == "a\n\nb\nc")
		print(editor.line_start(1), editor.line_start(2), editor.line_start(3))

		editor.set_text("ab\ncd")
		assert(editor.line_end(1) == 5)
		assert(editor.line_end(0) == 2)
		assert(editor.line_for_offset(4) == 1)

		editor.set_text("abcde")
		editor.replace(10, 2, "")
		assert(editor.len() == 5)
	`)
	require.NoError(t, err)

	assert.Equal(t, "2\t3\t5\n", out.String())
	assert.Equal(t, "abcde", s.Text())
	require.NoError(t, s.CheckIndex())
}

func TestEditingFunctions(t *testing.T) {
	r, s, out := newRuntime(t, "one\ntwo\none")

	err := r.Run(context.Background(), "edit", `
		local n = editor.replace_all("one", "1")
		print(n)
		editor.goto_line(1)
		editor.duplicate_line()
		editor.select_line()
		local a, h = editor.selection()
		print(a, h)
		editor.delete_line()
		print(editor.undo(), editor.redo())
		local s, e = editor.find("TWO")
		print(s, e)
		print(editor.find("TWO", {match_case = true}))
		editor.goto_line(0)
		editor.insert("x")
		editor.select_all()
	`)
	require.NoError(t, err)

	assert.Equal(t, "2\n6\t9\ntrue\ttrue\n2\t5\nnil\n", out.String())
	assert.Equal(t, "x1\ntwo\n1", s.Text())
}

func TestUndoReturnsFalseWhenEmpty(t *testing.T) {
	r, _, out := newRuntime(t, "")

	require.NoError(t, r.Run(context.Background(), "undo", `print(editor.undo(), editor.redo())`))
	assert.Equal(t, "false\tfalse\n", out.String())
}

func TestGoErrorsSurfaceAsCause(t *testing.T) {
	r, s, _ := newRuntime(t, "ab")

	err := r.Run(context.Background(), "oob", `editor.line_start(7)`)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "oob", serr.Name)
	assert.ErrorIs(t, err, lineindex.ErrOutOfRange)

	require.NoError(t, s.Close())
	err = r.Run(context.Background(), "closed", `editor.replace(0, 0, "x")`)
	assert.ErrorIs(t, err, editor.ErrNotInitialized)
}

func TestCaughtErrorsDoNotFailTheScript(t *testing.T) {
	r, _, out := newRuntime(t, "")

	err := r.Run(context.Background(), "pcall", `
		local ok, msg = pcall(editor.replace_all, "", "x")
		print(ok)
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out.String())
}

func TestSandbox(t *testing.T) {
	r, _, _ := newRuntime(t, "")

	for _, name := range []string{"io", "os", "dofile", "loadfile", "load", "require"} {
		err := r.Run(context.Background(), name, `assert(`+name+` == nil, "`+name+` is reachable")`)
		assert.NoError(t, err, name)
	}
	assert.NoError(t, r.Run(context.Background(), "libs", `assert(string.upper("a") == "A" and math.max(1, 2) == 2)`))
}

func TestSyntaxError(t *testing.T) {
	r, _, _ := newRuntime(t, "")

	err := r.Run(context.Background(), "bad", `editor.replace(`)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Nil(t, serr.Cause)
	assert.Contains(t, err.Error(), "script bad")
}

func TestTimeout(t *testing.T) {
	r, _, _ := newRuntime(t, "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Run(ctx, "spin", `while true do end`)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)

	// The state stays usable after a cancelled run.
	assert.NoError(t, r.Run(context.Background(), "after", `assert(true)`))
}

func TestRunFile(t *testing.T) {
	r, s, _ := newRuntime(t, "")
	path := filepath.Join(t.TempDir(), "edit.lua")
	require.NoError(t, os.WriteFile(path, []byte(`editor.set_text("from file")`), 0o644))

	require.NoError(t, r.RunFile(context.Background(), path))
	assert.Equal(t, "from file", s.Text())

	assert.Error(t, r.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")))
}

func TestClosedRuntime(t *testing.T) {
	r, _, _ := newRuntime(t, "")
	r.Close()
	r.Close()

	assert.ErrorIs(t, r.Run(context.Background(), "x", ``), ErrRuntimeClosed)
}
