package editor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/engine"
	"github.com/dshills/codeditor/internal/engine/lineindex"
	"github.com/dshills/codeditor/internal/logging"
)

func openSession(t *testing.T, content string, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithLogger(logging.Discard())}, opts...)
	s := NewSession(opts...)
	require.NoError(t, s.Open(engine.New(engine.WithContent(content)), config.Default()))
	return s
}

func TestOperationsRequireOpenSession(t *testing.T) {
	ops := map[string]func(s *Session) error{
		"refresh":          func(s *Session) error { return s.Refresh(config.Default()) },
		"set text":         func(s *Session) error { return s.SetText("x") },
		"replace text":     func(s *Session) error { return s.ReplaceText(0, 0, "x") },
		"insert":           func(s *Session) error { return s.Insert("x") },
		"cut":              (*Session).Cut,
		"copy":             (*Session).Copy,
		"paste":            (*Session).Paste,
		"undo":             (*Session).Undo,
		"redo":             (*Session).Redo,
		"select all":       (*Session).SelectAll,
		"select line":      (*Session).SelectLine,
		"delete line":      (*Session).DeleteLine,
		"duplicate line":   (*Session).DuplicateLine,
		"check index":      (*Session).CheckIndex,
		"set read-only":    func(s *Session) error { return s.SetReadOnly(true) },
		"set highlighting": func(s *Session) error { return s.SetSyntaxHighlight(false) },
		"set language":     func(s *Session) error { return s.SetLanguage("go") },
		"line count": func(s *Session) error {
			_, err := s.LineCount()
			return err
		},
		"line for index": func(s *Session) error {
			_, err := s.LineForIndex(0)
			return err
		},
		"start of line": func(s *Session) error {
			_, err := s.IndexForStartOfLine(0)
			return err
		},
		"end of line": func(s *Session) error {
			_, err := s.IndexForEndOfLine(0)
			return err
		},
		"goto line": func(s *Session) error {
			_, err := s.GotoLine(0)
			return err
		},
		"find": func(s *Session) error {
			_, _, err := s.Find("x", engine.FindOptions{})
			return err
		},
		"replace all": func(s *Session) error {
			_, err := s.ReplaceAll("x", "y")
			return err
		},
		"snapshot": func(s *Session) error {
			_, err := s.Snapshot()
			return err
		},
	}

	closed := openSession(t, "abc")
	require.NoError(t, closed.Close())

	for name, op := range ops {
		for state, s := range map[string]*Session{"new": NewSession(), "closed": closed} {
			err := op(s)
			require.ErrorIs(t, err, ErrNotInitialized, "%s on %s session", name, state)

			var nie *NotInitializedError
			require.True(t, errors.As(err, &nie))
			assert.NotEmpty(t, nie.Op)
		}
	}
}

func TestTextWhenClosed(t *testing.T) {
	s := NewSession()
	assert.Equal(t, "", s.Text())
	assert.False(t, s.IsOpen())
	assert.NoError(t, s.Close())
}

func TestOpenTwice(t *testing.T) {
	s := openSession(t, "")

	err := s.Open(engine.New(), config.Default())
	assert.ErrorIs(t, err, ErrAlreadyOpen)

	require.NoError(t, s.Close())
	assert.NoError(t, s.Open(engine.New(engine.WithContent("again")), config.Default()))
	assert.Equal(t, "again", s.Text())
}

func TestLineScenarios(t *testing.T) {
	s := openSession(t, "")

	n, err := s.LineCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.ReplaceText(0, 0, "a\nb\nc"))
	assertStarts(t, s, 0, 2, 4)

	require.NoError(t, s.ReplaceText(1, 1, "\n"))
	assert.Equal(t, "a\n\nb\nc", s.Text())
	assertStarts(t, s, 0, 2, 3, 5)

	require.NoError(t, s.SetText("a\nb\nc"))
	require.NoError(t, s.ReplaceText(1, 3, ""))
	assert.Equal(t, "a\nc", s.Text())
	assertStarts(t, s, 0, 2)

	require.NoError(t, s.SetText("ab\ncd"))
	end, err := s.IndexForEndOfLine(1)
	require.NoError(t, err)
	assert.Equal(t, 5, end)
	end, err = s.IndexForEndOfLine(0)
	require.NoError(t, err)
	assert.Equal(t, 2, end)

	require.NoError(t, s.SetText("abcde"))
	require.NoError(t, s.ReplaceText(10, 2, ""))
	assert.Equal(t, "abcde", s.Text())
	require.NoError(t, s.CheckIndex())
}

func assertStarts(t *testing.T, s *Session, want ...int) {
	t.Helper()
	n, err := s.LineCount()
	require.NoError(t, err)
	require.Equal(t, len(want), n)
	for line, offset := range want {
		got, err := s.IndexForStartOfLine(line)
		require.NoError(t, err)
		assert.Equal(t, offset, got, "start of line %d", line)
		l, err := s.LineForIndex(offset)
		require.NoError(t, err)
		assert.Equal(t, line, l, "line for index %d", offset)
	}
}

func TestLineOutOfRange(t *testing.T) {
	s := openSession(t, "ab\ncd")

	_, err := s.IndexForStartOfLine(2)
	assert.ErrorIs(t, err, lineindex.ErrOutOfRange)
	_, err = s.IndexForEndOfLine(-1)
	assert.ErrorIs(t, err, lineindex.ErrOutOfRange)
}

func TestDirtyTracking(t *testing.T) {
	s := openSession(t, "abc")
	assert.False(t, s.IsDirty())

	require.NoError(t, s.ReplaceText(0, 0, "x"))
	assert.True(t, s.IsDirty())

	require.NoError(t, s.SetText("fresh"))
	assert.False(t, s.IsDirty())

	require.NoError(t, s.Insert("!"))
	assert.True(t, s.IsDirty())

	s.MarkClean()
	require.NoError(t, s.Undo())
	assert.True(t, s.IsDirty())
}

func TestFindAndReplaceRejectEmptyText(t *testing.T) {
	s := openSession(t, "one two one")

	_, _, err := s.Find("", engine.FindOptions{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
	_, err = s.ReplaceAll("", "x")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	_, err = s.ReplaceAll("one", "")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	m, ok, err := s.Find("two", engine.FindOptions{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, engine.Range{Start: 4, End: 7}, m)

	n, err := s.ReplaceAll("one", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "1 two 1", s.Text())
}

func TestPassThroughEditing(t *testing.T) {
	s := openSession(t, "ab\ncd")

	line, err := s.GotoLine(5)
	require.NoError(t, err)
	assert.Equal(t, 1, line)

	require.NoError(t, s.DuplicateLine())
	assert.Equal(t, "ab\ncd\ncd", s.Text())

	require.NoError(t, s.SelectLine())
	require.NoError(t, s.Cut())
	assert.Equal(t, "ab\ncd\n", s.Text())

	require.NoError(t, s.Paste())
	require.NoError(t, s.SelectAll())
	sel, err := s.Selection()
	require.NoError(t, err)
	assert.Equal(t, engine.Selection{Anchor: 0, Head: 8}, sel)
	require.NoError(t, s.Copy())

	require.NoError(t, s.DeleteLine())
	require.NoError(t, s.Undo())
	require.NoError(t, s.Redo())
	assert.ErrorIs(t, s.Redo(), engine.ErrNothingToRedo)
	require.NoError(t, s.CheckIndex())
}

func TestRefreshAppliesSettings(t *testing.T) {
	s := openSession(t, "abc")

	settings := config.Default()
	settings.ReadOnly = true
	require.NoError(t, s.Refresh(settings))

	assert.True(t, s.Settings().ReadOnly)
	assert.ErrorIs(t, s.ReplaceText(0, 0, "x"), engine.ErrReadOnly)
	assert.Equal(t, "abc", s.Text())

	require.NoError(t, s.SetReadOnly(false))
	require.NoError(t, s.ReplaceText(0, 0, "x"))
	assert.Equal(t, "xabc", s.Text())

	require.NoError(t, s.SetSyntaxHighlight(false))
	assert.False(t, s.Settings().SyntaxHighlight)
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, config.DefaultLanguage, openSession(t, "").Language())
	assert.Equal(t, "go", openSession(t, "", WithFileName("cmd/main.go")).Language())

	s := NewSession(WithLogger(logging.Discard()))
	settings := config.Default()
	settings.Language = "rust"
	require.NoError(t, s.Open(engine.New(), settings))
	assert.Equal(t, "rust", s.Language())

	require.NoError(t, s.SetLanguage(""))
	assert.Equal(t, config.DefaultLanguage, s.Language())
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"go by extension", "main.go", "", "go"},
		{"javascript by extension", "app.js", "", "javascript"},
		{"python by extension", "tool.py", "", "python"},
		{"python by shebang", "", "#!/usr/bin/env python\nprint(1)\n", "python"},
		{"unknown falls back", "notes.zzz-unknown", "", config.DefaultLanguage},
		{"nothing to go on", "", "", config.DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.filename, []byte(tt.content)))
		})
	}
}

func TestSessionIDAndLogging(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(WithLogger(logging.NewWithWriter(&buf, "debug")))

	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.NotEqual(t, s.ID(), NewSession().ID())

	require.NoError(t, s.Open(engine.New(), config.Default()))
	require.NoError(t, s.ReplaceText(0, 0, "x\n"))

	assert.Contains(t, buf.String(), s.ID())
	assert.Contains(t, buf.String(), "replaced")
}
