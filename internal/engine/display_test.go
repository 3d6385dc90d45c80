package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/codeditor/internal/config"
)

func TestGutterWidth(t *testing.T) {
	assert.Equal(t, 2, New().GutterWidth())
	assert.Equal(t, 3, New(WithContent(strings.Repeat("x\n", 11))).GutterWidth())

	s := config.Default()
	s.ShowLineNumbers = false
	assert.Zero(t, New(WithSettings(s)).GutterWidth())
}

func TestCurrentLineRange(t *testing.T) {
	e := New(WithContent("ab\ncd"))
	e.MoveCursor(4)

	r, ok := e.CurrentLineRange()
	assert.True(t, ok)
	assert.Equal(t, Range{Start: 3, End: 5}, r)

	s := config.Default()
	s.HighlightCurrentLine = false
	e.Apply(s)
	_, ok = e.CurrentLineRange()
	assert.False(t, ok)
}

func TestMatchingBracket(t *testing.T) {
	e := New(WithContent("f(a[b])"))

	tests := []struct {
		offset int
		want   int
		ok     bool
	}{
		{1, 6, true},
		{3, 5, true},
		{5, 3, true},
		{6, 1, true},
		{7, 1, true},
		{2, 6, true},
		{0, 0, false},
	}

	for _, tt := range tests {
		got, ok := e.MatchingBracket(tt.offset)
		assert.Equal(t, tt.ok, ok, "MatchingBracket(%d)", tt.offset)
		assert.Equal(t, tt.want, got, "MatchingBracket(%d)", tt.offset)
	}
}

func TestMatchingBracketUnbalancedOrOff(t *testing.T) {
	_, ok := New(WithContent("((")).MatchingBracket(0)
	assert.False(t, ok)

	s := config.Default()
	s.BracketMatching = false
	_, ok = New(WithContent("()"), WithSettings(s)).MatchingBracket(0)
	assert.False(t, ok)
}

func TestView(t *testing.T) {
	s := config.Default()
	s.WrapContent = true
	s.PinchZoom = false
	s.FontSize = 20

	v := New(WithSettings(s)).View()

	assert.Equal(t, View{
		FontSize:             20,
		WrapContent:          true,
		ShowLineNumbers:      true,
		HighlightCurrentLine: true,
		CodeCompletion:       true,
		PinchZoom:            false,
		SyntaxHighlight:      true,
	}, v)
}
