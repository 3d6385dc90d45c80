package engine

import "strconv"

// View holds the settings a renderer reads without the engine acting on
// them.
type View struct {
	FontSize             int
	WrapContent          bool
	ShowLineNumbers      bool
	HighlightCurrentLine bool
	CodeCompletion       bool
	PinchZoom            bool
	SyntaxHighlight      bool
}

// View returns the display settings.
func (e *Engine) View() View {
	s := e.settings
	return View{
		FontSize:             s.FontSize,
		WrapContent:          s.WrapContent,
		ShowLineNumbers:      s.ShowLineNumbers,
		HighlightCurrentLine: s.HighlightCurrentLine,
		CodeCompletion:       s.CodeCompletion,
		PinchZoom:            s.PinchZoom,
		SyntaxHighlight:      s.SyntaxHighlight,
	}
}

// GutterWidth returns the width in columns of the line-number gutter: the
// digits of the largest line number plus one column of padding, or 0 when
// line numbers are off.
func (e *Engine) GutterWidth() int {
	if !e.settings.ShowLineNumbers {
		return 0
	}
	return len(strconv.Itoa(e.buf.LineCount())) + 1
}

// CurrentLineRange returns the range of the line holding the cursor, for
// highlighting. ok is false when highlight_current_line is off.
func (e *Engine) CurrentLineRange() (r Range, ok bool) {
	if !e.settings.HighlightCurrentLine {
		return Range{}, false
	}
	r, err := e.buf.LineRange(e.CurrentLine())
	if err != nil {
		return Range{}, false
	}
	return r, true
}

var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
	')': '(', ']': '[', '}': '{',
}

func isOpening(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// MatchingBracket returns the offset of the bracket matching the one at
// offset, or just before it when the character at offset is not a bracket.
// ok is false when bracket_matching is off, no bracket is adjacent, or the
// bracket is unbalanced.
func (e *Engine) MatchingBracket(offset int) (match int, ok bool) {
	if !e.settings.BracketMatching {
		return 0, false
	}

	pos := offset
	r, found := e.buf.RuneAt(pos)
	if _, isBracket := bracketPairs[r]; !found || !isBracket {
		pos = offset - 1
		r, found = e.buf.RuneAt(pos)
		if _, isBracket := bracketPairs[r]; !found || !isBracket {
			return 0, false
		}
	}

	want := bracketPairs[r]
	step := 1
	if !isOpening(r) {
		step = -1
	}

	depth := 0
	for i := pos; i >= 0 && i < e.buf.Len(); i += step {
		c, _ := e.buf.RuneAt(i)
		switch c {
		case r:
			depth++
		case want:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
