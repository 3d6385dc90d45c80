package engine

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// FindOptions controls how a query is matched.
type FindOptions struct {
	// MatchCase makes the match case-sensitive.
	MatchCase bool
	// Regex treats the query as a regular expression (RE2 syntax).
	Regex bool
	// WholeWord only matches at word boundaries.
	WholeWord bool
}

// compile turns a query into a regular expression honouring opts.
func compile(query string, opts FindOptions) (*regexp.Regexp, error) {
	pattern := query
	if !opts.Regex {
		pattern = regexp.QuoteMeta(query)
	}
	if opts.WholeWord {
		pattern = `\b(?:` + pattern + `)\b`
	}
	if !opts.MatchCase {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re, nil
}

// FindAll returns every non-empty match of query as character ranges, in
// order.
func (e *Engine) FindAll(query string, opts FindOptions) ([]Range, error) {
	re, err := compile(query, opts)
	if err != nil {
		return nil, err
	}
	return matchRanges(re, e.buf.Text()), nil
}

// Find selects the first match at or after the cursor, wrapping to the
// start of the buffer, and returns it. ok is false when nothing matches.
func (e *Engine) Find(query string, opts FindOptions) (match Range, ok bool, err error) {
	matches, err := e.FindAll(query, opts)
	if err != nil || len(matches) == 0 {
		return Range{}, false, err
	}

	from := e.selection.End()
	if !e.selection.IsEmpty() {
		// Searching again from a selected match moves past it.
		from = e.selection.Start() + 1
	}
	match = matches[0]
	for _, m := range matches {
		if m.Start >= from {
			match = m
			break
		}
	}
	e.selection = Selection{Anchor: match.Start, Head: match.End}
	return match, true, nil
}

// ReplaceAll replaces every match of query with replacement as a single
// undo unit and returns the number of replacements. With opts.Regex the
// replacement may refer to groups as $1 or ${name}.
func (e *Engine) ReplaceAll(query, replacement string, opts FindOptions) (int, error) {
	if e.settings.ReadOnly {
		return 0, ErrReadOnly
	}
	re, err := compile(query, opts)
	if err != nil {
		return 0, err
	}

	text := e.buf.Text()
	locs := nonEmpty(re.FindAllStringSubmatchIndex(text, -1))
	if len(locs) == 0 {
		return 0, nil
	}
	ranges := runeRanges(text, locs)

	err = e.Transaction("Replace all", func() error {
		// Highest offset first so earlier ranges stay valid.
		for i := len(locs) - 1; i >= 0; i-- {
			with := replacement
			if opts.Regex {
				with = string(re.ExpandString(nil, replacement, text, locs[i]))
			}
			if _, err := e.Replace(ranges[i].Start, ranges[i].End, with); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(locs), nil
}

func matchRanges(re *regexp.Regexp, text string) []Range {
	return runeRanges(text, nonEmpty(re.FindAllStringIndex(text, -1)))
}

func nonEmpty(locs [][]int) [][]int {
	out := locs[:0]
	for _, loc := range locs {
		if loc[1] > loc[0] {
			out = append(out, loc)
		}
	}
	return out
}

// runeRanges converts ascending byte locations into character ranges.
func runeRanges(text string, locs [][]int) []Range {
	ranges := make([]Range, 0, len(locs))
	bytePos, runePos := 0, 0
	advance := func(to int) int {
		runePos += utf8.RuneCountInString(text[bytePos:to])
		bytePos = to
		return runePos
	}
	for _, loc := range locs {
		start := advance(loc[0])
		end := advance(loc[1])
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}
