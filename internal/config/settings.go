package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/codeditor/internal/logging"
)

// Font size bounds applied by Normalize.
const (
	MinFontSize = 8
	MaxFontSize = 72
)

// Tab width bounds applied by Normalize.
const (
	MinTabWidth = 1
	MaxTabWidth = 16
)

// DefaultLanguage is the language assumed when none is configured or
// detected.
const DefaultLanguage = "javascript"

// Settings is the immutable record of editor options. Values are copied;
// changing a field on a copy never affects a running session until the copy
// is handed to Refresh.
type Settings struct {
	FontSize             int    `toml:"font_size" yaml:"font_size"`
	WrapContent          bool   `toml:"wrap_content" yaml:"wrap_content"`
	ShowLineNumbers      bool   `toml:"show_line_numbers" yaml:"show_line_numbers"`
	BracketMatching      bool   `toml:"bracket_matching" yaml:"bracket_matching"`
	HighlightCurrentLine bool   `toml:"highlight_current_line" yaml:"highlight_current_line"`
	CodeCompletion       bool   `toml:"code_completion" yaml:"code_completion"`
	PinchZoom            bool   `toml:"pinch_zoom" yaml:"pinch_zoom"`
	InsertBrackets       bool   `toml:"insert_brackets" yaml:"insert_brackets"`
	IndentLine           bool   `toml:"indent_line" yaml:"indent_line"`
	ReadOnly             bool   `toml:"read_only" yaml:"read_only"`
	SyntaxHighlight      bool   `toml:"syntax_highlight" yaml:"syntax_highlight"`
	TabWidth             int    `toml:"tab_width" yaml:"tab_width"`
	Language             string `toml:"language" yaml:"language"`
	MaxUndoEntries       int    `toml:"max_undo_entries" yaml:"max_undo_entries"`
	LogLevel             string `toml:"log_level" yaml:"log_level"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		FontSize:             14,
		WrapContent:          false,
		ShowLineNumbers:      true,
		BracketMatching:      true,
		HighlightCurrentLine: true,
		CodeCompletion:       true,
		PinchZoom:            true,
		InsertBrackets:       true,
		IndentLine:           true,
		ReadOnly:             false,
		SyntaxHighlight:      true,
		TabWidth:             4,
		MaxUndoEntries:       1000,
		LogLevel:             "info",
	}
}

// Normalize returns s with out-of-range values clamped.
func (s Settings) Normalize() Settings {
	s.FontSize = min(max(s.FontSize, MinFontSize), MaxFontSize)
	s.TabWidth = min(max(s.TabWidth, MinTabWidth), MaxTabWidth)
	if s.MaxUndoEntries < 0 {
		s.MaxUndoEntries = 0
	}
	return s
}

// Validate reports values that cannot be clamped into something usable.
func (s Settings) Validate() error {
	if !logging.ValidLevel(s.LogLevel) {
		return &ValidationError{Key: "log_level", Message: "unknown level", Value: s.LogLevel}
	}
	return nil
}

// Field is one named setting and its value.
type Field struct {
	Key   string
	Value any
}

// Fields returns every setting in file order.
func (s Settings) Fields() []Field {
	return []Field{
		{"font_size", s.FontSize},
		{"wrap_content", s.WrapContent},
		{"show_line_numbers", s.ShowLineNumbers},
		{"bracket_matching", s.BracketMatching},
		{"highlight_current_line", s.HighlightCurrentLine},
		{"code_completion", s.CodeCompletion},
		{"pinch_zoom", s.PinchZoom},
		{"insert_brackets", s.InsertBrackets},
		{"indent_line", s.IndentLine},
		{"read_only", s.ReadOnly},
		{"syntax_highlight", s.SyntaxHighlight},
		{"tab_width", s.TabWidth},
		{"language", s.Language},
		{"max_undo_entries", s.MaxUndoEntries},
		{"log_level", s.LogLevel},
	}
}

// FromMap decodes m on top of Default. Keys that are not settings are
// rejected with ErrUnknownSetting. The result is normalized and validated.
func FromMap(m map[string]any) (Settings, error) {
	s := Default()
	if len(m) == 0 {
		return s, nil
	}

	// Round-tripping through TOML gives one decoder for file and
	// environment values alike.
	data, err := toml.Marshal(m)
	if err != nil {
		return Settings{}, fmt.Errorf("encoding settings: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) && len(missing.Errors) > 0 {
			key := strings.Join(missing.Errors[0].Key(), ".")
			return Settings{}, fmt.Errorf("%w: %q", ErrUnknownSetting, key)
		}
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}

	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
