package editor

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/codeditor/internal/config"
	"github.com/dshills/codeditor/internal/engine"
	"github.com/dshills/codeditor/internal/logging"
)

// Processor is the editing component a session drives.
// *engine.Engine implements it.
type Processor interface {
	Text() string
	Len() int
	Replace(start, end int, text string) (engine.Change, error)
	SetText(text string) error
	OnChange(fn func(engine.Change))
	Snapshot() *engine.Snapshot
	CheckIndex() error

	LineCount() int
	LineForOffset(offset int) int
	LineStartOffset(line int) (int, error)
	LineEndOffset(line int) (int, error)

	Selection() engine.Selection
	Insert(text string) error
	Cut() error
	Copy() error
	Paste() error
	Undo() error
	Redo() error
	SelectAll()
	SelectLine()
	DeleteLine() error
	DuplicateLine() error
	Find(query string, opts engine.FindOptions) (engine.Range, bool, error)
	ReplaceAll(query, replacement string, opts engine.FindOptions) (int, error)
	GotoLine(line int) int

	Apply(s config.Settings)
	SetReadOnly(readOnly bool)
	SetSyntaxHighlight(enabled bool)
}

var _ Processor = (*engine.Engine)(nil)

// Session is an editing session: a Processor plus the settings, language
// and dirty state around it.
//
// Every operation on a session that has not been opened, or has been
// closed, fails with a *NotInitializedError.
type Session struct {
	id       string
	filename string
	logger   *log.Logger

	proc     Processor
	settings config.Settings
	language string
	dirty    bool
}

// Option configures a Session.
type Option func(*Session)

// WithFileName sets the file name used for language detection.
func WithFileName(name string) Option {
	return func(s *Session) {
		s.filename = name
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a closed session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		logger:   logging.Default(),
		settings: config.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logging.FieldSession, s.id)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Open binds proc to the session and applies settings.
func (s *Session) Open(proc Processor, settings config.Settings) error {
	if s.proc != nil {
		return ErrAlreadyOpen
	}
	if proc == nil {
		return &NotInitializedError{Op: "open"}
	}

	s.proc = proc
	s.dirty = false
	proc.OnChange(func(engine.Change) {
		if s.proc == proc {
			s.dirty = true
		}
	})
	s.apply(settings)

	s.logger.Debug("session opened",
		logging.FieldLanguage, s.language,
		logging.FieldLength, proc.Len(),
		logging.FieldLines, proc.LineCount())
	return nil
}

// Close releases the processor. Closing a closed session is a no-op.
func (s *Session) Close() error {
	if s.proc == nil {
		return nil
	}
	s.proc = nil
	s.dirty = false
	s.logger.Debug("session closed")
	return nil
}

// IsOpen reports whether the session has a processor.
func (s *Session) IsOpen() bool {
	return s.proc != nil
}

func (s *Session) processor(op string) (Processor, error) {
	if s.proc == nil {
		return nil, &NotInitializedError{Op: op}
	}
	return s.proc, nil
}

// Settings

// Refresh applies a new settings record.
func (s *Session) Refresh(settings config.Settings) error {
	if _, err := s.processor("refresh"); err != nil {
		return err
	}
	s.apply(settings)
	s.logger.Debug("settings applied", logging.FieldReadOnly, s.settings.ReadOnly)
	return nil
}

func (s *Session) apply(settings config.Settings) {
	s.settings = settings.Normalize()
	s.proc.Apply(s.settings)

	s.language = s.settings.Language
	if s.language == "" {
		s.language = DetectLanguage(s.filename, []byte(s.proc.Text()))
	}
}

// Settings returns the applied settings.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Language returns the session language.
func (s *Session) Language() string {
	if s.language == "" {
		return config.DefaultLanguage
	}
	return s.language
}

// SetLanguage overrides the detected language. An empty name restores
// the default.
func (s *Session) SetLanguage(lang string) error {
	if _, err := s.processor("set language"); err != nil {
		return err
	}
	s.language = lang
	return nil
}

// SetReadOnly toggles the read-only guard.
func (s *Session) SetReadOnly(readOnly bool) error {
	proc, err := s.processor("set read-only")
	if err != nil {
		return err
	}
	s.settings.ReadOnly = readOnly
	proc.SetReadOnly(readOnly)
	return nil
}

// SetSyntaxHighlight toggles syntax highlighting.
func (s *Session) SetSyntaxHighlight(enabled bool) error {
	proc, err := s.processor("set syntax highlight")
	if err != nil {
		return err
	}
	s.settings.SyntaxHighlight = enabled
	proc.SetSyntaxHighlight(enabled)
	return nil
}

// Text

// Text returns the buffer content, or "" when the session is not open.
func (s *Session) Text() string {
	if s.proc == nil {
		return ""
	}
	return s.proc.Text()
}

// Len returns the buffer length in characters.
func (s *Session) Len() (int, error) {
	proc, err := s.processor("len")
	if err != nil {
		return 0, err
	}
	return proc.Len(), nil
}

// SetText replaces the whole content and marks the session clean.
func (s *Session) SetText(text string) error {
	proc, err := s.processor("set text")
	if err != nil {
		return err
	}
	if err := proc.SetText(text); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// ReplaceText replaces [start, end) with text and marks the session dirty.
// The range is normalized, never rejected.
func (s *Session) ReplaceText(start, end int, text string) error {
	proc, err := s.processor("replace text")
	if err != nil {
		return err
	}
	c, err := proc.Replace(start, end, text)
	if err != nil {
		return err
	}
	s.dirty = true
	s.logger.Debug("replaced",
		logging.FieldStart, c.Range.Start,
		logging.FieldEnd, c.Range.End,
		logging.FieldInserted, len(c.NewText),
		logging.FieldLines, proc.LineCount())
	return nil
}

// IsDirty reports whether the content changed since it was last set.
func (s *Session) IsDirty() bool {
	return s.dirty
}

// MarkClean clears the dirty flag, typically after saving.
func (s *Session) MarkClean() {
	s.dirty = false
}

// Snapshot returns an immutable copy of the buffer.
func (s *Session) Snapshot() (*engine.Snapshot, error) {
	proc, err := s.processor("snapshot")
	if err != nil {
		return nil, err
	}
	return proc.Snapshot(), nil
}

// CheckIndex compares the line index against a full rebuild.
func (s *Session) CheckIndex() error {
	proc, err := s.processor("check index")
	if err != nil {
		return err
	}
	return proc.CheckIndex()
}

// Lines

// LineCount returns the number of lines.
func (s *Session) LineCount() (int, error) {
	proc, err := s.processor("line count")
	if err != nil {
		return 0, err
	}
	return proc.LineCount(), nil
}

// LineForIndex returns the line containing the character offset index.
func (s *Session) LineForIndex(index int) (int, error) {
	proc, err := s.processor("line for index")
	if err != nil {
		return 0, err
	}
	return proc.LineForOffset(index), nil
}

// IndexForStartOfLine returns the offset of the first character of line.
func (s *Session) IndexForStartOfLine(line int) (int, error) {
	proc, err := s.processor("index for start of line")
	if err != nil {
		return 0, err
	}
	return proc.LineStartOffset(line)
}

// IndexForEndOfLine returns the offset of line's newline, or the text
// length for the last line.
func (s *Session) IndexForEndOfLine(line int) (int, error) {
	proc, err := s.processor("index for end of line")
	if err != nil {
		return 0, err
	}
	return proc.LineEndOffset(line)
}

// Editing

// Selection returns the current selection.
func (s *Session) Selection() (engine.Selection, error) {
	proc, err := s.processor("selection")
	if err != nil {
		return engine.Selection{}, err
	}
	return proc.Selection(), nil
}

// Insert types text at the selection.
func (s *Session) Insert(text string) error {
	return s.do("insert", func(p Processor) error { return p.Insert(text) })
}

// Cut moves the selection to the clipboard.
func (s *Session) Cut() error {
	return s.do("cut", Processor.Cut)
}

// Copy copies the selection to the clipboard.
func (s *Session) Copy() error {
	return s.do("copy", Processor.Copy)
}

// Paste replaces the selection with the clipboard text.
func (s *Session) Paste() error {
	return s.do("paste", Processor.Paste)
}

// Undo reverts the last undo unit.
func (s *Session) Undo() error {
	return s.do("undo", Processor.Undo)
}

// Redo reapplies the last undone unit.
func (s *Session) Redo() error {
	return s.do("redo", Processor.Redo)
}

// SelectAll selects the whole buffer.
func (s *Session) SelectAll() error {
	return s.do("select all", func(p Processor) error {
		p.SelectAll()
		return nil
	})
}

// SelectLine selects the current line.
func (s *Session) SelectLine() error {
	return s.do("select line", func(p Processor) error {
		p.SelectLine()
		return nil
	})
}

// DeleteLine removes the current line.
func (s *Session) DeleteLine() error {
	return s.do("delete line", Processor.DeleteLine)
}

// DuplicateLine copies the current line below itself.
func (s *Session) DuplicateLine() error {
	return s.do("duplicate line", Processor.DuplicateLine)
}

// GotoLine moves the cursor to the start of line, clamped to the buffer,
// and returns the line reached.
func (s *Session) GotoLine(line int) (int, error) {
	proc, err := s.processor("goto line")
	if err != nil {
		return 0, err
	}
	return proc.GotoLine(line), nil
}

// Find selects the next match of query. ok is false when nothing matches.
func (s *Session) Find(query string, opts engine.FindOptions) (match engine.Range, ok bool, err error) {
	proc, err := s.processor("find")
	if err != nil {
		return engine.Range{}, false, err
	}
	if query == "" {
		return engine.Range{}, false, ErrEmptyQuery
	}
	return proc.Find(query, opts)
}

// ReplaceAll replaces every case-sensitive literal occurrence of query with
// replacement and returns the count. Both must be non-empty.
func (s *Session) ReplaceAll(query, replacement string) (int, error) {
	return s.ReplaceAllWith(query, replacement, engine.FindOptions{MatchCase: true})
}

// ReplaceAllWith is ReplaceAll with explicit matching options.
func (s *Session) ReplaceAllWith(query, replacement string, opts engine.FindOptions) (int, error) {
	proc, err := s.processor("replace all")
	if err != nil {
		return 0, err
	}
	if query == "" || replacement == "" {
		return 0, ErrEmptyQuery
	}
	n, err := proc.ReplaceAll(query, replacement, opts)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("replaced all", logging.FieldCount, n)
	return n, nil
}

func (s *Session) do(op string, fn func(Processor) error) error {
	proc, err := s.processor(op)
	if err != nil {
		return err
	}
	if err := fn(proc); err != nil {
		if !errors.Is(err, engine.ErrNothingToUndo) && !errors.Is(err, engine.ErrNothingToRedo) {
			s.logger.Debug("operation failed", logging.FieldOp, op, logging.FieldError, err)
		}
		return err
	}
	return nil
}
