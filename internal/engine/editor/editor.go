package editor

import (
	"github.com/google/uuid"

	"github.com/vellumkit/vellum/internal/engine/gapbuf"
	"github.com/vellumkit/vellum/internal/highlight"
)

// Default geometry used until the host reports real viewport metrics.
const (
	defaultLineHeight     = 20.0
	defaultViewportHeight = 400.0
	defaultScrollMargin   = 3
)

// Editor owns one open document: the gap buffer, the cursor and selection,
// the scroll state, and the document's highlight provider. An Editor is used
// from a single goroutine.
type Editor struct {
	id  string
	buf *gapbuf.Buffer

	cursor  gapbuf.Point
	anchor  *gapbuf.Point
	goalCol int

	scrollRow      int
	viewportHeight float64
	lineHeight     float64
	margin         int

	path     string
	language string
	dirty    bool

	themes *highlight.ThemeRegistry
	lexers *highlight.Registry
	hl     *highlight.Provider
}

// Option configures an Editor.
type Option func(*Editor)

// WithThemeRegistry sets the theme registry shared with the host.
func WithThemeRegistry(r *highlight.ThemeRegistry) Option {
	return func(e *Editor) {
		if r != nil {
			e.themes = r
		}
	}
}

// WithLexerRegistry sets the lexer registry shared with the host.
func WithLexerRegistry(r *highlight.Registry) Option {
	return func(e *Editor) {
		if r != nil {
			e.lexers = r
		}
	}
}

// WithLineHeight sets the pixel height of one rendered line.
func WithLineHeight(h float64) Option {
	return func(e *Editor) {
		if h > 0 {
			e.lineHeight = h
		}
	}
}

// WithScrollMargin sets the number of context lines kept around the cursor
// while scrolling.
func WithScrollMargin(margin int) Option {
	return func(e *Editor) {
		if margin >= 0 {
			e.margin = margin
		}
	}
}

// WithPath sets the file path and detects the language from it.
func WithPath(path string) Option {
	return func(e *Editor) {
		e.path = path
	}
}

// New creates an editor holding text.
func New(text string, opts ...Option) *Editor {
	e := &Editor{
		id:             uuid.NewString(),
		buf:            gapbuf.FromText(text),
		goalCol:        -1,
		viewportHeight: defaultViewportHeight,
		lineHeight:     defaultLineHeight,
		margin:         defaultScrollMargin,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.themes == nil {
		e.themes = highlight.NewThemeRegistry()
	}
	if e.lexers == nil {
		e.lexers = highlight.NewDefaultRegistry()
	}

	e.hl = highlight.NewProvider(e.themes.Current())
	e.hl.SetSource(func(row int) (string, bool) {
		return e.buf.Line(row)
	})
	if e.language == "" {
		first, _ := e.buf.Line(0)
		e.language = e.lexers.DetectLanguage(e.path, first)
	}
	e.syncLexer()
	return e
}

// NewFromLines creates an editor holding the given lines.
func NewFromLines(lines []string, opts ...Option) *Editor {
	e := New("", opts...)
	e.ReplaceBuffer(lines)
	e.dirty = false
	return e
}

// ID returns the editor's unique identifier.
func (e *Editor) ID() string {
	return e.id
}

// Buffer returns the underlying gap buffer.
func (e *Editor) Buffer() *gapbuf.Buffer {
	return e.buf
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() gapbuf.Point {
	return e.cursor
}

// Text returns the whole document.
func (e *Editor) Text() string {
	return e.buf.String()
}

// Lines returns the document split into lines.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// Line returns one line of the document.
func (e *Editor) Line(row int) (string, bool) {
	return e.buf.Line(row)
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// LineLen returns the rune length of a line, 0 when out of range.
func (e *Editor) LineLen(row int) int {
	return e.buf.LineLen(row)
}

// Dirty reports whether the document has unsaved edits.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (e *Editor) MarkSaved() {
	e.dirty = false
}

// Path returns the file path, which may be empty.
func (e *Editor) Path() string {
	return e.path
}

// SetPath sets the file path and re-detects the language when none was set
// explicitly.
func (e *Editor) SetPath(path string) {
	e.path = path
	first, _ := e.buf.Line(0)
	if lang := e.lexers.DetectLanguage(path, first); lang != "" {
		e.language = lang
		e.syncLexer()
	}
}

// Language returns the active language name, which may be empty.
func (e *Editor) Language() string {
	return e.language
}

// SetLanguage switches the document language. An unregistered language keeps
// the name but highlights as plain text.
func (e *Editor) SetLanguage(name string) {
	e.language = name
	e.syncLexer()
}

// syncLexer points the provider at the registered lexer for the current
// language, or at none.
func (e *Editor) syncLexer() {
	if lx, ok := e.lexers.ByLanguage(e.language); ok {
		e.hl.SetLexer(lx)
		return
	}
	e.hl.SetLexer(nil)
}

// SetTheme activates a registered theme, reporting whether it exists. The
// provider keeps its tokens and recomputes only styling.
func (e *Editor) SetTheme(name string) bool {
	if !e.themes.SetCurrent(name) {
		return false
	}
	e.hl.SetTheme(e.themes.Current())
	return true
}

// Theme returns the active theme.
func (e *Editor) Theme() *highlight.Theme {
	return e.themes.Current()
}

// ThemeName returns the active theme's name, or "" without one.
func (e *Editor) ThemeName() string {
	if t := e.themes.Current(); t != nil {
		return t.Name
	}
	return ""
}

// RunsForLine returns the styled runs for a row.
func (e *Editor) RunsForLine(row int) []highlight.Run {
	return e.hl.RunsForLine(row)
}

// Highlight returns the document's highlight provider.
func (e *Editor) Highlight() *highlight.Provider {
	return e.hl
}

// SetText replaces the whole document, resetting cursor, selection, scroll,
// and all cached highlight state.
func (e *Editor) SetText(text string) {
	e.buf = gapbuf.FromText(text)
	e.cursor = gapbuf.Point{}
	e.anchor = nil
	e.goalCol = -1
	e.scrollRow = 0
	e.dirty = true
	e.hl.Reset()
}

// ReplaceBuffer replaces the whole document with the given lines.
func (e *Editor) ReplaceBuffer(lines []string) {
	e.buf = gapbuf.FromLines(lines)
	e.cursor = gapbuf.Point{}
	e.anchor = nil
	e.goalCol = -1
	e.scrollRow = 0
	e.dirty = true
	e.hl.Reset()
}
