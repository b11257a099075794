// Package engine bundles the text-editing engine: the gap-buffer store, the
// editor aggregate on top of it, and the position types they share. The
// subpackages carry the implementations; this package re-exports what hosts
// normally touch.
package engine

import (
	"github.com/vellumkit/vellum/internal/engine/editor"
	"github.com/vellumkit/vellum/internal/engine/gapbuf"
	"github.com/vellumkit/vellum/internal/highlight"
)

// Re-export commonly used types for convenience.
type (
	// Buffer is the gap-buffer character store.
	Buffer = gapbuf.Buffer

	// Point is a 0-indexed row/column position over runes.
	Point = gapbuf.Point

	// Editor owns one open document.
	Editor = editor.Editor

	// Option configures a new Editor.
	Option = editor.Option

	// Selection is an ordered document range.
	Selection = editor.Selection

	// StatusInfo is a snapshot of editor state for status bars and sessions.
	StatusInfo = editor.StatusInfo
)

// New creates an editor holding text.
func New(text string, opts ...Option) *Editor {
	return editor.New(text, opts...)
}

// NewFromLines creates an editor holding the given lines.
func NewFromLines(lines []string, opts ...Option) *Editor {
	return editor.NewFromLines(lines, opts...)
}

// NewBuffer creates an empty gap buffer.
func NewBuffer() *Buffer {
	return gapbuf.New()
}

// BufferFromText creates a gap buffer holding text.
func BufferFromText(text string) *Buffer {
	return gapbuf.FromText(text)
}

// WithPath sets the document's file path and detects its language.
func WithPath(path string) Option {
	return editor.WithPath(path)
}

// WithLineHeight sets the pixel height of one rendered line.
func WithLineHeight(h float64) Option {
	return editor.WithLineHeight(h)
}

// WithScrollMargin sets the context lines kept around the cursor.
func WithScrollMargin(margin int) Option {
	return editor.WithScrollMargin(margin)
}

// WithThemeRegistry shares a theme registry across editors.
func WithThemeRegistry(r *highlight.ThemeRegistry) Option {
	return editor.WithThemeRegistry(r)
}

// WithLexerRegistry shares a lexer registry across editors.
func WithLexerRegistry(r *highlight.Registry) Option {
	return editor.WithLexerRegistry(r)
}
