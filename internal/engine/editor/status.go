package editor

import (
	"fmt"

	"github.com/vellumkit/vellum/internal/engine/gapbuf"
)

// StatusInfo is a snapshot of the editor state for status bars and session
// persistence.
type StatusInfo struct {
	ID        string
	Path      string
	Language  string
	Theme     string
	Cursor    gapbuf.Point
	ScrollRow int
	LineCount int
	CharCount int
	Dirty     bool

	// SelectedLines is the number of line boundaries the active selection
	// crosses; SelectedChars is its rune count including newlines. Both are
	// zero without a selection.
	SelectedLines int
	SelectedChars int
}

// MetaLine formats the active-selection stats the way the status bar shows
// them: "(N LN, M CHAR)" when the selection crosses lines, "(N chars)"
// within one line, and "" without a selection.
func (s StatusInfo) MetaLine() string {
	if s.SelectedChars == 0 {
		return ""
	}
	if s.SelectedLines > 0 {
		return fmt.Sprintf("(%d LN, %d CHAR)", s.SelectedLines, s.SelectedChars)
	}
	return fmt.Sprintf("(%d chars)", s.SelectedChars)
}

// Status returns a snapshot of the editor state.
func (e *Editor) Status() StatusInfo {
	info := StatusInfo{
		ID:        e.id,
		Path:      e.path,
		Language:  e.language,
		Theme:     e.ThemeName(),
		Cursor:    e.cursor,
		ScrollRow: e.scrollRow,
		LineCount: e.buf.LineCount(),
		CharCount: e.buf.Len(),
		Dirty:     e.dirty,
	}
	if sel, ok := e.Selection(); ok {
		info.SelectedLines = sel.End.Row - sel.Start.Row
		info.SelectedChars = e.buf.OffsetForPoint(sel.End) - e.buf.OffsetForPoint(sel.Start)
	}
	return info
}
