package editor

import (
	"github.com/vellumkit/vellum/internal/engine/gapbuf"
)

// Selection is an ordered range of the document. Start never follows End.
type Selection struct {
	Start gapbuf.Point
	End   gapbuf.Point
}

// IsEmpty reports whether the selection covers nothing.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// ContainsRow reports whether the selection touches a row.
func (s Selection) ContainsRow(row int) bool {
	return row >= s.Start.Row && row <= s.End.Row
}

// ColumnSpan returns the selected column range [from, to) on a row of the
// given rune length. Rows strictly inside the selection span the whole line.
func (s Selection) ColumnSpan(row, lineLen int) (from, to int, ok bool) {
	if !s.ContainsRow(row) {
		return 0, 0, false
	}
	from = 0
	to = lineLen
	if row == s.Start.Row {
		from = s.Start.Col
	}
	if row == s.End.Row {
		to = s.End.Col
	}
	if from > to {
		return 0, 0, false
	}
	return from, to, true
}

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.anchor != nil && *e.anchor != e.cursor
}

// Selection returns the active selection ordered by (row, col), regardless
// of which end the anchor is.
func (e *Editor) Selection() (Selection, bool) {
	if !e.HasSelection() {
		return Selection{}, false
	}
	anchor := *e.anchor
	if anchor.Before(e.cursor) {
		return Selection{Start: anchor, End: e.cursor}, true
	}
	return Selection{Start: e.cursor, End: anchor}, true
}

// SelectionRange returns the ordered endpoints of the active selection.
func (e *Editor) SelectionRange() (start, end gapbuf.Point, ok bool) {
	sel, ok := e.Selection()
	if !ok {
		return gapbuf.Point{}, gapbuf.Point{}, false
	}
	return sel.Start, sel.End, true
}

// SelectAll selects the whole document, cursor at the end. The viewport does
// not move.
func (e *Editor) SelectAll() {
	anchor := gapbuf.Point{}
	e.anchor = &anchor
	e.cursor = e.buf.PointForOffset(e.buf.Len())
	e.goalCol = -1
}

// ClearSelection drops the selection anchor and the goal column. The cursor
// stays where it is.
func (e *Editor) ClearSelection() {
	e.anchor = nil
	e.goalCol = -1
}

// SelectedText returns the selected text, or "" without a selection. Out of
// range offsets yield "" rather than panicking.
func (e *Editor) SelectedText() string {
	sel, ok := e.Selection()
	if !ok {
		return ""
	}

	start := e.buf.OffsetForPoint(sel.Start)
	end := e.buf.OffsetForPoint(sel.End)
	if start >= end {
		return ""
	}
	runes := e.buf.Runes()
	if start < 0 || end > len(runes) {
		return ""
	}
	return string(runes[start:end])
}
