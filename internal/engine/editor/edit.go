package editor

import (
	"unicode/utf8"

	"github.com/vellumkit/vellum/internal/engine/gapbuf"
)

// InsertRune inserts one rune at the cursor, replacing any active selection.
func (e *Editor) InsertRune(ch rune) {
	e.DeleteSelection()
	e.anchor = nil

	e.buf.InsertRune(e.buf.OffsetForPoint(e.cursor), ch)
	e.cursor.Col++
	e.goalCol = -1
	e.dirty = true
	e.hl.InvalidateFrom(e.cursor.Row)
}

// InsertNewline splits the current line at the cursor, replacing any active
// selection.
func (e *Editor) InsertNewline() {
	e.DeleteSelection()
	e.anchor = nil

	row := e.cursor.Row
	e.buf.InsertRune(e.buf.OffsetForPoint(e.cursor), '\n')
	e.cursor = gapbuf.Point{Row: row + 1, Col: 0}
	e.goalCol = -1
	e.dirty = true
	e.hl.InvalidateFrom(row)
	e.ensureCursorVisible()
}

// InsertText inserts a string, which may span lines, at the cursor. Any
// active selection is replaced.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	e.DeleteSelection()
	e.anchor = nil

	row := e.cursor.Row
	offset := e.buf.OffsetForPoint(e.cursor)
	e.buf.Insert(offset, text)
	e.cursor = e.buf.PointForOffset(offset + utf8.RuneCountInString(text))
	e.goalCol = -1
	e.dirty = true
	e.hl.InvalidateFrom(row)
	e.ensureCursorVisible()
}

// Backspace removes the rune before the cursor, or the active selection.
// Backspace at column 0 merges the line into the previous one, leaving the
// cursor at the merge point.
func (e *Editor) Backspace() {
	if e.DeleteSelection() {
		return
	}
	e.anchor = nil

	cur := e.cursor
	if cur.Col == 0 {
		if cur.Row == 0 {
			return
		}
		prevLen := e.buf.LineLen(cur.Row - 1)
		e.buf.BackspaceAt(cur.Row, cur.Col)
		e.cursor = gapbuf.Point{Row: cur.Row - 1, Col: prevLen}
		e.hl.InvalidateFrom(cur.Row - 1)
	} else {
		e.buf.BackspaceAt(cur.Row, cur.Col)
		e.cursor.Col--
		e.hl.InvalidateFrom(cur.Row)
	}
	e.goalCol = -1
	e.dirty = true
	e.ensureCursorVisible()
}

// Delete removes the rune at the cursor, or the active selection. Delete at
// the end of a line merges the next line up; the cursor does not move.
func (e *Editor) Delete() {
	if e.DeleteSelection() {
		return
	}
	e.anchor = nil

	cur := e.cursor
	if cur.Col >= e.buf.LineLen(cur.Row) && cur.Row >= e.buf.LineCount()-1 {
		return
	}
	e.buf.DeleteAt(cur.Row, cur.Col)
	e.goalCol = -1
	e.dirty = true
	e.hl.InvalidateFrom(cur.Row)
	e.ensureCursorVisible()
}

// DeleteSelection removes the selected range, leaving the cursor at the
// selection start. Returns false without an active selection.
func (e *Editor) DeleteSelection() bool {
	sel, ok := e.Selection()
	if !ok {
		return false
	}

	start := e.buf.OffsetForPoint(sel.Start)
	end := e.buf.OffsetForPoint(sel.End)
	e.buf.DeleteRange(start, end)

	e.cursor = sel.Start
	e.anchor = nil
	e.goalCol = -1
	e.dirty = true
	e.hl.InvalidateFrom(sel.Start.Row)
	e.ensureCursorVisible()
	return true
}

// ReplaceLine swaps the content of one line, reporting whether the row
// exists. The cursor is clamped afterward.
func (e *Editor) ReplaceLine(row int, text string) bool {
	if row < 0 || row >= e.buf.LineCount() {
		return false
	}

	start := e.buf.OffsetForPoint(gapbuf.Point{Row: row})
	e.buf.DeleteRange(start, start+e.buf.LineLen(row))
	e.buf.Insert(start, text)

	e.cursor = e.clampPoint(e.cursor)
	if e.anchor != nil {
		anchor := e.clampPoint(*e.anchor)
		e.anchor = &anchor
	}
	e.dirty = true
	e.hl.InvalidateFrom(row)
	return true
}
