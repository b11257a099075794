package editor

import (
	"github.com/vellumkit/vellum/internal/engine/gapbuf"
)

// SetCursorPosition places the cursor, clamping the row to the document and
// the column to its line. The goal column is cleared; an active selection
// anchor stays, so callers can extend a selection by moving the cursor.
func (e *Editor) SetCursorPosition(row, col int) {
	e.cursor = e.clampPoint(gapbuf.Point{Row: row, Col: col})
	e.goalCol = -1
	e.ensureCursorVisible()
}

// beginMove applies the shared selection rule for cursor motion: shift with
// no anchor starts a selection at the pre-move position, no shift drops any
// selection.
func (e *Editor) beginMove(shift bool) {
	if shift {
		if e.anchor == nil {
			anchor := e.cursor
			e.anchor = &anchor
		}
		return
	}
	e.anchor = nil
}

// MoveLeft steps one column left, wrapping to the end of the previous line.
// No-op at the document start.
func (e *Editor) MoveLeft(shift bool) {
	e.beginMove(shift)
	e.goalCol = -1
	switch {
	case e.cursor.Col > 0:
		e.cursor.Col--
	case e.cursor.Row > 0:
		e.cursor.Row--
		e.cursor.Col = e.buf.LineLen(e.cursor.Row)
	}
	e.ensureCursorVisible()
}

// MoveRight steps one column right, wrapping to the start of the next line.
// No-op at the document end.
func (e *Editor) MoveRight(shift bool) {
	e.beginMove(shift)
	e.goalCol = -1
	switch {
	case e.cursor.Col < e.buf.LineLen(e.cursor.Row):
		e.cursor.Col++
	case e.cursor.Row < e.buf.LineCount()-1:
		e.cursor.Row++
		e.cursor.Col = 0
	}
	e.ensureCursorVisible()
}

// MoveUp moves one row up. The first vertical move captures the current
// column as the goal column; shorter lines clamp the cursor but the goal is
// restored on a long enough line.
func (e *Editor) MoveUp(shift bool) {
	e.beginMove(shift)
	if e.goalCol < 0 {
		e.goalCol = e.cursor.Col
	}
	if e.cursor.Row > 0 {
		e.cursor.Row--
		e.cursor.Col = min(e.goalCol, e.buf.LineLen(e.cursor.Row))
	}
	e.ensureCursorVisible()
}

// MoveDown moves one row down with the same goal-column rule as MoveUp.
func (e *Editor) MoveDown(shift bool) {
	e.beginMove(shift)
	if e.goalCol < 0 {
		e.goalCol = e.cursor.Col
	}
	if e.cursor.Row < e.buf.LineCount()-1 {
		e.cursor.Row++
		e.cursor.Col = min(e.goalCol, e.buf.LineLen(e.cursor.Row))
	}
	e.ensureCursorVisible()
}

// MoveToLineStart places the cursor at column 0 of the current row.
func (e *Editor) MoveToLineStart(shift bool) {
	e.beginMove(shift)
	e.goalCol = -1
	e.cursor.Col = 0
	e.ensureCursorVisible()
}

// MoveToLineEnd places the cursor after the last rune of the current row.
func (e *Editor) MoveToLineEnd(shift bool) {
	e.beginMove(shift)
	e.goalCol = -1
	e.cursor.Col = e.buf.LineLen(e.cursor.Row)
	e.ensureCursorVisible()
}

// clampPoint clamps a point to a valid cursor position.
func (e *Editor) clampPoint(p gapbuf.Point) gapbuf.Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if last := e.buf.LineCount() - 1; p.Row > last {
		p.Row = last
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if lineLen := e.buf.LineLen(p.Row); p.Col > lineLen {
		p.Col = lineLen
	}
	return p
}
