package editor

// ScrollRow returns the topmost visible row.
func (e *Editor) ScrollRow() int {
	return e.scrollRow
}

// SetScrollRow scrolls so the given row is topmost, clamped to the document.
func (e *Editor) SetScrollRow(row int) {
	e.setScroll(row)
}

// ScrollBy scrolls by a signed number of rows.
func (e *Editor) ScrollBy(delta int) {
	e.setScroll(e.scrollRow + delta)
}

// SetViewportHeight records the viewport height in pixels, as reported by
// the host each frame.
func (e *Editor) SetViewportHeight(px float64) {
	if px > 0 {
		e.viewportHeight = px
	}
}

// SetLineHeight records the rendered line height in pixels.
func (e *Editor) SetLineHeight(px float64) {
	if px > 0 {
		e.lineHeight = px
	}
}

// LineHeight returns the rendered line height in pixels.
func (e *Editor) LineHeight() float64 {
	return e.lineHeight
}

// VisibleRowRange returns the half-open row range [start, end) currently on
// screen, using the stored viewport height.
func (e *Editor) VisibleRowRange() (start, end int) {
	return e.VisibleRowRangeFor(e.viewportHeight)
}

// VisibleRowRangeFor returns the visible row range for an explicit viewport
// height in pixels.
func (e *Editor) VisibleRowRangeFor(heightPx float64) (start, end int) {
	start = e.scrollRow
	end = min(start+e.visibleLines(heightPx), e.buf.LineCount())
	return start, end
}

// visibleLines returns how many full lines fit in a viewport, at least one.
func (e *Editor) visibleLines(heightPx float64) int {
	n := int(heightPx / e.lineHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// EnsureCursorVisible scrolls, if needed, so the cursor keeps its margin of
// context lines inside the viewport.
func (e *Editor) EnsureCursorVisible() {
	e.ensureCursorVisible()
}

// EnsureCursorVisibleFor records the viewport height reported for this frame
// and then scrolls the cursor into view.
func (e *Editor) EnsureCursorVisibleFor(heightPx float64) {
	e.SetViewportHeight(heightPx)
	e.ensureCursorVisible()
}

func (e *Editor) ensureCursorVisible() {
	visible := e.visibleLines(e.viewportHeight)
	bottom := e.scrollRow + visible - 1
	row := e.cursor.Row

	if row < e.scrollRow+e.margin {
		e.setScroll(row - e.margin)
	} else if row > bottom-e.margin {
		e.setScroll(row - visible + 1 + e.margin)
	}
}

// setScroll clamps and applies a new scroll row. On a change the highlighter
// is warmed through the new bottom of the visible range, so multi-line
// constructs stay correct when lines are then fetched out of order.
func (e *Editor) setScroll(row int) {
	if row < 0 {
		row = 0
	}
	if last := e.buf.LineCount() - 1; row > last {
		row = last
	}
	if row == e.scrollRow {
		return
	}
	e.scrollRow = row

	_, end := e.VisibleRowRange()
	e.hl.EnsureStateUpTo(end - 1)
}
