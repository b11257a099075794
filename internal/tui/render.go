package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/vellumkit/vellum/internal/engine/editor"
	"github.com/vellumkit/vellum/internal/highlight"
	"github.com/vellumkit/vellum/internal/style"
)

// Renderer paints an editor into a tcell screen: gutter, styled text,
// selection, active-line highlight, and the status line.
type Renderer struct {
	tabWidth int
}

// NewRenderer creates a renderer. tabWidth is the column span of one tab.
func NewRenderer(tabWidth int) *Renderer {
	if tabWidth < 1 {
		tabWidth = 4
	}
	return &Renderer{tabWidth: tabWidth}
}

// Render paints the whole frame and positions the terminal cursor. The
// bottom row is the status line; the rows above it show the visible range.
func (r *Renderer) Render(s tcell.Screen, ed *editor.Editor) {
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		return
	}

	textRows := height - 1
	if textRows < 1 {
		textRows = height
	}

	theme := ed.Theme()
	rowBg := toTcellColor(theme.BackgroundColor())
	base := tcell.StyleDefault.
		Foreground(toTcellColor(theme.ForegroundColor())).
		Background(rowBg)

	gutterW := gutterWidth(ed.LineCount())
	start, end := ed.VisibleRowRange()

	cursorX, cursorY := -1, -1
	for y := 0; y < textRows; y++ {
		row := start + y
		fillRow(s, y, 0, width, base)
		if row >= end {
			continue
		}
		r.paintGutter(s, ed, row, y, gutterW)
		if cx := r.paintLine(s, ed, row, y, gutterW, width); cx >= 0 {
			cursorX, cursorY = cx, y
		}
	}

	if height > 1 {
		r.paintStatus(s, ed, height-1, width)
	}

	if cursorX >= 0 {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
}

// gutterWidth returns the gutter span: the widest line number plus one space
// of padding on each side.
func gutterWidth(lineCount int) int {
	return len(strconv.Itoa(lineCount)) + 2
}

// paintGutter draws a right-aligned line number.
func (r *Renderer) paintGutter(s tcell.Screen, ed *editor.Editor, row, y, gutterW int) {
	theme := ed.Theme()
	st := tcell.StyleDefault.
		Foreground(toTcellColor(theme.ForegroundColor())).
		Background(toTcellColor(theme.GutterColor())).
		Dim(true)
	if row == ed.Cursor().Row {
		st = st.Dim(false)
	}

	num := strconv.Itoa(row + 1)
	fillRow(s, y, 0, gutterW, st)
	x := gutterW - 1 - len(num)
	for _, ch := range num {
		s.SetContent(x, y, ch, nil, st)
		x++
	}
}

// paintLine draws one buffer line from its styled runs. It returns the
// cursor's screen column when the cursor sits on this row, -1 otherwise.
func (r *Renderer) paintLine(s tcell.Screen, ed *editor.Editor, row, y, x0, width int) int {
	text, ok := ed.Line(row)
	if !ok {
		return -1
	}

	theme := ed.Theme()
	cursor := ed.Cursor()
	onCursorRow := row == cursor.Row

	sel, hasSel := ed.Selection()
	selFrom, selTo, selOnRow := 0, 0, false
	if hasSel {
		selFrom, selTo, selOnRow = sel.ColumnSpan(row, ed.LineLen(row))
	}

	rowBg := theme.BackgroundColor()
	if onCursorRow && !hasSel {
		rowBg = theme.LineHighlightColor()
		fillRow(s, y, x0, width, tcell.StyleDefault.Background(toTcellColor(rowBg)))
	}

	styles := perRuneStyles(text, ed.RunsForLine(row))

	cursorX := -1
	runeIdx := 0
	x := x0
	g := uniseg.NewGraphemes(text)
	for g.Next() && x < width {
		if onCursorRow && runeIdx == cursor.Col {
			cursorX = x
		}

		runes := g.Runes()
		st := theme.DefaultTextStyle()
		if runeIdx < len(styles) {
			st = styles[runeIdx]
		}
		if st.Background.IsDefault() {
			st.Background = rowBg
		}
		if selOnRow && runeIdx >= selFrom && runeIdx < selTo {
			st.Background = theme.SelectionColor()
		}
		ts := toTcellStyle(st)

		if runes[0] == '\t' {
			stop := x0 + ((x-x0)/r.tabWidth+1)*r.tabWidth
			for ; x < stop && x < width; x++ {
				s.SetContent(x, y, ' ', nil, ts)
			}
		} else {
			w := runewidth.StringWidth(g.Str())
			if w < 1 {
				w = 1
			}
			s.SetContent(x, y, runes[0], runes[1:], ts)
			x += w
		}
		runeIdx += len(runes)
	}

	if onCursorRow && cursorX < 0 && cursor.Col >= runeIdx {
		cursorX = x
	}

	// A selection reaching past this line's end highlights one trailing
	// cell, marking the selected newline.
	if selOnRow && selTo >= ed.LineLen(row) && row < sel.End.Row && x < width {
		s.SetContent(x, y, ' ', nil,
			tcell.StyleDefault.Background(toTcellColor(theme.SelectionColor())))
	}

	return cursorX
}

// paintStatus draws the bottom status line: path, dirty marker, language,
// theme, cursor position, and the active selection's size.
func (r *Renderer) paintStatus(s tcell.Screen, ed *editor.Editor, y, width int) {
	theme := ed.Theme()
	st := tcell.StyleDefault.
		Foreground(toTcellColor(theme.ForegroundColor())).
		Background(toTcellColor(theme.LineHighlightColor()))

	info := ed.Status()
	name := info.Path
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if info.Dirty {
		dirty = " [+]"
	}
	left := fmt.Sprintf(" %s%s", name, dirty)
	if info.Language != "" {
		left += "  " + info.Language
	}
	if info.Theme != "" {
		left += " | " + info.Theme
	}
	right := fmt.Sprintf("%d:%d ", info.Cursor.Row+1, info.Cursor.Col+1)
	if meta := info.MetaLine(); meta != "" {
		right = fmt.Sprintf("%d:%d  %s ", info.Cursor.Row+1, info.Cursor.Col+1, meta)
	}

	fillRow(s, y, 0, width, st)
	drawText(s, 0, y, width, left, st)

	if pad := width - runewidth.StringWidth(right); pad > runewidth.StringWidth(left) {
		drawText(s, pad, y, width, right, st)
	}
}

// perRuneStyles expands a line's runs into one style per rune.
func perRuneStyles(text string, runs []highlight.Run) []style.Style {
	styles := make([]style.Style, 0, len(text))
	for _, run := range runs {
		for i := 0; i < run.Length; i++ {
			styles = append(styles, run.Style)
		}
	}
	return styles
}

// fillRow paints spaces over [x0, width) of one row.
func fillRow(s tcell.Screen, y, x0, width int, st tcell.Style) {
	for x := x0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, st)
	}
}

// drawText draws a string, clipping at the right edge. Wide runes advance
// by their display width.
func drawText(s tcell.Screen, x, y, width int, text string, st tcell.Style) {
	g := uniseg.NewGraphemes(strings.ReplaceAll(text, "\n", " "))
	for g.Next() && x < width {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], st)
		x += runewidth.StringWidth(g.Str())
	}
}
