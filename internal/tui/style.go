package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vellumkit/vellum/internal/style"
)

// toTcellColor converts an engine color to a tcell color. Default maps to
// the terminal's own color.
func toTcellColor(c style.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// toTcellStyle converts an engine style to a tcell style.
func toTcellStyle(s style.Style) tcell.Style {
	ts := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		ts = ts.Foreground(toTcellColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		ts = ts.Background(toTcellColor(s.Background))
	}

	if s.Attributes.Has(style.AttrBold) {
		ts = ts.Bold(true)
	}
	if s.Attributes.Has(style.AttrDim) {
		ts = ts.Dim(true)
	}
	if s.Attributes.Has(style.AttrItalic) {
		ts = ts.Italic(true)
	}
	if s.Attributes.Has(style.AttrUnderline) {
		ts = ts.Underline(true)
	}
	if s.Attributes.Has(style.AttrReverse) {
		ts = ts.Reverse(true)
	}
	if s.Attributes.Has(style.AttrStrikethrough) {
		ts = ts.StrikeThrough(true)
	}

	return ts
}
