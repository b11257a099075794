// Package style provides the shared color and text-style types used by the
// highlighter and the terminal front end.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Attribute represents text attributes (bold, italic, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrReverse                 // Reverse video (swap fg/bg)
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors. The zero value is
// the terminal's default color, so an unset Color field reads as default
// rather than black.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// set records that the color came from a constructor; a zero Color
	// is the terminal's default.
	set bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{}

// Common colors.
var (
	ColorBlack = Color{set: true}
	ColorWhite = Color{R: 255, G: 255, B: 255, set: true}
	ColorGray  = Color{R: 128, G: 128, B: 128, set: true}
)

// RGB creates a true color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Indexed creates an indexed palette color.
func Indexed(index uint8) Color {
	return Color{R: index, Indexed: true, set: true}
}

// FromHex creates a color from a "#rgb" or "#rrggbb" hex string.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), set: true}, nil
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.set != other.set {
		return false
	}
	if !c.set {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Hex returns the hex representation of a true color.
func (c Color) Hex() string {
	if c.Indexed || c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// colorful converts to a go-colorful color for color-space math.
func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// fromColorful converts back, clamping to the RGB cube.
func fromColorful(cc colorful.Color) Color {
	cc = cc.Clamped()
	return Color{
		R:   uint8(cc.R*255.0 + 0.5),
		G:   uint8(cc.G*255.0 + 0.5),
		B:   uint8(cc.B*255.0 + 0.5),
		set: true,
	}
}

// Lighten returns the color with its HSL lightness raised toward white.
// Amount is in [0, 1]. Indexed and default colors pass through unchanged.
func (c Color) Lighten(amount float64) Color {
	if c.Indexed || c.IsDefault() {
		return c
	}
	h, s, l := c.colorful().Hsl()
	l += (1 - l) * amount
	return fromColorful(colorful.Hsl(h, s, l))
}

// Darken returns the color with its HSL lightness scaled down.
// Amount is in [0, 1]: Darken(0.05) keeps 95% of the lightness.
func (c Color) Darken(amount float64) Color {
	if c.Indexed || c.IsDefault() {
		return c
	}
	h, s, l := c.colorful().Hsl()
	l *= 1 - amount
	return fromColorful(colorful.Hsl(h, s, l))
}

// Blend mixes the color toward other in RGB space.
// Amount 0 yields c, amount 1 yields other.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Indexed || c.IsDefault() || other.Indexed || other.IsDefault() {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorful().BlendRgb(other.colorful(), amount))
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a new style with the dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Reverse returns a new style with the reverse video attribute added.
func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

// Strikethrough returns a new style with the strikethrough attribute added.
func (s Style) Strikethrough() Style {
	s.Attributes |= AttrStrikethrough
	return s
}

// Merge combines two styles. Non-default colors in other win; attributes union.
func (s Style) Merge(other Style) Style {
	result := s

	if !other.Foreground.IsDefault() {
		result.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		result.Background = other.Background
	}
	result.Attributes |= other.Attributes

	return result
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		s.Attributes == AttrNone
}

// Invert returns a style with foreground and background swapped.
func (s Style) Invert() Style {
	return Style{
		Foreground: s.Background,
		Background: s.Foreground,
		Attributes: s.Attributes,
	}
}
