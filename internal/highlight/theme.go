package highlight

import (
	"sort"

	"github.com/vellumkit/vellum/internal/style"
)

// Fallback colors used when no theme is active or a theme omits a field.
var (
	fallbackBackground    = style.RGB(0x1e, 0x1e, 0x1e)
	fallbackForeground    = style.RGB(0xcc, 0xcc, 0xcc)
	fallbackSelection     = style.RGB(0x3e, 0x44, 0x51)
	fallbackLineHighlight = style.RGB(0x2a, 0x2a, 0x2a)
)

// Theme defines editor chrome colors and per-token styles.
type Theme struct {
	// Name identifies the theme in the registry and in config files.
	Name string

	Background    style.Color
	Foreground    style.Color
	Selection     style.Color
	Cursor        style.Color
	LineHighlight style.Color
	Gutter        style.Color

	// TokenStyles maps token types to styles.
	TokenStyles map[TokenType]style.Style

	// ScopeStyles maps raw scope strings to styles, for scopes that do not
	// resolve to a built-in token type.
	ScopeStyles map[string]style.Style
}

// BackgroundColor returns the background, falling back when the theme is nil
// or leaves it unset.
func (t *Theme) BackgroundColor() style.Color {
	if t == nil || t.Background.IsDefault() {
		return fallbackBackground
	}
	return t.Background
}

// ForegroundColor returns the default text color.
func (t *Theme) ForegroundColor() style.Color {
	if t == nil || t.Foreground.IsDefault() {
		return fallbackForeground
	}
	return t.Foreground
}

// SelectionColor returns the selection highlight color.
func (t *Theme) SelectionColor() style.Color {
	if t == nil || t.Selection.IsDefault() {
		return fallbackSelection
	}
	return t.Selection
}

// CursorColor returns the cursor color.
func (t *Theme) CursorColor() style.Color {
	if t == nil || t.Cursor.IsDefault() {
		return t.ForegroundColor()
	}
	return t.Cursor
}

// LineHighlightColor returns the current-line background.
func (t *Theme) LineHighlightColor() style.Color {
	if t == nil || t.LineHighlight.IsDefault() {
		return fallbackLineHighlight
	}
	return t.LineHighlight
}

// GutterColor returns the gutter background. When unset it is derived from
// the editor background, slightly darkened.
func (t *Theme) GutterColor() style.Color {
	if t != nil && !t.Gutter.IsDefault() {
		return t.Gutter
	}
	return t.BackgroundColor().Darken(0.05)
}

// DefaultTextStyle returns the style for untokenized text.
func (t *Theme) DefaultTextStyle() style.Style {
	return style.Style{Foreground: t.ForegroundColor(), Background: style.ColorDefault}
}

// StyleForToken returns the style for a token type, falling back to the
// default text style.
func (t *Theme) StyleForToken(token TokenType) style.Style {
	if t != nil {
		if s, ok := t.TokenStyles[token]; ok {
			return s
		}
	}
	return t.DefaultTextStyle()
}

// StyleForScope returns the style for a scope string. Exact scope entries win,
// then the token type the scope resolves to, then parent scopes.
func (t *Theme) StyleForScope(scope string) style.Style {
	if t == nil {
		return t.DefaultTextStyle()
	}
	if s, ok := t.ScopeStyles[scope]; ok {
		return s
	}
	if token := TokenTypeFromString(scope); token != TokenNone {
		if s, ok := t.TokenStyles[token]; ok {
			return s
		}
	}
	for scope != "" {
		if s, ok := t.ScopeStyles[scope]; ok {
			return s
		}
		dot := -1
		for i := len(scope) - 1; i >= 0; i-- {
			if scope[i] == '.' {
				dot = i
				break
			}
		}
		if dot < 0 {
			break
		}
		scope = scope[:dot]
	}
	return t.DefaultTextStyle()
}

// DuskTheme returns the default dark theme.
func DuskTheme() *Theme {
	comment := style.RGB(106, 153, 85)
	keyword := style.RGB(86, 156, 214)
	str := style.RGB(206, 145, 120)
	number := style.RGB(181, 206, 168)
	function := style.RGB(220, 220, 170)
	typ := style.RGB(78, 201, 176)
	variable := style.RGB(156, 220, 254)
	invalid := style.RGB(244, 71, 71)

	return &Theme{
		Name:          "dusk",
		Background:    style.RGB(0x1e, 0x1e, 0x1e),
		Foreground:    style.RGB(0xcc, 0xcc, 0xcc),
		Selection:     style.RGB(0x3e, 0x44, 0x51),
		Cursor:        style.RGB(0xff, 0xff, 0xff),
		LineHighlight: style.RGB(0x2a, 0x2a, 0x2a),
		TokenStyles: map[TokenType]style.Style{
			TokenComment:      style.NewStyle(comment).Italic(),
			TokenCommentLine:  style.NewStyle(comment).Italic(),
			TokenCommentBlock: style.NewStyle(comment).Italic(),
			TokenCommentDoc:   style.NewStyle(comment).Italic(),

			TokenString:       style.NewStyle(str),
			TokenStringRaw:    style.NewStyle(str),
			TokenStringRegexp: style.NewStyle(str),
			TokenStringEscape: style.NewStyle(style.RGB(215, 186, 125)),

			TokenNumber:       style.NewStyle(number),
			TokenNumberHex:    style.NewStyle(number),
			TokenNumberOctal:  style.NewStyle(number),
			TokenNumberBinary: style.NewStyle(number),

			TokenKeyword:            style.NewStyle(keyword),
			TokenKeywordControl:     style.NewStyle(keyword),
			TokenKeywordDeclaration: style.NewStyle(keyword),
			TokenKeywordOther:       style.NewStyle(keyword),
			TokenConstantLanguage:   style.NewStyle(keyword),
			TokenStorageModifier:    style.NewStyle(keyword),

			TokenVariable: style.NewStyle(variable),
			TokenConstant: style.NewStyle(style.RGB(79, 193, 255)),

			TokenFunction:        style.NewStyle(function),
			TokenFunctionBuiltin: style.NewStyle(function),

			TokenTypeName:    style.NewStyle(typ),
			TokenTypeBuiltin: style.NewStyle(typ),

			TokenMeta:  style.NewStyle(style.RGB(197, 134, 192)),
			TokenLabel: style.NewStyle(style.RGB(197, 134, 192)),

			TokenMarkupHeading: style.NewStyle(keyword).Bold(),
			TokenMarkupBold:    style.DefaultStyle().Bold(),
			TokenMarkupItalic:  style.DefaultStyle().Italic(),
			TokenMarkupStrike:  style.DefaultStyle().Strikethrough(),
			TokenMarkupQuote:   style.NewStyle(comment),
			TokenMarkupList:    style.NewStyle(keyword),
			TokenMarkupCode:    style.NewStyle(str),
			TokenMarkupLink:    style.NewStyle(typ).Underline(),

			TokenInvalid: style.NewStyle(invalid).Bold(),
		},
		ScopeStyles: make(map[string]style.Style),
	}
}

// DaylightTheme returns a light theme.
func DaylightTheme() *Theme {
	comment := style.RGB(0, 128, 0)
	keyword := style.RGB(0, 0, 255)
	str := style.RGB(163, 21, 21)
	number := style.RGB(9, 134, 88)
	function := style.RGB(121, 94, 38)
	typ := style.RGB(38, 127, 153)
	variable := style.RGB(0, 16, 128)

	return &Theme{
		Name:          "daylight",
		Background:    style.RGB(255, 255, 255),
		Foreground:    style.RGB(30, 30, 30),
		Selection:     style.RGB(173, 214, 255),
		Cursor:        style.RGB(0, 0, 0),
		LineHighlight: style.RGB(245, 245, 245),
		TokenStyles: map[TokenType]style.Style{
			TokenComment:      style.NewStyle(comment).Italic(),
			TokenCommentLine:  style.NewStyle(comment).Italic(),
			TokenCommentBlock: style.NewStyle(comment).Italic(),

			TokenString:    style.NewStyle(str),
			TokenStringRaw: style.NewStyle(str),

			TokenNumber:       style.NewStyle(number),
			TokenNumberHex:    style.NewStyle(number),
			TokenNumberOctal:  style.NewStyle(number),
			TokenNumberBinary: style.NewStyle(number),

			TokenKeyword:            style.NewStyle(keyword),
			TokenKeywordControl:     style.NewStyle(keyword),
			TokenKeywordDeclaration: style.NewStyle(keyword),
			TokenKeywordOther:       style.NewStyle(keyword),
			TokenConstantLanguage:   style.NewStyle(keyword),

			TokenVariable: style.NewStyle(variable),
			TokenConstant: style.NewStyle(style.RGB(0, 112, 193)),

			TokenFunction:        style.NewStyle(function),
			TokenFunctionBuiltin: style.NewStyle(function),

			TokenTypeName:    style.NewStyle(typ),
			TokenTypeBuiltin: style.NewStyle(typ),

			TokenMarkupHeading: style.NewStyle(keyword).Bold(),
			TokenMarkupCode:    style.NewStyle(str),
			TokenMarkupLink:    style.NewStyle(typ).Underline(),

			TokenInvalid: style.NewStyle(style.RGB(205, 49, 49)).Bold(),
		},
		ScopeStyles: make(map[string]style.Style),
	}
}

// MonokaiTheme returns a Monokai-inspired theme.
func MonokaiTheme() *Theme {
	pink := style.RGB(249, 38, 114)
	green := style.RGB(166, 226, 46)
	orange := style.RGB(253, 151, 31)
	yellow := style.RGB(230, 219, 116)
	blue := style.RGB(102, 217, 239)
	purple := style.RGB(174, 129, 255)
	comment := style.RGB(117, 113, 94)

	return &Theme{
		Name:          "monokai",
		Background:    style.RGB(39, 40, 34),
		Foreground:    style.RGB(248, 248, 242),
		Selection:     style.RGB(73, 72, 62),
		Cursor:        style.RGB(248, 248, 240),
		LineHighlight: style.RGB(62, 61, 50),
		TokenStyles: map[TokenType]style.Style{
			TokenComment:      style.NewStyle(comment),
			TokenCommentLine:  style.NewStyle(comment),
			TokenCommentBlock: style.NewStyle(comment),

			TokenString:    style.NewStyle(yellow),
			TokenStringRaw: style.NewStyle(yellow),

			TokenNumber:       style.NewStyle(purple),
			TokenNumberHex:    style.NewStyle(purple),
			TokenNumberOctal:  style.NewStyle(purple),
			TokenNumberBinary: style.NewStyle(purple),

			TokenKeyword:            style.NewStyle(pink),
			TokenKeywordControl:     style.NewStyle(pink),
			TokenKeywordDeclaration: style.NewStyle(blue).Italic(),
			TokenKeywordOther:       style.NewStyle(pink),
			TokenConstantLanguage:   style.NewStyle(purple),
			TokenStorageModifier:    style.NewStyle(pink),

			TokenVariable: style.NewStyle(orange).Italic(),
			TokenConstant: style.NewStyle(purple),

			TokenFunction:        style.NewStyle(green),
			TokenFunctionBuiltin: style.NewStyle(blue),

			TokenTypeName:    style.NewStyle(blue).Italic(),
			TokenTypeBuiltin: style.NewStyle(blue).Italic(),

			TokenMarkupHeading: style.NewStyle(green).Bold(),
			TokenMarkupCode:    style.NewStyle(yellow),

			TokenInvalid: style.NewStyle(pink).Bold(),
		},
		ScopeStyles: make(map[string]style.Style),
	}
}

// ThemeRegistry holds the available themes and tracks the active one.
type ThemeRegistry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewThemeRegistry creates a registry with the built-in themes, with dusk
// active.
func NewThemeRegistry() *ThemeRegistry {
	r := &ThemeRegistry{themes: make(map[string]*Theme)}
	r.Register(DuskTheme())
	r.Register(DaylightTheme())
	r.Register(MonokaiTheme())
	r.current = r.themes["dusk"]
	return r
}

// Register adds a theme keyed by its name.
func (r *ThemeRegistry) Register(theme *Theme) {
	r.themes[theme.Name] = theme
}

// Get returns a theme by name.
func (r *ThemeRegistry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the active theme.
func (r *ThemeRegistry) Current() *Theme {
	return r.current
}

// SetCurrent activates the named theme, reporting whether it exists.
func (r *ThemeRegistry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns all registered theme names, sorted.
func (r *ThemeRegistry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
