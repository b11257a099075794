package highlight

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/vellumkit/vellum/internal/style"
)

// ParseTheme builds a theme from JSON data in a VS Code-like shape:
//
//	{
//	  "name": "...",
//	  "colors": {"background": "#...", "foreground": "#...", ...},
//	  "tokenColors": [
//	    {"scope": "comment", "settings": {"foreground": "#...", "italic": true}},
//	    {"scope": ["keyword", "storage.modifier"], "settings": {...}}
//	  ]
//	}
func ParseTheme(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse theme: invalid JSON")
	}
	root := gjson.ParseBytes(data)

	name := root.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("theme missing name")
	}

	theme := &Theme{
		Name:        name,
		TokenStyles: make(map[TokenType]style.Style),
		ScopeStyles: make(map[string]style.Style),
	}

	var err error
	readColor := func(key string, dst *style.Color) {
		val := root.Get("colors." + key)
		if !val.Exists() || err != nil {
			return
		}
		c, perr := style.FromHex(val.String())
		if perr != nil {
			err = fmt.Errorf("theme %s: colors.%s: %w", name, key, perr)
			return
		}
		*dst = c
	}
	readColor("background", &theme.Background)
	readColor("foreground", &theme.Foreground)
	readColor("selection", &theme.Selection)
	readColor("cursor", &theme.Cursor)
	readColor("lineHighlight", &theme.LineHighlight)
	readColor("gutter", &theme.Gutter)
	if err != nil {
		return nil, err
	}

	root.Get("tokenColors").ForEach(func(_, entry gjson.Result) bool {
		st, perr := styleFromSettings(entry.Get("settings"))
		if perr != nil {
			err = fmt.Errorf("theme %s: %w", name, perr)
			return false
		}

		scope := entry.Get("scope")
		if scope.IsArray() {
			scope.ForEach(func(_, s gjson.Result) bool {
				applyScopeStyle(theme, s.String(), st)
				return true
			})
		} else {
			applyScopeStyle(theme, scope.String(), st)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return theme, nil
}

// styleFromSettings reads one tokenColors settings object.
func styleFromSettings(settings gjson.Result) (style.Style, error) {
	st := style.DefaultStyle()
	if fg := settings.Get("foreground"); fg.Exists() {
		c, err := style.FromHex(fg.String())
		if err != nil {
			return st, err
		}
		st.Foreground = c
	}
	if bg := settings.Get("background"); bg.Exists() {
		c, err := style.FromHex(bg.String())
		if err != nil {
			return st, err
		}
		st.Background = c
	}
	if settings.Get("bold").Bool() {
		st = st.Bold()
	}
	if settings.Get("italic").Bool() {
		st = st.Italic()
	}
	if settings.Get("underline").Bool() {
		st = st.Underline()
	}
	return st, nil
}

// applyScopeStyle records a style under its resolved token type and, for
// unknown scopes, the raw scope string.
func applyScopeStyle(theme *Theme, scope string, st style.Style) {
	if scope == "" {
		return
	}
	if token := TokenTypeFromString(scope); token != TokenNone {
		theme.TokenStyles[token] = st
	}
	theme.ScopeStyles[scope] = st
}

// LoadTheme reads a JSON theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// LoadThemeDir loads every .json theme in a directory into the registry. It
// returns the number loaded; a missing directory is not an error.
func LoadThemeDir(dir string, registry *ThemeRegistry) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read theme dir: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		theme, err := LoadTheme(filepath.Join(dir, entry.Name()))
		if err != nil {
			return loaded, err
		}
		registry.Register(theme)
		loaded++
	}
	return loaded, nil
}
