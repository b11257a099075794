package highlight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vellumkit/vellum/internal/style"
)

const nightTheme = `{
  "name": "night",
  "colors": {
    "background": "#101216",
    "foreground": "#d8dee9",
    "selection": "#3b4252",
    "lineHighlight": "#16181d"
  },
  "tokenColors": [
    {"scope": "comment", "settings": {"foreground": "#616e88", "italic": true}},
    {"scope": ["keyword", "storage.modifier"], "settings": {"foreground": "#81a1c1", "bold": true}},
    {"scope": "custom.embedded", "settings": {"foreground": "#a3be8c"}}
  ]
}`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(nightTheme))
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}

	if theme.Name != "night" {
		t.Errorf("expected name night, got %q", theme.Name)
	}
	if !theme.Background.Equals(style.RGB(0x10, 0x12, 0x16)) {
		t.Errorf("unexpected background %v", theme.Background)
	}
	if !theme.Foreground.Equals(style.RGB(0xd8, 0xde, 0xe9)) {
		t.Errorf("unexpected foreground %v", theme.Foreground)
	}

	// Unset cursor falls back to foreground.
	if !theme.CursorColor().Equals(theme.Foreground) {
		t.Errorf("cursor should fall back to foreground")
	}
}

func TestParseThemeTokenColors(t *testing.T) {
	theme, err := ParseTheme([]byte(nightTheme))
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}

	comment := theme.StyleForToken(TokenComment)
	if !comment.Foreground.Equals(style.RGB(0x61, 0x6e, 0x88)) {
		t.Errorf("unexpected comment foreground %v", comment.Foreground)
	}
	if !comment.Attributes.Has(style.AttrItalic) {
		t.Error("comment should be italic")
	}

	// Both scopes in the array get the style.
	kw := theme.StyleForToken(TokenKeyword)
	mod := theme.StyleForToken(TokenStorageModifier)
	if !kw.Equals(mod) {
		t.Error("array scopes should share one style")
	}
	if !kw.Attributes.Has(style.AttrBold) {
		t.Error("keyword should be bold")
	}
}

func TestParseThemeCustomScope(t *testing.T) {
	theme, err := ParseTheme([]byte(nightTheme))
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}

	got := theme.StyleForScope("custom.embedded.ruby")
	if !got.Foreground.Equals(style.RGB(0xa3, 0xbe, 0x8c)) {
		t.Errorf("custom scope not applied, got %v", got.Foreground)
	}
}

func TestParseThemeMissingName(t *testing.T) {
	if _, err := ParseTheme([]byte(`{"colors": {}}`)); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestParseThemeInvalidJSON(t *testing.T) {
	if _, err := ParseTheme([]byte(`{"name": "x",`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseThemeBadColor(t *testing.T) {
	src := `{"name": "x", "colors": {"background": "notahex"}}`
	if _, err := ParseTheme([]byte(src)); err == nil {
		t.Error("expected error for bad color")
	}
}

func TestParseThemeBadTokenColor(t *testing.T) {
	src := `{"name": "x", "tokenColors": [{"scope": "comment", "settings": {"foreground": "zz"}}]}`
	if _, err := ParseTheme([]byte(src)); err == nil {
		t.Error("expected error for bad token color")
	}
}

func TestLoadThemeDir(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "night.json"), []byte(nightTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignore.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewThemeRegistry()
	n, err := LoadThemeDir(dir, r)
	if err != nil {
		t.Fatalf("LoadThemeDir failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 theme, got %d", n)
	}

	if !r.SetCurrent("night") {
		t.Error("loaded theme not selectable")
	}
}

func TestLoadThemeDirMissing(t *testing.T) {
	n, err := LoadThemeDir("/nonexistent/theme/dir", NewThemeRegistry())
	if err != nil {
		t.Errorf("missing dir should not error, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 themes, got %d", n)
	}
}
