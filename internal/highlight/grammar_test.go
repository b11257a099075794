package highlight

import (
	"os"
	"path/filepath"
	"testing"
)

const iniGrammar = `
language: ini
extensions: [ini, .cfg]
keywords:
  constant.language: [yes, no]
rules:
  - pattern: '^;.*$'
    token: comment.line
  - pattern: '^\[[^\]]+\]'
    token: keyword
  - pattern: '"[^"]*"'
    token: string
`

func TestParseGrammar(t *testing.T) {
	lx, err := ParseGrammar([]byte(iniGrammar))
	if err != nil {
		t.Fatalf("ParseGrammar failed: %v", err)
	}

	if lx.Language() != "ini" {
		t.Errorf("expected language ini, got %q", lx.Language())
	}

	exts := lx.FileExtensions()
	if len(exts) != 2 || exts[0] != ".ini" || exts[1] != ".cfg" {
		t.Errorf("extensions not normalized: %v", exts)
	}
}

func TestParsedGrammarHighlights(t *testing.T) {
	lx, err := ParseGrammar([]byte(iniGrammar))
	if err != nil {
		t.Fatalf("ParseGrammar failed: %v", err)
	}

	tokens, _ := lx.HighlightLine("; a comment", StateNone)
	if got := tokenAt(t, tokens, 0, 11).Type; got != TokenCommentLine {
		t.Errorf("expected comment, got %v", got)
	}

	tokens, _ = lx.HighlightLine("[section]", StateNone)
	if got := tokenAt(t, tokens, 0, 9).Type; got != TokenKeyword {
		t.Errorf("expected keyword, got %v", got)
	}

	tokens, _ = lx.HighlightLine("flag = yes", StateNone)
	if got := tokenAt(t, tokens, 7, 10).Type; got != TokenConstantLanguage {
		t.Errorf("expected language constant, got %v", got)
	}
}

func TestParseGrammarBlocks(t *testing.T) {
	src := `
language: css
extensions: [css]
blocks:
  - start: "/*"
    end: "*/"
    token: comment.block
`
	lx, err := ParseGrammar([]byte(src))
	if err != nil {
		t.Fatalf("ParseGrammar failed: %v", err)
	}

	_, state := lx.HighlightLine("a { } /* open", StateNone)
	if state == StateNone {
		t.Error("expected open-block state")
	}
}

func TestParseGrammarMissingLanguage(t *testing.T) {
	if _, err := ParseGrammar([]byte("extensions: [x]")); err == nil {
		t.Error("expected error for missing language")
	}
}

func TestParseGrammarBadPattern(t *testing.T) {
	src := `
language: broken
rules:
  - pattern: '[unclosed'
    token: comment
`
	if _, err := ParseGrammar([]byte(src)); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestParseGrammarBadBlock(t *testing.T) {
	src := `
language: broken
blocks:
  - start: "/*"
    token: comment
`
	if _, err := ParseGrammar([]byte(src)); err == nil {
		t.Error("expected error for block without end marker")
	}
}

func TestParseGrammarInvalidYAML(t *testing.T) {
	if _, err := ParseGrammar([]byte("language: [unterminated")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadGrammarDir(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "ini.yaml"), []byte(iniGrammar), 0o644); err != nil {
		t.Fatal(err)
	}
	second := "language: toy\nextensions: [toy]\n"
	if err := os.WriteFile(filepath.Join(dir, "toy.yml"), []byte(second), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	n, err := LoadGrammarDir(dir, r)
	if err != nil {
		t.Fatalf("LoadGrammarDir failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 grammars, got %d", n)
	}

	if _, ok := r.ByLanguage("ini"); !ok {
		t.Error("ini grammar not registered")
	}
	if _, ok := r.ByExtension("toy"); !ok {
		t.Error("toy extension not registered")
	}
}

func TestLoadGrammarDirMissing(t *testing.T) {
	n, err := LoadGrammarDir("/nonexistent/grammar/dir", NewRegistry())
	if err != nil {
		t.Errorf("missing dir should not error, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 grammars, got %d", n)
	}
}

func TestRegistryLookups(t *testing.T) {
	r := NewDefaultRegistry()

	if _, ok := r.ByLanguage("go"); !ok {
		t.Error("go lexer missing")
	}
	if _, ok := r.ByExtension(".rs"); !ok {
		t.Error("rust extension missing")
	}
	if _, ok := r.ByExtension("py"); !ok {
		t.Error("dotless extension lookup failed")
	}
	if _, ok := r.ByExtension(""); ok {
		t.Error("empty extension should fail")
	}

	if h, ok := r.ForPath("/tmp/main.go"); !ok || h.Language() != "go" {
		t.Error("ForPath failed for main.go")
	}
	if got := r.DetectLanguage("script.lua", ""); got != "lua" {
		t.Errorf("expected lua, got %q", got)
	}
	if got := r.DetectLanguage("README", ""); got != "" {
		t.Errorf("expected empty language, got %q", got)
	}

	langs := r.Languages()
	if len(langs) != 6 {
		t.Errorf("expected 6 built-in languages, got %v", langs)
	}
}

func TestDetectLanguageByShebang(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		path  string
		first string
		want  string
	}{
		{"run", "#!/usr/bin/env python3", "python"},
		{"run", "#!/usr/bin/python", "python"},
		{"", "#!/usr/bin/env lua5.4", "lua"},
		{"tool", "#!/usr/bin/env node", "javascript"},
		{"tool", "#!/usr/bin/env", ""},
		{"tool", "#!", ""},
		{"README", "A plain first line", ""},
		{"run.py", "#!/usr/bin/env node", "python"}, // extension wins
	}
	for _, tt := range tests {
		if got := r.DetectLanguage(tt.path, tt.first); got != tt.want {
			t.Errorf("DetectLanguage(%q, %q) = %q, want %q", tt.path, tt.first, got, tt.want)
		}
	}
}

func TestShebangInterpreter(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"#!/bin/sh", "sh"},
		{"#!/usr/bin/env python3.12", "python"},
		{"#!/usr/local/bin/lua", "lua"},
		{"#!/usr/bin/env -S deno run", "deno"},
		{"no shebang", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shebangInterpreter(tt.line); got != tt.want {
			t.Errorf("shebangInterpreter(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
