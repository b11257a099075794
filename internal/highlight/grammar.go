package highlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// grammarFile is the on-disk YAML shape of a user-defined grammar.
type grammarFile struct {
	Language   string              `yaml:"language"`
	Extensions []string            `yaml:"extensions"`
	Keywords   map[string][]string `yaml:"keywords"`
	Rules      []grammarRule       `yaml:"rules"`
	Blocks     []grammarBlock      `yaml:"blocks"`
}

type grammarRule struct {
	Pattern  string `yaml:"pattern"`
	Token    string `yaml:"token"`
	Submatch int    `yaml:"submatch"`
}

type grammarBlock struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Token string `yaml:"token"`
}

// ParseGrammar builds a lexer from YAML grammar data.
func ParseGrammar(data []byte) (*RegexLexer, error) {
	var gf grammarFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if gf.Language == "" {
		return nil, fmt.Errorf("grammar missing language name")
	}

	exts := make([]string, 0, len(gf.Extensions))
	for _, ext := range gf.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}

	lx := NewRegexLexer(gf.Language, exts...)

	for _, b := range gf.Blocks {
		if b.Start == "" || b.End == "" {
			return nil, fmt.Errorf("grammar %s: block needs start and end markers", gf.Language)
		}
		lx.AddBlock(b.Start, b.End, TokenTypeFromString(b.Token))
	}
	for _, r := range gf.Rules {
		if err := lx.AddRuleChecked(r.Pattern, TokenTypeFromString(r.Token), r.Submatch); err != nil {
			return nil, fmt.Errorf("grammar %s: pattern %q: %w", gf.Language, r.Pattern, err)
		}
	}
	for scope, words := range gf.Keywords {
		lx.AddKeywords(TokenTypeFromString(scope), words...)
	}

	return lx, nil
}

// LoadGrammar reads a YAML grammar file and builds a lexer from it.
func LoadGrammar(path string) (*RegexLexer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}
	return ParseGrammar(data)
}

// LoadGrammarDir loads every .yaml/.yml grammar in a directory into the
// registry. It returns the number loaded; a missing directory is not an
// error.
func LoadGrammarDir(dir string, registry *Registry) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read grammar dir: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		lx, err := LoadGrammar(filepath.Join(dir, entry.Name()))
		if err != nil {
			return loaded, err
		}
		registry.Register(lx)
		loaded++
	}
	return loaded, nil
}
