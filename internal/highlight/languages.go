package highlight

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry maps languages and file extensions to highlighters.
type Registry struct {
	mu          sync.RWMutex
	byLanguage  map[string]Highlighter
	byExtension map[string]Highlighter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLanguage:  make(map[string]Highlighter),
		byExtension: make(map[string]Highlighter),
	}
}

// NewDefaultRegistry creates a registry with the built-in lexers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(GoLexer())
	r.Register(PythonLexer())
	r.Register(JavaScriptLexer())
	r.Register(RustLexer())
	r.Register(LuaLexer())
	r.Register(MarkdownLexer())
	return r
}

// Register adds a highlighter, replacing any previous entry for its language
// or extensions.
func (r *Registry) Register(h Highlighter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byLanguage[h.Language()] = h
	for _, ext := range h.FileExtensions() {
		r.byExtension[ext] = h
	}
}

// ByLanguage returns the highlighter for a language name.
func (r *Registry) ByLanguage(language string) (Highlighter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byLanguage[language]
	return h, ok
}

// ByExtension returns the highlighter for a file extension, with or without
// the leading dot.
func (r *Registry) ByExtension(ext string) (Highlighter, bool) {
	if ext == "" {
		return nil, false
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byExtension[ext]
	return h, ok
}

// ForPath returns the highlighter for a file path based on its extension.
func (r *Registry) ForPath(path string) (Highlighter, bool) {
	return r.ByExtension(filepath.Ext(path))
}

// DetectLanguage returns the language name for a file path, sniffing the
// first line of the document when the extension is unknown. Returns "" when
// neither matches.
func (r *Registry) DetectLanguage(path, firstLine string) string {
	if h, ok := r.ForPath(path); ok {
		return h.Language()
	}
	if h, ok := r.ByFirstLine(firstLine); ok {
		return h.Language()
	}
	return ""
}

// ByFirstLine matches a document's first line against known interpreter
// shebangs.
func (r *Registry) ByFirstLine(line string) (Highlighter, bool) {
	interp := shebangInterpreter(line)
	if interp == "" {
		return nil, false
	}
	if lang, ok := interpreterLanguages[interp]; ok {
		interp = lang
	}
	return r.ByLanguage(interp)
}

// interpreterLanguages maps shebang interpreter names that differ from the
// language name.
var interpreterLanguages = map[string]string{
	"node": "javascript",
	"deno": "javascript",
	"bun":  "javascript",
}

// shebangInterpreter extracts the interpreter name from a "#!" line. It
// resolves /usr/bin/env indirection and strips trailing version suffixes,
// so "#!/usr/bin/env python3.12" yields "python".
func shebangInterpreter(line string) string {
	rest, ok := strings.CutPrefix(line, "#!")
	if !ok {
		return ""
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	name := filepath.Base(fields[0])
	if name == "env" {
		name = ""
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "-") {
				continue
			}
			name = filepath.Base(f)
			break
		}
		if name == "" {
			return ""
		}
	}
	return strings.TrimRight(name, "0123456789.")
}

// Languages returns all registered language names, sorted.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.byLanguage))
	for lang := range r.byLanguage {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// GoLexer returns a lexer for Go.
func GoLexer() *RegexLexer {
	lx := NewRegexLexer("go", ".go")

	lx.AddBlock("/*", "*/", TokenCommentBlock)
	lx.AddBlock("`", "`", TokenStringRaw)

	lx.AddRule(`//.*$`, TokenCommentLine)
	lx.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	lx.AddRule(`'(?:[^'\\]|\\.)'`, TokenString)
	lx.AddRule(`\b0[xX][0-9a-fA-F_]+\b`, TokenNumberHex)
	lx.AddRule(`\b0[oO][0-7_]+\b`, TokenNumberOctal)
	lx.AddRule(`\b0[bB][01_]+\b`, TokenNumberBinary)
	lx.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)

	lx.AddKeywords(TokenKeywordControl,
		"if", "else", "for", "range", "switch", "case", "default",
		"break", "continue", "return", "goto", "fallthrough", "select")
	lx.AddKeywords(TokenKeywordDeclaration,
		"func", "var", "const", "type", "struct", "interface", "map", "chan")
	lx.AddKeywords(TokenKeywordOther, "package", "import", "defer", "go")
	lx.AddKeywords(TokenConstantLanguage, "true", "false", "nil", "iota")
	lx.AddKeywords(TokenTypeBuiltin,
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
		"bool", "byte", "rune", "string", "error", "any")
	lx.AddKeywords(TokenFunctionBuiltin,
		"make", "new", "len", "cap", "append", "copy", "delete",
		"close", "panic", "recover", "print", "println", "min", "max", "clear")

	return lx
}

// PythonLexer returns a lexer for Python.
func PythonLexer() *RegexLexer {
	lx := NewRegexLexer("python", ".py", ".pyi")

	lx.AddBlock(`"""`, `"""`, TokenString)
	lx.AddBlock(`'''`, `'''`, TokenString)

	lx.AddRule(`#.*$`, TokenCommentLine)
	lx.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	lx.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	lx.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	lx.AddRule(`\b0[oO][0-7]+\b`, TokenNumberOctal)
	lx.AddRule(`\b0[bB][01]+\b`, TokenNumberBinary)
	lx.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?j?\b`, TokenNumber)
	lx.AddRule(`@\w+`, TokenMeta)

	lx.AddKeywords(TokenKeywordControl,
		"if", "elif", "else", "for", "while", "break", "continue",
		"return", "try", "except", "finally", "raise", "with", "as",
		"match", "case")
	lx.AddKeywords(TokenKeywordDeclaration, "def", "class", "lambda", "async", "await")
	lx.AddKeywords(TokenKeywordOther,
		"import", "from", "global", "nonlocal", "pass", "yield",
		"assert", "del", "in", "is", "not", "and", "or")
	lx.AddKeywords(TokenConstantLanguage, "True", "False", "None")
	lx.AddKeywords(TokenTypeBuiltin,
		"int", "float", "str", "bool", "list", "dict", "set", "tuple",
		"bytes", "object", "type")
	lx.AddKeywords(TokenFunctionBuiltin,
		"print", "len", "range", "enumerate", "zip", "map", "filter",
		"open", "input", "isinstance", "sorted", "sum", "min", "max",
		"abs", "repr", "super")

	return lx
}

// JavaScriptLexer returns a lexer for JavaScript and TypeScript.
func JavaScriptLexer() *RegexLexer {
	lx := NewRegexLexer("javascript", ".js", ".jsx", ".ts", ".tsx", ".mjs")

	lx.AddBlock("/*", "*/", TokenCommentBlock)
	lx.AddBlock("`", "`", TokenString)

	lx.AddRule(`//.*$`, TokenCommentLine)
	lx.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	lx.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	lx.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	lx.AddRule(`\b0[bB][01]+\b`, TokenNumberBinary)
	lx.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)

	lx.AddKeywords(TokenKeywordControl,
		"if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "throw", "try", "catch", "finally")
	lx.AddKeywords(TokenKeywordDeclaration,
		"function", "var", "let", "const", "class", "extends", "async", "await",
		"type", "interface", "enum")
	lx.AddKeywords(TokenKeywordOther,
		"import", "export", "from", "as", "new", "delete", "typeof",
		"instanceof", "in", "of", "this", "super", "static", "yield")
	lx.AddKeywords(TokenConstantLanguage,
		"true", "false", "null", "undefined", "NaN", "Infinity")
	lx.AddKeywords(TokenStorageModifier,
		"public", "private", "protected", "readonly", "abstract")

	return lx
}

// RustLexer returns a lexer for Rust.
func RustLexer() *RegexLexer {
	lx := NewRegexLexer("rust", ".rs")

	lx.AddBlock("/*", "*/", TokenCommentBlock)

	lx.AddRule(`//.*$`, TokenCommentLine)
	lx.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	lx.AddRule(`r#*"[^"]*"#*`, TokenStringRaw)
	lx.AddRule(`\b0[xX][0-9a-fA-F_]+\b`, TokenNumberHex)
	lx.AddRule(`\b0[oO][0-7_]+\b`, TokenNumberOctal)
	lx.AddRule(`\b0[bB][01_]+\b`, TokenNumberBinary)
	lx.AddRule(`\b\d[\d_]*\.?[\d_]*(?:[eE][+-]?[\d_]+)?(?:f32|f64|i\d+|u\d+|isize|usize)?\b`, TokenNumber)
	lx.AddRule(`#!?\[.*?\]`, TokenMeta)
	lx.AddRule(`'[a-z_][a-z0-9_]*\b`, TokenLabel)

	lx.AddKeywords(TokenKeywordControl,
		"if", "else", "match", "for", "while", "loop", "break", "continue",
		"return", "yield")
	lx.AddKeywords(TokenKeywordDeclaration,
		"fn", "let", "mut", "const", "static", "struct", "enum", "trait",
		"impl", "type", "mod")
	lx.AddKeywords(TokenKeywordOther,
		"use", "crate", "super", "self", "pub", "where", "as",
		"async", "await", "dyn", "move", "ref", "unsafe", "extern")
	lx.AddKeywords(TokenConstantLanguage, "true", "false", "None", "Some", "Ok", "Err")
	lx.AddKeywords(TokenTypeBuiltin,
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str", "String",
		"Vec", "Box", "Option", "Result")

	return lx
}

// LuaLexer returns a lexer for Lua.
func LuaLexer() *RegexLexer {
	lx := NewRegexLexer("lua", ".lua")

	lx.AddBlock("--[[", "]]", TokenCommentBlock)
	lx.AddBlock("[[", "]]", TokenStringRaw)

	lx.AddRule(`--.*$`, TokenCommentLine)
	lx.AddRule(`"(?:[^"\\]|\\.)*"`, TokenString)
	lx.AddRule(`'(?:[^'\\]|\\.)*'`, TokenString)
	lx.AddRule(`\b0[xX][0-9a-fA-F]+\b`, TokenNumberHex)
	lx.AddRule(`\b\d+\.?\d*(?:[eE][+-]?\d+)?\b`, TokenNumber)

	lx.AddKeywords(TokenKeywordControl,
		"if", "then", "elseif", "else", "for", "while", "repeat", "until",
		"do", "end", "break", "return", "goto", "in")
	lx.AddKeywords(TokenKeywordDeclaration, "function", "local")
	lx.AddKeywords(TokenKeywordOther, "and", "or", "not")
	lx.AddKeywords(TokenConstantLanguage, "true", "false", "nil")
	lx.AddKeywords(TokenFunctionBuiltin,
		"print", "pairs", "ipairs", "type", "tostring", "tonumber",
		"pcall", "error", "require", "setmetatable", "getmetatable")

	return lx
}

// MarkdownLexer returns a lexer for Markdown. Everything is single-line;
// fenced code blocks are marked line by line.
func MarkdownLexer() *RegexLexer {
	lx := NewRegexLexer("markdown", ".md", ".markdown")

	lx.AddRule(`^#{1,6}\s+.*$`, TokenMarkupHeading)
	lx.AddRule("^```.*$", TokenMarkupCode)
	lx.AddRule("`[^`]+`", TokenMarkupCode)
	lx.AddRule(`\*\*[^*]+\*\*`, TokenMarkupBold)
	lx.AddRule(`__[^_]+__`, TokenMarkupBold)
	lx.AddRule(`\*[^*]+\*`, TokenMarkupItalic)
	lx.AddRule(`~~[^~]+~~`, TokenMarkupStrike)
	lx.AddRule(`^>\s+.*$`, TokenMarkupQuote)
	lx.AddRule(`^\s*[-*+]\s+`, TokenMarkupList)
	lx.AddRule(`^\s*\d+\.\s+`, TokenMarkupList)
	lx.AddRule(`\[[^\]]+\]\([^)]+\)`, TokenMarkupLink)

	return lx
}
