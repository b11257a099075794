package highlight

import (
	"testing"
	"unicode/utf8"
)

// countingLexer wraps a lexer and counts HighlightLine calls, to observe how
// much work the provider redoes.
type countingLexer struct {
	inner Highlighter
	calls int
}

func (c *countingLexer) HighlightLine(line string, prev LexerState) ([]Token, LexerState) {
	c.calls++
	return c.inner.HighlightLine(line, prev)
}

func (c *countingLexer) Language() string { return c.inner.Language() }

func (c *countingLexer) FileExtensions() []string { return c.inner.FileExtensions() }

func sliceSource(lines *[]string) func(int) (string, bool) {
	return func(row int) (string, bool) {
		if row < 0 || row >= len(*lines) {
			return "", false
		}
		return (*lines)[row], true
	}
}

func runTotal(runs []Run) int {
	total := 0
	for _, r := range runs {
		total += r.Length
	}
	return total
}

func TestProviderRunsPartitionLine(t *testing.T) {
	lines := []string{`msg := "héllo, wörld" // greet`}
	p := NewProvider(DuskTheme())
	p.SetLexer(GoLexer())
	p.SetSource(sliceSource(&lines))

	runs := p.RunsForLine(0)
	if got, want := runTotal(runs), utf8.RuneCountInString(lines[0]); got != want {
		t.Errorf("runs cover %d runes, want %d", got, want)
	}
}

func TestProviderDefaultRunWithoutLexer(t *testing.T) {
	lines := []string{"plain text"}
	p := NewProvider(nil)
	p.SetSource(sliceSource(&lines))

	runs := p.RunsForLine(0)
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %d", len(runs))
	}
	if runs[0].Length != 10 {
		t.Errorf("expected length 10, got %d", runs[0].Length)
	}
	if !runs[0].Style.Foreground.Equals(fallbackForeground) {
		t.Errorf("expected fallback foreground, got %v", runs[0].Style.Foreground)
	}
}

func TestProviderEmptyLine(t *testing.T) {
	lines := []string{""}
	p := NewProvider(nil)
	p.SetSource(sliceSource(&lines))

	if runs := p.RunsForLine(0); len(runs) != 0 {
		t.Errorf("expected no runs for empty line, got %v", runs)
	}
}

func TestProviderOutOfRangeRow(t *testing.T) {
	lines := []string{"only"}
	p := NewProvider(nil)
	p.SetSource(sliceSource(&lines))

	if runs := p.RunsForLine(5); runs != nil {
		t.Errorf("expected nil for missing row, got %v", runs)
	}
}

func TestProviderCachesLines(t *testing.T) {
	lines := []string{"a := 1", "b := 2"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	p.RunsForLine(0)
	p.RunsForLine(1)
	before := cl.calls

	p.RunsForLine(0)
	p.RunsForLine(1)
	if cl.calls != before {
		t.Errorf("cached lines were re-lexed: %d calls, want %d", cl.calls, before)
	}
}

func TestProviderReplaysFromCheckpoint(t *testing.T) {
	lines := []string{"a := 1", "/* open", "inside", "done */ b := 2"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	// Asking for the last line forces states for every earlier line.
	p.RunsForLine(3)
	if cl.calls != 4 {
		t.Fatalf("expected 4 lex calls, got %d", cl.calls)
	}

	// The middle line is entirely inside the comment.
	tokens := p.TokensForLine(2)
	if len(tokens) != 1 || tokens[0].Type != TokenCommentBlock {
		t.Errorf("expected one block-comment token, got %v", tokens)
	}
	if cl.calls != 4 {
		t.Errorf("TokensForLine hit the lexer despite cache: %d calls", cl.calls)
	}
}

func TestProviderEditReplaysOnlyBelow(t *testing.T) {
	lines := []string{"a := 1", "b := 2", "c := 3", "d := 4"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	for row := range lines {
		p.RunsForLine(row)
	}
	before := cl.calls

	// Edit row 2; rows 0 and 1 keep their checkpoints.
	lines[2] = "c := 30"
	p.RunsForLine(2)
	if cl.calls != before+1 {
		t.Errorf("expected exactly one re-lex, got %d extra", cl.calls-before)
	}

	// Row 3 was invalidated with row 2 and re-lexes from the checkpoint.
	p.RunsForLine(3)
	if cl.calls != before+2 {
		t.Errorf("expected one more re-lex for row 3, got %d extra", cl.calls-before)
	}

	// Rows above the edit stay cached.
	p.RunsForLine(0)
	p.RunsForLine(1)
	if cl.calls != before+2 {
		t.Errorf("rows above the edit were re-lexed")
	}
}

func TestProviderEditInsideBlockComment(t *testing.T) {
	lines := []string{"/* open", "inside", "done */"}
	p := NewProvider(DuskTheme())
	p.SetLexer(GoLexer())
	p.SetSource(sliceSource(&lines))

	p.RunsForLine(2)

	// Closing the comment on line 0 changes every line below.
	lines[0] = "/* open */"
	p.InvalidateFrom(0)

	tokens := p.TokensForLine(1)
	if len(tokens) != 1 || tokens[0].Type != TokenIdentifier {
		t.Errorf("expected identifier after comment closed above, got %v", tokens)
	}
}

func TestProviderInvalidateFromKeepsAbove(t *testing.T) {
	lines := []string{"a := 1", "b := 2", "c := 3"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	for row := range lines {
		p.RunsForLine(row)
	}
	before := cl.calls

	p.InvalidateFrom(1)
	p.RunsForLine(0)
	if cl.calls != before {
		t.Errorf("row above invalidation point was re-lexed")
	}

	p.RunsForLine(1)
	p.RunsForLine(2)
	if cl.calls != before+2 {
		t.Errorf("expected 2 re-lex calls, got %d", cl.calls-before)
	}
}

func TestProviderSetThemeKeepsTokens(t *testing.T) {
	lines := []string{"func"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	runs := p.RunsForLine(0)
	if len(runs) != 1 {
		t.Fatalf("expected one run, got %v", runs)
	}
	duskStyle := DuskTheme().StyleForToken(TokenKeywordDeclaration)
	if !runs[0].Style.Equals(duskStyle) {
		t.Errorf("expected dusk keyword style")
	}
	before := cl.calls

	monokai := MonokaiTheme()
	p.SetTheme(monokai)
	runs = p.RunsForLine(0)
	if cl.calls != before {
		t.Errorf("theme change re-lexed lines")
	}
	if !runs[0].Style.Equals(monokai.StyleForToken(TokenKeywordDeclaration)) {
		t.Errorf("runs were not restyled for the new theme")
	}
}

func TestProviderSetLexerClearsCache(t *testing.T) {
	lines := []string{"x"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	p.RunsForLine(0)

	cl2 := &countingLexer{inner: PythonLexer()}
	p.SetLexer(cl2)
	p.RunsForLine(0)
	if cl2.calls != 1 {
		t.Errorf("expected new lexer to run, got %d calls", cl2.calls)
	}
}

func TestProviderEnsureStateUpTo(t *testing.T) {
	lines := []string{"a := 1", "b := 2", "c := 3"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	p.EnsureStateUpTo(2)
	if cl.calls != 3 {
		t.Fatalf("expected 3 lex calls, got %d", cl.calls)
	}

	// Per-line queries reuse the precomputed tokens.
	for row := range lines {
		p.RunsForLine(row)
	}
	if cl.calls != 3 {
		t.Errorf("queries after EnsureStateUpTo re-lexed: %d calls", cl.calls)
	}
}

func TestProviderReset(t *testing.T) {
	lines := []string{"a := 1"}
	cl := &countingLexer{inner: GoLexer()}
	p := NewProvider(DuskTheme())
	p.SetLexer(cl)
	p.SetSource(sliceSource(&lines))

	p.RunsForLine(0)
	p.Reset()
	p.RunsForLine(0)
	if cl.calls != 2 {
		t.Errorf("expected re-lex after Reset, got %d calls", cl.calls)
	}
}

func TestRunsFromTokensGapFill(t *testing.T) {
	theme := DuskTheme()
	// One keyword token in the middle of plain text.
	text := "aa func bb"
	tokens := []Token{{Type: TokenKeywordDeclaration, StartCol: 3, EndCol: 7}}

	runs := runsFromTokens(text, tokens, theme)
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %v", runs)
	}
	if runs[0].Length != 3 || runs[1].Length != 4 || runs[2].Length != 3 {
		t.Errorf("unexpected run lengths: %v", runs)
	}
	if !runs[1].Style.Equals(theme.StyleForToken(TokenKeywordDeclaration)) {
		t.Errorf("middle run should use keyword style")
	}
}

func TestRunsFromTokensMultibyte(t *testing.T) {
	theme := DuskTheme()
	// "wörld" spans bytes [0,6) but 5 runes.
	text := "wörld x"
	tokens := []Token{{Type: TokenString, StartCol: 0, EndCol: 6}}

	runs := runsFromTokens(text, tokens, theme)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %v", runs)
	}
	if runs[0].Length != 5 {
		t.Errorf("expected 5-rune styled run, got %d", runs[0].Length)
	}
	if runs[1].Length != 2 {
		t.Errorf("expected 2-rune tail, got %d", runs[1].Length)
	}
}
