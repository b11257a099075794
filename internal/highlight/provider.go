package highlight

import (
	"unicode/utf8"

	"github.com/vellumkit/vellum/internal/style"
)

// Run is a styled span of a line, measured in runes. The runs for a line
// partition it exactly.
type Run struct {
	Length int
	Style  style.Style
}

// Provider computes and caches per-line highlighting. It keeps a lexer state
// checkpoint at the end of every computed line, so re-highlighting after an
// edit replays only from the nearest checkpoint above the change.
//
// A Provider belongs to a single editor and is not safe for concurrent use.
type Provider struct {
	lexer Highlighter
	theme *Theme

	// lines caches tokens and runs keyed by row. states holds the lexer
	// state at the end of each computed row.
	lines  map[int]*cachedLine
	states map[int]LexerState

	// source retrieves line text by row. A false return stops any replay.
	source func(row int) (string, bool)
}

type cachedLine struct {
	text   string
	tokens []Token
	runs   []Run
	state  LexerState
}

// NewProvider creates a provider using the given theme. A nil theme falls
// back to the built-in colors.
func NewProvider(theme *Theme) *Provider {
	return &Provider{
		theme:  theme,
		lines:  make(map[int]*cachedLine),
		states: make(map[int]LexerState),
	}
}

// SetSource sets the line text getter.
func (p *Provider) SetSource(source func(row int) (string, bool)) {
	p.source = source
	p.Reset()
}

// SetLexer replaces the active lexer and drops all cached work.
func (p *Provider) SetLexer(lexer Highlighter) {
	p.lexer = lexer
	p.Reset()
}

// Lexer returns the active lexer, or nil.
func (p *Provider) Lexer() Highlighter {
	return p.lexer
}

// SetTheme replaces the theme. Tokens and state checkpoints stay valid; only
// the computed runs are dropped.
func (p *Provider) SetTheme(theme *Theme) {
	p.theme = theme
	for _, cl := range p.lines {
		cl.runs = nil
	}
}

// Theme returns the active theme, which may be nil.
func (p *Provider) Theme() *Theme {
	return p.theme
}

// RunsForLine returns the styled runs for a row. The runs partition the line;
// their lengths sum to the line's rune count. Without a lexer the whole line
// is one default-styled run.
func (p *Provider) RunsForLine(row int) []Run {
	if p.source == nil {
		return nil
	}
	text, ok := p.source(row)
	if !ok {
		return nil
	}

	if p.lexer == nil {
		return p.defaultRuns(text)
	}

	if cl, ok := p.lines[row]; ok && cl.text == text {
		if cl.runs == nil {
			cl.runs = runsFromTokens(text, cl.tokens, p.theme)
		}
		return cl.runs
	}

	tokens := p.tokensForLine(row, text)
	cl := p.lines[row]
	cl.runs = runsFromTokens(text, tokens, p.theme)
	return cl.runs
}

// TokensForLine returns the raw tokens for a row.
func (p *Provider) TokensForLine(row int) []Token {
	if p.source == nil || p.lexer == nil {
		return nil
	}
	text, ok := p.source(row)
	if !ok {
		return nil
	}
	if cl, ok := p.lines[row]; ok && cl.text == text {
		return cl.tokens
	}
	return p.tokensForLine(row, text)
}

// tokensForLine computes and caches tokens for a row whose cached text is
// stale or missing.
func (p *Provider) tokensForLine(row int, text string) []Token {
	if _, ok := p.lines[row]; ok {
		// Text changed; everything below depends on this line's end state.
		p.InvalidateFrom(row)
	}

	prev := StateNone
	if row > 0 {
		prev = p.stateThrough(row - 1)
	}

	tokens, endState := p.lexer.HighlightLine(text, prev)
	p.lines[row] = &cachedLine{text: text, tokens: tokens, state: endState}
	p.states[row] = endState
	return tokens
}

// stateThrough returns the lexer state at the end of row, replaying forward
// from the nearest checkpoint at or above it.
func (p *Provider) stateThrough(row int) LexerState {
	if s, ok := p.states[row]; ok {
		return s
	}

	start := 0
	state := StateNone
	for r := row; r > 0; r-- {
		if s, ok := p.states[r-1]; ok {
			start = r
			state = s
			break
		}
	}

	for r := start; r <= row; r++ {
		text, ok := p.source(r)
		if !ok {
			break
		}
		var tokens []Token
		tokens, state = p.lexer.HighlightLine(text, state)
		p.lines[r] = &cachedLine{text: text, tokens: tokens, state: state}
		p.states[r] = state
	}
	return state
}

// EnsureStateUpTo computes state checkpoints through the given row, so later
// per-line queries start from a nearby checkpoint.
func (p *Provider) EnsureStateUpTo(row int) {
	if p.source == nil || p.lexer == nil || row < 0 {
		return
	}
	p.stateThrough(row)
}

// InvalidateFrom drops all cached lines and checkpoints at or below row.
// Rows above keep their checkpoints.
func (p *Provider) InvalidateFrom(row int) {
	drop := make([]int, 0)
	for r := range p.lines {
		if r >= row {
			drop = append(drop, r)
		}
	}
	for _, r := range drop {
		delete(p.lines, r)
		delete(p.states, r)
	}
}

// Reset drops every cached line and checkpoint.
func (p *Provider) Reset() {
	p.lines = make(map[int]*cachedLine)
	p.states = make(map[int]LexerState)
}

// defaultRuns covers the whole line with the default text style.
func (p *Provider) defaultRuns(text string) []Run {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return nil
	}
	return []Run{{Length: n, Style: p.theme.DefaultTextStyle()}}
}

// runsFromTokens converts byte-addressed tokens into rune-length runs that
// partition the line. Gaps between tokens get the default text style.
func runsFromTokens(text string, tokens []Token, theme *Theme) []Run {
	defStyle := theme.DefaultTextStyle()
	runs := make([]Run, 0, len(tokens)+1)

	idx := 0
	bytePos := 0
	cur := defStyle
	curLen := 0
	for _, r := range text {
		for idx < len(tokens) && int(tokens[idx].EndCol) <= bytePos {
			idx++
		}
		st := defStyle
		if idx < len(tokens) && tokens[idx].Contains(uint32(bytePos)) {
			st = theme.StyleForToken(tokens[idx].Type)
		}
		if curLen == 0 || st.Equals(cur) {
			cur = st
			curLen++
		} else {
			runs = append(runs, Run{Length: curLen, Style: cur})
			cur = st
			curLen = 1
		}
		bytePos += utf8.RuneLen(r)
	}
	if curLen > 0 {
		runs = append(runs, Run{Length: curLen, Style: cur})
	}
	return runs
}
