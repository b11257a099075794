package highlight

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Highlighter tokenizes one line at a time. prevState is the lexer state at
// the end of the previous line; the returned state is the state at the end of
// this line and feeds the next call.
type Highlighter interface {
	HighlightLine(line string, prevState LexerState) ([]Token, LexerState)

	// Language returns the language this highlighter handles.
	Language() string

	// FileExtensions returns the file extensions this highlighter handles,
	// with leading dots.
	FileExtensions() []string
}

// rule is a single-line regex rule.
type rule struct {
	pattern  *regexp.Regexp
	token    TokenType
	submatch int
}

// blockRule is a multi-line construct delimited by literal markers. Each
// block owns one LexerState, assigned when the block is added.
type blockRule struct {
	start string
	end   string
	token TokenType
	state LexerState
}

// RegexLexer is a line-oriented lexer built from literal block markers, regex
// rules, and keyword tables. Blocks are matched first in earliest-occurrence
// order, then rules in registration order, then bare identifiers.
type RegexLexer struct {
	language   string
	extensions []string
	rules      []rule
	keywords   map[string]TokenType
	blocks     []blockRule
}

// NewRegexLexer creates an empty lexer for the given language.
func NewRegexLexer(language string, extensions ...string) *RegexLexer {
	return &RegexLexer{
		language:   language,
		extensions: extensions,
		keywords:   make(map[string]TokenType),
	}
}

// AddRule registers a regex rule. The pattern must be valid; use
// AddRuleChecked for patterns from external files.
func (lx *RegexLexer) AddRule(pattern string, token TokenType) *RegexLexer {
	lx.rules = append(lx.rules, rule{
		pattern: regexp.MustCompile(pattern),
		token:   token,
	})
	return lx
}

// AddRuleChecked registers a regex rule, reporting pattern errors instead of
// panicking.
func (lx *RegexLexer) AddRuleChecked(pattern string, token TokenType, submatch int) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	lx.rules = append(lx.rules, rule{pattern: re, token: token, submatch: submatch})
	return nil
}

// AddKeywords registers keywords sharing one token type.
func (lx *RegexLexer) AddKeywords(token TokenType, words ...string) *RegexLexer {
	for _, w := range words {
		lx.keywords[w] = token
	}
	return lx
}

// AddBlock registers a multi-line construct. The block's continuation state
// is allocated here, one per block in registration order.
func (lx *RegexLexer) AddBlock(start, end string, token TokenType) *RegexLexer {
	lx.blocks = append(lx.blocks, blockRule{
		start: start,
		end:   end,
		token: token,
		state: LexerState(len(lx.blocks) + 1),
	})
	return lx
}

// Language returns the language name.
func (lx *RegexLexer) Language() string {
	return lx.language
}

// FileExtensions returns the supported file extensions.
func (lx *RegexLexer) FileExtensions() []string {
	return lx.extensions
}

// HighlightLine tokenizes a single line.
func (lx *RegexLexer) HighlightLine(line string, prevState LexerState) ([]Token, LexerState) {
	if prevState != StateNone {
		block, ok := lx.blockForState(prevState)
		if !ok {
			// State from another lexer; start fresh.
			return lx.highlightNormal(line)
		}
		endIdx := strings.Index(line, block.end)
		if endIdx < 0 {
			// The whole line stays inside the construct.
			if line == "" {
				return nil, prevState
			}
			return []Token{{Type: block.token, StartCol: 0, EndCol: uint32(len(line))}}, prevState
		}
		closed := endIdx + len(block.end)
		tokens := []Token{{Type: block.token, StartCol: 0, EndCol: uint32(closed)}}
		rest, state := lx.highlightFrom(line, closed)
		return append(tokens, rest...), state
	}
	return lx.highlightNormal(line)
}

// highlightFrom tokenizes line[from:] and shifts the results back into whole
// line coordinates.
func (lx *RegexLexer) highlightFrom(line string, from int) ([]Token, LexerState) {
	tokens, state := lx.highlightNormal(line[from:])
	for i := range tokens {
		tokens[i].StartCol += uint32(from)
		tokens[i].EndCol += uint32(from)
	}
	return tokens, state
}

// highlightNormal tokenizes a line that starts outside any multi-line
// construct.
func (lx *RegexLexer) highlightNormal(line string) ([]Token, LexerState) {
	tokens := make([]Token, 0, 8)
	covered := make([]bool, len(line))
	state := StateNone

	// Block markers claim text first. Scanning repeatedly for the earliest
	// start keeps overlapping blocks deterministic.
	pos := 0
	for pos < len(line) {
		block, idx := lx.earliestBlock(line, pos)
		if idx < 0 {
			break
		}
		bodyStart := idx + len(block.start)
		endIdx := strings.Index(line[bodyStart:], block.end)
		if endIdx < 0 {
			tokens = append(tokens, Token{Type: block.token, StartCol: uint32(idx), EndCol: uint32(len(line))})
			markCovered(covered, idx, len(line))
			state = block.state
			break
		}
		endPos := bodyStart + endIdx + len(block.end)
		tokens = append(tokens, Token{Type: block.token, StartCol: uint32(idx), EndCol: uint32(endPos)})
		markCovered(covered, idx, endPos)
		pos = endPos
	}

	for _, r := range lx.rules {
		for _, match := range r.pattern.FindAllStringSubmatchIndex(line, -1) {
			start, end := match[0], match[1]
			if r.submatch > 0 && len(match) > r.submatch*2+1 {
				start, end = match[r.submatch*2], match[r.submatch*2+1]
			}
			if start >= 0 && end > start && !isCovered(covered, start, end) {
				tokens = append(tokens, Token{Type: r.token, StartCol: uint32(start), EndCol: uint32(end)})
				markCovered(covered, start, end)
			}
		}
	}

	tokens = append(tokens, lx.scanWords(line, covered)...)

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].StartCol < tokens[j].StartCol
	})

	return tokens, state
}

// earliestBlock returns the block whose start marker occurs first at or after
// pos. Registration order breaks ties.
func (lx *RegexLexer) earliestBlock(line string, pos int) (blockRule, int) {
	best := -1
	var bestBlock blockRule
	for _, b := range lx.blocks {
		idx := strings.Index(line[pos:], b.start)
		if idx < 0 {
			continue
		}
		idx += pos
		if best < 0 || idx < best {
			best = idx
			bestBlock = b
		}
	}
	return bestBlock, best
}

// blockForState finds the block that owns a continuation state.
func (lx *RegexLexer) blockForState(state LexerState) (blockRule, bool) {
	for _, b := range lx.blocks {
		if b.state == state {
			return b, true
		}
	}
	return blockRule{}, false
}

// scanWords finds identifier-shaped words outside covered regions and
// classifies them against the keyword table.
func (lx *RegexLexer) scanWords(line string, covered []bool) []Token {
	tokens := make([]Token, 0, 4)
	i := 0
	for i < len(line) {
		if covered[i] {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsLetter(r) && r != '_' {
			i += size
			continue
		}
		start := i
		for i < len(line) {
			r, size = utf8.DecodeRuneInString(line[i:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			i += size
		}
		if isCovered(covered, start, i) {
			continue
		}
		token := TokenIdentifier
		if kw, ok := lx.keywords[line[start:i]]; ok {
			token = kw
		}
		tokens = append(tokens, Token{Type: token, StartCol: uint32(start), EndCol: uint32(i)})
		markCovered(covered, start, i)
	}
	return tokens
}

func isCovered(covered []bool, start, end int) bool {
	if start < 0 || start >= len(covered) {
		return false
	}
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered []bool, start, end int) {
	for i := max(start, 0); i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
