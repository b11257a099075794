// Package highlight turns buffer lines into tokens and styled runs.
package highlight

// TokenType is the semantic class of a token. Names follow TextMate scope
// conventions at a coarse level.
type TokenType uint16

const (
	TokenNone TokenType = iota

	// Comments
	TokenComment
	TokenCommentLine
	TokenCommentBlock
	TokenCommentDoc

	// Strings
	TokenString
	TokenStringEscape
	TokenStringRaw
	TokenStringRegexp

	// Numbers
	TokenNumber
	TokenNumberHex
	TokenNumberOctal
	TokenNumberBinary

	// Keywords
	TokenKeyword
	TokenKeywordControl
	TokenKeywordDeclaration
	TokenKeywordOther

	// Operators and punctuation
	TokenOperator
	TokenPunctuation

	// Identifiers
	TokenIdentifier
	TokenVariable
	TokenConstant
	TokenConstantLanguage

	// Functions and types
	TokenFunction
	TokenFunctionBuiltin
	TokenTypeName
	TokenTypeBuiltin
	TokenStorageModifier

	// Markup (markdown and friends)
	TokenMarkupHeading
	TokenMarkupBold
	TokenMarkupItalic
	TokenMarkupStrike
	TokenMarkupQuote
	TokenMarkupList
	TokenMarkupLink
	TokenMarkupCode

	// Special
	TokenMeta
	TokenLabel
	TokenInvalid

	tokenTypeCount
)

// String returns the scope name of the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// Scope returns the TextMate-style scope name. Identical to String.
func (t TokenType) Scope() string {
	return t.String()
}

// IsComment reports whether this is a comment token.
func (t TokenType) IsComment() bool {
	return t >= TokenComment && t <= TokenCommentDoc
}

// IsString reports whether this is a string token.
func (t TokenType) IsString() bool {
	return t >= TokenString && t <= TokenStringRegexp
}

// IsNumber reports whether this is a number token.
func (t TokenType) IsNumber() bool {
	return t >= TokenNumber && t <= TokenNumberBinary
}

// IsKeyword reports whether this is a keyword token.
func (t TokenType) IsKeyword() bool {
	return t >= TokenKeyword && t <= TokenKeywordOther
}

// IsMarkup reports whether this is a markup token.
func (t TokenType) IsMarkup() bool {
	return t >= TokenMarkupHeading && t <= TokenMarkupCode
}

// Token is one highlighted span on a line. Columns are byte offsets into the
// line text, StartCol inclusive and EndCol exclusive.
type Token struct {
	Type     TokenType
	StartCol uint32
	EndCol   uint32
}

// Len returns the byte length of the token.
func (t Token) Len() uint32 {
	return t.EndCol - t.StartCol
}

// Contains reports whether the byte column falls inside the token.
func (t Token) Contains(col uint32) bool {
	return col >= t.StartCol && col < t.EndCol
}

// LexerState carries multi-line lexer context from one line to the next.
// StateNone means no open construct. Other values are allocated by the lexer
// that produced them and are meaningful only to that lexer.
type LexerState uint32

// StateNone is the state outside any multi-line construct.
const StateNone LexerState = 0

// TokenTypeFromString resolves a scope string to a token type, walking up the
// dotted hierarchy until a known scope is found. Unknown scopes map to
// TokenNone.
func TokenTypeFromString(scope string) TokenType {
	for scope != "" {
		if t, ok := scopeToToken[scope]; ok {
			return t
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
	return TokenNone
}

var tokenTypeNames = []string{
	TokenNone: "none",

	TokenComment:      "comment",
	TokenCommentLine:  "comment.line",
	TokenCommentBlock: "comment.block",
	TokenCommentDoc:   "comment.block.documentation",

	TokenString:       "string",
	TokenStringEscape: "string.escape",
	TokenStringRaw:    "string.raw",
	TokenStringRegexp: "string.regexp",

	TokenNumber:       "number",
	TokenNumberHex:    "number.hex",
	TokenNumberOctal:  "number.octal",
	TokenNumberBinary: "number.binary",

	TokenKeyword:            "keyword",
	TokenKeywordControl:     "keyword.control",
	TokenKeywordDeclaration: "keyword.declaration",
	TokenKeywordOther:       "keyword.other",

	TokenOperator:    "operator",
	TokenPunctuation: "punctuation",

	TokenIdentifier:       "identifier",
	TokenVariable:         "variable",
	TokenConstant:         "constant",
	TokenConstantLanguage: "constant.language",

	TokenFunction:        "function",
	TokenFunctionBuiltin: "function.builtin",
	TokenTypeName:        "type",
	TokenTypeBuiltin:     "type.builtin",
	TokenStorageModifier: "storage.modifier",

	TokenMarkupHeading: "markup.heading",
	TokenMarkupBold:    "markup.bold",
	TokenMarkupItalic:  "markup.italic",
	TokenMarkupStrike:  "markup.strike",
	TokenMarkupQuote:   "markup.quote",
	TokenMarkupList:    "markup.list",
	TokenMarkupLink:    "markup.link",
	TokenMarkupCode:    "markup.code",

	TokenMeta:    "meta",
	TokenLabel:   "label",
	TokenInvalid: "invalid",
}

var scopeToToken = func() map[string]TokenType {
	m := make(map[string]TokenType, len(tokenTypeNames))
	for i, name := range tokenTypeNames {
		if name != "" {
			m[name] = TokenType(i)
		}
	}
	return m
}()
