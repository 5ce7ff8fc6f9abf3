package lexer

import (
	"fmt"

	"github.com/npillmayer/adoc/engine/ast"
)

// TokenKind is the type of a token.
type TokenKind uint8

// Token kinds. Multi-character kinds are Word, Digits and Whitespace; all the
// others stand for exactly one character.
const (
	Word TokenKind = iota
	Digits
	Whitespace
	Newline
	Tab
	Pipe
	Bang
	Colon
	Comma
	SemiColon
	Backslash
	Star
	Underscore
	Backtick
	Hash
	Caret
	Tilde
	Plus
	Dot
	Equals
	LessThan
	GreaterThan
	Ampersand
	DoubleQuote
	SingleQuote
	OpenBracket
	CloseBracket
	Percent
	Dash
	Slash
	CellSeparator // a cell separator split out of a larger token
)

var kindNames = [...]string{
	"Word", "Digits", "Whitespace", "Newline", "Tab", "Pipe", "Bang", "Colon", "Comma",
	"SemiColon", "Backslash", "Star", "Underscore", "Backtick", "Hash", "Caret", "Tilde",
	"Plus", "Dot", "Equals", "LessThan", "GreaterThan", "Ampersand", "DoubleQuote",
	"SingleQuote", "OpenBracket", "CloseBracket", "Percent", "Dash", "Slash", "CellSeparator",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

var singleChars = map[rune]TokenKind{
	'\n': Newline,
	'\t': Tab,
	'|':  Pipe,
	'!':  Bang,
	':':  Colon,
	',':  Comma,
	';':  SemiColon,
	'\\': Backslash,
	'*':  Star,
	'_':  Underscore,
	'`':  Backtick,
	'#':  Hash,
	'^':  Caret,
	'~':  Tilde,
	'+':  Plus,
	'.':  Dot,
	'=':  Equals,
	'<':  LessThan,
	'>':  GreaterThan,
	'&':  Ampersand,
	'"':  DoubleQuote,
	'\'': SingleQuote,
	'[':  OpenBracket,
	']':  CloseBracket,
	'%':  Percent,
	'-':  Dash,
	'/':  Slash,
}

// SingleCharKind returns the token kind the lexer uses for character r, if r
// is always lexed as a token of its own. Characters without a kind of their
// own are embedded in Word tokens.
func SingleCharKind(r rune) (TokenKind, bool) {
	k, ok := singleChars[r]
	return k, ok
}

// Loc is a span of byte positions within the document source.
type Loc = ast.Loc

// Token is a lexeme of the markup source.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Loc    Loc
}

// Is checks the kind of a token.
func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// IsWhitespaceish is true for spaces, tabs and newlines.
func (t Token) IsWhitespaceish() bool {
	return t.Kind == Whitespace || t.Kind == Tab || t.Kind == Newline
}

func (t Token) String() string {
	return fmt.Sprintf("%s%q@%d", t.Kind, t.Lexeme, t.Loc.Start)
}

// NewlineToken creates a synthetic newline token at position pos.
func NewlineToken(pos int) Token {
	return Token{Kind: Newline, Lexeme: "\n", Loc: Loc{Start: pos, End: pos + 1}}
}
