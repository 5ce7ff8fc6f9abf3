package lexer

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
)

var setupGraphemes sync.Once

// Lexer reads lines of tokens from a text. The text is either a complete
// document source or a part of it; token locations are always absolute
// positions within the document source.
type Lexer struct {
	src    *Source
	text   string
	offset int // position of text within src
	pos    int // read position within text
}

// New creates a lexer for a complete document source.
func New(src *Source) *Lexer {
	return Sub(src, src.Text(), 0)
}

// Sub creates a lexer for a text fragment of src, starting at byte position
// offset of the document source.
func Sub(src *Source, text string, offset int) *Lexer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &Lexer{src: src, text: text, offset: offset}
}

// Source returns the document source this lexer is working on.
func (lx *Lexer) Source() *Source {
	return lx.src
}

// AtEnd is true if all the lexer's text has been read.
func (lx *Lexer) AtEnd() bool {
	return lx.pos >= len(lx.text)
}

// NextLine reads the next line of text and tokenizes it. The newline character
// is not part of the line. Returns nil at the end of the text.
func (lx *Lexer) NextLine() *Line {
	if lx.AtEnd() {
		return nil
	}
	start := lx.pos
	end := strings.IndexByte(lx.text[start:], '\n')
	if end < 0 {
		end = len(lx.text)
		lx.pos = end
	} else {
		end += start
		lx.pos = end + 1
	}
	raw := lx.text[start:end]
	line := &Line{
		Src: raw,
		Loc: Loc{Start: lx.offset + start, End: lx.offset + end},
	}
	line.Tokens = Tokenize(raw, lx.offset+start)
	return line
}

// Tokenize splits a single line of text into tokens. Position at is the
// absolute location of the first byte of text.
func Tokenize(text string, at int) []Token {
	if text == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	tokens := make([]Token, 0, 16)
	pos := 0
	run := -1 // start of current multi-character run, or -1
	var runKind TokenKind
	closeRun := func() {
		if run >= 0 {
			tokens = append(tokens, Token{
				Kind:   runKind,
				Lexeme: text[run:pos],
				Loc:    Loc{Start: at + run, End: at + pos},
			})
			run = -1
		}
	}
	l := gstr.Len()
	for i := 0; i < l; i++ {
		g := string(gstr.Nth(i))
		r, _ := utf8.DecodeRuneInString(g)
		if kind, ok := singleChars[r]; ok && len(g) == utf8.RuneLen(r) {
			closeRun()
			tokens = append(tokens, Token{Kind: kind, Lexeme: g, Loc: Loc{Start: at + pos, End: at + pos + len(g)}})
			pos += len(g)
			continue
		}
		kind := classify(r)
		if run >= 0 && kind != runKind {
			if runKind == Digits && kind == Word {
				runKind = Word // digits followed by letters form a word
			} else if !(runKind == Word && kind == Digits) {
				closeRun()
			}
		}
		if run < 0 {
			run, runKind = pos, kind
		}
		pos += len(g)
	}
	closeRun()
	tracer().Debugf("tokenized %q into %d tokens", text, len(tokens))
	return tokens
}

func classify(r rune) TokenKind {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case r >= '0' && r <= '9':
		return Digits
	}
	return Word
}
