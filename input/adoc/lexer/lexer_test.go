package lexer

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeTableLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.lexer")
	defer teardown()
	//
	tokens := Tokenize("2+|foo bar12 *x*", 10)
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{Digits, Plus, Pipe, Word, Whitespace, Word, Whitespace, Star, Word, Star}, kinds)
	assert.Equal(t, "bar12", tokens[5].Lexeme)
	assert.Equal(t, Loc{Start: 12, End: 13}, tokens[2].Loc, "expected locations to be absolute")
}

func TestTokenizeGraphemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.lexer")
	defer teardown()
	//
	tokens := Tokenize("a?b\tc", 0)
	assert.Len(t, tokens, 3)
	assert.Equal(t, "a?b", tokens[0].Lexeme, "expected '?' to be embedded in a word")
	assert.Equal(t, Tab, tokens[1].Kind)
}

func TestLexerLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.lexer")
	defer teardown()
	//
	src := NewSource("test", "|===\r\n|a |b\n\n|===")
	lx := New(src)
	var lines []*Line
	for l := lx.NextLine(); l != nil; l = lx.NextLine() {
		lines = append(lines, l)
	}
	assert.Len(t, lines, 4)
	assert.Equal(t, "|a |b", lines[1].Src)
	assert.Equal(t, Loc{Start: 5, End: 10}, lines[1].Loc)
	assert.True(t, lines[2].IsBlank())
	assert.True(t, lines[0].StartsWith(Pipe))
	//
	pos := src.Pos(7, 8)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 2, pos.Column)
	assert.Equal(t, "|a |b", pos.LineText)
}

func TestSubLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.lexer")
	defer teardown()
	//
	src := NewSource("test", "xxxx\nhello world")
	lx := Sub(src, "world", 11)
	line := lx.NextLine()
	assert.NotNil(t, line)
	assert.Equal(t, 11, line.Tokens[0].Loc.Start)
	assert.Equal(t, 2, src.Pos(line.Loc.Start, line.Loc.End).Line)
	assert.Nil(t, lx.NextLine())
}
