package lexer

import "strings"

// Line is a single line of source text together with its tokens.
type Line struct {
	Src    string
	Tokens []Token
	Loc    Loc
}

// IsBlank is true for lines without any non-whitespace character.
func (l *Line) IsBlank() bool {
	return strings.TrimSpace(l.Src) == ""
}

// FirstToken returns the first token of a line, if any.
func (l *Line) FirstToken() (Token, bool) {
	if len(l.Tokens) == 0 {
		return Token{}, false
	}
	return l.Tokens[0], true
}

// StartsWith checks if the first token of a line is of a given kind.
func (l *Line) StartsWith(kind TokenKind) bool {
	t, ok := l.FirstToken()
	return ok && t.Kind == kind
}

// LastLoc returns the location of the last token, if any.
func (l *Line) LastLoc() (Loc, bool) {
	if len(l.Tokens) == 0 {
		return Loc{}, false
	}
	return l.Tokens[len(l.Tokens)-1].Loc, true
}

// DrainInto appends the tokens of a line to a token buffer and empties the line.
func (l *Line) DrainInto(buf []Token) []Token {
	buf = append(buf, l.Tokens...)
	l.Tokens = nil
	return buf
}

// --- Contiguous lines ------------------------------------------------------

// Lines is a group of contiguous, non-blank lines.
type Lines struct {
	lines []*Line
}

// NewLines creates a group of lines.
func NewLines(lines ...*Line) *Lines {
	return &Lines{lines: lines}
}

// Len returns the number of lines not yet consumed.
func (ls *Lines) Len() int {
	return len(ls.lines)
}

// IsEmpty is true if all lines have been consumed.
func (ls *Lines) IsEmpty() bool {
	return len(ls.lines) == 0
}

// Current returns the first line not yet consumed, or nil.
func (ls *Lines) Current() *Line {
	if len(ls.lines) == 0 {
		return nil
	}
	return ls.lines[0]
}

// ConsumeCurrent removes and returns the first line, or nil.
func (ls *Lines) ConsumeCurrent() *Line {
	if len(ls.lines) == 0 {
		return nil
	}
	l := ls.lines[0]
	ls.lines = ls.lines[1:]
	return l
}

// Append adds a line at the end of the group.
func (ls *Lines) Append(l *Line) {
	ls.lines = append(ls.lines, l)
}

// NumTokens counts the tokens of all lines not yet consumed.
func (ls *Lines) NumTokens() int {
	n := 0
	for _, l := range ls.lines {
		n += len(l.Tokens)
	}
	return n
}
