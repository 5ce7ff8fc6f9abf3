package table

import (
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// scanDelimited splits a token stream into cells separated by separator
// tokens. The end of a line ends a cell as well. With quoting enabled, a
// cell starting with a double quote extends to the matching closing quote
// and may contain separators and newlines; two double quotes within a quoted
// cell stand for a single one.
//
// Newlines following a cell are kept as part of it, so that blank lines
// after the first row may be detected.
func scanDelimited(tokens []lexer.Token, sepKind lexer.TokenKind, quoting bool) []rawCell {
	s := &dsvScanner{tokens: tokens, sepKind: sepKind, quoting: quoting}
	return s.scan()
}

type dsvScanner struct {
	tokens  []lexer.Token
	sepKind lexer.TokenKind
	quoting bool
	i       int
	line    int
	cells   []rawCell
}

func (s *dsvScanner) isBlank(t lexer.Token) bool {
	return t.IsWhitespaceish() && t.Kind != lexer.Newline && t.Kind != s.sepKind
}

func (s *dsvScanner) scan() []rawCell {
	atLineStart, afterSep := true, false
	for s.i < len(s.tokens) {
		if atLineStart && s.skipBlankLine() {
			continue
		}
		cell := rawCell{line: s.line}
		start := s.i
		if s.quoting {
			cell.tokens = s.quoted()
		}
		for s.i < len(s.tokens) {
			t := s.tokens[s.i]
			if t.Kind == s.sepKind || t.Kind == lexer.Newline {
				break
			}
			cell.tokens = append(cell.tokens, t)
			s.i++
		}
		afterSep = false
		atLineStart = false
		if s.i < len(s.tokens) {
			if s.tokens[s.i].Kind == s.sepKind {
				s.i++
				afterSep = true
			} else {
				for s.i < len(s.tokens) && s.tokens[s.i].Kind == lexer.Newline {
					cell.tokens = append(cell.tokens, s.tokens[s.i])
					s.line++
					s.i++
				}
				atLineStart = true
			}
		}
		cell.loc = s.loc(start, cell.tokens)
		s.cells = append(s.cells, cell)
	}
	if afterSep {
		end := s.tokens[len(s.tokens)-1].Loc.End
		s.cells = append(s.cells, rawCell{line: s.line, loc: ast.Loc{Start: end, End: end}})
	}
	return s.cells
}

// skipBlankLine skips a line consisting of whitespace only.
func (s *dsvScanner) skipBlankLine() bool {
	j := s.i
	for j < len(s.tokens) && s.isBlank(s.tokens[j]) {
		j++
	}
	if j == len(s.tokens) {
		s.i = j
		return true
	}
	if s.tokens[j].Kind == lexer.Newline {
		s.i = j + 1
		s.line++
		return true
	}
	return false
}

// quoted reads a quoted cell value, if the cell starts with a double quote.
func (s *dsvScanner) quoted() []lexer.Token {
	j := s.i
	for j < len(s.tokens) && s.isBlank(s.tokens[j]) {
		j++
	}
	if j == len(s.tokens) || s.tokens[j].Kind != lexer.DoubleQuote {
		return nil
	}
	var content []lexer.Token
	for j++; j < len(s.tokens); j++ {
		t := s.tokens[j]
		if t.Kind == lexer.DoubleQuote {
			if j+1 < len(s.tokens) && s.tokens[j+1].Kind == lexer.DoubleQuote {
				content = append(content, t)
				j++
				continue
			}
			s.i = j + 1
			return content
		}
		if t.Kind == lexer.Newline {
			s.line++
		}
		content = append(content, t)
	}
	s.i = j // unbalanced quote: the rest of the body is content
	return content
}

func (s *dsvScanner) loc(start int, content []lexer.Token) ast.Loc {
	if len(content) > 0 {
		return ast.Loc{Start: content[0].Loc.Start, End: content[len(content)-1].Loc.End}
	}
	if start < len(s.tokens) {
		at := s.tokens[start].Loc.Start
		return ast.Loc{Start: at, End: at}
	}
	return ast.Loc{}
}
