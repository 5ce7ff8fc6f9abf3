package parser

import (
	"strings"

	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// marks maps formatting marks to the kind of inline node they produce.
var marks = map[lexer.TokenKind]ast.InlineKind{
	lexer.Star:       ast.Bold,
	lexer.Underscore: ast.Italic,
	lexer.Backtick:   ast.Mono,
	lexer.Hash:       ast.Highlight,
	lexer.Caret:      ast.Superscript,
	lexer.Tilde:      ast.Subscript,
}

// parseInlines parses a sequence of tokens into inline nodes, applying the
// substitutions in subs.
func parseInlines(tokens []lexer.Token, subs ast.Subs) []ast.Inline {
	ip := inlineParser{tokens: tokens, subs: subs}
	return ip.parse(0, len(tokens))
}

type inlineParser struct {
	tokens []lexer.Token
	subs   ast.Subs
}

type nodes []ast.Inline

// text appends text, merging it with a preceding text node.
func (ns *nodes) text(s string, loc ast.Loc) {
	if n := len(*ns); n > 0 && (*ns)[n-1].Kind == ast.Text {
		(*ns)[n-1].Text += s
		(*ns)[n-1].Loc.End = loc.End
		return
	}
	*ns = append(*ns, ast.TextNode(s, loc))
}

func (ns *nodes) leaf(kind ast.InlineKind, s string, loc ast.Loc) {
	*ns = append(*ns, ast.Inline{Kind: kind, Text: s, Loc: loc})
}

func (ip *inlineParser) formatting() bool {
	return ip.subs.Has(ast.InlineFormatting)
}

// parse parses tokens[from:to].
func (ip *inlineParser) parse(from, to int) []ast.Inline {
	var out nodes
	tokens := ip.tokens
	for i := from; i < to; {
		t := tokens[i]
		switch {
		case t.Kind == lexer.Newline:
			out.leaf(ast.JoiningNewline, "\n", t.Loc)
			// a line of whitespace only counts as blank
			if i+2 < to && tokens[i+1].IsWhitespaceish() && tokens[i+2].Kind == lexer.Newline {
				i++
			}
			i++
		case t.Kind == lexer.Backslash && ip.formatting() && i+1 < to && isEscapable(tokens[i+1].Kind):
			out.text(tokens[i+1].Lexeme, ast.Loc{Start: t.Loc.Start, End: tokens[i+1].Loc.End})
			i += 2
		case isSpecialChar(t.Kind) && ip.subs.Has(ast.SpecialChars):
			out.leaf(ast.SpecialChar, t.Lexeme, t.Loc)
			i++
		case (t.Kind == lexer.Whitespace || t.Kind == lexer.Tab) && len(t.Lexeme) > 1:
			out.leaf(ast.MultiCharWhitespace, t.Lexeme, t.Loc)
			i++
		case ip.formatting() && (t.Kind == lexer.Plus || t.Kind == lexer.Backtick):
			if n, next, ok := ip.passthrough(i, to); ok {
				out = append(out, n)
				i = next
				continue
			}
			if n, next, ok := ip.span(i, to); ok {
				out = append(out, n)
				i = next
				continue
			}
			out.text(t.Lexeme, t.Loc)
			i++
		case ip.formatting() && isMark(t.Kind):
			if n, next, ok := ip.span(i, to); ok {
				out = append(out, n)
				i = next
				continue
			}
			out.text(t.Lexeme, t.Loc)
			i++
		default:
			out.text(t.Lexeme, t.Loc)
			i++
		}
	}
	return out
}

// span tries to parse a formatted span starting with a mark at position i.
// Superscript and subscript are unconstrained and must not contain spaces.
// Other marks are either unconstrained (doubled, as in `**x**`) or
// constrained (as in `*x*`), the latter only at word boundaries.
func (ip *inlineParser) span(i, to int) (ast.Inline, int, bool) {
	tokens := ip.tokens
	kind := tokens[i].Kind
	nodeKind, ok := marks[kind]
	if !ok {
		return ast.Inline{}, i, false
	}
	if kind == lexer.Caret || kind == lexer.Tilde {
		for j := i + 1; j < to; j++ {
			if tokens[j].IsWhitespaceish() {
				break
			}
			if tokens[j].Kind == kind {
				if j == i+1 {
					break
				}
				return ip.container(nodeKind, i, i+1, j, j+1), j + 1, true
			}
		}
		return ast.Inline{}, i, false
	}
	if i+1 < to && tokens[i+1].Kind == kind { // unconstrained
		for j := i + 3; j+1 < to; j++ {
			if tokens[j].Kind == kind && tokens[j+1].Kind == kind {
				return ip.container(nodeKind, i, i+2, j, j+2), j + 2, true
			}
		}
	}
	if i > 0 && isWordChar(tokens[i-1]) || i+1 >= to || tokens[i+1].IsWhitespaceish() {
		return ast.Inline{}, i, false
	}
	for j := i + 1; j < to; j++ {
		if tokens[j].Kind != kind || tokens[j-1].IsWhitespaceish() || j == i+1 {
			continue
		}
		if j+1 < to && isWordChar(tokens[j+1]) {
			continue
		}
		return ip.container(nodeKind, i, i+1, j, j+1), j + 1, true
	}
	return ast.Inline{}, i, false
}

func (ip *inlineParser) container(kind ast.InlineKind, start, from, to, end int) ast.Inline {
	return ast.Inline{
		Kind:     kind,
		Children: ip.parse(from, to),
		Loc:      ast.Loc{Start: ip.tokens[start].Loc.Start, End: ip.tokens[end-1].Loc.End},
	}
}

// passthrough parses `+text+` and `` `+text+` ``, which keep their content
// unformatted.
func (ip *inlineParser) passthrough(i, to int) (ast.Inline, int, bool) {
	tokens := ip.tokens
	kind, open := ast.Passthrough, 1
	if tokens[i].Kind == lexer.Backtick {
		if i+1 >= to || tokens[i+1].Kind != lexer.Plus {
			return ast.Inline{}, i, false
		}
		kind, open = ast.LitMono, 2
	} else if i > 0 && isWordChar(tokens[i-1]) {
		return ast.Inline{}, i, false
	}
	for j := i + open; j < to; j++ {
		if tokens[j].Kind != lexer.Plus || j == i+open {
			continue
		}
		if kind == ast.LitMono {
			if j+1 >= to || tokens[j+1].Kind != lexer.Backtick {
				continue
			}
		} else if j+1 < to && isWordChar(tokens[j+1]) {
			continue
		}
		var b strings.Builder
		for _, t := range tokens[i+open : j] {
			b.WriteString(t.Lexeme)
		}
		end := j + open
		return ast.Inline{
			Kind: kind,
			Text: b.String(),
			Loc:  ast.Loc{Start: tokens[i].Loc.Start, End: tokens[end-1].Loc.End},
		}, end, true
	}
	return ast.Inline{}, i, false
}

func isMark(k lexer.TokenKind) bool {
	_, ok := marks[k]
	return ok
}

func isEscapable(k lexer.TokenKind) bool {
	return isMark(k) || k == lexer.Plus || k == lexer.Backslash || k == lexer.Pipe ||
		k == lexer.Bang || k == lexer.OpenBracket || k == lexer.CellSeparator
}

func isSpecialChar(k lexer.TokenKind) bool {
	return k == lexer.LessThan || k == lexer.GreaterThan || k == lexer.Ampersand
}

func isWordChar(t lexer.Token) bool {
	return t.Kind == lexer.Word || t.Kind == lexer.Digits
}
