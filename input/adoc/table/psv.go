package table

import (
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// scanPrefix splits a token stream into cells, each starting at a separator
// token. The optional cell spec of a cell precedes its separator.
// Content in front of the first separator, other than a cell spec, is
// dropped.
func scanPrefix(tokens []lexer.Token, sepKind lexer.TokenKind) []rawCell {
	first := nextSeparator(tokens, 0, sepKind)
	if first == len(tokens) {
		if len(tokens) > 0 {
			tracer().Infof("table body without cell separator, content dropped")
		}
		return nil
	}
	_, spec, _ := splitTrailingSpec(tokens[:first], true)
	line := countNewlines(tokens[:first])
	var cells []rawCell
	for i := first; i < len(tokens); {
		k := nextSeparator(tokens, i+1, sepKind)
		content := tokens[i+1 : k]
		lines := countNewlines(content)
		var nextSpec ast.CellSpec
		if k < len(tokens) {
			content, nextSpec, _ = splitTrailingSpec(content, false)
		}
		cells = append(cells, rawCell{
			spec:   spec,
			tokens: content,
			loc:    contentLoc(tokens[i], content),
			line:   line,
		})
		line += lines
		spec = nextSpec
		i = k
	}
	return cells
}

func nextSeparator(tokens []lexer.Token, from int, sepKind lexer.TokenKind) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i].Kind == sepKind {
			return i
		}
	}
	return len(tokens)
}

func countNewlines(tokens []lexer.Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == lexer.Newline {
			n++
		}
	}
	return n
}

// contentLoc is the span of a cell's content, which starts right after its
// separator.
func contentLoc(sep lexer.Token, content []lexer.Token) ast.Loc {
	if len(content) == 0 {
		return ast.Loc{Start: sep.Loc.End, End: sep.Loc.End}
	}
	return ast.Loc{Start: content[0].Loc.Start, End: content[len(content)-1].Loc.End}
}
