package table

import (
	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// tableContent collects the tokens of a table body, i.e., everything between
// the opening delimiter line and the closing delimiter line, which has to be
// identical to the opening one. Lines are joined with newline tokens.
//
// It returns the tokens and the end position of the table block. Lines of
// the contiguous group following the closing delimiter are restored to the
// host. A missing closing delimiter is reported at the opening one; the
// tokens read so far are returned nevertheless.
func tableContent(host Host, lines *lexer.Lines, delim *lexer.Line) ([]lexer.Token, int, error) {
	tokens := make([]lexer.Token, 0, lines.NumTokens()+lines.Len())
	end := delim.Loc.End + 1
	for line := lines.ConsumeCurrent(); line != nil; line = lines.ConsumeCurrent() {
		if line.Src == delim.Src {
			host.RestoreLines(lines)
			return tokens, line.Loc.End, nil
		}
		if loc, ok := line.LastLoc(); ok {
			end = loc.End
		}
		tokens = line.DrainInto(tokens)
		if !lines.IsEmpty() {
			tokens = append(tokens, lexer.NewlineToken(end))
			end++
		}
	}
	for line := host.ReadLine(); line != nil; line = host.ReadLine() {
		if len(tokens) > 0 {
			tokens = append(tokens, lexer.NewlineToken(end))
			end++
		}
		if line.Src == delim.Src {
			return tokens, line.Loc.End, nil
		}
		if loc, ok := line.LastLoc(); ok {
			end = loc.End
		}
		tokens = line.DrainInto(tokens)
	}
	d := diag.New(diag.UnterminatedBlock, "Table never closed, started here",
		pos(host, ast.Loc{Start: delim.Loc.Start, End: delim.Loc.End}))
	if err := host.Report(d); err != nil {
		return tokens, end, err
	}
	return tokens, end, nil
}
