package table

import (
	"errors"
	"strings"

	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// finishCell resolves the content of a cell placed in column col. It returns
// the cell and the number of copies it expands to. A cell with AsciiDoc
// style whose content fails to parse is dropped in lenient mode: finishCell
// then returns a nil cell.
func (ctx *parseContext) finishCell(raw rawCell, col int) (*ast.Cell, int, error) {
	colSpec := ctx.colSpec(col)
	style := ast.Default
	if colSpec != nil {
		style = colSpec.Style
	}
	if raw.spec.Style != nil {
		style = *raw.spec.Style
	}
	if ctx.header.knownToExist() && ctx.table.HeaderRow == nil {
		style = ast.Default // header cells are never styled
	}
	tokens, loc := raw.tokens, raw.loc
	if ctx.header.isUnknown() {
		var ws []lexer.TokenKind
		for len(tokens) > 0 && tokens[len(tokens)-1].IsWhitespaceish() {
			t := tokens[len(tokens)-1]
			tokens = tokens[:len(tokens)-1]
			loc.End = t.Loc.Start
			ws = append(ws, t.Kind)
		}
		if n := len(ws); n > 1 && ws[n-2] == lexer.Newline && ws[n-1] == lexer.Newline {
			tracer().Debugf("cell followed by blank line, header row may be inferred")
			ctx.canInferHeader = true
		}
	} else {
		ctx.canInferHeader = false
		for len(tokens) > 0 && tokens[len(tokens)-1].IsWhitespaceish() {
			loc.End = tokens[len(tokens)-1].Loc.Start
			tokens = tokens[:len(tokens)-1]
		}
	}
	repeat := raw.spec.Repeat()
	data := cellData{tokens: tokens, loc: loc, spec: raw.spec, colSpec: colSpec}
	if style == ast.AsciiDoc {
		cell, err := ctx.parseAsciiDocCell(data)
		if err != nil {
			return nil, repeat, err
		}
		if cell != nil && ctx.header.isUnknown() {
			ctx.pushReparse(data, repeat)
		}
		return cell, repeat, nil
	}
	if style == ast.LiteralStyle && ctx.header.isUnknown() {
		ctx.pushReparse(data, repeat)
	}
	return ctx.parseNonAsciiDocCell(data, style), repeat, nil
}

// parseAsciiDocCell parses the content of a cell as a nested document.
func (ctx *parseContext) parseAsciiDocCell(data cellData) (*ast.Cell, error) {
	tokens := trimForCell(data.tokens, ast.AsciiDoc)
	doc := &ast.Document{Loc: data.loc}
	if len(tokens) > 0 {
		start, end := tokens[0].Loc.Start, tokens[len(tokens)-1].Loc.End
		text := ctx.host.Source().Slice(start, end)
		nested, warnings, err := ctx.host.ParseCell(text, start)
		if err != nil {
			var d *diag.Diagnostic
			if !errors.As(err, &d) {
				d = diag.New(diag.Generic, err.Error(), pos(ctx.host, data.loc))
			}
			failure := diag.New(diag.NestedParseFailure, d.Message, d.Pos)
			if ctx.host.Strict() {
				return nil, failure
			}
			tracer().Infof("dropping cell: %s", failure.Error())
			ctx.host.Sink().Append(failure)
			return nil, nil
		}
		ctx.host.Sink().Extend(warnings)
		doc = nested
	}
	return &ast.Cell{
		Content: ast.CellContent{Style: ast.AsciiDoc, Document: doc},
		Spec:    data.spec,
		ColSpec: data.colSpec,
	}, nil
}

// parseNonAsciiDocCell parses the content of a cell into inline nodes.
func (ctx *parseContext) parseNonAsciiDocCell(data cellData, style ast.CellContentStyle) *ast.Cell {
	var nodes []ast.Inline
	if tokens := trimForCell(data.tokens, style); len(tokens) > 0 {
		nodes = ctx.host.ParseInlines(tokens, style.Subs())
	}
	content := ast.CellContent{Style: style}
	if style == ast.LiteralStyle {
		content.Literal = nodes
	} else {
		content.Paragraphs = splitParagraphs(nodes)
	}
	return &ast.Cell{Content: content, Spec: data.spec, ColSpec: data.colSpec}
}

// reparseHeaderCells re-interprets the cells of a row which turned out to be
// an implicit header row. Header cells are never styled: AsciiDoc and
// literal cells are parsed again from their tokens, other styled cells keep
// their paragraphs.
func (ctx *parseContext) reparseHeaderCells(row *ast.Row) {
	for i, cell := range row.Cells {
		switch cell.Content.Style {
		case ast.AsciiDoc, ast.LiteralStyle:
			data, ok := ctx.popReparse()
			if !ok {
				tracer().Errorf("no tokens to reparse header cell %d", i)
				continue
			}
			row.Cells[i] = ctx.parseNonAsciiDocCell(data, ast.Default)
		case ast.Emphasis, ast.Header, ast.Monospace, ast.Strong:
			c := *cell
			c.Content = cell.Content.Restyled(ast.Default)
			row.Cells[i] = &c
		}
	}
}

// splitParagraphs splits inline content at blank lines, i.e., at two
// consecutive joining newlines.
func splitParagraphs(nodes []ast.Inline) [][]ast.Inline {
	if len(nodes) == 0 {
		return nil
	}
	paras := [][]ast.Inline{nil}
	for _, n := range nodes {
		cur := paras[len(paras)-1]
		if n.Kind == ast.JoiningNewline && len(cur) > 0 && cur[len(cur)-1].Kind == ast.JoiningNewline {
			paras[len(paras)-1] = cur[:len(cur)-1]
			paras = append(paras, nil)
			continue
		}
		paras[len(paras)-1] = append(cur, n)
	}
	return paras
}

// trimForCell strips surrounding whitespace from the content of a cell.
// Literal cells keep the indentation of their first line.
func trimForCell(tokens []lexer.Token, style ast.CellContentStyle) []lexer.Token {
	for len(tokens) > 0 {
		t := tokens[0]
		if t.Kind == lexer.Newline || (style != ast.LiteralStyle && t.IsWhitespaceish()) {
			tokens = tokens[1:]
			continue
		}
		if style == ast.LiteralStyle && t.IsWhitespaceish() && onlyBlanksToNewline(tokens) {
			tokens = tokens[1:]
			continue
		}
		break
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].IsWhitespaceish() {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// onlyBlanksToNewline is true if tokens start with a blank line.
func onlyBlanksToNewline(tokens []lexer.Token) bool {
	for _, t := range tokens {
		if t.Kind == lexer.Newline {
			return true
		}
		if !t.IsWhitespaceish() && strings.TrimSpace(t.Lexeme) != "" {
			return false
		}
	}
	return false
}
