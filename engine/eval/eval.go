package eval

import (
	"github.com/npillmayer/adoc/engine/ast"
)

// Section tags the part of a table a row belongs to.
type Section uint8

const (
	Header Section = iota
	Body
	Footer
)

func (s Section) String() string {
	switch s {
	case Header:
		return "header"
	case Footer:
		return "footer"
	}
	return "body"
}

// Backend receives callbacks from Eval. Hooks for tables receive the table
// section they belong to. Hooks must not modify the nodes they are handed.
type Backend interface {
	EnterDocument(doc *ast.Document)
	ExitDocument(doc *ast.Document)

	EnterParagraph(b *ast.Block)
	ExitParagraph(b *ast.Block)
	EnterCompound(b *ast.Block)
	ExitCompound(b *ast.Block)
	EnterVerbatim(b *ast.Block)
	ExitVerbatim(b *ast.Block)

	EnterTable(t *ast.Table, b *ast.Block)
	ExitTable(t *ast.Table, b *ast.Block)
	EnterTableSection(t *ast.Table, section Section)
	ExitTableSection(t *ast.Table, section Section)
	EnterTableRow(row *ast.Row, section Section)
	ExitTableRow(row *ast.Row, section Section)
	EnterTableCell(cell *ast.Cell, section Section)
	ExitTableCell(cell *ast.Cell, section Section)
	EnterCellParagraph(cell *ast.Cell, section Section)
	ExitCellParagraph(cell *ast.Cell, section Section)
	EnterAsciiDocCell(doc *ast.Document)
	ExitAsciiDocCell(doc *ast.Document)

	EnterInline(n *ast.Inline)
	ExitInline(n *ast.Inline)
	VisitInline(n *ast.Inline)
}

// Eval walks a document and calls the hooks of a backend.
func Eval(doc *ast.Document, backend Backend) {
	if doc == nil || backend == nil {
		return
	}
	tracer().Debugf("evaluating document with %d blocks", len(doc.Blocks))
	backend.EnterDocument(doc)
	blocks(doc.Blocks, backend)
	backend.ExitDocument(doc)
}

func blocks(bs []*ast.Block, backend Backend) {
	for _, b := range bs {
		block(b, backend)
	}
}

func block(b *ast.Block, backend Backend) {
	switch {
	case b.Context == ast.TableBlock:
		if b.Table != nil {
			table(b.Table, b, backend)
		}
	case b.Context.IsCompound():
		backend.EnterCompound(b)
		blocks(b.Blocks, backend)
		backend.ExitCompound(b)
	case b.Context.IsVerbatim():
		backend.EnterVerbatim(b)
		Inlines(b.Inlines, backend)
		backend.ExitVerbatim(b)
	default:
		backend.EnterParagraph(b)
		Inlines(b.Inlines, backend)
		backend.ExitParagraph(b)
	}
}

// Inlines walks a sequence of inline nodes. Backends may call it for content
// they want to render out of the regular order.
func Inlines(inlines []ast.Inline, backend Backend) {
	for i := range inlines {
		n := &inlines[i]
		if n.Kind.IsContainer() {
			backend.EnterInline(n)
			Inlines(n.Children, backend)
			backend.ExitInline(n)
			continue
		}
		backend.VisitInline(n)
	}
}

// --- Tables ----------------------------------------------------------------

func table(t *ast.Table, b *ast.Block, backend Backend) {
	tracer().Debugf("evaluating table with %d body rows", len(t.Rows))
	backend.EnterTable(t, b)
	if t.HeaderRow != nil {
		section(t, Header, []*ast.Row{t.HeaderRow}, backend)
	}
	if len(t.Rows) > 0 {
		section(t, Body, t.Rows, backend)
	}
	if t.FooterRow != nil {
		section(t, Footer, []*ast.Row{t.FooterRow}, backend)
	}
	backend.ExitTable(t, b)
}

func section(t *ast.Table, sect Section, rows []*ast.Row, backend Backend) {
	backend.EnterTableSection(t, sect)
	for _, row := range rows {
		backend.EnterTableRow(row, sect)
		for _, cell := range row.Cells {
			backend.EnterTableCell(cell, sect)
			cellContent(cell, sect, backend)
			backend.ExitTableCell(cell, sect)
		}
		backend.ExitTableRow(row, sect)
	}
	backend.ExitTableSection(t, sect)
}

func cellContent(cell *ast.Cell, sect Section, backend Backend) {
	switch cell.Content.Style {
	case ast.AsciiDoc:
		doc := cell.Content.Document
		if doc == nil {
			return
		}
		backend.EnterAsciiDocCell(doc)
		blocks(doc.Blocks, backend)
		backend.ExitAsciiDocCell(doc)
	case ast.LiteralStyle:
		backend.EnterCellParagraph(cell, sect)
		Inlines(cell.Content.Literal, backend)
		backend.ExitCellParagraph(cell, sect)
	default:
		for _, p := range cell.Content.Paragraphs {
			backend.EnterCellParagraph(cell, sect)
			Inlines(p, backend)
			backend.ExitCellParagraph(cell, sect)
		}
	}
}
