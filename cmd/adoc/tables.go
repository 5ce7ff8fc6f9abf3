package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/npillmayer/adoc/engine/ast"
)

// collectTables returns the table blocks of a document in document order,
// including tables nested in compound blocks and in AsciiDoc cells.
func collectTables(doc *ast.Document) []*ast.Block {
	var tables []*ast.Block
	var walk func(blocks []*ast.Block)
	walkRow := func(row *ast.Row) {
		if row == nil {
			return
		}
		for _, cell := range row.Cells {
			if cell.Content.Document != nil {
				walk(cell.Content.Document.Blocks)
			}
		}
	}
	walk = func(blocks []*ast.Block) {
		for _, b := range blocks {
			switch {
			case b.Table != nil:
				tables = append(tables, b)
				walkRow(b.Table.HeaderRow)
				for _, row := range b.Table.Rows {
					walkRow(row)
				}
				walkRow(b.Table.FooterRow)
			case b.Context.IsCompound():
				walk(b.Blocks)
			}
		}
	}
	if doc != nil {
		walk(doc.Blocks)
	}
	return tables
}

// tableData flattens a table into rows of cell texts, header row first.
// Cells spanning several columns are padded with empty strings, and all
// rows are padded to the widest row.
func tableData(t *ast.Table) [][]string {
	var data [][]string
	add := func(row *ast.Row) {
		if row == nil {
			return
		}
		var texts []string
		for _, cell := range row.Cells {
			texts = append(texts, cellText(cell))
			for i := 1; i < cell.Spec.Cols(); i++ {
				texts = append(texts, "")
			}
		}
		data = append(data, texts)
	}
	add(t.HeaderRow)
	for _, row := range t.Rows {
		add(row)
	}
	add(t.FooterRow)
	width := len(t.ColWidths)
	for _, texts := range data {
		if len(texts) > width {
			width = len(texts)
		}
	}
	for i := range data {
		for len(data[i]) < width {
			data[i] = append(data[i], "")
		}
	}
	return data
}

// maxCellWidth is the display width at which cell texts are cut off in
// table previews.
const maxCellWidth = 32

func cellText(cell *ast.Cell) string {
	text := strings.Join(strings.Fields(cell.PlainText()), " ")
	return runewidth.Truncate(text, maxCellWidth, "…")
}

func previewTables(doc *ast.Document) {
	for i, b := range collectTables(doc) {
		title := b.Meta.Title
		if title == "" {
			title = "untitled"
		}
		pterm.DefaultSection.Printfln("Table %d (%s), %d rows", i+1, title, len(b.Table.Rows))
		data := tableData(b.Table)
		if len(data) == 0 {
			continue
		}
		err := pterm.DefaultTable.WithHasHeader(b.Table.HeaderRow != nil).WithData(data).Render()
		if err != nil {
			tracer().Errorf("table preview: %v", err)
		}
	}
}
