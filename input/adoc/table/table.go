package table

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/adoc/core"
	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// Parse parses a delimited table block. The current line of lines is the
// opening delimiter, e.g. `|===`. Parse consumes lines up to and including
// the closing delimiter and restores lines following it to the host.
//
// An error is returned only if parsing has to be aborted. Otherwise problems
// are reported to the host's diagnostics sink and a best-effort table block
// is returned.
func Parse(host Host, lines *lexer.Lines, meta ast.BlockMeta) (*ast.Block, error) {
	delim := lines.ConsumeCurrent()
	if delim == nil || delim.Src == "" {
		return nil, core.Error(core.EINTERNAL, "table parse started without delimiter line")
	}
	delimCh, _ := utf8.DecodeRuneInString(delim.Src)
	var colSpecs []*ast.ColSpec
	if cols, ok := meta.Attrs.NamedAttr("cols"); ok {
		colSpecs = parseColSpecs(cols, host)
	}
	format, err := selectFormat(delimCh, meta.Attrs, host)
	if err != nil {
		return nil, err
	}
	ctx := newParseContext(host, format, colSpecs)
	ctx.autowidth = meta.Attrs.HasOption("autowidth")
	switch {
	case meta.Attrs.HasOption("header"):
		ctx.header = ExplicitlySet
	case meta.Attrs.HasOption("noheader"):
		ctx.header = ExplicitlyUnset
	case lines.Len() != 1:
		// only a first row on a line of its own may be an implicit header
		ctx.header = FoundNone
	}
	tracer().Debugf("table %s: header state %s, %d declared columns", format, ctx.header, ctx.numCols)
	tokens, end, err := tableContent(host, lines, delim)
	if err != nil {
		return nil, err
	}
	tokens = prepareTokens(tokens, format)
	sepKind, _ := format.separatorKind()
	if format.Grammar == Prefix {
		ctx.raws = scanPrefix(tokens, sepKind)
	} else {
		ctx.raws = scanDelimited(tokens, sepKind, format.Grammar == CSV)
	}
	ctx.limitCellSpecs()
	if ctx.counting {
		if err := ctx.parseImplicitFirstRow(); err != nil {
			return nil, err
		}
	}
	for {
		row, err := ctx.nextRow()
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		ctx.pushRow(row)
	}
	if meta.Attrs.HasOption("footer") && len(ctx.table.Rows) > 0 {
		last := len(ctx.table.Rows) - 1
		ctx.table.FooterRow = ctx.table.Rows[last]
		ctx.table.Rows = ctx.table.Rows[:last]
	}
	tracer().Infof("table with %d columns, %d body rows, header=%v, footer=%v",
		ctx.numCols, len(ctx.table.Rows), ctx.table.HeaderRow != nil, ctx.table.FooterRow != nil)
	return &ast.Block{
		Context: ast.TableBlock,
		Meta:    meta,
		Table:   ctx.table,
		Loc:     ast.Loc{Start: meta.Start, End: end},
	}, nil
}

// limitCellSpecs clamps duplication counts and spans of all cells.
func (ctx *parseContext) limitCellSpecs() {
	for i := range ctx.raws {
		if limitCounts(&ctx.raws[i].spec) {
			ctx.host.Sink().Append(diag.NewWarning(diag.InvalidCellSpec,
				fmt.Sprintf("Cell spec count exceeds %d", maxCount), pos(ctx.host, ctx.raws[i].loc)))
		}
	}
}

// pushRow records a completed row, either as the header row or as a body row.
func (ctx *parseContext) pushRow(row *ast.Row) {
	if len(ctx.table.Rows) == 0 && ctx.table.HeaderRow == nil &&
		(ctx.header.knownToExist() || ctx.canInferHeader) {
		if ctx.header.isUnknown() {
			ctx.header = FoundImplicit
			tracer().Debugf("implicit header row found")
			ctx.reparseHeaderCells(row)
		}
		ctx.table.HeaderRow = row
		return
	}
	ctx.table.Rows = append(ctx.table.Rows, row)
	if ctx.header.isUnknown() {
		ctx.header = FoundNone
	}
}

// parseImplicitFirstRow fixes the number of columns from the cells on the
// first line of the table body and records the first row.
func (ctx *parseContext) parseImplicitFirstRow() error {
	if len(ctx.raws) == 0 {
		return nil
	}
	firstLine := ctx.raws[0].line
	for _, raw := range ctx.raws {
		if raw.line != firstLine {
			break
		}
		ctx.numCols += raw.spec.Cols() * raw.spec.Repeat()
	}
	tracer().Debugf("counted %d columns in first row", ctx.numCols)
	row, err := ctx.nextRow()
	if err != nil || row == nil {
		return err
	}
	ctx.finishImplicitHeaderRow(row)
	return nil
}

func (ctx *parseContext) finishImplicitHeaderRow(row *ast.Row) {
	width := ast.Proportional(1)
	if ctx.autowidth {
		width = ast.AutoWidth()
	}
	ctx.table.ColWidths = make(ast.ColWidths, ctx.numCols)
	for i := range ctx.table.ColWidths {
		ctx.table.ColWidths[i] = width
	}
	ctx.pushRow(row)
}

// --- Row assembly ----------------------------------------------------------

// nextRow assembles the next row from the cells split by the grammar.
// Rows are complete when all their columns are filled, either by cells or by
// row spans of cells above. Duplicated cells which do not fit into a row
// continue in the next one. An incomplete last row is reported and kept.
// nextRow returns nil if all cells have been consumed.
func (ctx *parseContext) nextRow() (*ast.Row, error) {
	if ctx.numCols <= 0 {
		return nil, nil
	}
	for {
		ctx.skipPhantoms()
		if ctx.col >= ctx.numCols {
			if row := ctx.emitRow(); row != nil {
				return row, nil
			}
			continue
		}
		if len(ctx.copies) == 0 {
			if ctx.next >= len(ctx.raws) {
				return ctx.flushRow(), nil
			}
			raw := ctx.raws[ctx.next]
			ctx.next++
			cell, repeat, err := ctx.finishCell(raw, ctx.col)
			if err != nil {
				return nil, err
			}
			for i := 0; i < repeat; i++ {
				placed := placedCell{spec: raw.spec, loc: raw.loc}
				if cell != nil {
					c := *cell
					placed.cell = &c
				}
				ctx.copies = append(ctx.copies, placed)
			}
		}
		ctx.place(ctx.copies[0])
		ctx.copies = ctx.copies[1:]
	}
}

func (ctx *parseContext) skipPhantoms() {
	for ctx.col < ctx.numCols && ctx.phantoms[[2]int{ctx.effectiveRowIdx, ctx.col}] {
		ctx.col++
	}
}

func (ctx *parseContext) place(p placedCell) {
	span := p.spec.Cols()
	if ctx.col+span > ctx.numCols {
		span = ctx.numCols - ctx.col
	}
	for r := 1; r < p.spec.RowsSpanned(); r++ {
		for c := ctx.col; c < ctx.col+span; c++ {
			ctx.phantoms[[2]int{ctx.effectiveRowIdx + r, c}] = true
		}
	}
	if p.cell != nil {
		ctx.cells = append(ctx.cells, p.cell)
	}
	ctx.lastLoc = p.loc
	ctx.col += span
}

// emitRow finishes the current row. Rows without cells, e.g. because all of
// them have been dropped, are skipped.
func (ctx *parseContext) emitRow() *ast.Row {
	cells := ctx.cells
	ctx.cells, ctx.col = nil, 0
	ctx.effectiveRowIdx++
	if len(cells) == 0 {
		return nil
	}
	return ast.NewRow(cells)
}

func (ctx *parseContext) flushRow() *ast.Row {
	if len(ctx.cells) == 0 {
		return nil
	}
	ctx.host.Sink().Append(diag.NewWarning(diag.IncompleteRow,
		"Table row is missing cells", pos(ctx.host, ctx.lastLoc)))
	return ctx.emitRow()
}
