package html

import (
	"fmt"
	"strings"

	"github.com/npillmayer/adoc/core"
	"github.com/npillmayer/adoc/core/option"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/engine/eval"
)

// tableState is what the converter has to remember about an open table.
// Tables nest through cells with AsciiDoc content.
type tableState struct {
	table   *ast.Table
	cellTag string // "td" or "th"
	style   ast.CellContentStyle
	paras   int // paragraphs written to the current cell
}

func (c *Converter) currentTable() *tableState {
	top, ok := c.tables.Peek()
	if !ok {
		c.fail(core.Error(core.EINTERNAL, "table content outside of a table"))
		return &tableState{cellTag: "td"}
	}
	return top.(*tableState)
}

var frameClasses = map[string]string{
	"all": "all", "ends": "ends", "topbot": "ends", "sides": "sides", "none": "none",
}

var gridClasses = map[string]string{
	"all": "all", "rows": "rows", "cols": "cols", "none": "none",
}

// tableClasses assembles the class attribute of a table from the block's
// attributes `frame`, `grid`, `%autowidth` and its roles.
func tableClasses(b *ast.Block) string {
	frame, grid := "all", "all"
	if f, ok := b.Named("frame"); ok && frameClasses[f] != "" {
		frame = frameClasses[f]
	}
	if g, ok := b.Named("grid"); ok && gridClasses[g] != "" {
		grid = gridClasses[g]
	}
	classes := []string{"tableblock", "frame-" + frame, "grid-" + grid}
	switch {
	case b.HasOption("autowidth"):
		classes = append(classes, "fit-content")
	case !hasWidth(b):
		classes = append(classes, "stretch")
	}
	if b.Meta.Attrs != nil {
		classes = append(classes, b.Meta.Attrs.Roles...)
	}
	return strings.Join(classes, " ")
}

func hasWidth(b *ast.Block) bool {
	w, ok := b.Named("width")
	return ok && w != "" && w != "100%"
}

// EnterTable is part of interface eval.Backend.
func (c *Converter) EnterTable(t *ast.Table, b *ast.Block) {
	c.tables.Push(&tableState{table: t})
	c.write("<table")
	if b.Meta.Attrs != nil && b.Meta.Attrs.ID != "" {
		c.write(attr("id", escape(b.Meta.Attrs.ID)))
	}
	c.write(attr("class", escape(tableClasses(b))))
	if hasWidth(b) {
		w, _ := b.Named("width")
		c.write(attr("style", "width: "+escape(strings.TrimSuffix(w, "%"))+"%;"))
	}
	c.write(">\n")
	if b.Meta.Title != "" {
		c.tableCount++
		c.write(`<caption class="title">`, fmt.Sprintf("Table %d. ", c.tableCount),
			escape(b.Meta.Title), "</caption>\n")
	}
	c.colgroup(t, b.HasOption("autowidth"))
}

// colgroup writes the column widths of a table. Columns of auto width, and
// all columns of tables with option autowidth, get no width.
func (c *Converter) colgroup(t *ast.Table, autowidth bool) {
	if len(t.ColWidths) == 0 {
		return
	}
	c.write("<colgroup>\n")
	for _, w := range t.ColWidths.Distribute() {
		if autowidth {
			c.write("<col>\n")
			continue
		}
		col, err := w.Match(option.Maybe{
			option.None: "<col>\n",
			option.Some: func(o interface{}) (interface{}, error) {
				return fmt.Sprintf("<col style=\"width: %s;\">\n", o.(ast.DistributedColWidth).Percent), nil
			},
		})
		if err != nil {
			c.fail(core.WrapError(err, core.EINTERNAL, "column width"))
			return
		}
		c.write(col.(string))
	}
	c.write("</colgroup>\n")
}

// ExitTable is part of interface eval.Backend.
func (c *Converter) ExitTable(t *ast.Table, b *ast.Block) {
	c.tables.Pop()
	c.write("</table>\n")
}

var sectionTags = map[eval.Section]string{
	eval.Header: "thead",
	eval.Body:   "tbody",
	eval.Footer: "tfoot",
}

// EnterTableSection is part of interface eval.Backend.
func (c *Converter) EnterTableSection(t *ast.Table, section eval.Section) {
	c.write("<", sectionTags[section], ">\n")
}

// ExitTableSection is part of interface eval.Backend.
func (c *Converter) ExitTableSection(t *ast.Table, section eval.Section) {
	c.write("</", sectionTags[section], ">\n")
}

// EnterTableRow is part of interface eval.Backend.
func (c *Converter) EnterTableRow(row *ast.Row, section eval.Section) {
	c.write("<tr>\n")
}

// ExitTableRow is part of interface eval.Backend.
func (c *Converter) ExitTableRow(row *ast.Row, section eval.Section) {
	c.write("</tr>\n")
}

// EnterTableCell is part of interface eval.Backend.
func (c *Converter) EnterTableCell(cell *ast.Cell, section eval.Section) {
	st := c.currentTable()
	st.cellTag = "td"
	if section == eval.Header || cell.Content.Style == ast.Header {
		st.cellTag = "th"
	}
	st.style = cell.Content.Style
	st.paras = 0
	c.write("<", st.cellTag)
	c.write(attr("class", "tableblock halign-"+cell.HAlign().String()+" valign-"+cell.VAlign().String()))
	if n := cell.Spec.Cols(); n > 1 {
		c.write(attr("colspan", n))
	}
	if n := cell.Spec.RowsSpanned(); n > 1 {
		c.write(attr("rowspan", n))
	}
	c.write(">")
}

// ExitTableCell is part of interface eval.Backend.
func (c *Converter) ExitTableCell(cell *ast.Cell, section eval.Section) {
	c.write("</", c.currentTable().cellTag, ">\n")
}

var styleTags = map[ast.CellContentStyle]string{
	ast.Emphasis:  "em",
	ast.Strong:    "strong",
	ast.Monospace: "code",
}

// EnterCellParagraph is part of interface eval.Backend.
func (c *Converter) EnterCellParagraph(cell *ast.Cell, section eval.Section) {
	st := c.currentTable()
	st.paras++
	switch {
	case section == eval.Header:
		if st.paras > 1 {
			c.write(" ")
		}
	case st.style == ast.LiteralStyle:
		c.write(`<div class="literal"><pre>`)
	default:
		c.write(`<p class="tableblock">`)
		if tag, ok := styleTags[st.style]; ok {
			c.write("<", tag, ">")
		}
	}
}

// ExitCellParagraph is part of interface eval.Backend.
func (c *Converter) ExitCellParagraph(cell *ast.Cell, section eval.Section) {
	st := c.currentTable()
	switch {
	case section == eval.Header:
	case st.style == ast.LiteralStyle:
		c.write("</pre></div>")
	default:
		if tag, ok := styleTags[st.style]; ok {
			c.write("</", tag, ">")
		}
		c.write("</p>")
	}
}

// EnterAsciiDocCell is part of interface eval.Backend.
func (c *Converter) EnterAsciiDocCell(doc *ast.Document) {
	c.write("<div class=\"content\">\n")
}

// ExitAsciiDocCell is part of interface eval.Backend.
func (c *Converter) ExitAsciiDocCell(doc *ast.Document) {
	c.write("</div>")
}
