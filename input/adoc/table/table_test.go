package table_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) (*ast.Table, diag.List) {
	t.Helper()
	result, err := parser.ParseString("test", text, parser.Settings{})
	require.NoError(t, err)
	for _, b := range result.Document.Blocks {
		if b.Context == ast.TableBlock {
			return b.Table, result.Warnings
		}
	}
	require.Fail(t, "no table in document")
	return nil, nil
}

func parseStrict(text string) error {
	_, err := parser.ParseString("test", text, parser.Settings{Strict: true})
	return err
}

func texts(row *ast.Row) []string {
	var s []string
	for _, c := range row.Cells {
		s = append(s, c.PlainText())
	}
	return s
}

func styles(row *ast.Row) []ast.CellContentStyle {
	var s []ast.CellContentStyle
	for _, c := range row.Cells {
		s = append(s, c.Content.Style)
	}
	return s
}

func TestSingleCharacterSeparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	for _, sep := range []string{";", "x", "¦", "/", "#", ":", "!", "é"} {
		text := `[separator="` + sep + `"]
|===
` + sep + `a ` + sep + `b
` + sep + `c ` + sep + `d
|===`
		tbl, warnings := parse(t, text)
		assert.Empty(t, warnings, "separator %q", sep)
		if assert.Len(t, tbl.Rows, 2, "separator %q", sep) {
			assert.Equal(t, []string{"a", "b"}, texts(tbl.Rows[0]), "separator %q", sep)
			assert.Equal(t, []string{"c", "d"}, texts(tbl.Rows[1]), "separator %q", sep)
		}
		assert.Nil(t, tbl.HeaderRow)
	}
}

func TestMultiCharacterSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	text := `[separator="||"]
|===
|a |b
|===`
	tbl, warnings := parse(t, text)
	require.Len(t, warnings, 1)
	d := warnings[0]
	assert.Equal(t, diag.MalformedAttribute, d.Kind)
	assert.Equal(t, diag.Pos{Line: 1, Column: 12, Length: 2, LineText: `[separator="||"]`}, d.Pos)
	expected := "1: [separator=\"||\"]\n" + strings.Repeat(" ", 15) +
		"^^ Cell separator must be exactly one character"
	assert.Equal(t, expected, d.PlainText())
	if assert.Len(t, tbl.Rows, 1) {
		assert.Equal(t, []string{"a", "b"}, texts(tbl.Rows[0]))
	}
	//
	err := parseStrict(text)
	var sd *diag.Diagnostic
	if assert.True(t, errors.As(err, &sd)) {
		assert.Equal(t, diag.MalformedAttribute, sd.Kind)
		assert.Equal(t, 12, sd.Pos.Column)
	}
}

func TestEmptySeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	text := `[separator=""]
|===
|a |b
|===`
	tbl, warnings := parse(t, text)
	require.Len(t, warnings, 1)
	assert.Equal(t, diag.MalformedAttribute, warnings[0].Kind)
	assert.Equal(t, 11, warnings[0].Pos.Column)
	assert.Equal(t, 2, warnings[0].Pos.Length)
	assert.Len(t, tbl.Rows, 1, "default separator stays in effect")
	assert.Error(t, parseStrict(text))
}

func TestExplicitHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, `[cols="1,1,1",%header]
|===
|Name |Age |City
|Alice |30 |Paris
|Bob |25 |Rome
|===`)
	assert.Empty(t, warnings)
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []string{"Name", "Age", "City"}, texts(tbl.HeaderRow))
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Alice", "30", "Paris"}, texts(tbl.Rows[0]))
	assert.Equal(t, []string{"Bob", "25", "Rome"}, texts(tbl.Rows[1]))
	widths := tbl.ColWidths.Distribute()
	if assert.Len(t, widths, 3) {
		assert.Equal(t, "33.3333%", widths[0].String())
		assert.Equal(t, "33.3333%", widths[1].String())
		assert.Equal(t, "33.3334%", widths[2].String())
	}
}

func TestExplicitHeaderSingleRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, "[%header]\n|===\n|a |b\n|===")
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []string{"a", "b"}, texts(tbl.HeaderRow))
	assert.Empty(t, tbl.Rows)
}

func TestHeaderCellsAreNotStyled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, `[cols="s,e",options="header"]
|===
|Name |Age
|Alice |30
|===`)
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []ast.CellContentStyle{ast.Default, ast.Default}, styles(tbl.HeaderRow))
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []ast.CellContentStyle{ast.Strong, ast.Emphasis}, styles(tbl.Rows[0]))
}

func TestImplicitHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, `|===
|Name |Age

|Alice |30
|Bob |25
|===`)
	assert.Empty(t, warnings)
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []string{"Name", "Age"}, texts(tbl.HeaderRow))
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Alice", "30"}, texts(tbl.Rows[0]))
}

func TestImplicitHeaderIsReparsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, `[cols="e,a"]
|===
|Name |Age

|Alice |30
|===`)
	assert.Empty(t, warnings)
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []ast.CellContentStyle{ast.Default, ast.Default}, styles(tbl.HeaderRow))
	assert.Equal(t, []string{"Name", "Age"}, texts(tbl.HeaderRow))
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []ast.CellContentStyle{ast.Emphasis, ast.AsciiDoc}, styles(tbl.Rows[0]))
	assert.Equal(t, []string{"Alice", "30"}, texts(tbl.Rows[0]))
}

func TestImplicitLiteralHeaderIsReparsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, "[cols=\"l,1\"]\n|===\n|lit |plain\n\n|a |b\n|===")
	assert.Empty(t, warnings)
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []ast.CellContentStyle{ast.Default, ast.Default}, styles(tbl.HeaderRow))
	assert.Equal(t, []string{"lit", "plain"}, texts(tbl.HeaderRow))
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []ast.CellContentStyle{ast.LiteralStyle, ast.Default}, styles(tbl.Rows[0]))
	assert.Equal(t, []string{"a", "b"}, texts(tbl.Rows[0]))
}

func TestDuplicatedHeaderCellIsReparsed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	for _, style := range []string{"a", "l"} {
		tbl, warnings := parse(t, "[cols=\"2\"]\n|===\n2*"+style+"|x\n\n|y |z\n|===")
		assert.Empty(t, warnings, style)
		require.NotNil(t, tbl.HeaderRow, style)
		assert.Equal(t, []ast.CellContentStyle{ast.Default, ast.Default}, styles(tbl.HeaderRow), style)
		assert.Equal(t, []string{"x", "x"}, texts(tbl.HeaderRow), style)
		require.Len(t, tbl.Rows, 1, style)
		assert.Equal(t, []string{"y", "z"}, texts(tbl.Rows[0]), style)
	}
}

func TestNoImplicitHeaderForMultiLineBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, `|===
|Name |Age
|Alice |30

|Bob |25
|===`)
	assert.Nil(t, tbl.HeaderRow)
	assert.Len(t, tbl.Rows, 3)
}

func TestNoHeaderOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, `[%noheader]
|===
|Name |Age

|Alice |30
|===`)
	assert.Nil(t, tbl.HeaderRow)
	assert.Len(t, tbl.Rows, 2)
}

func TestFooter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, "[%header%footer]\n|===\n|h\n|a\n|b\n|f\n|===")
	require.NotNil(t, tbl.HeaderRow)
	require.NotNil(t, tbl.FooterRow)
	assert.Equal(t, []string{"f"}, texts(tbl.FooterRow))
	assert.Len(t, tbl.Rows, 2)
	//
	tbl, warnings := parse(t, "[%footer]\n|===\n|===")
	assert.Empty(t, warnings)
	assert.Nil(t, tbl.FooterRow)
	assert.Nil(t, tbl.HeaderRow)
	assert.Empty(t, tbl.Rows)
}

func TestAutowidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, "[%autowidth]\n|===\n|a |b\n|===")
	for _, w := range tbl.ColWidths.Distribute() {
		assert.True(t, w.IsNone())
	}
	tbl, _ = parse(t, "|===\n|a |b\n|===")
	if widths := tbl.ColWidths.Distribute(); assert.Len(t, widths, 2) {
		assert.Equal(t, "50%", widths[0].String())
	}
}

func TestAsciiDocCell(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, `[cols="a"]
|===
|first para

second para
|===`)
	assert.Empty(t, warnings)
	require.Len(t, tbl.Rows, 1)
	cell := tbl.Rows[0].Cells[0]
	require.NotNil(t, cell.Content.Document)
	assert.Len(t, cell.Content.Document.Blocks, 2)
}

func TestBrokenAsciiDocCell(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	text := `[cols="a,1"]
|===
|
====
unclosed
|two
|===`
	tbl, warnings := parse(t, text)
	require.Len(t, warnings, 1)
	assert.Equal(t, diag.NestedParseFailure, warnings[0].Kind)
	assert.Equal(t, 4, warnings[0].Pos.Line)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"two"}, texts(tbl.Rows[0]), "broken cell is dropped")
	//
	err := parseStrict(text)
	var d *diag.Diagnostic
	if assert.True(t, errors.As(err, &d)) {
		assert.Equal(t, diag.NestedParseFailure, d.Kind)
		assert.Contains(t, d.Message, "Unterminated")
	}
}

func TestDuplicationAndSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, "[cols=\"3\"]\n|===\n3*|x\n|===")
	assert.Empty(t, warnings)
	if assert.Len(t, tbl.Rows, 1) {
		assert.Equal(t, []string{"x", "x", "x"}, texts(tbl.Rows[0]))
	}
	tbl, warnings = parse(t, "[cols=\"2\"]\n|===\n3*|x\n|===")
	assert.Len(t, tbl.Rows, 2, "copies continue in the next row")
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, diag.IncompleteRow, warnings[0].Kind)
	}
	tbl, warnings = parse(t, "[cols=\"3\"]\n|===\n2+|a |b\n|c |d |e\n|===")
	assert.Empty(t, warnings)
	if assert.Len(t, tbl.Rows, 2) {
		assert.Len(t, tbl.Rows[0].Cells, 2)
		assert.Equal(t, 2, tbl.Rows[0].Cells[0].Spec.Cols())
	}
	tbl, warnings = parse(t, "[cols=\"2\"]\n|===\n.2+|a |b\n|c\n|===")
	assert.Empty(t, warnings)
	if assert.Len(t, tbl.Rows, 2) {
		assert.Equal(t, []string{"c"}, texts(tbl.Rows[1]), "row span covers first column")
	}
	tbl, _ = parse(t, "|===\n2*|a |b\n|c |d |e\n|===")
	assert.Len(t, tbl.ColWidths, 3, "duplicated cells count for columns")
	assert.Len(t, tbl.Rows, 2)
}

func TestLargeCountsAreClamped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, "|===\n99999999999*|a\n|===")
	assert.Len(t, tbl.ColWidths, 255)
	if assert.Len(t, tbl.Rows, 1) {
		assert.Len(t, tbl.Rows[0].Cells, 255)
	}
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, diag.InvalidCellSpec, warnings[0].Kind)
		assert.Equal(t, 2, warnings[0].Pos.Line)
	}
	tbl, warnings = parse(t, "[cols=\"1\"]\n|===\n.3000000+|a\n|b\n|===")
	if assert.Len(t, tbl.Rows, 2) {
		assert.Equal(t, 255, tbl.Rows[0].Cells[0].Spec.RowsSpanned())
		assert.Equal(t, []string{"b"}, texts(tbl.Rows[1]))
	}
	assert.Len(t, warnings, 1)
	tbl, warnings = parse(t, "[cols=\"5000000*\"]\n|===\n|a\n|===")
	assert.Len(t, tbl.ColWidths, 255)
	if assert.Len(t, warnings, 2) {
		assert.Equal(t, diag.InvalidColSpec, warnings[0].Kind)
		assert.Equal(t, diag.IncompleteRow, warnings[1].Kind)
	}
}

func TestCellSpecAlignmentAndStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, "[cols=\">1,1\"]\n|===\n|a ^.>m|b\n|===")
	require.Len(t, tbl.Rows, 1)
	a, b := tbl.Rows[0].Cells[0], tbl.Rows[0].Cells[1]
	assert.Equal(t, ast.AlignRight, a.HAlign())
	assert.Equal(t, ast.AlignCenter, b.HAlign())
	assert.Equal(t, ast.AlignBottom, b.VAlign())
	assert.Equal(t, ast.Monospace, b.Content.Style)
}

func TestIncompleteRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, "[cols=\"2\"]\n|===\n|a |b\n|c\n|===")
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"c"}, texts(tbl.Rows[1]))
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, diag.IncompleteRow, warnings[0].Kind)
		assert.Equal(t, "Table row is missing cells", warnings[0].Message)
	}
}

func TestEscapedSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, "|===\n|a\\|b |c\n|===")
	if assert.Len(t, tbl.Rows, 1) {
		assert.Equal(t, []string{"a|b", "c"}, texts(tbl.Rows[0]))
	}
}

func TestParagraphsInCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, _ := parse(t, "[cols=\"1,l\"]\n|===\n|one\n\ntwo\n|  x\n  y\n|===")
	require.Len(t, tbl.Rows, 1)
	cells := tbl.Rows[0].Cells
	assert.Len(t, cells[0].Content.Paragraphs, 2)
	assert.Equal(t, "one\n\ntwo", cells[0].PlainText())
	assert.Equal(t, ast.LiteralStyle, cells[1].Content.Style)
	assert.Equal(t, "  x\n  y", cells[1].PlainText())
}

func TestDelimiterSeparatedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, ":===\nName:Age\n\nAlice:30\n:===")
	assert.Empty(t, warnings)
	require.NotNil(t, tbl.HeaderRow)
	assert.Equal(t, []string{"Name", "Age"}, texts(tbl.HeaderRow))
	if assert.Len(t, tbl.Rows, 1) {
		assert.Equal(t, []string{"Alice", "30"}, texts(tbl.Rows[0]))
	}
	tbl, _ = parse(t, ",===\na,b\nc,d\n,===")
	assert.Len(t, tbl.Rows, 2)
}

func TestCommaSeparatedValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	tbl, warnings := parse(t, "[format=csv]\n|===\n\"a,b\",c\nd,\"e \"\"q\"\"\"\n|===")
	assert.Empty(t, warnings)
	if assert.Len(t, tbl.Rows, 2) {
		assert.Equal(t, []string{"a,b", "c"}, texts(tbl.Rows[0]))
		assert.Equal(t, []string{"d", `e "q"`}, texts(tbl.Rows[1]))
	}
	tbl, _ = parse(t, "[format=tsv]\n|===\na\tb\nc\td\n|===")
	if assert.Len(t, tbl.Rows, 2) {
		assert.Equal(t, []string{"c", "d"}, texts(tbl.Rows[1]))
	}
}

func TestUnterminatedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	text := "para\n\n|===\n|a |b"
	tbl, warnings := parse(t, text)
	if assert.Len(t, warnings, 1) {
		assert.Equal(t, diag.UnterminatedBlock, warnings[0].Kind)
		assert.Equal(t, "Table never closed, started here", warnings[0].Message)
		assert.Equal(t, 3, warnings[0].Pos.Line)
	}
	assert.Len(t, tbl.Rows, 1)
	assert.Error(t, parseStrict(text))
}

func TestContentAfterTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.table")
	defer teardown()
	//
	result, err := parser.ParseString("test", "|===\n|a\n|===\nafter\n\nlast", parser.Settings{})
	require.NoError(t, err)
	blocks := result.Document.Blocks
	if assert.Len(t, blocks, 3) {
		assert.Equal(t, ast.TableBlock, blocks[0].Context)
		assert.Equal(t, ast.ParagraphBlock, blocks[1].Context)
		assert.Equal(t, ast.ParagraphBlock, blocks[2].Context)
	}
}
