package main

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/adoc/input/adoc/parser"
)

func TestCollectTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.cli")
	defer teardown()
	//
	text := "|===\n|a\n|===\n\n====\n|===\n|b\n|===\n====\n\n[cols=\"a\"]\n|===\n|outer\n\n!===\n!inner\n!===\n|==="
	result, err := parser.ParseString("test", text, parser.Settings{Strict: true})
	require.NoError(t, err)
	tables := collectTables(result.Document)
	assert.Len(t, tables, 4)
	assert.Empty(t, collectTables(nil))
}

func TestTableData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.cli")
	defer teardown()
	//
	text := "[cols=\"3\",%header]\n|===\n|Name |Age |City\n\n2+|Alice   Smith |Paris\n|Bob\n|==="
	result, err := parser.ParseString("test", text, parser.Settings{})
	require.NoError(t, err)
	tables := collectTables(result.Document)
	require.Len(t, tables, 1)
	data := tableData(tables[0].Table)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"Name", "Age", "City"}, data[0])
	assert.Equal(t, []string{"Alice Smith", "", "Paris"}, data[1])
	assert.Equal(t, []string{"Bob", "", ""}, data[2])
}

func TestLongCellsAreTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.cli")
	defer teardown()
	//
	text := "|===\n|" + strings.Repeat("漢字", 20) + "\n|==="
	result, err := parser.ParseString("test", text, parser.Settings{})
	require.NoError(t, err)
	data := tableData(collectTables(result.Document)[0].Table)
	require.Len(t, data, 1)
	assert.LessOrEqual(t, runewidth.StringWidth(data[0][0]), maxCellWidth)
	assert.True(t, strings.HasSuffix(data[0][0], "…"))
}

func TestReplCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.cli")
	defer teardown()
	//
	intp := &Intp{job: &job{}}
	assert.True(t, intp.Execute(" :quit "))
	assert.True(t, intp.Execute(":q"))
}
