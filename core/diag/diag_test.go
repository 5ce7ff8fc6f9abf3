package diag

import (
	"errors"
	"testing"

	"github.com/npillmayer/adoc/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.core")
	defer teardown()
	//
	d := New(MalformedAttribute, "Cell separator must be exactly one character", Pos{
		Line:     1,
		Column:   12,
		Length:   2,
		LineText: `[separator="||"]`,
	})
	expected := "1: [separator=\"||\"]\n" +
		"               ^^ Cell separator must be exactly one character"
	assert.Equal(t, expected, d.PlainText())
	assert.Equal(t, core.ESYNTAX, core.Code(d))
}

func TestSinkTakeAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.core")
	defer teardown()
	//
	sink := NewSink()
	sink.Append(NewWarning(IncompleteRow, "row incomplete", Pos{Line: 3}))
	assert.False(t, sink.HasErrors())
	sink.Extend(List{New(UnterminatedBlock, "never closed", Pos{Line: 1})})
	assert.True(t, sink.HasErrors())
	assert.Equal(t, 2, sink.Len())
	l := sink.TakeAll()
	assert.Equal(t, 0, sink.Len())
	assert.Len(t, l, 2)
	assert.Equal(t, IncompleteRow, l.First().Kind)
	//
	var err error = l
	var target List
	assert.True(t, errors.As(err, &target))
	assert.Contains(t, err.Error(), "and 1 more")
}
