package ast

import (
	"testing"

	"github.com/npillmayer/adoc/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func formatted(dist []DistributedColWidth) []string {
	s := make([]string, len(dist))
	for i, d := range dist {
		s[i] = d.String()
	}
	return s
}

func TestDistributeEqualWeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.ast")
	defer teardown()
	//
	cw := ColWidths{Proportional(1), Proportional(1), Proportional(1)}
	assert.Equal(t, []string{"33.3333%", "33.3333%", "33.3334%"}, formatted(cw.Distribute()))
}

func TestDistributeMixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.ast")
	defer teardown()
	//
	cw := ColWidths{Percentage(50), Proportional(1), AutoWidth(), Proportional(3)}
	dist := cw.Distribute()
	assert.Equal(t, []string{"50%", "12.5%", "auto", "37.5%"}, formatted(dist))
	assert.True(t, dist[2].IsNone())
}

func TestDistributeMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.ast")
	defer teardown()
	//
	dist := ColWidths{AutoWidth(), Proportional(2)}.Distribute()
	for i, expected := range []string{"", "100"} {
		v, err := dist[i].Match(option.Maybe{
			option.None: "",
			option.Some: func(o interface{}) (interface{}, error) {
				return o.(DistributedColWidth).Percent.Format(), nil
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, expected, v)
	}
}

func TestAttrListOptions(t *testing.T) {
	attrs := &AttrList{
		Options:    []string{"header"},
		NamedAttrs: []Attr{{Name: "opts", Value: "footer, autowidth"}, {Name: "noheader-option"}},
	}
	assert.True(t, attrs.HasOption("header"))
	assert.True(t, attrs.HasOption("footer"))
	assert.True(t, attrs.HasOption("autowidth"))
	assert.True(t, attrs.HasOption("noheader"))
	assert.False(t, attrs.HasOption("breakable"))
	var none *AttrList
	assert.False(t, none.HasOption("header"))
	assert.Equal(t, "", none.Style())
}

func TestNamedAttrLastWins(t *testing.T) {
	attrs := &AttrList{NamedAttrs: []Attr{{Name: "cols", Value: "1"}, {Name: "cols", Value: "2"}}}
	v, ok := attrs.Named("cols")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestCellAlignmentFallback(t *testing.T) {
	cell := &Cell{ColSpec: &ColSpec{HAlign: AlignRight}}
	assert.Equal(t, AlignRight, cell.HAlign())
	assert.Equal(t, AlignTop, cell.VAlign())
	cell.Spec.HAlign = AlignCenter
	assert.Equal(t, AlignCenter, cell.HAlign())
}

func TestInnerText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adoc.ast")
	defer teardown()
	//
	inlines := []Inline{
		TextNode("Hello ", Loc{}),
		{Kind: Bold, Children: []Inline{TextNode("big", Loc{})}},
		{Kind: JoiningNewline},
		TextNode("world", Loc{}),
	}
	text, err := InnerText(inlines)
	assert.NoError(t, err)
	assert.Equal(t, "Hello big\nworld", text.String())
	_, err = InnerText(nil)
	assert.Error(t, err)
}

func TestCellPlainText(t *testing.T) {
	cell := &Cell{Content: CellContent{
		Style: Default,
		Paragraphs: [][]Inline{
			{TextNode("one", Loc{})},
			{TextNode("two", Loc{})},
		},
	}}
	assert.Equal(t, "one\n\ntwo", cell.PlainText())
}

func TestStyleLetters(t *testing.T) {
	for _, c := range []byte("adehlms") {
		_, ok := StyleFromLetter(c)
		assert.True(t, ok, string(c))
	}
	_, ok := StyleFromLetter('x')
	assert.False(t, ok)
	assert.Equal(t, Verbatim, LiteralStyle.Subs())
	assert.Equal(t, Normal, Strong.Subs())
}
