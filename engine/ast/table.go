package ast

import (
	"fmt"
	"math"

	"github.com/npillmayer/adoc/core/option"
	"github.com/npillmayer/adoc/core/percent"
)

// Table is the content of a table block. It is read-only once the parser
// has returned it.
type Table struct {
	ColWidths ColWidths
	HeaderRow *Row
	Rows      []*Row
	FooterRow *Row
}

// Row is a non-empty sequence of cells, in source order.
type Row struct {
	Cells []*Cell
}

// NewRow creates a row from cells.
func NewRow(cells []*Cell) *Row {
	return &Row{Cells: cells}
}

// Cell is a table cell. ColSpec is the column specification the cell's column
// has been declared with, if any.
type Cell struct {
	Content CellContent
	Spec    CellSpec
	ColSpec *ColSpec
}

// HAlign returns the effective horizontal alignment of a cell.
func (c *Cell) HAlign() HAlign {
	if c.Spec.HAlign != AlignDefault {
		return c.Spec.HAlign
	}
	if c.ColSpec != nil && c.ColSpec.HAlign != AlignDefault {
		return c.ColSpec.HAlign
	}
	return AlignLeft
}

// VAlign returns the effective vertical alignment of a cell.
func (c *Cell) VAlign() VAlign {
	if c.Spec.VAlign != VAlignDefault {
		return c.Spec.VAlign
	}
	if c.ColSpec != nil && c.ColSpec.VAlign != VAlignDefault {
		return c.ColSpec.VAlign
	}
	return AlignTop
}

// --- Cell content ----------------------------------------------------------

// CellContentStyle is the style a cell's content is interpreted with.
type CellContentStyle uint8

const (
	Default CellContentStyle = iota
	Emphasis
	Header
	Monospace
	Strong
	LiteralStyle
	AsciiDoc
)

// StyleFromLetter maps style letters of cell and column specs to styles.
func StyleFromLetter(c byte) (CellContentStyle, bool) {
	switch c {
	case 'a':
		return AsciiDoc, true
	case 'd':
		return Default, true
	case 'e':
		return Emphasis, true
	case 'h':
		return Header, true
	case 'l':
		return LiteralStyle, true
	case 'm':
		return Monospace, true
	case 's':
		return Strong, true
	}
	return Default, false
}

func (s CellContentStyle) String() string {
	switch s {
	case Default:
		return "default"
	case Emphasis:
		return "emphasis"
	case Header:
		return "header"
	case Monospace:
		return "monospace"
	case Strong:
		return "strong"
	case LiteralStyle:
		return "literal"
	case AsciiDoc:
		return "asciidoc"
	}
	return fmt.Sprintf("CellContentStyle(%d)", s)
}

// Subs returns the inline substitutions for content of style s.
func (s CellContentStyle) Subs() Subs {
	if s == LiteralStyle {
		return Verbatim
	}
	return Normal
}

// SplitsParagraphs is true for styles whose content is a list of paragraphs.
func (s CellContentStyle) SplitsParagraphs() bool {
	return s != LiteralStyle && s != AsciiDoc
}

// CellContent is the content of a cell, tagged by its style.
// Paragraph-splitting styles use Paragraphs, the literal style uses Literal
// and the AsciiDoc style uses Document.
type CellContent struct {
	Style      CellContentStyle
	Paragraphs [][]Inline
	Literal    []Inline
	Document   *Document
}

// Restyled returns a copy of paragraph content, tagged with another style.
func (c CellContent) Restyled(style CellContentStyle) CellContent {
	return CellContent{Style: style, Paragraphs: c.Paragraphs}
}

// --- Specs -----------------------------------------------------------------

// HAlign is a horizontal alignment.
type HAlign uint8

const (
	AlignDefault HAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a HAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// VAlign is a vertical alignment.
type VAlign uint8

const (
	VAlignDefault VAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

func (a VAlign) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	}
	return "top"
}

// CellSpec is the specification written in front of a cell's separator,
// e.g. `2*`, `3+`, `.2+^.>s`.
// Zero values mean "not given".
type CellSpec struct {
	Duplication int
	ColSpan     int
	RowSpan     int
	HAlign      HAlign
	VAlign      VAlign
	Style       *CellContentStyle
}

// Repeat returns the number of copies a cell expands to.
func (s CellSpec) Repeat() int {
	if s.Duplication < 1 {
		return 1
	}
	return s.Duplication
}

// Cols returns the number of columns a cell spans.
func (s CellSpec) Cols() int {
	if s.ColSpan < 1 {
		return 1
	}
	return s.ColSpan
}

// RowsSpanned returns the number of rows a cell spans.
func (s CellSpec) RowsSpanned() int {
	if s.RowSpan < 1 {
		return 1
	}
	return s.RowSpan
}

// ColSpec is a column specification from a `cols` attribute.
type ColSpec struct {
	Width  ColWidth
	HAlign HAlign
	VAlign VAlign
	Style  CellContentStyle
}

// --- Column widths ---------------------------------------------------------

type widthKind uint8

const (
	autoWidth widthKind = iota
	proportionalWidth
	percentageWidth
)

// ColWidth is the declared width of a column: auto, a proportional weight
// or a percentage. Auto widths match as option.None.
type ColWidth struct {
	kind  widthKind
	value float64
}

// AutoWidth creates an auto width.
func AutoWidth() ColWidth {
	return ColWidth{kind: autoWidth}
}

// Proportional creates a proportional width with weight w.
func Proportional(w int) ColWidth {
	return ColWidth{kind: proportionalWidth, value: float64(w)}
}

// Percentage creates a fixed percentage width.
func Percentage(p float64) ColWidth {
	return ColWidth{kind: percentageWidth, value: p}
}

// IsAuto is true for auto widths.
func (w ColWidth) IsAuto() bool { return w.kind == autoWidth }

// IsProportional is true for proportional widths.
func (w ColWidth) IsProportional() bool { return w.kind == proportionalWidth }

// IsPercentage is true for percentage widths.
func (w ColWidth) IsPercentage() bool { return w.kind == percentageWidth }

// Value returns the weight or percentage of a width.
func (w ColWidth) Value() float64 { return w.value }

// Match is part of interface option.Type.
func (w ColWidth) Match(choices interface{}) (interface{}, error) {
	return option.Match(w, choices)
}

// Equals is part of interface option.Type.
func (w ColWidth) Equals(other interface{}) bool {
	o, ok := other.(ColWidth)
	return ok && o == w
}

// IsNone is part of interface option.Type.
func (w ColWidth) IsNone() bool {
	return w.IsAuto()
}

func (w ColWidth) String() string {
	switch w.kind {
	case proportionalWidth:
		return fmt.Sprintf("Proportional(%g)", w.value)
	case percentageWidth:
		return fmt.Sprintf("Percentage(%g)", w.value)
	}
	return "Auto"
}

var _ option.Type = ColWidth{}

// ColWidths is the list of declared column widths of a table.
type ColWidths []ColWidth

// DistributedColWidth is the width of a column as handed to renderers:
// either auto (option.None) or a percentage of the table width.
type DistributedColWidth struct {
	set     bool
	Percent percent.Percent
}

// Match is part of interface option.Type.
func (d DistributedColWidth) Match(choices interface{}) (interface{}, error) {
	return option.Match(d, choices)
}

// Equals is part of interface option.Type.
func (d DistributedColWidth) Equals(other interface{}) bool {
	o, ok := other.(DistributedColWidth)
	return ok && o == d
}

// IsNone is part of interface option.Type.
func (d DistributedColWidth) IsNone() bool {
	return !d.set
}

func (d DistributedColWidth) String() string {
	if !d.set {
		return "auto"
	}
	return d.Percent.String()
}

var _ option.Type = DistributedColWidth{}

// Distribute normalizes column widths to percentages. Proportional columns
// share the space left by percentage columns according to their weights,
// truncated to 4 decimal places; the last proportional column receives the
// remainder, so that the sum is exact. Auto columns stay unset.
func (cw ColWidths) Distribute() []DistributedColWidth {
	var weights, fixed float64
	last := -1
	for i, w := range cw {
		switch w.kind {
		case proportionalWidth:
			weights += w.value
			last = i
		case percentageWidth:
			fixed += w.value
		}
	}
	avail := math.Max(0, 100-fixed)
	dist := make([]DistributedColWidth, len(cw))
	var used float64
	for i, w := range cw {
		switch w.kind {
		case percentageWidth:
			dist[i] = DistributedColWidth{set: true, Percent: percent.FromFloat(w.value)}
		case proportionalWidth:
			if weights <= 0 {
				continue
			}
			var p float64
			if i == last {
				p = math.Round((avail-used)*10000) / 10000
			} else {
				p = percent.Truncate(w.value * avail / weights)
				used += p
			}
			dist[i] = DistributedColWidth{set: true, Percent: percent.FromFloat(p)}
		}
	}
	tracer().Debugf("distributed column widths %v => %v", cw, dist)
	return dist
}
