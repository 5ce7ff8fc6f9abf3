package table

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// HeaderRowState tracks the decision whether a table has a header row.
// Once a state other than Unknown is reached, it never reverts to Unknown.
type HeaderRowState uint8

const (
	Unknown         HeaderRowState = iota // not yet decided
	ExplicitlySet                         // option `header`
	ExplicitlyUnset                       // option `noheader`
	FoundNone                             // decided: no header
	FoundImplicit                         // decided: header inferred from a blank line
)

func (s HeaderRowState) String() string {
	switch s {
	case ExplicitlySet:
		return "ExplicitlySet"
	case ExplicitlyUnset:
		return "ExplicitlyUnset"
	case FoundNone:
		return "FoundNone"
	case FoundImplicit:
		return "FoundImplicit"
	}
	return "Unknown"
}

func (s HeaderRowState) knownToExist() bool {
	return s == ExplicitlySet || s == FoundImplicit
}

func (s HeaderRowState) isUnknown() bool {
	return s == Unknown
}

// cellData is what is needed to resolve the content of a cell again.
type cellData struct {
	tokens  []lexer.Token
	loc     ast.Loc
	spec    ast.CellSpec
	colSpec *ast.ColSpec
}

// rawCell is a cell as split from the token stream by a grammar.
type rawCell struct {
	spec   ast.CellSpec
	tokens []lexer.Token
	loc    ast.Loc
	line   int // index of the body line the cell starts on
}

// placedCell is a resolved cell (or a dropped one, if cell is nil) waiting
// to be placed into a row.
type placedCell struct {
	cell *ast.Cell
	spec ast.CellSpec
	loc  ast.Loc
}

// parseContext is the state of parsing a single table. It lives for the
// duration of Parse only.
type parseContext struct {
	host      Host
	format    DataFormat
	colSpecs  []*ast.ColSpec
	numCols   int
	counting  bool // column count is taken from the first row
	autowidth bool
	header    HeaderRowState
	// cells of the first row which have to be re-parsed if the row turns out
	// to be an implicit header, in order of their appearance
	headerReparse   *arraylist.List
	canInferHeader  bool
	effectiveRowIdx int
	table           *ast.Table
	//
	raws     []rawCell
	next     int          // next raw cell to resolve
	copies   []placedCell // duplicated cells waiting for placement
	col      int          // column of the next placement in the current row
	cells    []*ast.Cell  // current row
	lastLoc  ast.Loc
	phantoms map[[2]int]bool // (row, column) slots covered by row spans
}

func newParseContext(host Host, format DataFormat, colSpecs []*ast.ColSpec) *parseContext {
	widths := make(ast.ColWidths, len(colSpecs))
	for i, spec := range colSpecs {
		widths[i] = spec.Width
	}
	return &parseContext{
		host:          host,
		format:        format,
		colSpecs:      colSpecs,
		numCols:       len(colSpecs),
		counting:      len(colSpecs) == 0,
		headerReparse: arraylist.New(),
		table:         &ast.Table{ColWidths: widths},
		phantoms:      make(map[[2]int]bool),
	}
}

func (ctx *parseContext) colSpec(col int) *ast.ColSpec {
	if col < 0 || col >= len(ctx.colSpecs) {
		return nil
	}
	return ctx.colSpecs[col]
}

func (ctx *parseContext) pushReparse(data cellData, copies int) {
	for i := 0; i < copies; i++ {
		ctx.headerReparse.Add(data)
	}
}

func (ctx *parseContext) popReparse() (cellData, bool) {
	if ctx.headerReparse.Empty() {
		return cellData{}, false
	}
	v, _ := ctx.headerReparse.Get(0)
	ctx.headerReparse.Remove(0)
	return v.(cellData), true
}
