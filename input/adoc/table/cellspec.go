package table

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// maxCount bounds every count written in cell specs and column specs:
// duplications, spans, column repeats and column numbers.
const maxCount = 255

// clampCount limits *n to maxCount and tells if it had to.
func clampCount(n *int) bool {
	if *n > maxCount {
		*n = maxCount
		return true
	}
	return false
}

// limitCounts clamps the counts of a cell spec to maxCount.
func limitCounts(spec *ast.CellSpec) bool {
	clamped := clampCount(&spec.Duplication)
	clamped = clampCount(&spec.ColSpan) || clamped
	return clampCount(&spec.RowSpan) || clamped
}

// cellSpecPattern matches a cell spec: either a duplication `N*` or a span
// `C+`, `.R+`, `C.R+`, followed by alignments and a style letter.
var cellSpecPattern = regexp.MustCompile(`^(?:(\d+)\*|(\d+)?(?:\.(\d+))?(\+))?([<^>])?(?:\.([<^>]))?([adehlms])?$`)

// parseCellSpec parses the text in front of a cell separator.
func parseCellSpec(s string) (ast.CellSpec, bool) {
	var spec ast.CellSpec
	if s == "" {
		return spec, false
	}
	m := cellSpecPattern.FindStringSubmatch(s)
	if m == nil {
		return spec, false
	}
	if m[4] == "+" && m[2] == "" && m[3] == "" {
		return spec, false
	}
	spec.Duplication = atoi(m[1])
	spec.ColSpan = atoi(m[2])
	spec.RowSpan = atoi(m[3])
	spec.HAlign = hAlign(m[5])
	spec.VAlign = vAlign(m[6])
	if m[7] != "" {
		style, _ := ast.StyleFromLetter(m[7][0])
		spec.Style = &style
	}
	return spec, true
}

// atoi converts a string of digits. Numbers too large for an int are
// returned as the largest int, empty strings as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil && n == 0 {
		return 0
	}
	return n
}

// splitTrailingSpec checks if the trailing non-whitespace tokens of a cell's
// content form a cell spec for the cell following it. A spec has to be
// preceded by whitespace; atStart allows a spec at the beginning of tokens.
func splitTrailingSpec(tokens []lexer.Token, atStart bool) ([]lexer.Token, ast.CellSpec, bool) {
	w := len(tokens) - 1
	for w >= 0 && !tokens[w].IsWhitespaceish() {
		w--
	}
	if w == len(tokens)-1 || (w < 0 && !atStart) {
		return tokens, ast.CellSpec{}, false
	}
	var b strings.Builder
	for _, t := range tokens[w+1:] {
		b.WriteString(t.Lexeme)
	}
	spec, ok := parseCellSpec(b.String())
	if !ok {
		return tokens, ast.CellSpec{}, false
	}
	return tokens[:w+1], spec, true
}
