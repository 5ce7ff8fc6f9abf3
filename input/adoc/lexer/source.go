package lexer

import (
	"sort"
	"strings"

	"github.com/npillmayer/adoc/core/diag"
	"golang.org/x/text/unicode/norm"
)

// Source is the text of a markup document. It is shared between the parse of
// a document and all nested parses of parts of it.
type Source struct {
	Name       string
	text       string
	lineStarts []int
}

// NewSource creates a source from markup text. The text is normalized to NFC
// and line endings are converted to '\n'.
func NewSource(name, text string) *Source {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	src := &Source{Name: name, text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			src.lineStarts = append(src.lineStarts, i+1)
		}
	}
	return src
}

// Text returns the complete (normalized) source text.
func (src *Source) Text() string {
	return src.text
}

// Slice returns the source text between byte positions start and end,
// clipped to the bounds of the text.
func (src *Source) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(src.text) {
		end = len(src.text)
	}
	if start >= end {
		return ""
	}
	return src.text[start:end]
}

// Pos locates the span start…end in the source. Spans crossing a line end are
// cut at the end of the line where they start.
func (src *Source) Pos(start, end int) diag.Pos {
	if start < 0 {
		start = 0
	}
	if start > len(src.text) {
		start = len(src.text)
	}
	n := sort.Search(len(src.lineStarts), func(i int) bool {
		return src.lineStarts[i] > start
	}) - 1
	lineStart := src.lineStarts[n]
	lineEnd := len(src.text)
	if n+1 < len(src.lineStarts) {
		lineEnd = src.lineStarts[n+1] - 1
	}
	if end > lineEnd {
		end = lineEnd
	}
	length := end - start
	if length < 0 {
		length = 0
	}
	return diag.Pos{
		Line:     n + 1,
		Column:   start - lineStart,
		Length:   length,
		LineText: src.text[lineStart:lineEnd],
	}
}
