package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/adoc/core"
)

// Kind classifies a diagnostic.
type Kind int8

const (
	Generic Kind = iota
	MalformedAttribute
	UnterminatedBlock
	NestedParseFailure
	IncompleteRow
	InvalidColSpec
	InvalidCellSpec
)

func (k Kind) String() string {
	switch k {
	case MalformedAttribute:
		return "MalformedAttribute"
	case UnterminatedBlock:
		return "UnterminatedBlock"
	case NestedParseFailure:
		return "NestedParseFailure"
	case IncompleteRow:
		return "IncompleteRow"
	case InvalidColSpec:
		return "InvalidColSpec"
	case InvalidCellSpec:
		return "InvalidCellSpec"
	}
	return "Generic"
}

// Severity tells if a diagnostic is a warning or an error.
// In strict mode the first error aborts parsing.
type Severity int8

const (
	Warning Severity = iota
	Error
)

// Pos locates a diagnostic in the source text.
// Line is 1-based, Column is a 0-based byte offset into LineText.
type Pos struct {
	Line     int
	Column   int
	Length   int
	LineText string
}

// Diagnostic is a message about a span of source text.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Pos      Pos
}

// New creates an error diagnostic.
func New(kind Kind, msg string, pos Pos) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: Error, Message: msg, Pos: pos}
}

// NewWarning creates a warning diagnostic.
func NewWarning(kind Kind, msg string, pos Pos) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: Warning, Message: msg, Pos: pos}
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s", d.Pos.Line, d.Message)
}

// ErrorCode is part of interface core.AppError.
func (d *Diagnostic) ErrorCode() int {
	return core.ESYNTAX
}

// UserMessage is part of interface core.AppError.
func (d *Diagnostic) UserMessage() string {
	return d.PlainText()
}

var _ core.AppError = &Diagnostic{}

// PlainText renders a diagnostic as the offending source line, followed by a line
// underlining the span in question:
//
//     1: [separator="||"]
//                    ^^ Cell separator must be exactly one character
//
func (d *Diagnostic) PlainText() string {
	var b strings.Builder
	prefix := strconv.Itoa(d.Pos.Line) + ": "
	b.WriteString(prefix)
	b.WriteString(d.Pos.LineText)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len(prefix)+d.Pos.Column))
	n := d.Pos.Length
	if n < 1 {
		n = 1
	}
	b.WriteString(strings.Repeat("^", n))
	b.WriteByte(' ')
	b.WriteString(d.Message)
	return b.String()
}

// --- Lists -----------------------------------------------------------------

// List is a list of diagnostics, usable as an error.
type List []*Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
}

// First returns the first diagnostic of l, or nil if l is empty.
func (l List) First() *Diagnostic {
	if len(l) == 0 {
		return nil
	}
	return l[0]
}
