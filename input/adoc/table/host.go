package table

import (
	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// Host is the block parser a table is parsed for.
type Host interface {
	// Source is the document source all token locations refer to.
	Source() *lexer.Source
	// Strict is true if the first error should abort parsing.
	Strict() bool
	// Sink collects diagnostics; it is shared with all nested parses.
	Sink() *diag.Sink
	// Report records a diagnostic. In strict mode, errors are returned for
	// diagnostics of severity Error.
	Report(d *diag.Diagnostic) error
	// ReadLine reads the next line of input, or returns nil at the end.
	ReadLine() *lexer.Line
	// RestoreLines hands back lines which have not been consumed.
	RestoreLines(lines *lexer.Lines)
	// ParseInlines parses tokens into inline nodes, applying subs.
	ParseInlines(tokens []lexer.Token, subs ast.Subs) []ast.Inline
	// ParseCell parses text, starting at byte offset of the source, as an
	// independent document. It stops at the first error, which is returned
	// as err. Otherwise the document is returned together with warnings.
	ParseCell(text string, offset int) (doc *ast.Document, warnings diag.List, err error)
}

// pos locates a span of source text.
func pos(host Host, loc ast.Loc) diag.Pos {
	return host.Source().Pos(loc.Start, loc.End)
}
