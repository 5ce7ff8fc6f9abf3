/*
Package parser parses markup documents into document trees.

The parser reads a source line by line and groups lines into contiguous
chunks, separated by blank lines. Each chunk starts with optional block
metadata (attribute lists, a title, comments) followed by a block:
a paragraph, a delimited block, or a table. Tables are handed over to
package table, for which Parser acts as the host: it supplies further
input lines, inline parsing and nested parses of cell content.

Parsing is either strict or lenient. A strict parse stops at the first error
and returns it. A lenient parse always returns a document, together with all
the diagnostics found.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.parser'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.parser")
}
