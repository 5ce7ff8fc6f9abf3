/*
Package ast defines the document tree produced by the markup parser.

A Document is a sequence of blocks. Blocks hold either inline content
(paragraphs, verbatim blocks), nested blocks (example, sidebar and open
blocks) or a table. Tables are made of rows of cells; a cell's content
depends on its style and may be a complete nested Document.

The tree is built once by the parser and is read-only afterwards. Backends
walk it with package eval.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.ast'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.ast")
}
