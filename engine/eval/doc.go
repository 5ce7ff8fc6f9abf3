/*
Package eval walks a document tree and drives an output backend.

Backends implement interface Backend. Eval visits every node of a document
exactly once, in document order, calling enter-hooks before and exit-hooks
after a node's children. Tables are entered section by section: header,
body and footer, each with their rows and cells. Cells with AsciiDoc style
are entered as nested documents.

The tree is never modified by an evaluation, and a document may be
evaluated any number of times with different backends.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.eval'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.eval")
}
