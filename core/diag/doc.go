/*
Package diag collects source diagnostics produced while parsing markup.

A Diagnostic points to a span of the source text and carries a kind and a
severity. Parsers report diagnostics to a Sink, which is shared by the
outer document parse and every nested parse it starts (e.g., for table cells
holding a complete sub-document).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.core'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.core")
}
