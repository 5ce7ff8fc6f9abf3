/*
Package table parses delimited table blocks.

A table block is bounded by two identical delimiter lines, e.g. `|===`. The
lines in between are stitched into a single token stream, which is split
into cells by one of three grammars:

	Prefix      cells start with a separator, as in `|a |b`
	Delimited   cells are separated by a character, as in `a:b`
	CSV         like Delimited, with RFC 4180 style quoting

The grammar is selected once per table from the delimiter character and the
`format` and `separator` block attributes. Cells are assembled into rows by
column count, which is either declared by a `cols` attribute or taken from
the cells of the first source line.

Whether the first row is a header is decided by options `header` and
`noheader`, or inferred: a table body which starts with a single line
followed by a blank line has an implicit header row. As this is only known
after the first row has been parsed, the cells of the first row are
resolved speculatively and re-interpreted once the header is found.

Cells with AsciiDoc style hold complete sub-documents, which are parsed by
the block parser through interface Host.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.table'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.table")
}
