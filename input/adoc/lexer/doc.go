/*
Package lexer splits markup source text into lines of tokens.

Tokens are produced per grapheme cluster, not per code point, so combining
marks always stay with the character they modify. Each token carries its
absolute byte location within the document source, which allows nested
parses of sub-spans (e.g., table cells) to report diagnostics at the correct
position of the outer document.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.lexer")
}
