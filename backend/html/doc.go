/*
Package html renders document trees as HTML.

The markup follows the conventions of Asciidoctor's HTML5 converter, so
that existing stylesheets apply. Tables are rendered as

    <table class="tableblock frame-all grid-all stretch">
    <caption class="title">Table 1. Title</caption>
    <colgroup>
    <col style="width: 50%;">
    …
    </colgroup>
    <thead> … </thead>
    <tbody> … </tbody>
    <tfoot> … </tfoot>
    </table>

Source listings may be highlighted with Chroma, if option
SourceHighlighter is set to "chroma".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.backend'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.backend")
}
