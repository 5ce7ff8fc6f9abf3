/*
Command adoc converts markup documents to HTML.

Usage:

    adoc [-strict] [-trace level] [-o out.html] [-dot out.dot] [-tables] [-repl]
         [-embedded] [-highlight chroma] file.adoc

Diagnostics are printed to the terminal. With -tables every parsed table is
previewed as a terminal table. With -repl markup is read interactively:
`:go` converts the lines entered so far, `:quit` leaves.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.cli'
func tracer() tracing.Trace {
	return tracing.Select("adoc.cli")
}
