/*
Package option implements matching on optional values.

Types implementing option.Type may be matched against a set of choices,
either by concrete value (option.Of) or by presence (option.Maybe):

    style, err := width.Match(option.Maybe{
         option.None: "",
         option.Some: func(w interface{}) (interface{}, error) { … },
    })

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adoc.core'.
func tracer() tracing.Trace {
	return tracing.Select("adoc.core")
}
