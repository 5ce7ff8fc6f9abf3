package html

import (
	"strconv"

	"github.com/npillmayer/schuko"
)

// Options control the HTML output.
type Options struct {
	Embedded          bool   // omit the document frame (html, head, body)
	Title             string // document title, used if not embedded
	SourceHighlighter string // "chroma" or empty
	HighlightStyle    string // name of a Chroma style
}

const defaultHighlightStyle = "github"

// OptionsFromConfig reads HTML options from a configuration. Recognized keys
// are
//
//     adoc.embedded             "true" to omit the document frame
//     adoc.source-highlighter   "chroma" to highlight source listings
//     adoc.highlight-style      a Chroma style name, e.g. "monokai"
//
func OptionsFromConfig(conf schuko.Configuration) Options {
	opts := Options{HighlightStyle: defaultHighlightStyle}
	if conf == nil {
		return opts
	}
	if s := conf.GetString("adoc.embedded"); s != "" {
		embedded, err := strconv.ParseBool(s)
		if err != nil {
			tracer().Errorf("configuration key adoc.embedded: %v", err)
		}
		opts.Embedded = embedded
	}
	opts.SourceHighlighter = conf.GetString("adoc.source-highlighter")
	if s := conf.GetString("adoc.highlight-style"); s != "" {
		opts.HighlightStyle = s
	}
	return opts
}
