package html

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/npillmayer/adoc/engine/ast"
)

// highlight renders the content of a source listing with Chroma. It returns
// false if highlighting is switched off or lang is unknown to Chroma, in
// which case the listing is rendered as plain text.
func (c *Converter) highlight(lang string, inlines []ast.Inline) (string, bool) {
	if c.opts.SourceHighlighter != "chroma" || len(inlines) == 0 {
		return "", false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		tracer().Infof("no highlighter for language %q", lang)
		return "", false
	}
	text, err := ast.InnerText(inlines)
	if err != nil {
		tracer().Errorf("listing text: %v", err)
		return "", false
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text.String())
	if err != nil {
		tracer().Errorf("highlighting %s: %v", lang, err)
		return "", false
	}
	formatter := chromahtml.New(chromahtml.PreventSurroundingPre(true))
	var b strings.Builder
	if err := formatter.Format(&b, styles.Get(c.opts.HighlightStyle), iterator); err != nil {
		tracer().Errorf("highlighting %s: %v", lang, err)
		return "", false
	}
	tracer().Debugf("highlighted %s listing with style %s", lang, c.opts.HighlightStyle)
	return b.String(), true
}
