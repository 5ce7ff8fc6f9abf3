package html

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	xhtml "golang.org/x/net/html"

	"github.com/npillmayer/adoc/core"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/engine/eval"
)

// Converter renders documents as HTML. It is driven by eval.Eval and must
// not be shared between goroutines.
type Converter struct {
	opts        Options
	out         strings.Builder
	tables      *arraystack.Stack // open tables, innermost on top
	tableCount  int               // number of captioned tables so far
	highlighted bool              // content of the current listing is already written
	err         error
}

var _ eval.Backend = &Converter{}

// New creates a converter.
func New(opts Options) *Converter {
	if opts.HighlightStyle == "" {
		opts.HighlightStyle = defaultHighlightStyle
	}
	return &Converter{opts: opts, tables: arraystack.New()}
}

// Convert is a shortcut for New(opts).Convert(doc).
func Convert(doc *ast.Document, opts Options) (string, error) {
	return New(opts).Convert(doc)
}

// Convert renders a document.
func (c *Converter) Convert(doc *ast.Document) (string, error) {
	if doc == nil {
		return "", core.Error(core.EINVALID, "no document to convert")
	}
	c.out.Reset()
	c.tables.Clear()
	c.tableCount = 0
	c.highlighted = false
	c.err = nil
	eval.Eval(doc, c)
	if c.err != nil {
		return "", c.err
	}
	tracer().Infof("converted document to %d bytes of HTML", c.out.Len())
	return c.out.String(), nil
}

func (c *Converter) write(s ...string) {
	for _, x := range s {
		c.out.WriteString(x)
	}
}

func escape(s string) string {
	return xhtml.EscapeString(s)
}

// --- Blocks ----------------------------------------------------------------

// EnterDocument is part of interface eval.Backend.
func (c *Converter) EnterDocument(doc *ast.Document) {
	if c.opts.Embedded {
		return
	}
	c.write("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n")
	if c.opts.Title != "" {
		c.write("<title>", escape(c.opts.Title), "</title>\n")
	}
	c.write("</head>\n<body class=\"article\">\n<div id=\"content\">\n")
}

// ExitDocument is part of interface eval.Backend.
func (c *Converter) ExitDocument(doc *ast.Document) {
	if c.opts.Embedded {
		return
	}
	c.write("</div>\n</body>\n</html>\n")
}

// openBlock writes the opening div of a block, with its ID, roles and title.
func (c *Converter) openBlock(class string, b *ast.Block) {
	c.write("<div")
	attrs := b.Meta.Attrs
	if attrs != nil && attrs.ID != "" {
		c.write(` id="`, escape(attrs.ID), `"`)
	}
	c.write(` class="`, class)
	if attrs != nil {
		for _, role := range attrs.Roles {
			c.write(" ", escape(role))
		}
	}
	c.write("\">\n")
	if b.Meta.Title != "" {
		c.write(`<div class="title">`, escape(b.Meta.Title), "</div>\n")
	}
}

// EnterParagraph is part of interface eval.Backend.
func (c *Converter) EnterParagraph(b *ast.Block) {
	c.openBlock("paragraph", b)
	c.write("<p>")
}

// ExitParagraph is part of interface eval.Backend.
func (c *Converter) ExitParagraph(b *ast.Block) {
	c.write("</p>\n</div>\n")
}

var compoundClasses = map[ast.Context]string{
	ast.ExampleBlock: "exampleblock",
	ast.SidebarBlock: "sidebarblock",
	ast.OpenBlock:    "openblock",
}

// EnterCompound is part of interface eval.Backend.
func (c *Converter) EnterCompound(b *ast.Block) {
	c.openBlock(compoundClasses[b.Context], b)
	c.write("<div class=\"content\">\n")
}

// ExitCompound is part of interface eval.Backend.
func (c *Converter) ExitCompound(b *ast.Block) {
	c.write("</div>\n</div>\n")
}

// EnterVerbatim is part of interface eval.Backend.
func (c *Converter) EnterVerbatim(b *ast.Block) {
	if b.Context == ast.LiteralBlock {
		c.openBlock("literalblock", b)
		c.write("<div class=\"content\">\n<pre>")
		return
	}
	c.openBlock("listingblock", b)
	c.write("<div class=\"content\">\n")
	lang := b.Language()
	if lang == "" {
		c.write("<pre>")
		return
	}
	if code, ok := c.highlight(lang, b.Inlines); ok {
		c.write(`<pre class="chroma highlight"><code data-lang="`, escape(lang), `">`, code)
		c.highlighted = true
		return
	}
	c.write(`<pre class="highlight"><code class="language-`, escape(lang),
		`" data-lang="`, escape(lang), `">`)
}

// ExitVerbatim is part of interface eval.Backend.
func (c *Converter) ExitVerbatim(b *ast.Block) {
	c.highlighted = false
	if b.Language() != "" {
		c.write("</code>")
	}
	c.write("</pre>\n</div>\n</div>\n")
}

// --- Inline content --------------------------------------------------------

var inlineTags = map[ast.InlineKind]string{
	ast.Bold:        "strong",
	ast.Italic:      "em",
	ast.Mono:        "code",
	ast.Highlight:   "mark",
	ast.Superscript: "sup",
	ast.Subscript:   "sub",
}

// EnterInline is part of interface eval.Backend.
func (c *Converter) EnterInline(n *ast.Inline) {
	if c.highlighted {
		return
	}
	c.write("<", inlineTags[n.Kind], ">")
}

// ExitInline is part of interface eval.Backend.
func (c *Converter) ExitInline(n *ast.Inline) {
	if c.highlighted {
		return
	}
	c.write("</", inlineTags[n.Kind], ">")
}

// VisitInline is part of interface eval.Backend.
func (c *Converter) VisitInline(n *ast.Inline) {
	if c.highlighted {
		return
	}
	switch n.Kind {
	case ast.JoiningNewline:
		c.write("\n")
	case ast.LitMono:
		c.write("<code>", escape(n.Text), "</code>")
	default:
		c.write(escape(n.Text))
	}
}

// fail records the first error of a conversion.
func (c *Converter) fail(err error) {
	if c.err == nil {
		tracer().Errorf("conversion failed: %v", err)
		c.err = err
	}
}

func attr(name string, value interface{}) string {
	return fmt.Sprintf(` %s="%v"`, name, value)
}
