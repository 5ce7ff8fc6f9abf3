/*
Package astdebug draws document trees as GraphViz graphs.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package astdebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/schuko/tracing"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	TextTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxNodes guards against runaway output for huge documents.
const maxNodes = 2000

// ToGraphViz creates a graphical representation of a document tree, including
// tables, their sections, rows and cells.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(doc *ast.Document, w io.Writer, tracer tracing.Trace) error {
	header, err := template.New("docTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Parse(nodeTmpl))
	gparams.TextTmpl = template.Must(template.New("text").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(textTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	g := &grapher{w: w, params: &gparams, tracer: tracer}
	g.document(doc, "document")
	if g.err != nil {
		return g.err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type grapher struct {
	w      io.Writer
	params *graphParamsType
	tracer tracing.Trace
	err    error
}

// Helper structs
type gnode struct {
	Name  string
	Label string
	Fill  string
	Text  string
}

type gedge struct {
	N1, N2 string
}

func (g *grapher) node(label, fill string) string {
	g.params.cnt++
	name := fmt.Sprintf("node%05d", g.params.cnt)
	if g.err == nil {
		g.err = g.params.NodeTmpl.Execute(g.w, gnode{Name: name, Label: label, Fill: fill})
	}
	return name
}

func (g *grapher) text(text string) string {
	g.params.cnt++
	name := fmt.Sprintf("node%05d", g.params.cnt)
	if g.err == nil {
		g.err = g.params.TextTmpl.Execute(g.w, gnode{Name: name, Text: text})
	}
	return name
}

func (g *grapher) edge(n1, n2 string) {
	if g.err == nil {
		g.err = g.params.EdgeTmpl.Execute(g.w, gedge{n1, n2})
	}
}

func (g *grapher) exhausted() bool {
	return g.err != nil || g.params.cnt >= maxNodes
}

func (g *grapher) document(doc *ast.Document, label string) string {
	name := g.node(label, "grey80")
	if doc == nil {
		return name
	}
	for _, b := range doc.Blocks {
		if g.exhausted() {
			break
		}
		g.edge(name, g.block(b))
	}
	return name
}

func (g *grapher) block(b *ast.Block) string {
	g.tracer.Debugf("graph block = %v", b)
	label := b.Context.String()
	if b.Meta.Title != "" {
		label += ": " + b.Meta.Title
	}
	name := g.node(label, "lightblue3")
	switch {
	case b.Table != nil:
		g.table(b.Table, name)
	case b.Context.IsCompound():
		for _, ch := range b.Blocks {
			if g.exhausted() {
				break
			}
			g.edge(name, g.block(ch))
		}
	default:
		if text, err := ast.InnerText(b.Inlines); err == nil {
			g.edge(name, g.text(text.String()))
		}
	}
	return name
}

func (g *grapher) table(t *ast.Table, parent string) {
	section := func(label string, rows ...*ast.Row) {
		if len(rows) == 0 {
			return
		}
		sname := g.node(label, "khaki")
		g.edge(parent, sname)
		for i, row := range rows {
			if g.exhausted() {
				return
			}
			rname := g.node(fmt.Sprintf("row %d", i+1), "lightyellow")
			g.edge(sname, rname)
			for _, cell := range row.Cells {
				g.edge(rname, g.cell(cell))
			}
		}
	}
	if t.HeaderRow != nil {
		section("header", t.HeaderRow)
	}
	section("body", t.Rows...)
	if t.FooterRow != nil {
		section("footer", t.FooterRow)
	}
}

func (g *grapher) cell(c *ast.Cell) string {
	label := fmt.Sprintf("cell %s", c.Content.Style)
	if c.Content.Style == ast.AsciiDoc {
		return g.document(c.Content.Document, label)
	}
	name := g.node(label, "palegreen")
	g.edge(name, g.text(c.PlainText()))
	return name
}

func shortText(n gnode) string {
	txt := n.Text
	s := fmt.Sprintf("\"%s \\\"", "T")
	if len(txt) > 10 {
		s += txt[:10] + "…\\\"\""
	} else {
		s += txt + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor={{ .Fill }} ] ;
`

const textTmpl = `{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
