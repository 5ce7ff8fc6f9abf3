package parser

import (
	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
	"github.com/npillmayer/adoc/input/adoc/table"
)

// Result is the outcome of a successful parse.
type Result struct {
	Document *ast.Document
	Warnings diag.List // diagnostics of a lenient parse
}

// scope is shared by a document parse and all of its nested parses.
type scope struct {
	src      *lexer.Source
	settings Settings
}

// Parser is a markup parser for a single source. A parser must not be used
// for more than one call to Parse.
type Parser struct {
	scope   *scope
	lx      *lexer.Lexer
	pending []*lexer.Line // lines read ahead and handed back
	sink    *diag.Sink
	strict  bool
}

// New creates a parser for a document source.
func New(src *lexer.Source, settings Settings) *Parser {
	return &Parser{
		scope:  &scope{src: src, settings: settings},
		lx:     lexer.New(src),
		sink:   diag.NewSink(),
		strict: settings.Strict,
	}
}

// ParseString is a shortcut to parse markup text.
func ParseString(name, text string, settings Settings) (*Result, error) {
	return New(lexer.NewSource(name, text), settings).Parse()
}

// Parse parses the complete source. In strict mode, the first error stops
// parsing and is returned. Otherwise the document is returned together with
// all diagnostics.
func (p *Parser) Parse() (*Result, error) {
	doc := &ast.Document{Loc: ast.Loc{Start: 0, End: len(p.scope.src.Text())}}
	blocks, err := p.parseBlocks()
	if err != nil {
		tracer().Errorf("parse of %s aborted: %v", p.scope.src.Name, err)
		return nil, err
	}
	doc.Blocks = blocks
	warnings := p.sink.TakeAll()
	tracer().Infof("parsed %s: %d blocks, %d diagnostics", p.scope.src.Name, len(blocks), len(warnings))
	return &Result{Document: doc, Warnings: warnings}, nil
}

// child creates a parser for a part of the source, which reports to the same
// diagnostics sink. Delimited compound blocks use it for their content.
func (p *Parser) child(text string, offset int) *Parser {
	return &Parser{
		scope:  p.scope,
		lx:     lexer.Sub(p.scope.src, text, offset),
		sink:   p.sink,
		strict: p.strict,
	}
}

// nested creates an independent parser for a part of the source, as used for
// cells with AsciiDoc content. It stops at the first error.
func (p *Parser) nested(text string, offset int) *Parser {
	return &Parser{
		scope:  p.scope,
		lx:     lexer.Sub(p.scope.src, text, offset),
		sink:   diag.NewSink(),
		strict: true,
	}
}

// --- Line handling ---------------------------------------------------------

func (p *Parser) nextLine() *lexer.Line {
	if len(p.pending) > 0 {
		l := p.pending[0]
		p.pending = p.pending[1:]
		return l
	}
	return p.lx.NextLine()
}

func (p *Parser) unread(l *lexer.Line) {
	p.pending = append([]*lexer.Line{l}, p.pending...)
}

// readGroup reads the next group of contiguous non-blank lines. Blank lines
// in front of the group are skipped, the blank line ending it is left
// unread. Returns nil at the end of input.
func (p *Parser) readGroup() *lexer.Lines {
	var group *lexer.Lines
	for line := p.nextLine(); line != nil; line = p.nextLine() {
		if line.IsBlank() {
			if group != nil {
				p.unread(line)
				break
			}
			continue
		}
		if group == nil {
			group = lexer.NewLines()
		}
		group.Append(line)
	}
	return group
}

// --- Host interface for tables ---------------------------------------------

var _ table.Host = &Parser{}

// Source is part of interface table.Host.
func (p *Parser) Source() *lexer.Source {
	return p.scope.src
}

// Strict is part of interface table.Host.
func (p *Parser) Strict() bool {
	return p.strict
}

// Sink is part of interface table.Host.
func (p *Parser) Sink() *diag.Sink {
	return p.sink
}

// Report is part of interface table.Host.
func (p *Parser) Report(d *diag.Diagnostic) error {
	if p.strict && d.Severity == diag.Error {
		return d
	}
	p.sink.Append(d)
	return nil
}

// ReadLine is part of interface table.Host.
func (p *Parser) ReadLine() *lexer.Line {
	return p.nextLine()
}

// RestoreLines is part of interface table.Host.
func (p *Parser) RestoreLines(lines *lexer.Lines) {
	var restored []*lexer.Line
	for l := lines.ConsumeCurrent(); l != nil; l = lines.ConsumeCurrent() {
		restored = append(restored, l)
	}
	p.pending = append(restored, p.pending...)
}

// ParseInlines is part of interface table.Host.
func (p *Parser) ParseInlines(tokens []lexer.Token, subs ast.Subs) []ast.Inline {
	return parseInlines(tokens, subs)
}

// ParseCell is part of interface table.Host.
func (p *Parser) ParseCell(text string, offset int) (*ast.Document, diag.List, error) {
	tracer().Debugf("nested parse of cell at %d", offset)
	result, err := p.nested(text, offset).Parse()
	if err != nil {
		return nil, nil, err
	}
	result.Document.Loc = ast.Loc{Start: offset, End: offset + len(text)}
	return result.Document, result.Warnings, nil
}
