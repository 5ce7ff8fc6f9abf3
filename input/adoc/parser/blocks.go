package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
	"github.com/npillmayer/adoc/input/adoc/table"
)

var (
	tableDelimiter   = regexp.MustCompile(`^[|!,:]={3,}$`)
	exampleDelimiter = regexp.MustCompile(`^={4,}$`)
	sidebarDelimiter = regexp.MustCompile(`^\*{4,}$`)
	listingDelimiter = regexp.MustCompile(`^-{4,}$`)
	literalDelimiter = regexp.MustCompile(`^\.{4,}$`)
	commentDelimiter = regexp.MustCompile(`^/{4,}$`)
	blockTitle       = regexp.MustCompile(`^\.[^.\s]`)
)

// blockKind is the kind of block a delimiter line opens.
type blockKind int

const (
	noDelimiter blockKind = iota
	tableBlock
	compoundBlock
	verbatimBlock
	commentBlock
)

// delimiterOf checks if a line is a block delimiter.
func delimiterOf(line *lexer.Line) (blockKind, ast.Context) {
	src := line.Src
	switch {
	case tableDelimiter.MatchString(src):
		return tableBlock, ast.TableBlock
	case exampleDelimiter.MatchString(src):
		return compoundBlock, ast.ExampleBlock
	case sidebarDelimiter.MatchString(src):
		return compoundBlock, ast.SidebarBlock
	case src == "--":
		return compoundBlock, ast.OpenBlock
	case listingDelimiter.MatchString(src):
		return verbatimBlock, ast.ListingBlock
	case literalDelimiter.MatchString(src):
		return verbatimBlock, ast.LiteralBlock
	case commentDelimiter.MatchString(src):
		return commentBlock, ast.ParagraphBlock
	}
	return noDelimiter, ast.ParagraphBlock
}

func isComment(line *lexer.Line) bool {
	return strings.HasPrefix(line.Src, "//") && !commentDelimiter.MatchString(line.Src)
}

// parseBlocks parses all blocks of the parser's input.
func (p *Parser) parseBlocks() ([]*ast.Block, error) {
	var blocks []*ast.Block
	var meta ast.BlockMeta
	for lines := p.readGroup(); lines != nil; lines = p.readGroup() {
		for !lines.IsEmpty() {
			block, err := p.parseBlock(lines, &meta)
			if err != nil {
				return blocks, err
			}
			if block != nil {
				blocks = append(blocks, block)
				meta = ast.BlockMeta{}
			}
		}
	}
	return blocks, nil
}

// parseBlock parses the next element of a group of lines. Metadata lines are
// collected in meta and nil is returned for them.
func (p *Parser) parseBlock(lines *lexer.Lines, meta *ast.BlockMeta) (*ast.Block, error) {
	line := lines.Current()
	if meta.Attrs == nil && meta.Title == "" {
		meta.Start = line.Loc.Start
	}
	if isComment(line) {
		lines.ConsumeCurrent()
		return nil, nil
	}
	if isAttrLine(line) {
		if meta.Attrs == nil {
			meta.Attrs = &ast.AttrList{}
		}
		parseAttrLine(lines.ConsumeCurrent(), meta.Attrs)
		return nil, nil
	}
	if blockTitle.MatchString(line.Src) {
		meta.Title = strings.TrimSpace(lines.ConsumeCurrent().Src[1:])
		return nil, nil
	}
	kind, context := delimiterOf(line)
	switch kind {
	case tableBlock:
		tracer().Debugf("table block at line %d", p.scope.src.Pos(line.Loc.Start, line.Loc.End).Line)
		return table.Parse(p, lines, *meta)
	case compoundBlock, verbatimBlock, commentBlock:
		return p.parseDelimited(lines, *meta, kind, context)
	}
	return p.parseParagraph(lines, *meta)
}

// parseParagraph parses the lines of a group up to the next block delimiter
// as a paragraph. Paragraphs with style `literal`, `listing` or `source`
// are verbatim blocks.
func (p *Parser) parseParagraph(lines *lexer.Lines, meta ast.BlockMeta) (*ast.Block, error) {
	var paraLines []*lexer.Line
	for l := lines.Current(); l != nil; l = lines.Current() {
		if len(paraLines) > 0 {
			if kind, _ := delimiterOf(l); kind != noDelimiter {
				break
			}
		}
		paraLines = append(paraLines, lines.ConsumeCurrent())
	}
	block := &ast.Block{Context: ast.ParagraphBlock, Meta: meta}
	subs := ast.Normal
	switch meta.Attrs.Style() {
	case "literal":
		block.Context, subs = ast.LiteralBlock, ast.Verbatim
	case "listing", "source":
		block.Context, subs = ast.ListingBlock, ast.Verbatim
	}
	block.Inlines = parseInlines(joinLines(paraLines), subs)
	block.Loc = ast.Loc{Start: meta.Start, End: paraLines[len(paraLines)-1].Loc.End}
	return block, nil
}

// parseDelimited parses a delimited block. Its content ends at a line equal
// to the opening delimiter line.
func (p *Parser) parseDelimited(lines *lexer.Lines, meta ast.BlockMeta, kind blockKind,
	context ast.Context) (*ast.Block, error) {
	//
	delim := lines.ConsumeCurrent()
	var content []*lexer.Line
	var closing *lexer.Line
	for l := lines.ConsumeCurrent(); l != nil; l = lines.ConsumeCurrent() {
		if l.Src == delim.Src {
			closing = l
			p.RestoreLines(lines)
			break
		}
		content = append(content, l)
	}
	if closing == nil {
		for l := p.nextLine(); l != nil; l = p.nextLine() {
			if l.Src == delim.Src {
				closing = l
				break
			}
			content = append(content, l)
		}
	}
	end := delim.Loc.End
	if closing != nil {
		end = closing.Loc.End
	} else {
		if len(content) > 0 {
			end = content[len(content)-1].Loc.End
		}
		msg := fmt.Sprintf("Unterminated %s block", context)
		if kind == commentBlock {
			msg = "Unterminated comment block"
		}
		d := diag.New(diag.UnterminatedBlock, msg, p.scope.src.Pos(delim.Loc.Start, delim.Loc.End))
		if err := p.Report(d); err != nil {
			return nil, err
		}
	}
	block := &ast.Block{Context: context, Meta: meta, Loc: ast.Loc{Start: meta.Start, End: end}}
	switch kind {
	case commentBlock:
		return nil, nil
	case verbatimBlock:
		block.Inlines = parseInlines(joinLines(content), ast.Verbatim)
	case compoundBlock:
		if len(content) > 0 {
			start, stop := content[0].Loc.Start, content[len(content)-1].Loc.End
			blocks, err := p.child(p.scope.src.Slice(start, stop), start).parseBlocks()
			if err != nil {
				return nil, err
			}
			block.Blocks = blocks
		}
	}
	tracer().Debugf("delimited block %v", block)
	return block, nil
}

// joinLines concatenates the tokens of lines, with newline tokens in between.
func joinLines(lines []*lexer.Line) []lexer.Token {
	var tokens []lexer.Token
	for i, l := range lines {
		if i > 0 {
			tokens = append(tokens, lexer.NewlineToken(lines[i-1].Loc.End))
		}
		tokens = append(tokens, l.Tokens...)
	}
	return tokens
}
