package ast

import "fmt"

// Loc is a span of byte positions within the document source.
type Loc struct {
	Start, End int
}

// Len returns the length of the span.
func (l Loc) Len() int {
	return l.End - l.Start
}

// Document is the root of a document tree.
type Document struct {
	Blocks []*Block
	Loc    Loc
}

// Context is the kind of a block.
type Context uint8

const (
	ParagraphBlock Context = iota
	TableBlock
	ExampleBlock
	SidebarBlock
	OpenBlock
	ListingBlock
	LiteralBlock
)

func (c Context) String() string {
	switch c {
	case ParagraphBlock:
		return "paragraph"
	case TableBlock:
		return "table"
	case ExampleBlock:
		return "example"
	case SidebarBlock:
		return "sidebar"
	case OpenBlock:
		return "open"
	case ListingBlock:
		return "listing"
	case LiteralBlock:
		return "literal"
	}
	return fmt.Sprintf("Context(%d)", c)
}

// IsCompound is true for blocks containing other blocks.
func (c Context) IsCompound() bool {
	return c == ExampleBlock || c == SidebarBlock || c == OpenBlock
}

// IsVerbatim is true for blocks whose content is kept as-is.
func (c Context) IsVerbatim() bool {
	return c == ListingBlock || c == LiteralBlock
}

// BlockMeta holds the metadata preceding a block: title and attributes.
type BlockMeta struct {
	Title string
	Attrs *AttrList
	Start int
}

// Block is a block-level element of a document.
// Depending on its context, either Inlines, Blocks or Table is set.
type Block struct {
	Context Context
	Meta    BlockMeta
	Inlines []Inline
	Blocks  []*Block
	Table   *Table
	Loc     Loc
}

// HasOption checks if a block carries an option, e.g. `%header`.
func (b *Block) HasOption(opt string) bool {
	return b.Meta.Attrs.HasOption(opt)
}

// Named returns the value of a named block attribute.
func (b *Block) Named(name string) (string, bool) {
	return b.Meta.Attrs.Named(name)
}

// Style returns the block style, i.e. the first positional attribute.
func (b *Block) Style() string {
	return b.Meta.Attrs.Style()
}

// Language returns the language of a source listing, if any.
func (b *Block) Language() string {
	if b.Context != ListingBlock || b.Style() != "source" {
		return ""
	}
	if lang, ok := b.Meta.Attrs.Positional(1); ok {
		return lang.Value
	}
	if lang, ok := b.Named("language"); ok {
		return lang
	}
	return ""
}

func (b *Block) String() string {
	return fmt.Sprintf("[%s @%d…%d]", b.Context, b.Loc.Start, b.Loc.End)
}
