package ast

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cords"
)

// InnerText creates a text cord for the textual content of a sequence of
// inline nodes and all their descendents, with markup removed. Joining
// newlines are kept as newline characters.
//
// The fragment organization of the resulting cord reflects the leaf nodes of
// the inline tree.
func InnerText(inlines []Inline) (cords.Cord, error) {
	if inlines == nil {
		return cords.Cord{}, cords.ErrIllegalArguments
	}
	b := cords.NewBuilder()
	collectText(inlines, b)
	return b.Cord(), nil
}

func collectText(inlines []Inline, b *cords.Builder) {
	for i := range inlines {
		n := &inlines[i]
		if n.Kind.IsContainer() {
			collectText(n.Children, b)
			continue
		}
		text := n.Text
		if n.Kind == JoiningNewline {
			text = "\n"
		}
		if text == "" {
			continue
		}
		leaf := &Leaf{node: n, content: text}
		tracer().Debugf("text leaf %s", leaf.dbgString())
		b.Append(leaf)
	}
}

// PlainText returns the text content of a cell, paragraphs separated by
// blank lines. AsciiDoc cells report the text of their paragraphs only.
func (c *Cell) PlainText() string {
	var parts []string
	add := func(inlines []Inline) {
		if len(inlines) == 0 {
			return
		}
		if text, err := InnerText(inlines); err == nil && !text.IsVoid() {
			parts = append(parts, text.String())
		}
	}
	switch {
	case c.Content.Style == LiteralStyle:
		add(c.Content.Literal)
	case c.Content.Style == AsciiDoc:
		if c.Content.Document != nil {
			for _, b := range c.Content.Document.Blocks {
				add(b.Inlines)
			}
		}
	default:
		for _, p := range c.Content.Paragraphs {
			add(p)
		}
	}
	return strings.Join(parts, "\n\n")
}

// ---------------------------------------------------------------------------

// Leaf is the leaf type created for cords from calls to InnerText(…).
type Leaf struct {
	node    *Inline
	content string
}

// Weight of a leaf is its string length in bytes.
func (l Leaf) Weight() uint64 {
	return uint64(len(l.content))
}

func (l Leaf) String() string {
	return l.content
}

// Split splits a leaf at position i, resulting in 2 new leafs.
func (l Leaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &Leaf{node: l.node, content: l.content[:i]}
	right := &Leaf{node: l.node, content: l.content[i:]}
	return left, right
}

// Substring returns a string segment of the leaf's text fragment.
func (l Leaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

// Kind returns the kind of the inline node a leaf has been created from.
func (l Leaf) Kind() InlineKind {
	if l.node == nil {
		return Text
	}
	return l.node.Kind
}

var _ cords.Leaf = Leaf{}

func (l Leaf) dbgString() string {
	cont := strings.Replace(l.String(), "\n", "_", -1)
	return fmt.Sprintf("{%s \"%s\"}", l.Kind(), cont)
}
