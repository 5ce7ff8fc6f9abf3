package ast

import "fmt"

// InlineKind is the kind of an inline node.
type InlineKind uint8

const (
	Text InlineKind = iota
	SpecialChar
	JoiningNewline
	MultiCharWhitespace
	LitMono
	Passthrough
	Bold
	Italic
	Mono
	Highlight
	Superscript
	Subscript
)

var inlineNames = [...]string{
	"Text", "SpecialChar", "JoiningNewline", "MultiCharWhitespace", "LitMono", "Passthrough",
	"Bold", "Italic", "Mono", "Highlight", "Superscript", "Subscript",
}

func (k InlineKind) String() string {
	if int(k) < len(inlineNames) {
		return inlineNames[k]
	}
	return fmt.Sprintf("InlineKind(%d)", k)
}

// IsContainer is true for inline kinds which hold child nodes instead of text.
func (k InlineKind) IsContainer() bool {
	return k >= Bold
}

// Inline is a node of inline content. Leaf nodes carry Text, containers
// carry Children.
type Inline struct {
	Kind     InlineKind
	Text     string
	Children []Inline
	Loc      Loc
}

// TextNode creates a leaf node of kind Text.
func TextNode(text string, loc Loc) Inline {
	return Inline{Kind: Text, Text: text, Loc: loc}
}

func (n Inline) String() string {
	if n.Kind.IsContainer() {
		return fmt.Sprintf("%s%v", n.Kind, n.Children)
	}
	return fmt.Sprintf("%s(%q)", n.Kind, n.Text)
}

// Subs is a set of substitutions applied to inline content.
type Subs uint8

const (
	SpecialChars Subs = 1 << iota
	InlineFormatting
)

// Substitution groups
const (
	Verbatim Subs = SpecialChars
	Normal   Subs = SpecialChars | InlineFormatting
)

// Has checks if a substitution is part of the set.
func (s Subs) Has(sub Subs) bool {
	return s&sub != 0
}
