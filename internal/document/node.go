package document

import (
	"strings"
	"unicode/utf8"
)

// Kind is the node type name.
type Kind string

const (
	KindDoc            Kind = "doc"
	KindParagraph      Kind = "paragraph"
	KindHeading        Kind = "heading"
	KindCodeBlock      Kind = "codeBlock"
	KindBlockquote     Kind = "blockquote"
	KindBulletList     Kind = "bulletList"
	KindOrderedList    Kind = "orderedList"
	KindListItem       Kind = "listItem"
	KindHorizontalRule Kind = "horizontalRule"
	KindTable          Kind = "table"
	KindTableRow       Kind = "tableRow"
	KindTableCell      Kind = "tableCell"
	KindTableHeader    Kind = "tableHeader"
)

// Attrs holds the per-kind attributes. Level is only used by headings.
type Attrs struct {
	Level int
}

// Node is one node of the block tree. Text blocks (paragraph, heading,
// code block) hold Text and no children; containers hold Children.
type Node struct {
	Kind     Kind
	Attrs    Attrs
	Text     string
	Children []*Node
}

// IsTextBlock reports whether the node holds inline text.
func (n *Node) IsTextBlock() bool {
	switch n.Kind {
	case KindParagraph, KindHeading, KindCodeBlock:
		return true
	}
	return false
}

// IsLeaf reports whether the node is an atom with no content.
func (n *Node) IsLeaf() bool {
	return n.Kind == KindHorizontalRule
}

// IsContainer reports whether the node holds child nodes.
func (n *Node) IsContainer() bool {
	return !n.IsTextBlock() && !n.IsLeaf()
}

// IsBlock reports whether the node is block-level. Everything but the
// document root is a block; inline content only exists as text.
func (n *Node) IsBlock() bool {
	return n.Kind != KindDoc
}

// IsList reports whether the node is a bullet or ordered list.
func (n *Node) IsList() bool {
	return n.Kind == KindBulletList || n.Kind == KindOrderedList
}

// IsTableInternal reports whether the node only exists inside a table.
func (n *Node) IsTableInternal() bool {
	switch n.Kind {
	case KindTableRow, KindTableCell, KindTableHeader:
		return true
	}
	return false
}

// Size returns the number of positions the node occupies: one per rune of
// text plus an opening and closing token, or one for a leaf.
func (n *Node) Size() int {
	if n.IsLeaf() {
		return 1
	}
	return 2 + n.ContentSize()
}

// ContentSize returns the size of the node's content.
func (n *Node) ContentSize() int {
	if n.IsTextBlock() {
		return utf8.RuneCountInString(n.Text)
	}
	size := 0
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Clone returns a deep copy.
func (n *Node) Clone() *Node {
	c := &Node{Kind: n.Kind, Attrs: n.Attrs, Text: n.Text}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// PlainText concatenates all text in the subtree, one line per text block.
func (n *Node) PlainText() string {
	if n.IsTextBlock() {
		return n.Text
	}
	var parts []string
	for _, c := range n.Children {
		if t := c.PlainText(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// NewParagraph creates a paragraph.
func NewParagraph(text string) *Node {
	return &Node{Kind: KindParagraph, Text: text}
}

// NewHeading creates a heading of the given level (clamped to 1..6).
func NewHeading(level int, text string) *Node {
	level = min(max(level, 1), 6)
	return &Node{Kind: KindHeading, Attrs: Attrs{Level: level}, Text: text}
}

// NewCodeBlock creates a code block.
func NewCodeBlock(text string) *Node {
	return &Node{Kind: KindCodeBlock, Text: text}
}

// NewHorizontalRule creates a divider.
func NewHorizontalRule() *Node {
	return &Node{Kind: KindHorizontalRule}
}

// NewBlockquote wraps one paragraph per line of text in a blockquote.
func NewBlockquote(lines ...string) *Node {
	q := &Node{Kind: KindBlockquote}
	for _, l := range lines {
		q.Children = append(q.Children, NewParagraph(l))
	}
	if len(q.Children) == 0 {
		q.Children = []*Node{NewParagraph("")}
	}
	return q
}

// NewList creates a bullet or ordered list with one item per entry.
func NewList(kind Kind, items ...string) *Node {
	list := &Node{Kind: kind}
	for _, item := range items {
		list.Children = append(list.Children, NewListItem(NewParagraph(item)))
	}
	if len(list.Children) == 0 {
		list.Children = []*Node{NewListItem(NewParagraph(""))}
	}
	return list
}

// NewListItem wraps blocks in a list item.
func NewListItem(blocks ...*Node) *Node {
	return &Node{Kind: KindListItem, Children: blocks}
}

// NewTable creates a rows x cols table of empty cells. With withHeader the
// first row is made of header cells.
func NewTable(rows, cols int, withHeader bool) *Node {
	table := &Node{Kind: KindTable}
	for r := 0; r < rows; r++ {
		row := &Node{Kind: KindTableRow}
		cellKind := KindTableCell
		if withHeader && r == 0 {
			cellKind = KindTableHeader
		}
		for c := 0; c < cols; c++ {
			row.Children = append(row.Children, &Node{
				Kind:     cellKind,
				Children: []*Node{NewParagraph("")},
			})
		}
		table.Children = append(table.Children, row)
	}
	return table
}
