// Package document implements the block document edited by lessonpad.
//
// Positions follow the usual rich-text convention: the document content
// starts at 0, entering or leaving a non-leaf node costs one position, each
// rune of text costs one position and a leaf node costs one. A node's
// position is the position just before its opening token.
package document

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/renato0307/lessonpad/internal/events"
)

var (
	// ErrInvalidPosition is returned when a position does not resolve to the
	// place an operation needs.
	ErrInvalidPosition = errors.New("invalid document position")
	// ErrNotTextBlock is returned when an operation needs text but the
	// position points elsewhere.
	ErrNotTextBlock = errors.New("position is not inside a text block")
	// ErrInvalidContent is returned when a node is not allowed where it is
	// being placed.
	ErrInvalidContent = errors.New("node not allowed here")
	// ErrInvalidMove is returned when a block cannot be moved to a target.
	ErrInvalidMove = errors.New("invalid block move")
)

// Caret is the text cursor: a text block and a rune offset into its text.
type Caret struct {
	Node   *Node
	Offset int
}

// Document is a mutable block tree with a caret and a change feed.
// It is driven from a single goroutine.
type Document struct {
	root    *Node
	caret   Caret
	version int
	changes events.Bus[*Document]
}

// New creates a document holding the given top-level blocks. An empty
// document gets one empty paragraph so there is always somewhere to type.
func New(blocks ...*Node) *Document {
	d := &Document{root: &Node{Kind: KindDoc, Children: blocks}}
	d.ensureTextBlock()
	d.caret = Caret{Node: d.textBlocks()[0]}
	return d
}

// Root returns the document node. Callers must not mutate it directly.
func (d *Document) Root() *Node {
	return d.root
}

// Version increases by one on every change.
func (d *Document) Version() int {
	return d.version
}

// Size returns the size of the document content.
func (d *Document) Size() int {
	return d.root.ContentSize()
}

// OnChange registers fn to run after every change. The returned function
// detaches it.
func (d *Document) OnChange(fn func(*Document)) (unsubscribe func()) {
	return d.changes.Subscribe(func(doc *Document) bool {
		fn(doc)
		return false
	})
}

// Listeners returns the number of attached change listeners.
func (d *Document) Listeners() int {
	return d.changes.Len()
}

func (d *Document) changed() {
	d.version++
	d.changes.Broadcast(d)
}

// Descendants calls fn for every node below the root with its position.
// Returning false from fn skips that node's children.
func (d *Document) Descendants(fn func(n *Node, pos int) bool) {
	d.visit(func(n, _ *Node, _ int, pos int) bool {
		return fn(n, pos)
	})
}

type visitFunc func(n, parent *Node, index, pos int) bool

func (d *Document) visit(fn visitFunc) {
	visitChildren(d.root, 0, fn)
}

func visitChildren(parent *Node, start int, fn visitFunc) {
	pos := start
	for i, child := range parent.Children {
		if fn(child, parent, i, pos) && child.IsContainer() {
			visitChildren(child, pos+1, fn)
		}
		pos += child.Size()
	}
}

// location describes where a node sits in the tree.
type location struct {
	node   *Node
	parent *Node
	index  int
	pos    int
}

func (d *Document) locate(target *Node) (location, bool) {
	var loc location
	found := false
	d.visit(func(n, parent *Node, index, pos int) bool {
		if found {
			return false
		}
		if n == target {
			loc = location{node: n, parent: parent, index: index, pos: pos}
			found = true
			return false
		}
		return true
	})
	return loc, found
}

// NodeAt returns the node that starts at pos.
func (d *Document) NodeAt(pos int) (*Node, error) {
	var found *Node
	d.visit(func(n, _ *Node, _ int, p int) bool {
		if found != nil || p > pos {
			return false
		}
		if p == pos {
			found = n
			return false
		}
		return pos < p+n.Size()
	})
	if found == nil {
		return nil, fmt.Errorf("no node at %d: %w", pos, ErrInvalidPosition)
	}
	return found, nil
}

// PosOf returns the position of n, or -1 when n is not in the document.
func (d *Document) PosOf(n *Node) int {
	loc, ok := d.locate(n)
	if !ok {
		return -1
	}
	return loc.pos
}

// resolveText maps a position to the text block containing it and the rune
// offset into that block.
func (d *Document) resolveText(pos int) (*Node, int, error) {
	var node *Node
	offset := 0
	d.visit(func(n, _ *Node, _ int, p int) bool {
		if node != nil || p > pos || pos >= p+n.Size() {
			return false
		}
		if n.IsTextBlock() {
			start := p + 1
			if pos >= start && pos <= start+utf8.RuneCountInString(n.Text) {
				node = n
				offset = pos - start
			}
			return false
		}
		return true
	})
	if node == nil {
		return nil, 0, fmt.Errorf("resolve %d: %w", pos, ErrNotTextBlock)
	}
	return node, offset, nil
}

// resolveBoundary maps a position to a container and child index such that
// the position sits right before that child (or at the end of the content).
func (d *Document) resolveBoundary(pos int) (*Node, int, error) {
	parent, index, ok := boundaryIn(d.root, 0, pos)
	if !ok {
		return nil, 0, fmt.Errorf("no block boundary at %d: %w", pos, ErrInvalidPosition)
	}
	return parent, index, nil
}

func boundaryIn(parent *Node, start, pos int) (*Node, int, bool) {
	p := start
	for i, child := range parent.Children {
		if p == pos {
			return parent, i, true
		}
		end := p + child.Size()
		if pos > p && pos < end {
			if child.IsContainer() {
				return boundaryIn(child, p+1, pos)
			}
			return nil, 0, false
		}
		p = end
	}
	if p == pos {
		return parent, len(parent.Children), true
	}
	return nil, 0, false
}

// textBlocks returns every text block in document order.
func (d *Document) textBlocks() []*Node {
	var blocks []*Node
	d.visit(func(n, _ *Node, _ int, _ int) bool {
		if n.IsTextBlock() {
			blocks = append(blocks, n)
			return false
		}
		return true
	})
	return blocks
}

// TextBlocks returns every text block in document order.
func (d *Document) TextBlocks() []*Node {
	return d.textBlocks()
}

func (d *Document) ensureTextBlock() {
	if len(d.textBlocks()) == 0 {
		d.root.Children = append(d.root.Children, NewParagraph(""))
	}
}

// Caret returns the current caret.
func (d *Document) Caret() Caret {
	return d.caret
}

// CaretPos returns the absolute position of the caret.
func (d *Document) CaretPos() int {
	pos := d.PosOf(d.caret.Node)
	if pos < 0 {
		return 0
	}
	return pos + 1 + d.caret.Offset
}

// SetCaret moves the caret to pos, which must be inside a text block.
func (d *Document) SetCaret(pos int) error {
	node, offset, err := d.resolveText(pos)
	if err != nil {
		return err
	}
	d.caret = Caret{Node: node, Offset: offset}
	return nil
}

// SetCaretIn moves the caret into node at the given rune offset, clamped
// to the node's text.
func (d *Document) SetCaretIn(node *Node, offset int) error {
	if node == nil || !node.IsTextBlock() {
		return ErrNotTextBlock
	}
	if _, ok := d.locate(node); !ok {
		return fmt.Errorf("node not in document: %w", ErrInvalidPosition)
	}
	offset = min(max(offset, 0), utf8.RuneCountInString(node.Text))
	d.caret = Caret{Node: node, Offset: offset}
	return nil
}

// fixCaret puts the caret back into the document after a structural edit
// removed its block.
func (d *Document) fixCaret(fallback *Node) {
	if _, ok := d.locate(d.caret.Node); ok {
		d.caret.Offset = min(d.caret.Offset, utf8.RuneCountInString(d.caret.Node.Text))
		return
	}
	d.ensureTextBlock()
	if fallback != nil {
		if _, ok := d.locate(fallback); ok && fallback.IsTextBlock() {
			d.caret = Caret{Node: fallback}
			return
		}
	}
	d.caret = Caret{Node: d.textBlocks()[0]}
}

// TextBetween returns the text between two positions of the same text block.
func (d *Document) TextBetween(from, to int) (string, error) {
	if from > to {
		return "", fmt.Errorf("range %d..%d: %w", from, to, ErrInvalidPosition)
	}
	node, startOff, err := d.resolveText(from)
	if err != nil {
		return "", err
	}
	endNode, endOff, err := d.resolveText(to)
	if err != nil {
		return "", err
	}
	if endNode != node {
		return "", fmt.Errorf("range %d..%d spans blocks: %w", from, to, ErrInvalidPosition)
	}
	runes := []rune(node.Text)
	return string(runes[startOff:endOff]), nil
}
