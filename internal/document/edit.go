package document

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// InsertText inserts s at the caret and advances the caret past it.
func (d *Document) InsertText(s string) {
	if s == "" {
		return
	}
	runes := []rune(d.caret.Node.Text)
	off := min(d.caret.Offset, len(runes))
	out := make([]rune, 0, len(runes)+utf8.RuneCountInString(s))
	out = append(out, runes[:off]...)
	out = append(out, []rune(s)...)
	out = append(out, runes[off:]...)
	d.caret.Node.Text = string(out)
	d.caret.Offset = off + utf8.RuneCountInString(s)
	d.changed()
}

// DeleteRange removes the text between two positions of one text block.
func (d *Document) DeleteRange(from, to int) error {
	if from == to {
		return nil
	}
	if from > to {
		return fmt.Errorf("delete %d..%d: %w", from, to, ErrInvalidPosition)
	}
	node, startOff, err := d.resolveText(from)
	if err != nil {
		return err
	}
	endNode, endOff, err := d.resolveText(to)
	if err != nil {
		return err
	}
	if endNode != node {
		return fmt.Errorf("delete %d..%d spans blocks: %w", from, to, ErrInvalidPosition)
	}

	runes := []rune(node.Text)
	node.Text = string(append(runes[:startOff:startOff], runes[endOff:]...))

	if d.caret.Node == node {
		switch {
		case d.caret.Offset > endOff:
			d.caret.Offset -= endOff - startOff
		case d.caret.Offset > startOff:
			d.caret.Offset = startOff
		}
	}
	d.changed()
	return nil
}

// DeleteBackward removes the rune before the caret. At the start of a block
// it removes a preceding divider, turns a non-paragraph block back into a
// paragraph, or joins the block onto the previous text block.
func (d *Document) DeleteBackward() {
	cur := d.caret.Node
	if d.caret.Offset > 0 {
		runes := []rune(cur.Text)
		off := min(d.caret.Offset, len(runes))
		cur.Text = string(append(runes[:off-1:off-1], runes[off:]...))
		d.caret.Offset = off - 1
		d.changed()
		return
	}

	loc, ok := d.locate(cur)
	if !ok {
		return
	}
	if loc.index > 0 && loc.parent.Children[loc.index-1].IsLeaf() {
		loc.parent.Children = slices.Delete(loc.parent.Children, loc.index-1, loc.index)
		d.changed()
		return
	}
	if cur.Kind != KindParagraph {
		cur.Kind = KindParagraph
		cur.Attrs = Attrs{}
		d.changed()
		return
	}

	blocks := d.textBlocks()
	i := slices.Index(blocks, cur)
	if i <= 0 {
		return
	}
	prev := blocks[i-1]
	prevLen := utf8.RuneCountInString(prev.Text)
	prev.Text += cur.Text
	d.removeNode(cur)
	d.caret = Caret{Node: prev, Offset: prevLen}
	d.changed()
}

// SplitBlock breaks the caret block in two at the caret. Inside a list it
// starts a new item; on an empty item it leaves the list.
func (d *Document) SplitBlock() {
	cur := d.caret.Node
	loc, ok := d.locate(cur)
	if !ok {
		return
	}
	runes := []rune(cur.Text)
	off := min(d.caret.Offset, len(runes))
	left, right := string(runes[:off]), string(runes[off:])

	next := NewParagraph(right)
	if cur.Kind == KindCodeBlock {
		next = NewCodeBlock(right)
	}

	if loc.parent.Kind == KindListItem {
		item := loc.parent
		itemLoc, ok := d.locate(item)
		if !ok {
			return
		}
		list := itemLoc.parent
		if cur.Text == "" && len(item.Children) == 1 {
			d.liftOut(list, itemLoc.index, []*Node{next})
			d.caret = Caret{Node: next}
			d.changed()
			return
		}
		cur.Text = left
		list.Children = slices.Insert(list.Children, itemLoc.index+1, NewListItem(next))
		d.caret = Caret{Node: next}
		d.changed()
		return
	}

	cur.Text = left
	loc.parent.Children = slices.Insert(loc.parent.Children, loc.index+1, next)
	d.caret = Caret{Node: next}
	d.changed()
}

// InsertNode inserts node at a block boundary. A non-item node dropped into
// a list is wrapped in a list item.
func (d *Document) InsertNode(pos int, node *Node) error {
	parent, index, err := d.resolveBoundary(pos)
	if err != nil {
		return err
	}
	node, err = fitInto(parent, node)
	if err != nil {
		return err
	}
	parent.Children = slices.Insert(parent.Children, index, node)
	d.changed()
	return nil
}

// fitInto adapts node to the content rules of parent.
func fitInto(parent, node *Node) (*Node, error) {
	switch {
	case parent.IsList():
		if node.Kind != KindListItem {
			return NewListItem(node), nil
		}
	case parent.Kind == KindTable, parent.Kind == KindTableRow:
		return nil, fmt.Errorf("%s inside %s: %w", node.Kind, parent.Kind, ErrInvalidContent)
	case node.Kind == KindListItem:
		if len(node.Children) == 1 {
			return node.Children[0], nil
		}
		return &Node{Kind: KindBlockquote, Children: node.Children}, nil
	case node.IsTableInternal():
		return nil, fmt.Errorf("%s outside a table: %w", node.Kind, ErrInvalidContent)
	}
	return node, nil
}

// SetBlock turns the caret block into kind. Only text block kinds are
// accepted.
func (d *Document) SetBlock(kind Kind, attrs Attrs) error {
	probe := &Node{Kind: kind}
	if !probe.IsTextBlock() {
		return fmt.Errorf("set block to %s: %w", kind, ErrNotTextBlock)
	}
	cur := d.caret.Node
	if kind == KindHeading {
		attrs.Level = min(max(attrs.Level, 1), 6)
	} else {
		attrs = Attrs{}
	}
	cur.Kind = kind
	cur.Attrs = attrs
	d.changed()
	return nil
}

// ToggleBlock toggles the caret block between kind and a paragraph for text
// block kinds, and wraps or unwraps it for lists and blockquotes.
func (d *Document) ToggleBlock(kind Kind, attrs Attrs) error {
	switch kind {
	case KindParagraph, KindHeading, KindCodeBlock:
		cur := d.caret.Node
		if kind == KindHeading {
			attrs.Level = min(max(attrs.Level, 1), 6)
		}
		if cur.Kind == kind && (kind != KindHeading || cur.Attrs.Level == attrs.Level) {
			return d.SetBlock(KindParagraph, Attrs{})
		}
		return d.SetBlock(kind, attrs)
	case KindBulletList, KindOrderedList:
		return d.toggleList(kind)
	case KindBlockquote:
		return d.toggleBlockquote()
	}
	return fmt.Errorf("toggle %s: %w", kind, ErrInvalidContent)
}

func (d *Document) toggleList(kind Kind) error {
	cur := d.caret.Node
	loc, ok := d.locate(cur)
	if !ok {
		return ErrInvalidPosition
	}
	if loc.parent.Kind == KindListItem {
		item := loc.parent
		itemLoc, ok := d.locate(item)
		if !ok {
			return ErrInvalidPosition
		}
		list := itemLoc.parent
		if list.Kind == kind {
			d.liftOut(list, itemLoc.index, item.Children)
		} else {
			list.Kind = kind
		}
		d.changed()
		return nil
	}
	if loc.parent.IsTableInternal() {
		return fmt.Errorf("list inside table cell: %w", ErrInvalidContent)
	}
	loc.parent.Children[loc.index] = &Node{Kind: kind, Children: []*Node{NewListItem(cur)}}
	d.changed()
	return nil
}

func (d *Document) toggleBlockquote() error {
	cur := d.caret.Node
	loc, ok := d.locate(cur)
	if !ok {
		return ErrInvalidPosition
	}
	if loc.parent.Kind == KindBlockquote {
		d.liftOut(loc.parent, loc.index, []*Node{cur})
		d.changed()
		return nil
	}
	loc.parent.Children[loc.index] = &Node{Kind: KindBlockquote, Children: []*Node{cur}}
	d.changed()
	return nil
}

// liftOut removes container.Children[index], splits container around it and
// puts replacement between the two halves in the container's parent.
func (d *Document) liftOut(container *Node, index int, replacement []*Node) {
	cloc, ok := d.locate(container)
	if !ok {
		return
	}
	before := container.Children[:index:index]
	after := slices.Clone(container.Children[index+1:])

	var out []*Node
	if len(before) > 0 {
		container.Children = before
		out = append(out, container)
	}
	for _, r := range replacement {
		fitted, err := fitInto(cloc.parent, r)
		if err != nil {
			continue
		}
		out = append(out, fitted)
	}
	if len(after) > 0 {
		out = append(out, &Node{Kind: container.Kind, Attrs: container.Attrs, Children: after})
	}
	cloc.parent.Children = slices.Concat(
		cloc.parent.Children[:cloc.index:cloc.index],
		out,
		cloc.parent.Children[cloc.index+1:],
	)
}

// InsertTable inserts a rows x cols table at the caret and moves the caret
// into its first cell.
func (d *Document) InsertTable(rows, cols int, withHeader bool) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("table %dx%d: %w", rows, cols, ErrInvalidContent)
	}
	return d.InsertContent(NewTable(rows, cols, withHeader))
}

// InsertContent places nodes at the caret: an empty caret paragraph is
// replaced, otherwise the nodes go right after the caret block. The caret
// ends in the first inserted text block, or the block after the inserted
// nodes.
func (d *Document) InsertContent(nodes ...*Node) error {
	if len(nodes) == 0 {
		return nil
	}
	cur := d.caret.Node
	loc, ok := d.locate(cur)
	if !ok {
		return ErrInvalidPosition
	}
	fitted := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		f, err := fitInto(loc.parent, n)
		if err != nil {
			return err
		}
		fitted = append(fitted, f)
	}

	at := loc.index + 1
	if cur.Kind == KindParagraph && cur.Text == "" {
		loc.parent.Children = slices.Delete(loc.parent.Children, loc.index, loc.index+1)
		at = loc.index
	}
	loc.parent.Children = slices.Insert(loc.parent.Children, at, fitted...)

	if target := firstTextBlock(fitted); target != nil {
		d.caret = Caret{Node: target}
	} else {
		end := at + len(fitted)
		if end < len(loc.parent.Children) && loc.parent.Children[end].IsTextBlock() {
			d.caret = Caret{Node: loc.parent.Children[end]}
		} else {
			p := NewParagraph("")
			loc.parent.Children = slices.Insert(loc.parent.Children, end, p)
			d.caret = Caret{Node: p}
		}
	}
	d.changed()
	return nil
}

func firstTextBlock(nodes []*Node) *Node {
	for _, n := range nodes {
		if n.IsTextBlock() {
			return n
		}
		if n.IsContainer() {
			if t := firstTextBlock(n.Children); t != nil {
				return t
			}
		}
	}
	return nil
}

// MoveBlock moves the block at from next to the block at to: before it when
// moving up, after it when moving down.
func (d *Document) MoveBlock(from, to int) error {
	if from == to {
		return nil
	}
	src, err := d.NodeAt(from)
	if err != nil {
		return err
	}
	dst, err := d.NodeAt(to)
	if err != nil {
		return err
	}
	if contains(src, dst) || contains(dst, src) {
		return fmt.Errorf("move %d to %d: %w", from, to, ErrInvalidMove)
	}

	dstLoc, _ := d.locate(dst)
	fitted, err := fitInto(dstLoc.parent, src)
	if err != nil {
		return err
	}

	d.removeNode(src)

	dstLoc, ok := d.locate(dst)
	if !ok {
		return fmt.Errorf("move target vanished: %w", ErrInvalidMove)
	}
	index := dstLoc.index
	if from < to {
		index++
	}
	dstLoc.parent.Children = slices.Insert(dstLoc.parent.Children, index, fitted)
	d.fixCaret(nil)
	d.changed()
	return nil
}

func contains(ancestor, n *Node) bool {
	for _, c := range ancestor.Children {
		if c == n || contains(c, n) {
			return true
		}
	}
	return false
}

// removeNode detaches n and prunes containers left empty by it.
func (d *Document) removeNode(n *Node) {
	loc, ok := d.locate(n)
	if !ok {
		return
	}
	loc.parent.Children = slices.Delete(loc.parent.Children, loc.index, loc.index+1)
	parent := loc.parent
	for parent != d.root && len(parent.Children) == 0 {
		ploc, ok := d.locate(parent)
		if !ok {
			break
		}
		ploc.parent.Children = slices.Delete(ploc.parent.Children, ploc.index, ploc.index+1)
		parent = ploc.parent
	}
	d.ensureTextBlock()
}
