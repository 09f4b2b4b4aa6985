package document

import (
	"slices"
	"unicode/utf8"
)

// MoveLeft moves the caret one rune back, wrapping to the end of the
// previous text block.
func (d *Document) MoveLeft() {
	if d.caret.Offset > 0 {
		d.caret.Offset--
		return
	}
	if prev := d.neighbour(-1); prev != nil {
		d.caret = Caret{Node: prev, Offset: utf8.RuneCountInString(prev.Text)}
	}
}

// MoveRight moves the caret one rune forward, wrapping to the start of the
// next text block.
func (d *Document) MoveRight() {
	if d.caret.Offset < utf8.RuneCountInString(d.caret.Node.Text) {
		d.caret.Offset++
		return
	}
	if next := d.neighbour(1); next != nil {
		d.caret = Caret{Node: next}
	}
}

// MoveUp moves the caret to the previous text block, keeping the column
// where possible.
func (d *Document) MoveUp() {
	d.moveVertical(-1)
}

// MoveDown moves the caret to the next text block.
func (d *Document) MoveDown() {
	d.moveVertical(1)
}

func (d *Document) moveVertical(dir int) {
	target := d.neighbour(dir)
	if target == nil {
		return
	}
	d.caret = Caret{
		Node:   target,
		Offset: min(d.caret.Offset, utf8.RuneCountInString(target.Text)),
	}
}

// MoveHome moves the caret to the start of its block.
func (d *Document) MoveHome() {
	d.caret.Offset = 0
}

// MoveEnd moves the caret to the end of its block.
func (d *Document) MoveEnd() {
	d.caret.Offset = utf8.RuneCountInString(d.caret.Node.Text)
}

func (d *Document) neighbour(dir int) *Node {
	blocks := d.textBlocks()
	i := slices.Index(blocks, d.caret.Node)
	j := i + dir
	if i < 0 || j < 0 || j >= len(blocks) {
		return nil
	}
	return blocks[j]
}
