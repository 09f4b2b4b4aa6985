// Package blockcontrols shows the "+" and drag handle next to the block
// under the pointer. Decorations are recomputed from scratch on every
// document change.
package blockcontrols

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/logging"
	"github.com/renato0307/lessonpad/internal/messages"
	"github.com/renato0307/lessonpad/internal/mouse"
	"github.com/renato0307/lessonpad/internal/types"
	"github.com/renato0307/lessonpad/internal/ui"
)

const (
	RegionInsert = "insert"
	RegionHandle = "handle"

	insertGlyph = "+"
	handleGlyph = "⠿"
	dropGlyph   = "▸"
)

// Decoration marks one block-level node by its position
type Decoration struct {
	Pos   int
	Size  int
	Depth int
	Kind  document.Kind
}

// Compute returns one decoration per block-level node in document order.
// Table rows and cells are not decorated, the blocks inside cells are.
func Compute(doc *document.Document) []Decoration {
	var decos []Decoration
	depths := map[*document.Node]int{}
	doc.Descendants(func(n *document.Node, pos int) bool {
		if !n.IsBlock() {
			return false
		}
		depth := depths[n]
		if n.IsTableInternal() {
			for _, c := range n.Children {
				depths[c] = depth
			}
			return true
		}
		decos = append(decos, Decoration{Pos: pos, Size: n.Size(), Depth: depth, Kind: n.Kind})
		for _, c := range n.Children {
			depths[c] = depth + 1
		}
		return true
	})
	return decos
}

// Host lays out blocks on screen
type Host interface {
	// GutterRect returns the gutter cells beside the block at pos: the
	// gutter of its first line, as tall as its visible lines. ok is false
	// when the block is not on screen.
	GutterRect(pos int) (rect mouse.Rect, ok bool)
}

// Controls tracks decorations, the hovered block and a drag in progress.
type Controls struct {
	surface types.Surface
	host    Host
	theme   *ui.Theme

	decorations []Decoration
	hovered     int // index into decorations, -1 for none
	dragFrom    int // decoration position being dragged, -1 for none
	dropTarget  int
	lastY       int
	hits        *mouse.HitMap

	unsubscribe func()
}

// New creates controls for surface and starts following its changes.
func New(surface types.Surface, host Host, theme *ui.Theme) *Controls {
	if theme == nil {
		theme = ui.ThemeCharm()
	}
	c := &Controls{
		surface:    surface,
		host:       host,
		theme:      theme,
		hovered:    -1,
		dragFrom:   -1,
		dropTarget: -1,
		lastY:      -1,
		hits:       mouse.NewHitMap(),
	}
	c.Recompute(surface.Document())
	c.unsubscribe = surface.OnChange(c.Recompute)
	return c
}

// Close stops following document changes.
func (c *Controls) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Recompute rebuilds every decoration from doc.
func (c *Controls) Recompute(doc *document.Document) {
	ctx := logging.Start("blockcontrols.Recompute")
	c.decorations = Compute(doc)
	logging.EndWithCount(ctx, len(c.decorations))

	// Positions moved; the hovered block is found again from the pointer.
	c.hovered = c.decorationAt(c.lastY)
	c.refreshHits()
}

// Decorations returns the current decorations.
func (c *Controls) Decorations() []Decoration {
	return c.decorations
}

// Hovered returns the decoration under the pointer.
func (c *Controls) Hovered() (Decoration, bool) {
	if c.hovered < 0 || c.hovered >= len(c.decorations) {
		return Decoration{}, false
	}
	return c.decorations[c.hovered], true
}

// Dragging reports whether a block is being dragged.
func (c *Controls) Dragging() bool {
	return c.dragFrom >= 0
}

// HandleMouse reacts to pointer input that no floating UI consumed. It
// reports whether the event was used.
func (c *Controls) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	c.lastY = msg.Y

	switch msg.Action {
	case tea.MouseActionMotion:
		c.hovered = c.decorationAt(msg.Y)
		if c.Dragging() {
			c.dropTarget = c.hovered
		}
		c.refreshHits()
		return nil, c.Dragging()

	case tea.MouseActionRelease:
		if !c.Dragging() {
			return nil, false
		}
		return c.drop(msg.Y), true

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		c.hovered = c.decorationAt(msg.Y)
		c.refreshHits()
		r := c.hits.Test(msg.X, msg.Y)
		if r == nil {
			return nil, false
		}
		deco := r.Data.(Decoration)
		switch r.ID {
		case RegionInsert:
			return c.insertAfter(deco, r.Rect), true
		case RegionHandle:
			c.dragFrom = deco.Pos
			c.dropTarget = c.hovered
			logging.Debug("Block drag started", "pos", deco.Pos, "kind", string(deco.Kind))
			return nil, true
		}
	}
	return nil, false
}

// insertAfter adds an empty paragraph after deco, puts the caret in it and
// asks for the block menu next to the button.
func (c *Controls) insertAfter(deco Decoration, button mouse.Rect) tea.Cmd {
	at := deco.Pos + deco.Size
	if err := c.surface.InsertNode(at, document.NewParagraph("")); err != nil {
		logging.Warn("Insert after block failed", "pos", deco.Pos, "error", err)
		return messages.ErrorCmd("Insert block failed: %v", err)
	}
	doc := c.surface.Document()
	if err := doc.SetCaret(at + 1); err != nil {
		// Inside a list the paragraph is wrapped in a new item.
		if err := doc.SetCaret(at + 2); err != nil {
			logging.Debug("Caret not moved to inserted block", "pos", at, "error", err)
		}
	}

	anchor := mouse.Rect{X: button.Right(), Y: button.Y, W: 1, H: 1}
	return func() tea.Msg {
		return types.OpenMenuMsg{Anchor: anchor}
	}
}

func (c *Controls) drop(y int) tea.Cmd {
	from := c.dragFrom
	c.dragFrom, c.dropTarget = -1, -1

	target := c.decorationAt(y)
	if target < 0 {
		return nil
	}
	to := c.decorations[target].Pos
	if to == from {
		return nil
	}
	if err := c.surface.MoveBlock(from, to); err != nil {
		logging.Debug("Block move rejected", "from", from, "to", to, "error", err)
		return messages.ErrorCmd("Move block failed: %v", err)
	}
	return nil
}

// decorationAt finds the block whose lines cover screen row y. The block
// starting last wins; blocks starting on the same row resolve to the
// outermost.
func (c *Controls) decorationAt(y int) int {
	if y < 0 || c.host == nil {
		return -1
	}
	best := -1
	bestY := -1
	for i, d := range c.decorations {
		r, ok := c.host.GutterRect(d.Pos)
		if !ok || y < r.Y || y >= r.Bottom() {
			continue
		}
		if r.Y > bestY || (r.Y == bestY && d.Depth < c.decorations[best].Depth) {
			best, bestY = i, r.Y
		}
	}
	return best
}

func (c *Controls) refreshHits() {
	c.hits.Clear()
	deco, ok := c.Hovered()
	if !ok || c.host == nil {
		return
	}
	r, ok := c.host.GutterRect(deco.Pos)
	if !ok {
		return
	}
	c.hits.AddRect(RegionInsert, r.X, r.Y, 2, 1, deco)
	c.hits.AddRect(RegionHandle, r.X+2, r.Y, 2, 1, deco)
}

// Gutter renders the gutter cells for screen row y, width cells wide.
func (c *Controls) Gutter(y, width int) string {
	blank := spaces(width)
	if c.Dragging() {
		if c.dropTarget >= 0 && c.rowOf(c.dropTarget) == y {
			return c.theme.Blocks.GutterHot.Render(dropGlyph) + spaces(width-1)
		}
		return blank
	}
	if c.hovered < 0 || c.rowOf(c.hovered) != y || width < 4 {
		return blank
	}
	return c.theme.Blocks.GutterHot.Render(insertGlyph) + " " +
		c.theme.Blocks.Gutter.Render(handleGlyph) + spaces(width-3)
}

func (c *Controls) rowOf(i int) int {
	if i < 0 || i >= len(c.decorations) {
		return -1
	}
	r, ok := c.host.GutterRect(c.decorations[i].Pos)
	if !ok {
		return -1
	}
	return r.Y
}

func spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}
