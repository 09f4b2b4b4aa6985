// Package slash drives the block menu: it opens when the trigger character
// is typed at a word boundary or when a block's "+" button asks for it,
// follows the query typed after the trigger, and runs the chosen command.
package slash

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/lessonpad/internal/commands"
	"github.com/renato0307/lessonpad/internal/components/menu"
	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/logging"
	"github.com/renato0307/lessonpad/internal/messages"
	"github.com/renato0307/lessonpad/internal/mouse"
	"github.com/renato0307/lessonpad/internal/types"
)

// DefaultTrigger opens the menu when typed at a word boundary
const DefaultTrigger = '/'

// State is the controller lifecycle
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Origin is how the open menu was requested
type Origin int

const (
	// OriginTrigger follows the text typed after the trigger character
	OriginTrigger Origin = iota
	// OriginHover keeps its own query input, opened from a "+" button
	OriginHover
)

func (o Origin) String() string {
	if o == OriginHover {
		return "hover"
	}
	return "trigger"
}

// Close reasons reported through types.MenuClosedMsg
const (
	ReasonSelected    = "selected"
	ReasonSpace       = "space"
	ReasonCaretMoved  = "caret-moved"
	ReasonTriggerGone = "trigger-removed"
	ReasonReopened    = "reopened"
)

// Config holds the controller settings
type Config struct {
	Trigger rune
	Mode    commands.FilterMode
}

// Controller owns the menu's open state, query and highlighted index.
type Controller struct {
	registry *commands.Registry
	surface  types.Surface
	menu     *menu.Model
	hub      *types.Hub
	trigger  rune
	mode     commands.FilterMode

	state  State
	origin Origin
	query  string
	items  []commands.Command
	index  int
	anchor mouse.Rect
	input  *Input

	// Where the trigger character sits while a trigger menu is open
	triggerNode   *document.Node
	triggerOffset int
}

// New creates a closed controller.
func New(registry *commands.Registry, surface types.Surface, m *menu.Model, hub *types.Hub, cfg Config) *Controller {
	if cfg.Trigger == 0 {
		cfg.Trigger = DefaultTrigger
	}
	if cfg.Mode == "" {
		cfg.Mode = commands.FilterSubstring
	}
	return &Controller{
		registry: registry,
		surface:  surface,
		menu:     m,
		hub:      hub,
		trigger:  cfg.Trigger,
		mode:     cfg.Mode,
		input:    NewInput(),
	}
}

func (c *Controller) State() State                    { return c.state }
func (c *Controller) Origin() Origin                  { return c.origin }
func (c *Controller) IsOpen() bool                    { return c.state == StateOpen }
func (c *Controller) Query() string                   { return c.query }
func (c *Controller) Items() []commands.Command       { return c.items }
func (c *Controller) Index() int                      { return c.index }
func (c *Controller) Anchor() mouse.Rect              { return c.anchor }
func (c *Controller) Trigger() rune                   { return c.trigger }
func (c *Controller) FilterMode() commands.FilterMode { return c.mode }

// AfterKey is called once the editor has applied a key the menu did not
// consume. It opens the menu when the key typed the trigger at a word
// boundary and otherwise follows the query of an open trigger menu.
func (c *Controller) AfterKey(msg tea.KeyMsg) tea.Cmd {
	if c.state == StateClosed {
		if c.typedTrigger(msg) {
			c.openAtTrigger()
		}
		return nil
	}
	return c.Observe()
}

// Observe re-reads the caret after it moved, closing a trigger menu whose
// query is no longer under the caret.
func (c *Controller) Observe() tea.Cmd {
	if c.state != StateOpen || c.origin != OriginTrigger {
		return nil
	}

	caret := c.surface.Document().Caret()
	if caret.Node != c.triggerNode || caret.Offset <= c.triggerOffset {
		return c.close(ReasonCaretMoved)
	}
	runes := []rune(caret.Node.Text)
	if c.triggerOffset >= len(runes) || runes[c.triggerOffset] != c.trigger {
		return c.close(ReasonTriggerGone)
	}

	query := string(runes[c.triggerOffset+1 : min(caret.Offset, len(runes))])
	if strings.ContainsFunc(query, unicode.IsSpace) {
		return c.close(ReasonSpace)
	}

	if query != c.query {
		c.setQuery(query)
	}
	// A caret scrolled out of view keeps the menu where it was.
	if rect, ok := c.surface.CaretRect(); ok {
		c.anchor = rect
	}
	c.sync()
	return nil
}

// OpenAt opens the menu with its own query input at anchor. An open menu
// is closed first.
func (c *Controller) OpenAt(anchor mouse.Rect) tea.Cmd {
	var cmd tea.Cmd
	if c.state == StateOpen {
		cmd = c.close(ReasonReopened)
	}
	c.origin = OriginHover
	c.anchor = anchor
	c.input.Clear()
	c.triggerNode = nil
	c.open()
	return cmd
}

// Move shifts the highlight by delta, wrapping around. It does nothing
// when there are no results.
func (c *Controller) Move(delta int) {
	n := len(c.items)
	if c.state != StateOpen || n == 0 {
		return
	}
	c.index = ((c.index+delta)%n + n) % n
	c.menu.SetIndex(c.index)
}

// Select runs the command at index of the filtered list and closes the
// menu. The typed "/query" is removed from the document first and put
// back when the command fails. With no results it does nothing and the
// menu stays open.
func (c *Controller) Select(index int) tea.Cmd {
	if c.state != StateOpen || index < 0 || index >= len(c.items) {
		return nil
	}
	cmd := c.items[index]

	var removed removedQuery
	if c.origin == OriginTrigger {
		var err error
		if removed, err = c.deleteQuery(); err != nil {
			logging.Warn("Failed to remove menu query", "error", err)
		}
	}

	logging.Debug("Running block command", "id", cmd.ID, "origin", c.origin.String())
	err := cmd.Run(c.surface)
	if err != nil {
		c.restoreQuery(removed)
	}
	closed := c.close(ReasonSelected)
	if err != nil {
		logging.Error("Block command failed", "id", cmd.ID, "error", err)
		return tea.Batch(closed, messages.ErrorCmd("%v", err))
	}
	return closed
}

// Dismiss closes the menu without running anything.
func (c *Controller) Dismiss(reason menu.DismissReason) tea.Cmd {
	if c.state != StateOpen {
		return nil
	}
	return c.close(string(reason))
}

// typedTrigger reports whether msg just typed the trigger character right
// before the caret, at the start of a block or after whitespace.
func (c *Controller) typedTrigger(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Paste || len(msg.Runes) == 0 {
		return false
	}
	if msg.Runes[len(msg.Runes)-1] != c.trigger {
		return false
	}

	caret := c.surface.Document().Caret()
	runes := []rune(caret.Node.Text)
	at := caret.Offset - 1
	if at < 0 || at >= len(runes) || runes[at] != c.trigger {
		return false
	}
	return at == 0 || unicode.IsSpace(runes[at-1])
}

func (c *Controller) openAtTrigger() {
	caret := c.surface.Document().Caret()
	c.origin = OriginTrigger
	c.triggerNode = caret.Node
	c.triggerOffset = caret.Offset - 1
	if rect, ok := c.surface.CaretRect(); ok {
		c.anchor = rect
	}
	c.open()
}

func (c *Controller) open() {
	c.state = StateOpen
	c.setQuery("")
	c.menu.Mount(c.hub, menu.Callbacks{
		Move:    c.Move,
		Select:  c.Select,
		Dismiss: c.Dismiss,
		Input:   c.handleInput,
	})
	c.sync()
	logging.Debug("Block menu opened", "origin", c.origin.String(), "items", len(c.items))
}

func (c *Controller) close(reason string) tea.Cmd {
	c.state = StateClosed
	c.menu.Unmount()
	c.query = ""
	c.items = nil
	c.index = 0
	c.triggerNode = nil
	c.input.Clear()
	logging.Debug("Block menu closed", "reason", reason)
	return func() tea.Msg {
		return types.MenuClosedMsg{Reason: reason}
	}
}

// setQuery refilters and puts the highlight back on the first result.
func (c *Controller) setQuery(query string) {
	c.query = query
	c.items = c.registry.Filter(query, c.mode)
	c.index = 0
}

func (c *Controller) sync() {
	c.menu.Update(c.items, c.index, c.anchor, c.query, c.origin == OriginHover)
}

// handleInput edits the query of a hover menu.
func (c *Controller) handleInput(msg tea.KeyMsg) bool {
	if c.origin != OriginHover {
		return false
	}
	res := c.input.HandleKeyMsg(msg)
	switch res.Action {
	case InputActionChar, InputActionPaste:
		c.input.AddText(res.Text)
	case InputActionBackspace:
		c.input.Backspace()
	default:
		return false
	}
	if q := c.input.Get(); q != c.query {
		c.setQuery(q)
		c.sync()
	}
	return true
}

// removedQuery is trigger text taken out of a block
type removedQuery struct {
	node   *document.Node
	offset int
	text   string
}

// deleteQuery removes the trigger and the query typed after it and
// returns what it removed.
func (c *Controller) deleteQuery() (removedQuery, error) {
	doc := c.surface.Document()
	caret := doc.Caret()
	if caret.Node != c.triggerNode {
		return removedQuery{}, nil
	}
	start := doc.PosOf(c.triggerNode)
	if start < 0 {
		return removedQuery{}, nil
	}
	from := start + 1 + c.triggerOffset
	text, err := doc.TextBetween(from, doc.CaretPos())
	if err != nil {
		return removedQuery{}, err
	}
	if err := c.surface.DeleteRange(from, doc.CaretPos()); err != nil {
		return removedQuery{}, err
	}
	return removedQuery{node: c.triggerNode, offset: c.triggerOffset, text: text}, nil
}

// restoreQuery puts removed text back and leaves the caret after it.
func (c *Controller) restoreQuery(q removedQuery) {
	if q.node == nil || q.text == "" {
		return
	}
	doc := c.surface.Document()
	if err := doc.SetCaretIn(q.node, q.offset); err != nil {
		logging.Warn("Failed to restore menu query", "error", err)
		return
	}
	doc.InsertText(q.text)
}
