// Package editor is the host editing surface: it lays the document out as
// screen lines, draws the caret, applies typing and exposes the structural
// edits block commands use.
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/keyboard"
	"github.com/renato0307/lessonpad/internal/logging"
	"github.com/renato0307/lessonpad/internal/mouse"
	"github.com/renato0307/lessonpad/internal/ui"
)

// GutterWidth is the number of cells left of every line for block controls
const GutterWidth = 4

// DefaultPlaceholder is shown in an empty paragraph holding the caret
const DefaultPlaceholder = "Type '/' for commands"

// GutterFunc renders the gutter for screen row y
type GutterFunc func(y, width int) string

// Model is the editing surface over one document.
type Model struct {
	doc         *document.Document
	theme       *ui.Theme
	keys        keyboard.KeyMap
	placeholder string
	gutter      GutterFunc

	top    int // screen row of the first editor line
	width  int
	height int
	scroll int // first visible layout line

	layout *layout
}

// New creates an editor over doc.
func New(doc *document.Document, theme *ui.Theme, keys keyboard.KeyMap, placeholder string) *Model {
	if theme == nil {
		theme = ui.ThemeCharm()
	}
	m := &Model{
		doc:         doc,
		theme:       theme,
		keys:        keys,
		placeholder: placeholder,
		width:       80,
		height:      20,
	}
	m.relayout()
	return m
}

// SetBounds places the editor on screen.
func (m *Model) SetBounds(top, width, height int) {
	m.top = top
	m.width = max(width, GutterWidth+1)
	m.height = max(height, 1)
	m.reveal()
}

// SetGutter installs the renderer for the gutter column.
func (m *Model) SetGutter(fn GutterFunc) {
	m.gutter = fn
}

// Scroll returns the first visible layout line.
func (m *Model) Scroll() int {
	return m.scroll
}

// ScrollBy moves the viewport without moving the caret.
func (m *Model) ScrollBy(delta int) {
	m.relayout()
	m.scroll = min(max(m.scroll+delta, 0), max(len(m.layout.lines)-m.height, 0))
}

// LineCount returns the number of laid out lines.
func (m *Model) LineCount() int {
	m.relayout()
	return len(m.layout.lines)
}

func (m *Model) relayout() {
	m.layout = buildLayout(m.doc)
}

// reveal scrolls the caret line into view.
func (m *Model) reveal() {
	m.relayout()
	i, _, ok := m.layout.find(m.doc.Caret().Node)
	if !ok {
		return
	}
	if i < m.scroll {
		m.scroll = i
	}
	if i >= m.scroll+m.height {
		m.scroll = i - m.height + 1
	}
	m.scroll = min(m.scroll, max(len(m.layout.lines)-1, 0))
}

func (m *Model) visible(i int) bool {
	return i >= m.scroll && i < m.scroll+m.height
}

func (m *Model) screenY(i int) int {
	return m.top + i - m.scroll
}

// CaretRect returns the caret's screen cell. ok is false when the caret
// line is scrolled out of view.
func (m *Model) CaretRect() (mouse.Rect, bool) {
	m.relayout()
	caret := m.doc.Caret()
	i, col, ok := m.layout.find(caret.Node)
	if !ok || !m.visible(i) {
		return mouse.Rect{}, false
	}
	ln := m.layout.lines[i]
	x := GutterWidth + runewidth.StringWidth(ln.prefix) + col + textWidth(caret.Node.Text, caret.Offset)
	return mouse.Rect{X: x, Y: m.screenY(i), W: 1, H: 1}, true
}

// GutterRect returns the gutter cells beside the block at pos.
func (m *Model) GutterRect(pos int) (mouse.Rect, bool) {
	node, err := m.doc.NodeAt(pos)
	if err != nil {
		return mouse.Rect{}, false
	}
	m.relayout()
	sp, ok := m.layout.spans[node]
	if !ok || sp.count == 0 {
		return mouse.Rect{}, false
	}
	first := max(sp.first, m.scroll)
	last := min(sp.first+sp.count, m.scroll+m.height)
	if first >= last {
		return mouse.Rect{}, false
	}
	return mouse.Rect{X: 0, Y: m.screenY(first), W: GutterWidth, H: last - first}, true
}

// HandleKey applies an editing key. It reports whether the key was used.
func (m *Model) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.doc.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.doc.MoveDown()
	case key.Matches(msg, m.keys.Left):
		m.doc.MoveLeft()
	case key.Matches(msg, m.keys.Right):
		m.doc.MoveRight()
	case key.Matches(msg, m.keys.Home):
		m.doc.MoveHome()
	case key.Matches(msg, m.keys.End):
		m.doc.MoveEnd()
	case key.Matches(msg, m.keys.Newline):
		m.doc.SplitBlock()
	case key.Matches(msg, m.keys.Backspace):
		m.doc.DeleteBackward()
	case msg.Type == tea.KeyRunes:
		m.doc.InsertText(string(msg.Runes))
	case msg.Type == tea.KeySpace:
		m.doc.InsertText(" ")
	default:
		return false
	}
	m.reveal()
	return true
}

// HandleMouse places the caret on a click and scrolls on the wheel. It
// reports whether the caret moved.
func (m *Model) HandleMouse(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.ScrollBy(-1)
		return false
	case tea.MouseButtonWheelDown:
		m.ScrollBy(1)
		return false
	case tea.MouseButtonLeft:
	default:
		return false
	}

	m.relayout()
	i := msg.Y - m.top + m.scroll
	if !m.visible(i) || i >= len(m.layout.lines) || msg.X < GutterWidth {
		return false
	}
	ln := m.layout.lines[i]
	col := msg.X - GutterWidth - runewidth.StringWidth(ln.prefix)

	node, rel := ln.node, col
	if node == nil {
		for _, c := range ln.cells {
			if col >= c.col && c.node != nil && !ln.separator {
				node, rel = c.node, col-c.col
			}
		}
	}
	if node == nil {
		return false
	}
	if err := m.doc.SetCaretIn(node, offsetAt(node.Text, rel)); err != nil {
		logging.Debug("Click outside text", "x", msg.X, "y", msg.Y, "error", err)
		return false
	}
	return true
}

// View renders the visible lines.
func (m *Model) View() string {
	m.relayout()
	caret := m.doc.Caret()
	bodyW := m.width - GutterWidth

	rows := make([]string, 0, m.height)
	for i := m.scroll; i < m.scroll+m.height; i++ {
		y := m.screenY(i)
		gutter := strings.Repeat(" ", GutterWidth)
		if m.gutter != nil {
			gutter = m.gutter(y, GutterWidth)
		}
		if i >= len(m.layout.lines) {
			rows = append(rows, "")
			continue
		}
		body := m.renderLine(m.layout.lines[i], caret, bodyW)
		rows = append(rows, gutter+ansi.Truncate(body, bodyW, "…"))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderLine(ln line, caret document.Caret, width int) string {
	b := m.theme.Blocks
	prefix := ""
	if ln.prefix != "" {
		prefix = b.Marker.Render(ln.prefix)
	}
	avail := max(width-runewidth.StringWidth(ln.prefix), 1)

	switch {
	case ln.separator:
		parts := make([]string, len(ln.cells))
		for i, c := range ln.cells {
			parts[i] = strings.Repeat("─", c.width)
		}
		return prefix + b.Divider.Render(strings.Join(parts, "─┼─"))

	case ln.cells != nil:
		style := b.TableCell
		if ln.header {
			style = b.TableHead
		}
		parts := make([]string, len(ln.cells))
		for i, c := range ln.cells {
			text := ""
			if c.node != nil {
				text = c.node.Text
			}
			cell := m.renderText(text, c.node != nil && c.node == caret.Node, caret.Offset, style)
			if pad := c.width - lipgloss.Width(cell); pad > 0 {
				cell += strings.Repeat(" ", pad)
			}
			parts[i] = cell
		}
		return prefix + strings.Join(parts, b.Divider.Render(cellSep))

	case ln.kind == document.KindHorizontalRule:
		return prefix + b.Divider.Render(strings.Repeat("─", avail))
	}

	if ln.node == nil {
		return prefix
	}
	style := m.textStyle(ln)
	hasCaret := ln.node == caret.Node
	if ln.node.Text == "" && hasCaret && ln.kind == document.KindParagraph && m.placeholder != "" {
		return prefix + b.Caret.Render(" ") + m.theme.Menu.Empty.Render(m.placeholder)
	}
	return prefix + m.renderText(ln.node.Text, hasCaret, caret.Offset, style)
}

func (m *Model) textStyle(ln line) lipgloss.Style {
	b := m.theme.Blocks
	switch ln.kind {
	case document.KindHeading:
		return m.theme.HeadingStyle(ln.level)
	case document.KindCodeBlock:
		return b.Code
	}
	if ln.quoted {
		return b.Quote
	}
	return b.Paragraph
}

// renderText styles text, drawing the caret at offset when hasCaret.
func (m *Model) renderText(text string, hasCaret bool, offset int, style lipgloss.Style) string {
	if !hasCaret {
		if text == "" {
			return ""
		}
		return style.Render(text)
	}
	runes := []rune(text)
	offset = min(max(offset, 0), len(runes))
	under := " "
	after := ""
	if offset < len(runes) {
		under = string(runes[offset])
		after = string(runes[offset+1:])
	}

	var sb strings.Builder
	if offset > 0 {
		sb.WriteString(style.Render(string(runes[:offset])))
	}
	sb.WriteString(m.theme.Blocks.Caret.Render(under))
	if after != "" {
		sb.WriteString(style.Render(after))
	}
	return sb.String()
}
