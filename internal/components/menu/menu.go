// Package menu renders the floating block menu and routes keyboard and
// pointer input to it while it is visible.
//
// The menu holds no selection state of its own: the owner passes the
// filtered commands and highlighted index in through Update, and receives
// navigation intents back through Callbacks.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/lessonpad/internal/commands"
	"github.com/renato0307/lessonpad/internal/keyboard"
	"github.com/renato0307/lessonpad/internal/mouse"
	"github.com/renato0307/lessonpad/internal/types"
	"github.com/renato0307/lessonpad/internal/ui"
)

const (
	DefaultWidth      = 44
	DefaultMaxVisible = 10

	noResults        = "No results"
	inputPlaceholder = "type to filter..."
	otherCategory    = "Other"

	RegionMenu = "menu"
	RegionRow  = "menu-row"
)

// DismissReason tells the owner why the menu asked to close
type DismissReason string

const (
	DismissEscape  DismissReason = "escape"
	DismissOutside DismissReason = "outside"
)

// Callbacks are the intents the menu reports while mounted. Select and
// Dismiss may return a follow-up command for the bubbletea loop.
type Callbacks struct {
	Move    func(delta int)
	Select  func(index int) tea.Cmd
	Dismiss func(reason DismissReason) tea.Cmd
	// Input receives keys the menu does not bind when the menu shows its
	// own query line. It reports whether the key was consumed.
	Input func(msg tea.KeyMsg) bool
}

// Options configures the menu box
type Options struct {
	Width      int // Content width in cells
	MaxVisible int // Body lines shown before scrolling
	Mode       commands.FilterMode
}

// line is one body line; item is -1 for headers and separators
type line struct {
	text string
	item int
}

// Model is the block menu
type Model struct {
	theme      *ui.Theme
	keys       keyboard.KeyMap
	mode       commands.FilterMode
	width      int
	maxVisible int

	screenW, screenH int

	items     []commands.Command
	index     int
	anchor    mouse.Rect
	query     string
	showInput bool

	lines        []line
	scrollOffset int

	box  string
	x, y int
	rect mouse.Rect
	hits *mouse.HitMap

	hub          *types.Hub
	unsubKeys    func()
	unsubPointer func()
	cb           Callbacks
}

// New creates a hidden menu
func New(theme *ui.Theme, keys keyboard.KeyMap, opts Options) *Model {
	if theme == nil {
		theme = ui.ThemeCharm()
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.MaxVisible <= 0 {
		opts.MaxVisible = DefaultMaxVisible
	}
	if opts.Mode == "" {
		opts.Mode = commands.FilterSubstring
	}
	return &Model{
		theme:      theme,
		keys:       keys,
		mode:       opts.Mode,
		width:      opts.Width,
		maxVisible: opts.MaxVisible,
		hits:       mouse.NewHitMap(),
	}
}

// SetScreenSize updates the area the menu is kept inside of
func (m *Model) SetScreenSize(width, height int) {
	m.screenW, m.screenH = width, height
	m.relayout()
}

// Update replaces everything the menu shows. The scroll position resets.
func (m *Model) Update(items []commands.Command, index int, anchor mouse.Rect, query string, showInput bool) {
	m.items = items
	m.index = index
	m.anchor = anchor
	m.query = query
	m.showInput = showInput
	m.scrollOffset = 0
	m.relayout()
}

// SetIndex moves the highlight, scrolling it into view
func (m *Model) SetIndex(index int) {
	m.index = index
	m.relayout()
}

func (m *Model) Items() []commands.Command { return m.items }
func (m *Model) Index() int                { return m.index }
func (m *Model) Anchor() mouse.Rect        { return m.anchor }
func (m *Model) Query() string             { return m.query }

// Rect returns the screen area of the box. It is zero while unmounted.
func (m *Model) Rect() mouse.Rect {
	if !m.Mounted() {
		return mouse.Rect{}
	}
	return m.rect
}

// Mount makes the menu visible and attaches exactly one key listener and
// one pointer listener to hub. Mounting an already mounted menu only
// replaces the callbacks.
func (m *Model) Mount(hub *types.Hub, cb Callbacks) {
	m.cb = cb
	if m.Mounted() {
		return
	}
	m.hub = hub
	m.unsubKeys = hub.Keys.Subscribe(m.handleKey)
	m.unsubPointer = hub.Pointer.Subscribe(m.handlePointer)
}

// Unmount hides the menu and detaches both listeners. It is safe to call
// on a hidden menu.
func (m *Model) Unmount() {
	if m.unsubKeys != nil {
		m.unsubKeys()
		m.unsubKeys = nil
	}
	if m.unsubPointer != nil {
		m.unsubPointer()
		m.unsubPointer = nil
	}
	m.hub = nil
	m.cb = Callbacks{}
}

// Mounted reports whether the menu is visible
func (m *Model) Mounted() bool {
	return m.unsubKeys != nil
}

// View returns the rendered box and its top-left cell. The box is empty
// while unmounted.
func (m *Model) View() (box string, x, y int) {
	if !m.Mounted() {
		return "", 0, 0
	}
	return m.box, m.x, m.y
}

func (m *Model) handleKey(ev *types.KeyEvent) bool {
	switch {
	case key.Matches(ev.Msg, m.keys.MenuUp):
		if m.cb.Move != nil {
			m.cb.Move(-1)
		}
		return true
	case key.Matches(ev.Msg, m.keys.MenuDown):
		if m.cb.Move != nil {
			m.cb.Move(1)
		}
		return true
	case key.Matches(ev.Msg, m.keys.MenuSelect):
		if m.cb.Select != nil {
			ev.Cmd = m.cb.Select(m.index)
		}
		return true
	case key.Matches(ev.Msg, m.keys.MenuClose):
		if m.cb.Dismiss != nil {
			ev.Cmd = m.cb.Dismiss(DismissEscape)
		}
		return true
	}
	if m.showInput && m.cb.Input != nil {
		return m.cb.Input(ev.Msg)
	}
	return false
}

func (m *Model) handlePointer(ev *types.PointerEvent) bool {
	msg := ev.Msg
	inside := m.rect.Contains(msg.X, msg.Y)

	if msg.Action != tea.MouseActionPress {
		return inside
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !inside {
			return false
		}
		if m.cb.Move != nil {
			if msg.Button == tea.MouseButtonWheelUp {
				m.cb.Move(-1)
			} else {
				m.cb.Move(1)
			}
		}
		return true
	}

	if !inside {
		// The press still reaches the editor underneath.
		if m.cb.Dismiss != nil {
			ev.Cmd = m.cb.Dismiss(DismissOutside)
		}
		return false
	}

	if msg.Button == tea.MouseButtonLeft {
		if r := m.hits.Test(msg.X, msg.Y); r != nil && r.ID == RegionRow && m.cb.Select != nil {
			ev.Cmd = m.cb.Select(r.Data.(int))
		}
	}
	return true
}

// Position places a box of size w×h below anchor, flipping above it when
// there is no room underneath, and keeps it inside the screen. Zero screen
// dimensions disable the respective clamp.
func Position(anchor mouse.Rect, w, h, screenW, screenH int) (x, y int) {
	x, y = anchor.X, anchor.Bottom()
	if screenH > 0 && y+h > screenH {
		if above := anchor.Y - h; above >= 0 {
			y = above
		} else {
			y = screenH - h
		}
	}
	if screenW > 0 && x+w > screenW {
		x = screenW - w
	}
	return max(x, 0), max(y, 0)
}

func (m *Model) relayout() {
	m.lines = m.buildLines()
	m.scrollToIndex()

	m.box = m.theme.Menu.Box.Width(m.width + 2).Render(m.renderContent())
	w, h := lipgloss.Width(m.box), lipgloss.Height(m.box)
	m.x, m.y = Position(m.anchor, w, h, m.screenW, m.screenH)
	m.rect = mouse.Rect{X: m.x, Y: m.y, W: w, H: h}

	m.hits.Clear()
	m.hits.Add(RegionMenu, m.rect, nil)
	for row, l := range m.visibleLines() {
		if l.item < 0 {
			continue
		}
		// Border plus padding on the left, border on top.
		m.hits.AddRect(RegionRow, m.x+2, m.y+1+row, m.width, 1, l.item)
	}
}

// buildLines lays out the body: badged commands pinned first without a
// header, then one section per category in first-appearance order.
func (m *Model) buildLines() []line {
	if len(m.items) == 0 {
		return []line{{text: m.theme.Menu.Empty.Render(noResults), item: -1}}
	}

	var lines []line
	for i, cmd := range m.items {
		if cmd.Badge != "" {
			lines = append(lines, line{item: i})
		}
	}

	var order []string
	groups := map[string][]int{}
	for i, cmd := range m.items {
		if cmd.Badge != "" {
			continue
		}
		cat := cmd.Category
		if cat == "" {
			cat = otherCategory
		}
		if _, ok := groups[cat]; !ok {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], i)
	}

	for _, cat := range order {
		if len(lines) > 0 {
			lines = append(lines, line{text: "", item: -1})
		}
		lines = append(lines, line{text: m.theme.Menu.Section.Render(strings.ToUpper(cat)), item: -1})
		for _, i := range groups[cat] {
			lines = append(lines, line{item: i})
		}
	}
	return lines
}

func (m *Model) scrollToIndex() {
	if len(m.lines) <= m.maxVisible {
		m.scrollOffset = 0
		return
	}
	sel := -1
	for i, l := range m.lines {
		if l.item == m.index && l.item >= 0 {
			sel = i
			break
		}
	}
	if sel >= 0 {
		if sel < m.scrollOffset {
			m.scrollOffset = sel
			// Keep the section header above the first row of a section.
			if sel > 0 && m.lines[sel-1].item < 0 && m.lines[sel-1].text != "" {
				m.scrollOffset--
			}
		}
		if sel >= m.scrollOffset+m.maxVisible {
			m.scrollOffset = sel - m.maxVisible + 1
		}
	}
	m.scrollOffset = min(max(m.scrollOffset, 0), len(m.lines)-m.maxVisible)
}

func (m *Model) visibleLines() []line {
	end := min(m.scrollOffset+m.maxVisible, len(m.lines))
	return m.lines[m.scrollOffset:end]
}

func (m *Model) renderContent() string {
	var rows []string
	for _, l := range m.visibleLines() {
		if l.item < 0 {
			rows = append(rows, l.text)
			continue
		}
		rows = append(rows, m.renderRow(l.item))
	}

	rule := m.theme.Menu.Footer.Render(strings.Repeat("─", m.width))
	if m.showInput {
		rows = append(rows, rule, m.renderInput())
	}
	rows = append(rows, rule, m.renderFooter())

	for i := range rows {
		rows[i] = ansi.Truncate(rows[i], m.width, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderInput() string {
	if m.query == "" {
		return m.theme.Menu.Input.Render("/ ") + m.theme.Menu.Empty.Render(inputPlaceholder)
	}
	return m.theme.Menu.Input.Render("/ " + m.query + "█")
}

func (m *Model) renderFooter() string {
	var parts []string
	for _, b := range m.keys.MenuHelp() {
		h := b.Help()
		k := h.Key
		switch k {
		case "up", "down":
			// Rendered once as a pair below.
			continue
		}
		parts = append(parts, k+" "+h.Desc)
	}
	hint := "↑↓ navigate"
	if len(parts) > 0 {
		hint += " · " + strings.Join(parts, " · ")
	}
	return m.theme.Menu.Footer.Render(hint)
}

func (m *Model) renderRow(i int) string {
	cmd := m.items[i]
	selected := i == m.index

	prefix := "  "
	if selected {
		prefix = "▶ "
	}
	icon := padRight(cmd.Icon, 2)

	right := cmd.Shortcut
	if cmd.Badge != "" {
		right = " " + cmd.Badge + " "
	}

	left := prefix + icon + " " + cmd.Label
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)

	desc := ""
	if avail := m.width - leftW - rightW - 1; cmd.Description != "" && avail > 3 {
		desc = ansi.Truncate("  "+cmd.Description, avail, "…")
	}
	gap := max(m.width-leftW-lipgloss.Width(desc)-rightW, 1)

	if selected {
		plain := left + desc + strings.Repeat(" ", gap) + right
		return m.theme.Menu.SelectedRow.Width(m.width).Render(plain)
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(m.theme.Menu.Item.Render(icon))
	b.WriteString(" ")
	b.WriteString(m.highlight(cmd.Label))
	b.WriteString(m.theme.Menu.Description.Render(desc))
	b.WriteString(strings.Repeat(" ", gap))
	if cmd.Badge != "" {
		b.WriteString(m.theme.Menu.Badge.Render(cmd.Badge))
	} else {
		b.WriteString(m.theme.Menu.Shortcut.Render(right))
	}
	return b.String()
}

// highlight renders label with the runes matched by the query emphasised
func (m *Model) highlight(label string) string {
	idx := commands.MatchedRunes(m.query, label, m.mode)
	if len(idx) == 0 {
		return m.theme.Menu.Item.Render(label)
	}
	matched := make(map[int]bool, len(idx))
	for _, i := range idx {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(label) {
		if matched[i] {
			b.WriteString(m.theme.Menu.Match.Render(string(r)))
		} else {
			b.WriteString(m.theme.Menu.Item.Render(string(r)))
		}
	}
	return b.String()
}

func padRight(s string, w int) string {
	if sw := lipgloss.Width(s); sw < w {
		return s + strings.Repeat(" ", w-sw)
	}
	return s
}
