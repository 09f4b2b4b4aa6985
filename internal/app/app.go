// Package app is the root bubbletea model. It routes keys and pointer
// events through the floating menu first, then global shortcuts, block
// controls and the editor, and composes the screen.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/lessonpad/internal/commands"
	"github.com/renato0307/lessonpad/internal/components"
	"github.com/renato0307/lessonpad/internal/components/blockcontrols"
	"github.com/renato0307/lessonpad/internal/components/menu"
	"github.com/renato0307/lessonpad/internal/components/slash"
	"github.com/renato0307/lessonpad/internal/config"
	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/editor"
	"github.com/renato0307/lessonpad/internal/keyboard"
	"github.com/renato0307/lessonpad/internal/logging"
	"github.com/renato0307/lessonpad/internal/messages"
	"github.com/renato0307/lessonpad/internal/overlay"
	"github.com/renato0307/lessonpad/internal/types"
	"github.com/renato0307/lessonpad/internal/ui"
)

const appName = "lessonpad"

// Options configures a new Model. Zero fields take defaults.
type Options struct {
	Config   *config.Config
	Document *document.Document
	Registry *commands.Registry
}

type Model struct {
	doc   *document.Document
	theme *ui.Theme
	keys  keyboard.KeyMap
	hub   *types.Hub

	editor    *editor.Model
	menu      *menu.Model
	slash     *slash.Controller
	controls  *blockcontrols.Controls
	header    *components.Header
	statusBar *components.StatusBar
	layout    *components.Layout
	preview   *components.Preview

	previewing bool
	width      int
	height     int

	copyMarkdown func(*document.Document) (string, error)
}

func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	doc := opts.Document
	if doc == nil {
		doc = document.New()
	}
	registry := opts.Registry
	if registry == nil {
		registry = commands.NewRegistry(commands.PlaceholderGenerator{})
	}

	theme := ui.GetTheme(cfg.Theme)
	keys := cfg.KeyMap()
	mode := commands.FilterMode(cfg.FilterMode)
	hub := types.NewHub()

	layout := components.NewLayout(80, 24)

	ed := editor.New(doc, theme, keys, cfg.Placeholder)
	ed.SetBounds(layout.BodyTop(), 80, layout.CalculateBodyHeight())

	m := menu.New(theme, keys, menu.Options{
		Width:      cfg.Menu.Width,
		MaxVisible: cfg.Menu.MaxVisible,
		Mode:       mode,
	})
	m.SetScreenSize(80, 24)

	controls := blockcontrols.New(ed, ed, theme)
	ed.SetGutter(controls.Gutter)

	header := components.NewHeader(appName, theme)
	header.SetWidth(80)

	statusBar := components.NewStatusBar(theme, keys.ShortHelp()...)
	statusBar.SetWidth(80)

	model := Model{
		doc:       doc,
		theme:     theme,
		keys:      keys,
		hub:       hub,
		editor:    ed,
		menu:      m,
		slash:     slash.New(registry, ed, m, hub, slash.Config{Trigger: cfg.TriggerRune(), Mode: mode}),
		controls:  controls,
		header:    header,
		statusBar: statusBar,
		layout:    layout,
		preview:   components.NewPreview(theme),
		width:     80,
		height:    24,

		copyMarkdown: commands.CopyMarkdown,
	}

	model.refreshHeader()
	doc.OnChange(func(*document.Document) {
		header.SetLastEdit(time.Now())
	})
	return model
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(appName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.editor.SetBounds(m.layout.BodyTop(), msg.Width, m.layout.CalculateBodyHeight())
		m.menu.SetScreenSize(msg.Width, msg.Height)
		m.preview.SetSize(msg.Width, msg.Height)
		m.controls.Recompute(m.doc)
		return m, m.slash.Observe()

	case tea.KeyMsg:
		scroll := m.editor.Scroll()
		cmd := m.handleKey(msg)
		m.afterInput(scroll)
		return m, cmd

	case tea.MouseMsg:
		scroll := m.editor.Scroll()
		cmd := m.handleMouse(msg)
		m.afterInput(scroll)
		return m, cmd

	case types.OpenMenuMsg:
		return m, m.slash.OpenAt(msg.Anchor)

	case types.MenuClosedMsg:
		logging.Debug("Menu closed", "reason", msg.Reason)
		return m, nil

	case types.StatusMsg:
		return m, m.statusBar.SetMessage(msg.Message, msg.Type)

	case types.ClearStatusMsg:
		m.statusBar.Clear(msg.MessageID)
		return m, nil
	}

	return m, nil
}

// handleKey offers the key to attached listeners (the open menu), then to
// the global shortcuts and finally to the editor.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.previewing {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Preview), msg.Type == tea.KeyEsc:
			return m.togglePreview()
		}
		m.preview.Update(msg)
		return nil
	}

	ev := &types.KeyEvent{Msg: msg}
	if m.hub.Keys.Publish(ev) {
		return ev.Cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m.copy()
	case key.Matches(msg, m.keys.Preview):
		return m.togglePreview()
	}

	m.editor.HandleKey(msg)
	return m.slash.AfterKey(msg)
}

// handleMouse offers the event to attached listeners, then block controls
// and the editor. A press outside the menu dismisses it and still reaches
// what is underneath.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.previewing {
		m.preview.Update(msg)
		return nil
	}

	ev := &types.PointerEvent{Msg: msg}
	if m.hub.Pointer.Publish(ev) {
		return ev.Cmd
	}

	if cmd, handled := m.controls.HandleMouse(msg); handled {
		return tea.Batch(ev.Cmd, cmd)
	}
	m.editor.HandleMouse(msg)
	return tea.Batch(ev.Cmd, m.slash.Observe())
}

// afterInput refreshes the header and moves the block control hit regions
// along with the editor viewport.
func (m *Model) afterInput(scroll int) {
	m.refreshHeader()
	if m.editor.Scroll() != scroll {
		m.controls.Recompute(m.doc)
	}
}

func (m *Model) togglePreview() tea.Cmd {
	var cmd tea.Cmd
	if m.slash.IsOpen() {
		cmd = m.slash.Dismiss(menu.DismissEscape)
	}
	m.previewing = !m.previewing
	if m.previewing {
		m.preview.SetContent(documentTitle(m.doc), m.doc.Markdown())
	}
	return cmd
}

func (m Model) copy() tea.Cmd {
	msg, err := m.copyMarkdown(m.doc)
	if err != nil {
		logging.Error("Copy failed", "error", err)
		return messages.ErrorCmd("%v", err)
	}
	return messages.SuccessCmd("%s", msg)
}

func (m Model) refreshHeader() {
	m.header.SetTitle(documentTitle(m.doc))
	m.header.SetBlockCount(len(m.doc.Root().Children))
}

func (m Model) View() string {
	if m.previewing {
		return m.preview.View()
	}

	base := m.layout.Render(m.header.View(), m.editor.View(), m.statusBar.View())
	if box, x, y := m.menu.View(); box != "" {
		base = overlay.Place(base, box, x, y)
	}
	return base
}

// documentTitle is the text of the first heading, falling back to the
// first non-empty text block.
func documentTitle(doc *document.Document) string {
	var fallback string
	for _, n := range doc.TextBlocks() {
		if n.Kind == document.KindHeading && n.Text != "" {
			return n.Text
		}
		if fallback == "" && n.Text != "" {
			fallback = n.Text
		}
	}
	if fallback == "" {
		return "Untitled"
	}
	return fallback
}
