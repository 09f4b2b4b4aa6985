package slash

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lessonpad/internal/commands"
	"github.com/renato0307/lessonpad/internal/components/menu"
	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/keyboard"
	"github.com/renato0307/lessonpad/internal/mouse"
	"github.com/renato0307/lessonpad/internal/testutil"
	"github.com/renato0307/lessonpad/internal/types"
	"github.com/renato0307/lessonpad/internal/ui"
)

// harness stands in for the app: keys go to the hub first, then to a
// minimal editor, then to the controller.
type harness struct {
	doc     *document.Document
	surface *testutil.DocSurface
	hub     *types.Hub
	menu    *menu.Model
	ctl     *Controller
}

func newHarness(t *testing.T, registry *commands.Registry, blocks ...*document.Node) *harness {
	t.Helper()
	doc := document.New(blocks...)
	last := doc.TextBlocks()[len(doc.TextBlocks())-1]
	require.NoError(t, doc.SetCaretIn(last, len([]rune(last.Text))))

	if registry == nil {
		registry = commands.NewRegistry(nil)
	}
	surface := testutil.NewDocSurface(doc, mouse.Rect{X: 4, Y: 2, W: 1, H: 1})
	hub := types.NewHub()
	m := menu.New(ui.ThemeCharm(), keyboard.Default().KeyMap('/'), menu.Options{})
	return &harness{
		doc:     doc,
		surface: surface,
		hub:     hub,
		menu:    m,
		ctl:     New(registry, surface, m, hub, Config{}),
	}
}

func (h *harness) press(msg tea.KeyMsg) tea.Cmd {
	ev := &types.KeyEvent{Msg: msg}
	if h.hub.Keys.Publish(ev) {
		return ev.Cmd
	}
	switch msg.Type {
	case tea.KeyRunes:
		h.doc.InsertText(string(msg.Runes))
	case tea.KeySpace:
		h.doc.InsertText(" ")
	case tea.KeyBackspace:
		h.doc.DeleteBackward()
	case tea.KeyLeft:
		h.doc.MoveLeft()
	case tea.KeyRight:
		h.doc.MoveRight()
	}
	return h.ctl.AfterKey(msg)
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		if r == ' ' {
			h.press(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) caretText() string {
	return h.doc.Caret().Node.Text
}

func ids(cmds []commands.Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.ID
	}
	return out
}

func closedReason(t *testing.T, cmd tea.Cmd) string {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(types.MenuClosedMsg)
	require.True(t, ok, "expected MenuClosedMsg")
	return msg.Reason
}

func TestOpen_TriggerAtBlockStart(t *testing.T) {
	h := newHarness(t, nil)

	h.typeText("/")

	assert.True(t, h.ctl.IsOpen())
	assert.Equal(t, OriginTrigger, h.ctl.Origin())
	assert.Equal(t, 0, h.ctl.Index())
	assert.Len(t, h.ctl.Items(), 12)
	assert.Equal(t, mouse.Rect{X: 4, Y: 2, W: 1, H: 1}, h.ctl.Anchor())
	assert.True(t, h.menu.Mounted())
	assert.Equal(t, 2, h.hub.Listeners())
}

func TestOpen_OnlyAtWordBoundary(t *testing.T) {
	h := newHarness(t, nil)

	h.typeText("a/b")
	assert.False(t, h.ctl.IsOpen())

	h.typeText(" /")
	assert.True(t, h.ctl.IsOpen())
	assert.Equal(t, "a/b /", h.caretText())
}

func TestOpen_PasteDoesNotOpen(t *testing.T) {
	h := newHarness(t, nil)

	h.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/"), Paste: true})

	assert.False(t, h.ctl.IsOpen())
}

func TestQuery_FiltersAndResetsIndex(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/")
	h.ctl.Move(1)
	h.ctl.Move(1)
	require.Equal(t, 2, h.ctl.Index())

	h.typeText("head")

	assert.Equal(t, "head", h.ctl.Query())
	assert.Equal(t, 0, h.ctl.Index())
	assert.Equal(t, []string{"heading-1", "heading-2", "heading-3"}, ids(h.ctl.Items()))
	assert.Equal(t, 0, h.menu.Index())
}

func TestQuery_ResetsIndexWithSameResultCount(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/head")
	h.ctl.Move(1)
	require.Equal(t, 1, h.ctl.Index())
	require.Len(t, h.ctl.Items(), 3)

	h.typeText("i")

	assert.Equal(t, "headi", h.ctl.Query())
	assert.Len(t, h.ctl.Items(), 3)
	assert.Equal(t, 0, h.ctl.Index())
	assert.Equal(t, 0, h.menu.Index())
}

func TestQuery_ReopenStartsAtFirstResult(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/")
	h.ctl.Move(1)
	h.press(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, h.ctl.IsOpen())

	h.typeText(" /")

	assert.True(t, h.ctl.IsOpen())
	assert.Equal(t, 0, h.ctl.Index())
	assert.Empty(t, h.ctl.Query())
}

func TestMove_Wraps(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/head")
	require.Len(t, h.ctl.Items(), 3)

	h.press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, h.ctl.Index())
	h.press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, h.ctl.Index())
	h.press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, h.ctl.Index())
	h.press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, h.ctl.Index())
	assert.Equal(t, 2, h.menu.Index())

	// Arrow keys drive the menu, not the caret.
	assert.Equal(t, "/head", h.caretText())
	assert.Equal(t, 5, h.doc.Caret().Offset)
}

func TestEmptyResults(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/zzz")
	require.True(t, h.ctl.IsOpen())
	require.Empty(t, h.ctl.Items())

	h.press(tea.KeyMsg{Type: tea.KeyDown})
	h.press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, h.ctl.Index())

	cmd := h.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, h.ctl.IsOpen())
	assert.Equal(t, "/zzz", h.caretText())
	assert.Empty(t, h.surface.Calls)
}

func TestEscape_ClosesWithoutAction(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/head")

	cmd := h.press(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, "escape", closedReason(t, cmd))
	assert.False(t, h.ctl.IsOpen())
	assert.False(t, h.menu.Mounted())
	assert.Equal(t, "/head", h.caretText())
	assert.Empty(t, h.surface.Calls)
	assert.Equal(t, 0, h.hub.Listeners())
}

func TestSpace_ClosesAndKeepsText(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/head")

	h.typeText(" ")

	assert.False(t, h.ctl.IsOpen())
	assert.Equal(t, "/head ", h.caretText())
	assert.Empty(t, h.surface.Calls)
	assert.Equal(t, 0, h.hub.Listeners())
}

func TestCaretBeforeTrigger_Closes(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/h")

	h.press(tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, h.ctl.IsOpen())
	assert.Empty(t, h.ctl.Query())

	cmd := h.press(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, ReasonCaretMoved, closedReason(t, cmd))
	assert.False(t, h.ctl.IsOpen())
}

func TestBackspaceOverTrigger_Closes(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/")

	h.press(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.False(t, h.ctl.IsOpen())
	assert.Empty(t, h.caretText())
}

func TestAnchor_KeptWhileCaretOffScreen(t *testing.T) {
	h := newHarness(t, nil)
	h.surface.Rect = mouse.Rect{X: 5, Y: 3, W: 1, H: 1}
	h.typeText("/")
	require.Equal(t, mouse.Rect{X: 5, Y: 3, W: 1, H: 1}, h.ctl.Anchor())

	h.surface.Visible = false
	h.surface.Rect = mouse.Rect{X: 9, Y: 9, W: 1, H: 1}
	h.typeText("h")

	assert.True(t, h.ctl.IsOpen())
	assert.Equal(t, "h", h.ctl.Query())
	assert.Equal(t, mouse.Rect{X: 5, Y: 3, W: 1, H: 1}, h.ctl.Anchor())

	h.surface.Visible = true
	h.surface.Rect = mouse.Rect{X: 6, Y: 3, W: 1, H: 1}
	h.typeText("e")
	assert.Equal(t, mouse.Rect{X: 6, Y: 3, W: 1, H: 1}, h.ctl.Anchor())
	assert.Equal(t, h.ctl.Anchor(), h.menu.Anchor())
}

func TestSelect_RemovesQueryAndRunsOnce(t *testing.T) {
	h := newHarness(t, nil, document.NewParagraph("Intro "))
	h.typeText("/head")
	h.press(tea.KeyMsg{Type: tea.KeyDown})

	cmd := h.press(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ReasonSelected, closedReason(t, cmd))
	assert.False(t, h.ctl.IsOpen())
	assert.Equal(t, 0, h.hub.Listeners())
	assert.Equal(t, []string{"DeleteRange", "ToggleBlock"}, h.surface.Calls)

	block := h.doc.Root().Children[0]
	assert.Equal(t, document.KindHeading, block.Kind)
	assert.Equal(t, 2, block.Attrs.Level)
	assert.Equal(t, "Intro ", block.Text)
}

func TestSelect_ActionErrorReported(t *testing.T) {
	registry := commands.NewRegistryWith(commands.Command{
		ID:    "boom",
		Label: "Boom",
		Action: func(types.Surface) error {
			return errors.New("nope")
		},
	})
	h := newHarness(t, registry, document.NewParagraph("note "))
	h.typeText("/bo")

	cmd := h.ctl.Select(0)

	assert.Equal(t, "note /bo", h.caretText(), "typed text is put back")
	assert.Equal(t, len([]rune("note /bo")), h.doc.Caret().Offset)

	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)

	var status *types.StatusMsg
	for _, c := range batch {
		if msg, ok := c().(types.StatusMsg); ok {
			status = &msg
		}
	}
	require.NotNil(t, status)
	assert.Equal(t, types.MessageTypeError, status.Type)
	assert.Equal(t, "Boom: nope", status.Message)
	assert.False(t, h.ctl.IsOpen())
}

func TestIdleMenuStaysOpen(t *testing.T) {
	h := newHarness(t, nil)
	h.typeText("/")
	h.ctl.Move(1)

	for range 5 {
		assert.Nil(t, h.ctl.Observe())
	}

	assert.True(t, h.ctl.IsOpen())
	assert.Equal(t, 1, h.ctl.Index())
}

func TestListenerCounts_AcrossCycles(t *testing.T) {
	h := newHarness(t, nil)
	docListeners := h.doc.Listeners()

	for range 50 {
		h.typeText(" /")
		require.Equal(t, 2, h.hub.Listeners())
		h.press(tea.KeyMsg{Type: tea.KeyEsc})
		require.Equal(t, 0, h.hub.Listeners())

		h.ctl.OpenAt(mouse.Rect{X: 1, Y: 1, W: 2, H: 1})
		h.ctl.OpenAt(mouse.Rect{X: 1, Y: 1, W: 2, H: 1})
		require.Equal(t, 2, h.hub.Listeners())
		h.ctl.Dismiss(menu.DismissOutside)
		require.Equal(t, 0, h.hub.Listeners())
	}
	assert.Equal(t, docListeners, h.doc.Listeners())
}

func TestHover_OwnInput(t *testing.T) {
	h := newHarness(t, nil, document.NewParagraph(""))
	anchor := mouse.Rect{X: 8, Y: 4, W: 2, H: 1}

	h.ctl.OpenAt(anchor)
	require.True(t, h.ctl.IsOpen())
	assert.Equal(t, OriginHover, h.ctl.Origin())
	assert.Equal(t, anchor, h.ctl.Anchor())

	h.typeText("head")
	assert.Equal(t, "head", h.ctl.Query())
	assert.Empty(t, h.caretText(), "typing goes to the menu input")

	h.typeText(" ")
	assert.True(t, h.ctl.IsOpen(), "spaces are part of a hover query")
	assert.Equal(t, "head ", h.ctl.Query())

	h.press(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "head", h.ctl.Query())

	cmd := h.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ReasonSelected, closedReason(t, cmd))
	assert.Equal(t, []string{"ToggleBlock"}, h.surface.Calls)
	assert.Equal(t, document.KindHeading, h.doc.Root().Children[0].Kind)
}

func TestHover_OutsidePressDismisses(t *testing.T) {
	h := newHarness(t, nil)
	h.ctl.OpenAt(mouse.Rect{X: 0, Y: 0, W: 2, H: 1})

	ev := &types.PointerEvent{Msg: tea.MouseMsg{X: 200, Y: 200, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}}
	handled := h.hub.Pointer.Publish(ev)

	assert.False(t, handled)
	assert.False(t, h.ctl.IsOpen())
	assert.Equal(t, "outside", closedReason(t, ev.Cmd))
	assert.Empty(t, h.surface.Calls)
}

func TestInput_HandleKeyMsg(t *testing.T) {
	in := NewInput()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyMsgResult
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, KeyMsgResult{InputActionChar, "é"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyMsgResult{InputActionChar, " "}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, KeyMsgResult{InputActionPaste, "ab"}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, KeyMsgResult{Action: InputActionBackspace}},
		{"other", tea.KeyMsg{Type: tea.KeyLeft}, KeyMsgResult{Action: InputActionNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, in.HandleKeyMsg(tt.msg))
		})
	}

	in.AddText("hé")
	assert.False(t, in.Backspace())
	assert.Equal(t, "h", in.Get())
	assert.True(t, in.Backspace())
	assert.True(t, in.Backspace())
	assert.True(t, in.IsEmpty())
}
