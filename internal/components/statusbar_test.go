package components

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/lessonpad/internal/types"
	"github.com/renato0307/lessonpad/internal/ui"
)

func TestStatusBar_ShowsHelpWithoutMessage(t *testing.T) {
	sb := NewStatusBar(ui.ThemeCharm(),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "copy")),
		key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "preview")),
	)
	sb.SetWidth(80)

	view := ansi.Strip(sb.View())

	assert.Contains(t, view, "ctrl+s copy")
	assert.Contains(t, view, "ctrl+o preview")
	assert.Equal(t, 1, sb.GetHeight())
}

func TestStatusBar_Messages(t *testing.T) {
	tests := []struct {
		name    string
		msgType types.MessageType
		prefix  string
	}{
		{"info", types.MessageTypeInfo, "ℹ "},
		{"success", types.MessageTypeSuccess, "✓ "},
		{"error", types.MessageTypeError, "✗ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewStatusBar(ui.ThemeCharm())
			sb.SetWidth(60)

			cmd := sb.SetMessage("Copied", tt.msgType)

			assert.NotNil(t, cmd)
			assert.Contains(t, ansi.Strip(sb.View()), tt.prefix+"Copied")
			msg, msgType := sb.Message()
			assert.Equal(t, "Copied", msg)
			assert.Equal(t, tt.msgType, msgType)
		})
	}
}

func TestStatusBar_ClearOnlyCurrentMessage(t *testing.T) {
	sb := NewStatusBar(ui.ThemeCharm())
	sb.SetMessage("first", types.MessageTypeInfo)
	sb.SetMessage("second", types.MessageTypeError)

	assert.False(t, sb.Clear(1), "stale timer")
	msg, _ := sb.Message()
	assert.Equal(t, "second", msg)

	assert.True(t, sb.Clear(2))
	msg, _ = sb.Message()
	assert.Empty(t, msg)
}

func TestStatusBar_TruncatesLongMessages(t *testing.T) {
	sb := NewStatusBar(ui.ThemeCharm())
	sb.SetWidth(30)
	sb.SetMessage("a very long message that will never fit on this status bar", types.MessageTypeInfo)

	view := ansi.Strip(sb.View())

	assert.Contains(t, view, "…")
	assert.LessOrEqual(t, ansi.StringWidth(view), 30)
}
