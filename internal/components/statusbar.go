package components

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/lessonpad/internal/types"
	"github.com/renato0307/lessonpad/internal/ui"
)

// StatusBar displays status messages (success, errors, info). With no
// message it shows the short help for its key bindings.
type StatusBar struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
	help        help.Model
	bindings    []key.Binding
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme, bindings ...key.Binding) *StatusBar {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Primary)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Dimmed)
	return &StatusBar{
		theme:    theme,
		help:     h,
		bindings: bindings,
	}
}

// SetMessage shows msg and returns the command that clears it after
// StatusBarDisplayDuration. A newer message is never cleared by an older
// timer.
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) tea.Cmd {
	sb.messageID++
	sb.message = msg
	sb.messageType = msgType

	id := sb.messageID
	return tea.Tick(StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// Clear removes the message if it is still the one identified by id.
func (sb *StatusBar) Clear(id int) bool {
	if id != sb.messageID {
		return false
	}
	sb.ClearMessage()
	return true
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the message on display.
func (sb *StatusBar) Message() (string, types.MessageType) {
	return sb.message, sb.messageType
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
	sb.help.Width = max(width-2, 0)
}

// GetHeight returns the height (always 1 line to reserve space)
func (sb *StatusBar) GetHeight() int {
	return 1
}

// View renders the status bar
func (sb *StatusBar) View() string {
	baseStyle := lipgloss.NewStyle().
		Width(sb.width).
		MaxHeight(1).
		Padding(0, 1)

	if sb.message == "" {
		return baseStyle.Render(sb.help.ShortHelpView(sb.bindings))
	}
	return baseStyle.Render(ui.RenderMessage(sb.message, sb.messageType, sb.theme, sb.width-2))
}
