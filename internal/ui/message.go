package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/lessonpad/internal/types"
)

// RenderMessage renders a status message with a prefix and color for its
// type. Long messages are truncated to fit width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	var messageColor lipgloss.AdaptiveColor
	var prefix string

	switch msgType {
	case types.MessageTypeSuccess:
		messageColor = theme.Success
		prefix = "✓ "
	case types.MessageTypeError:
		messageColor = theme.Error
		prefix = "✗ "
	default:
		messageColor = theme.Primary
		prefix = "ℹ "
	}

	// Keep a minimum so very narrow terminals still show something useful
	maxWidth := max(width, 20)
	text = ansi.Truncate(prefix+text, maxWidth, "…")

	return lipgloss.NewStyle().Foreground(messageColor).Bold(true).Render(text)
}
