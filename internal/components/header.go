package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/lessonpad/internal/ui"
)

// Header is the top line: document title and block count on the left, the
// time of the last edit on the right.
type Header struct {
	appName    string
	title      string
	blockCount int
	lastEdit   time.Time
	width      int
	theme      *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

func (h *Header) SetTitle(title string) {
	h.title = title
}

func (h *Header) SetBlockCount(count int) {
	h.blockCount = count
}

func (h *Header) SetLastEdit(t time.Time) {
	h.lastEdit = t
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	timingStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	// "lessonpad • Getting started • 12 blocks"
	leftParts := []string{h.appName}
	if h.title != "" {
		leftParts = append(leftParts, h.title)
	}
	switch {
	case h.blockCount == 1:
		leftParts = append(leftParts, "1 block")
	case h.blockCount > 1:
		leftParts = append(leftParts, fmt.Sprintf("%d blocks", h.blockCount))
	}
	left := h.theme.Header.Render(strings.Join(leftParts, " • "))

	var right string
	if !h.lastEdit.IsZero() {
		right = timingStyle.Render("edited " + since(h.lastEdit))
	}

	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}

func since(t time.Time) string {
	elapsed := time.Since(t)
	switch {
	case elapsed < time.Minute:
		return fmt.Sprintf("%ds ago", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	}
}
