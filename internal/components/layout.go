package components

import (
	"github.com/charmbracelet/lipgloss"
)

type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the body content
func (l *Layout) CalculateBodyHeight() int {
	return max(l.height-ChromeLines, MinBodyHeight)
}

// BodyTop is the screen row of the first body line.
func (l *Layout) BodyTop() int {
	return 1
}

// Render stacks header, body and status bar. The body is padded to its
// height so the status bar stays on the last line.
func (l *Layout) Render(header, body, status string) string {
	body = lipgloss.NewStyle().
		Height(l.CalculateBodyHeight()).
		MaxHeight(l.CalculateBodyHeight()).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}
