package components

import (
	"fmt"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/lessonpad/internal/ui"
)

var orderedMarker = regexp.MustCompile(`^\d+\. `)

// Preview shows the document as Markdown in a scrollable full-screen view.
type Preview struct {
	title        string
	content      string
	width        int
	height       int
	theme        *ui.Theme
	scrollOffset int
}

// NewPreview creates an empty preview
func NewPreview(theme *ui.Theme) *Preview {
	return &Preview{
		width:  80,
		height: 24,
		theme:  theme,
	}
}

// SetContent replaces the Markdown shown, keeping the scroll position when
// it still fits.
func (p *Preview) SetContent(title, content string) {
	p.title = title
	p.content = strings.TrimRight(content, "\n")
	p.scrollOffset = min(p.scrollOffset, p.maxOffset())
}

// SetSize updates the size of the preview
func (p *Preview) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.scrollOffset = min(p.scrollOffset, p.maxOffset())
}

// ScrollOffset returns the first visible content line.
func (p *Preview) ScrollOffset() int {
	return p.scrollOffset
}

func (p *Preview) lineCount() int {
	return len(strings.Split(p.content, "\n"))
}

func (p *Preview) visibleHeight() int {
	return max(p.height-PreviewReservedLines, 1)
}

func (p *Preview) maxOffset() int {
	return max(p.lineCount()-p.visibleHeight(), 0)
}

// Update handles scrolling keys and the mouse wheel.
func (p *Preview) Update(msg tea.Msg) (*Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			p.scrollOffset = max(p.scrollOffset-1, 0)
		case "down", "j":
			p.scrollOffset = min(p.scrollOffset+1, p.maxOffset())
		case "pgup":
			p.scrollOffset = max(p.scrollOffset-p.visibleHeight(), 0)
		case "pgdown":
			p.scrollOffset = min(p.scrollOffset+p.visibleHeight(), p.maxOffset())
		case "home", "g":
			p.scrollOffset = 0
		case "end", "G":
			p.scrollOffset = p.maxOffset()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.scrollOffset = max(p.scrollOffset-1, 0)
		case tea.MouseButtonWheelDown:
			p.scrollOffset = min(p.scrollOffset+1, p.maxOffset())
		}
	}
	return p, nil
}

// View renders the preview
func (p *Preview) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(p.theme.Primary).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(p.theme.Muted)

	title := titleStyle.Render("Markdown: " + p.title)
	hint := hintStyle.Render("[ctrl+o/esc] Back  [↑↓/jk] Scroll  [PgUp/PgDn] Page  [g/G] Top/Bottom")

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", max(0, p.width-lipgloss.Width(title)-lipgloss.Width(hint))),
		hint,
	)

	separator := lipgloss.NewStyle().
		Foreground(p.theme.Border).
		Render(strings.Repeat("─", p.width))

	lines := p.highlight(p.content)
	visibleHeight := p.visibleHeight()

	var visibleLines []string
	for i := p.scrollOffset; i < len(lines) && i < p.scrollOffset+visibleHeight; i++ {
		visibleLines = append(visibleLines, ansi.Truncate(lines[i], p.width, "…"))
	}
	for len(visibleLines) < visibleHeight {
		visibleLines = append(visibleLines, "")
	}

	scrollInfo := ""
	if len(lines) > visibleHeight {
		scrollInfo = hintStyle.Render(fmt.Sprintf("  %d-%d of %d",
			p.scrollOffset+1, min(p.scrollOffset+visibleHeight, len(lines)), len(lines)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		separator,
		strings.Join(visibleLines, "\n"),
		scrollInfo,
	)
}

// highlight applies simple syntax highlighting to Markdown, one entry per
// source line.
func (p *Preview) highlight(markdown string) []string {
	b := p.theme.Blocks
	lines := strings.Split(markdown, "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " >")
		quote := line[:len(line)-len(trimmed)]
		rendered := ""
		if quote != "" {
			rendered = b.Marker.Render(quote)
		}

		switch {
		case strings.HasPrefix(trimmed, "```"):
			inFence = !inFence
			rendered += b.Divider.Render(trimmed)
		case inFence:
			rendered += b.Code.Render(trimmed)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			rendered += p.theme.HeadingStyle(level).Render(trimmed)
		case trimmed == "---":
			rendered += b.Divider.Render(trimmed)
		case strings.HasPrefix(trimmed, "|"):
			rendered += b.TableCell.Render(trimmed)
		case strings.HasPrefix(trimmed, "- "):
			rendered += b.Marker.Render("- ") + b.Paragraph.Render(trimmed[2:])
		case orderedMarker.MatchString(trimmed):
			marker := orderedMarker.FindString(trimmed)
			rendered += b.Marker.Render(marker) + b.Paragraph.Render(trimmed[len(marker):])
		case quote != "":
			rendered += b.Quote.Render(trimmed)
		case trimmed != "":
			rendered += b.Paragraph.Render(trimmed)
		}
		out = append(out, rendered)
	}
	return out
}
