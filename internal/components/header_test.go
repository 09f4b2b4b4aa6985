package components

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/lessonpad/internal/ui"
)

func TestHeader_View(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		blocks int
		want   string
	}{
		{"app name only", "", 0, "lessonpad"},
		{"one block", "Intro", 1, "lessonpad • Intro • 1 block"},
		{"many blocks", "Intro", 12, "lessonpad • Intro • 12 blocks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeader("lessonpad", ui.ThemeCharm())
			h.SetWidth(60)
			h.SetTitle(tt.title)
			h.SetBlockCount(tt.blocks)

			view := h.View()

			assert.Contains(t, ansi.Strip(view), tt.want)
			assert.Equal(t, 60, lipgloss.Width(view))
		})
	}
}

func TestHeader_LastEdit(t *testing.T) {
	h := NewHeader("lessonpad", ui.ThemeCharm())
	h.SetWidth(60)
	h.SetLastEdit(time.Now().Add(-5 * time.Second))

	assert.Contains(t, ansi.Strip(h.View()), "edited 5s ago")
}

func TestSince(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "3m ago", since(now.Add(-3*time.Minute-time.Second)))
	assert.Equal(t, "2h ago", since(now.Add(-2*time.Hour-time.Second)))
}
