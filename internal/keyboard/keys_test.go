package keyboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMap_DefaultBindings(t *testing.T) {
	km := Default().KeyMap('/')

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"menu up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.MenuUp},
		{"menu up ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, km.MenuUp},
		{"menu down ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, km.MenuDown},
		{"select tab", tea.KeyMsg{Type: tea.KeyTab}, km.MenuSelect},
		{"close", tea.KeyMsg{Type: tea.KeyEsc}, km.MenuClose},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlS}, km.Copy},
		{"slash", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, km.Slash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestApply(t *testing.T) {
	keys := Default()

	require.NoError(t, keys.Apply(map[string]string{"copy": "ctrl+y"}))
	assert.Equal(t, "ctrl+y", keys.Copy)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlY}, keys.KeyMap('/').Copy))

	assert.Error(t, keys.Apply(map[string]string{"teleport": "t"}))
	assert.Error(t, keys.Apply(map[string]string{"quit": " "}))
}

func TestHelp(t *testing.T) {
	km := Default().KeyMap('/')

	assert.Len(t, km.ShortHelp(), 4)
	assert.Len(t, km.FullHelp(), 3)
	assert.Equal(t, "up", km.MenuUp.Help().Key)
	assert.Equal(t, "/", km.Slash.Help().Key)
}
