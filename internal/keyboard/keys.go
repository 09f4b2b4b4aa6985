package keyboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Keys holds all keyboard shortcut configurations for lessonpad. A field
// may list several keys separated by commas.
type Keys struct {
	// Block menu
	MenuUp     string `json:"menuUp"`     // Move highlight up
	MenuDown   string `json:"menuDown"`   // Move highlight down
	MenuSelect string `json:"menuSelect"` // Run highlighted command
	MenuClose  string `json:"menuClose"`  // Dismiss the menu

	// Editing
	Up        string `json:"up"`
	Down      string `json:"down"`
	Left      string `json:"left"`
	Right     string `json:"right"`
	Home      string `json:"home"`
	End       string `json:"end"`
	Newline   string `json:"newline"`
	Backspace string `json:"backspace"`

	// Global
	Copy    string `json:"copy"`    // Copy document as Markdown
	Preview string `json:"preview"` // Toggle Markdown preview
	Quit    string `json:"quit"`
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		MenuUp:     "up,ctrl+p",
		MenuDown:   "down,ctrl+n",
		MenuSelect: "enter,tab",
		MenuClose:  "esc",

		Up:        "up",
		Down:      "down",
		Left:      "left",
		Right:     "right",
		Home:      "home,ctrl+a",
		End:       "end,ctrl+e",
		Newline:   "enter",
		Backspace: "backspace",

		Copy:    "ctrl+s",
		Preview: "ctrl+o",
		Quit:    "ctrl+c",
	}
}

// Apply overrides fields by their config name (e.g. "copy": "ctrl+y")
func (k *Keys) Apply(overrides map[string]string) error {
	fields := k.fields()
	for name, value := range overrides {
		field, ok := fields[name]
		if !ok {
			return fmt.Errorf("unknown key binding %q", name)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("key binding %q is empty", name)
		}
		*field = value
	}
	return nil
}

func (k *Keys) fields() map[string]*string {
	return map[string]*string{
		"menuUp":     &k.MenuUp,
		"menuDown":   &k.MenuDown,
		"menuSelect": &k.MenuSelect,
		"menuClose":  &k.MenuClose,
		"up":         &k.Up,
		"down":       &k.Down,
		"left":       &k.Left,
		"right":      &k.Right,
		"home":       &k.Home,
		"end":        &k.End,
		"newline":    &k.Newline,
		"backspace":  &k.Backspace,
		"copy":       &k.Copy,
		"preview":    &k.Preview,
		"quit":       &k.Quit,
	}
}

// KeyMap is the bubbles/key form of Keys
type KeyMap struct {
	MenuUp     key.Binding
	MenuDown   key.Binding
	MenuSelect key.Binding
	MenuClose  key.Binding

	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Newline   key.Binding
	Backspace key.Binding

	Copy    key.Binding
	Preview key.Binding
	Quit    key.Binding
	Slash   key.Binding
}

func binding(keys, desc string) key.Binding {
	parts := strings.Split(keys, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return key.NewBinding(
		key.WithKeys(parts...),
		key.WithHelp(parts[0], desc),
	)
}

// KeyMap builds bindings from the configured keys. trigger is the rune that
// opens the block menu, shown in help.
func (k *Keys) KeyMap(trigger rune) KeyMap {
	return KeyMap{
		MenuUp:     binding(k.MenuUp, "previous"),
		MenuDown:   binding(k.MenuDown, "next"),
		MenuSelect: binding(k.MenuSelect, "select"),
		MenuClose:  binding(k.MenuClose, "close"),

		Up:        binding(k.Up, "up"),
		Down:      binding(k.Down, "down"),
		Left:      binding(k.Left, "left"),
		Right:     binding(k.Right, "right"),
		Home:      binding(k.Home, "line start"),
		End:       binding(k.End, "line end"),
		Newline:   binding(k.Newline, "new block"),
		Backspace: binding(k.Backspace, "delete"),

		Copy:    binding(k.Copy, "copy markdown"),
		Preview: binding(k.Preview, "preview"),
		Quit:    binding(k.Quit, "quit"),
		Slash: key.NewBinding(
			key.WithKeys(string(trigger)),
			key.WithHelp(string(trigger), "blocks"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Slash, m.Copy, m.Preview, m.Quit}
}

// FullHelp implements help.KeyMap
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Slash, m.MenuUp, m.MenuDown, m.MenuSelect, m.MenuClose},
		{m.Up, m.Down, m.Left, m.Right, m.Home, m.End, m.Newline, m.Backspace},
		{m.Copy, m.Preview, m.Quit},
	}
}

// MenuHelp returns the bindings shown in the block menu footer
func (m KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{m.MenuUp, m.MenuDown, m.MenuSelect, m.MenuClose}
}
