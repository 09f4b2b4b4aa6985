package slash

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Input is the query buffer used when the menu was opened from a block's
// "+" button rather than by typing the trigger into the document.
type Input struct {
	buffer []rune
}

// NewInput creates an empty input buffer.
func NewInput() *Input {
	return &Input{}
}

// Get returns the current input buffer.
func (i *Input) Get() string {
	return string(i.buffer)
}

// Set replaces the buffer.
func (i *Input) Set(text string) {
	i.buffer = []rune(text)
}

// Clear clears the input buffer.
func (i *Input) Clear() {
	i.buffer = i.buffer[:0]
}

// IsEmpty returns true if input buffer is empty.
func (i *Input) IsEmpty() bool {
	return len(i.buffer) == 0
}

// AddText appends typed or pasted text.
func (i *Input) AddText(text string) {
	i.buffer = append(i.buffer, []rune(text)...)
}

// Backspace removes the last rune from the buffer.
// Returns true if buffer is now empty.
func (i *Input) Backspace() bool {
	if len(i.buffer) > 0 {
		i.buffer = i.buffer[:len(i.buffer)-1]
	}
	return len(i.buffer) == 0
}

// InputAction is what a key does to the buffer.
type InputAction int

const (
	InputActionNone InputAction = iota
	InputActionChar
	InputActionBackspace
	InputActionPaste
)

// KeyMsgResult represents the result of handling a key message.
type KeyMsgResult struct {
	Action InputAction
	Text   string
}

// HandleKeyMsg classifies a keyboard message without applying it.
func (i *Input) HandleKeyMsg(msg tea.KeyMsg) KeyMsgResult {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			return KeyMsgResult{Action: InputActionPaste, Text: string(msg.Runes)}
		}
		return KeyMsgResult{Action: InputActionChar, Text: string(msg.Runes)}
	case tea.KeySpace:
		return KeyMsgResult{Action: InputActionChar, Text: " "}
	case tea.KeyBackspace:
		return KeyMsgResult{Action: InputActionBackspace}
	}
	return KeyMsgResult{Action: InputActionNone}
}
