package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram wraps a Bubble Tea program for end-to-end tests
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	t       *testing.T
	done    chan struct{}
}

// syncBuffer is the program output, written by the renderer goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idleInput never delivers terminal input; tests use Send instead
type idleInput struct{}

func (idleInput) Read([]byte) (int, error) {
	time.Sleep(50 * time.Millisecond)
	return 0, io.EOF
}

// NewTestProgram starts model in the background with the given screen size.
// The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(idleInput{}),
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		t:       t,
		done:    make(chan struct{}),
	}

	go func() {
		defer close(tp.done)
		if _, err := p.Run(); err != nil {
			t.Logf("Program error: %v", err)
		}
	}()
	t.Cleanup(tp.Quit)

	// Give the program time to start
	time.Sleep(50 * time.Millisecond)
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(20 * time.Millisecond)
}

// Type simulates typing a string, one key per rune
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			tp.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Hover moves the pointer to (x, y)
func (tp *TestProgram) Hover(x, y int) {
	tp.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion})
}

// Click presses and releases the left button at (x, y)
func (tp *TestProgram) Click(x, y int) {
	tp.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	tp.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	if !tp.WaitForOutput(expected, time.Second) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, tp.Output())
	}
}

// WaitForMessage waits for a status bar message of the given type
// ("success", "error" or "info") to appear.
func (tp *TestProgram) WaitForMessage(messageType string, timeout time.Duration) bool {
	tp.t.Helper()

	prefix := map[string]string{
		"success": "✓ ",
		"error":   "✗ ",
		"info":    "ℹ ",
	}[strings.ToLower(messageType)]
	if prefix == "" {
		return false
	}
	return tp.WaitForOutput(prefix, timeout)
}

// Quit stops the program and waits for it to exit
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(time.Second):
		tp.t.Log("program did not exit")
	}
}
