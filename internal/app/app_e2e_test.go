package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/testutil"
)

func startProgram(t *testing.T, doc *document.Document) *testutil.TestProgram {
	t.Helper()
	if testing.Short() {
		t.Skip("end-to-end test")
	}
	m := NewModel(Options{Document: doc})
	m.copyMarkdown = func(*document.Document) (string, error) {
		return "Copied 3 lines of Markdown to clipboard", nil
	}
	return testutil.NewTestProgram(t, m, 80, 24)
}

func TestE2E_SlashCommandTurnsBlockIntoHeading(t *testing.T) {
	tp := startProgram(t, document.New(document.NewParagraph("")))

	tp.Type("/")
	require.True(t, tp.WaitForOutput("BASIC BLOCKS", time.Second))
	tp.AssertContains("AI Meeting Notes")

	tp.Type("head")
	tp.SendKey(tea.KeyEnter)
	tp.Type("Lesson one")

	assert.True(t, tp.WaitForOutput("lessonpad • Lesson one", time.Second))
}

func TestE2E_CopyShowsStatus(t *testing.T) {
	tp := startProgram(t, document.SampleLesson())

	tp.SendKey(tea.KeyCtrlS)

	assert.True(t, tp.WaitForMessage("success", time.Second))
	tp.AssertContains("Copied 3 lines of Markdown")
}

func TestE2E_PlusButtonOpensFilterableMenu(t *testing.T) {
	tp := startProgram(t, document.New(document.NewParagraph("a"), document.NewParagraph("b")))

	tp.Hover(10, 1)
	tp.Click(0, 1)
	require.True(t, tp.WaitForOutput("type to filter", time.Second))

	tp.Type("quo")
	tp.AssertContains("Quote")
	tp.SendKey(tea.KeyEsc)
}

func TestE2E_PreviewShowsMarkdown(t *testing.T) {
	tp := startProgram(t, document.New(document.NewHeading(1, "Intro")))

	tp.SendKey(tea.KeyCtrlO)

	assert.True(t, tp.WaitForOutput("Markdown: Intro", time.Second))
}
