package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lessonpad/internal/document"
)

func TestFilter_Substring(t *testing.T) {
	registry := NewRegistry(nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", ids(registry.List())},
		{"label prefix", "head", []string{"heading-1", "heading-2", "heading-3"}},
		{"case folded", "HEADING", []string{"heading-1", "heading-2", "heading-3"}},
		{"label or description", "list", []string{"bulleted-list", "numbered-list"}},
		{"description match keeps order", "ai", []string{"ai-meeting-notes", "ai-block", "text"}},
		{"block", "block", []string{"ai-block", "divider"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.Filter(tt.query, FilterSubstring)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_IsPure(t *testing.T) {
	cmds := NewRegistry(nil).List()

	first := Filter("code", cmds)
	second := Filter("code", cmds)

	assert.Equal(t, ids(first), ids(second))
	assert.Len(t, cmds, 12)
}

func TestFilter_EmptyRegistry(t *testing.T) {
	registry := NewRegistryWith()

	assert.Empty(t, registry.Filter("", FilterSubstring))
	assert.Empty(t, registry.Filter("x", FilterFuzzy))
}

func TestFilter_Fuzzy(t *testing.T) {
	registry := NewRegistry(nil)

	assert.Equal(t, []string{"heading-1"}, ids(registry.Filter("h1", FilterFuzzy)))
	assert.Empty(t, registry.Filter("h1", FilterSubstring))

	got := ids(registry.Filter("hdg", FilterFuzzy))
	assert.Equal(t, []string{"heading-1", "heading-2", "heading-3"}, got)

	assert.Len(t, registry.Filter("", FilterFuzzy), 12)
}

func TestMatchedRunes(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, MatchedRunes("head", "Heading 1", FilterSubstring))
	assert.Equal(t, []int{4, 5, 6}, MatchedRunes("ING", "Heading 1", FilterSubstring))
	assert.Nil(t, MatchedRunes("zzz", "Heading 1", FilterSubstring))
	assert.Nil(t, MatchedRunes("", "Heading 1", FilterSubstring))

	assert.Equal(t, []int{0, 6}, MatchedRunes("hg", "Heading 1", FilterFuzzy))
}

func TestCopyMarkdown(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	doc := document.New(document.NewHeading(1, "Title"), document.NewParagraph("body"))
	msg, err := CopyMarkdown(doc)

	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody\n", copied)
	assert.Equal(t, "Copied 3 lines of Markdown to clipboard", msg)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	_, err = CopyMarkdown(doc)
	assert.ErrorContains(t, err, "failed to copy to clipboard")
}
