package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/renato0307/lessonpad/internal/document"
)

// writeClipboard is swapped in tests
var writeClipboard = clipboard.WriteAll

// CopyToClipboard copies text to system clipboard and returns a user-friendly message
func CopyToClipboard(text string) (string, error) {
	if err := writeClipboard(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	lines := strings.Count(strings.TrimRight(text, "\n"), "\n") + 1
	return fmt.Sprintf("Copied %d lines of Markdown to clipboard", lines), nil
}

// CopyMarkdown copies the document as Markdown
func CopyMarkdown(doc *document.Document) (string, error) {
	return CopyToClipboard(doc.Markdown())
}
