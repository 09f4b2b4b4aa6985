// Package overlay composites floating boxes (menus, popovers) on top of a
// rendered screen without disturbing the styling of what is underneath.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSequence = "\x1b[0m"

// Width returns the visual width of the widest line in s.
func Width(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// Height returns the number of lines in s.
func Height(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// Place draws box over background with its top-left cell at (x, y).
// Background lines are padded when the box reaches past them; parts of the
// box beyond the background height are dropped.
func Place(background, box string, x, y int) string {
	if box == "" {
		return background
	}
	x = max(x, 0)
	bgLines := strings.Split(background, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := Width(box)

	for i, line := range boxLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = compositeRow(bgLines[row], line, x, boxWidth)
	}
	return strings.Join(bgLines, "\n")
}

func compositeRow(bgLine, boxLine string, x, boxWidth int) string {
	var b strings.Builder
	bgWidth := ansi.StringWidth(bgLine)

	left := ansi.Truncate(bgLine, x, "")
	b.WriteString(left)
	if w := ansi.StringWidth(left); w < x {
		b.WriteString(strings.Repeat(" ", x-w))
	}
	b.WriteString(resetSequence)

	b.WriteString(boxLine)
	if w := ansi.StringWidth(boxLine); w < boxWidth {
		b.WriteString(strings.Repeat(" ", boxWidth-w))
	}

	if right := x + boxWidth; bgWidth > right {
		b.WriteString(resetSequence)
		b.WriteString(ansi.Cut(bgLine, right, bgWidth))
	}
	return b.String()
}
