package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/renato0307/lessonpad/internal/document"
)

const (
	bulletMarker = "• "
	quoteMarker  = "│ "
	cellSep      = " │ "
	minCellWidth = 3
)

// cell is one table cell on a row line
type cell struct {
	node  *document.Node // first text block of the cell
	col   int            // column relative to the end of the line prefix
	width int
}

// line is one screen line of the laid out document
type line struct {
	node   *document.Node // text block edited on this line
	kind   document.Kind
	level  int
	prefix string
	quoted bool

	cells     []cell
	header    bool
	separator bool
}

// span is the range of lines a node was laid out on
type span struct {
	first, count int
}

type layout struct {
	lines []line
	spans map[*document.Node]span
}

func buildLayout(doc *document.Document) *layout {
	l := &layout{spans: map[*document.Node]span{}}
	for _, n := range doc.Root().Children {
		l.block(n, "", "")
	}
	return l
}

// block lays out n. first prefixes its first line, rest the others.
func (l *layout) block(n *document.Node, first, rest string) {
	start := len(l.lines)
	quoted := strings.Contains(first, quoteMarker) || strings.Contains(rest, quoteMarker)

	switch {
	case n.IsTextBlock():
		l.lines = append(l.lines, line{
			node:   n,
			kind:   n.Kind,
			level:  n.Attrs.Level,
			prefix: first,
			quoted: quoted,
		})

	case n.IsLeaf():
		l.lines = append(l.lines, line{kind: n.Kind, prefix: first})

	case n.Kind == document.KindBlockquote:
		for i, c := range n.Children {
			p := rest + quoteMarker
			if i == 0 {
				p = first + quoteMarker
			}
			l.block(c, p, rest+quoteMarker)
		}

	case n.IsList():
		for i, item := range n.Children {
			marker := bulletMarker
			if n.Kind == document.KindOrderedList {
				marker = fmt.Sprintf("%d. ", i+1)
			}
			indent := strings.Repeat(" ", runewidth.StringWidth(marker))
			p := rest + marker
			if i == 0 {
				p = first + marker
			}
			l.block(item, p, rest+indent)
		}

	case n.Kind == document.KindTable:
		l.table(n, first, rest)

	default:
		for i, c := range n.Children {
			p := rest
			if i == 0 {
				p = first
			}
			l.block(c, p, rest)
		}
	}

	l.spans[n] = span{first: start, count: len(l.lines) - start}
}

func (l *layout) table(t *document.Node, first, rest string) {
	var widths []int
	for _, row := range t.Children {
		for j, c := range row.Children {
			if j >= len(widths) {
				widths = append(widths, minCellWidth)
			}
			widths[j] = max(widths[j], runewidth.StringWidth(c.PlainText()))
		}
	}

	sepW := runewidth.StringWidth(cellSep)
	for r, row := range t.Children {
		prefix := rest
		if r == 0 {
			prefix = first
		}
		ln := line{kind: row.Kind, prefix: prefix}
		col := 0
		for j, c := range row.Children {
			if c.Kind == document.KindTableHeader {
				ln.header = true
			}
			ln.cells = append(ln.cells, cell{node: firstText(c), col: col, width: widths[j]})
			col += widths[j] + sepW
			l.spanTree(c, len(l.lines))
		}
		l.spans[row] = span{first: len(l.lines), count: 1}
		l.lines = append(l.lines, ln)

		if ln.header {
			l.lines = append(l.lines, line{separator: true, prefix: rest, cells: ln.cells})
		}
	}
}

// spanTree maps n and everything below it to one line
func (l *layout) spanTree(n *document.Node, at int) {
	l.spans[n] = span{first: at, count: 1}
	for _, c := range n.Children {
		l.spanTree(c, at)
	}
}

func firstText(n *document.Node) *document.Node {
	if n.IsTextBlock() {
		return n
	}
	for _, c := range n.Children {
		if t := firstText(c); t != nil {
			return t
		}
	}
	return nil
}

// find returns the line index and the column (relative to the prefix end)
// where node is edited.
func (l *layout) find(node *document.Node) (index, col int, ok bool) {
	for i, ln := range l.lines {
		if ln.node == node {
			return i, 0, true
		}
		for _, c := range ln.cells {
			if c.node == node && !ln.separator {
				return i, c.col, true
			}
		}
	}
	return 0, 0, false
}

// textWidth is the display width of the first offset runes of s
func textWidth(s string, offset int) int {
	runes := []rune(s)
	return runewidth.StringWidth(string(runes[:min(max(offset, 0), len(runes))]))
}

// offsetAt returns the rune offset in s closest to display column col
func offsetAt(s string, col int) int {
	if col <= 0 {
		return 0
	}
	w := 0
	for i, r := range []rune(s) {
		rw := runewidth.RuneWidth(r)
		if w+rw > col {
			return i
		}
		w += rw
	}
	return len([]rune(s))
}
