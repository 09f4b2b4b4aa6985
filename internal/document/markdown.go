package document

import (
	"fmt"
	"strings"
)

// Markdown renders the document as GitHub flavoured Markdown.
func (d *Document) Markdown() string {
	var b strings.Builder
	writeBlocks(&b, d.root.Children, "")
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeBlocks(b *strings.Builder, blocks []*Node, prefix string) {
	for i, n := range blocks {
		if i > 0 {
			b.WriteString(strings.TrimRight(prefix, " ") + "\n")
		}
		writeBlock(b, n, prefix)
	}
}

func writeBlock(b *strings.Builder, n *Node, prefix string) {
	switch n.Kind {
	case KindParagraph:
		fmt.Fprintf(b, "%s%s\n", prefix, n.Text)
	case KindHeading:
		fmt.Fprintf(b, "%s%s %s\n", prefix, strings.Repeat("#", n.Attrs.Level), n.Text)
	case KindCodeBlock:
		fmt.Fprintf(b, "%s```\n%s%s\n%s```\n", prefix, prefix, n.Text, prefix)
	case KindHorizontalRule:
		fmt.Fprintf(b, "%s---\n", prefix)
	case KindBlockquote:
		writeBlocks(b, n.Children, prefix+"> ")
	case KindBulletList, KindOrderedList:
		for i, item := range n.Children {
			marker := "- "
			if n.Kind == KindOrderedList {
				marker = fmt.Sprintf("%d. ", i+1)
			}
			writeListItem(b, item, prefix, marker)
		}
	case KindTable:
		writeTable(b, n, prefix)
	}
}

func writeListItem(b *strings.Builder, item *Node, prefix, marker string) {
	indent := prefix + strings.Repeat(" ", len(marker))
	for i, child := range item.Children {
		if i == 0 && child.IsTextBlock() && child.Kind == KindParagraph {
			fmt.Fprintf(b, "%s%s%s\n", prefix, marker, child.Text)
			continue
		}
		if i == 0 {
			fmt.Fprintf(b, "%s%s\n", prefix, strings.TrimRight(marker, " "))
		}
		writeBlock(b, child, indent)
	}
	if len(item.Children) == 0 {
		fmt.Fprintf(b, "%s%s\n", prefix, strings.TrimRight(marker, " "))
	}
}

func writeTable(b *strings.Builder, table *Node, prefix string) {
	for r, row := range table.Children {
		cells := make([]string, len(row.Children))
		for c, cell := range row.Children {
			cells[c] = strings.ReplaceAll(cell.PlainText(), "\n", " ")
		}
		fmt.Fprintf(b, "%s| %s |\n", prefix, strings.Join(cells, " | "))
		if r == 0 {
			seps := make([]string, len(row.Children))
			for c := range seps {
				seps[c] = "---"
			}
			fmt.Fprintf(b, "%s| %s |\n", prefix, strings.Join(seps, " | "))
		}
	}
}
