package editor

import (
	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/messages"
)

// Structural edits used by block commands and block controls. Each one
// keeps the caret in view afterwards.

func (m *Model) Document() *document.Document {
	return m.doc
}

func (m *Model) OnChange(fn func(*document.Document)) func() {
	return m.doc.OnChange(fn)
}

func (m *Model) InsertNode(pos int, node *document.Node) error {
	defer m.reveal()
	if err := m.doc.InsertNode(pos, node); err != nil {
		return messages.WrapError(err, "insert %s at %d", node.Kind, pos)
	}
	return nil
}

func (m *Model) ToggleBlock(kind document.Kind, attrs document.Attrs) error {
	defer m.reveal()
	return m.doc.ToggleBlock(kind, attrs)
}

func (m *Model) SetBlock(kind document.Kind, attrs document.Attrs) error {
	defer m.reveal()
	return m.doc.SetBlock(kind, attrs)
}

func (m *Model) InsertTable(rows, cols int, withHeader bool) error {
	defer m.reveal()
	if err := m.doc.InsertTable(rows, cols, withHeader); err != nil {
		return messages.WrapError(err, "insert %dx%d table", rows, cols)
	}
	return nil
}

func (m *Model) InsertContent(nodes ...*document.Node) error {
	defer m.reveal()
	return m.doc.InsertContent(nodes...)
}

func (m *Model) DeleteRange(from, to int) error {
	defer m.reveal()
	return m.doc.DeleteRange(from, to)
}

func (m *Model) MoveBlock(from, to int) error {
	defer m.reveal()
	if err := m.doc.MoveBlock(from, to); err != nil {
		return messages.WrapError(err, "move block %d to %d", from, to)
	}
	return nil
}
