package testutil

import (
	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/mouse"
)

// DocSurface is a types.Surface backed by a bare document, with a fixed
// caret rect. Calls records the surface methods invoked, in order.
type DocSurface struct {
	Doc     *document.Document
	Rect    mouse.Rect
	Visible bool
	Calls   []string
}

// NewDocSurface creates a surface over doc whose caret is visible at rect
func NewDocSurface(doc *document.Document, rect mouse.Rect) *DocSurface {
	return &DocSurface{Doc: doc, Rect: rect, Visible: true}
}

func (s *DocSurface) record(name string) {
	s.Calls = append(s.Calls, name)
}

func (s *DocSurface) Document() *document.Document {
	return s.Doc
}

func (s *DocSurface) InsertNode(pos int, node *document.Node) error {
	s.record("InsertNode")
	return s.Doc.InsertNode(pos, node)
}

func (s *DocSurface) ToggleBlock(kind document.Kind, attrs document.Attrs) error {
	s.record("ToggleBlock")
	return s.Doc.ToggleBlock(kind, attrs)
}

func (s *DocSurface) SetBlock(kind document.Kind, attrs document.Attrs) error {
	s.record("SetBlock")
	return s.Doc.SetBlock(kind, attrs)
}

func (s *DocSurface) InsertTable(rows, cols int, withHeader bool) error {
	s.record("InsertTable")
	return s.Doc.InsertTable(rows, cols, withHeader)
}

func (s *DocSurface) InsertContent(nodes ...*document.Node) error {
	s.record("InsertContent")
	return s.Doc.InsertContent(nodes...)
}

func (s *DocSurface) DeleteRange(from, to int) error {
	s.record("DeleteRange")
	return s.Doc.DeleteRange(from, to)
}

func (s *DocSurface) MoveBlock(from, to int) error {
	s.record("MoveBlock")
	return s.Doc.MoveBlock(from, to)
}

func (s *DocSurface) CaretRect() (mouse.Rect, bool) {
	return s.Rect, s.Visible
}

func (s *DocSurface) OnChange(fn func(*document.Document)) func() {
	return s.Doc.OnChange(fn)
}
