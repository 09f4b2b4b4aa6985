package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/events"
	"github.com/renato0307/lessonpad/internal/mouse"
)

// Surface is what block commands and hover controls can do to the editor.
// Positions are absolute document positions.
type Surface interface {
	Document() *document.Document
	InsertNode(pos int, node *document.Node) error
	ToggleBlock(kind document.Kind, attrs document.Attrs) error
	SetBlock(kind document.Kind, attrs document.Attrs) error
	InsertTable(rows, cols int, withHeader bool) error
	InsertContent(nodes ...*document.Node) error
	DeleteRange(from, to int) error
	MoveBlock(from, to int) error
	// CaretRect returns the caret's screen cell. ok is false when the caret
	// is not on screen.
	CaretRect() (rect mouse.Rect, ok bool)
	OnChange(fn func(*document.Document)) (unsubscribe func())
}

// KeyEvent is offered to key listeners before the editor sees the key.
// A listener that handles it may attach a follow-up command.
type KeyEvent struct {
	Msg tea.KeyMsg
	Cmd tea.Cmd
}

// PointerEvent is offered to pointer listeners before anything else.
type PointerEvent struct {
	Msg tea.MouseMsg
	Cmd tea.Cmd
}

// Hub carries the document-wide key and pointer listener lists. Floating
// UI attaches to it while visible.
type Hub struct {
	Keys    events.Bus[*KeyEvent]
	Pointer events.Bus[*PointerEvent]
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Listeners returns the total number of attached listeners.
func (h *Hub) Listeners() int {
	return h.Keys.Len() + h.Pointer.Len()
}

// Messages

// OpenMenuMsg asks the block menu to open at Anchor with its own query input.
type OpenMenuMsg struct {
	Anchor mouse.Rect
}

// MenuClosedMsg reports that the block menu closed.
type MenuClosedMsg struct {
	Reason string
}

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

type StatusMsg struct {
	Message string
	Type    MessageType
}

type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
