// Package messages defines message handling conventions for lessonpad.
//
// # Message Handling Patterns by Layer
//
// ## Document Layer (internal/document)
//
// Return standard Go errors. The document is a pure data structure and does
// not depend on UI concerns. Wrap with %w and use the package sentinels so
// callers can match with errors.Is:
//
//	if rows <= 0 || cols <= 0 {
//	    return fmt.Errorf("table %dx%d: %w", rows, cols, ErrInvalidContent)
//	}
//
// ## Command Layer (internal/commands)
//
// Block actions return an error. The menu runs the action and turns a
// failure into a StatusMsg with ErrorCmd; the menu itself never fails.
//
// ## UI Layer (internal/app, internal/components)
//
// Display errors via the StatusBar component:
//
//	case types.StatusMsg:
//	    m.statusBar.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusBarDisplayDuration, func(t time.Time) tea.Msg {
//	        return types.ClearStatusMsg{MessageID: id}
//	    })
//
// Nothing is written to stdout or stderr while the program runs; use the
// logging package instead.
package messages
