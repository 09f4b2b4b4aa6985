package components

import "time"

// UI component constants
const (
	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) stay on screen before clearing on their own.
	StatusBarDisplayDuration = 3 * time.Second

	// ChromeLines is the number of lines around the editor body: the header
	// line and the status bar.
	ChromeLines = 2

	// PreviewReservedLines is the number of lines the Markdown preview uses
	// for its title, separator and scroll indicator.
	PreviewReservedLines = 3

	// MinBodyHeight keeps the editor usable on tiny terminals.
	MinBodyHeight = 3
)
