package commands

import (
	"fmt"
	"strings"

	"github.com/renato0307/lessonpad/internal/types"
)

// Command categories as shown in the block menu section headers
const (
	CategoryAI    = "AI"
	CategoryBasic = "Basic blocks"
)

// ActionFunc performs one structural change on the editor
type ActionFunc func(s types.Surface) error

// Command represents one entry of the block menu
type Command struct {
	ID          string     // Stable identifier (e.g., "heading-1")
	Label       string     // Display name, also matched by the filter
	Description string     // One-line explanation, also matched by the filter
	Icon        string     // Short glyph shown before the label
	Shortcut    string     // Markdown shortcut hint (e.g., "##")
	Badge       string     // Optional tag ("Beta", "New"); badged commands are pinned first
	Category    string     // Section header
	Action      ActionFunc // Execution function
}

// Run executes the command's action
func (c Command) Run(s types.Surface) error {
	if c.Action == nil {
		return fmt.Errorf("command %q has no action", c.ID)
	}
	if err := c.Action(s); err != nil {
		return fmt.Errorf("%s: %w", c.Label, err)
	}
	return nil
}

// FilterMode selects how the query is matched against commands
type FilterMode string

const (
	// FilterSubstring keeps commands whose label or description contains
	// the query, ignoring case
	FilterSubstring FilterMode = "substring"
	// FilterFuzzy keeps commands whose label and description fuzzy-match
	// the query
	FilterFuzzy FilterMode = "fuzzy"
)

// ParseFilterMode converts a config value to a FilterMode
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterSubstring:
		return FilterSubstring, nil
	case FilterFuzzy:
		return FilterFuzzy, nil
	}
	return "", fmt.Errorf("unknown filter mode %q (want substring or fuzzy)", s)
}
