package commands

import (
	"strings"

	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/types"
)

// Registry holds the block commands in their declared order
type Registry struct {
	commands []Command
}

// NewRegistry creates a registry with the default block commands. gen
// produces the content of the AI blocks; nil uses PlaceholderGenerator.
func NewRegistry(gen Generator) *Registry {
	if gen == nil {
		gen = PlaceholderGenerator{}
	}
	return &Registry{
		commands: []Command{
			// AI commands (pinned through their badge)
			{
				ID:       "ai-meeting-notes",
				Label:    "AI Meeting Notes",
				Icon:     "✦",
				Badge:    "Beta",
				Category: CategoryAI,
				Action:   generate(gen, PromptMeetingNotes),
			},
			{
				ID:       "ai-block",
				Label:    "AI Block",
				Icon:     "✦",
				Badge:    "New",
				Category: CategoryAI,
				Action:   generate(gen, PromptBlock),
			},

			// Basic blocks
			{
				ID:          "text",
				Label:       "Text",
				Description: "Just start writing with plain text",
				Icon:        "T",
				Category:    CategoryBasic,
				Action:      setBlock(document.KindParagraph, 0),
			},
			{
				ID:          "heading-1",
				Label:       "Heading 1",
				Description: "Big section heading",
				Icon:        "H1",
				Shortcut:    "#",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindHeading, 1),
			},
			{
				ID:          "heading-2",
				Label:       "Heading 2",
				Description: "Medium section heading",
				Icon:        "H2",
				Shortcut:    "##",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindHeading, 2),
			},
			{
				ID:          "heading-3",
				Label:       "Heading 3",
				Description: "Small section heading",
				Icon:        "H3",
				Shortcut:    "###",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindHeading, 3),
			},
			{
				ID:          "bulleted-list",
				Label:       "Bulleted list",
				Description: "Create a simple bulleted list",
				Icon:        "•",
				Shortcut:    "-",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindBulletList, 0),
			},
			{
				ID:          "numbered-list",
				Label:       "Numbered list",
				Description: "Create a list with numbering",
				Icon:        "1.",
				Shortcut:    "1.",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindOrderedList, 0),
			},
			{
				ID:          "table",
				Label:       "Table",
				Description: "Add a table to organize data",
				Icon:        "▦",
				Category:    CategoryBasic,
				Action: func(s types.Surface) error {
					return s.InsertTable(3, 3, true)
				},
			},
			{
				ID:          "quote",
				Label:       "Quote",
				Description: "Capture a quote",
				Icon:        "❝",
				Shortcut:    ">",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindBlockquote, 0),
			},
			{
				ID:          "code",
				Label:       "Code",
				Description: "Capture a code snippet",
				Icon:        "</>",
				Shortcut:    "```",
				Category:    CategoryBasic,
				Action:      toggleBlock(document.KindCodeBlock, 0),
			},
			{
				ID:          "divider",
				Label:       "Divider",
				Description: "Visually divide blocks",
				Icon:        "—",
				Shortcut:    "---",
				Category:    CategoryBasic,
				Action: func(s types.Surface) error {
					return s.InsertContent(document.NewHorizontalRule())
				},
			},
		},
	}
}

// NewRegistryWith creates a registry holding exactly cmds
func NewRegistryWith(cmds ...Command) *Registry {
	return &Registry{commands: append([]Command(nil), cmds...)}
}

func setBlock(kind document.Kind, level int) ActionFunc {
	return func(s types.Surface) error {
		return s.SetBlock(kind, document.Attrs{Level: level})
	}
}

func toggleBlock(kind document.Kind, level int) ActionFunc {
	return func(s types.Surface) error {
		return s.ToggleBlock(kind, document.Attrs{Level: level})
	}
}

// List returns all commands in declared order. The slice is a copy.
func (r *Registry) List() []Command {
	return append([]Command(nil), r.commands...)
}

// Len returns the number of commands
func (r *Registry) Len() int {
	return len(r.commands)
}

// Filter returns the commands matching query in declared order
func (r *Registry) Filter(query string, mode FilterMode) []Command {
	if mode == FilterFuzzy {
		return FilterFuzzyMatch(query, r.commands)
	}
	return Filter(query, r.commands)
}

// Get returns a command by id, or nil if not found
func (r *Registry) Get(id string) *Command {
	for _, cmd := range r.commands {
		if strings.EqualFold(cmd.ID, id) {
			return &cmd
		}
	}
	return nil
}
