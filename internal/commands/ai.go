package commands

import (
	"fmt"

	"github.com/renato0307/lessonpad/internal/document"
	"github.com/renato0307/lessonpad/internal/types"
)

// Prompt names what an AI block should generate
type Prompt string

const (
	PromptMeetingNotes Prompt = "meeting-notes"
	PromptBlock        Prompt = "block"
)

// Generator produces the blocks inserted by the AI commands
type Generator interface {
	Generate(prompt Prompt) ([]*document.Node, error)
}

// PlaceholderGenerator returns canned content instead of calling a model
type PlaceholderGenerator struct{}

// Generate returns static blocks for prompt
func (PlaceholderGenerator) Generate(prompt Prompt) ([]*document.Node, error) {
	switch prompt {
	case PromptMeetingNotes:
		return []*document.Node{
			document.NewHeading(2, "Meeting Notes"),
			document.NewParagraph("AI-generated meeting notes..."),
			document.NewList(document.KindBulletList, "Attendees", "Decisions", "Action items"),
		}, nil
	case PromptBlock:
		return []*document.Node{
			document.NewParagraph("AI-generated content..."),
		}, nil
	}
	return nil, fmt.Errorf("no placeholder for prompt %q", prompt)
}

func generate(gen Generator, prompt Prompt) ActionFunc {
	return func(s types.Surface) error {
		nodes, err := gen.Generate(prompt)
		if err != nil {
			return fmt.Errorf("generate %s: %w", prompt, err)
		}
		return s.InsertContent(nodes...)
	}
}
