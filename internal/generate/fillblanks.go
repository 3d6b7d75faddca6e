package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const fillBlanksPrompt = `Create a fill-in-the-blanks activity for the topic "%[1]s".

Return ONLY a JSON object with this exact structure:
{
    "title": "Activity title",
    "text": "A paragraph about %[1]s with __1__, __2__, __3__ marking blanks. Use __1__, __2__, __3__, etc. for each blank.",
    "blanks": ["answer1", "answer2", "answer3"]
}

Create 3-5 blanks in a coherent paragraph explaining %[1]s. The answers should be key terms. Return ONLY the JSON, no other text.`

// FillBlanks generates a cloze activity for the topic.
func (s *Service) FillBlanks(ctx context.Context, topic string) FillBlanks {
	ctx = llm.WithPurpose(ctx, "fill-blanks")

	if out, ok := attemptJSON[FillBlanks](ctx, s.client, fmt.Sprintf(fillBlanksPrompt, topic)); ok {
		return out
	}

	s.fallback("fill_blanks", topic)
	return fillBlanksFallback(topic)
}

var fillBlanksTemplates = map[string]FillBlanks{
	"photosynthesis": {
		Title:  "Complete the Photosynthesis Description",
		Text:   "Photosynthesis is the process by which plants convert __1__ and __2__ into __3__ using __4__ from sunlight.",
		Blanks: []string{"carbon dioxide", "water", "glucose", "energy"},
	},
}

func fillBlanksFallback(topic string) FillBlanks {
	if t, ok := fillBlanksTemplates[strings.ToLower(topic)]; ok {
		return t
	}
	return FillBlanks{
		Title:  "Complete the " + topic + " Description",
		Text:   topic + " is an important concept that involves __1__ and __2__ to achieve __3__.",
		Blanks: []string{"component1", "component2", "goal"},
	}
}
