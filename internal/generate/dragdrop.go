package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const dragDropPrompt = `Create a drag-and-drop learning activity for the topic "%[1]s".

Return ONLY a JSON object with this exact structure:
{
    "title": "Activity title",
    "items": ["item1", "item2", "item3", "item4", "item5", "item6"],
    "targets": ["Category 1", "Category 2", "Category 3"],
    "correct_mapping": {
        "item1": "Category 1",
        "item2": "Category 1",
        "item3": "Category 2",
        "item4": "Category 2",
        "item5": "Category 3",
        "item6": "Category 3"
    }
}

The items should be key terms/concepts related to %[1]s, and targets should be logical categories that these items can be sorted into. Include 5-8 items and 3-4 target categories. The correct_mapping shows which items belong to which category. Return ONLY the JSON, no other text.`

// DragDrop generates a sorting activity for the topic.
func (s *Service) DragDrop(ctx context.Context, topic string) DragDrop {
	ctx = llm.WithPurpose(ctx, "drag-drop")

	if out, ok := attemptJSON[DragDrop](ctx, s.client, fmt.Sprintf(dragDropPrompt, topic)); ok {
		return out
	}

	s.fallback("drag_drop", topic)
	return dragDropFallback(topic)
}

// dragDropTemplates holds pre-authored activities keyed by lowercased
// topic. Never mutated.
var dragDropTemplates = map[string]DragDrop{
	"photosynthesis": {
		Title:   "Photosynthesis Process",
		Items:   []string{"Sunlight", "Water", "Carbon Dioxide", "Chlorophyll", "Oxygen", "Glucose"},
		Targets: []string{"Energy Source", "Reactants", "Catalyst", "Products"},
		CorrectMapping: map[string]string{
			"Sunlight":       "Energy Source",
			"Chlorophyll":    "Catalyst",
			"Water":          "Reactants",
			"Carbon Dioxide": "Reactants",
			"Oxygen":         "Products",
			"Glucose":        "Products",
		},
	},
}

// dragDropFallback returns the topic's template, or the generic default
// with the topic substituted in. The default works for any topic string.
func dragDropFallback(topic string) DragDrop {
	if t, ok := dragDropTemplates[strings.ToLower(topic)]; ok {
		return t
	}
	return DragDrop{
		Title:   topic + " - Key Components",
		Items:   []string{topic + " Component 1", topic + " Component 2", topic + " Component 3"},
		Targets: []string{"Category A", "Category B", "Category C"},
		CorrectMapping: map[string]string{
			topic + " Component 1": "Category A",
			topic + " Component 2": "Category B",
			topic + " Component 3": "Category C",
		},
	}
}
