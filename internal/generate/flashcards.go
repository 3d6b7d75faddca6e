package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const flashcardsPrompt = `Create educational flashcards for the topic "%[1]s".

Return ONLY a JSON array with this exact structure:
[
    {"front": "Question 1", "back": "Answer 1"},
    {"front": "Question 2", "back": "Answer 2"},
    {"front": "Question 3", "back": "Answer 3"},
    {"front": "Question 4", "back": "Answer 4"}
]

Create 4-6 flashcards with questions on the front and clear, concise answers on the back. Return ONLY the JSON array, no other text.`

// Flashcards generates a set of study cards for the topic. The payload
// is a bare array, unlike the other activities.
func (s *Service) Flashcards(ctx context.Context, topic string) []Flashcard {
	ctx = llm.WithPurpose(ctx, "flashcards")

	if out, ok := attemptJSON[[]Flashcard](ctx, s.client, fmt.Sprintf(flashcardsPrompt, topic)); ok {
		return out
	}

	s.fallback("flashcards", topic)
	return flashcardsFallback(topic)
}

var flashcardsTemplates = map[string][]Flashcard{
	"photosynthesis": {
		{Front: "What is photosynthesis?", Back: "The process by which plants convert light energy into chemical energy."},
		{Front: "What are the reactants?", Back: "Carbon dioxide and water."},
		{Front: "What are the products?", Back: "Glucose and oxygen."},
		{Front: "Where does photosynthesis occur?", Back: "In the chloroplasts of plant cells."},
	},
}

func flashcardsFallback(topic string) []Flashcard {
	if t, ok := flashcardsTemplates[strings.ToLower(topic)]; ok {
		return t
	}
	return []Flashcard{
		{Front: "What is " + topic + "?", Back: topic + " is a fundamental concept in this field."},
		{Front: "Why is " + topic + " important?", Back: topic + " helps us understand key principles."},
		{Front: "How does " + topic + " work?", Back: topic + " operates through specific mechanisms."},
	}
}
