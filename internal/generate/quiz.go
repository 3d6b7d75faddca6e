package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const quizPrompt = `Create a multiple-choice quiz for the topic "%[1]s".

Return ONLY a JSON object with this exact structure:
{
    "title": "Quiz title",
    "questions": [
        {
            "question": "Question text",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct": 0
        }
    ]
}

Create 3-5 questions with 4 options each. The "correct" field should be the index (0-3) of the correct answer. Return ONLY the JSON, no other text.`

// Quiz generates a multiple-choice quiz for the topic.
func (s *Service) Quiz(ctx context.Context, topic string) Quiz {
	ctx = llm.WithPurpose(ctx, "quiz")

	if out, ok := attemptJSON[Quiz](ctx, s.client, fmt.Sprintf(quizPrompt, topic)); ok {
		return out
	}

	s.fallback("quiz", topic)
	return quizFallback(topic)
}

var quizTemplates = map[string]Quiz{
	"photosynthesis": {
		Questions: []QuizQuestion{
			{
				Question: "What is the primary source of energy for photosynthesis?",
				Options:  []string{"Water", "Sunlight", "Carbon Dioxide", "Oxygen"},
				Correct:  1,
			},
			{
				Question: "Which gas is released during photosynthesis?",
				Options:  []string{"Carbon Dioxide", "Nitrogen", "Oxygen", "Hydrogen"},
				Correct:  2,
			},
			{
				Question: "Where does photosynthesis primarily occur?",
				Options:  []string{"Roots", "Stem", "Leaves", "Flowers"},
				Correct:  2,
			},
		},
	},
}

func quizFallback(topic string) Quiz {
	if t, ok := quizTemplates[strings.ToLower(topic)]; ok {
		// The quiz title carries the caller's topic spelling even for
		// pre-authored question sets.
		t.Title = topic + " Quiz"
		return t
	}
	return Quiz{
		Title: topic + " Quiz",
		Questions: []QuizQuestion{
			{
				Question: "What is a key aspect of " + topic + "?",
				Options:  []string{"Option A", "Option B", "Option C", "Option D"},
				Correct:  0,
			},
			{
				Question: "Which statement about " + topic + " is true?",
				Options:  []string{"Statement 1", "Statement 2", "Statement 3", "Statement 4"},
				Correct:  1,
			},
		},
	}
}
