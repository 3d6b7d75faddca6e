package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const conceptFlowPrompt = `Create a concept flow activity for the topic "%[1]s".

Return ONLY a JSON object with this exact structure:
{
    "title": "Activity title",
    "steps": [
        {"id": 1, "text": "Step 1 description"},
        {"id": 2, "text": "Step 2 description"},
        {"id": 3, "text": "Step 3 description"},
        {"id": 4, "text": "Step 4 description"},
        {"id": 5, "text": "Step 5 description"}
    ],
    "correct_flow": [1, 2, 3, 4, 5]
}

Create 4-6 steps that represent a logical sequence or process related to %[1]s. The "correct_flow" array should contain the step IDs in the correct order. Return ONLY the JSON, no other text.`

// ConceptFlow generates a concept ordering activity for the topic.
func (s *Service) ConceptFlow(ctx context.Context, topic string) ConceptFlow {
	ctx = llm.WithPurpose(ctx, "concept-flow")

	if out, ok := attemptJSON[ConceptFlow](ctx, s.client, fmt.Sprintf(conceptFlowPrompt, topic)); ok {
		return out
	}

	s.fallback("concept_flow", topic)
	return conceptFlowFallback(topic)
}

var conceptFlowTemplates = map[string]ConceptFlow{
	"photosynthesis": {
		Title: "Photosynthesis Process Flow",
		Steps: []FlowStep{
			{ID: 1, Text: "Light energy absorbed"},
			{ID: 2, Text: "Water molecules split"},
			{ID: 3, Text: "Carbon dioxide enters"},
			{ID: 4, Text: "Glucose produced"},
			{ID: 5, Text: "Oxygen released"},
		},
		CorrectFlow: []int{1, 2, 3, 4, 5},
	},
}

func conceptFlowFallback(topic string) ConceptFlow {
	if t, ok := conceptFlowTemplates[strings.ToLower(topic)]; ok {
		return t
	}
	return ConceptFlow{
		Title: topic + " Concept Flow",
		Steps: []FlowStep{
			{ID: 1, Text: "Introduction to " + topic},
			{ID: 2, Text: "Understanding " + topic + " basics"},
			{ID: 3, Text: "Applying " + topic + " concepts"},
			{ID: 4, Text: "Advanced " + topic + " topics"},
			{ID: 5, Text: "Mastering " + topic},
		},
		CorrectFlow: []int{1, 2, 3, 4, 5},
	}
}
