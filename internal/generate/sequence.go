package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const sequencePrompt = `Create a step-by-step reordering activity for the topic "%[1]s".

Return ONLY a JSON object with this exact structure:
{
    "title": "Activity title",
    "steps": ["Step 1 description", "Step 2 description", "Step 3 description", "Step 4 description", "Step 5 description"]
}

The steps should describe a process or sequence related to %[1]s. Include 5-7 steps in logical order. Return ONLY the JSON, no other text.`

// Sequence generates a step-reordering activity for the topic.
func (s *Service) Sequence(ctx context.Context, topic string) Sequence {
	ctx = llm.WithPurpose(ctx, "sequence")

	if out, ok := attemptJSON[Sequence](ctx, s.client, fmt.Sprintf(sequencePrompt, topic)); ok {
		return out
	}

	s.fallback("sequence", topic)
	return sequenceFallback(topic)
}

var sequenceTemplates = map[string]Sequence{
	"photosynthesis": {
		Title: "Order the Photosynthesis Steps",
		Steps: []string{
			"Light energy is absorbed by chlorophyll",
			"Water molecules are split",
			"Carbon dioxide enters the leaf",
			"Glucose is produced",
			"Oxygen is released",
		},
	},
}

func sequenceFallback(topic string) Sequence {
	if t, ok := sequenceTemplates[strings.ToLower(topic)]; ok {
		return t
	}
	return Sequence{
		Title: topic + " - Process Steps",
		Steps: []string{
			"Step 1: Introduction to " + topic,
			"Step 2: Understanding " + topic + " concepts",
			"Step 3: Applying " + topic,
			"Step 4: Advanced " + topic + " topics",
		},
	}
}
