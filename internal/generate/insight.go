package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const insightPrompt = `Analyze the topic "%[1]s" and provide educational insights.

Return ONLY a JSON object with this exact structure:
{
    "summary": "A concise 1-2 sentence summary of the topic",
    "patterns": ["Pattern 1", "Pattern 2", "Pattern 3", "Pattern 4"],
    "difficulty": "basic" or "intermediate" or "expert",
    "explanation": "A detailed 2-3 sentence explanation of the concept",
    "related_topics": ["Topic 1", "Topic 2", "Topic 3", "Topic 4", "Topic 5"]
}

Provide insightful analysis. Patterns should be key themes or concepts. Difficulty should reflect learning complexity. Related topics should be genuinely connected. Return ONLY the JSON, no other text.`

// Insights generates a pattern analysis for the topic. Difficulty in the
// result is always one of the three tier constants, whatever the model
// replied.
func (s *Service) Insights(ctx context.Context, topic string) Insight {
	ctx = llm.WithPurpose(ctx, "insight")

	if out, ok := attemptJSON[Insight](ctx, s.client, fmt.Sprintf(insightPrompt, topic)); ok {
		out.Difficulty = coerceDifficulty(out.Difficulty)
		return out
	}

	s.fallback("insight", topic)
	return insightFallback(topic)
}

// coerceDifficulty clamps a model-supplied difficulty to the known tiers.
// Anything else ("Expert", "hard", empty) becomes intermediate.
func coerceDifficulty(d string) string {
	switch d {
	case DifficultyBasic, DifficultyIntermediate, DifficultyExpert:
		return d
	}
	return DifficultyIntermediate
}

var insightSummaries = map[string]string{
	"photosynthesis": "Photosynthesis is the biological process by which plants, algae, and some bacteria convert light energy into chemical energy stored in glucose molecules.",
}

var insightPatterns = map[string][]string{
	"photosynthesis": {"Energy conversion", "Chemical reactions", "Biological processes", "Plant biology"},
}

var insightExplanations = map[string]string{
	"photosynthesis": "Photosynthesis occurs in two main stages: light-dependent reactions (capturing light energy) and light-independent reactions (Calvin cycle, producing glucose).",
}

var insightRelated = map[string][]string{
	"photosynthesis": {"Cellular respiration", "Chloroplasts", "Plant biology", "Energy flow", "Ecosystems"},
}

// difficultyTiers associates each tier with its trigger keywords. The
// scan order is fixed: the first tier with a keyword found in the topic
// wins, so overlapping keywords resolve to the earlier tier.
var difficultyTiers = []struct {
	level    string
	keywords []string
}{
	{DifficultyBasic, []string{"introduction", "basics", "fundamentals", "simple"}},
	{DifficultyIntermediate, []string{"advanced", "complex", "detailed", "analysis"}},
	{DifficultyExpert, []string{"research", "theoretical", "quantum", "molecular"}},
}

// insightFallback builds a rule-based analysis: exact-match tables with
// templated defaults, plus keyword-inferred difficulty.
func insightFallback(topic string) Insight {
	key := strings.ToLower(topic)

	summary, ok := insightSummaries[key]
	if !ok {
		summary = topic + " is a fundamental concept that involves understanding key principles and their applications."
	}

	patterns, ok := insightPatterns[key]
	if !ok {
		patterns = []string{"Core concepts", "Key principles", "Fundamental mechanisms", "Practical applications"}
	}

	explanation, ok := insightExplanations[key]
	if !ok {
		explanation = topic + " can be understood through systematic study of its components, relationships, and real-world applications."
	}

	related, ok := insightRelated[key]
	if !ok {
		related = []string{topic + " applications", topic + " theory", "Advanced " + topic, topic + " examples"}
	}

	return Insight{
		Summary:       summary,
		Patterns:      patterns,
		Difficulty:    inferDifficulty(key),
		Explanation:   explanation,
		RelatedTopics: related,
	}
}

func inferDifficulty(topicLower string) string {
	for _, tier := range difficultyTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(topicLower, kw) {
				return tier.level
			}
		}
	}
	return DifficultyIntermediate
}
