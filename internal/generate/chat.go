package generate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mindlab/mindlab/internal/llm"
)

const chatPrompt = `You are a friendly educational chatbot for MindLab learning platform. Help students learn by answering their questions clearly and encouraging them to use interactive features.

Student question: %s

Provide a helpful, educational response. If relevant, mention that they can explore the topic in the Concept Playground or use Pattern Insights. Keep responses conversational and encouraging. Limit to 2-3 sentences.`

// chatKeywordReplies is scanned in order; the first keyword found as a
// substring of the lowercased message wins. The order is deliberate and
// decides ties when a message contains several keywords.
var chatKeywordReplies = []struct {
	keyword string
	reply   string
}{
	{"hello", "Hello! How can I help you learn today?"},
	{"hi", "Hi there! What would you like to know?"},
	{"help", "I can help you understand concepts, answer questions, and guide your learning. What topic interests you?"},
	{"photosynthesis", "Photosynthesis is the process by which plants convert light energy into chemical energy. Would you like to learn more about it in the Concept Playground?"},
	{"what is", "I can explain concepts to you! Try asking about a specific topic, or use the Concept Playground for interactive learning."},
	{"how", "Great question! I can help explain processes and concepts. For interactive learning, check out the Concept Playground."},
	{"why", "That's an important question! Understanding the \"why\" helps deepen your knowledge. Would you like to explore this in the Concept Playground?"},
	{"thank", "You're welcome! Keep learning and exploring!"},
	{"thanks", "You're welcome! Feel free to ask more questions anytime."},
}

// chatDefaultReplies is the pool used when no keyword matches; one entry
// is picked uniformly at random.
var chatDefaultReplies = []string{
	"That's an interesting question! I'd recommend exploring this topic in the Concept Playground for interactive learning.",
	"I can help you understand this better. Try using the Pattern Insight Engine to get detailed analysis, or the Concept Playground for hands-on practice.",
	"Great question! For the best learning experience, I suggest checking out the interactive activities in the Concept Playground.",
	"I'm here to help! You can learn more about this topic through our interactive activities or pattern insights.",
}

// ChatReply answers a student message. The AI path returns the model's
// trimmed reply verbatim; the fallback is keyword-matched with a random
// default when nothing matches.
func (s *Service) ChatReply(ctx context.Context, message string) string {
	ctx = llm.WithPurpose(ctx, "chat")

	if text, ok := s.client.Call(ctx, fmt.Sprintf(chatPrompt, message), chatTemperature); ok {
		if reply := strings.TrimSpace(text); reply != "" {
			return reply
		}
	}

	s.fallback("chat", message)
	return chatFallback(message)
}

func chatFallback(message string) string {
	lower := strings.ToLower(message)
	for _, kr := range chatKeywordReplies {
		if strings.Contains(lower, kr.keyword) {
			return kr.reply
		}
	}
	return chatDefaultReplies[rand.IntN(len(chatDefaultReplies))]
}
