package llm

import (
	"fmt"
	"strings"
)

// PromptVersion tags answers with the prompt template revision that produced
// them, so logged or stored responses stay comparable across template changes.
const PromptVersion = "v1"

const systemPrompt = `You are a market intelligence analyst for a nutraceutical ingredient supplier.
Answer questions about ingredient adoption, supplement companies, and market positioning.

Rules:
1. Ground every claim in the context data provided
2. Be concise: a short paragraph, bullets only when listing companies or ingredients
3. Focus on business implications: growth opportunities, competitive positioning
4. If the context does not cover the question, say so instead of guessing`

// Client produces a free-text answer for a question given an assembled
// context block.
type Client interface {
	Answer(question, contextBlock string) (string, error)
	Model() string
}

// BuildPrompt interpolates the question and context block into the user
// prompt sent to the provider.
func BuildPrompt(question, contextBlock string) string {
	return fmt.Sprintf("Answer this question: %s\n\nContext Data:\n%s\n\nProvide specific, actionable insights based on the data.", question, contextBlock)
}

// Truncate shortens free text for the query log, cutting on a rune boundary.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
