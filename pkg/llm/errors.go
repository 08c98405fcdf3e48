package llm

import "strings"

// Failure categories surfaced to users. Provider SDKs and the REST path all
// report errors as opaque text, so classification is by substring match.
const (
	CategoryAuth        = "auth"
	CategoryQuota       = "quota"
	CategoryRateLimited = "rate_limited"
	CategoryNetwork     = "network"
	CategoryUnknown     = "unknown"
)

var categoryMessages = map[string]string{
	CategoryAuth:        "The AI provider rejected the configured API key. Check the key and try again.",
	CategoryQuota:       "The AI provider quota is exhausted. Answers will resume when quota is restored.",
	CategoryRateLimited: "The AI provider is rate limiting requests. Wait a moment and retry.",
	CategoryNetwork:     "The AI provider could not be reached. Check your network connection.",
	CategoryUnknown:     "The AI analysis is unavailable right now.",
}

// Classify maps a provider error onto a user-facing category.
func Classify(err error) string {
	if err == nil {
		return CategoryUnknown
	}
	msg := strings.ToLower(err.Error())

	switch {
	case containsAny(msg, "api key", "api_key", "unauthorized", "unauthenticated", "permission denied", "401", "403"):
		return CategoryAuth
	case containsAny(msg, "quota", "billing", "insufficient_quota"):
		return CategoryQuota
	case containsAny(msg, "rate limit", "rate_limit", "too many requests", "429"):
		return CategoryRateLimited
	case containsAny(msg, "no such host", "connection refused", "timeout", "deadline exceeded", "dial tcp", "tls", "eof"):
		return CategoryNetwork
	default:
		return CategoryUnknown
	}
}

// UserMessage returns the inline message displayed for a category.
func UserMessage(category string) string {
	if msg, ok := categoryMessages[category]; ok {
		return msg
	}
	return categoryMessages[CategoryUnknown]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
