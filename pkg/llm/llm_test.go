package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid key", errors.New("openai API error: Incorrect API key provided"), CategoryAuth},
		{"unauthorized", errors.New("401 Unauthorized"), CategoryAuth},
		{"gemini permission", errors.New("gemini API error 403: permission denied"), CategoryAuth},
		{"quota", errors.New("you exceeded your current quota"), CategoryQuota},
		{"insufficient quota code", errors.New("insufficient_quota: billing hard limit reached"), CategoryQuota},
		{"rate limited", errors.New("429 Too Many Requests"), CategoryRateLimited},
		{"dns failure", errors.New("dial tcp: lookup api.openai.com: no such host"), CategoryNetwork},
		{"timeout", errors.New("context deadline exceeded"), CategoryNetwork},
		{"unknown", errors.New("something odd happened"), CategoryUnknown},
		{"nil", nil, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestUserMessageAlwaysNonEmpty(t *testing.T) {
	for _, cat := range []string{CategoryAuth, CategoryQuota, CategoryRateLimited, CategoryNetwork, CategoryUnknown, "made-up"} {
		if UserMessage(cat) == "" {
			t.Errorf("empty message for category %q", cat)
		}
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Who uses Lutemax?", "Companies: 8")
	if !strings.Contains(p, "Who uses Lutemax?") {
		t.Error("prompt missing question")
	}
	if !strings.Contains(p, "Companies: 8") {
		t.Error("prompt missing context block")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"abcdefghij", 5, "abcde..."},
		{"", 5, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
