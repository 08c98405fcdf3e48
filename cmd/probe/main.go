package main

import (
	"fmt"
	"os"

	"nutraintel/pkg/llm"

	"github.com/joho/godotenv"
)

// Sends one fixed question through the configured provider so a deployment
// can verify its API key before the dashboard goes live.
func main() {

	godotenv.Load()

	var client llm.Client
	switch {
	case os.Getenv("GEMINI_API_KEY") != "":
		client = llm.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	case os.Getenv("OPENAI_API_KEY") != "":
		client = llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		client = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		fmt.Println("no provider API key configured (GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY)")
		os.Exit(1)
	}

	fmt.Printf("model: %s\n", client.Model())

	answer, err := client.Answer(
		"Reply with the single word OK.",
		"Connectivity check, no data loaded.",
	)
	if err != nil {
		category := llm.Classify(err)
		fmt.Printf("failed (%s): %s\n", category, llm.UserMessage(category))
		fmt.Printf("detail: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("answer: %s\n", llm.Truncate(answer, 80))
}
