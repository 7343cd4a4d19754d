package factory

import (
	"fmt"
	"time"

	"course-assist-be/pkg/llm"
	"course-assist-be/pkg/llm/gemini"
	"course-assist-be/pkg/llm/ollama"
)

// NewLLMProvider builds a generation provider from configuration. Provider
// selection is configuration, not code: callers never import a concrete
// provider package.
func NewLLMProvider(provider, model, ollamaBaseURL, geminiApiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch provider {
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model, timeout), nil
	case "gemini":
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(geminiApiKey, model, timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", provider)
	}
}
