package factory

import (
	"fmt"

	"ai-csvchat-be/pkg/llm"
	"ai-csvchat-be/pkg/llm/gemini"
	"ai-csvchat-be/pkg/llm/ollama"
)

// NewLLMProvider selects the inference backend from config. A missing
// Gemini API key is a configuration error at startup, never a per-request
// failure.
func NewLLMProvider(providerType, modelName, ollamaBaseURL, geminiAPIKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	case "gemini", "":
		if geminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
		}
		return gemini.NewGeminiProvider(geminiAPIKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
