package client

import (
	"fmt"

	"github.com/ressKim-io/sentiment-service/internal/domain/service"
	"github.com/ressKim-io/sentiment-service/internal/infrastructure/config"
)

// Supported inference providers
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// NewTextGenerator creates the backend selected by the inference config
func NewTextGenerator(cfg *config.InferenceConfig) (service.TextGenerator, error) {
	switch cfg.Provider {
	case ProviderOllama, "":
		return NewOllamaClient(cfg.BaseURL, cfg.Timeout), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported inference provider %q", cfg.Provider)
	}
}
