package llm

import (
	"fmt"

	"biomed-maintenance-tracker/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewModel builds the OpenAI-compatible chat model used for service notes.
// It returns a nil model when no API key is configured.
func NewModel(cfg config.AIConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return client, nil
}
