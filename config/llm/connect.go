package llm

import (
	"context"
	"fmt"

	"aegis-srv/config"
	"aegis-srv/pkg/gemini"
	"aegis-srv/pkg/groq"
)

// TextGenerator is the completion surface shared by the Groq and Gemini clients.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Connect builds the client for report.llm_provider. It returns nil, nil when
// the deterministic generator is configured.
func Connect(cfg *config.Config) (TextGenerator, error) {
	if cfg.Report.Generator != config.GeneratorRemote {
		return nil, nil
	}

	switch cfg.Report.LLMProvider {
	case config.LLMProviderGroq:
		client, err := groq.NewGroq(groq.GroqConfig{
			APIKey:  cfg.Groq.APIKey,
			Model:   cfg.Groq.Model,
			Timeout: cfg.Groq.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Groq client: %w", err)
		}
		return client, nil
	case config.LLMProviderGemini:
		client, err := gemini.NewGemini(gemini.GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.Gemini.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Report.LLMProvider)
	}
}
