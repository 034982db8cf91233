package gemini

import (
	"context"
	"fmt"
	"time"

	pkghttp "aegis-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if empty.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &geminiImpl{
		apiKey:            cfg.APIKey,
		model:             cfg.Model,
		baseURL:           cfg.BaseURL,
		systemInstruction: cfg.SystemInstruction,
		temperature:       cfg.Temperature,
		maxTokens:         cfg.MaxTokens,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   2,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}
