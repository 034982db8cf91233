package groq

import (
	"context"
	"fmt"
	"time"

	pkghttp "aegis-srv/pkg/http"
)

// IGroq generates text through the Groq chat completions API.
// Implementations are safe for concurrent use.
type IGroq interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewGroq creates a new Groq client. Model, temperature and token limit have defaults.
func NewGroq(cfg GroqConfig) (IGroq, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &groqImpl{
		cfg: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   2,
			RetryWait: time.Second,
		}),
	}, nil
}
