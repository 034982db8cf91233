package analyzer

import "context"

// IAnalyzer is the client of the external harassment/copyright analysis service.
// Implementations are safe for concurrent use.
type IAnalyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
	Health(ctx context.Context) error
}

// New creates a new analyzer client. Returns the interface.
func New(cfg AnalyzerConfig) IAnalyzer {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient(cfg.Timeout)
	}
	return &analyzerImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
