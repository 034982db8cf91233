package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	pkghttp "aegis-srv/pkg/http"
)

func defaultHTTPClient(timeout time.Duration) pkghttp.IClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   timeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// Analyze submits a video for comment analysis.
func (c *analyzerImpl) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	if strings.TrimSpace(req.VideoURL) == "" {
		return nil, ErrVideoURLRequired
	}
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}
	if req.Keywords == nil {
		req.Keywords = []string{}
	}

	var resp AnalyzeResponse
	if err := c.httpClient.PostJSON(ctx, c.baseURL+PathAnalyze, req, &resp, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "analyzer reported failure"
		}
		return nil, fmt.Errorf("%w: %s", ErrAnalysisFailed, msg)
	}
	if resp.VideoID == "" {
		return nil, fmt.Errorf("%w: missing video_id", ErrMalformedPayload)
	}
	return &resp, nil
}

// Health checks that the analyzer answers.
func (c *analyzerImpl) Health(ctx context.Context) error {
	_, status, err := c.httpClient.Get(ctx, c.baseURL+PathHealth, nil)
	if err != nil {
		return fmt.Errorf("analyzer health: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("analyzer health: unexpected status code: %d", status)
	}
	return nil
}
