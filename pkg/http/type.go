package http

import (
	"fmt"
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	// UserAgent is sent on every request unless the caller sets one.
	UserAgent string
}

// clientImpl implements IClient.
type clientImpl struct {
	client *http.Client
	config ClientConfig
}

// StatusError is returned when the remote side answers with a non-success status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
