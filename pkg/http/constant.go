package http

import "time"

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 2
	DefaultRetryWait = 500 * time.Millisecond

	defaultUserAgent = "aegis-srv"
	contentTypeJSON  = "application/json"
	// StatusError keeps at most this many bytes of the remote body.
	maxErrorBody = 512
)

// DefaultConfig is what the analyzer and webhook clients use unless configured otherwise.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
		UserAgent: defaultUserAgent,
	}
}
