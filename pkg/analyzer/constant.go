package analyzer

import "time"

const (
	// DefaultTimeout covers a full comment crawl on the analyzer side.
	DefaultTimeout = 60 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 1
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 2 * time.Second
	// DefaultLimit is the number of comments requested when the caller leaves it empty.
	DefaultLimit = 100
)

const (
	PathAnalyze = "/api/analyze"
	PathHealth  = "/api/health"
)
