package analyzer

import "errors"

var (
	ErrVideoURLRequired = errors.New("analyzer: video_url is required")
	ErrAnalysisFailed   = errors.New("analyzer: analysis failed")
	ErrMalformedPayload = errors.New("analyzer: malformed payload")
)
