package response

// Resp is the envelope every handler writes. Errors carries field-level
// validation details on a 400.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
