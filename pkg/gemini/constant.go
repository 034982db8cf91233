package gemini

const (
	// BaseURL is the Gemini generative language endpoint.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-1.5-pro"
)
