package groq

const (
	// BaseURL is the OpenAI-compatible chat completions endpoint.
	BaseURL = "https://api.groq.com/openai/v1/chat/completions"
	// DefaultModel is used when no model is configured.
	DefaultModel = "mixtral-8x7b-32768"

	defaultTemperature = 0.2
	defaultMaxTokens   = 3000
)
