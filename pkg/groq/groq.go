package groq

import (
	"context"
	"fmt"
	"strings"
)

// Generate sends prompt as the user turn, after the configured system prompt.
func (g *groqImpl) Generate(ctx context.Context, prompt string) (string, error) {
	messages := make([]ChatMessage, 0, 2)
	if g.cfg.SystemPrompt != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: g.cfg.SystemPrompt})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: prompt})

	req := ChatRequest{
		Model:       g.cfg.Model,
		Messages:    messages,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	}
	headers := map[string]string{"Authorization": "Bearer " + g.cfg.APIKey}

	var resp ChatResponse
	if err := g.httpClient.PostJSON(ctx, g.cfg.BaseURL, req, &resp, headers); err != nil {
		return "", fmt.Errorf("failed to call Groq API: %w", err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("Groq API error: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("no content generated")
	}
	return text, nil
}
