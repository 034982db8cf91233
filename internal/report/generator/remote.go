package generator

import (
	"context"
	"fmt"
	"strings"

	"aegis-srv/internal/model"
)

// TextGenerator completes a prompt. pkg/groq and pkg/gemini clients satisfy it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Remote writes reports with a language model.
type Remote struct {
	provider string
	llm      TextGenerator
}

func NewRemote(provider string, llm TextGenerator) *Remote {
	return &Remote{provider: provider, llm: llm}
}

func (r *Remote) Name() string { return r.provider }

func (r *Remote) Generate(ctx context.Context, kind model.ReportKind, sc model.ScanContext) (string, error) {
	prompt, err := BuildPrompt(kind, sc)
	if err != nil {
		return "", err
	}
	text, err := r.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", r.provider, err)
	}
	return strings.TrimSpace(text), nil
}
