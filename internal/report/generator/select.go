package generator

import (
	"aegis-srv/internal/report"
	"aegis-srv/pkg/log"
)

// Select returns deterministic when no language model is configured,
// otherwise the remote generator for provider backed by deterministic.
func Select(l log.Logger, deterministic report.Generator, provider string, llm TextGenerator, opts ...Option) report.Generator {
	if llm == nil {
		return deterministic
	}
	return NewFallback(l, NewRemote(provider, llm), deterministic, opts...)
}
