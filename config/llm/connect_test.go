package llm

import (
	"testing"

	"aegis-srv/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("deterministic needs no client", func(t *testing.T) {
		client, err := Connect(&config.Config{Report: config.ReportConfig{Generator: config.GeneratorDeterministic}})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("groq", func(t *testing.T) {
		cfg := &config.Config{
			Report: config.ReportConfig{Generator: config.GeneratorRemote, LLMProvider: config.LLMProviderGroq},
			Groq:   config.GroqConfig{APIKey: "key"},
		}
		client, err := Connect(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("gemini without key", func(t *testing.T) {
		cfg := &config.Config{
			Report: config.ReportConfig{Generator: config.GeneratorRemote, LLMProvider: config.LLMProviderGemini},
		}
		_, err := Connect(cfg)
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &config.Config{
			Report: config.ReportConfig{Generator: config.GeneratorRemote, LLMProvider: "other"},
		}
		_, err := Connect(cfg)
		assert.Error(t, err)
	})
}
