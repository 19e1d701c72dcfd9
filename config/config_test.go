package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgravesen/scout/fallback"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "openai:gpt-4o-mini", cfg.FastLLM)
	assert.Equal(t, "openai:gpt-4o", cfg.SmartLLM)
	assert.Equal(t, "auto", cfg.SmartLLMFallbacks)
	assert.Equal(t, 2000, cfg.FastTokenLimit)
	assert.Equal(t, 4000, cfg.SmartTokenLimit)
	assert.Equal(t, 4, cfg.ResearchBreadth)
	assert.Equal(t, 2, cfg.ResearchDepth)
}

func TestLoadFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
smart_llm = "anthropic:claude-3-5-sonnet-20241022"
smart_llm_fallbacks = "openai:gpt-4o-mini, groq:llama-3.3-70b-versatile"
smart_token_limit = 8000
research_breadth = 6
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic:claude-3-5-sonnet-20241022", cfg.SmartLLM)
	assert.Equal(t, 8000, cfg.SmartTokenLimit)
	assert.Equal(t, 6, cfg.ResearchBreadth)
	// Fields the file does not set keep their defaults.
	assert.Equal(t, "openai:gpt-4o-mini", cfg.FastLLM)
	assert.Equal(t, 2000, cfg.FastTokenLimit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err, "an explicitly given path must exist")

	cfg, err := Load("")
	require.NoError(t, err, "an empty path skips the file layer")
	assert.Equal(t, DefaultConfig().SmartLLM, cfg.SmartLLM)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.toml")
	require.NoError(t, os.WriteFile(path, []byte(`smart_llm = "from-file:model"`), 0o644))

	t.Setenv("SMART_LLM", "from-env:model")
	t.Setenv("SMART_TOKEN_LIMIT", "6000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env:model", cfg.SmartLLM)
	assert.Equal(t, 6000, cfg.SmartTokenLimit)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"FAST_LLM":            "groq:llama-3.1-8b-instant",
		"EMBEDDING_FALLBACKS": "openai:text-embedding-3-large",
		"FAST_TOKEN_LIMIT":    "1500",
	}
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(func(key string) string { return env[key] }))

	assert.Equal(t, "groq:llama-3.1-8b-instant", cfg.FastLLM)
	assert.Equal(t, "openai:text-embedding-3-large", cfg.EmbeddingFallbacks)
	assert.Equal(t, 1500, cfg.FastTokenLimit)
	// Unset variables leave defaults alone.
	assert.Equal(t, "openai:gpt-4o", cfg.SmartLLM)
}

func TestApplyEnvInvalidInt(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(func(key string) string {
		if key == "SMART_TOKEN_LIMIT" {
			return "not-a-number"
		}
		return ""
	})
	assert.ErrorContains(t, err, "SMART_TOKEN_LIMIT")
}

func TestSlotAccessors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrategicLLM = "anthropic:claude-3-opus"
	cfg.StrategicLLMFallbacks = "openai:o3-mini"

	assert.Equal(t, "anthropic:claude-3-opus", cfg.SlotPrimary(fallback.SlotStrategic))
	assert.Equal(t, "openai:o3-mini", cfg.SlotFallbacks(fallback.SlotStrategic))
	assert.Equal(t, cfg.Embedding, cfg.SlotPrimary(fallback.SlotEmbedding))

	limits := cfg.TokenLimits()
	assert.Equal(t, fallback.TokenLimits{Fast: 2000, Smart: 4000, Strategic: 4000}, limits)
}
