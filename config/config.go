package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/tgravesen/scout/fallback"
)

// Config holds the per-slot model configuration plus catalog and
// research settings. Values come from an optional TOML file overridden
// by environment variables; DefaultConfig supplies all defaults.
type Config struct {
	// Slot primaries: "provider:model" or the literal "auto".
	FastLLM      string `toml:"fast_llm"`
	SmartLLM     string `toml:"smart_llm"`
	StrategicLLM string `toml:"strategic_llm"`
	Embedding    string `toml:"embedding"`

	// Slot fallbacks: comma-separated "provider:model" list or "auto".
	FastLLMFallbacks      string `toml:"fast_llm_fallbacks"`
	SmartLLMFallbacks     string `toml:"smart_llm_fallbacks"`
	StrategicLLMFallbacks string `toml:"strategic_llm_fallbacks"`
	EmbeddingFallbacks    string `toml:"embedding_fallbacks"`

	// Minimum output-token requirements for the chat-family slots.
	FastTokenLimit      int `toml:"fast_token_limit"`
	SmartTokenLimit     int `toml:"smart_token_limit"`
	StrategicTokenLimit int `toml:"strategic_token_limit"`

	// Catalog sources.
	PriceTableURL string `toml:"price_table_url"`
	SnapshotPath  string `toml:"snapshot_path"`
	ManifestPath  string `toml:"manifest_path"`

	// Deep-research shape.
	ResearchBreadth     int `toml:"research_breadth"`
	ResearchDepth       int `toml:"research_depth"`
	ResearchConcurrency int `toml:"research_concurrency"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		FastLLM:      "openai:gpt-4o-mini",
		SmartLLM:     "openai:gpt-4o",
		StrategicLLM: "openai:o3-mini",
		Embedding:    "openai:text-embedding-3-small",

		FastLLMFallbacks:      "auto",
		SmartLLMFallbacks:     "auto",
		StrategicLLMFallbacks: "auto",
		EmbeddingFallbacks:    "auto",

		FastTokenLimit:      2000,
		SmartTokenLimit:     4000,
		StrategicTokenLimit: 4000,

		ResearchBreadth:     4,
		ResearchDepth:       2,
		ResearchConcurrency: 2,
	}
}

// Load builds the configuration: defaults, then the TOML file at path if
// one is given, then environment variable overrides. A missing file at
// an explicitly given path is an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from the environment. getenv is injectable
// for tests.
func (c *Config) applyEnv(getenv func(string) string) error {
	setStr := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	setStr(&c.FastLLM, "FAST_LLM")
	setStr(&c.SmartLLM, "SMART_LLM")
	setStr(&c.StrategicLLM, "STRATEGIC_LLM")
	setStr(&c.Embedding, "EMBEDDING")
	setStr(&c.FastLLMFallbacks, "FAST_LLM_FALLBACKS")
	setStr(&c.SmartLLMFallbacks, "SMART_LLM_FALLBACKS")
	setStr(&c.StrategicLLMFallbacks, "STRATEGIC_LLM_FALLBACKS")
	setStr(&c.EmbeddingFallbacks, "EMBEDDING_FALLBACKS")

	setInt := func(dst *int, key string) error {
		v := getenv(key)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %q", key, v)
		}
		*dst = n
		return nil
	}
	if err := setInt(&c.FastTokenLimit, "FAST_TOKEN_LIMIT"); err != nil {
		return err
	}
	if err := setInt(&c.SmartTokenLimit, "SMART_TOKEN_LIMIT"); err != nil {
		return err
	}
	if err := setInt(&c.StrategicTokenLimit, "STRATEGIC_TOKEN_LIMIT"); err != nil {
		return err
	}
	return nil
}

// TokenLimits converts the configured limits to the resolver's type.
func (c Config) TokenLimits() fallback.TokenLimits {
	return fallback.TokenLimits{
		Fast:      c.FastTokenLimit,
		Smart:     c.SmartTokenLimit,
		Strategic: c.StrategicTokenLimit,
	}
}

// SlotPrimary returns the primary model string configured for a slot.
func (c Config) SlotPrimary(slot fallback.Slot) string {
	switch slot {
	case fallback.SlotFast:
		return c.FastLLM
	case fallback.SlotSmart:
		return c.SmartLLM
	case fallback.SlotStrategic:
		return c.StrategicLLM
	case fallback.SlotEmbedding:
		return c.Embedding
	default:
		return ""
	}
}

// SlotFallbacks returns the fallback specification for a slot.
func (c Config) SlotFallbacks(slot fallback.Slot) string {
	switch slot {
	case fallback.SlotFast:
		return c.FastLLMFallbacks
	case fallback.SlotSmart:
		return c.SmartLLMFallbacks
	case fallback.SlotStrategic:
		return c.StrategicLLMFallbacks
	case fallback.SlotEmbedding:
		return c.EmbeddingFallbacks
	default:
		return ""
	}
}
