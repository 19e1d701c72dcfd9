package provider

import (
	"fmt"
	"time"
)

// Config holds configuration for creating an LLM provider client.
// Common fields apply to all providers; use Options for provider-specific settings.
type Config struct {
	// Provider is the name of the registered provider to use. Required.
	Provider string `json:"provider" yaml:"provider" toml:"provider"`

	// Model is the model to use (provider-specific name).
	// Examples: "gpt-4o-mini", "mistralai/mistral-7b-instruct:free"
	Model string `json:"model" yaml:"model" toml:"model"`

	// APIKey authenticates requests. Most providers read it from
	// <PROVIDER>_API_KEY when this is empty.
	APIKey string `json:"-" yaml:"-" toml:"-"`

	// BaseURL overrides the provider's default endpoint.
	// Required for manually declared custom providers.
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`

	// Temperature controls response randomness. Zero means provider default.
	Temperature float64 `json:"temperature" yaml:"temperature" toml:"temperature"`

	// MaxTokens limits response length. Zero means provider default.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`

	// Timeout is the maximum duration for a completion request.
	// 0 uses the provider default.
	Timeout time.Duration `json:"timeout" yaml:"timeout" toml:"timeout"`

	// Options holds provider-specific configuration.
	Options map[string]any `json:"options" yaml:"options" toml:"options"`
}

// Validate checks that required fields are set.
func (c Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("%w: provider name is required", ErrInvalidRequest)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidRequest)
	}
	return nil
}

// WithModel returns a copy of the config with the model replaced.
// The fallback initializer uses this to stamp each chain entry's model
// onto the slot's shared configuration.
func (c Config) WithModel(model string) Config {
	c.Model = model
	return c
}
