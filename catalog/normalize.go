package catalog

// providerRewrites collapses the price table's provider sub-namespaces
// into one canonical provider key, so provider-prefixed lookups work no
// matter which sub-table a model was declared in.
var providerRewrites = map[string]string{
	"vertex_ai-anthropic_models":    "vertex_ai",
	"vertex_ai-language-models":     "vertex_ai",
	"vertex_ai-text-models":         "vertex_ai",
	"vertex_ai-chat-models":         "vertex_ai",
	"vertex_ai-code-chat-models":    "vertex_ai",
	"vertex_ai-code-text-models":    "vertex_ai",
	"vertex_ai-embedding-models":    "vertex_ai",
	"vertex_ai-image-models":        "vertex_ai",
	"vertex_ai-llama_models":        "vertex_ai",
	"vertex_ai-mistral_models":      "vertex_ai",
	"vertex_ai-ai21_models":         "vertex_ai",
	"fireworks_ai-embedding-models": "fireworks_ai",
	"text-completion-openai":        "openai",
	"text-completion-codestral":     "codestral",
}

// NormalizeProvider returns the canonical provider key for a raw provider
// value from the price table. Unrecognized providers pass through as-is.
func NormalizeProvider(provider string) string {
	if canonical, ok := providerRewrites[provider]; ok {
		return canonical
	}
	return provider
}
