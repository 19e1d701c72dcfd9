package catalog

import "testing"

func TestNormalizeProvider(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vertex_ai-language-models", "vertex_ai"},
		{"vertex_ai-anthropic_models", "vertex_ai"},
		{"vertex_ai-embedding-models", "vertex_ai"},
		{"fireworks_ai-embedding-models", "fireworks_ai"},
		{"text-completion-openai", "openai"},
		{"text-completion-codestral", "codestral"},
		{"openai", "openai"},
		{"anthropic", "anthropic"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeProvider(tt.in); got != tt.want {
			t.Errorf("NormalizeProvider(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCatalogByMode(t *testing.T) {
	c := Catalog{
		"chat-a":  {Mode: ModeChat},
		"chat-b":  {Mode: ModeChat},
		"embed-a": {Mode: ModeEmbedding},
	}
	got := c.ByMode(ModeEmbedding)
	if len(got) != 1 {
		t.Fatalf("ByMode(embedding) returned %d models, want 1", len(got))
	}
	if _, ok := got["embed-a"]; !ok {
		t.Errorf("ByMode(embedding) = %v, want embed-a", got)
	}
}
