package catalog

import "testing"

func TestRankOrdering(t *testing.T) {
	c := Catalog{
		"cheap":       {InputCostPerToken: Float(0.0001), OutputCostPerToken: Float(0.0002)},
		"expensive":   {InputCostPerToken: Float(0.01), OutputCostPerToken: Float(0.03)},
		"unknown":     {},
		"free-big":    {InputCostPerToken: Float(0), OutputCostPerToken: Float(0), MaxInputTokens: Float(1000000)},
		"free-small":  {InputCostPerToken: Float(0), OutputCostPerToken: Float(0), MaxInputTokens: Float(8192)},
		"ollama/tiny": {InputCostPerToken: Float(0)},
	}

	got := Rank(c, RankOptions{})
	want := []string{"free-big", "free-small", "cheap", "expensive", "unknown"}
	if len(got) != len(want) {
		t.Fatalf("Rank() returned %d models, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Rank()[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRankExcludesLocalModels(t *testing.T) {
	c := Catalog{
		"ollama/llama3":  {InputCostPerToken: Float(0), OutputCostPerToken: Float(0)},
		"ollama/mistral": {},
		"groq/llama3":    {InputCostPerToken: Float(0), OutputCostPerToken: Float(0)},
	}

	for _, opts := range []RankOptions{{}, {FreeOnly: true}} {
		got := Rank(c, opts)
		if len(got) != 1 || got[0].ID != "groq/llama3" {
			t.Errorf("Rank(FreeOnly=%v) = %v, want only groq/llama3", opts.FreeOnly, got)
		}
	}
}

func TestRankFreeOnly(t *testing.T) {
	c := Catalog{
		"paid":           {InputCostPerToken: Float(0.001)},
		"explicit-free":  {InputCostPerToken: Float(0), OutputCostPerToken: Float(0)},
		"no-cost-fields": {MaxInputTokens: Float(4096)},
		"free-per-token": {InputCostPerToken: Float(0), InputCostPerSecond: Float(0.01)},
	}

	got := Rank(c, RankOptions{FreeOnly: true})
	seen := make(map[string]bool, len(got))
	for _, m := range got {
		seen[m.ID] = true
	}
	if seen["paid"] || seen["free-per-token"] {
		t.Errorf("Rank(FreeOnly) included paid models: %v", got)
	}
	// Absent fields count as zero for the filter, so a spec with no
	// cost fields at all still qualifies.
	if !seen["explicit-free"] || !seen["no-cost-fields"] {
		t.Errorf("Rank(FreeOnly) missing free models: %v", got)
	}
}

func TestRankUnknownCapacityWithinCostTier(t *testing.T) {
	c := Catalog{
		"free-unknown-cap": {InputCostPerToken: Float(0), OutputCostPerToken: Float(0)},
		"free-known-cap":   {InputCostPerToken: Float(0), OutputCostPerToken: Float(0), MaxInputTokens: Float(32768)},
	}

	got := Rank(c, RankOptions{})
	if got[0].ID != "free-unknown-cap" {
		t.Errorf("unknown capacity should sort as infinite within a cost tier, got order %v", got)
	}
}
