package catalog

import (
	"math"
	"sort"
	"strings"
)

// RankedModel pairs a model identifier with its spec in ranked order.
type RankedModel struct {
	ID   string
	Spec ModelSpec
}

// RankOptions configures Rank.
type RankOptions struct {
	// FreeOnly restricts the result to models whose per-token,
	// per-character, and per-second cost fields are all exactly zero.
	// Absent fields count as zero for this filter only. This is
	// deliberately more lenient than CostPerToken, which treats a spec
	// with no cost fields as unknown rather than free: a model with only
	// a known-zero token price still qualifies as free here.
	FreeOnly bool
}

// Rank sorts the catalog cheapest-first by approximate cost per token,
// tie-broken by descending token capacity and then by identifier so the
// order is fully deterministic. Models with unknown cost sort last
// (treated as infinitely expensive); unknown capacity is treated as
// infinite within a cost tier, so it is never penalized below
// unknown-cost entries.
//
// Models hosted purely locally ("ollama/" identifiers) are always
// excluded, whether or not FreeOnly is set: ranking exists to pick remote
// fallbacks, and a local model is no fallback for a missing remote one.
func Rank(c Catalog, opts RankOptions) []RankedModel {
	ranked := make([]RankedModel, 0, len(c))
	for id, spec := range c {
		if strings.HasPrefix(id, "ollama/") {
			continue
		}
		if opts.FreeOnly && !isFree(spec) {
			continue
		}
		ranked = append(ranked, RankedModel{ID: id, Spec: spec})
	}

	cost := func(m RankedModel) float64 {
		v := CostPerToken(m.Spec)
		if v < 0 {
			return math.Inf(1)
		}
		return v
	}
	capacity := func(m RankedModel) float64 {
		v := MaxTokenCapacity(m.Spec)
		if v < 0 {
			return math.Inf(1)
		}
		return v
	}

	sort.Slice(ranked, func(i, j int) bool {
		ci, cj := cost(ranked[i]), cost(ranked[j])
		if ci != cj {
			return ci < cj
		}
		ki, kj := capacity(ranked[i]), capacity(ranked[j])
		if ki != kj {
			return ki > kj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// isFree reports whether every relevant cost field is exactly zero,
// counting absent fields as zero. See RankOptions.FreeOnly for why this
// differs from the CostPerToken unknown-cost sentinel.
func isFree(spec ModelSpec) bool {
	zero := func(v *float64) bool { return v == nil || *v == 0 }
	return zero(spec.InputCostPerToken) &&
		zero(spec.OutputCostPerToken) &&
		zero(spec.InputCostPerCharacter) &&
		zero(spec.OutputCostPerCharacter) &&
		zero(spec.InputCostPerSecond) &&
		zero(spec.OutputCostPerSecond)
}
