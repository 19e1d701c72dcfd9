// Package catalog loads and ranks the universe of known LLM models.
//
// The catalog merges three sources: a remote price table, a local or
// bundled snapshot of it, and live discovery against manually declared
// custom provider endpoints. Loading degrades per source: a dead network
// falls back to the snapshot, a dead custom provider contributes no
// models, and only total failure of every price-table source returns
// ErrCatalogUnavailable.
//
// # Loading
//
//	loader := catalog.NewLoader(
//	    catalog.WithSnapshotPath("prices.json"),
//	    catalog.WithManifestPath("providers.yaml"),
//	)
//	cat, err := loader.Load(ctx)
//
// The catalog is cached for the process lifetime; call Refresh to force a
// reload. A shared loader is available via catalog.Default() for callers
// that do not need isolation.
//
// # Cost and ranking
//
// CostPerToken and MaxTokenCapacity fold a spec's sparse per-unit fields
// into single comparable figures, returning a negative sentinel when no
// field is present: "unknown" is deliberately distinct from "free".
// Rank orders a catalog cheapest-first with deterministic tie-breaks:
//
//	for _, m := range catalog.Rank(cat, catalog.RankOptions{FreeOnly: true}) {
//	    fmt.Println(m.ID)
//	}
package catalog
