// Package fallback builds and initializes per-slot model fallback chains.
//
// A slot (fast, smart, strategic, embedding) is configured with a primary
// model and a fallback specification: either an explicit comma-separated
// list or "auto". Auto chains are generated from the catalog's free
// models, cheapest first, filtered by mode, token requirements, a
// blacklist of unstable releases, and the presence of cloud credentials.
// Manual entries always form the head of the chain; auto entries fill the
// remaining room up to MaxFallbacks.
//
//	resolver := fallback.NewResolver(catalog.Default())
//	chain := resolver.Resolve(ctx, fallback.SlotFast, "openai:gpt-4o-mini", "auto")
//
// Initialization turns a chain into live provider clients, isolating
// per-entry failures:
//
//	resolved := fallback.Initialize(fallback.SlotFast, chain, provider.Config{}, nil)
//	clients := fallback.Clients(resolved)
//
// An empty client list means no redundancy this run, not an error: the
// slot still operates on its primary model.
package fallback
