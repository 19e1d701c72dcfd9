// Package scout provides the building blocks of an autonomous research
// agent: model-catalog loading and ranking, per-slot fallback-chain
// resolution, and a recursive deep-research engine.
//
// Each subpackage can be used independently:
//
//   - catalog: loads the universe of known model specs (pricing, limits,
//     capabilities) with graceful source fallback, and ranks it by cost
//   - fallback: builds ordered fallback chains per model slot and
//     initializes provider clients for them, isolating failures
//   - provider: the unified client interface, registry, and typed errors
//   - research: breadth/depth recursive research with concurrent
//     sub-queries, learning extraction, and citation tracking
//   - config: TOML + environment configuration with hot reload
//
// # Quick Start
//
// Resolve a fallback chain for the smart slot:
//
//	cfg, _ := config.Load("")
//	resolver := fallback.NewResolver(catalog.Default(),
//	    fallback.WithTokenLimits(cfg.TokenLimits()))
//	chain := resolver.Resolve(ctx, fallback.SlotSmart,
//	    cfg.SlotPrimary(fallback.SlotSmart), "auto")
//
// Run deep research over a base agent:
//
//	engine := research.NewEngine(agent, llm, research.WithBreadth(4))
//	out, err := engine.Run(ctx, "state of solid-state battery manufacturing")
//
// # Design Philosophy
//
//   - Failures degrade, they don't cascade: a dead provider, a failed
//     discovery, or a broken sub-query reduces capability and is logged;
//     only a completely missing catalog is fatal
//   - Interfaces for collaborators, concrete types for data
//   - No ambient globals: catalogs and resolvers are constructed and
//     threaded explicitly (a shared default exists behind an accessor)
package scout
