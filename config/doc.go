// Package config loads the per-slot model configuration.
//
// Configuration layers, later wins: DefaultConfig values, an optional
// TOML file, then environment variables (FAST_LLM, SMART_LLM,
// STRATEGIC_LLM, EMBEDDING, their *_FALLBACKS counterparts, and the
// *_TOKEN_LIMIT integers).
//
//	cfg, err := config.Load("scout.toml")
//	resolver := fallback.NewResolver(loader,
//	    fallback.WithTokenLimits(cfg.TokenLimits()))
//	chain := resolver.Resolve(ctx, fallback.SlotSmart,
//	    cfg.SlotPrimary(fallback.SlotSmart),
//	    cfg.SlotFallbacks(fallback.SlotSmart))
//
// Watch rebuilds the configuration on file changes, for callers that
// want fallback chains to track edits without a restart.
package config
