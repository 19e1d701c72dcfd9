package fallback

import (
	"log/slog"

	"github.com/tgravesen/scout/provider"
)

// Resolved binds one chain entry to its initialization outcome: either a
// live client or the captured construction error. Failures are kept so
// callers can report exactly which entries of a chain are dead.
type Resolved struct {
	Ref    ModelRef
	Client provider.Client
	Err    error
}

// Clients filters a resolution result down to the live client handles,
// preserving chain order.
func Clients(resolved []Resolved) []provider.Client {
	var out []provider.Client
	for _, r := range resolved {
		if r.Err == nil && r.Client != nil {
			out = append(out, r.Client)
		}
	}
	return out
}

// Initialize constructs a client for every entry of a chain. Failures
// are isolated: one dead entry never prevents construction of the rest.
// Malformed entries (no ":" separator) are skipped with a warning and do
// not appear in the result.
//
// The first three entries get per-entry debug logging; beyond that only
// the aggregate counts are logged, once per slot, to keep a 25-entry
// chain from flooding the log.
func Initialize(slot Slot, chain Chain, base provider.Config, logger *slog.Logger) []Resolved {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := make([]Resolved, 0, len(chain))
	succeeded, failed := 0, 0

	for i, entry := range chain {
		ref, err := ParseRef(entry)
		if err != nil {
			logger.Warn("skipping malformed fallback entry",
				slog.String("slot", slot.String()),
				slog.String("entry", entry))
			continue
		}

		cfg := base.WithModel(ref.Model)
		cfg.Provider = ref.Provider

		client, err := provider.New(ref.Provider, cfg)
		if err != nil {
			failed++
			resolved = append(resolved, Resolved{Ref: ref, Err: err})
			logger.Warn("fallback provider failed to initialize",
				slog.String("slot", slot.String()),
				slog.String("provider", ref.Provider),
				slog.String("model", ref.Model),
				slog.Any("error", err))
			continue
		}

		succeeded++
		resolved = append(resolved, Resolved{Ref: ref, Client: client})
		if i < 3 {
			logger.Debug("fallback provider initialized",
				slog.String("slot", slot.String()),
				slog.String("provider", ref.Provider),
				slog.String("model", ref.Model))
		}
	}

	if succeeded == 0 && len(chain) > 0 {
		logger.Warn("no fallback providers available for slot",
			slog.String("slot", slot.String()),
			slog.Int("attempted", len(chain)))
	} else {
		logger.Debug("fallback chain initialized",
			slog.String("slot", slot.String()),
			slog.Int("succeeded", succeeded),
			slog.Int("failed", failed))
	}
	return resolved
}
