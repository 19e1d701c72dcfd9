package fallback

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/tgravesen/scout/catalog"
)

// MaxFallbacks bounds every chain, manual and auto portions combined.
const MaxFallbacks = 25

// ErrFallbackGeneration indicates the auto chain could not be generated,
// typically because the catalog failed to load. Resolution degrades to
// whatever manual entries exist rather than failing the caller.
var ErrFallbackGeneration = errors.New("fallback generation failed")

// blacklist holds identifier patterns excluded from auto-generated
// chains: preview and experimental releases churn too fast to be useful
// as unattended fallbacks.
var blacklist = []*regexp.Regexp{
	regexp.MustCompile(`(?i)-preview(-|$)`),
	regexp.MustCompile(`(?i)-exp(erimental)?(-|$)`),
	regexp.MustCompile(`(?i)-beta(-|$)`),
}

// Chain is an ordered, deduplicated list of "provider:model" entries for
// one slot. Manual entries always precede auto-generated ones, the slot's
// primary model never appears, and the length never exceeds MaxFallbacks.
type Chain []string

// Contains reports whether the chain already carries the entry.
func (c Chain) Contains(entry string) bool {
	for _, e := range c {
		if e == entry {
			return true
		}
	}
	return false
}

// Resolver builds fallback chains from the model catalog. Construct it
// with the loader it should consult; it holds no ambient global state.
type Resolver struct {
	loader *catalog.Loader
	limits TokenLimits
	getenv func(string) string
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithTokenLimits overrides the per-slot token requirements.
func WithTokenLimits(limits TokenLimits) ResolverOption {
	return func(r *Resolver) { r.limits = limits }
}

// WithEnviron overrides environment lookup for credential gating.
func WithEnviron(getenv func(string) string) ResolverOption {
	return func(r *Resolver) { r.getenv = getenv }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = logger }
}

// NewResolver creates a resolver backed by the given catalog loader.
func NewResolver(loader *catalog.Loader, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		loader: loader,
		limits: DefaultTokenLimits(),
		getenv: os.Getenv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the fallback chain for one slot.
//
// raw is the slot's fallback configuration: "auto" (or empty) generates
// the whole chain from free models; anything else is a comma-separated
// manual list that forms the head of the chain, with auto-generated
// entries appended behind it. primary is the slot's primary model in
// "provider:model" form; it is always excluded from its own chain.
// An empty or (case-insensitively) "auto" primary excludes nothing.
func (r *Resolver) Resolve(ctx context.Context, slot Slot, primary, raw string) Chain {
	primary = normalizePrimary(primary)

	var chain Chain
	if !isAuto(raw) {
		for _, entry := range strings.Split(raw, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" || entry == primary || chain.Contains(entry) {
				continue
			}
			chain = append(chain, entry)
		}
	}

	// The auto portion always runs; manual entries are never displaced,
	// auto entries fill whatever room remains.
	for _, entry := range r.autoChain(ctx, slot, primary) {
		if chain.Contains(entry) {
			continue
		}
		chain = append(chain, entry)
	}

	if len(chain) > MaxFallbacks {
		chain = chain[:MaxFallbacks]
	}
	return chain
}

// autoChain generates candidates from the free-model subset of the
// catalog. A catalog failure degrades to an empty result: the slot then
// runs on its primary model with no redundancy, which beats failing the
// whole configuration load.
func (r *Resolver) autoChain(ctx context.Context, slot Slot, primary string) Chain {
	cat, err := r.loader.Load(ctx)
	if err != nil {
		r.logger.Warn("fallback generation degraded to empty chain",
			slog.String("slot", slot.String()),
			slog.Any("error", errors.Join(ErrFallbackGeneration, err)))
		return nil
	}

	limit := r.limits.For(slot)
	mode := slot.Mode()

	var chain Chain
	for _, m := range catalog.Rank(cat, catalog.RankOptions{FreeOnly: true}) {
		if blacklisted(m.ID) {
			continue
		}
		if m.Spec.Mode != mode {
			continue
		}
		if slot.IsChat() && m.Spec.MaxOutputTokens != nil && *m.Spec.MaxOutputTokens < float64(limit) {
			continue
		}

		ref := RefFromCatalogID(m.ID, m.Spec.Provider)
		if !r.providerUsable(ref.Provider) {
			continue
		}

		entry := ref.String()
		if entry == primary || chain.Contains(entry) {
			continue
		}
		chain = append(chain, entry)
		if len(chain) == MaxFallbacks {
			break
		}
	}
	return chain
}

// providerUsable gates cloud providers whose models are unusable without
// ambient credentials. Offering them as fallbacks would only turn a
// model failure into a credential failure.
func (r *Resolver) providerUsable(provider string) bool {
	switch provider {
	case "vertex_ai":
		return r.getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" &&
			r.getenv("GOOGLE_CLOUD_PROJECT") != ""
	case "bedrock", "sagemaker":
		return r.getenv("AWS_ACCESS_KEY_ID") != "" &&
			r.getenv("AWS_SECRET_ACCESS_KEY") != ""
	default:
		return true
	}
}

func blacklisted(id string) bool {
	for _, re := range blacklist {
		if re.MatchString(id) {
			return true
		}
	}
	return false
}

// normalizePrimary maps "no primary" spellings to the empty string so
// the exclusion comparison stays a case-sensitive exact match.
func normalizePrimary(primary string) string {
	primary = strings.TrimSpace(primary)
	if strings.EqualFold(primary, "auto") {
		return ""
	}
	return primary
}

func isAuto(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "" || strings.EqualFold(raw, "auto")
}
