package fallback

import (
	"errors"
	"strings"
)

// ErrMalformedRef indicates a chain entry that cannot be split into
// provider and model.
var ErrMalformedRef = errors.New("malformed model reference")

// ModelRef identifies one model at one provider. It replaces ad hoc
// string splitting: every place that needs the provider/model split goes
// through ParseRef or RefFromCatalogID, never its own parsing.
type ModelRef struct {
	Provider string
	Model    string
}

// String renders the canonical "provider:model" form.
func (r ModelRef) String() string {
	return r.Provider + ":" + r.Model
}

// ParseRef parses a "provider:model" chain entry. The split is on the
// first colon only, so model names carrying their own colon suffixes
// ("mistralai/mistral-7b-instruct:free") survive intact.
func ParseRef(s string) (ModelRef, error) {
	s = strings.TrimSpace(s)
	i := strings.Index(s, ":")
	if i <= 0 || i == len(s)-1 {
		return ModelRef{}, ErrMalformedRef
	}
	return ModelRef{Provider: s[:i], Model: s[i+1:]}, nil
}

// RefFromCatalogID converts a catalog identifier into canonical form.
// Catalog identifiers come in several shapes, each with one rule:
//
//   - "provider/model" splits on the first slash; the model part keeps
//     any further slashes or colon suffixes ("openrouter/x/y:free").
//   - "litellm/provider/model" unwraps the nested provider.
//   - an identifier already in "provider:model" form passes through.
//   - a bare name uses the spec's declared provider.
func RefFromCatalogID(id, provider string) ModelRef {
	if i := strings.Index(id, "/"); i >= 0 {
		head, rest := id[:i], id[i+1:]
		if head == "litellm" {
			if j := strings.Index(rest, "/"); j >= 0 {
				return ModelRef{Provider: rest[:j], Model: rest[j+1:]}
			}
			return ModelRef{Provider: provider, Model: rest}
		}
		return ModelRef{Provider: head, Model: rest}
	}
	if ref, err := ParseRef(id); err == nil {
		return ref
	}
	return ModelRef{Provider: provider, Model: id}
}
