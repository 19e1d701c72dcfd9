package fallback

import "github.com/tgravesen/scout/catalog"

// Slot names one of the configured LLM roles. Each slot carries its own
// primary model, fallback chain, and (for the chat family) token limit.
type Slot int

// The four model slots.
const (
	SlotFast Slot = iota
	SlotSmart
	SlotStrategic
	SlotEmbedding
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotFast:
		return "fast"
	case SlotSmart:
		return "smart"
	case SlotStrategic:
		return "strategic"
	case SlotEmbedding:
		return "embedding"
	default:
		return "unknown"
	}
}

// IsChat reports whether the slot belongs to the chat family.
// Fast, smart, and strategic all serve chat-mode models.
func (s Slot) IsChat() bool {
	return s == SlotFast || s == SlotSmart || s == SlotStrategic
}

// Mode returns the catalog mode candidates for this slot must declare.
func (s Slot) Mode() catalog.Mode {
	if s == SlotEmbedding {
		return catalog.ModeEmbedding
	}
	return catalog.ModeChat
}

// TokenLimits holds the per-slot minimum output-token requirements for
// the chat family. A candidate whose declared max output tokens is below
// the slot's limit is excluded from auto-generated chains.
type TokenLimits struct {
	Fast      int
	Smart     int
	Strategic int
}

// DefaultTokenLimits returns the standard limits.
func DefaultTokenLimits() TokenLimits {
	return TokenLimits{Fast: 2000, Smart: 4000, Strategic: 4000}
}

// For returns the limit for a chat-family slot, or 0 for slots without one.
func (t TokenLimits) For(s Slot) int {
	switch s {
	case SlotFast:
		return t.Fast
	case SlotSmart:
		return t.Smart
	case SlotStrategic:
		return t.Strategic
	default:
		return 0
	}
}
