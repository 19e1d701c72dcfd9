package research

import (
	"context"
	"encoding/json"
)

// Source records one retrieved document.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content,omitempty"`
}

// ResearchOutput is what the base research agent returns for one query:
// an opaque context summary plus the URLs and sources behind it.
type ResearchOutput struct {
	Context     string
	VisitedURLs []string
	Sources     []Source
}

// Researcher is the single-level research collaborator. Implementations
// search, scrape, and summarize the web (or local documents) for one
// query; this package only orchestrates them.
type Researcher interface {
	ConductResearch(ctx context.Context, query string) (ResearchOutput, error)
}

// GenerateRequest configures one LLM text-generation call.
type GenerateRequest struct {
	SystemPrompt string

	Prompt string

	// ResponseSchema, when set, asks for JSON conforming to the schema.
	// Callers still parse defensively; not every backend honors it.
	ResponseSchema json.RawMessage
}

// Generator is the LLM invocation collaborator. The concrete
// implementation is configured elsewhere (typically over a fallback
// chain); the engine only needs text in, text out.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// SubQuery is one generated research direction: the query to search and
// the goal the answer should advance.
type SubQuery struct {
	Query string `json:"query" jsonschema:"description=A specific search query to research"`
	Goal  string `json:"goal" jsonschema:"description=The research goal this query advances"`
}

// Results aggregates everything a deep-research subtree produced.
type Results struct {
	// Learnings are distinct extracted insights, deduplicated by exact
	// text as the final step before returning.
	Learnings []string

	// VisitedURLs is the union of every URL visited in the subtree.
	VisitedURLs []string

	// Citations maps a learning's text to its source URL. Partial: not
	// every learning has a citation. Keys are a subset of Learnings.
	Citations map[string]string

	// Context holds the raw per-sub-query context blobs, concatenated
	// across levels.
	Context []string

	// Sources are the retrieved source records across the subtree.
	Sources []Source
}

// RunOutput is returned by Engine.Run: the final cited context string
// plus the merged research state for the caller's report generation.
type RunOutput struct {
	// Context is the cited context: each learning, suffixed with its
	// source URL when one is known.
	Context string

	Learnings   []string
	VisitedURLs []string
	Citations   map[string]string
	Sources     []Source
}
