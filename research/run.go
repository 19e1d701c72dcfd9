package research

import (
	"context"
	"log/slog"
	"strings"
)

// Run drives a complete deep-research task: it scopes the root query
// with auto-answered clarifying questions, runs the research tree at the
// configured breadth and depth, and builds the final cited context.
//
// Run never fails because research came up empty: a tree where every
// sub-query failed still returns a valid (near-empty) output so report
// generation downstream can decide how to present the degradation. The
// only error returned is the context's, on cancellation.
func (e *Engine) Run(ctx context.Context, query string) (RunOutput, error) {
	questions := e.generateFollowUps(ctx, query)
	if ctx.Err() != nil {
		return RunOutput{}, ctx.Err()
	}

	combined := buildCombinedQuery(query, questions)
	res, err := e.DeepResearch(ctx, combined, e.breadth, e.depth, nil, map[string]string{}, nil)
	if err != nil {
		return RunOutput{}, err
	}

	return RunOutput{
		Context:     BuildCitedContext(res),
		Learnings:   res.Learnings,
		VisitedURLs: res.VisitedURLs,
		Citations:   res.Citations,
		Sources:     res.Sources,
	}, nil
}

// generateFollowUps asks for clarifying questions about the root query.
// Failure degrades to none: scoping questions are an enrichment, not a
// requirement.
func (e *Engine) generateFollowUps(ctx context.Context, query string) []string {
	resp, err := e.generator.Generate(ctx, GenerateRequest{
		SystemPrompt: followUpSystemPrompt,
		Prompt:       buildFollowUpPrompt(query, maxFollowUpQuestions),
	})
	if err != nil {
		e.logger.Warn("follow-up question generation failed, proceeding without",
			slog.String("query", query),
			slog.Any("error", err))
		return nil
	}
	return parseQuestions(resp, maxFollowUpQuestions)
}

// BuildCitedContext renders the final context string: one line per
// learning, suffixed with its source URL when a citation exists.
func BuildCitedContext(res Results) string {
	var b strings.Builder
	for _, learning := range res.Learnings {
		b.WriteString(learning)
		if url, ok := res.Citations[learning]; ok {
			b.WriteString(" [Source: ")
			b.WriteString(url)
			b.WriteString("]")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
