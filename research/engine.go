package research

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Engine defaults.
const (
	DefaultBreadth     = 4
	DefaultDepth       = 2
	DefaultConcurrency = 2

	// minChildBreadth floors the halved breadth passed to recursive
	// calls: a level never generates fewer than two sub-queries.
	minChildBreadth = 2

	maxFollowUpQuestions = 3
)

// Engine recursively expands a research query into a tree of sub-queries,
// researching each and extracting learnings with citations.
type Engine struct {
	researcher  Researcher
	generator   Generator
	breadth     int
	depth       int
	concurrency int
	onProgress  ProgressFunc
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithBreadth sets how many sub-queries the root level generates.
func WithBreadth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.breadth = n
		}
	}
}

// WithDepth sets how many levels of recursive refinement to run.
func WithDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.depth = n
		}
	}
}

// WithConcurrency bounds how many sub-queries research concurrently
// within one level. The bound is instance-local.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithProgress sets the progress callback. Nil disables reporting.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.onProgress = fn }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates a deep-research engine over the given collaborators.
func NewEngine(researcher Researcher, generator Generator, opts ...Option) *Engine {
	e := &Engine{
		researcher:  researcher,
		generator:   generator,
		breadth:     DefaultBreadth,
		depth:       DefaultDepth,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// subResult holds one sub-query's outcome, indexed by generation order so
// results stay ordered no matter how execution interleaves.
type subResult struct {
	ok        bool
	sub       SubQuery
	context   string
	visited   []string
	sources   []Source
	learnings []learningItem
	followUps []string
}

// DeepResearch runs one level of the research tree and, while depth
// remains, recurses per sub-query with halved breadth.
//
// The accumulators carry state from ancestor levels: learnings and
// citations feed the next round's query generation; visited URLs only
// grow. Failed sub-queries are logged and excluded; they never abort
// siblings or the parent. The only error returned is the context's, on
// cancellation; a fully failed level returns the accumulated state.
//
// Recursion across sibling sub-queries is sequential, and each child's
// returned learnings replace the running accumulator while its visited
// URLs and citations merge into it. The asymmetry reproduces the
// observed behavior of the system this engine was ported from; callers
// that need strict union semantics should merge the per-level Results
// themselves.
func (e *Engine) DeepResearch(ctx context.Context, query string, breadth, depth int, learnings []string, citations map[string]string, visited []string) (Results, error) {
	tr := newTracker(depth, breadth, e.onProgress)
	tr.publish()

	allLearnings := append([]string(nil), learnings...)
	allCitations := make(map[string]string, len(citations))
	for k, v := range citations {
		allCitations[k] = v
	}
	allVisited := append([]string(nil), visited...)

	subs, err := e.generateSubQueries(ctx, query, breadth, allLearnings)
	if err != nil {
		if ctx.Err() != nil {
			return Results{}, ctx.Err()
		}
		e.logger.Warn("sub-query generation failed, returning accumulated state",
			slog.String("query", query),
			slog.Any("error", err))
		return Results{
			Learnings:   dedupe(allLearnings),
			VisitedURLs: allVisited,
			Citations:   allCitations,
		}, nil
	}
	tr.update(func(p *Progress) {
		p.TotalQueries = len(subs)
		p.CurrentQuery = query
	})

	results := e.researchAll(ctx, subs, tr)
	if ctx.Err() != nil {
		return Results{}, ctx.Err()
	}

	var contexts []string
	var sources []Source
	for _, r := range results {
		if !r.ok {
			continue
		}
		for _, li := range r.learnings {
			allLearnings = append(allLearnings, li.Learning)
			if li.Citation != "" {
				allCitations[li.Learning] = li.Citation
			}
		}
		allVisited = mergeURLs(allVisited, r.visited)
		contexts = append(contexts, r.context)
		sources = append(sources, r.sources...)
	}

	if depth > 1 {
		childBreadth := breadth / 2
		if childBreadth < minChildBreadth {
			childBreadth = minChildBreadth
		}
		for _, r := range results {
			if !r.ok {
				continue
			}
			next := buildRecursiveQuery(r.sub.Goal, r.followUps)
			child, err := e.DeepResearch(ctx, next, childBreadth, depth-1, allLearnings, allCitations, allVisited)
			if err != nil {
				return Results{}, err
			}
			allLearnings = child.Learnings
			allVisited = mergeURLs(allVisited, child.VisitedURLs)
			for k, v := range child.Citations {
				allCitations[k] = v
			}
			contexts = append(contexts, child.Context...)
			sources = append(sources, child.Sources...)
		}
	}

	return Results{
		Learnings:   dedupe(allLearnings),
		VisitedURLs: allVisited,
		Citations:   allCitations,
		Context:     contexts,
		Sources:     sources,
	}, nil
}

// researchAll runs every sub-query concurrently under the semaphore and
// collects outcomes in generation order. Individual failures are logged
// and recorded as not-ok; only cancellation stops the batch early.
func (e *Engine) researchAll(ctx context.Context, subs []SubQuery, tr *tracker) []subResult {
	results := make([]subResult, len(subs))
	sem := semaphore.NewWeighted(int64(e.concurrency))
	g, gctx := errgroup.WithContext(ctx)

	for i, sub := range subs {
		i, sub := i, sub
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			tr.update(func(p *Progress) { p.CurrentQuery = sub.Query })

			r, err := e.researchSubQuery(gctx, sub)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				e.logger.Warn("sub-query research failed",
					slog.String("query", sub.Query),
					slog.Any("error", err))
				return nil
			}

			results[i] = r
			tr.update(func(p *Progress) {
				p.CompletedQueries++
				p.CurrentBreadth++
				p.CurrentQuery = sub.Query
			})
			return nil
		})
	}
	// Workers only return context errors, so Wait's result duplicates
	// ctx.Err() checked by the caller.
	_ = g.Wait()
	return results
}

// researchSubQuery runs one sub-query end to end: base research, then
// learning extraction over the returned context.
func (e *Engine) researchSubQuery(ctx context.Context, sub SubQuery) (subResult, error) {
	out, err := e.researcher.ConductResearch(ctx, sub.Query)
	if err != nil {
		return subResult{}, err
	}

	resp, err := e.generator.Generate(ctx, GenerateRequest{
		SystemPrompt:   extractionSystemPrompt,
		Prompt:         buildExtractionPrompt(sub.Query, out.Context),
		ResponseSchema: extractionResponseSchema(),
	})
	if err != nil {
		return subResult{}, err
	}
	ext := parseExtraction(resp)

	return subResult{
		ok:        true,
		sub:       sub,
		context:   out.Context,
		visited:   out.VisitedURLs,
		sources:   out.Sources,
		learnings: ext.Learnings,
		followUps: ext.FollowUpQuestions,
	}, nil
}

// generateSubQueries asks the LLM for breadth sub-queries. Fewer than
// requested is acceptable; zero parsed queries from a successful call is
// treated the same as an empty level.
func (e *Engine) generateSubQueries(ctx context.Context, query string, breadth int, learnings []string) ([]SubQuery, error) {
	resp, err := e.generator.Generate(ctx, GenerateRequest{
		SystemPrompt:   subQuerySystemPrompt,
		Prompt:         buildSubQueryPrompt(query, breadth, learnings),
		ResponseSchema: subQueryListSchema(),
	})
	if err != nil {
		return nil, err
	}
	return parseSubQueries(resp, breadth), nil
}

// dedupe removes exact-text duplicates preserving first-seen order.
// Applied once at the end of each call; applying it again is a no-op.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// mergeURLs unions b into a preserving order and uniqueness.
func mergeURLs(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, u := range a {
		seen[u] = struct{}{}
	}
	for _, u := range b {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		a = append(a, u)
	}
	return a
}
