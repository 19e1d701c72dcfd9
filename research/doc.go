// Package research implements recursive, breadth-and-depth bounded deep
// research over a base single-level research agent.
//
// Each level generates a set of search sub-queries, researches them
// concurrently under an instance-local concurrency bound, extracts
// learnings with citations from every surviving result, and, while
// depth remains, recurses per sub-query with halved breadth, feeding
// accumulated learnings into the next round's query generation.
//
// # Usage
//
//	engine := research.NewEngine(agent, llm,
//	    research.WithBreadth(4),
//	    research.WithDepth(2),
//	    research.WithProgress(func(p research.Progress) {
//	        fmt.Printf("%d/%d queries\n", p.CompletedQueries, p.TotalQueries)
//	    }),
//	)
//	out, err := engine.Run(ctx, "impact of grid-scale batteries on peaker plants")
//	fmt.Println(out.Context)
//
// The base agent and the LLM layer are collaborators behind the
// Researcher and Generator interfaces; this package only orchestrates
// them. Failures stay local: a dead sub-query is logged and excluded
// without disturbing its siblings, and a fully failed tree still yields
// a valid, near-empty output for downstream report generation.
//
// For composition by higher-level report generators, DeepResearch is
// exported directly and returns the merged Results of one subtree.
package research
