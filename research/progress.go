package research

import "sync"

// Progress describes the engine's position in the research tree.
// A snapshot is pushed to the configured callback at call start and
// after every state change: query generation, per-sub-query start,
// per-sub-query completion.
type Progress struct {
	// CurrentDepth counts levels remaining: it starts at TotalDepth for
	// the root call and decreases as recursion goes deeper, reaching 1 at
	// the leaves.
	CurrentDepth int
	TotalDepth   int

	// CurrentBreadth counts completed sub-queries at this level.
	CurrentBreadth int
	TotalBreadth   int

	// CurrentQuery is the query most recently started or completed.
	// Empty until the first sub-query begins.
	CurrentQuery string

	// TotalQueries is how many sub-queries this level generated;
	// CompletedQueries counts the ones finished so far.
	TotalQueries     int
	CompletedQueries int
}

// ProgressFunc receives progress snapshots. Callbacks run synchronously
// on the reporting goroutine; keep them fast.
type ProgressFunc func(Progress)

// tracker guards a Progress against concurrent sub-query completions.
// Sub-queries run on separate goroutines, so the counters need a mutex
// to avoid lost increments.
type tracker struct {
	mu sync.Mutex
	p  Progress
	fn ProgressFunc
}

func newTracker(totalDepth, totalBreadth int, fn ProgressFunc) *tracker {
	return &tracker{
		p: Progress{
			CurrentDepth: totalDepth,
			TotalDepth:   totalDepth,
			TotalBreadth: totalBreadth,
		},
		fn: fn,
	}
}

// publish pushes the current snapshot without mutating it. Used for the
// initial report at the start of a call.
func (t *tracker) publish() {
	t.update(func(*Progress) {})
}

// update applies a mutation under the lock and pushes a snapshot to the
// callback, if any. A nil callback makes every push a no-op.
func (t *tracker) update(mutate func(*Progress)) {
	t.mu.Lock()
	mutate(&t.p)
	snapshot := t.p
	t.mu.Unlock()

	if t.fn != nil {
		t.fn(snapshot)
	}
}
