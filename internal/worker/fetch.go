package worker

import (
	"context"
	"sort"

	"github.com/svadhyaya/vedika/internal/model"
)

// HymnFetcher fills one hymn record from its source URL.
type HymnFetcher interface {
	FetchHymn(ctx context.Context, h *model.Hymn) error
}

// FetchJob is one hymn queued for fetching.
type FetchJob struct {
	Index   int // position in the input slice, used to restore order
	Hymn    model.Hymn
	Fetcher HymnFetcher
}

// Execute runs the fetch. The hymn is copied in and out, so jobs never
// share a record.
func (j *FetchJob) Execute(ctx context.Context) Result {
	err := j.Fetcher.FetchHymn(ctx, &j.Hymn)
	return &FetchResult{
		Index: j.Index,
		Hymn:  j.Hymn,
		Error: err,
	}
}

// FetchResult is the outcome of one hymn fetch.
type FetchResult struct {
	Index int
	Hymn  model.Hymn
	Error error
}

// GetError returns the job error, if any.
func (r *FetchResult) GetError() error {
	return r.Error
}

// BatchFetcher fetches many hymns concurrently. The per-host rate limiter
// inside the fetcher keeps the parallelism polite.
type BatchFetcher struct {
	fetcher     HymnFetcher
	concurrency int
}

// NewBatchFetcher creates a batch fetcher.
func NewBatchFetcher(fetcher HymnFetcher, concurrency int) *BatchFetcher {
	return &BatchFetcher{
		fetcher:     fetcher,
		concurrency: concurrency,
	}
}

// ProcessHymns fetches the hymns on the pool and returns results in input
// order.
func (b *BatchFetcher) ProcessHymns(ctx context.Context, hymns []model.Hymn) []*FetchResult {
	if len(hymns) == 0 {
		return []*FetchResult{}
	}

	pool := NewPoolBuffered(b.concurrency, len(hymns))
	pool.Start()

	for i, hymn := range hymns {
		if ctx.Err() != nil {
			pool.Shutdown()
			break
		}
		pool.Submit(&FetchJob{
			Index:   i,
			Hymn:    hymn,
			Fetcher: b.fetcher,
		})
	}

	raw := pool.Wait()
	results := make([]*FetchResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*FetchResult))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	return results
}
