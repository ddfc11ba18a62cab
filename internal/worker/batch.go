package worker

import (
	"context"
	"sort"

	"github.com/svadhyaya/vedika/internal/model"
)

// VerseAnalyzer analyzes one verse through an external collaborator (the
// LLM path). Implementations return a degraded-but-valid record on provider
// failure rather than an error; the error return covers context
// cancellation only.
type VerseAnalyzer interface {
	AnalyzeVerse(ctx context.Context, sanskritText, translation, reference string) (*model.LLMAnalysis, error)
}

// AnalyzeJob is one hymn queued for LLM analysis.
type AnalyzeJob struct {
	Index    int // position in the input slice, used to restore order
	Hymn     model.Hymn
	Analyzer VerseAnalyzer
}

// Execute runs the analysis.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	analysis, err := j.Analyzer.AnalyzeVerse(ctx, j.Hymn.Sanskrit, "", j.Hymn.Reference)
	return &AnalyzeResult{
		Index:    j.Index,
		Hymn:     j.Hymn,
		Analysis: analysis,
		Error:    err,
	}
}

// AnalyzeResult is the outcome of one hymn analysis.
type AnalyzeResult struct {
	Index    int
	Hymn     model.Hymn
	Analysis *model.LLMAnalysis
	Error    error
}

// GetError returns the job error, if any.
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchAnalyzer runs LLM analyses for many hymns concurrently. Results are
// returned in input order so the downstream graph fold stays deterministic.
type BatchAnalyzer struct {
	analyzer    VerseAnalyzer
	concurrency int
}

// NewBatchAnalyzer creates a batch analyzer.
func NewBatchAnalyzer(analyzer VerseAnalyzer, concurrency int) *BatchAnalyzer {
	return &BatchAnalyzer{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessHymns analyzes the hymns on the pool and returns results in input
// order.
func (b *BatchAnalyzer) ProcessHymns(ctx context.Context, hymns []model.Hymn) []*AnalyzeResult {
	if len(hymns) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolBuffered(b.concurrency, len(hymns))
	pool.Start()

	for i, hymn := range hymns {
		if ctx.Err() != nil {
			pool.Shutdown()
			break
		}
		pool.Submit(&AnalyzeJob{
			Index:    i,
			Hymn:     hymn,
			Analyzer: b.analyzer,
		})
	}

	raw := pool.Wait()
	results := make([]*AnalyzeResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*AnalyzeResult))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	return results
}
