// Package pipeline orchestrates verse analysis, corpus processing, and
// knowledge graph construction.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/svadhyaya/vedika/internal/cache"
	"github.com/svadhyaya/vedika/internal/corpus"
	"github.com/svadhyaya/vedika/internal/embed"
	"github.com/svadhyaya/vedika/internal/extract"
	"github.com/svadhyaya/vedika/internal/graph"
	"github.com/svadhyaya/vedika/internal/llm"
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
	"github.com/svadhyaya/vedika/internal/worker"
)

// Pipeline wires the tokenizer, morphology, triple extraction, and graph
// construction together. One pipeline carries one accumulator, so corpus
// frequencies aggregate across every verse it analyzes.
type Pipeline struct {
	vocab       *sanskrit.Vocabulary
	extractor   *extract.TripleExtractor
	classifier  *extract.FieldClassifier
	builder     *graph.Builder
	accumulator *extract.Accumulator
	themes      *corpus.ThemeAnalyzer
	analyzer    *llm.Analyzer // nil when the LLM path is disabled
	store       cache.Cache   // nil when caching is disabled
	config      *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	vocab := sanskrit.NewVocabulary()
	acc := extract.NewAccumulator()

	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var analyzer *llm.Analyzer
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else if provider != nil {
			analyzer = llm.NewAnalyzer(provider, cfg.LLM.Model, store)
		}
	}

	return &Pipeline{
		vocab:       vocab,
		extractor:   extract.NewTripleExtractor(vocab, acc),
		classifier:  extract.NewFieldClassifier(vocab),
		builder:     graph.NewBuilder(vocab),
		accumulator: acc,
		themes:      corpus.NewThemeAnalyzer(),
		analyzer:    analyzer,
		store:       store,
		config:      cfg,
	}
}

// Accumulator exposes the corpus-wide triple and frequency tallies.
func (p *Pipeline) Accumulator() *extract.Accumulator {
	return p.accumulator
}

// HasLLM reports whether the LLM analysis path is configured.
func (p *Pipeline) HasLLM() bool {
	return p.analyzer != nil
}

// AnalyzeVerse runs the heuristic analysis of one verse. The reference and
// translation are carried onto the record unchanged.
func (p *Pipeline) AnalyzeVerse(sanskritText, reference, translation string) model.Analysis {
	tokens := sanskrit.Tokenize(sanskritText)
	triples := p.extractor.ExtractTokens(tokens)

	return model.Analysis{
		Reference:     reference,
		Sanskrit:      sanskritText,
		Romanized:     sanskrit.Romanize(sanskritText),
		Translation:   translation,
		Triples:       triples,
		SemanticField: p.classifier.ClassifyTokens(tokens),
		EntitiesFound: p.classifier.EntitiesFound(triples),
		Confidence:    model.MeanConfidence(triples),
	}
}

// AnalyzeCorpus analyzes every hymn in order and returns one record per
// hymn.
func (p *Pipeline) AnalyzeCorpus(hymns []model.Hymn) []model.Analysis {
	analyses := make([]model.Analysis, 0, len(hymns))
	for _, h := range hymns {
		analyses = append(analyses, p.AnalyzeVerse(h.Sanskrit, h.Reference, ""))
	}
	return analyses
}

// BuildGraph folds analyses into a knowledge graph. The fold is sequential;
// analysis order decides verse list order in the graph.
func (p *Pipeline) BuildGraph(analyses []model.Analysis) *model.KnowledgeGraph {
	return p.builder.Build(analyses)
}

// ClassifyThemes fills the derived theme fields on every hymn.
func (p *Pipeline) ClassifyThemes(hymns []model.Hymn) {
	p.themes.AnalyzeAll(hymns)
}

// TrainEmbeddings builds word vectors over the hymns' romanized text using
// the configured dimension, window, and seed. The hymn index embeds the
// same romanized rendering, so trained vocabulary and index tokens match.
func (p *Pipeline) TrainEmbeddings(hymns []model.Hymn) embed.Vectors {
	trainer := embed.NewTrainer(p.config.Embedding.ContextWindow)
	for _, h := range hymns {
		trainer.Observe(embed.RomanizedText(h))
	}
	return trainer.Build(p.config.Embedding.Dimension, p.config.Embedding.Seed)
}

// AnalyzeVerseLLM analyzes one verse through the configured LLM provider.
func (p *Pipeline) AnalyzeVerseLLM(ctx context.Context, sanskritText, translation, reference string) (*model.LLMAnalysis, error) {
	if p.analyzer == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}
	return p.analyzer.AnalyzeVerse(ctx, sanskritText, translation, reference)
}

// AnalyzeCorpusLLM runs the LLM analysis for every hymn on the worker pool
// and returns the records in input order. Provider failures appear as
// degraded records, not errors.
func (p *Pipeline) AnalyzeCorpusLLM(ctx context.Context, hymns []model.Hymn) ([]model.LLMAnalysis, error) {
	if p.analyzer == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	batch := worker.NewBatchAnalyzer(p.analyzer, p.config.Concurrency.Workers)
	results := batch.ProcessHymns(ctx, hymns)

	analyses := make([]model.LLMAnalysis, 0, len(results))
	for _, r := range results {
		if r.Error != nil {
			return nil, r.Error
		}
		analyses = append(analyses, *r.Analysis)
	}
	return analyses, nil
}

// Cache exposes the pipeline's cache for embedding persistence. Nil when
// caching is disabled.
func (p *Pipeline) Cache() cache.Cache {
	return p.store
}
