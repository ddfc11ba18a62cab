package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/svadhyaya/vedika/internal/cache"
	"github.com/svadhyaya/vedika/internal/model"
)

const analysisCacheTTL = 30 * 24 * time.Hour

// SemanticFieldUnknown marks an analysis whose content could not be parsed.
const SemanticFieldUnknown = "unknown"

// SemanticFieldError marks an analysis that failed at the transport level.
const SemanticFieldError = "error"

// Analyzer turns provider output into model.LLMAnalysis records. Provider
// failures never surface as errors; they become degraded records so a batch
// run over a corpus always completes.
type Analyzer struct {
	provider Provider
	model    string // configured model; also part of the cache key
	analyses cache.Cache
}

// NewAnalyzer creates an analyzer for the configured model. The cache may
// be nil.
func NewAnalyzer(provider Provider, llmModel string, analyses cache.Cache) *Analyzer {
	return &Analyzer{provider: provider, model: llmModel, analyses: analyses}
}

// AnalyzeVerse analyzes one Sanskrit verse. The translation feeds the
// prompt context; the reference is carried onto the record. The error
// return is non-nil only on context cancellation.
func (a *Analyzer) AnalyzeVerse(ctx context.Context, sanskritText, translation, reference string) (*model.LLMAnalysis, error) {
	req := AnalyzeRequest{
		SanskritText: sanskritText,
		Context:      translation,
		Model:        a.model,
	}

	key := cache.AnalysisKey(a.provider.Name(), a.model, sanskritText)
	if a.analyses != nil {
		if data, ok := a.analyses.Get(key); ok {
			var cached model.LLMAnalysis
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.Reference = reference
				return &cached, nil
			}
		}
	}

	resp, err := a.provider.Analyze(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return a.errorRecord(reference, err), nil
	}

	analysis := parseAnalysis(resp.Content)
	analysis.Reference = reference
	analysis.Provider = a.provider.Name()
	analysis.Model = resp.Model

	if a.analyses != nil {
		if data, err := json.Marshal(analysis); err == nil {
			_ = a.analyses.Set(key, data, analysisCacheTTL)
		}
	}
	return analysis, nil
}

// parseAnalysis decodes the model's JSON. Content that is not valid JSON
// becomes a degraded record keeping the raw text as the interpretation.
func parseAnalysis(content string) *model.LLMAnalysis {
	var analysis model.LLMAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return &model.LLMAnalysis{
			Morphology:      map[string]string{},
			KarakaRelations: []string{},
			SemanticField:   SemanticFieldUnknown,
			Triples:         []model.LLMTriple{},
			Interpretation:  content,
			Confidence:      0.7,
		}
	}

	if analysis.Morphology == nil {
		analysis.Morphology = map[string]string{}
	}
	if analysis.KarakaRelations == nil {
		analysis.KarakaRelations = []string{}
	}
	if analysis.Triples == nil {
		analysis.Triples = []model.LLMTriple{}
	}
	return &analysis
}

func (a *Analyzer) errorRecord(reference string, err error) *model.LLMAnalysis {
	return &model.LLMAnalysis{
		Morphology:      map[string]string{},
		KarakaRelations: []string{},
		SemanticField:   SemanticFieldError,
		Triples:         []model.LLMTriple{},
		Interpretation:  fmt.Sprintf("Analysis failed: %v", err),
		Confidence:      0.0,
		Reference:       reference,
		Provider:        a.provider.Name(),
	}
}
