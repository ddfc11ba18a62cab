package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/svadhyaya/vedika/internal/cache"
	"github.com/svadhyaya/vedika/internal/model"
)

// fakeProvider returns canned responses and counts calls.
type fakeProvider struct {
	content   string
	err       error
	calls     int
	lastModel string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) IsAvailable(ctx context.Context) bool { return true }

func (p *fakeProvider) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	p.calls++
	p.lastModel = req.Model
	if p.err != nil {
		return nil, p.err
	}
	return &AnalyzeResponse{Content: p.content, Model: "fake-model"}, nil
}

const validAnalysisJSON = `{
	"morphology": {"अग्निम्": "accusative singular"},
	"karaka_relations": ["अग्निम् is karma of ईळे"],
	"semantic_field": "ritual",
	"triples": [{"verb": "ईळे", "relation": "कर्म", "argument": "अग्निम्"}],
	"interpretation": "The speaker praises Agni.",
	"confidence": 0.9
}`

func TestAnalyzer_ValidResponse(t *testing.T) {
	provider := &fakeProvider{content: validAnalysisJSON}
	a := NewAnalyzer(provider, "", nil)

	analysis, err := a.AnalyzeVerse(context.Background(), "अग्निमीळे", "I praise Agni", "RV 1.1.1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if analysis.SemanticField != "ritual" {
		t.Errorf("Expected semantic field 'ritual', got %q", analysis.SemanticField)
	}
	if analysis.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", analysis.Confidence)
	}
	if len(analysis.Triples) != 1 || analysis.Triples[0].Argument != "अग्निम्" {
		t.Errorf("Expected one triple for अग्निम्, got %v", analysis.Triples)
	}
	if analysis.Reference != "RV 1.1.1" {
		t.Errorf("Expected reference RV 1.1.1, got %q", analysis.Reference)
	}
	if analysis.Provider != "fake" || analysis.Model != "fake-model" {
		t.Errorf("Expected provider/model stamped, got %q/%q", analysis.Provider, analysis.Model)
	}
}

func TestAnalyzer_MalformedContent(t *testing.T) {
	provider := &fakeProvider{content: "The verse praises Agni, the priest of the sacrifice."}
	a := NewAnalyzer(provider, "", nil)

	analysis, err := a.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if analysis.SemanticField != SemanticFieldUnknown {
		t.Errorf("Expected semantic field %q, got %q", SemanticFieldUnknown, analysis.SemanticField)
	}
	if analysis.Confidence != 0.7 {
		t.Errorf("Expected confidence 0.7, got %f", analysis.Confidence)
	}
	if analysis.Interpretation != provider.content {
		t.Errorf("Expected the raw content as interpretation, got %q", analysis.Interpretation)
	}
	if analysis.Triples == nil || analysis.Morphology == nil || analysis.KarakaRelations == nil {
		t.Error("Expected empty, non-nil collections on a degraded record")
	}
}

func TestAnalyzer_ProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	a := NewAnalyzer(provider, "", nil)

	analysis, err := a.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if analysis.SemanticField != SemanticFieldError {
		t.Errorf("Expected semantic field %q, got %q", SemanticFieldError, analysis.SemanticField)
	}
	if analysis.Confidence != 0.0 {
		t.Errorf("Expected confidence 0.0, got %f", analysis.Confidence)
	}
	if analysis.Reference != "RV 1.1.1" {
		t.Errorf("Expected reference carried through, got %q", analysis.Reference)
	}
}

func TestAnalyzer_CancelledContext(t *testing.T) {
	provider := &fakeProvider{err: context.Canceled}
	a := NewAnalyzer(provider, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.AnalyzeVerse(ctx, "अग्निमीळे", "", "RV 1.1.1"); err == nil {
		t.Error("Expected the cancellation to surface as an error")
	}
}

func TestAnalyzer_CachesByVerse(t *testing.T) {
	provider := &fakeProvider{content: validAnalysisJSON}
	analyses := cache.NewMemoryCache(time.Minute, time.Minute)
	a := NewAnalyzer(provider, "", analyses)

	first, err := a.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := a.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 10.90.1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call, got %d", provider.calls)
	}
	if first.Reference != "RV 1.1.1" {
		t.Errorf("Expected first reference RV 1.1.1, got %q", first.Reference)
	}
	// The cached record takes the caller's reference, not the stored one.
	if second.Reference != "RV 10.90.1" {
		t.Errorf("Expected cached record restamped to RV 10.90.1, got %q", second.Reference)
	}
}

func TestAnalyzer_CacheKeyedByModel(t *testing.T) {
	provider := &fakeProvider{content: validAnalysisJSON}
	analyses := cache.NewMemoryCache(time.Minute, time.Minute)

	first := NewAnalyzer(provider, "model-a", analyses)
	second := NewAnalyzer(provider, "model-b", analyses)

	if _, err := first.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := second.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Different models never share a cache slot.
	if provider.calls != 2 {
		t.Errorf("Expected 2 provider calls across models, got %d", provider.calls)
	}

	// The same model does.
	if _, err := first.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.2"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("Expected the repeat call served from cache, got %d calls", provider.calls)
	}
}

func TestAnalyzer_PassesConfiguredModel(t *testing.T) {
	provider := &fakeProvider{content: validAnalysisJSON}
	a := NewAnalyzer(provider, "model-a", nil)

	if _, err := a.AnalyzeVerse(context.Background(), "अग्निमीळे", "", "RV 1.1.1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider.lastModel != "model-a" {
		t.Errorf("Expected the configured model on the request, got %q", provider.lastModel)
	}
}

func TestBuildPrompt_NamesKarakaRoles(t *testing.T) {
	prompt := BuildPrompt("अग्निमीळे पुरोहितं", "I praise Agni")

	for _, role := range []model.Karaka{model.KarakaKarta, model.KarakaKarma, model.KarakaKarana} {
		if !strings.Contains(prompt, string(role)) {
			t.Errorf("Expected prompt to name %s", role)
		}
	}
	if !strings.Contains(prompt, "अग्निमीळे पुरोहितं") {
		t.Error("Expected prompt to carry the verse text")
	}
	if !strings.Contains(prompt, "I praise Agni") {
		t.Error("Expected prompt to carry the translation context")
	}
}
