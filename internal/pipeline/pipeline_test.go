package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/svadhyaya/vedika/internal/embed"
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestPipeline_AnalyzeVerse(t *testing.T) {
	p := NewPipeline(testConfig())

	a := p.AnalyzeVerse("अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्", "RV 1.1.1a", "I praise Agni")

	if a.Reference != "RV 1.1.1a" {
		t.Errorf("Expected reference carried through, got %q", a.Reference)
	}
	if a.Translation != "I praise Agni" {
		t.Errorf("Expected translation carried through, got %q", a.Translation)
	}
	if a.Romanized == "" {
		t.Error("Expected romanization filled")
	}
	if len(a.Triples) != 3 {
		t.Fatalf("Expected 3 triples, got %d", len(a.Triples))
	}
	for _, triple := range a.Triples {
		if triple.VerbRoot != "यज्" {
			t.Errorf("Expected verb root यज्, got %s", triple.VerbRoot)
		}
		if triple.Word == "यज्ञस्य" {
			t.Error("Expected the anchor word excluded from triples")
		}
	}
	if a.Triples[0].Karaka != model.KarakaAdhikarana {
		t.Errorf("Expected अधिकरण for the locative word, got %s", a.Triples[0].Karaka)
	}

	expected := 0.4 / 3
	if math.Abs(a.Confidence-expected) > 1e-9 {
		t.Errorf("Expected mean confidence %.4f, got %.4f", expected, a.Confidence)
	}
}

func TestPipeline_AccumulatesAcrossVerses(t *testing.T) {
	p := NewPipeline(testConfig())

	p.AnalyzeVerse("अग्निमीळे यज्ञस्य", "RV 1.1.1a", "")
	p.AnalyzeVerse("अग्निमीळे यज्ञस्य", "RV 1.1.1b", "")

	if got := p.Accumulator().WordFrequencies["अग्निमीळे"]; got != 2 {
		t.Errorf("Expected अग्निमीळे counted twice, got %d", got)
	}
}

func TestPipeline_AnalyzeCorpusAndBuildGraph(t *testing.T) {
	p := NewPipeline(testConfig())
	hymns := []model.Hymn{
		{Book: 1, Hymn: 1, Reference: "RV 1.1", Sanskrit: "अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्", Status: model.HymnStatusComplete},
		{Book: 1, Hymn: 2, Reference: "RV 1.2", Sanskrit: "अग्निमीळे यज्ञस्य", Status: model.HymnStatusComplete},
	}

	analyses := p.AnalyzeCorpus(hymns)
	if len(analyses) != 2 {
		t.Fatalf("Expected 2 analyses, got %d", len(analyses))
	}
	if analyses[0].Reference != "RV 1.1" || analyses[1].Reference != "RV 1.2" {
		t.Errorf("Expected analyses in hymn order, got %q then %q",
			analyses[0].Reference, analyses[1].Reference)
	}

	g := p.BuildGraph(analyses)
	entity, ok := g.Entities["अग्निमीळे"]
	if !ok {
		t.Fatal("Expected an entity for अग्निमीळे")
	}
	if len(entity.Verses) != 2 {
		t.Errorf("Expected अग्निमीळे in both verses, got %v", entity.Verses)
	}
	if len(g.Relationships) == 0 {
		t.Error("Expected relationships in the graph")
	}
}

func TestPipeline_TrainEmbeddingsDeterministic(t *testing.T) {
	hymns := []model.Hymn{
		{Book: 1, Hymn: 1, Reference: "RV 1.1", Sanskrit: "अग्निमीळे पुरोहितं यज्ञस्य", Status: model.HymnStatusComplete},
	}

	a := NewPipeline(testConfig()).TrainEmbeddings(hymns)
	b := NewPipeline(testConfig()).TrainEmbeddings(hymns)

	if len(a) != 3 {
		t.Fatalf("Expected 3 word vectors, got %d", len(a))
	}
	for word, vec := range a {
		for i := range vec {
			if vec[i] != b[word][i] {
				t.Fatalf("Expected identical vectors for %s across runs", word)
			}
		}
	}
}

func TestPipeline_TrainEmbeddingsFeedsHymnSearch(t *testing.T) {
	p := NewPipeline(testConfig())
	hymns := []model.Hymn{
		{Book: 1, Hymn: 1, Reference: "RV 1.1", Sanskrit: "अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्", Status: model.HymnStatusComplete},
		{Book: 1, Hymn: 2, Reference: "RV 1.2", Sanskrit: "वायो तव प्रपृञ्चती", Status: model.HymnStatusComplete},
	}

	vectors := p.TrainEmbeddings(hymns)
	idx := embed.NewHymnIndex(vectors, hymns)

	// Training and indexing share the romanized rendering, so every hymn
	// gets an embedding.
	for _, h := range idx.Hymns() {
		if h.Embedding == nil {
			t.Fatalf("Expected an embedding for %s", h.Reference)
		}
	}

	query := sanskrit.Romanize("अग्निमीळे")
	matches := idx.Search(query, 1)
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Hymn.Reference != "RV 1.1" {
		t.Errorf("Expected RV 1.1 to rank first, got %s", matches[0].Hymn.Reference)
	}
}

func TestPipeline_ClassifyThemes(t *testing.T) {
	p := NewPipeline(testConfig())
	hymns := []model.Hymn{
		{Book: 1, Hymn: 1, Reference: "RV 1.1", Sanskrit: "अग्निमीळे यज्ञस्य", Romanized: "agnim ile yajnasya"},
	}

	p.ClassifyThemes(hymns)

	if hymns[0].DeityFocus != "agni" {
		t.Errorf("Expected deity focus agni, got %q", hymns[0].DeityFocus)
	}
	if hymns[0].RitualContext != "sacrifice" {
		t.Errorf("Expected sacrifice context, got %q", hymns[0].RitualContext)
	}
}

func TestPipeline_LLMDisabled(t *testing.T) {
	p := NewPipeline(testConfig())

	if p.HasLLM() {
		t.Error("Expected no LLM path without a provider")
	}
	if _, err := p.AnalyzeVerseLLM(context.Background(), "अग्निमीळे", "", "RV 1.1.1"); err == nil {
		t.Error("Expected an error when no provider is configured")
	}
}
