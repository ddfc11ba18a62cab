package embed

import (
	"math"
	"testing"
	"time"

	"github.com/svadhyaya/vedika/internal/cache"
	"github.com/svadhyaya/vedika/internal/model"
)

func TestTrainer_FrequenciesAndVocabulary(t *testing.T) {
	tr := NewTrainer(3)
	tr.Observe("अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्")
	tr.Observe("अग्निमीळे होतारं")

	if tr.Frequency("अग्निमीळे") != 2 {
		t.Errorf("Expected frequency 2, got %d", tr.Frequency("अग्निमीळे"))
	}
	if tr.Frequency("absent") != 0 {
		t.Errorf("Expected frequency 0 for unseen word, got %d", tr.Frequency("absent"))
	}
	if tr.VocabularySize() != 5 {
		t.Errorf("Expected vocabulary of 5, got %d", tr.VocabularySize())
	}
}

func TestBuild_Deterministic(t *testing.T) {
	build := func() Vectors {
		tr := NewTrainer(3)
		tr.Observe("अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्")
		tr.Observe("पुरोहितं होतारं रत्नधातमम्")
		return tr.Build(50, 42)
	}

	a := build()
	b := build()
	if len(a) != len(b) {
		t.Fatalf("Expected equal vocabularies, got %d and %d", len(a), len(b))
	}
	for word, vec := range a {
		other := b[word]
		for i := range vec {
			if vec[i] != other[i] {
				t.Fatalf("Expected identical vectors for %s, differ at %d", word, i)
			}
		}
	}
}

func TestBuild_SeedChangesVectors(t *testing.T) {
	tr := NewTrainer(3)
	tr.Observe("अग्निमीळे पुरोहितं")

	a := tr.Build(50, 1)
	b := tr.Build(50, 2)

	same := true
	for i, v := range a["अग्निमीळे"] {
		if v != b["अग्निमीळे"][i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected different seeds to yield different vectors")
	}
}

func TestBuild_VectorsAreNormalized(t *testing.T) {
	tr := NewTrainer(3)
	tr.Observe("अग्निमीळे पुरोहितं यज्ञस्य")

	for word, vec := range tr.Build(100, 1) {
		var norm float64
		for _, v := range vec {
			norm += v * v
		}
		if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
			t.Errorf("Expected unit norm for %s, got %f", word, math.Sqrt(norm))
		}
	}
}

func TestCosine_Bounds(t *testing.T) {
	a := []float64{1, 0}
	if got := Cosine(a, a); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected self-similarity 1.0, got %f", got)
	}
	if got := Cosine(a, []float64{0, 1}); math.Abs(got) > 1e-9 {
		t.Errorf("Expected orthogonal similarity 0, got %f", got)
	}
	if got := Cosine(a, []float64{0, 0}); got != 0 {
		t.Errorf("Expected 0 for a zero vector, got %f", got)
	}
	if got := Cosine(a, []float64{1, 0, 0}); got != 0 {
		t.Errorf("Expected 0 for mismatched lengths, got %f", got)
	}
	if got := Cosine(nil, nil); got != 0 {
		t.Errorf("Expected 0 for empty vectors, got %f", got)
	}
}

func TestTextVector_UnknownTokens(t *testing.T) {
	v := Vectors{"अग्नि": []float64{1, 0}}

	if vec := v.TextVector([]string{"unknown", "words"}); vec != nil {
		t.Errorf("Expected nil for all-unknown text, got %v", vec)
	}

	vec := v.TextVector([]string{"अग्नि", "unknown"})
	if vec == nil {
		t.Fatal("Expected a vector when one token is known")
	}
	if math.Abs(vec[0]-1.0) > 1e-9 {
		t.Errorf("Expected the known token's vector, got %v", vec)
	}
}

func TestSimilarWords_OrderingAndCap(t *testing.T) {
	v := Vectors{
		"a": {1, 0},
		"b": {1, 0},
		"c": {0, 1},
		"d": {-1, 0},
	}

	results := v.SimilarWords("a", 2)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Word != "b" {
		t.Errorf("Expected 'b' closest, got %s", results[0].Word)
	}
	if results[1].Word != "c" {
		t.Errorf("Expected 'c' second, got %s", results[1].Word)
	}

	if got := v.SimilarWords("missing", 5); len(got) != 0 {
		t.Errorf("Expected empty result for unknown word, got %v", got)
	}
}

func TestHymnIndex_Search(t *testing.T) {
	tr := NewTrainer(3)
	hymns := []model.Hymn{
		{Reference: "RV 1.1", Romanized: "agnim ile purohitam"},
		{Reference: "RV 1.2", Romanized: "vayav a yahi darsata"},
	}
	for _, h := range hymns {
		tr.Observe(h.Romanized)
	}
	vectors := tr.Build(50, 1)

	idx := NewHymnIndex(vectors, hymns)
	for _, h := range idx.Hymns() {
		if h.Embedding == nil {
			t.Fatalf("Expected embedding for %s", h.Reference)
		}
	}

	matches := idx.Search("agnim purohitam", 1)
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	if matches[0].Hymn.Reference != "RV 1.1" {
		t.Errorf("Expected RV 1.1 to rank first, got %s", matches[0].Hymn.Reference)
	}

	if got := idx.Search("nothing known here at all xyz", 5); len(got) != 0 {
		t.Errorf("Expected empty result for an unembeddable query, got %d matches", len(got))
	}
}

func TestVectors_CacheRoundTrip(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	v := Vectors{"अग्नि": []float64{0.6, 0.8}}

	if err := v.SaveCache(c, "corpus-2"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded, ok := LoadCache(c, "corpus-2")
	if !ok {
		t.Fatal("Expected cached vectors")
	}
	if len(loaded["अग्नि"]) != 2 || loaded["अग्नि"][0] != 0.6 {
		t.Errorf("Expected the stored vector back, got %v", loaded["अग्नि"])
	}

	if _, ok := LoadCache(c, "corpus-3"); ok {
		t.Error("Expected a miss for an uncached name")
	}
}
