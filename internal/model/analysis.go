package model

// Analysis is the complete heuristic analysis of a single verse or sentence.
// Read-only once produced by the pipeline.
type Analysis struct {
	Reference     string           `json:"reference"`             // verse id, caller-supplied
	Sanskrit      string           `json:"sanskrit"`              // source text as given
	Romanized     string           `json:"romanized"`             // IAST transliteration
	Translation   string           `json:"translation,omitempty"` // optional English translation
	Triples       []SemanticTriple `json:"triples"`
	SemanticField string           `json:"semantic_field"` // majority domain over known tokens
	EntitiesFound int              `json:"entities_found"` // triple words present in the vocabulary
	Confidence    float64          `json:"confidence"`     // mean triple confidence, 0.0 when no triples
}

// MeanConfidence computes the mean confidence over a triple list, 0.0 for an
// empty list.
func MeanConfidence(triples []SemanticTriple) float64 {
	if len(triples) == 0 {
		return 0.0
	}
	var sum float64
	for _, t := range triples {
		sum += t.Confidence
	}
	return sum / float64(len(triples))
}
