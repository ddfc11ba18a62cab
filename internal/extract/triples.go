package extract

import (
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

// unknownAnchor marks the anchor of an empty sentence.
const unknownAnchor = "unknown"

// Accumulator collects every triple emitted across analyses, plus word
// frequencies, for corpus-level statistics. It is owned by the caller and
// passed to the extractor explicitly, so independent analyses can run
// without cross-contamination.
type Accumulator struct {
	Triples         []model.SemanticTriple
	WordFrequencies map[string]int
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		WordFrequencies: make(map[string]int),
	}
}

func (a *Accumulator) record(t model.SemanticTriple) {
	a.Triples = append(a.Triples, t)
	a.WordFrequencies[t.Word]++
}

// TripleExtractor extracts karaka triples from tokenized sentences.
type TripleExtractor struct {
	vocab *sanskrit.Vocabulary
	morph *sanskrit.Morphology
	acc   *Accumulator
}

// NewTripleExtractor creates an extractor over the given vocabulary. The
// accumulator may be nil when corpus-level tracking is not needed.
func NewTripleExtractor(vocab *sanskrit.Vocabulary, acc *Accumulator) *TripleExtractor {
	return &TripleExtractor{
		vocab: vocab,
		morph: sanskrit.NewMorphology(),
		acc:   acc,
	}
}

// Extract tokenizes the sentence and returns its ordered triple list.
func (e *TripleExtractor) Extract(sentence string) []model.SemanticTriple {
	return e.ExtractTokens(sanskrit.Tokenize(sentence))
}

// ExtractTokens produces one triple per non-anchor token, in token order.
//
// Anchor selection:
//  1. the first token whose morphology guess contains a verb root, taking
//     that token's first matched root as the verb;
//  2. otherwise the first token containing a praise/invoke substring, with
//     the fixed root "to praise";
//  3. otherwise the root "to be", anchored on the first token (or an
//     "unknown" marker for an empty sentence).
//
// The anchor token itself never produces a triple.
func (e *TripleExtractor) ExtractTokens(tokens []string) []model.SemanticTriple {
	anchor, verbRoot := e.findAnchor(tokens)

	triples := make([]model.SemanticTriple, 0, len(tokens))
	for _, token := range tokens {
		if token == anchor {
			continue
		}

		guess := e.morph.Analyze(token)
		triple := model.SemanticTriple{
			VerbRoot:   verbRoot,
			Karaka:     model.KarakaForCase(guess.Case),
			Word:       token,
			Gloss:      e.vocab.Gloss(token),
			Confidence: guess.Confidence,
		}

		triples = append(triples, triple)
		if e.acc != nil {
			e.acc.record(triple)
		}
	}

	return triples
}

// findAnchor picks the sentence's anchor token and verb root.
func (e *TripleExtractor) findAnchor(tokens []string) (anchor, verbRoot string) {
	for _, token := range tokens {
		guess := e.morph.Analyze(token)
		if guess.HasVerbRoot() {
			return token, guess.PossibleRoots[0].Root
		}
	}

	for _, token := range tokens {
		if sanskrit.HasPraiseMarker(token) {
			return token, sanskrit.RootPraise
		}
	}

	if len(tokens) == 0 {
		return unknownAnchor, sanskrit.RootBe
	}
	return tokens[0], sanskrit.RootBe
}
