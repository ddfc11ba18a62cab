package extract

import (
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

// GeneralField is returned when no token of a sentence is in the vocabulary.
const GeneralField = "general"

// FieldClassifier assigns a semantic domain to sentences by majority vote
// over vocabulary-recognized tokens.
type FieldClassifier struct {
	vocab *sanskrit.Vocabulary
}

// NewFieldClassifier creates a classifier over the given vocabulary.
func NewFieldClassifier(vocab *sanskrit.Vocabulary) *FieldClassifier {
	return &FieldClassifier{vocab: vocab}
}

// Classify tokenizes the sentence and returns its majority domain.
func (c *FieldClassifier) Classify(sentence string) string {
	return c.ClassifyTokens(sanskrit.Tokenize(sentence))
}

// ClassifyTokens tallies the domain of every vocabulary token and returns
// the domain with the highest tally. Ties break toward the domain first
// encountered in token order, which keeps the result deterministic. Returns
// "general" when no token is recognized.
func (c *FieldClassifier) ClassifyTokens(tokens []string) string {
	tally := make(map[string]int)
	var order []string // domains in first-seen order

	for _, token := range tokens {
		entry, ok := c.vocab.Lookup(token)
		if !ok {
			continue
		}
		if _, seen := tally[entry.Domain]; !seen {
			order = append(order, entry.Domain)
		}
		tally[entry.Domain]++
	}

	if len(order) == 0 {
		return GeneralField
	}

	best := order[0]
	for _, domain := range order[1:] {
		if tally[domain] > tally[best] {
			best = domain
		}
	}
	return best
}

// EntitiesFound counts how many triple words are in the vocabulary.
func (c *FieldClassifier) EntitiesFound(triples []model.SemanticTriple) int {
	count := 0
	for _, t := range triples {
		if c.vocab.Contains(t.Word) {
			count++
		}
	}
	return count
}
