// Package embed builds co-occurrence word embeddings for Sanskrit text and
// serves similarity queries over words and hymns.
package embed

import (
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

// Trainer accumulates word frequencies and a co-occurrence matrix from
// tokenized verses.
type Trainer struct {
	window      int
	frequencies map[string]int
	contexts    map[string]map[string]int
}

// NewTrainer creates a trainer with the given context window (words on each
// side of the target).
func NewTrainer(window int) *Trainer {
	if window <= 0 {
		window = 3
	}
	return &Trainer{
		window:      window,
		frequencies: make(map[string]int),
		contexts:    make(map[string]map[string]int),
	}
}

// Observe tokenizes the text and folds it into the frequency and
// co-occurrence tallies.
func (t *Trainer) Observe(text string) {
	t.ObserveTokens(sanskrit.Tokenize(text))
}

// ObserveTokens folds an already tokenized verse into the tallies.
func (t *Trainer) ObserveTokens(tokens []string) {
	for i, token := range tokens {
		t.frequencies[token]++

		lo := i - t.window
		if lo < 0 {
			lo = 0
		}
		hi := i + t.window
		if hi > len(tokens)-1 {
			hi = len(tokens) - 1
		}
		for j := lo; j <= hi; j++ {
			if i == j {
				continue
			}
			ctx := t.contexts[token]
			if ctx == nil {
				ctx = make(map[string]int)
				t.contexts[token] = ctx
			}
			ctx[tokens[j]]++
		}
	}
}

// Frequency returns how often the word was observed.
func (t *Trainer) Frequency(word string) int {
	return t.frequencies[word]
}

// VocabularySize returns the number of distinct observed words.
func (t *Trainer) VocabularySize() int {
	return len(t.frequencies)
}
