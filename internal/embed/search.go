package embed

import (
	"fmt"
	"sort"

	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

// WordSimilarity pairs a word with its cosine similarity to a query word.
type WordSimilarity struct {
	Word       string  `json:"word"`
	Similarity float64 `json:"similarity"`
}

// SimilarWords returns the topK words closest to word by cosine similarity.
// An unknown word yields an empty slice.
func (v Vectors) SimilarWords(word string, topK int) []WordSimilarity {
	target, ok := v[word]
	if !ok {
		return []WordSimilarity{}
	}

	results := make([]WordSimilarity, 0, len(v))
	for other, vec := range v {
		if other == word {
			continue
		}
		results = append(results, WordSimilarity{
			Word:       other,
			Similarity: Cosine(target, vec),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Similarity != results[j].Similarity {
			return results[i].Similarity > results[j].Similarity
		}
		return results[i].Word < results[j].Word
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// HymnMatch pairs a hymn with its similarity to a search query.
type HymnMatch struct {
	Hymn       model.Hymn `json:"hymn"`
	Similarity float64    `json:"similarity"`
}

// HymnIndex holds per-hymn embedding vectors built from the word vectors.
type HymnIndex struct {
	vectors Vectors
	hymns   []model.Hymn
}

// NewHymnIndex embeds every hymn as "reference: romanized" and stores the
// vector on the hymn record. Records without a romanization are romanized
// from their Sanskrit text, so the index tokens line up with vectors
// trained over romanized text.
func NewHymnIndex(vectors Vectors, hymns []model.Hymn) *HymnIndex {
	indexed := make([]model.Hymn, len(hymns))
	copy(indexed, hymns)
	for i := range indexed {
		text := fmt.Sprintf("%s: %s", indexed[i].Reference, RomanizedText(indexed[i]))
		indexed[i].Embedding = vectors.TextVector(sanskrit.Tokenize(text))
	}
	return &HymnIndex{vectors: vectors, hymns: indexed}
}

// RomanizedText returns the hymn's romanization, deriving one from the
// Sanskrit text when the record carries none.
func RomanizedText(h model.Hymn) string {
	if h.Romanized != "" {
		return h.Romanized
	}
	return sanskrit.Romanize(h.Sanskrit)
}

// Hymns returns the indexed hymns with their embeddings filled.
func (idx *HymnIndex) Hymns() []model.Hymn {
	return idx.hymns
}

// Search embeds the query and returns the topK most similar hymns. Hymns
// without an embedding are skipped.
func (idx *HymnIndex) Search(query string, topK int) []HymnMatch {
	queryVec := idx.vectors.TextVector(sanskrit.Tokenize(query))
	if queryVec == nil {
		return []HymnMatch{}
	}

	matches := make([]HymnMatch, 0, len(idx.hymns))
	for _, h := range idx.hymns {
		if h.Embedding == nil {
			continue
		}
		matches = append(matches, HymnMatch{
			Hymn:       h,
			Similarity: Cosine(queryVec, h.Embedding),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}
