package embed

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// Vectors maps words to their embedding vectors.
type Vectors map[string][]float64

const contextWeight = 0.01

// Build creates one embedding per observed word. Each vector starts from a
// Gaussian base seeded by the word itself combined with seed, so the result
// does not depend on map iteration order. Co-occurrence counts then shift
// the hash bucket of each context word, and the vector is L2-normalized.
func (t *Trainer) Build(dim int, seed int64) Vectors {
	if dim <= 0 {
		dim = 100
	}

	vectors := make(Vectors, len(t.frequencies))
	for word := range t.frequencies {
		rng := rand.New(rand.NewSource(wordSeed(word, seed)))

		vec := make([]float64, dim)
		for i := range vec {
			vec[i] = rng.NormFloat64() * 0.1
		}

		adjustment := make([]float64, dim)
		total := 0
		for ctxWord, count := range t.contexts[word] {
			if t.frequencies[ctxWord] == 0 {
				continue
			}
			bucket := int(hashWord(ctxWord) % uint64(dim))
			adjustment[bucket] += float64(count) * contextWeight
			total += count
		}
		if total > 0 {
			for i := range vec {
				vec[i] += adjustment[i] / float64(total)
			}
		}

		normalize(vec)
		vectors[word] = vec
	}

	return vectors
}

func wordSeed(word string, seed int64) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(word))
	return int64(h.Sum64()) ^ seed
}

func hashWord(word string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(word))
	return h.Sum64()
}

func normalize(vec []float64) {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return
	}
	for i := range vec {
		vec[i] /= norm
	}
}

// Cosine returns the cosine similarity of two vectors, 0 when either is
// zero or the lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TextVector averages the vectors of the text's known tokens and
// normalizes the result. Unknown tokens are skipped; an all-unknown text
// yields nil.
func (v Vectors) TextVector(tokens []string) []float64 {
	var sum []float64
	matched := 0
	for _, token := range tokens {
		vec, ok := v[token]
		if !ok {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(vec))
		}
		for i := range vec {
			sum[i] += vec[i]
		}
		matched++
	}
	if matched == 0 {
		return nil
	}

	for i := range sum {
		sum[i] /= float64(matched)
	}
	normalize(sum)
	return sum
}
