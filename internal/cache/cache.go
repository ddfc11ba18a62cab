package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching fetched hymn pages, LLM analyses,
// and embedding vectors.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

func hashed(kind, id string) string {
	hash := sha256.Sum256([]byte(id))
	return "vedika:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}

// PageKey generates the cache key for a fetched hymn page.
func PageKey(url string) string {
	return hashed("page", url)
}

// AnalysisKey generates the cache key for an LLM analysis of a verse. The
// provider and model are part of the key so switching models never serves a
// stale analysis.
func AnalysisKey(provider, llmModel, sanskritText string) string {
	return hashed("llm", provider+"\x00"+llmModel+"\x00"+sanskritText)
}

// VectorKey generates the cache key for a stored embedding set.
func VectorKey(name string) string {
	return hashed("vec", name)
}
