package embed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/svadhyaya/vedika/internal/cache"
)

const vectorCacheTTL = 30 * 24 * time.Hour

// SaveFile writes the vectors to a JSON file.
func (v Vectors) SaveFile(path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode vectors: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write vectors: %w", err)
	}
	return nil
}

// LoadFile reads vectors from a JSON file.
func LoadFile(path string) (Vectors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}
	var v Vectors
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse vectors: %w", err)
	}
	return v, nil
}

// SaveCache stores the vectors under the named vector-cache key.
func (v Vectors) SaveCache(c cache.Cache, name string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode vectors: %w", err)
	}
	if err := c.Set(cache.VectorKey(name), data, vectorCacheTTL); err != nil {
		return fmt.Errorf("cache vectors: %w", err)
	}
	return nil
}

// LoadCache fetches vectors stored under the named vector-cache key.
func LoadCache(c cache.Cache, name string) (Vectors, bool) {
	data, ok := c.Get(cache.VectorKey(name))
	if !ok {
		return nil, false
	}
	var v Vectors
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return v, true
}
