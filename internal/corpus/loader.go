// Package corpus loads, fetches, and classifies Rig Veda hymn records.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/svadhyaya/vedika/internal/model"
)

// Load reads a hymn corpus from a JSON array file. Records whose status is
// not "complete" or whose Sanskrit text is empty are skipped, not errors.
// A record missing book, hymn, or reference makes the whole load fail.
func Load(path string) ([]model.Hymn, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var records []model.Hymn
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	hymns := make([]model.Hymn, 0, len(records))
	for i, rec := range records {
		if rec.Book == 0 || rec.Hymn == 0 || rec.Reference == "" {
			return nil, fmt.Errorf("corpus record %d: missing book, hymn, or reference", i)
		}
		if rec.Status != model.HymnStatusComplete || rec.Sanskrit == "" {
			continue
		}
		hymns = append(hymns, rec)
	}

	return hymns, nil
}

// LoadAll reads every record regardless of status. The fetch command uses
// it to find the incomplete records worth fetching.
func LoadAll(path string) ([]model.Hymn, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var records []model.Hymn
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	for i, rec := range records {
		if rec.Book == 0 || rec.Hymn == 0 || rec.Reference == "" {
			return nil, fmt.Errorf("corpus record %d: missing book, hymn, or reference", i)
		}
	}
	return records, nil
}

// Save writes hymns back out as a JSON array. Embeddings are stripped; they
// persist separately through the vector cache.
func Save(path string, hymns []model.Hymn) error {
	out := make([]model.Hymn, len(hymns))
	copy(out, hymns)
	for i := range out {
		out[i].Embedding = nil
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	return nil
}
