package model

// Hymn is one record of the Rig Veda JSON corpus. The loader accepts only
// records with Status "complete" and non-empty Sanskrit.
type Hymn struct {
	Book      int    `json:"book"`
	Hymn      int    `json:"hymn"`
	Reference string `json:"reference"`
	Sanskrit  string `json:"sanskrit"`
	Romanized string `json:"romanized"`
	Verses    int    `json:"verses"`
	URL       string `json:"url,omitempty"`
	Status    string `json:"status"`

	// Derived fields, filled by the theme analyzer. Nil/empty until then.
	SpiritualThemes       []string  `json:"spiritual_themes,omitempty"`
	DeityFocus            string    `json:"deity_focus,omitempty"`
	RitualContext         string    `json:"ritual_context,omitempty"`
	PhilosophicalConcepts []string  `json:"philosophical_concepts,omitempty"`
	Embedding             []float64 `json:"embedding,omitempty"`
}

// HymnStatusComplete marks a fully scraped corpus record.
const HymnStatusComplete = "complete"

// CorpusStats summarizes an analyzed corpus.
type CorpusStats struct {
	TotalHymns           int                  `json:"total_hymns"`
	TotalVerses          int                  `json:"total_verses"`
	BooksCovered         int                  `json:"books_covered"`
	ThemeDistribution    map[string]int       `json:"theme_distribution"`
	DeityDistribution    map[string]int       `json:"deity_distribution"`
	ConceptDistribution  map[string]int       `json:"philosophical_concepts"`
	BookStats            map[int]BookStats    `json:"book_statistics"`
	AverageVersesPerHymn float64              `json:"average_verses_per_hymn"`
}

// BookStats holds per-book hymn and verse totals.
type BookStats struct {
	Hymns  int `json:"hymns"`
	Verses int `json:"verses"`
}
