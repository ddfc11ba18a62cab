package corpus

import "github.com/svadhyaya/vedika/internal/model"

// Stats summarizes an analyzed corpus.
func Stats(hymns []model.Hymn) model.CorpusStats {
	stats := model.CorpusStats{
		TotalHymns:          len(hymns),
		ThemeDistribution:   make(map[string]int),
		DeityDistribution:   make(map[string]int),
		ConceptDistribution: make(map[string]int),
		BookStats:           make(map[int]model.BookStats),
	}

	books := make(map[int]bool)
	for _, h := range hymns {
		stats.TotalVerses += h.Verses
		books[h.Book] = true

		for _, theme := range h.SpiritualThemes {
			stats.ThemeDistribution[theme]++
		}
		if h.DeityFocus != "" {
			stats.DeityDistribution[h.DeityFocus]++
		}
		for _, concept := range h.PhilosophicalConcepts {
			stats.ConceptDistribution[concept]++
		}

		bs := stats.BookStats[h.Book]
		bs.Hymns++
		bs.Verses += h.Verses
		stats.BookStats[h.Book] = bs
	}

	stats.BooksCovered = len(books)
	if stats.TotalHymns > 0 {
		stats.AverageVersesPerHymn = float64(stats.TotalVerses) / float64(stats.TotalHymns)
	}

	return stats
}
