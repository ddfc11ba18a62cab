package corpus

import (
	"testing"

	"github.com/svadhyaya/vedika/internal/model"
)

func TestStats_Aggregates(t *testing.T) {
	hymns := []model.Hymn{
		{Book: 1, Hymn: 1, Verses: 9, DeityFocus: "agni",
			SpiritualThemes: []string{"agni", "sacrifice"}, PhilosophicalConcepts: []string{"dharma"}},
		{Book: 1, Hymn: 2, Verses: 9, DeityFocus: "vayu",
			SpiritualThemes: []string{"vayu"}},
		{Book: 10, Hymn: 90, Verses: 16, DeityFocus: "agni"},
	}

	stats := Stats(hymns)

	if stats.TotalHymns != 3 {
		t.Errorf("Expected 3 hymns, got %d", stats.TotalHymns)
	}
	if stats.TotalVerses != 34 {
		t.Errorf("Expected 34 verses, got %d", stats.TotalVerses)
	}
	if stats.BooksCovered != 2 {
		t.Errorf("Expected 2 books, got %d", stats.BooksCovered)
	}
	if stats.DeityDistribution["agni"] != 2 {
		t.Errorf("Expected agni focus twice, got %d", stats.DeityDistribution["agni"])
	}
	if stats.ThemeDistribution["sacrifice"] != 1 {
		t.Errorf("Expected one sacrifice hymn, got %d", stats.ThemeDistribution["sacrifice"])
	}
	if stats.ConceptDistribution["dharma"] != 1 {
		t.Errorf("Expected one dharma hymn, got %d", stats.ConceptDistribution["dharma"])
	}
	if stats.BookStats[1].Hymns != 2 || stats.BookStats[1].Verses != 18 {
		t.Errorf("Expected book 1 with 2 hymns and 18 verses, got %+v", stats.BookStats[1])
	}
	expectedAvg := 34.0 / 3.0
	if stats.AverageVersesPerHymn != expectedAvg {
		t.Errorf("Expected average %.2f, got %.2f", expectedAvg, stats.AverageVersesPerHymn)
	}
}

func TestStats_EmptyCorpus(t *testing.T) {
	stats := Stats(nil)
	if stats.TotalHymns != 0 || stats.AverageVersesPerHymn != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}
