package corpus

import (
	"sort"
	"strings"

	"github.com/svadhyaya/vedika/internal/model"
)

const maxThemes = 5

// theme is a named keyword cluster used to classify hymns.
type theme struct {
	name     string
	keywords []string
}

// Keyword tables cover both Devanagari and romanized forms so a hymn
// matches whichever rendering the corpus record carries.
var vedicThemes = []theme{
	{"agni", []string{"अग्नि", "agni", "fire", "flame"}},
	{"indra", []string{"इन्द्र", "indra", "vajra", "thunderbolt"}},
	{"soma", []string{"सोम", "soma", "amrita", "nectar"}},
	{"surya", []string{"सूर्य", "surya", "sun", "light", "illumination"}},
	{"varuna", []string{"वरुण", "varuna", "water", "cosmic_order"}},
	{"vayu", []string{"वायु", "vayu", "wind", "breath", "prana"}},
	{"cosmic_order", []string{"ऋत", "rta", "rita", "order", "truth", "satya"}},
	{"sacrifice", []string{"यज्ञ", "yajna", "homa", "offering", "oblation"}},
	{"creation", []string{"सृष्टि", "creation", "genesis", "origin", "beginning"}},
	{"prayer", []string{"प्रार्थना", "prayer", "invocation", "hymn", "praise"}},
}

var deityThemes = []string{"agni", "indra", "soma", "surya", "varuna", "vayu"}

var philosophicalConcepts = []theme{
	{"consciousness", []string{"चेतना", "consciousness", "awareness", "chit"}},
	{"existence", []string{"सत्", "sat", "being", "existence", "reality"}},
	{"bliss", []string{"आनन्द", "ananda", "bliss", "joy", "happiness"}},
	{"immortality", []string{"अमृत", "amrita", "immortal", "deathless", "eternal"}},
	{"wisdom", []string{"ज्ञान", "jnana", "knowledge", "wisdom", "understanding"}},
	{"unity", []string{"एकता", "unity", "oneness", "integration", "wholeness"}},
	{"dharma", []string{"धर्म", "dharma", "righteousness", "duty", "law"}},
	{"karma", []string{"कर्म", "karma", "action", "work", "deed"}},
}

// ThemeAnalyzer classifies hymns by spiritual theme, deity focus, ritual
// context, and philosophical concepts.
type ThemeAnalyzer struct{}

// NewThemeAnalyzer creates a theme analyzer.
func NewThemeAnalyzer() *ThemeAnalyzer {
	return &ThemeAnalyzer{}
}

// Analyze fills the hymn's derived classification fields in place.
func (a *ThemeAnalyzer) Analyze(h *model.Hymn) {
	text := strings.ToLower(h.Sanskrit + " " + h.Romanized)

	scores := make(map[string]int)
	var found []string
	for _, t := range vedicThemes {
		score := 0
		for _, kw := range t.keywords {
			count := strings.Count(text, strings.ToLower(kw))
			// Keywords longer than three runes count double.
			if len([]rune(kw)) > 3 {
				score += count * 2
			} else {
				score += count
			}
		}
		if score > 0 {
			scores[t.name] = score
			found = append(found, t.name)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return scores[found[i]] > scores[found[j]]
	})
	if len(found) > maxThemes {
		found = found[:maxThemes]
	}

	deity := ""
	maxScore := 0
	for _, d := range deityThemes {
		if scores[d] > maxScore {
			maxScore = scores[d]
			deity = d
		}
	}

	h.SpiritualThemes = found
	h.DeityFocus = deity
	h.RitualContext = ritualContext(scores)
	h.PhilosophicalConcepts = conceptsIn(text)
}

// AnalyzeAll classifies every hymn in the slice.
func (a *ThemeAnalyzer) AnalyzeAll(hymns []model.Hymn) {
	for i := range hymns {
		a.Analyze(&hymns[i])
	}
}

func ritualContext(scores map[string]int) string {
	switch {
	case scores["sacrifice"] > 0:
		return "sacrifice"
	case scores["prayer"] > 0:
		return "prayer"
	case scores["creation"] > 0:
		return "cosmological"
	default:
		return "general"
	}
}

func conceptsIn(text string) []string {
	var concepts []string
	for _, c := range philosophicalConcepts {
		for _, kw := range c.keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				concepts = append(concepts, c.name)
				break
			}
		}
	}
	return concepts
}
