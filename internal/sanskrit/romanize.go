package sanskrit

import "strings"

// romanizationMap carries the fixed Devanagari -> IAST character mapping.
// The virama drops the inherent vowel, so it maps to the empty string.
var romanizationMap = map[rune]string{
	'अ': "a", 'आ': "ā", 'इ': "i", 'ई': "ī", 'उ': "u", 'ऊ': "ū",
	'ऋ': "ṛ", 'ॠ': "ṝ", 'ऌ': "ḷ", 'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
	'क': "ka", 'ख': "kha", 'ग': "ga", 'घ': "gha", 'ङ': "ṅa",
	'च': "ca", 'छ': "cha", 'ज': "ja", 'झ': "jha", 'ञ': "ña",
	'ट': "ṭa", 'ठ': "ṭha", 'ड': "ḍa", 'ढ': "ḍha", 'ण': "ṇa",
	'त': "ta", 'थ': "tha", 'द': "da", 'ध': "dha", 'न': "na",
	'प': "pa", 'फ': "pha", 'ब': "ba", 'भ': "bha", 'म': "ma",
	'य': "ya", 'र': "ra", 'ल': "la", 'व': "va",
	'श': "śa", 'ष': "ṣa", 'स': "sa", 'ह': "ha",
	'ं': "ṃ", 'ः': "ḥ", '्': "", '।': " | ", '॥': " || ",
}

// Romanize converts Devanagari text to a simplified IAST transliteration.
// Characters outside the mapping pass through unchanged, so mixed-script
// input stays readable.
func Romanize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if mapped, ok := romanizationMap[r]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
