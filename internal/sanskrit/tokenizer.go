package sanskrit

import "regexp"

var (
	// Devanagari text splits on whitespace and the two danda marks.
	devanagariToken = regexp.MustCompile(`[^\s।॥]+`)
	// Romanized text splits on generic word boundaries.
	latinToken = regexp.MustCompile(`\b\w+\b`)
)

// Tokenize splits Sanskrit text into tokens. Devanagari input is split on
// whitespace and danda punctuation; anything else is split on word
// boundaries. No stemming or case folding is applied to Devanagari tokens.
// Empty input yields an empty slice.
func Tokenize(text string) []string {
	var matches []string
	if IsDevanagari(text) {
		matches = devanagariToken.FindAllString(text, -1)
	} else {
		matches = latinToken.FindAllString(text, -1)
	}
	if matches == nil {
		return []string{}
	}
	return matches
}
