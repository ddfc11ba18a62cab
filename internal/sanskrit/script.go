package sanskrit

// Devanagari Unicode blocks relevant to Vedic Sanskrit.
const (
	devanagariLo     = 0x0900
	devanagariHi     = 0x097F
	vedicExtLo       = 0xA8E0
	vedicExtHi       = 0xA8FF
	danda            = '।'
	doubleDanda      = '॥'
	virama           = '्'
)

// IsDevanagariRune reports whether a rune belongs to the Devanagari or
// Devanagari Extended (Vedic) blocks.
func IsDevanagariRune(r rune) bool {
	return (r >= devanagariLo && r <= devanagariHi) ||
		(r >= vedicExtLo && r <= vedicExtHi)
}

// IsDevanagari reports whether the text contains at least one character from
// the Devanagari or Devanagari Extended (Vedic) blocks.
func IsDevanagari(text string) bool {
	for _, r := range text {
		if IsDevanagariRune(r) {
			return true
		}
	}
	return false
}
