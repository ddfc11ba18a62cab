package model

// Case represents a grammatical case category guessed from a token's ending.
type Case string

const (
	CaseNominative   Case = "nominative"
	CaseAccusative   Case = "accusative"
	CaseInstrumental Case = "instrumental"
	CaseDative       Case = "dative"
	CaseAblative     Case = "ablative"
	CaseLocative     Case = "locative"
	CaseUnknown      Case = "unknown"
)

// RootMatch records one verb root (dhatu) detected inside a token.
type RootMatch struct {
	Root    string `json:"root"`    // Sanskrit dhatu, possibly with virama
	Meaning string `json:"meaning"` // English gloss of the root
}

// MorphologyGuess is the per-token output of the morphology guesser.
//
// Confidence accumulates fixed bonuses per matching rule (0.3 per root
// match, 0.4 for a case-ending match). It is never negative but has no
// upper bound: a token matching several roots scores above 1.0. Callers
// must not clamp it.
type MorphologyGuess struct {
	Word          string      `json:"word"`
	PossibleRoots []RootMatch `json:"possible_roots,omitempty"`
	Case          Case        `json:"case"`
	Confidence    float64     `json:"confidence"`
}

// HasVerbRoot reports whether at least one verb root matched the token.
func (g *MorphologyGuess) HasVerbRoot() bool {
	return len(g.PossibleRoots) > 0
}
