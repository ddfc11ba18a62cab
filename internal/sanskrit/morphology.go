package sanskrit

import (
	"strings"

	"github.com/svadhyaya/vedika/internal/model"
)

// Per-rule confidence bonuses. Confidence is a plain accumulator with no
// upper bound; a token matching three roots and a case ending scores 1.3.
const (
	rootMatchBonus = 0.3
	caseMatchBonus = 0.4
)

// caseEndings holds one suffix list per case, scanned in this exact order.
// The first list with any matching suffix wins; the instrumental 'आ' and the
// dative/locative 'े'-family overlaps resolve by that ordering, which is part
// of the heuristic's contract.
var caseEndings = []struct {
	Case    model.Case
	Endings []string
}{
	{model.CaseNominative, []string{"अः", "आः", "ा", "इः", "ी", "उः", "ऊः"}},
	{model.CaseAccusative, []string{"अम्", "आम्", "इम्", "ीम्", "उम्", "ऊम्"}},
	{model.CaseInstrumental, []string{"एन", "आ", "इणा", "ीणा", "उणा", "ऊणा"}},
	{model.CaseDative, []string{"आय", "ए", "ये"}},
	{model.CaseAblative, []string{"आत्", "स्मात्", "त्"}},
	{model.CaseLocative, []string{"े", "इ", "औ", "सु"}},
}

// Morphology guesses coarse grammatical structure for single tokens by
// matching against the fixed dhatu and case-ending tables.
type Morphology struct{}

// NewMorphology creates a morphology guesser.
func NewMorphology() *Morphology {
	return &Morphology{}
}

// Analyze inspects one token and returns its morphology guess.
//
// Every root in the table that occurs as a substring of the token, or that
// the token starts with once the root's virama is stripped, is appended to
// PossibleRoots with a +0.3 confidence bonus each. The case is set by the
// first ending list with a matching string-suffix, worth a single +0.4
// bonus; with no match the case stays unknown and no bonus applies.
func (m *Morphology) Analyze(token string) model.MorphologyGuess {
	guess := model.MorphologyGuess{
		Word: token,
		Case: model.CaseUnknown,
	}

	for _, vr := range verbRoots {
		bare := strings.ReplaceAll(vr.Root, string(virama), "")
		if strings.Contains(token, vr.Root) || strings.HasPrefix(token, bare) {
			guess.PossibleRoots = append(guess.PossibleRoots, model.RootMatch{
				Root:    vr.Root,
				Meaning: vr.Meaning,
			})
			guess.Confidence += rootMatchBonus
		}
	}

	for _, ce := range caseEndings {
		matched := false
		for _, ending := range ce.Endings {
			if strings.HasSuffix(token, ending) {
				matched = true
				break
			}
		}
		if matched {
			guess.Case = ce.Case
			guess.Confidence += caseMatchBonus
			break
		}
	}

	return guess
}

// HasPraiseMarker reports whether the token contains one of the four
// praise/invoke substrings used by the extractor's first fallback.
func HasPraiseMarker(token string) bool {
	for _, marker := range praiseMarkers {
		if strings.Contains(token, marker) {
			return true
		}
	}
	return false
}
