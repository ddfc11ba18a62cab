package model

// Karaka identifies a Paninian case-role relation. The seven relations are
// keyed by their traditional Devanagari names.
type Karaka string

const (
	KarakaKarta      Karaka = "कर्ता"      // agent (who does the action)
	KarakaKarma      Karaka = "कर्म"       // patient (what receives the action)
	KarakaKarana     Karaka = "करण"       // instrument (means of the action)
	KarakaSampradana Karaka = "सम्प्रदान" // recipient (to whom given)
	KarakaApadana    Karaka = "अपादान"    // source (from which separated)
	KarakaAdhikarana Karaka = "अधिकरण"    // locus (where/when)
	KarakaSambandha  Karaka = "सम्बन्ध"    // possessor (whose)
)

// KarakaGlosses maps each relation to its English description.
var KarakaGlosses = map[Karaka]string{
	KarakaKarta:      "agent (who does the action)",
	KarakaKarma:      "patient (what receives the action)",
	KarakaKarana:     "instrument (means of the action)",
	KarakaSampradana: "recipient (to whom given)",
	KarakaApadana:    "source (from which separated)",
	KarakaAdhikarana: "locus (where/when)",
	KarakaSambandha:  "possessor (whose)",
}

// KarakaForCase maps a guessed case to its karaka relation. Tokens with an
// unknown case default to the agent relation.
func KarakaForCase(c Case) Karaka {
	switch c {
	case CaseAccusative:
		return KarakaKarma
	case CaseInstrumental:
		return KarakaKarana
	case CaseDative:
		return KarakaSampradana
	case CaseAblative:
		return KarakaApadana
	case CaseLocative:
		return KarakaAdhikarana
	default:
		return KarakaKarta
	}
}

// SemanticTriple is one (verb-root, relation, argument) unit extracted from
// a sentence. Immutable once created.
type SemanticTriple struct {
	VerbRoot   string  `json:"verb_root"`         // Sanskrit dhatu anchoring the sentence
	Karaka     Karaka  `json:"karaka"`            // relation of the word to the verb
	Word       string  `json:"word"`              // surface token, Devanagari or romanized
	Gloss      string  `json:"gloss,omitempty"`   // vocabulary gloss, empty when unknown
	Confidence float64 `json:"confidence"`        // the word's morphology confidence
}
