package sanskrit

// Domain labels form a closed set; tokens outside the vocabulary resolve to
// DomainUnknown.
const (
	DomainFire       = "fire"
	DomainStorm      = "storm"
	DomainWater      = "water"
	DomainSoma       = "soma"
	DomainSun        = "sun"
	DomainAir        = "air"
	DomainSocial     = "social"
	DomainRitual     = "ritual"
	DomainPhilosophy = "philosophy"
	DomainCosmology  = "cosmology"
	DomainTime       = "time"
	DomainUnknown    = "unknown"
)

// VocabularyEntry holds the metadata recorded for one surface form.
type VocabularyEntry struct {
	Gloss      string   `json:"gloss"`
	Domain     string   `json:"domain"`
	Attributes []string `json:"attributes,omitempty"`
}

// Vocabulary is the static token -> metadata store. Keys are surface forms,
// not lemmas; Devanagari and romanized forms of the same word are distinct
// entries. Loaded once, never mutated by analysis.
type Vocabulary struct {
	entries map[string]VocabularyEntry
}

// NewVocabulary builds the default Vedic vocabulary: major deities, ritual
// terminology, and cosmic/philosophical concepts.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{entries: map[string]VocabularyEntry{
		// Deities and divine concepts
		"अग्नि":  {Gloss: "fire god, divine fire", Domain: DomainFire, Attributes: []string{"priest", "messenger", "purifier"}},
		"इन्द्र":  {Gloss: "king of gods, storm god", Domain: DomainStorm, Attributes: []string{"warrior", "vritrahan", "powerful"}},
		"वरुण":   {Gloss: "god of waters, cosmic order", Domain: DomainWater, Attributes: []string{"judge", "binding", "rta-keeper"}},
		"सोम":    {Gloss: "sacred drink, moon god", Domain: DomainSoma, Attributes: []string{"immortal", "ecstatic", "purifying"}},
		"सूर्य":   {Gloss: "sun god", Domain: DomainSun, Attributes: []string{"illuminating", "all-seeing", "life-giving"}},
		"वाय":    {Gloss: "wind god", Domain: DomainAir, Attributes: []string{"swift", "life-breath", "moving"}},
		"मित्र":   {Gloss: "god of friendship, contracts", Domain: DomainSocial, Attributes: []string{"friendly", "binding", "loyal"}},

		// Ritual terminology
		"यज्ञ":    {Gloss: "sacrifice, ritual offering", Domain: DomainRitual, Attributes: []string{"ceremony"}},
		"होम":    {Gloss: "fire offering", Domain: DomainRitual, Attributes: []string{"fire_ritual"}},
		"हवि":    {Gloss: "oblation, offering", Domain: DomainRitual, Attributes: []string{"offering"}},
		"मन्त्र":   {Gloss: "sacred formula, hymn", Domain: DomainRitual, Attributes: []string{"speech"}},
		"स्तोम":   {Gloss: "praise, hymn", Domain: DomainRitual, Attributes: []string{"praise"}},
		"होतृ":    {Gloss: "priest who invokes", Domain: DomainRitual, Attributes: []string{"priest"}},
		"ऋत्विज्":  {Gloss: "ritual priest", Domain: DomainRitual, Attributes: []string{"priest"}},

		// Cosmic and philosophical concepts
		"रित":    {Gloss: "cosmic order, truth", Domain: DomainPhilosophy, Attributes: []string{"principle"}},
		"सत्":    {Gloss: "being, truth", Domain: DomainPhilosophy, Attributes: []string{"principle"}},
		"द्यु":    {Gloss: "heaven, sky", Domain: DomainCosmology, Attributes: []string{"realm"}},
		"पृथिवी":  {Gloss: "earth", Domain: DomainCosmology, Attributes: []string{"realm"}},
		"आकाश":   {Gloss: "space, ether", Domain: DomainCosmology, Attributes: []string{"element"}},
		"कल्प":    {Gloss: "cosmic age", Domain: DomainTime, Attributes: []string{"period"}},
	}}
}

// Lookup returns the entry for a surface form.
func (v *Vocabulary) Lookup(token string) (VocabularyEntry, bool) {
	e, ok := v.entries[token]
	return e, ok
}

// Gloss returns the gloss for a token, empty when absent.
func (v *Vocabulary) Gloss(token string) string {
	return v.entries[token].Gloss
}

// Domain returns the recorded domain for a token, DomainUnknown when absent.
func (v *Vocabulary) Domain(token string) string {
	if e, ok := v.entries[token]; ok {
		return e.Domain
	}
	return DomainUnknown
}

// Contains reports whether a token is in the vocabulary.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.entries[token]
	return ok
}

// Size returns the number of entries.
func (v *Vocabulary) Size() int {
	return len(v.entries)
}
