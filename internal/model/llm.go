package model

// LLMTriple is one semantic triple as reported by an LLM provider.
type LLMTriple struct {
	Verb     string `json:"verb"`
	Relation string `json:"relation"`
	Argument string `json:"argument"`
}

// LLMAnalysis is the structured result of an LLM-assisted Sanskrit analysis.
// On a malformed provider response the caller substitutes a degraded record:
// empty morphology and triples, SemanticField "unknown" (or "error" on a
// transport failure), the raw text or failure message in Interpretation, and
// Confidence 0.7 (content fallback) or 0.0 (transport failure).
type LLMAnalysis struct {
	Morphology      map[string]string `json:"morphology"`
	KarakaRelations []string          `json:"karaka_relations"`
	SemanticField   string            `json:"semantic_field"`
	Triples         []LLMTriple       `json:"triples"`
	Interpretation  string            `json:"interpretation"`
	Confidence      float64           `json:"confidence"`

	Reference string `json:"reference,omitempty"` // verse id, set by the caller
	Provider  string `json:"provider,omitempty"`  // openai, anthropic, ollama
	Model     string `json:"model,omitempty"`
}

// LLMNode is an entity node in the LLM-path knowledge graph.
type LLMNode struct {
	Verses []string `json:"verses"`
}

// LLMRelationship is one relationship in the LLM-path knowledge graph.
type LLMRelationship struct {
	Verb        string  `json:"verb"`
	Relation    string  `json:"relation"`
	Argument    string  `json:"argument"`
	SourceVerse string  `json:"source_verse"`
	Confidence  float64 `json:"confidence"`
}

// LLMKnowledgeGraph aggregates LLM analyses, parallel to the heuristic graph
// but keyed by the looser fields the LLM reports.
type LLMKnowledgeGraph struct {
	Nodes          map[string]*LLMNode `json:"nodes"`
	Relationships  []LLMRelationship   `json:"relationships"`
	SemanticFields map[string][]string `json:"semantic_fields"` // field -> verse refs
}

// NewLLMKnowledgeGraph returns an empty LLM-path graph.
func NewLLMKnowledgeGraph() *LLMKnowledgeGraph {
	return &LLMKnowledgeGraph{
		Nodes:          make(map[string]*LLMNode),
		SemanticFields: make(map[string][]string),
	}
}
