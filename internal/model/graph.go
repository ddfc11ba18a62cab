package model

// Entity aggregates everything the knowledge graph has seen about one token.
// Verses and Relations are append-only in fold order; duplicates accumulate.
// Domain carries the last vocabulary-resolved value, "unknown" until then.
type Entity struct {
	Verses    []string `json:"verses"`
	Relations []Karaka `json:"relations"`
	Domain    string   `json:"domain"`
}

// Relationship is one flat relationship record in the knowledge graph.
type Relationship struct {
	Verb       string  `json:"verb"`
	Relation   Karaka  `json:"relation"`
	Entity     string  `json:"entity"`
	Verse      string  `json:"verse"`
	Confidence float64 `json:"confidence"`
}

// KnowledgeGraph is the in-memory aggregation of entities and relationship
// records built by folding analyses in input order. It is not safe for
// concurrent mutation; treat it as read-only once built.
type KnowledgeGraph struct {
	Entities      map[string]*Entity  `json:"entities"`
	Relationships []Relationship      `json:"relationships"`
	Domains       map[string][]string `json:"domains"` // domain -> verse references
}

// NewKnowledgeGraph returns an empty graph ready for folding.
func NewKnowledgeGraph() *KnowledgeGraph {
	return &KnowledgeGraph{
		Entities: make(map[string]*Entity),
		Domains:  make(map[string][]string),
	}
}

// EntityFor returns the entity record for a token, creating it on first use.
func (g *KnowledgeGraph) EntityFor(token string) *Entity {
	e, ok := g.Entities[token]
	if !ok {
		e = &Entity{Domain: "unknown"}
		g.Entities[token] = e
	}
	return e
}

// QueryResult pairs a relationship with its lexical relevance score.
type QueryResult struct {
	Relationship Relationship `json:"relationship"`
	Score        float64      `json:"score"`
}
