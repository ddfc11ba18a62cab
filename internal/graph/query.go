package graph

import (
	"sort"
	"strings"

	"github.com/svadhyaya/vedika/internal/model"
)

// Per-field substring weights for lexical relevance.
const (
	entityWeight   = 2.0
	verbWeight     = 1.5
	relationWeight = 1.0
)

// maxResults caps the number of relationships a query returns.
const maxResults = 10

// Query scores every relationship in the graph against a free-text query
// and returns the top matches by descending score.
//
// The query is lower-cased and whitespace-split; each word scores +2.0 when
// it is a substring of a relationship's entity, +1.5 for its verb and +1.0
// for its relation (all case-insensitive). Only relationships with a score
// above zero are kept, so an empty query returns an empty list. Ties keep
// the relationships' original order.
//
// Matching is plain substring containment in whatever script the graph
// stores: a romanized query like "agni" will not match the Devanagari
// entity "अग्नि". Mixed-script matching is a known limitation, not a bug.
func Query(g *model.KnowledgeGraph, query string) []model.QueryResult {
	words := strings.Fields(strings.ToLower(query))

	var results []model.QueryResult
	for _, rel := range g.Relationships {
		score := 0.0
		entity := strings.ToLower(rel.Entity)
		verb := strings.ToLower(rel.Verb)
		relation := strings.ToLower(string(rel.Relation))

		for _, word := range words {
			if strings.Contains(entity, word) {
				score += entityWeight
			}
			if strings.Contains(verb, word) {
				score += verbWeight
			}
			if strings.Contains(relation, word) {
				score += relationWeight
			}
		}

		if score > 0 {
			results = append(results, model.QueryResult{
				Relationship: rel,
				Score:        score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
