package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/svadhyaya/vedika/internal/model"
)

const (
	llmVerbWeight     = 2.0
	llmArgumentWeight = 1.5
	llmRelationWeight = 1.0
	llmMaxResults     = 10
	defaultConfidence = 0.5
)

// BuildKnowledgeGraph folds LLM analyses into a knowledge graph keyed by
// the arguments the model reported. Analyses without a reference get a
// positional one.
func BuildKnowledgeGraph(analyses []model.LLMAnalysis) *model.LLMKnowledgeGraph {
	kg := model.NewLLMKnowledgeGraph()

	for i, analysis := range analyses {
		verseRef := analysis.Reference
		if verseRef == "" {
			verseRef = fmt.Sprintf("verse_%d", i)
		}

		confidence := analysis.Confidence
		if confidence == 0 {
			confidence = defaultConfidence
		}

		for _, triple := range analysis.Triples {
			kg.Relationships = append(kg.Relationships, model.LLMRelationship{
				Verb:        triple.Verb,
				Relation:    triple.Relation,
				Argument:    triple.Argument,
				SourceVerse: verseRef,
				Confidence:  confidence,
			})

			node := kg.Nodes[triple.Argument]
			if node == nil {
				node = &model.LLMNode{}
				kg.Nodes[triple.Argument] = node
			}
			node.Verses = append(node.Verses, verseRef)
		}

		field := analysis.SemanticField
		if field == "" {
			field = SemanticFieldUnknown
		}
		kg.SemanticFields[field] = append(kg.SemanticFields[field], verseRef)
	}

	return kg
}

// GraphQueryResult is one scored relationship from an LLM-graph query.
type GraphQueryResult struct {
	Relationship model.LLMRelationship `json:"relationship"`
	Score        float64               `json:"relevance_score"`
	Verse        string                `json:"verse"`
}

// QueryKnowledgeGraph scores relationships by keyword containment. Verb
// matches weigh 2.0, argument matches 1.5, relation matches 1.0; the top
// ten relationships with a positive score come back in descending order.
func QueryKnowledgeGraph(kg *model.LLMKnowledgeGraph, query string) []GraphQueryResult {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return []GraphQueryResult{}
	}

	var results []GraphQueryResult
	for _, rel := range kg.Relationships {
		verb := strings.ToLower(rel.Verb)
		argument := strings.ToLower(rel.Argument)
		relation := strings.ToLower(rel.Relation)

		score := 0.0
		for _, word := range words {
			if strings.Contains(verb, word) {
				score += llmVerbWeight
			}
			if strings.Contains(argument, word) {
				score += llmArgumentWeight
			}
			if strings.Contains(relation, word) {
				score += llmRelationWeight
			}
		}
		if score > 0 {
			results = append(results, GraphQueryResult{
				Relationship: rel,
				Score:        score,
				Verse:        rel.SourceVerse,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > llmMaxResults {
		results = results[:llmMaxResults]
	}
	return results
}
