package llm

import (
	"fmt"
	"testing"

	"github.com/svadhyaya/vedika/internal/model"
)

func TestBuildKnowledgeGraph_NodesAndFields(t *testing.T) {
	analyses := []model.LLMAnalysis{
		{
			Reference:     "RV 1.1.1",
			SemanticField: "ritual",
			Confidence:    0.9,
			Triples: []model.LLMTriple{
				{Verb: "ईळे", Relation: "कर्म", Argument: "अग्निम्"},
				{Verb: "ईळे", Relation: "कर्ता", Argument: "होता"},
			},
		},
		{
			Reference:     "RV 1.1.2",
			SemanticField: "ritual",
			Confidence:    0.8,
			Triples: []model.LLMTriple{
				{Verb: "स्तु", Relation: "कर्म", Argument: "अग्निम्"},
			},
		},
	}

	kg := BuildKnowledgeGraph(analyses)

	if len(kg.Relationships) != 3 {
		t.Fatalf("Expected 3 relationships, got %d", len(kg.Relationships))
	}
	node := kg.Nodes["अग्निम्"]
	if node == nil {
		t.Fatal("Expected a node for अग्निम्")
	}
	if len(node.Verses) != 2 {
		t.Errorf("Expected अग्निम् in 2 verses, got %v", node.Verses)
	}
	if len(kg.SemanticFields["ritual"]) != 2 {
		t.Errorf("Expected 2 ritual verses, got %v", kg.SemanticFields["ritual"])
	}
	if kg.Relationships[0].Confidence != 0.9 {
		t.Errorf("Expected confidence carried onto relationships, got %f", kg.Relationships[0].Confidence)
	}
}

func TestBuildKnowledgeGraph_Defaults(t *testing.T) {
	analyses := []model.LLMAnalysis{
		{Triples: []model.LLMTriple{{Verb: "अस्", Relation: "कर्ता", Argument: "देवः"}}},
	}

	kg := BuildKnowledgeGraph(analyses)

	rel := kg.Relationships[0]
	if rel.SourceVerse != "verse_0" {
		t.Errorf("Expected positional reference verse_0, got %q", rel.SourceVerse)
	}
	if rel.Confidence != 0.5 {
		t.Errorf("Expected default confidence 0.5, got %f", rel.Confidence)
	}
	if len(kg.SemanticFields[SemanticFieldUnknown]) != 1 {
		t.Errorf("Expected the verse filed under %q, got %v", SemanticFieldUnknown, kg.SemanticFields)
	}
}

func TestQueryKnowledgeGraph_Weights(t *testing.T) {
	kg := model.NewLLMKnowledgeGraph()
	kg.Relationships = []model.LLMRelationship{
		{Verb: "praise", Relation: "object", Argument: "agni", SourceVerse: "RV 1.1.1"},
		{Verb: "offer", Relation: "praise", Argument: "soma", SourceVerse: "RV 9.1.1"},
	}

	results := QueryKnowledgeGraph(kg, "praise")
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	// A verb match (2.0) outranks a relation match (1.0).
	if results[0].Verse != "RV 1.1.1" {
		t.Errorf("Expected the verb match first, got %s", results[0].Verse)
	}
	if results[0].Score != 2.0 {
		t.Errorf("Expected score 2.0, got %f", results[0].Score)
	}
	if results[1].Score != 1.0 {
		t.Errorf("Expected score 1.0, got %f", results[1].Score)
	}
}

func TestQueryKnowledgeGraph_EmptyQueryAndCap(t *testing.T) {
	kg := model.NewLLMKnowledgeGraph()
	for i := 0; i < 15; i++ {
		kg.Relationships = append(kg.Relationships, model.LLMRelationship{
			Verb: "praise", Argument: fmt.Sprintf("deity%d", i), SourceVerse: fmt.Sprintf("RV 1.%d", i),
		})
	}

	if got := QueryKnowledgeGraph(kg, "  "); len(got) != 0 {
		t.Errorf("Expected empty result for a blank query, got %d", len(got))
	}

	results := QueryKnowledgeGraph(kg, "praise")
	if len(results) != 10 {
		t.Errorf("Expected results capped at 10, got %d", len(results))
	}
}
