// Package graph builds and queries the in-memory Vedic knowledge graph.
package graph

import (
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

// Builder folds verse analyses into a knowledge graph. The fold is strictly
// sequential: each analysis is fully applied before the next, preserving the
// append-order invariants of the graph. Retracting an analysis requires a
// full rebuild.
type Builder struct {
	vocab *sanskrit.Vocabulary
}

// NewBuilder creates a builder over the given vocabulary.
func NewBuilder(vocab *sanskrit.Vocabulary) *Builder {
	return &Builder{vocab: vocab}
}

// Build folds the analyses, in input order, into a fresh graph.
func (b *Builder) Build(analyses []model.Analysis) *model.KnowledgeGraph {
	g := model.NewKnowledgeGraph()
	for i := range analyses {
		b.Fold(g, &analyses[i])
	}
	return g
}

// Fold applies one analysis to the graph. For every triple the verse
// reference and karaka are appended to the entity's lists without
// deduplication. The entity's domain is overwritten, and the verse appended
// to the domain bucket, only when the triple's gloss was resolved from the
// vocabulary. A flat relationship record is always appended.
func (b *Builder) Fold(g *model.KnowledgeGraph, a *model.Analysis) {
	verseRef := a.Reference
	if verseRef == "" {
		verseRef = "unknown"
	}

	for _, t := range a.Triples {
		entity := g.EntityFor(t.Word)
		entity.Verses = append(entity.Verses, verseRef)
		entity.Relations = append(entity.Relations, t.Karaka)

		if t.Gloss != "" {
			if e, ok := b.vocab.Lookup(t.Word); ok {
				entity.Domain = e.Domain
				g.Domains[e.Domain] = append(g.Domains[e.Domain], verseRef)
			}
		}

		g.Relationships = append(g.Relationships, model.Relationship{
			Verb:       t.VerbRoot,
			Relation:   t.Karaka,
			Entity:     t.Word,
			Verse:      verseRef,
			Confidence: t.Confidence,
		})
	}
}
