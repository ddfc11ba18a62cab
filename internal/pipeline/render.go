package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/svadhyaya/vedika/internal/model"
)

// Renderer writes analysis output as JSON files or human-readable text.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderJSON writes v as indented JSON to path.
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	if r.verbose {
		fmt.Printf("✓ Wrote JSON: %s\n", path)
	}
	return nil
}

// RenderAnalysis prints one verse analysis as text.
func (r *Renderer) RenderAnalysis(w io.Writer, a model.Analysis) {
	if a.Reference != "" {
		fmt.Fprintf(w, "Reference:  %s\n", a.Reference)
	}
	fmt.Fprintf(w, "Sanskrit:   %s\n", a.Sanskrit)
	fmt.Fprintf(w, "Romanized:  %s\n", a.Romanized)
	if a.Translation != "" {
		fmt.Fprintf(w, "Translation: %s\n", a.Translation)
	}
	fmt.Fprintf(w, "Field:      %s\n", a.SemanticField)
	fmt.Fprintf(w, "Entities:   %d\n", a.EntitiesFound)
	fmt.Fprintf(w, "Confidence: %.2f\n", a.Confidence)

	if len(a.Triples) == 0 {
		fmt.Fprintln(w, "Triples:    (none)")
		return
	}
	fmt.Fprintln(w, "Triples:")
	for _, t := range a.Triples {
		gloss := t.Gloss
		if gloss == "" {
			gloss = "-"
		}
		fmt.Fprintf(w, "  %s --%s--> %s (%s, %.2f)\n", t.VerbRoot, t.Karaka, t.Word, gloss, t.Confidence)
	}
}

// RenderQueryResults prints scored graph query results.
func (r *Renderer) RenderQueryResults(w io.Writer, results []model.QueryResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	for i, res := range results {
		rel := res.Relationship
		fmt.Fprintf(w, "%2d. [%.1f] %s --%s--> %s (verse %s, confidence %.2f)\n",
			i+1, res.Score, rel.Verb, rel.Relation, rel.Entity, rel.Verse, rel.Confidence)
	}
}

// RenderGraphSummary prints entity and relationship counts with the domain
// breakdown in a stable order.
func (r *Renderer) RenderGraphSummary(w io.Writer, g *model.KnowledgeGraph) {
	fmt.Fprintf(w, "Entities:      %d\n", len(g.Entities))
	fmt.Fprintf(w, "Relationships: %d\n", len(g.Relationships))

	domains := make([]string, 0, len(g.Domains))
	for d := range g.Domains {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		fmt.Fprintf(w, "  %-12s %d verses\n", d, len(g.Domains[d]))
	}
}

// RenderStats prints corpus statistics.
func (r *Renderer) RenderStats(w io.Writer, stats model.CorpusStats) {
	fmt.Fprintf(w, "Hymns:            %d\n", stats.TotalHymns)
	fmt.Fprintf(w, "Verses:           %d\n", stats.TotalVerses)
	fmt.Fprintf(w, "Books covered:    %d\n", stats.BooksCovered)
	fmt.Fprintf(w, "Verses per hymn:  %.1f\n", stats.AverageVersesPerHymn)

	if len(stats.DeityDistribution) > 0 {
		fmt.Fprintln(w, "Deity focus:")
		for _, name := range sortedKeys(stats.DeityDistribution) {
			fmt.Fprintf(w, "  %-12s %d\n", name, stats.DeityDistribution[name])
		}
	}
	if len(stats.ThemeDistribution) > 0 {
		fmt.Fprintln(w, "Themes:")
		for _, name := range sortedKeys(stats.ThemeDistribution) {
			fmt.Fprintf(w, "  %-12s %d\n", name, stats.ThemeDistribution[name])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
