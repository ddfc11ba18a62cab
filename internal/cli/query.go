package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svadhyaya/vedika/internal/corpus"
	"github.com/svadhyaya/vedika/internal/graph"
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/pipeline"
)

var (
	queryCorpusPath string
	queryJSON       string
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <terms...>",
	Short: "Query the knowledge graph built from a corpus",
	Long: `Query analyzes every hymn in the corpus, folds the triples into a
knowledge graph, and scores its relationships against the query terms.
Entity matches weigh 2.0, verb matches 1.5, relation matches 1.0; the
top ten positive scores come back in descending order.

Matching is plain substring containment, so Devanagari terms match
Devanagari graph fields and Latin terms match Latin fields.

Example:
  vedika query अग्नि --corpus data/rigveda.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryCorpusPath, "corpus", "", "corpus JSON path (required)")
	queryCmd.Flags().StringVar(&queryJSON, "json", "", "output JSON path (optional)")
	_ = queryCmd.MarkFlagRequired("corpus")
}

func runQuery(cmd *cobra.Command, args []string) error {
	queryText := strings.Join(args, " ")

	hymns, err := corpus.Load(queryCorpusPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d hymns\n", len(hymns))
	}

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	p := pipeline.NewPipeline(cfg)

	analyses := p.AnalyzeCorpus(hymns)
	kg := p.BuildGraph(analyses)
	if verbose {
		fmt.Fprintf(os.Stderr, "Graph: %d entities, %d relationships\n",
			len(kg.Entities), len(kg.Relationships))
	}

	results := graph.Query(kg, queryText)

	renderer := pipeline.NewRenderer(verbose)
	renderer.RenderQueryResults(os.Stdout, results)

	if queryJSON != "" {
		if err := renderer.RenderJSON(results, queryJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}
	return nil
}
