package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svadhyaya/vedika/internal/corpus"
	"github.com/svadhyaya/vedika/internal/embed"
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/pipeline"
	"github.com/svadhyaya/vedika/internal/sanskrit"
)

var (
	searchCorpusPath string
	searchTopK       int
	searchWord       bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search a corpus by embedding similarity",
	Long: `Search trains co-occurrence embeddings over the corpus and ranks hymns
by cosine similarity to the query. With --word the query is treated as
a single word and the nearest vocabulary words come back instead.

Vectors are cached, so repeat searches skip training.

Example:
  vedika search अग्नि --corpus data/rigveda.json
  vedika search सोम --corpus data/rigveda.json --word`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchCorpusPath, "corpus", "", "corpus JSON path (required)")
	searchCmd.Flags().IntVar(&searchTopK, "top", 10, "number of results")
	searchCmd.Flags().BoolVar(&searchWord, "word", false, "rank similar words instead of hymns")
	_ = searchCmd.MarkFlagRequired("corpus")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	// Vectors are trained over romanized text, so Devanagari queries are
	// romanized with the same scheme before matching.
	if sanskrit.IsDevanagari(query) {
		query = sanskrit.Romanize(query)
	}

	hymns, err := corpus.Load(searchCorpusPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	p := pipeline.NewPipeline(cfg)

	vectors := loadOrTrain(p, hymns)

	if searchWord {
		similar := vectors.SimilarWords(query, searchTopK)
		if len(similar) == 0 {
			fmt.Println("No results.")
			return nil
		}
		for i, s := range similar {
			fmt.Printf("%2d. [%.3f] %s\n", i+1, s.Similarity, s.Word)
		}
		return nil
	}

	index := embed.NewHymnIndex(vectors, hymns)
	matches := index.Search(query, searchTopK)
	if len(matches) == 0 {
		fmt.Println("No results.")
		return nil
	}
	for i, m := range matches {
		fmt.Printf("%2d. [%.3f] %s\n", i+1, m.Similarity, m.Hymn.Reference)
		if verbose {
			fmt.Printf("     %s\n", m.Hymn.Romanized)
		}
	}
	return nil
}

// loadOrTrain returns cached vectors for the corpus when present,
// otherwise trains and caches them.
func loadOrTrain(p *pipeline.Pipeline, hymns []model.Hymn) embed.Vectors {
	name := fmt.Sprintf("corpus-%d", len(hymns))

	if c := p.Cache(); c != nil {
		if vectors, ok := embed.LoadCache(c, name); ok {
			if verbose {
				fmt.Fprintln(os.Stderr, "Using cached vectors")
			}
			return vectors
		}
	}

	vectors := p.TrainEmbeddings(hymns)
	if c := p.Cache(); c != nil {
		if err := vectors.SaveCache(c, name); err != nil && verbose {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return vectors
}
