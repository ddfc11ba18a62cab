package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/svadhyaya/vedika/internal/cache"
	"github.com/svadhyaya/vedika/internal/corpus"
	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/pipeline"
	"github.com/svadhyaya/vedika/internal/worker"
)

var (
	corpusPath      string
	corpusOutPath   string
	corpusGraphPath string
	fetchTimeout    time.Duration
	fetchRate       float64
	noRobots        bool
	corpusLLM       bool
)

// corpusCmd represents the corpus command group
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Load, fetch, classify, and analyze hymn corpora",
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for a corpus",
	Long: `Stats loads the corpus, classifies every hymn's themes, and prints
hymn, verse, book, deity, and theme counts.`,
	RunE: runCorpusStats,
}

var corpusFetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch missing hymn text from the records' source URLs",
	Long: `Fetch visits the URL of every record that is not yet complete, extracts
the Devanagari lines from the page, and writes the completed corpus
back out. robots.txt rules and per-host rate limits are honored.`,
	RunE: runCorpusFetch,
}

var corpusAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full corpus analysis",
	Long: `Analyze runs the heuristic analysis over every hymn, classifies
themes, folds the triples into a knowledge graph, and writes the
analyses and graph as JSON. With --llm the corpus also goes through
the configured LLM provider on the worker pool.

Example:
  vedika corpus analyze --corpus data/rigveda.json --out analyses.json --graph graph.json`,
	RunE: runCorpusAnalyze,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusStatsCmd)
	corpusCmd.AddCommand(corpusFetchCmd)
	corpusCmd.AddCommand(corpusAnalyzeCmd)

	corpusCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "corpus JSON path (required)")
	_ = corpusCmd.MarkPersistentFlagRequired("corpus")

	corpusFetchCmd.Flags().StringVar(&corpusOutPath, "out", "", "output path (default: overwrite input)")
	corpusFetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 10*time.Minute, "overall fetch timeout")
	corpusFetchCmd.Flags().Float64Var(&fetchRate, "rate", 1, "requests per second per host")
	corpusFetchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")

	corpusAnalyzeCmd.Flags().StringVar(&corpusOutPath, "out", "analyses.json", "analyses output path")
	corpusAnalyzeCmd.Flags().StringVar(&corpusGraphPath, "graph", "", "knowledge graph output path (optional)")
	corpusAnalyzeCmd.Flags().BoolVar(&corpusLLM, "llm", false, "also run the LLM analysis path")
}

func runCorpusStats(cmd *cobra.Command, args []string) error {
	hymns, err := corpus.Load(corpusPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	corpus.NewThemeAnalyzer().AnalyzeAll(hymns)
	stats := corpus.Stats(hymns)

	renderer := pipeline.NewRenderer(verbose)
	renderer.RenderStats(os.Stdout, stats)
	return nil
}

func runCorpusFetch(cmd *cobra.Command, args []string) error {
	// Load raw records without the completeness filter: incomplete ones
	// are exactly the fetch targets.
	hymns, err := corpus.LoadAll(corpusPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.HTTP.RequestsPerSecond = fetchRate
	cfg.HTTP.RespectRobots = !noRobots

	var pages cache.Cache
	if cfg.Cache.Enabled {
		pages = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	fetcher := corpus.NewFetcher(cfg.HTTP, pages)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	// Only incomplete records with a URL are fetch targets; the rest pass
	// through untouched.
	var targets []model.Hymn
	var targetIdx []int
	for i, h := range hymns {
		if h.Status == model.HymnStatusComplete || h.URL == "" {
			continue
		}
		targets = append(targets, h)
		targetIdx = append(targetIdx, i)
	}

	batch := worker.NewBatchFetcher(fetcher, cfg.Concurrency.Workers)
	fetched := 0
	for _, r := range batch.ProcessHymns(ctx, targets) {
		if r.Error != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", r.Error)
			continue
		}
		hymns[targetIdx[r.Index]] = r.Hymn
		fetched++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Fetched %s (%d verses)\n", r.Hymn.Reference, r.Hymn.Verses)
		}
	}

	out := corpusOutPath
	if out == "" {
		out = corpusPath
	}
	if err := corpus.Save(out, hymns); err != nil {
		return fmt.Errorf("save corpus: %w", err)
	}

	fmt.Printf("Fetched %d hymns, wrote %s\n", fetched, out)
	return nil
}

func runCorpusAnalyze(cmd *cobra.Command, args []string) error {
	hymns, err := corpus.Load(corpusPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d hymns\n", len(hymns))
	}

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	if corpusLLM {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p := pipeline.NewPipeline(cfg)
	p.ClassifyThemes(hymns)
	analyses := p.AnalyzeCorpus(hymns)
	kg := p.BuildGraph(analyses)

	renderer := pipeline.NewRenderer(verbose)
	if err := renderer.RenderJSON(analyses, corpusOutPath); err != nil {
		return fmt.Errorf("render analyses: %w", err)
	}
	if corpusGraphPath != "" {
		if err := renderer.RenderJSON(kg, corpusGraphPath); err != nil {
			return fmt.Errorf("render graph: %w", err)
		}
	}

	renderer.RenderGraphSummary(os.Stdout, kg)

	if corpusLLM && p.HasLLM() {
		ctx := context.Background()
		llmAnalyses, err := p.AnalyzeCorpusLLM(ctx, hymns)
		if err != nil {
			return fmt.Errorf("LLM analysis: %w", err)
		}
		llmOut := corpusOutPath + ".llm.json"
		if err := renderer.RenderJSON(llmAnalyses, llmOut); err != nil {
			return fmt.Errorf("render LLM analyses: %w", err)
		}
	}

	return nil
}
