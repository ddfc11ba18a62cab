package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/svadhyaya/vedika/internal/model"
	"github.com/svadhyaya/vedika/internal/pipeline"
)

var (
	analyzeRef         string
	analyzeTranslation string
	analyzeJSON        string
	analyzeLLM         bool
	llmProvider        string
	llmModel           string
	llmTimeout         time.Duration
	noCache            bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <sanskrit-text>",
	Short: "Analyze one Sanskrit verse into karaka triples",
	Long: `Analyze tokenizes a Devanagari verse, guesses verb roots and case
endings for every word, and emits one semantic triple per non-anchor
token.

Example:
  vedika analyze "अग्निमीळे पुरोहितं यज्ञस्य देवमृत्विजम्"
  vedika analyze "अग्निमीळे" --ref "RV 1.1.1a" --json analysis.json
  vedika analyze "अग्निमीळे" --llm --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeRef, "ref", "", "verse reference (e.g. RV 1.1.1a)")
	analyzeCmd.Flags().StringVar(&analyzeTranslation, "translation", "", "English translation to carry on the record")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&analyzeLLM, "llm", false, "also run the LLM analysis path")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
	analyzeCmd.Flags().DurationVar(&llmTimeout, "llm-timeout", 30*time.Second, "per-request LLM timeout")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := args[0]

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	if analyzeLLM {
		if err := configureLLM(cfg); err != nil {
			return err
		}
	}

	p := pipeline.NewPipeline(cfg)
	analysis := p.AnalyzeVerse(text, analyzeRef, analyzeTranslation)

	renderer := pipeline.NewRenderer(verbose)
	renderer.RenderAnalysis(os.Stdout, analysis)

	if analyzeJSON != "" {
		if err := renderer.RenderJSON(analysis, analyzeJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	if analyzeLLM && p.HasLLM() {
		ctx, cancel := context.WithTimeout(context.Background(), llmTimeout)
		defer cancel()

		llmAnalysis, err := p.AnalyzeVerseLLM(ctx, text, analyzeTranslation, analyzeRef)
		if err != nil {
			return fmt.Errorf("LLM analysis failed: %w", err)
		}

		fmt.Println()
		fmt.Printf("LLM field:       %s\n", llmAnalysis.SemanticField)
		fmt.Printf("LLM confidence:  %.2f\n", llmAnalysis.Confidence)
		for _, t := range llmAnalysis.Triples {
			fmt.Printf("  %s --%s--> %s\n", t.Verb, t.Relation, t.Argument)
		}
		if llmAnalysis.Interpretation != "" {
			fmt.Printf("Interpretation:  %s\n", llmAnalysis.Interpretation)
		}
	}

	return nil
}

// configureLLM fills cfg.LLM from flags and environment. API keys come from
// the environment only.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.Timeout = int(llmTimeout.Seconds())

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
