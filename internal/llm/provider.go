// Package llm provides optional LLM-assisted Sanskrit analysis through
// pluggable providers.
package llm

import (
	"context"
	"fmt"

	"github.com/svadhyaya/vedika/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Analyze sends one Sanskrit analysis request and returns the raw
	// model output. Parsing and fallback handling happen in the Analyzer.
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// AnalyzeRequest contains the input for one LLM Sanskrit analysis.
type AnalyzeRequest struct {
	// SanskritText is the Devanagari verse to analyze
	SanskritText string

	// Context is optional surrounding material (translation, verse reference)
	Context string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// AnalyzeResponse contains the LLM's raw output.
type AnalyzeResponse struct {
	// Content is the model's text, expected but not guaranteed to be JSON
	Content string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 1500,
	}
}

const systemPrompt = "You are a Sanskrit scholar expert in Paninian grammar and Vedic literature."

// BuildPrompt constructs the default Sanskrit analysis prompt. The response
// contract at the end must stay in sync with model.LLMAnalysis.
func BuildPrompt(sanskritText, context string) string {
	return fmt.Sprintf(`You are an expert in Sanskrit grammar and Vedic literature, specifically trained in Paninian grammatical analysis and the semantic-network treatment of Sanskrit.

Analyze this Sanskrit text following these principles:

Sanskrit Text: %s
Context: %s

Please provide:

1. MORPHOLOGICAL ANALYSIS:
   - Break down each word into root + suffixes
   - Identify verb roots (dhatus)
   - Determine case endings and their grammatical roles

2. KARAKA ANALYSIS (following Panini's framework):
   - Identify the main verb and its semantic roles
   - Map each word to appropriate karaka relations:
     * %s (karta) - agent/subject
     * %s (karma) - object/patient
     * %s (karana) - instrument
     * %s (sampradana) - recipient
     * %s (apadana) - source/origin
     * %s (adhikarana) - location/time

3. SEMANTIC FIELD:
   - Classify the content domain (ritual, cosmology, deities, etc.)
   - Identify key theological or philosophical concepts

4. TRIPLE REPRESENTATION:
   - Express the meaning as semantic triples: verb, relation, argument

5. INTERPRETATION:
   - Provide scholarly interpretation of the verse's meaning
   - Note any significant Vedic concepts or symbolism

Format your response as structured JSON with these keys:
- morphology: dict of word analyses
- karaka_relations: list of karaka mappings
- semantic_field: domain classification
- triples: list of semantic triples ({"verb": ..., "relation": ..., "argument": ...})
- interpretation: scholarly explanation
- confidence: confidence score (0-1)
`, sanskritText, context,
		model.KarakaKarta, model.KarakaKarma, model.KarakaKarana,
		model.KarakaSampradana, model.KarakaApadana, model.KarakaAdhikarana)
}
