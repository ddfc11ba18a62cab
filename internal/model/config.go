package model

import "time"

// Config is the complete Vedika configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	LLM         LLMConfig         `yaml:"llm"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Embedding   EmbeddingConfig   `yaml:"embedding"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig controls the hymn fetcher.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	RespectRobots     bool          `yaml:"respect_robots"`
}

// CacheConfig controls the layered cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// LLMConfig controls the optional LLM analysis path.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // openai, anthropic, ollama; empty disables
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`

	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// ConcurrencyConfig controls the worker pool used for external calls
// (fetching and batch LLM analysis). The heuristic graph fold itself is
// always sequential.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// EmbeddingConfig controls the co-occurrence embedding trainer.
type EmbeddingConfig struct {
	Dimension     int   `yaml:"dimension"`
	ContextWindow int   `yaml:"context_window"`
	Seed          int64 `yaml:"seed"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "Vedika/0.1 (+https://github.com/svadhyaya/vedika)",
			MaxBodyBytes:      2_000_000,
			RequestsPerSecond: 1,
			Burst:             2,
			RespectRobots:     true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".vedika-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1500,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Embedding: EmbeddingConfig{
			Dimension:     100,
			ContextWindow: 3,
			Seed:          1,
		},
		Output: OutputConfig{},
	}
}
