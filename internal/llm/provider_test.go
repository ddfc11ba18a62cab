package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewProvider_Selection(t *testing.T) {
	if p, err := NewProvider(Config{Provider: ""}); err != nil || p != nil {
		t.Errorf("Expected nil provider without error for empty config, got %v, %v", p, err)
	}
	if _, err := NewProvider(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("Expected an error for an unknown provider")
	}
	p, err := NewProvider(Config{Provider: "anthropic", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name() != "anthropic" {
		t.Errorf("Expected anthropic, got %s", p.Name())
	}
	if _, err := NewProvider(Config{Provider: "anthropic"}); err == nil {
		t.Error("Expected an error for anthropic without an API key")
	}
}

func TestAnthropicProvider_Analyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("Expected /v1/messages, got %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "test-key" {
			t.Errorf("Expected the API key header, got %q", r.Header.Get("x-api-key"))
		}
		if r.Header.Get("anthropic-version") == "" {
			t.Error("Expected the anthropic-version header")
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.System == "" {
			t.Error("Expected a system prompt")
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": `{"confidence": 0.9}`}},
			"model":   "claude-3-5-sonnet-20241022",
			"usage":   map[string]int{"input_tokens": 100, "output_tokens": 50},
		})
	}))
	defer server.Close()

	p, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	resp, err := p.Analyze(context.Background(), AnalyzeRequest{SanskritText: "अग्निमीळे"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Content != `{"confidence": 0.9}` {
		t.Errorf("Expected the text content, got %q", resp.Content)
	}
	if resp.TokensUsed != 150 {
		t.Errorf("Expected 150 tokens, got %d", resp.TokensUsed)
	}
}

func TestOllamaProvider_Analyze(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected /api/generate, got %s", r.URL.Path)
		}

		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Stream {
			t.Error("Expected streaming disabled")
		}
		if req.Model != "llama3.1:8b" {
			t.Errorf("Expected model llama3.1:8b, got %s", req.Model)
		}

		_ = json.NewEncoder(w).Encode(ollamaResponse{
			Model:    "llama3.1:8b",
			Response: `{"confidence": 0.8}`,
			Done:     true,
		})
	}))
	defer server.Close()

	p, err := NewOllamaProvider(Config{BaseURL: server.URL, Model: "llama3.1:8b"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	resp, err := p.Analyze(context.Background(), AnalyzeRequest{SanskritText: "अग्निमीळे"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Content != `{"confidence": 0.8}` {
		t.Errorf("Expected the response text, got %q", resp.Content)
	}
	if resp.TokensUsed == 0 {
		t.Error("Expected a token estimate when Ollama reports none")
	}
}

func TestOllamaProvider_RequiresModel(t *testing.T) {
	p, err := NewOllamaProvider(Config{BaseURL: "http://localhost:11434"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := p.Analyze(context.Background(), AnalyzeRequest{SanskritText: "अग्निमीळे"}); err == nil {
		t.Error("Expected an error when no model is configured")
	}
}

func TestOllamaProvider_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(ollamaError{Error: "model not found"})
	}))
	defer server.Close()

	p, _ := NewOllamaProvider(Config{BaseURL: server.URL, Model: "missing"})
	if _, err := p.Analyze(context.Background(), AnalyzeRequest{SanskritText: "x"}); err == nil {
		t.Error("Expected an API error to surface")
	}
}
