package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o-mini",
	}
}

func openAIReply(status int, body map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	p := newTestOpenAIProvider(t, openAIReply(http.StatusOK, map[string]any{
		"id":    "chatcmpl-test",
		"model": "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": `{"concept_ids":["fractions","decimals"]}`},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}))

	resp, err := p.Generate(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage != (Usage{InputTokens: 40, OutputTokens: 25, TotalTokens: 65}) {
		t.Fatalf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" || resp.Model != "gpt-4o-mini" {
		t.Fatalf("resp = %+v", resp)
	}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
}

func TestOpenAIProvider_ErrorClasses(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
		{http.StatusUnauthorized, func(err error) bool { var e *ErrRequestRejected; return errors.As(err, &e) && e.Status == 401 }},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			p := newTestOpenAIProvider(t, openAIReply(tt.status, map[string]any{
				"error": map[string]any{"type": "error", "message": http.StatusText(tt.status)},
			}))
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				MaxTokens: 16,
			})
			if !tt.check(err) {
				t.Fatalf("unexpected error type %T (%v)", err, err)
			}
		})
	}
}

func TestOpenRouterProvider_DefaultsBaseURL(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
		t.Fatal("expected error without an API key")
	}
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Fatalf("model = %q", p.ModelID())
	}
}

func TestOpenRouterProvider_UsesBaseURLOverride(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "invalid_request_error", "message": "bad model"},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "nope/model", BaseURL: server.URL + "/api/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 16,
	})
	var rej *ErrRequestRejected
	if !errors.As(err, &rej) {
		t.Fatalf("expected ErrRequestRejected, got: %T (%v)", err, err)
	}
	if gotPath != "/api/v1/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestOpenAIProvider_LengthStopOnStructuredRequest(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-trunc",
			"model": "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": `{"concept_ids":["frac`},
				"finish_reason": "length",
			}},
		})
	})
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "rank"}},
		MaxTokens: 8,
		Schema:    &Schema{Name: "rank", Definition: map[string]any{"type": "object"}},
	})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestAzureProvider_RoutesToDeployment(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		gotVersion = r.URL.Query().Get("api-version")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-azure",
			"model": "gpt-4o",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": `{"concept_ids":["fractions"]}`},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16},
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewAzureProvider(AzureConfig{
		APIKey:     "azure-key",
		Endpoint:   server.URL,
		Deployment: "tutor-deploy",
		APIVersion: "2024-02-15-preview",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "tutor-deploy" {
		t.Errorf("ModelID() = %q, want tutor-deploy", p.ModelID())
	}

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Rank the eligible concepts."}},
		MaxTokens: 64,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"concept_ids":["fractions"]}` {
		t.Errorf("content = %s", resp.Content)
	}
	if gotPath != "/openai/deployments/tutor-deploy/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "azure-key" {
		t.Errorf("api-key header = %q", gotKey)
	}
	if gotVersion != "2024-02-15-preview" {
		t.Errorf("api-version = %q", gotVersion)
	}
}

func TestAzureConfig_BaseURL(t *testing.T) {
	tests := []struct {
		cfg  AzureConfig
		want string
	}{
		{AzureConfig{ResourceName: "tutor"}, "https://tutor.openai.azure.com"},
		{AzureConfig{ResourceName: "tutor", Endpoint: "https://custom.example"}, "https://custom.example"},
		{AzureConfig{}, ""},
	}
	for _, tt := range tests {
		if got := tt.cfg.BaseURL(); got != tt.want {
			t.Errorf("BaseURL(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestNewAzureProvider_RequiresDeployment(t *testing.T) {
	_, err := NewAzureProvider(AzureConfig{APIKey: "k", ResourceName: "r"})
	if err == nil {
		t.Fatal("expected error without deployment")
	}
}
