package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicReply(text, stop string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stop,
			"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
		})
	}
}

func anthropicFailure(status int, header http.Header) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": http.StatusText(status)},
		})
	}
}

func rankRequest() Request {
	return Request{
		System:    "You are a learning coach.",
		Messages:  []Message{{Role: RoleUser, Content: "Rank the eligible concepts."}},
		MaxTokens: 256,
		Schema: &Schema{
			Name: "test-rank",
			Definition: map[string]any{
				"type":       "object",
				"properties": map[string]any{"concept_ids": map[string]any{"type": "array", "items": map[string]any{"type": "string"}}},
				"required":   []any{"concept_ids"},
			},
		},
	}
}

func TestAnthropicProvider_StructuredReply(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"concept_ids":["fractions","decimals"]}`, "end_turn"))
	resp, err := p.Generate(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.TotalTokens != 80 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicProvider_TruncatedReply(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicReply(`{"concept_ids":["fra`, "max_tokens"))
	_, err := p.Generate(context.Background(), rankRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestAnthropicProvider_RateLimitCarriesRetryAfter(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicFailure(http.StatusTooManyRequests, http.Header{"Retry-After": {"3"}}))
	_, err := p.Generate(context.Background(), rankRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}
	if rl.RetryAfter != 3*time.Second {
		t.Errorf("retry after = %s, want 3s", rl.RetryAfter)
	}
}

func TestAnthropicProvider_ErrorClasses(t *testing.T) {
	p := newTestAnthropicProvider(t, anthropicFailure(http.StatusInternalServerError, nil))
	_, err := p.Generate(context.Background(), rankRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("500: expected ErrProviderUnavailable, got %T (%v)", err, err)
	}

	p = newTestAnthropicProvider(t, anthropicFailure(http.StatusUnauthorized, nil))
	_, err = p.Generate(context.Background(), rankRequest())
	var rej *ErrRequestRejected
	if !errors.As(err, &rej) {
		t.Fatalf("401: expected ErrRequestRejected, got %T (%v)", err, err)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		provider, name, want string
	}{
		{"anthropic", "claude-haiku", "claude-haiku-4-5-20251001"},
		{"anthropic", "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
		{"gemini", "gemini-flash", "gemini-2.0-flash"},
		{"openai", "gpt-4o-mini", "gpt-4o-mini"},
		{"azure", "claude-haiku", "claude-haiku"},
	}
	for _, tt := range tests {
		if got := ResolveModel(tt.provider, tt.name); got != tt.want {
			t.Errorf("ResolveModel(%q, %q) = %q, want %q", tt.provider, tt.name, got, tt.want)
		}
	}
}

func TestRetryAfter(t *testing.T) {
	if got := retryAfter(http.Header{"Retry-After": {"2"}}); got != 2*time.Second {
		t.Errorf("got %s", got)
	}
	if got := retryAfter(http.Header{"Retry-After": {"Wed, 21 Oct 2015 07:28:00 GMT"}}); got != 0 {
		t.Errorf("date form should be ignored, got %s", got)
	}
	if got := retryAfter(http.Header{}); got != 0 {
		t.Errorf("got %s", got)
	}
}
