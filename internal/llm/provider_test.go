package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_QueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`["fractions"]`), Usage: Usage{InputTokens: 40, OutputTokens: 6, TotalTokens: 46}},
		MockResponse{Content: json.RawMessage(`{"next_concept_id":"decimals"}`)},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "rank", Messages: []Message{{Role: RoleUser, Content: "one"}}})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if string(first.Content) != `["fractions"]` || first.Usage.TotalTokens != 46 || first.StopReason != "end" {
		t.Fatalf("first = %s usage=%+v stop=%q", first.Content, first.Usage, first.StopReason)
	}

	second, err := mock.Generate(ctx, Request{System: "next"})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(second.Content) != `{"next_concept_id":"decimals"}` {
		t.Fatalf("second = %s", second.Content)
	}

	// Drained.
	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("drained queue error = %v (%T)", err, err)
	}

	if mock.CallCount() != 3 {
		t.Fatalf("CallCount() = %d, want 3", mock.CallCount())
	}
	if mock.Calls[0].System != "rank" || mock.Calls[1].System != "next" {
		t.Errorf("recorded systems = %q, %q", mock.Calls[0].System, mock.Calls[1].System)
	}
}

func TestMockProvider_CanceledContext(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestMockProvider_RespondOverridesQueue(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"queued":true}`)})
	mock.Respond = func(req Request) MockResponse {
		return MockResponse{Content: json.RawMessage(`"` + req.System + `"`), StopReason: "max_tokens"}
	}

	resp, err := mock.Generate(context.Background(), Request{System: "coach"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"coach"` || resp.StopReason != "max_tokens" {
		t.Fatalf("resp = %s / %q", resp.Content, resp.StopReason)
	}

	var rl *ErrRateLimit
	mock.Respond = func(Request) MockResponse { return MockResponse{Err: &ErrRateLimit{}} }
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d", mock.CallCount())
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "rank-concepts")
	if p := PurposeFrom(ctx); p != "rank-concepts" {
		t.Fatalf("expected 'rank-concepts', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	ok := map[string]Config{
		"mock":       {Provider: "mock"},
		"anthropic":  {Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-ant"}},
		"openai":     {Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-oai"}},
		"openrouter": {Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "or"}},
	}
	for name, cfg := range ok {
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", name, err)
		}
	}

	for _, provider := range []string{"anthropic", "openai", "openrouter", "gemini", "", "llama"} {
		if err := (Config{Provider: provider}).Validate(); err == nil {
			t.Errorf("provider %q without credentials: expected error", provider)
		}
	}
}

func TestConfig_ValidateAzure(t *testing.T) {
	tests := []struct {
		name    string
		azure   AzureConfig
		wantErr bool
	}{
		{"missing key", AzureConfig{ResourceName: "r", Deployment: "d"}, true},
		{"missing endpoint", AzureConfig{APIKey: "k", Deployment: "d"}, true},
		{"missing deployment", AzureConfig{APIKey: "k", ResourceName: "r"}, true},
		{"complete", AzureConfig{APIKey: "k", ResourceName: "r", Deployment: "d"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{Provider: "azure", Azure: tt.azure}.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MASTERYFORGE_LLM_PROVIDER", "azure")
	t.Setenv("MASTERYFORGE_AZURE_OPENAI_API_KEY", "k")
	t.Setenv("MASTERYFORGE_AZURE_OPENAI_RESOURCE_NAME", "tutor")
	t.Setenv("MASTERYFORGE_AZURE_OPENAI_DEPLOYMENT", "gpt4")
	t.Setenv("MASTERYFORGE_LLM_TIMEOUT", "12s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "azure" || cfg.Azure.Deployment != "gpt4" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 12*time.Second {
		t.Errorf("timeout = %v, want 12s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDiscoverConfig_PrefersAzure(t *testing.T) {
	t.Setenv("AZURE_OPENAI_API_KEY", "k")
	t.Setenv("AZURE_OPENAI_RESOURCE_NAME", "tutor")
	t.Setenv("AZURE_OPENAI_DEPLOYMENT", "gpt4")
	t.Setenv("OPENAI_API_KEY", "sk")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "azure" {
		t.Fatalf("DiscoverConfig() = %q, %v; want azure", cfg.Provider, ok)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
	if _, err := NewProvider(context.Background(), Config{Provider: "bogus"}, nil, nil); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestDiscoverConfig_OpenRouterLast(t *testing.T) {
	for _, k := range []string{"AZURE_OPENAI_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openrouter" || cfg.OpenRouter.APIKey != "or-key" {
		t.Fatalf("DiscoverConfig() = %+v, %v", cfg, ok)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
