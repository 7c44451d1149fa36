package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config selects and configures the provider used by the recommender.
// Provider is one of "anthropic", "openai", "azure", "gemini",
// "openrouter" or "mock".
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Azure      AzureConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one logical call, retries included.
	Timeout time.Duration

	// RequestsPerMinute caps calls to the vendor; 0 means unlimited.
	RequestsPerMinute int
	Burst             int
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // any OpenAI-compatible endpoint
}

// AzureConfig needs Endpoint or ResourceName; Endpoint wins when both are
// set. Deployment doubles as the reported model.
type AzureConfig struct {
	APIKey       string
	ResourceName string
	Endpoint     string
	Deployment   string
	APIVersion   string
}

// BaseURL returns the Azure endpoint to call.
func (c AzureConfig) BaseURL() string {
	switch {
	case c.Endpoint != "":
		return c.Endpoint
	case c.ResourceName != "":
		return fmt.Sprintf("https://%s.openai.azure.com", c.ResourceName)
	}
	return ""
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheapest model of each vendor.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Azure:      AzureConfig{APIVersion: "2024-02-15-preview"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
		Burst:   2,
	}
}

const envPrefix = "MASTERYFORGE_"

// ConfigFromEnv overlays MASTERYFORGE_* variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	bindings := map[string]*string{
		"LLM_PROVIDER":               &cfg.Provider,
		"ANTHROPIC_API_KEY":          &cfg.Anthropic.APIKey,
		"ANTHROPIC_MODEL":            &cfg.Anthropic.Model,
		"OPENAI_API_KEY":             &cfg.OpenAI.APIKey,
		"OPENAI_MODEL":               &cfg.OpenAI.Model,
		"OPENAI_BASE_URL":            &cfg.OpenAI.BaseURL,
		"AZURE_OPENAI_API_KEY":       &cfg.Azure.APIKey,
		"AZURE_OPENAI_RESOURCE_NAME": &cfg.Azure.ResourceName,
		"AZURE_OPENAI_ENDPOINT":      &cfg.Azure.Endpoint,
		"AZURE_OPENAI_DEPLOYMENT":    &cfg.Azure.Deployment,
		"AZURE_OPENAI_API_VERSION":   &cfg.Azure.APIVersion,
		"GEMINI_API_KEY":             &cfg.Gemini.APIKey,
		"GEMINI_MODEL":               &cfg.Gemini.Model,
		"OPENROUTER_API_KEY":         &cfg.OpenRouter.APIKey,
		"OPENROUTER_MODEL":           &cfg.OpenRouter.Model,
		"OPENROUTER_BASE_URL":        &cfg.OpenRouter.BaseURL,
	}
	for name, dst := range bindings {
		if v := os.Getenv(envPrefix + name); v != "" {
			*dst = v
		}
	}
	if d, err := time.ParseDuration(os.Getenv(envPrefix + "LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv(envPrefix + "LLM_RPM")); err == nil && n > 0 {
		cfg.RequestsPerMinute = n
	}
	return cfg
}

// DiscoverConfig looks for the vendors' own key variables, in the order
// Azure OpenAI, Gemini, OpenAI, Anthropic, OpenRouter, and configures the
// first one found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("AZURE_OPENAI_API_KEY"); k != "" {
		cfg.Azure.APIKey = k
		cfg.Azure.ResourceName = os.Getenv("AZURE_OPENAI_RESOURCE_NAME")
		cfg.Azure.Endpoint = os.Getenv("AZURE_OPENAI_ENDPOINT")
		cfg.Azure.Deployment = os.Getenv("AZURE_OPENAI_DEPLOYMENT")
		if v := os.Getenv("AZURE_OPENAI_API_VERSION"); v != "" {
			cfg.Azure.APIVersion = v
		}
		if cfg.Azure.BaseURL() != "" && cfg.Azure.Deployment != "" {
			cfg.Provider = "azure"
			return cfg, true
		}
	}

	for _, c := range []struct {
		env, provider string
		dst           *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	} {
		if k := os.Getenv(c.env); k != "" {
			cfg.Provider = c.provider
			*c.dst = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has what it needs to connect.
func (c Config) Validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%s%s is required for the %s provider", envPrefix, name, c.Provider)
	}
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return missing("ANTHROPIC_API_KEY")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return missing("OPENAI_API_KEY")
		}
	case "azure":
		switch {
		case c.Azure.APIKey == "":
			return missing("AZURE_OPENAI_API_KEY")
		case c.Azure.BaseURL() == "":
			return missing("AZURE_OPENAI_ENDPOINT")
		case c.Azure.Deployment == "":
			return missing("AZURE_OPENAI_DEPLOYMENT")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return missing("GEMINI_API_KEY")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return missing("OPENROUTER_API_KEY")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
