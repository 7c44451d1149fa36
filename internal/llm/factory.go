package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/masteryforge/internal/logger"
)

// NewProvider builds the configured vendor client and layers the
// decorators on it. Calls flow timeout, retry, rate limit, logging,
// vendor, so every attempt is throttled and recorded and the timeout
// covers all of them.
func NewProvider(ctx context.Context, cfg Config, events EventRecorder, log *logger.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "azure":
		base, err = NewAzureProvider(cfg.Azure)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	p := WithLogging(base, cfg.Provider, events, log)
	p = WithRateLimit(p, cfg.RequestsPerMinute, cfg.Burst)
	p = WithRetry(p, cfg.Retry, log)
	return WithTimeout(p, cfg.Timeout), nil
}
