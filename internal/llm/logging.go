package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/abhisek/masteryforge/internal/logger"
	"github.com/abhisek/masteryforge/internal/observability"
	"github.com/abhisek/masteryforge/internal/store"
)

type purposeKey struct{}

// WithPurpose labels the calls made under ctx, e.g. "rank-concepts".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}

// EventRecorder persists LLM request events.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider records every call as an event, a log line and a span.
type LoggingProvider struct {
	inner  Provider
	name   string
	events EventRecorder
	log    *logger.Logger
}

// WithLogging wraps a Provider. events may be nil, in which case calls only
// reach the structured log.
func WithLogging(p Provider, name string, events EventRecorder, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, name: name, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (resp *Response, err error) {
	purpose := PurposeFrom(ctx)
	ctx, span := observability.Start(ctx, "llm.generate",
		attribute.String("llm.provider", l.name),
		attribute.String("llm.purpose", purpose),
	)
	defer observability.Finish(span, &err)

	start := time.Now()
	resp, err = l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: describeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
		span.SetAttributes(
			attribute.String("llm.model", resp.Model),
			attribute.Int("llm.tokens.input", resp.Usage.InputTokens),
			attribute.Int("llm.tokens.output", resp.Usage.OutputTokens),
		)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.log.Debug("llm request",
		"provider", data.Provider,
		"model", data.Model,
		"purpose", data.Purpose,
		"latency_ms", data.LatencyMs,
		"success", data.Success,
	)

	if l.events != nil {
		if recErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), data); recErr != nil {
			l.log.Warn("failed to record LLM request event", "error", recErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// describeRequest renders the prompt as it is shown by `llm view`.
func describeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
