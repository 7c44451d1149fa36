// Package observability configures OpenTelemetry tracing.
package observability

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"github.com/abhisek/masteryforge/internal/logger"
)

// Tracing modes.
const (
	ModeOff    = ""
	ModeStdout = "stdout"
	ModeOTLP   = "otlp"
)

// TracingConfig selects and configures the span exporter.
type TracingConfig struct {
	Mode        string
	ServiceName string
	Version     string
	Environment string

	// OTLP only.
	Endpoint string
	Headers  map[string]string
	Insecure bool

	// SampleRatio in [0,1]. Zero means sample everything.
	SampleRatio float64

	// Writer receives stdout spans. Defaults to os.Stdout.
	Writer io.Writer
}

var (
	otelOnce     sync.Once
	otelShutdown = func(context.Context) error { return nil }
)

// InitTracing installs a global tracer provider for the configured mode
// and returns its shutdown function. With ModeOff the global no-op
// tracer stays in place. Only the first call has any effect.
func InitTracing(ctx context.Context, log *logger.Logger, cfg TracingConfig) (func(context.Context) error, error) {
	var initErr error
	otelOnce.Do(func() {
		tp, err := NewTracerProvider(ctx, cfg)
		if err != nil {
			initErr = err
			return
		}
		if tp == nil {
			return
		}
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		otelShutdown = tp.Shutdown
		if log != nil {
			log.Info("otel tracing initialized", "mode", cfg.Mode, "service", serviceName(cfg), "endpoint", cfg.Endpoint)
		}
	})
	return otelShutdown, initErr
}

// NewTracerProvider builds a tracer provider without installing it.
// It returns nil for ModeOff.
func NewTracerProvider(ctx context.Context, cfg TracingConfig) (*sdktrace.TracerProvider, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == ModeOff {
		return nil, nil
	}

	exporter, err := buildExporter(ctx, mode, cfg)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName(cfg)),
			semconv.ServiceVersionKey.String(strings.TrimSpace(cfg.Version)),
			attribute.String("deployment.environment", strings.TrimSpace(cfg.Environment)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(res),
	), nil
}

func buildExporter(ctx context.Context, mode string, cfg TracingConfig) (sdktrace.SpanExporter, error) {
	switch mode {
	case ModeStdout:
		w := cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("stdout exporter: %w", err)
		}
		return exp, nil
	case ModeOTLP:
		var opts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		if len(cfg.Headers) > 0 {
			opts = append(opts, otlptracehttp.WithHeaders(cfg.Headers))
		}
		exp, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("otlp exporter: %w", err)
		}
		return exp, nil
	default:
		return nil, fmt.Errorf("unknown tracing mode %q (want %q or %q)", mode, ModeStdout, ModeOTLP)
	}
}

func serviceName(cfg TracingConfig) string {
	if s := strings.TrimSpace(cfg.ServiceName); s != "" {
		return s
	}
	return "masteryforge"
}

func sampleRatio(r float64) float64 {
	switch {
	case r <= 0 || r > 1:
		return 1
	default:
		return r
	}
}

// ParseHeaders parses "k1=v1,k2=v2" into a map. Malformed pairs are skipped.
func ParseHeaders(raw string) map[string]string {
	headers := map[string]string{}
	for _, part := range strings.Split(raw, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if !ok || key == "" || val == "" {
			continue
		}
		headers[key] = val
	}
	if len(headers) == 0 {
		return nil
	}
	return headers
}
