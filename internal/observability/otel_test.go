package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracerProvider_Off(t *testing.T) {
	tp, err := NewTracerProvider(context.Background(), TracingConfig{})
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewTracerProvider_UnknownMode(t *testing.T) {
	_, err := NewTracerProvider(context.Background(), TracingConfig{Mode: "zipkin"})
	assert.Error(t, err)
}

func TestNewTracerProvider_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.Background()
	tp, err := NewTracerProvider(ctx, TracingConfig{Mode: ModeStdout, Writer: &buf, Version: "test"})
	require.NoError(t, err)
	require.NotNil(t, tp)

	_, span := tp.Tracer("test").Start(ctx, "select-next-concept")
	span.SetAttributes(UserID("u1"))
	span.End()
	require.NoError(t, tp.Shutdown(ctx))

	out := buf.String()
	assert.Contains(t, out, "select-next-concept")
	assert.Contains(t, out, "masteryforge")
	assert.Contains(t, out, "u1")
}

func TestFinish_NoopTracer(t *testing.T) {
	_, span := Start(context.Background(), "noop", ConceptID("c"))
	err := errors.New("boom")
	Finish(span, &err)
	Finish(span, nil)
}

func TestParseHeaders(t *testing.T) {
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, ParseHeaders("a=1, b=2,bad,=x"))
	assert.Nil(t, ParseHeaders(""))
}

func TestSampleRatio(t *testing.T) {
	assert.Equal(t, 1.0, sampleRatio(0))
	assert.Equal(t, 1.0, sampleRatio(2))
	assert.Equal(t, 0.25, sampleRatio(0.25))
}
