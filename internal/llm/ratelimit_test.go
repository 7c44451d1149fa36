package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestWithRateLimit_DisabledReturnsInner(t *testing.T) {
	inner := NewMockProvider()
	if p := WithRateLimit(inner, 0, 5); p != Provider(inner) {
		t.Error("WithRateLimit(0) should return the inner provider")
	}
}

func TestWithRateLimit_BurstThenWait(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{}`)}
	mock := NewMockProvider(ok, ok, ok)
	// one call per second after a burst of two
	p := WithRateLimit(mock, 60, 2)

	for i := 0; i < 2; i++ {
		if _, err := p.Generate(context.Background(), Request{}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("third call: expected deadline exceeded, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}
