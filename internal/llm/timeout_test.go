package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for its context to end.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_CancelsSlowCalls(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("call took %v, want about 20ms", elapsed)
	}
	if p.ModelID() != "blocking" {
		t.Errorf("ModelID() = %q", p.ModelID())
	}
}

func TestWithTimeout_NonPositiveDisables(t *testing.T) {
	inner := NewMockProvider()
	if p := WithTimeout(inner, 0); p != Provider(inner) {
		t.Error("WithTimeout(0) should return the inner provider")
	}
}
