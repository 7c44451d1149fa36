package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/masteryforge/internal/store"
)

type recordingEvents struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"concept_ids":["a"]}`),
		Usage:   Usage{InputTokens: 20, OutputTokens: 3},
	})
	events := &recordingEvents{}
	p := WithLogging(mock, "mock", events, nil)

	ctx := WithPurpose(context.Background(), "rank-concepts")
	if _, err := p.Generate(ctx, Request{System: "coach", Messages: []Message{{Role: RoleUser, Content: "rank"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events.events))
	}
	e := events.events[0]
	if e.Provider != "mock" || e.Purpose != "rank-concepts" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 20 || e.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d, want 20/3", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[system]\ncoach") {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != `{"concept_ids":["a"]}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailureAndIgnoresStoreErrors(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	events := &recordingEvents{err: errors.New("disk full")}
	p := WithLogging(mock, "mock", events, nil)

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider error to pass through, got %v", err)
	}
	if len(events.events) != 1 || events.events[0].Success || events.events[0].ErrorMessage == "" {
		t.Errorf("events = %+v", events.events)
	}
}

func TestLoggingProvider_NilRecorder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
