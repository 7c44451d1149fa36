package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var okResponse = MockResponse{Content: json.RawMessage(`{"concept_ids":["a"]}`)}

func down() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		queue     []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first try", []MockResponse{okResponse}, 1, false},
		{"transient then ok", []MockResponse{down(), okResponse}, 2, false},
		{"rate limited then ok", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, okResponse}, 2, false},
		{"gives up after max attempts", []MockResponse{down(), down(), down(), okResponse}, 3, true},
		{"truncated is final", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, okResponse}, 1, true},
		{"rejected is final", []MockResponse{{Err: &ErrRequestRejected{Status: 401, Err: errors.New("bad key")}}, okResponse}, 1, true},
		{"invalid retried once", []MockResponse{
			{Err: &ErrInvalidResponse{Err: errors.New("not json")}},
			{Err: &ErrInvalidResponse{Err: errors.New("not json")}},
			okResponse,
		}, 2, true},
		{"invalid then ok", []MockResponse{{Err: &ErrInvalidResponse{Err: errors.New("not json")}}, okResponse}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.queue...)
			resp, err := WithRetry(mock, fastRetry(3), nil).Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"concept_ids":["a"]}`, string(resp.Content))
		})
	}
}

func TestRetry_CancelledContextStopsImmediately(t *testing.T) {
	mock := NewMockProvider(down(), okResponse)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry(3), nil).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, mock.CallCount())
}

func TestRetry_DoesNotSleepPastDeadline(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: time.Hour}}, okResponse)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	start := time.Now()
	_, err := WithRetry(mock, fastRetry(3), nil).Generate(ctx, Request{})
	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, 1, mock.CallCount())
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestRetry_ZeroAttemptsStillCallsOnce(t *testing.T) {
	mock := NewMockProvider(okResponse)
	_, err := WithRetry(mock, RetryConfig{}, nil).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_BackoffBounds(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}
	for attempt, base := range []time.Duration{100, 200, 300, 300} {
		base *= time.Millisecond
		got := r.backoff(attempt, errors.New("x"))
		assert.GreaterOrEqual(t, got, base*8/10, "attempt %d", attempt)
		assert.LessOrEqual(t, got, base*12/10, "attempt %d", attempt)
	}
	assert.Equal(t, 7*time.Second, r.backoff(0, &ErrRateLimit{RetryAfter: 7 * time.Second}))
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), fastRetry(2), nil).ModelID())
}
