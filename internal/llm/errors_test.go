package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")

	var rl *ErrRateLimit
	if !errors.As(classifyStatus(http.StatusTooManyRequests, base), &rl) {
		t.Error("429 should be ErrRateLimit")
	}

	var rej *ErrRequestRejected
	if err := classifyStatus(http.StatusUnauthorized, base); !errors.As(err, &rej) || rej.Status != 401 {
		t.Errorf("401 should be ErrRequestRejected, got %v", err)
	}

	var unavail *ErrProviderUnavailable
	for _, status := range []int{0, 500, 503} {
		if !errors.As(classifyStatus(status, base), &unavail) {
			t.Errorf("status %d should be ErrProviderUnavailable", status)
		}
	}

	if !errors.Is(classifyStatus(500, base), base) {
		t.Error("classified errors should wrap the cause")
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ErrRateLimit{Err: errors.New("x")}, true},
		{&ErrProviderUnavailable{}, true},
		{&ErrInvalidResponse{Err: errors.New("x")}, true},
		{errors.New("connection reset"), true},
		{&ErrRequestRejected{Status: 400, Err: errors.New("x")}, false},
		{&ErrMaxTokensExceeded{}, false},
		{context.DeadlineExceeded, false},
		{fmt.Errorf("wrapped: %w", context.Canceled), false},
	}
	for _, tt := range tests {
		if got := Retryable(tt.err); got != tt.want {
			t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
