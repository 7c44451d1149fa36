package recommend

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStub_Defaults(t *testing.T) {
	s := &Stub{}
	if _, err := s.RankConcepts(context.Background(), RankRequest{}); !errors.Is(err, ErrNoSuggestion) {
		t.Errorf("RankConcepts() error = %v, want ErrNoSuggestion", err)
	}
	if _, err := s.NextConcept(context.Background(), NextRequest{}); !errors.Is(err, ErrNoSuggestion) {
		t.Errorf("NextConcept() error = %v, want ErrNoSuggestion", err)
	}
	if len(s.RankCalls) != 1 || len(s.NextCalls) != 1 {
		t.Errorf("calls = %d/%d, want 1/1", len(s.RankCalls), len(s.NextCalls))
	}
}

func TestStub_CannedAnswersAreCopied(t *testing.T) {
	s := &Stub{Ranking: []string{"a", "b"}, Suggestion: &NextSuggestion{NextConceptID: "a"}}

	ids, err := s.RankConcepts(context.Background(), RankRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids[0] = "mutated"
	if s.Ranking[0] != "a" {
		t.Error("caller mutation leaked into stub")
	}

	got, err := s.NextConcept(context.Background(), NextRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.NextConceptID = "mutated"
	if s.Suggestion.NextConceptID != "a" {
		t.Error("caller mutation leaked into stub")
	}
}

func TestStub_Block(t *testing.T) {
	s := &Stub{Block: true, Ranking: []string{"a"}}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.RankConcepts(ctx, RankRequest{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded", err)
	}
}
