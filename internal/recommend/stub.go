package recommend

import (
	"context"
	"sync"
)

// Stub is a deterministic Adapter for tests and offline runs. With no
// canned answers it always reports ErrNoSuggestion.
type Stub struct {
	mu sync.Mutex

	Ranking    []string
	Suggestion *NextSuggestion
	Err        error
	// Panic makes every call panic, for exercising caller recovery.
	Panic bool
	// Block makes every call wait for ctx to end.
	Block bool

	RankCalls []RankRequest
	NextCalls []NextRequest
}

func (s *Stub) RankConcepts(ctx context.Context, req RankRequest) ([]string, error) {
	s.mu.Lock()
	s.RankCalls = append(s.RankCalls, req)
	ranking, err := s.Ranking, s.Err
	s.mu.Unlock()

	if err := s.misbehave(ctx); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if ranking == nil {
		return nil, ErrNoSuggestion
	}
	return append([]string(nil), ranking...), nil
}

func (s *Stub) NextConcept(ctx context.Context, req NextRequest) (*NextSuggestion, error) {
	s.mu.Lock()
	s.NextCalls = append(s.NextCalls, req)
	suggestion, err := s.Suggestion, s.Err
	s.mu.Unlock()

	if err := s.misbehave(ctx); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, ErrNoSuggestion
	}
	out := *suggestion
	return &out, nil
}

func (s *Stub) misbehave(ctx context.Context) error {
	if s.Panic {
		panic("recommend stub: forced panic")
	}
	if s.Block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}
