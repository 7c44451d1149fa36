package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/masteryforge/internal/llm"
)

// LLMAdapterConfig holds generation settings for the LLM adapter.
type LLMAdapterConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMAdapterConfig returns sensible defaults.
func DefaultLLMAdapterConfig() LLMAdapterConfig {
	return LLMAdapterConfig{
		MaxTokens:   512,
		Temperature: 0.2,
	}
}

// LLMAdapter asks a language model for recommendations.
type LLMAdapter struct {
	provider llm.Provider
	cfg      LLMAdapterConfig
}

// NewLLMAdapter creates an adapter backed by provider.
func NewLLMAdapter(provider llm.Provider, cfg LLMAdapterConfig) *LLMAdapter {
	return &LLMAdapter{provider: provider, cfg: cfg}
}

func (a *LLMAdapter) RankConcepts(ctx context.Context, req RankRequest) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "rank-concepts")

	msg, err := buildRankMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build rank prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, a.request(msg, RankSchema))
	if err != nil {
		return nil, fmt.Errorf("rank concepts: %w", err)
	}

	ids, err := ParseRanking(resp.Content)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (a *LLMAdapter) NextConcept(ctx context.Context, req NextRequest) (*NextSuggestion, error) {
	ctx = llm.WithPurpose(ctx, "next-concept")

	msg, err := buildNextMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build next-concept prompt: %w", err)
	}

	resp, err := a.provider.Generate(ctx, a.request(msg, NextSchema))
	if err != nil {
		return nil, fmt.Errorf("next concept: %w", err)
	}

	return ParseSuggestion(resp.Content)
}

func (a *LLMAdapter) request(msg string, schema *llm.Schema) llm.Request {
	return llm.Request{
		System:      coachSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: msg}},
		Schema:      schema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}
}

// ParseRanking accepts either a bare JSON array of IDs or an object with a
// "concept_ids" array. Blank entries are dropped.
func ParseRanking(raw json.RawMessage) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		var obj struct {
			ConceptIDs *[]string `json:"concept_ids"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("parse ranking: %w", err)
		}
		if obj.ConceptIDs == nil {
			return nil, fmt.Errorf("parse ranking: missing concept_ids: %w", ErrNoSuggestion)
		}
		ids = *obj.ConceptIDs
	}

	out := ids[:0]
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out, nil
}

// ParseSuggestion decodes a post-quiz suggestion. A blank next_concept_id
// is accepted only together with repeat; otherwise it is reported as
// ErrNoSuggestion.
func ParseSuggestion(raw json.RawMessage) (*NextSuggestion, error) {
	var s NextSuggestion
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse suggestion: %w", err)
	}
	s.NextConceptID = strings.TrimSpace(s.NextConceptID)
	if s.NextConceptID == "" && !s.Repeat {
		return nil, fmt.Errorf("parse suggestion: missing next_concept_id: %w", ErrNoSuggestion)
	}
	return &s, nil
}
