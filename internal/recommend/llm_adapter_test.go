package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/masteryforge/internal/llm"
	"github.com/abhisek/masteryforge/internal/mastery"
)

func rankRequest() RankRequest {
	return RankRequest{
		UserID: "u1",
		Concepts: []ConceptRef{
			{ID: "fractions", Title: "Fractions"},
			{ID: "decimals", Title: "Decimals"},
		},
		MasteryStates: map[string]mastery.Summary{
			"fractions": {Mastery: 0.3, Confidence: 0.2, Frustration: 0.4, Attempts: 2},
		},
	}
}

func TestLLMAdapter_RankConcepts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"concept_ids":["decimals","fractions"]}`)})
	a := NewLLMAdapter(mock, DefaultLLMAdapterConfig())

	ids, err := a.RankConcepts(context.Background(), rankRequest())
	if err != nil {
		t.Fatalf("RankConcepts failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "decimals" || ids[1] != "fractions" {
		t.Errorf("ids = %v, want [decimals fractions]", ids)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	call := mock.Calls[0]
	if call.Schema != RankSchema {
		t.Error("expected rank schema on request")
	}
	if !strings.Contains(call.System, "learning coach") {
		t.Errorf("system prompt = %q", call.System)
	}
	msg := call.Messages[0].Content
	for _, want := range []string{`"eligible_or_course_concepts"`, `"mastery_states"`, `"frustration_score": 0.4`} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %s:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "u1") {
		t.Error("user ID should not be sent to the model")
	}
}

func TestLLMAdapter_RankConceptsProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := NewLLMAdapter(mock, DefaultLLMAdapterConfig())

	_, err := a.RankConcepts(context.Background(), rankRequest())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestLLMAdapter_NextConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"next_concept_id":"decimals","reason":"Ready to move on","repeat":false}`),
	})
	a := NewLLMAdapter(mock, DefaultLLMAdapterConfig())

	got, err := a.NextConcept(context.Background(), NextRequest{
		CourseID:     "math",
		ConceptID:    "fractions",
		ScorePercent: 85,
		Concepts: []CourseConcept{
			{ID: "fractions", Title: "Fractions", OrderIndex: 1, Difficulty: 2},
			{ID: "decimals", Title: "Decimals", OrderIndex: 2, Difficulty: 2, Prerequisites: []string{"fractions"}},
		},
	})
	if err != nil {
		t.Fatalf("NextConcept failed: %v", err)
	}
	if got.NextConceptID != "decimals" || got.Repeat {
		t.Errorf("suggestion = %+v", got)
	}

	call := mock.Calls[0]
	if call.Schema != NextSchema {
		t.Error("expected next-concept schema on request")
	}
	if !strings.Contains(call.Messages[0].Content, `scored 85% on concept "fractions"`) {
		t.Errorf("user message = %q", call.Messages[0].Content)
	}
}

func TestLLMAdapter_NextConceptMissingID(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"reason":"unsure","repeat":false}`)})
	a := NewLLMAdapter(mock, DefaultLLMAdapterConfig())

	_, err := a.NextConcept(context.Background(), NextRequest{ConceptID: "fractions"})
	if !errors.Is(err, ErrNoSuggestion) {
		t.Fatalf("expected ErrNoSuggestion, got %v", err)
	}
}

func TestParseRanking(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"bare array", `["a","b"]`, []string{"a", "b"}, false},
		{"object", `{"concept_ids":["b","a"]}`, []string{"b", "a"}, false},
		{"blank entries dropped", `[" a ","",  "c"]`, []string{"a", "c"}, false},
		{"missing key", `{"ids":["a"]}`, nil, true},
		{"malformed", `{"concept_ids":`, nil, true},
		{"wrong type", `"a"`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRanking(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRanking() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseSuggestion(t *testing.T) {
	s, err := ParseSuggestion(json.RawMessage(`{"next_concept_id":" a ","reason":"r","repeat":true}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.NextConceptID != "a" || !s.Repeat || s.Reason != "r" {
		t.Errorf("suggestion = %+v", s)
	}

	if _, err := ParseSuggestion(json.RawMessage(`not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
	if _, err := ParseSuggestion(json.RawMessage(`{"next_concept_id":""}`)); !errors.Is(err, ErrNoSuggestion) {
		t.Errorf("expected ErrNoSuggestion, got %v", err)
	}

	s, err = ParseSuggestion(json.RawMessage(`{"next_concept_id":"  ","reason":"again","repeat":true}`))
	if err != nil {
		t.Fatalf("blank id with repeat: %v", err)
	}
	if s.NextConceptID != "" || !s.Repeat {
		t.Errorf("suggestion = %+v", s)
	}
}
