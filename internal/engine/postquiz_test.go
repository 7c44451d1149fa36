package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/recommend"
)

func course() []concept.Concept {
	return []concept.Concept{
		mk("a", "math", 1),
		mk("b", "math", 2, "a"),
		mk("c", "math", 3, "b"),
		mk("x", "sci", 1),
	}
}

func recommendAfter(t *testing.T, e *Engine, conceptID string, score float64) *concept.Concept {
	t.Helper()
	c, err := e.RecommendNextConceptAfterQuiz(context.Background(), "u", conceptID, score)
	if err != nil {
		t.Fatalf("RecommendNextConceptAfterQuiz: %v", err)
	}
	return c
}

func TestAfterQuiz_GuardrailDiscardsRepeatOnPass(t *testing.T) {
	for _, stub := range []*recommend.Stub{
		{Suggestion: &recommend.NextSuggestion{NextConceptID: "b"}},
		{Suggestion: &recommend.NextSuggestion{Repeat: true}},
	} {
		e := newEngine(course(), newFakeStore(), stub)
		got := recommendAfter(t, e, "b", 95)
		wantID(t, got, "c")
	}
}

func TestAfterQuiz_NamedConceptWinsOverRepeatFlag(t *testing.T) {
	stub := &recommend.Stub{Suggestion: &recommend.NextSuggestion{NextConceptID: "a", Repeat: true}}
	e := newEngine(course(), newFakeStore(), stub)

	// The index-order fallback would give c.
	wantID(t, recommendAfter(t, e, "b", 90), "a")
}

func TestAfterQuiz_RepeatAllowedBelowPass(t *testing.T) {
	stub := &recommend.Stub{Suggestion: &recommend.NextSuggestion{NextConceptID: "b", Repeat: true}}
	st := newFakeStore(state("u", "b", 0.3, 0.2, 2, 1))
	e := newEngine(course(), st, stub)

	wantID(t, recommendAfter(t, e, "b", 60), "b")

	s, _ := st.get("u", "b")
	if !s.Recommended {
		t.Error("adapter suggestion not marked recommended")
	}
	req := stub.NextCalls[0]
	if req.ConceptID != "b" || req.CourseID != "math" || req.ScorePercent != 60 {
		t.Errorf("request = %+v", req)
	}
	if len(req.Concepts) != 3 {
		t.Errorf("course concepts = %d, want 3", len(req.Concepts))
	}
}

func TestAfterQuiz_SuggestionOutsideCourseDiscarded(t *testing.T) {
	stub := &recommend.Stub{Suggestion: &recommend.NextSuggestion{NextConceptID: "x"}}
	st := newFakeStore(state("u", "a", 0.5, 0, 2, 1))
	e := newEngine(course(), st, stub)

	// Fallback for a middling score: weakest other concept in the course.
	wantID(t, recommendAfter(t, e, "b", 60), "c")
}

func TestAfterQuiz_HistorySentNewestFirst(t *testing.T) {
	stub := &recommend.Stub{}
	st := newFakeStore()
	e := newEngine(course(), st, stub)
	ctx := context.Background()

	for _, score := range []float64{40, 70} {
		if _, err := e.UpdateMasteryAfterQuiz(ctx, "u", "a", score); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := e.UpdateMasteryAfterQuiz(ctx, "u", "x", 90); err != nil {
		t.Fatal(err)
	}
	recommendAfter(t, e, "a", 70)

	h := stub.NextCalls[0].History
	if len(h) != 2 {
		t.Fatalf("history = %+v, want the two math attempts", h)
	}
	if h[0].ScorePercent != 70 || h[1].ScorePercent != 40 {
		t.Errorf("history order = %+v", h)
	}
}

func TestAfterQuiz_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		states  []mastery.State
		concept string
		score   float64
		want    string
	}{
		{
			name:    "pass moves to next by order",
			concept: "a",
			score:   85,
			want:    "b",
		},
		{
			name:    "pass on last concept",
			concept: "c",
			score:   100,
			want:    "",
		},
		{
			name:    "low score steps back to prerequisite",
			states:  []mastery.State{state("u", "a", 0.9, 0, 5, 1)},
			concept: "b",
			score:   30,
			want:    "a",
		},
		{
			name: "frustration steps back to prerequisite",
			states: []mastery.State{
				state("u", "a", 0.9, 0, 5, 1),
				state("u", "b", 0.3, 0.8, 5, 2),
			},
			concept: "b",
			score:   65,
			want:    "a",
		},
		{
			name:    "low score without prerequisite",
			states:  []mastery.State{state("u", "b", 0.5, 0, 5, 1)},
			concept: "a",
			score:   10,
			want:    "c",
		},
		{
			name:    "middling score picks weakest other concept",
			states:  []mastery.State{state("u", "a", 0.2, 0, 5, 1), state("u", "c", 0.4, 0, 5, 1)},
			concept: "b",
			score:   70,
			want:    "a",
		},
		{
			name:    "only concept in course",
			concept: "x",
			score:   60,
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, adapter := range []recommend.Adapter{nil, &recommend.Stub{Err: errors.New("down")}} {
				e := newEngine(course(), newFakeStore(tt.states...), adapter)
				got := recommendAfter(t, e, tt.concept, tt.score)
				if tt.want == "" {
					if got != nil {
						t.Errorf("got %q, want nil", got.ID)
					}
					continue
				}
				wantID(t, got, tt.want)
			}
		})
	}
}

func TestAfterQuiz_UnknownConcept(t *testing.T) {
	e := newEngine(course(), newFakeStore(), nil)
	_, err := e.RecommendNextConceptAfterQuiz(context.Background(), "u", "nope", 50)
	if !errors.Is(err, ErrUnknownConcept) {
		t.Fatalf("error = %v, want ErrUnknownConcept", err)
	}
}
