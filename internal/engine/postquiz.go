package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/observability"
	"github.com/abhisek/masteryforge/internal/recommend"
	"go.opentelemetry.io/otel/attribute"
)

// RecommendNextConceptAfterQuiz suggests what to study right after a
// graded attempt on conceptID. It reads the already-updated mastery state
// and returns nil when nothing fits.
func (e *Engine) RecommendNextConceptAfterQuiz(ctx context.Context, userID, conceptID string, scorePercent float64) (next *concept.Concept, err error) {
	ctx, span := observability.Start(ctx, "engine.RecommendNextConceptAfterQuiz",
		observability.UserID(userID), observability.ConceptID(conceptID))
	defer observability.Finish(span, &err)

	current, err := e.catalog.Concept(ctx, conceptID)
	if err != nil {
		return nil, fmt.Errorf("look up concept: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConcept, conceptID)
	}
	score := mastery.ClampScore(scorePercent)

	snap, err := e.load(ctx, userID, current.CourseID)
	if err != nil {
		return nil, err
	}
	course := snap.scope

	if c := e.suggestedChoice(ctx, userID, *current, score, course, snap.states); c != nil {
		span.SetAttributes(attribute.String("selection.source", "adapter"), attribute.String("next.id", c.ID))
		if _, ok := snap.states[c.ID]; ok {
			e.markRecommended(ctx, userID, c.ID)
		}
		return c, nil
	}

	next = e.afterQuizFallback(snap, *current, score)
	if next != nil {
		span.SetAttributes(attribute.String("selection.source", "fallback"), attribute.String("next.id", next.ID))
	}
	return next, nil
}

func (e *Engine) suggestedChoice(ctx context.Context, userID string, current concept.Concept, score float64, course []concept.Concept, states map[string]mastery.State) *concept.Concept {
	if e.adapter == nil {
		return nil
	}

	history, err := e.store.History(ctx, userID, current.CourseID, e.cfg.HistoryLimit)
	if err != nil {
		e.log.Warn("load quiz history failed", "user", userID, "error", err)
		history = nil
	}

	req := recommend.NextRequest{
		UserID:        userID,
		CourseID:      current.CourseID,
		ConceptID:     current.ID,
		ScorePercent:  score,
		Concepts:      make([]recommend.CourseConcept, len(course)),
		History:       make([]recommend.HistoryEntry, len(history)),
		MasteryStates: summaries(states, course),
	}
	byID := make(map[string]concept.Concept, len(course))
	for i, c := range course {
		req.Concepts[i] = recommend.CourseConcept{
			ID:            c.ID,
			Title:         c.Title,
			OrderIndex:    c.OrderIndex,
			Difficulty:    c.Difficulty,
			Prerequisites: c.Prerequisites,
		}
		byID[c.ID] = c
	}
	for i, a := range history {
		req.History[i] = recommend.HistoryEntry{ConceptID: a.ConceptID, ScorePercent: a.ScorePercent, At: a.CreatedAt}
	}

	s, err := callAdapter(ctx, e.cfg.AdapterBudget, func(ctx context.Context) (*recommend.NextSuggestion, error) {
		return e.adapter.NextConcept(ctx, req)
	})
	if err != nil || s == nil {
		e.log.Warn("recommendation adapter gave no suggestion", "user", userID, "concept", current.ID, "error", err)
		return nil
	}

	// A named concept wins over the repeat flag.
	id := s.NextConceptID
	if id == "" && s.Repeat {
		id = current.ID
	}
	if id == current.ID && score >= mastery.HighScore {
		e.log.Info("discarding repeat suggestion after a passing score", "user", userID, "concept", current.ID, "score", score)
		return nil
	}
	c, ok := byID[id]
	if !ok {
		e.log.Warn("recommendation adapter suggested a concept outside the course", "user", userID, "suggested", id)
		return nil
	}
	return &c
}

func (e *Engine) afterQuizFallback(snap *snapshot, current concept.Concept, score float64) *concept.Concept {
	if score >= mastery.HighScore {
		for _, c := range snap.scope {
			if c.OrderIndex > current.OrderIndex {
				return &c
			}
		}
		return nil
	}

	if snap.states[current.ID].Frustration > e.cfg.FrustrationPivot || score < mastery.MidScore {
		if c := lowest(snap.graph.Prerequisites(current.ID), snap.states, false); c != nil {
			return c
		}
	}

	return lowest(exclude(snap.scope, current.ID), snap.states, false)
}
