package engine

import (
	"context"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/observability"
	"github.com/abhisek/masteryforge/internal/recommend"
	"go.opentelemetry.io/otel/attribute"
)

// SelectNextConcept picks the concept the user should study next. A nil
// concept with a nil error means nothing is available in scope.
func (e *Engine) SelectNextConcept(ctx context.Context, userID, courseID string) (next *concept.Concept, err error) {
	ctx, span := observability.Start(ctx, "engine.SelectNextConcept",
		observability.UserID(userID), observability.CourseID(courseID))
	defer observability.Finish(span, &err)

	snap, err := e.load(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if len(snap.scope) == 0 {
		e.log.Info("no concept available", "user", userID, "course", courseID)
		return nil, nil
	}

	candidates := snap.eligible
	if len(candidates) == 0 {
		candidates = snap.scope
	}

	if c := e.rankedChoice(ctx, userID, candidates, snap.states); c != nil {
		span.SetAttributes(attribute.String("selection.source", "adapter"), observability.ConceptID(c.ID))
		if _, ok := snap.states[c.ID]; ok {
			e.markRecommended(ctx, userID, c.ID)
		}
		return c, nil
	}

	var current *mastery.State
	if s, ok := mastery.MostRecent(snap.all); ok {
		current = &s
	}
	next = e.selector.Select(Input{
		Graph:    snap.graph,
		CourseID: courseID,
		Scope:    snap.scope,
		Eligible: snap.eligible,
		States:   snap.states,
		Current:  current,
	})
	if next != nil {
		span.SetAttributes(attribute.String("selection.source", "fallback"), observability.ConceptID(next.ID))
	}
	return next, nil
}

// rankedChoice returns the first adapter-ranked ID that is a candidate.
func (e *Engine) rankedChoice(ctx context.Context, userID string, candidates []concept.Concept, states map[string]mastery.State) *concept.Concept {
	if e.adapter == nil {
		return nil
	}

	req := recommend.RankRequest{
		UserID:        userID,
		Concepts:      make([]recommend.ConceptRef, len(candidates)),
		MasteryStates: summaries(states, candidates),
	}
	byID := make(map[string]concept.Concept, len(candidates))
	for i, c := range candidates {
		req.Concepts[i] = recommend.ConceptRef{ID: c.ID, Title: c.Title}
		byID[c.ID] = c
	}

	ids, err := callAdapter(ctx, e.cfg.AdapterBudget, func(ctx context.Context) ([]string, error) {
		return e.adapter.RankConcepts(ctx, req)
	})
	if err != nil {
		e.log.Warn("recommendation adapter gave no ranking", "user", userID, "error", err)
		return nil
	}
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			return &c
		}
	}
	e.log.Warn("recommendation adapter ranked no candidate", "user", userID, "ranked", len(ids))
	return nil
}
