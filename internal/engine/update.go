package engine

import (
	"context"
	"fmt"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/observability"
	"go.opentelemetry.io/otel/attribute"
)

// UpdateResult describes one recorded quiz attempt.
type UpdateResult struct {
	Concept   concept.Concept
	Before    mastery.State
	After     mastery.State
	Band      mastery.Band
	Attempt   mastery.Attempt
	SessionID string
}

// UpdateMasteryAfterQuiz records a graded attempt and folds it into the
// user's mastery state for the concept. The score is clamped to [0, 100].
func (e *Engine) UpdateMasteryAfterQuiz(ctx context.Context, userID, conceptID string, scorePercent float64) (res *UpdateResult, err error) {
	ctx, span := observability.Start(ctx, "engine.UpdateMasteryAfterQuiz",
		observability.UserID(userID), observability.ConceptID(conceptID))
	defer observability.Finish(span, &err)

	c, err := e.catalog.Concept(ctx, conceptID)
	if err != nil {
		return nil, fmt.Errorf("look up concept: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConcept, conceptID)
	}

	score := mastery.ClampScore(scorePercent)
	sessionID := e.currentSessionID(ctx, userID)

	graded, err := e.store.RecordAttempt(ctx, mastery.Grade{
		UserID:    userID,
		ConceptID: c.ID,
		CourseID:  c.CourseID,
		Score:     score,
		SessionID: sessionID,
		At:        e.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	if e.sessions != nil {
		if _, err := e.sessions.RecordQuiz(ctx, userID, c.ID, score); err != nil {
			e.log.Warn("session bookkeeping failed", "user", userID, "concept", c.ID, "error", err)
		}
	}

	span.SetAttributes(
		attribute.Float64("quiz.score", score),
		attribute.String("quiz.band", graded.Band.String()),
		attribute.Float64("mastery.after", graded.After.Mastery),
	)
	e.log.Debug("quiz recorded",
		"user", userID,
		"concept", c.ID,
		"score", score,
		"band", graded.Band.String(),
		"mastery", graded.After.Mastery,
		"frustration", graded.After.Frustration,
	)

	return &UpdateResult{
		Concept:   *c,
		Before:    graded.Before,
		After:     graded.After,
		Band:      graded.Band,
		Attempt:   graded.Attempt,
		SessionID: sessionID,
	}, nil
}

func (e *Engine) currentSessionID(ctx context.Context, userID string) string {
	if e.sessions == nil {
		return ""
	}
	s, err := e.sessions.Current(ctx, userID)
	if err != nil {
		e.log.Warn("session lookup failed", "user", userID, "error", err)
		return ""
	}
	return s.ID.String()
}
