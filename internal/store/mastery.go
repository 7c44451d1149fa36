package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/masteryforge/ent"
	"github.com/abhisek/masteryforge/ent/masterystate"
	"github.com/abhisek/masteryforge/ent/quizattempt"
	"github.com/abhisek/masteryforge/internal/mastery"
)

// maxRecordTries bounds the optimistic retry loop in RecordAttempt.
const maxRecordTries = 3

// errStaleState signals that another writer updated the state between
// our read and our compare-and-swap.
var errStaleState = errors.New("mastery state changed concurrently")

// masteryRepo implements MasteryRepo backed by ent.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) States(ctx context.Context, userID string) ([]mastery.State, error) {
	rows, err := r.client.MasteryState.Query().
		Where(masterystate.UserID(userID)).
		Order(ent.Desc(masterystate.FieldLastSeen), ent.Asc(masterystate.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery states: %w", err)
	}
	out := make([]mastery.State, 0, len(rows))
	for _, row := range rows {
		out = append(out, stateFromEnt(row))
	}
	return out, nil
}

func (r *masteryRepo) State(ctx context.Context, userID, conceptID string) (*mastery.State, error) {
	row, err := r.client.MasteryState.Query().
		Where(masterystate.UserID(userID), masterystate.ConceptID(conceptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mastery state: %w", err)
	}
	s := stateFromEnt(row)
	return &s, nil
}

// RecordAttempt is a best-effort upsert: a lost race on the unique
// (user, concept) index or on the attempts compare-and-swap rolls the
// transaction back and starts over.
func (r *masteryRepo) RecordAttempt(ctx context.Context, g mastery.Grade) (mastery.Graded, error) {
	g.Score = mastery.ClampScore(g.Score)

	var lastErr error
	for try := 0; try < maxRecordTries; try++ {
		out, err := r.recordOnce(ctx, g)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, errStaleState) && !ent.IsConstraintError(err) {
			return mastery.Graded{}, err
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return mastery.Graded{}, fmt.Errorf("record attempt after %d tries: %w", maxRecordTries, lastErr)
}

func (r *masteryRepo) recordOnce(ctx context.Context, g mastery.Grade) (mastery.Graded, error) {
	var out mastery.Graded
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err := tx.MasteryState.Query().
			Where(masterystate.UserID(g.UserID), masterystate.ConceptID(g.ConceptID)).
			Only(ctx)
		created := false
		if ent.IsNotFound(err) {
			created = true
			row, err = tx.MasteryState.Create().
				SetUserID(g.UserID).
				SetConceptID(g.ConceptID).
				SetLastSeen(g.At).
				SetCreatedAt(g.At).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create mastery state: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("get mastery state: %w", err)
		}

		before := stateFromEnt(row)
		if created {
			// Not seen until this attempt lands.
			before.LastSeen = time.Time{}
		}
		after := mastery.Apply(before, g.Score, g.At)

		n, err := tx.MasteryState.Update().
			Where(masterystate.ID(row.ID), masterystate.Attempts(row.Attempts)).
			SetMasteryScore(after.Mastery).
			SetConfidenceScore(after.Confidence).
			SetFrustrationScore(after.Frustration).
			SetAttempts(after.Attempts).
			SetLastSeen(after.LastSeen).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update mastery state: %w", err)
		}
		if n == 0 {
			return errStaleState
		}

		a, err := tx.QuizAttempt.Create().
			SetUserID(g.UserID).
			SetConceptID(g.ConceptID).
			SetCourseID(g.CourseID).
			SetScorePercent(g.Score).
			SetSessionID(g.SessionID).
			SetCreatedAt(g.At).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save quiz attempt: %w", err)
		}

		out = mastery.Graded{
			Before:  before,
			After:   after,
			Band:    mastery.BandFor(g.Score),
			Attempt: attemptFromEnt(a),
		}
		return nil
	})
	return out, err
}

func (r *masteryRepo) MarkRecommended(ctx context.Context, userID, conceptID string) (bool, error) {
	n, err := r.client.MasteryState.Update().
		Where(masterystate.UserID(userID), masterystate.ConceptID(conceptID)).
		SetRecommendedByAdapter(true).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark recommended: %w", err)
	}
	return n > 0, nil
}

func (r *masteryRepo) History(ctx context.Context, userID, courseID string, limit int) ([]mastery.Attempt, error) {
	q := r.client.QuizAttempt.Query().
		Where(quizattempt.UserID(userID))
	if courseID != "" {
		q = q.Where(quizattempt.CourseID(courseID))
	}
	q = q.Order(ent.Desc(quizattempt.FieldCreatedAt), ent.Desc(quizattempt.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	out := make([]mastery.Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, attemptFromEnt(row))
	}
	return out, nil
}

func stateFromEnt(row *ent.MasteryState) mastery.State {
	return mastery.State{
		UserID:      row.UserID,
		ConceptID:   row.ConceptID,
		Mastery:     row.MasteryScore,
		Confidence:  row.ConfidenceScore,
		Frustration: row.FrustrationScore,
		Attempts:    row.Attempts,
		LastSeen:    row.LastSeen,
		Recommended: row.RecommendedByAdapter,
		CreatedAt:   row.CreatedAt,
	}
}

func attemptFromEnt(row *ent.QuizAttempt) mastery.Attempt {
	return mastery.Attempt{
		ID:           row.ID,
		UserID:       row.UserID,
		ConceptID:    row.ConceptID,
		CourseID:     row.CourseID,
		ScorePercent: row.ScorePercent,
		SessionID:    row.SessionID,
		CreatedAt:    row.CreatedAt,
	}
}
