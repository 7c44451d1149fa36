package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/masteryforge/ent"
	"github.com/abhisek/masteryforge/ent/learningsession"
	"github.com/google/uuid"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) OpenSessions(ctx context.Context, userID string) ([]LearningSession, error) {
	rows, err := r.client.LearningSession.Query().
		Where(learningsession.UserID(userID), learningsession.EndTimeIsNil()).
		Order(ent.Desc(learningsession.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open sessions: %w", err)
	}
	return sessionsFromEnt(rows), nil
}

func (r *sessionRepo) CreateSession(ctx context.Context, userID string, start time.Time) (*LearningSession, error) {
	row, err := r.client.LearningSession.Create().
		SetUserID(userID).
		SetStartTime(start).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s := sessionFromEnt(row)
	return &s, nil
}

func (r *sessionRepo) EndSession(ctx context.Context, id uuid.UUID, end time.Time) error {
	_, err := r.client.LearningSession.Update().
		Where(learningsession.ID(id), learningsession.EndTimeIsNil()).
		SetEndTime(end).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (r *sessionRepo) UpdateSession(ctx context.Context, id uuid.UUID, fn func(LearningSession) LearningSession) (*LearningSession, error) {
	var out *LearningSession
	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		row, err := tx.LearningSession.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("get session: %w", err)
		}
		next := fn(sessionFromEnt(row))
		row, err = tx.LearningSession.UpdateOneID(id).
			SetTotalQuestions(next.TotalQuestions).
			SetAverageScore(next.AverageScore).
			SetConceptsCovered(next.ConceptsCovered).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update session: %w", err)
		}
		s := sessionFromEnt(row)
		out = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, userID string, limit int) ([]LearningSession, error) {
	q := r.client.LearningSession.Query().
		Where(learningsession.UserID(userID)).
		Order(ent.Desc(learningsession.FieldStartTime))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessionsFromEnt(rows), nil
}

func sessionsFromEnt(rows []*ent.LearningSession) []LearningSession {
	out := make([]LearningSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionFromEnt(row))
	}
	return out
}

func sessionFromEnt(row *ent.LearningSession) LearningSession {
	return LearningSession{
		ID:              row.ID,
		UserID:          row.UserID,
		StartTime:       row.StartTime,
		EndTime:         row.EndTime,
		TotalQuestions:  row.TotalQuestions,
		AverageScore:    row.AverageScore,
		ConceptsCovered: row.ConceptsCovered,
	}
}
