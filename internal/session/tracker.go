// Package session tracks bounded windows of learner activity.
package session

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/abhisek/masteryforge/internal/logger"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/store"
)

// DefaultWindow is how long a session stays open after it starts.
const DefaultWindow = 90 * time.Minute

// Tracker starts, extends and closes learning sessions.
type Tracker struct {
	repo   store.SessionRepo
	window time.Duration
	now    func() time.Time
	log    *logger.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithWindow overrides DefaultWindow.
func WithWindow(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.window = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// NewTracker creates a Tracker over repo.
func NewTracker(repo store.SessionRepo, opts ...Option) *Tracker {
	t := &Tracker{
		repo:   repo,
		window: DefaultWindow,
		now:    func() time.Time { return time.Now().UTC() },
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current returns the user's open session, starting one if needed. A
// session older than the window is closed first, as is any open session
// other than the newest.
func (t *Tracker) Current(ctx context.Context, userID string) (*store.LearningSession, error) {
	now := t.now()

	open, err := t.repo.OpenSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}

	var current *store.LearningSession
	for i := range open {
		s := open[i]
		if current == nil && now.Sub(s.StartTime) <= t.window {
			current = &s
			continue
		}
		if err := t.repo.EndSession(ctx, s.ID, now); err != nil {
			return nil, fmt.Errorf("close stale session: %w", err)
		}
		t.log.Debug("closed session", "user", userID, "session", s.ID.String(), "started", s.StartTime)
	}
	if current != nil {
		return current, nil
	}

	s, err := t.repo.CreateSession(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	t.log.Debug("started session", "user", userID, "session", s.ID.String())
	return s, nil
}

// RecordQuiz adds one graded attempt to the user's current session.
func (t *Tracker) RecordQuiz(ctx context.Context, userID, conceptID string, score float64) (*store.LearningSession, error) {
	current, err := t.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	score = mastery.ClampScore(score)

	updated, err := t.repo.UpdateSession(ctx, current.ID, func(s store.LearningSession) store.LearningSession {
		return Add(s, conceptID, score)
	})
	if err != nil {
		return nil, fmt.Errorf("record quiz in session: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("record quiz in session: session %s vanished", current.ID)
	}
	return updated, nil
}

// Close ends the user's newest open session. It returns nil when the user
// has no open session.
func (t *Tracker) Close(ctx context.Context, userID string) (*store.LearningSession, error) {
	open, err := t.repo.OpenSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	if len(open) == 0 {
		return nil, nil
	}

	now := t.now()
	s := open[0]
	if err := t.repo.EndSession(ctx, s.ID, now); err != nil {
		return nil, fmt.Errorf("close session: %w", err)
	}
	s.EndTime = &now
	t.log.Info("session closed", "user", userID, "session", s.ID.String(), "questions", s.TotalQuestions)
	return &s, nil
}

// Add folds one score into a session's counters.
func Add(s store.LearningSession, conceptID string, score float64) store.LearningSession {
	n := s.TotalQuestions + 1
	s.AverageScore = (s.AverageScore*float64(n-1) + score) / float64(n)
	s.TotalQuestions = n
	if conceptID != "" && !slices.Contains(s.ConceptsCovered, conceptID) {
		s.ConceptsCovered = append(slices.Clip(s.ConceptsCovered), conceptID)
	}
	return s
}
