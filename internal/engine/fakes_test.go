package engine

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/store"
	"github.com/google/uuid"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func mk(id, course string, order int, prereqs ...string) concept.Concept {
	return concept.Concept{
		ID:            id,
		CourseID:      course,
		Title:         id,
		Difficulty:    1,
		OrderIndex:    order,
		Prerequisites: prereqs,
		Active:        true,
	}
}

type fakeCatalog struct {
	concepts []concept.Concept
}

func (f *fakeCatalog) Concepts(_ context.Context, activeOnly bool) ([]concept.Concept, error) {
	var out []concept.Concept
	for _, c := range f.concepts {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCatalog) Concept(_ context.Context, id string) (*concept.Concept, error) {
	for _, c := range f.concepts {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

type fakeStore struct {
	mu       sync.Mutex
	states   map[string]mastery.State
	attempts []mastery.Attempt
	marked   []string
}

func newFakeStore(states ...mastery.State) *fakeStore {
	f := &fakeStore{states: map[string]mastery.State{}}
	for _, s := range states {
		f.put(s)
	}
	return f
}

func key(user, conceptID string) string { return user + "/" + conceptID }

func (f *fakeStore) put(s mastery.State) {
	f.states[key(s.UserID, s.ConceptID)] = s
}

func (f *fakeStore) get(user, conceptID string) (mastery.State, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.states[key(user, conceptID)]
	return s, ok
}

func (f *fakeStore) States(_ context.Context, userID string) ([]mastery.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []mastery.State
	for _, s := range f.states {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b mastery.State) int {
		if a.ConceptID < b.ConceptID {
			return -1
		}
		if a.ConceptID > b.ConceptID {
			return 1
		}
		return 0
	})
	return out, nil
}

func (f *fakeStore) RecordAttempt(_ context.Context, g mastery.Grade) (mastery.Graded, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	before, ok := f.states[key(g.UserID, g.ConceptID)]
	if !ok {
		before = mastery.Fresh(g.UserID, g.ConceptID)
	}
	after := mastery.Apply(before, g.Score, g.At)
	f.put(after)
	a := mastery.Attempt{
		ID:           len(f.attempts) + 1,
		UserID:       g.UserID,
		ConceptID:    g.ConceptID,
		CourseID:     g.CourseID,
		ScorePercent: g.Score,
		SessionID:    g.SessionID,
		CreatedAt:    g.At,
	}
	f.attempts = append(f.attempts, a)
	return mastery.Graded{Before: before, After: after, Band: mastery.BandFor(g.Score), Attempt: a}, nil
}

func (f *fakeStore) MarkRecommended(_ context.Context, userID, conceptID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.states[key(userID, conceptID)]
	if !ok {
		return false, nil
	}
	s.Recommended = true
	f.put(s)
	f.marked = append(f.marked, conceptID)
	return true, nil
}

func (f *fakeStore) History(_ context.Context, userID, courseID string, limit int) ([]mastery.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []mastery.Attempt
	for i := len(f.attempts) - 1; i >= 0; i-- {
		a := f.attempts[i]
		if a.UserID != userID || (courseID != "" && a.CourseID != courseID) {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// brokenSessions fails every call.
type brokenSessions struct{}

var errSessions = errors.New("session table locked")

func (brokenSessions) Current(context.Context, string) (*store.LearningSession, error) {
	return nil, errSessions
}

func (brokenSessions) RecordQuiz(context.Context, string, string, float64) (*store.LearningSession, error) {
	return nil, errSessions
}

func (brokenSessions) Close(context.Context, string) (*store.LearningSession, error) {
	return nil, errSessions
}

// fixedSessions hands out a single session.
type fixedSessions struct {
	id       uuid.UUID
	recorded []string
}

func (f *fixedSessions) Current(_ context.Context, userID string) (*store.LearningSession, error) {
	return &store.LearningSession{ID: f.id, UserID: userID, StartTime: t0}, nil
}

func (f *fixedSessions) RecordQuiz(_ context.Context, userID, conceptID string, _ float64) (*store.LearningSession, error) {
	f.recorded = append(f.recorded, conceptID)
	return f.Current(context.Background(), userID)
}

func (f *fixedSessions) Close(_ context.Context, userID string) (*store.LearningSession, error) {
	end := t0.Add(time.Hour)
	return &store.LearningSession{ID: f.id, UserID: userID, StartTime: t0, EndTime: &end}, nil
}

// state builds a touched state seen at t0 plus the given minutes.
func state(user, conceptID string, m, frustration float64, attempts, minute int) mastery.State {
	return mastery.State{
		UserID:      user,
		ConceptID:   conceptID,
		Mastery:     m,
		Frustration: frustration,
		Attempts:    attempts,
		LastSeen:    t0.Add(time.Duration(minute) * time.Minute),
	}
}
