// Package engine selects what a learner studies next and folds graded
// quiz attempts into their mastery signals.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/logger"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/recommend"
	"github.com/abhisek/masteryforge/internal/store"
)

// ErrUnknownConcept is returned when a concept ID is not in the catalog.
var ErrUnknownConcept = errors.New("unknown concept")

// Catalog is read-only access to course content.
type Catalog interface {
	Concepts(ctx context.Context, activeOnly bool) ([]concept.Concept, error)
	Concept(ctx context.Context, id string) (*concept.Concept, error)
}

// MasteryStore persists mastery states and the quiz ledger.
type MasteryStore interface {
	States(ctx context.Context, userID string) ([]mastery.State, error)
	RecordAttempt(ctx context.Context, g mastery.Grade) (mastery.Graded, error)
	MarkRecommended(ctx context.Context, userID, conceptID string) (bool, error)
	History(ctx context.Context, userID, courseID string, limit int) ([]mastery.Attempt, error)
}

// SessionRecorder keeps learning-session bookkeeping.
type SessionRecorder interface {
	Current(ctx context.Context, userID string) (*store.LearningSession, error)
	RecordQuiz(ctx context.Context, userID, conceptID string, score float64) (*store.LearningSession, error)
	Close(ctx context.Context, userID string) (*store.LearningSession, error)
}

// Engine is safe for concurrent use when its collaborators are.
type Engine struct {
	catalog  Catalog
	store    MasteryStore
	sessions SessionRecorder
	adapter  recommend.Adapter
	selector Selector
	cfg      Config
	log      *logger.Logger
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine. sessions and adapter may be nil: attempts are then
// recorded without a session and selection is fully deterministic.
func New(catalog Catalog, st MasteryStore, sessions SessionRecorder, adapter recommend.Adapter, cfg Config, log *logger.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	cfg = cfg.withDefaults()
	e := &Engine{
		catalog:  catalog,
		store:    st,
		sessions: sessions,
		adapter:  adapter,
		selector: NewSelector(cfg),
		cfg:      cfg,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// snapshot is everything selection needs for one user and scope.
type snapshot struct {
	graph    *concept.Graph
	states   map[string]mastery.State
	all      []mastery.State
	scope    []concept.Concept
	eligible []concept.Concept
}

func (e *Engine) load(ctx context.Context, userID, courseID string) (*snapshot, error) {
	concepts, err := e.catalog.Concepts(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load concepts: %w", err)
	}
	states, err := e.store.States(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load mastery states: %w", err)
	}

	g := concept.NewGraph(concepts)
	index := mastery.Index(states)
	return &snapshot{
		graph:    g,
		states:   index,
		all:      states,
		scope:    g.Scope(courseID),
		eligible: g.Eligible(courseID, mastery.Scores(index), e.cfg.EligibilityThreshold),
	}, nil
}

// EligibleConcepts returns the active concepts in scope whose
// prerequisites the user has mastered. An empty courseID means every
// course.
func (e *Engine) EligibleConcepts(ctx context.Context, userID, courseID string) ([]concept.Concept, error) {
	snap, err := e.load(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return snap.eligible, nil
}

// CloseSession ends the user's open learning session, if any.
func (e *Engine) CloseSession(ctx context.Context, userID string) (*store.LearningSession, error) {
	if e.sessions == nil {
		return nil, nil
	}
	return e.sessions.Close(ctx, userID)
}

// callAdapter runs fn under the adapter budget. Panics and calls that
// outlive the budget become errors.
func callAdapter[T any](ctx context.Context, budget time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				done <- result{zero, fmt.Errorf("adapter panic: %v", r)}
			}
		}()
		v, err := fn(ctx)
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (e *Engine) markRecommended(ctx context.Context, userID, conceptID string) {
	if _, err := e.store.MarkRecommended(ctx, userID, conceptID); err != nil {
		e.log.Warn("mark recommended failed", "user", userID, "concept", conceptID, "error", err)
	}
}

func summaries(states map[string]mastery.State, concepts []concept.Concept) map[string]mastery.Summary {
	out := make(map[string]mastery.Summary, len(concepts))
	for _, c := range concepts {
		if s, ok := states[c.ID]; ok {
			out[c.ID] = s.Summary()
		}
	}
	return out
}
