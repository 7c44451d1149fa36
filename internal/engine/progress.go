package engine

import (
	"context"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
)

// ConceptProgress is one row of a progress report.
type ConceptProgress struct {
	Concept  concept.Concept
	State    mastery.State
	Level    mastery.Level
	Eligible bool
	Mastered bool
}

// Report summarises a user's standing across a scope.
type Report struct {
	UserID   string
	CourseID string
	Concepts []ConceptProgress

	Total         int
	Mastered      int
	EligibleCount int
	Attempted     int
	// Percent is the share of concepts at the reporting threshold, 0-100.
	Percent float64
	// AverageFrustration is taken over attempted concepts only.
	AverageFrustration float64
}

// Progress reports per-concept standing for every active concept in scope.
func (e *Engine) Progress(ctx context.Context, userID, courseID string) (*Report, error) {
	snap, err := e.load(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	eligible := make(map[string]bool, len(snap.eligible))
	for _, c := range snap.eligible {
		eligible[c.ID] = true
	}

	r := &Report{
		UserID:   userID,
		CourseID: courseID,
		Concepts: make([]ConceptProgress, 0, len(snap.scope)),
		Total:    len(snap.scope),
	}
	var frustration float64
	for _, c := range snap.scope {
		s, ok := snap.states[c.ID]
		if !ok {
			s = mastery.Fresh(userID, c.ID)
		}
		p := ConceptProgress{
			Concept:  c,
			State:    s,
			Level:    mastery.LevelOf(s),
			Eligible: eligible[c.ID],
			Mastered: s.Mastery >= mastery.ReportThreshold,
		}
		if p.Mastered {
			r.Mastered++
		}
		if p.Eligible {
			r.EligibleCount++
		}
		if s.Touched() {
			r.Attempted++
			frustration += s.Frustration
		}
		r.Concepts = append(r.Concepts, p)
	}
	if r.Total > 0 {
		r.Percent = float64(r.Mastered) / float64(r.Total) * 100
	}
	if r.Attempted > 0 {
		r.AverageFrustration = frustration / float64(r.Attempted)
	}
	return r, nil
}
