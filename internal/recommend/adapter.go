// Package recommend defines the contract between the mastery engine and an
// external recommendation service, plus an LLM-backed implementation.
package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/masteryforge/internal/mastery"
)

// ErrNoSuggestion is returned when the adapter has nothing usable to offer.
var ErrNoSuggestion = errors.New("no recommendation")

// Adapter is the narrow recommendation contract consumed by the engine.
// Implementations may be slow or fail; callers treat any error as
// "no suggestion".
type Adapter interface {
	// RankConcepts returns candidate concept IDs, most recommended first.
	RankConcepts(ctx context.Context, req RankRequest) ([]string, error)

	// NextConcept suggests what to study right after a graded quiz.
	NextConcept(ctx context.Context, req NextRequest) (*NextSuggestion, error)
}

// ConceptRef identifies a candidate concept.
type ConceptRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RankRequest is the context for ranking candidates.
type RankRequest struct {
	UserID        string                     `json:"-"`
	Concepts      []ConceptRef               `json:"eligible_or_course_concepts"`
	MasteryStates map[string]mastery.Summary `json:"mastery_states"`
}

// CourseConcept is one entry of the course outline sent after a quiz.
type CourseConcept struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	OrderIndex    int      `json:"order_index"`
	Difficulty    int      `json:"difficulty"`
	Prerequisites []string `json:"prerequisites"`
}

// HistoryEntry is one past attempt, newest first in NextRequest.History.
type HistoryEntry struct {
	ConceptID    string    `json:"concept_id"`
	ScorePercent float64   `json:"score_percent"`
	At           time.Time `json:"at"`
}

// NextRequest is the context for a post-quiz suggestion.
type NextRequest struct {
	UserID        string                     `json:"-"`
	CourseID      string                     `json:"course_id"`
	ConceptID     string                     `json:"current_concept_id"`
	ScorePercent  float64                    `json:"score_percent"`
	Concepts      []CourseConcept            `json:"course_concepts"`
	History       []HistoryEntry             `json:"history"`
	MasteryStates map[string]mastery.Summary `json:"mastery_states"`
}

// NextSuggestion is the adapter's post-quiz answer.
type NextSuggestion struct {
	NextConceptID string `json:"next_concept_id"`
	Reason        string `json:"reason"`
	Repeat        bool   `json:"repeat"`
}
