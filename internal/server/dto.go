package server

import (
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/store"
)

// ConceptDTO is the wire form of a concept.
type ConceptDTO struct {
	ID            string   `json:"id"`
	CourseID      string   `json:"course_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Difficulty    int      `json:"difficulty"`
	OrderIndex    int      `json:"order_index"`
	Prerequisites []string `json:"prerequisites"`
}

func conceptDTO(c *concept.Concept) *ConceptDTO {
	if c == nil {
		return nil
	}
	prereqs := c.Prerequisites
	if prereqs == nil {
		prereqs = []string{}
	}
	return &ConceptDTO{
		ID:            c.ID,
		CourseID:      c.CourseID,
		Title:         c.Title,
		Description:   c.Description,
		Difficulty:    c.Difficulty,
		OrderIndex:    c.OrderIndex,
		Prerequisites: prereqs,
	}
}

func conceptDTOs(cs []concept.Concept) []ConceptDTO {
	out := make([]ConceptDTO, len(cs))
	for i := range cs {
		out[i] = *conceptDTO(&cs[i])
	}
	return out
}

// NextResponse answers GET /next. Concept is null when nothing is available.
type NextResponse struct {
	Concept *ConceptDTO `json:"concept"`
}

// EligibleResponse answers GET /eligible.
type EligibleResponse struct {
	Concepts []ConceptDTO `json:"concepts"`
}

// QuizRequest is the body of POST /quiz.
type QuizRequest struct {
	ConceptID    string   `json:"concept_id" binding:"required"`
	ScorePercent *float64 `json:"score_percent" binding:"required"`
}

// QuizResponse answers POST /quiz.
type QuizResponse struct {
	ConceptID string          `json:"concept_id"`
	Score     float64         `json:"score_percent"`
	Band      string          `json:"band"`
	Before    mastery.Summary `json:"before"`
	After     mastery.Summary `json:"after"`
	AttemptID int             `json:"attempt_id"`
	SessionID string          `json:"session_id,omitempty"`
	Next      *ConceptDTO     `json:"next"`
}

func quizResponse(res *engine.UpdateResult, next *concept.Concept) QuizResponse {
	return QuizResponse{
		ConceptID: res.Concept.ID,
		Score:     res.Attempt.ScorePercent,
		Band:      res.Band.String(),
		Before:    res.Before.Summary(),
		After:     res.After.Summary(),
		AttemptID: res.Attempt.ID,
		SessionID: res.SessionID,
		Next:      conceptDTO(next),
	}
}

// ConceptProgressDTO is one row of a progress report.
type ConceptProgressDTO struct {
	Concept  ConceptDTO      `json:"concept"`
	State    mastery.Summary `json:"state"`
	Level    string          `json:"level"`
	Eligible bool            `json:"eligible"`
	Mastered bool            `json:"mastered"`
	LastSeen *time.Time      `json:"last_seen,omitempty"`
}

// ProgressResponse answers GET /progress.
type ProgressResponse struct {
	UserID             string               `json:"user_id"`
	CourseID           string               `json:"course_id,omitempty"`
	Total              int                  `json:"total"`
	Mastered           int                  `json:"mastered"`
	Eligible           int                  `json:"eligible"`
	Attempted          int                  `json:"attempted"`
	Percent            float64              `json:"progress_percent"`
	AverageFrustration float64              `json:"average_frustration"`
	Concepts           []ConceptProgressDTO `json:"concepts"`
}

func progressResponse(r *engine.Report) ProgressResponse {
	out := ProgressResponse{
		UserID:             r.UserID,
		CourseID:           r.CourseID,
		Total:              r.Total,
		Mastered:           r.Mastered,
		Eligible:           r.EligibleCount,
		Attempted:          r.Attempted,
		Percent:            r.Percent,
		AverageFrustration: r.AverageFrustration,
		Concepts:           make([]ConceptProgressDTO, len(r.Concepts)),
	}
	for i, p := range r.Concepts {
		row := ConceptProgressDTO{
			Concept:  *conceptDTO(&p.Concept),
			State:    p.State.Summary(),
			Level:    string(p.Level),
			Eligible: p.Eligible,
			Mastered: p.Mastered,
		}
		if p.State.Touched() {
			seen := p.State.LastSeen
			row.LastSeen = &seen
		}
		out.Concepts[i] = row
	}
	return out
}

// SessionDTO is the wire form of a learning session.
type SessionDTO struct {
	ID              string     `json:"id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	TotalQuestions  int        `json:"total_questions"`
	AverageScore    float64    `json:"average_score"`
	ConceptsCovered []string   `json:"concepts_covered"`
}

// CloseSessionResponse answers POST /session/close.
type CloseSessionResponse struct {
	Closed  bool        `json:"closed"`
	Session *SessionDTO `json:"session"`
}

func closeSessionResponse(s *store.LearningSession) CloseSessionResponse {
	if s == nil {
		return CloseSessionResponse{}
	}
	covered := s.ConceptsCovered
	if covered == nil {
		covered = []string{}
	}
	return CloseSessionResponse{
		Closed: true,
		Session: &SessionDTO{
			ID:              s.ID.String(),
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			TotalQuestions:  s.TotalQuestions,
			AverageScore:    s.AverageScore,
			ConceptsCovered: covered,
		},
	}
}
