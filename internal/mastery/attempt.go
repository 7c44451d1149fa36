package mastery

import "time"

// Attempt is one row of the quiz ledger. Attempts are never mutated.
type Attempt struct {
	ID           int
	UserID       string
	ConceptID    string
	CourseID     string
	ScorePercent float64
	SessionID    string
	CreatedAt    time.Time
}

// Grade is the input to recording one graded attempt.
type Grade struct {
	UserID    string
	ConceptID string
	CourseID  string
	Score     float64 // percent; clamped before use
	SessionID string
	At        time.Time
}

// Graded is the outcome of recording one attempt.
type Graded struct {
	Before  State
	After   State
	Band    Band
	Attempt Attempt
}
