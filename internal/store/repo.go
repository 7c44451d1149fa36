package store

import (
	"context"
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/google/uuid"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact purpose match ("" = any)
	From    time.Time // created_at >= From
	To      time.Time // created_at <= To
}

// CatalogStats reports what an upsert changed.
type CatalogStats struct {
	CoursesCreated  int
	CoursesUpdated  int
	ConceptsCreated int
	ConceptsUpdated int
}

// CatalogRepo stores the read-mostly course and concept catalog.
type CatalogRepo interface {
	// UpsertCatalog creates or replaces every course and concept in cat
	// in a single transaction. Rows absent from cat are left untouched.
	UpsertCatalog(ctx context.Context, cat *concept.Catalog) (CatalogStats, error)

	// Courses returns all courses ordered by grade then name.
	Courses(ctx context.Context) ([]concept.Course, error)

	// Concepts returns concepts in course order. When activeOnly is set,
	// inactive concepts and concepts of inactive courses are skipped.
	Concepts(ctx context.Context, activeOnly bool) ([]concept.Concept, error)

	// Concept returns a concept by ID, or nil if none exists.
	Concept(ctx context.Context, id string) (*concept.Concept, error)
}

// MasteryRepo owns MasteryState rows and the quiz ledger.
type MasteryRepo interface {
	// States returns every state of a user, most recently seen first.
	States(ctx context.Context, userID string) ([]mastery.State, error)

	// State returns one state, or nil if the user never attempted the concept.
	State(ctx context.Context, userID, conceptID string) (*mastery.State, error)

	// RecordAttempt applies the update rule to the (user, concept) state,
	// creating it if needed, and appends the attempt to the ledger. Both
	// writes commit together or not at all.
	RecordAttempt(ctx context.Context, g mastery.Grade) (mastery.Graded, error)

	// MarkRecommended flags an existing state as chosen by the adapter.
	// It reports false when the user has no state for the concept.
	MarkRecommended(ctx context.Context, userID, conceptID string) (bool, error)

	// History returns a user's attempts, newest first. An empty courseID
	// means every course; limit 0 means no limit.
	History(ctx context.Context, userID, courseID string, limit int) ([]mastery.Attempt, error)
}

// LearningSession is a bounded window of learner activity.
type LearningSession struct {
	ID              uuid.UUID
	UserID          string
	StartTime       time.Time
	EndTime         *time.Time
	TotalQuestions  int
	AverageScore    float64
	ConceptsCovered []string
}

// Open reports whether the session has not been closed.
func (s LearningSession) Open() bool {
	return s.EndTime == nil
}

// SessionRepo stores learning sessions.
type SessionRepo interface {
	// OpenSessions returns a user's open sessions, newest first.
	OpenSessions(ctx context.Context, userID string) ([]LearningSession, error)

	// CreateSession starts a new open session.
	CreateSession(ctx context.Context, userID string, start time.Time) (*LearningSession, error)

	// EndSession closes a session. Closing a closed session is a no-op.
	EndSession(ctx context.Context, id uuid.UUID, end time.Time) error

	// UpdateSession replaces a session's counters with fn's result inside
	// a transaction. It returns nil if the session does not exist.
	UpdateSession(ctx context.Context, id uuid.UUID, fn func(LearningSession) LearningSession) (*LearningSession, error)

	// RecentSessions returns a user's sessions, newest first.
	RecentSessions(ctx context.Context, userID string, limit int) ([]LearningSession, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates calls and tokens per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
