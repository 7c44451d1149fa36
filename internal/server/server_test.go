package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/store"
)

type fakeEngine struct {
	next       *concept.Concept
	eligible   []concept.Concept
	report     *engine.Report
	updateErr  error
	afterErr   error
	after      *concept.Concept
	closed     *store.LearningSession
	err        error
	lastUser   string
	lastCourse string
	lastScore  float64
}

func (f *fakeEngine) SelectNextConcept(_ context.Context, userID, courseID string) (*concept.Concept, error) {
	f.lastUser, f.lastCourse = userID, courseID
	return f.next, f.err
}

func (f *fakeEngine) EligibleConcepts(_ context.Context, userID, courseID string) ([]concept.Concept, error) {
	f.lastUser, f.lastCourse = userID, courseID
	return f.eligible, f.err
}

func (f *fakeEngine) Progress(_ context.Context, userID, courseID string) (*engine.Report, error) {
	f.lastUser, f.lastCourse = userID, courseID
	return f.report, f.err
}

func (f *fakeEngine) UpdateMasteryAfterQuiz(_ context.Context, userID, conceptID string, score float64) (*engine.UpdateResult, error) {
	f.lastUser, f.lastScore = userID, score
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	before := mastery.Fresh(userID, conceptID)
	after := mastery.Apply(before, score, time.Now())
	return &engine.UpdateResult{
		Concept:   concept.Concept{ID: conceptID, CourseID: "math"},
		Before:    before,
		After:     after,
		Band:      mastery.BandFor(score),
		Attempt:   mastery.Attempt{ID: 7, ConceptID: conceptID, ScorePercent: mastery.ClampScore(score)},
		SessionID: "s-1",
	}, nil
}

func (f *fakeEngine) RecommendNextConceptAfterQuiz(context.Context, string, string, float64) (*concept.Concept, error) {
	return f.after, f.afterErr
}

func (f *fakeEngine) CloseSession(context.Context, string) (*store.LearningSession, error) {
	return f.closed, f.err
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := New(&fakeEngine{}, Options{Version: "v1.2.3"}).Handler()
	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","version":"v1.2.3"}`, rec.Body.String())
}

func TestNext(t *testing.T) {
	f := &fakeEngine{next: &concept.Concept{ID: "fractions", CourseID: "math", Title: "Fractions", Difficulty: 2, OrderIndex: 3}}
	h := New(f, Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/users/ana/next?course=math", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[NextResponse](t, rec)
	require.NotNil(t, resp.Concept)
	assert.Equal(t, "fractions", resp.Concept.ID)
	assert.Equal(t, []string{}, resp.Concept.Prerequisites)
	assert.Equal(t, "ana", f.lastUser)
	assert.Equal(t, "math", f.lastCourse)
}

func TestNext_NoneAvailable(t *testing.T) {
	h := New(&fakeEngine{}, Options{}).Handler()
	rec := do(t, h, http.MethodGet, "/v1/users/ana/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"concept":null}`, rec.Body.String())
}

func TestEligible(t *testing.T) {
	f := &fakeEngine{eligible: []concept.Concept{{ID: "a"}, {ID: "b", Prerequisites: []string{"a"}}}}
	h := New(f, Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/users/ana/eligible", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[EligibleResponse](t, rec)
	require.Len(t, resp.Concepts, 2)
	assert.Equal(t, []string{"a"}, resp.Concepts[1].Prerequisites)
}

func TestProgress(t *testing.T) {
	seen := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	f := &fakeEngine{report: &engine.Report{
		UserID: "ana", CourseID: "math", Total: 2, Mastered: 1, EligibleCount: 2, Attempted: 1, Percent: 50,
		Concepts: []engine.ConceptProgress{
			{Concept: concept.Concept{ID: "a"}, State: mastery.State{Mastery: 0.8, Attempts: 3, LastSeen: seen}, Level: mastery.LevelMastered, Eligible: true, Mastered: true},
			{Concept: concept.Concept{ID: "b"}, Level: mastery.LevelNew, Eligible: true},
		},
	}}
	h := New(f, Options{}).Handler()

	rec := do(t, h, http.MethodGet, "/v1/users/ana/progress?course=math", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ProgressResponse](t, rec)
	assert.Equal(t, 50.0, resp.Percent)
	require.Len(t, resp.Concepts, 2)
	assert.Equal(t, "mastered", resp.Concepts[0].Level)
	require.NotNil(t, resp.Concepts[0].LastSeen)
	assert.True(t, resp.Concepts[0].LastSeen.Equal(seen))
	assert.Nil(t, resp.Concepts[1].LastSeen)
}

func TestQuiz(t *testing.T) {
	f := &fakeEngine{after: &concept.Concept{ID: "decimals", CourseID: "math"}}
	h := New(f, Options{}).Handler()

	rec := do(t, h, http.MethodPost, "/v1/users/ana/quiz", map[string]any{"concept_id": "fractions", "score_percent": 120})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[QuizResponse](t, rec)
	assert.Equal(t, "fractions", resp.ConceptID)
	assert.Equal(t, 100.0, resp.Score)
	assert.Equal(t, "high", resp.Band)
	assert.Equal(t, 1, resp.After.Attempts)
	assert.Equal(t, 7, resp.AttemptID)
	require.NotNil(t, resp.Next)
	assert.Equal(t, "decimals", resp.Next.ID)
	assert.Equal(t, 120.0, f.lastScore)
}

func TestQuiz_ZeroScoreIsAccepted(t *testing.T) {
	h := New(&fakeEngine{}, Options{}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/users/ana/quiz", map[string]any{"concept_id": "fractions", "score_percent": 0})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "low", decode[QuizResponse](t, rec).Band)
}

func TestQuiz_RecommendationFailureStillReturnsUpdate(t *testing.T) {
	h := New(&fakeEngine{afterErr: errors.New("adapter exploded")}, Options{}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/users/ana/quiz", map[string]any{"concept_id": "a", "score_percent": 50})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[QuizResponse](t, rec).Next)
}

func TestQuiz_Errors(t *testing.T) {
	tests := []struct {
		name     string
		engine   *fakeEngine
		body     any
		wantCode int
		wantErr  string
	}{
		{"missing concept", &fakeEngine{}, map[string]any{"score_percent": 50}, http.StatusBadRequest, CodeInvalidRequest},
		{"missing score", &fakeEngine{}, map[string]any{"concept_id": "a"}, http.StatusBadRequest, CodeInvalidRequest},
		{"unknown concept", &fakeEngine{updateErr: fmt.Errorf("%w: %q", engine.ErrUnknownConcept, "zzz")}, map[string]any{"concept_id": "zzz", "score_percent": 50}, http.StatusNotFound, CodeUnknownConcept},
		{"storage failure", &fakeEngine{updateErr: errors.New("disk I/O error")}, map[string]any{"concept_id": "a", "score_percent": 50}, http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.engine, Options{}).Handler()
			rec := do(t, h, http.MethodPost, "/v1/users/ana/quiz", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			env := decode[ErrorEnvelope](t, rec)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			assert.NotContains(t, env.Error.Message, "disk I/O")
		})
	}
}

func TestCloseSession(t *testing.T) {
	h := New(&fakeEngine{}, Options{}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/users/ana/session/close", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"closed":false,"session":null}`, rec.Body.String())

	end := time.Now().UTC()
	id := uuid.New()
	h = New(&fakeEngine{closed: &store.LearningSession{ID: id, UserID: "ana", EndTime: &end, TotalQuestions: 4}}, Options{}).Handler()
	rec = do(t, h, http.MethodPost, "/v1/users/ana/session/close", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CloseSessionResponse](t, rec)
	assert.True(t, resp.Closed)
	require.NotNil(t, resp.Session)
	assert.Equal(t, id.String(), resp.Session.ID)
	assert.Equal(t, []string{}, resp.Session.ConceptsCovered)
}

func TestCORS(t *testing.T) {
	h := New(&fakeEngine{}, Options{CORSOrigins: []string{"http://app.test"}}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

type slowEngine struct {
	fakeEngine
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (s *slowEngine) SelectNextConcept(context.Context, string, string) (*concept.Concept, error) {
	if s.calls.Add(1) == 1 {
		close(s.started)
	}
	<-s.release
	return &concept.Concept{ID: "fractions"}, nil
}

func TestNext_ConcurrentRequestsShareOneSelection(t *testing.T) {
	eng := &slowEngine{started: make(chan struct{}), release: make(chan struct{})}
	h := New(eng, Options{}).Handler()

	var wg sync.WaitGroup
	codes := make([]int, 3)
	get := func(i int) {
		defer wg.Done()
		codes[i] = do(t, h, http.MethodGet, "/v1/users/ana/next?course=math", nil).Code
	}
	wg.Add(1)
	go get(0)
	<-eng.started
	wg.Add(2)
	go get(1)
	go get(2)
	time.Sleep(100 * time.Millisecond)
	close(eng.release)
	wg.Wait()

	assert.Equal(t, []int{200, 200, 200}, codes)
	assert.Equal(t, int32(1), eng.calls.Load())
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := New(&fakeEngine{}, Options{Addr: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
