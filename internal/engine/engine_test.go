package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/recommend"
	"github.com/google/uuid"
)

func newEngine(cat []concept.Concept, st *fakeStore, adapter recommend.Adapter) *Engine {
	cfg := DefaultConfig()
	cfg.AdapterBudget = 50 * time.Millisecond
	return New(&fakeCatalog{concepts: cat}, st, nil, adapter, cfg, nil, WithClock(func() time.Time { return t0.Add(time.Hour) }))
}

func mustSelect(t *testing.T, e *Engine, user, course string) *concept.Concept {
	t.Helper()
	c, err := e.SelectNextConcept(context.Background(), user, course)
	if err != nil {
		t.Fatalf("SelectNextConcept: %v", err)
	}
	return c
}

func wantID(t *testing.T, got *concept.Concept, want string) {
	t.Helper()
	if got == nil {
		t.Fatalf("got nil concept, want %q", want)
	}
	if got.ID != want {
		t.Errorf("got %q, want %q", got.ID, want)
	}
}

func TestUpdateMasteryAfterQuiz_Bands(t *testing.T) {
	tests := []struct {
		score    float64
		wantBand mastery.Band
	}{
		{95, mastery.BandHigh},
		{80, mastery.BandHigh},
		{65, mastery.BandMid},
		{50, mastery.BandMid},
		{20, mastery.BandLow},
		{-10, mastery.BandLow},
		{150, mastery.BandHigh},
	}
	for _, tt := range tests {
		st := newFakeStore(state("u", "a", 0.5, 0.5, 4, 0))
		e := newEngine([]concept.Concept{mk("a", "math", 1)}, st, nil)

		res, err := e.UpdateMasteryAfterQuiz(context.Background(), "u", "a", tt.score)
		if err != nil {
			t.Fatalf("score %v: %v", tt.score, err)
		}
		if res.Band != tt.wantBand {
			t.Errorf("score %v: band = %v, want %v", tt.score, res.Band, tt.wantBand)
		}
		if res.After.Attempts != res.Before.Attempts+1 {
			t.Errorf("score %v: attempts %d -> %d", tt.score, res.Before.Attempts, res.After.Attempts)
		}
		for _, v := range []float64{res.After.Mastery, res.After.Confidence, res.After.Frustration} {
			if v < 0 || v > 1 {
				t.Errorf("score %v: signal %v out of [0,1]", tt.score, v)
			}
		}
		if res.Attempt.ScorePercent < 0 || res.Attempt.ScorePercent > 100 {
			t.Errorf("score %v: stored score %v not clamped", tt.score, res.Attempt.ScorePercent)
		}
		if !res.After.LastSeen.Equal(t0.Add(time.Hour)) {
			t.Errorf("score %v: last seen = %v", tt.score, res.After.LastSeen)
		}
	}
}

func TestUpdateMasteryAfterQuiz_HighScoresImproveUntilClamped(t *testing.T) {
	st := newFakeStore()
	e := newEngine([]concept.Concept{mk("a", "math", 1)}, st, nil)

	prev := 0.0
	for i := 0; i < 10; i++ {
		res, err := e.UpdateMasteryAfterQuiz(context.Background(), "u", "a", 90)
		if err != nil {
			t.Fatal(err)
		}
		if prev < 1 && res.After.Mastery <= prev {
			t.Fatalf("attempt %d: mastery %v did not improve on %v", i, res.After.Mastery, prev)
		}
		if res.After.Mastery > 1 {
			t.Fatalf("mastery %v above 1", res.After.Mastery)
		}
		prev = res.After.Mastery
	}
	if prev != 1 {
		t.Errorf("mastery = %v after 10 high scores, want 1", prev)
	}
}

func TestUpdateMasteryAfterQuiz_UnknownConcept(t *testing.T) {
	st := newFakeStore()
	e := newEngine([]concept.Concept{mk("a", "math", 1)}, st, nil)

	_, err := e.UpdateMasteryAfterQuiz(context.Background(), "u", "nope", 90)
	if !errors.Is(err, ErrUnknownConcept) {
		t.Fatalf("error = %v, want ErrUnknownConcept", err)
	}
	if len(st.attempts) != 0 {
		t.Error("attempt recorded for unknown concept")
	}
}

func TestUpdateMasteryAfterQuiz_SessionFailureKeepsAttempt(t *testing.T) {
	st := newFakeStore()
	e := New(&fakeCatalog{concepts: []concept.Concept{mk("a", "math", 1)}}, st, brokenSessions{}, nil, DefaultConfig(), nil)

	res, err := e.UpdateMasteryAfterQuiz(context.Background(), "u", "a", 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SessionID != "" {
		t.Errorf("session id = %q, want empty", res.SessionID)
	}
	if len(st.attempts) != 1 {
		t.Errorf("attempts = %d, want 1", len(st.attempts))
	}
}

func TestUpdateMasteryAfterQuiz_RecordsSession(t *testing.T) {
	st := newFakeStore()
	sessions := &fixedSessions{id: uuid.New()}
	e := New(&fakeCatalog{concepts: []concept.Concept{mk("a", "math", 1)}}, st, sessions, nil, DefaultConfig(), nil)

	res, err := e.UpdateMasteryAfterQuiz(context.Background(), "u", "a", 70)
	if err != nil {
		t.Fatal(err)
	}
	if res.SessionID != sessions.id.String() || res.Attempt.SessionID != sessions.id.String() {
		t.Errorf("session ids = %q / %q, want %s", res.SessionID, res.Attempt.SessionID, sessions.id)
	}
	if len(sessions.recorded) != 1 || sessions.recorded[0] != "a" {
		t.Errorf("recorded = %v", sessions.recorded)
	}
	if res.Attempt.CourseID != "math" {
		t.Errorf("course = %q", res.Attempt.CourseID)
	}
}

func TestSelectNextConcept_CourseScoping(t *testing.T) {
	cat := []concept.Concept{mk("a1", "a", 1), mk("b1", "b", 1), mk("b2", "b", 2)}
	st := newFakeStore(state("u", "b1", 0.9, 0, 3, 5), state("u", "b2", 0.8, 0, 3, 6))
	e := newEngine(cat, st, &recommend.Stub{Ranking: []string{"a1", "b2"}})

	wantID(t, mustSelect(t, e, "u", "b"), "b2")

	e = newEngine(cat, st, nil)
	wantID(t, mustSelect(t, e, "u", "b"), "b2")
}

func TestSelectNextConcept_NoStatesPicksLowestOrder(t *testing.T) {
	cat := []concept.Concept{mk("c", "math", 3), mk("a", "math", 1), mk("b", "math", 2)}
	e := newEngine(cat, newFakeStore(), nil)
	wantID(t, mustSelect(t, e, "u", "math"), "a")
}

func TestSelectNextConcept_EmptyScope(t *testing.T) {
	inactive := mk("x", "math", 1)
	inactive.Active = false
	e := newEngine([]concept.Concept{inactive}, newFakeStore(), nil)

	if c := mustSelect(t, e, "u", "math"); c != nil {
		t.Errorf("got %q, want nil", c.ID)
	}
	if c := mustSelect(t, e, "u", "other"); c != nil {
		t.Errorf("got %q, want nil", c.ID)
	}
}

func TestSelectNextConcept_AdapterUnavailableIsDeterministic(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1), mk("b", "math", 2), mk("c", "math", 3, "a")}
	st := newFakeStore(state("u", "a", 0.7, 0.1, 2, 1), state("u", "b", 0.3, 0.2, 2, 2))

	adapters := []recommend.Adapter{
		nil,
		&recommend.Stub{},
		&recommend.Stub{Err: errors.New("503")},
		&recommend.Stub{Panic: true},
		&recommend.Stub{Block: true, Ranking: []string{"a"}},
		&recommend.Stub{Ranking: []string{"unknown", "also-unknown"}},
	}
	var first string
	for i, a := range adapters {
		e := newEngine(cat, st, a)
		for j := 0; j < 3; j++ {
			c := mustSelect(t, e, "u", "math")
			if c == nil {
				t.Fatalf("adapter %d: nil concept", i)
			}
			if first == "" {
				first = c.ID
			}
			if c.ID != first {
				t.Errorf("adapter %d call %d: got %q, want %q", i, j, c.ID, first)
			}
		}
	}
	// c is unlocked (a >= 0.6) and never attempted.
	if first != "c" {
		t.Errorf("fallback picked %q, want c", first)
	}
	if len(st.marked) != 0 {
		t.Errorf("fallback choices marked recommended: %v", st.marked)
	}
}

func TestSelectNextConcept_AdapterChoiceWins(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1), mk("b", "math", 2), mk("locked", "math", 3, "b")}
	st := newFakeStore(state("u", "b", 0.2, 0, 1, 1))
	stub := &recommend.Stub{Ranking: []string{"locked", "b", "a"}}
	e := newEngine(cat, st, stub)

	wantID(t, mustSelect(t, e, "u", "math"), "b")

	s, _ := st.get("u", "b")
	if !s.Recommended {
		t.Error("adapter choice not marked recommended")
	}

	req := stub.RankCalls[0]
	if len(req.Concepts) != 2 {
		t.Errorf("candidates = %v, want only eligible a and b", req.Concepts)
	}
	if _, ok := req.MasteryStates["b"]; !ok {
		t.Error("mastery summary for b missing from request")
	}
}

func TestSelectNextConcept_AdapterChoiceWithoutStateIsNotCreated(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1)}
	st := newFakeStore()
	e := newEngine(cat, st, &recommend.Stub{Ranking: []string{"a"}})

	wantID(t, mustSelect(t, e, "u", "math"), "a")
	if _, ok := st.get("u", "a"); ok {
		t.Error("selection created a mastery state")
	}
}

func TestSelectNextConcept_FrustrationPivotPrefersPrerequisite(t *testing.T) {
	cat := []concept.Concept{
		mk("prereq", "math", 1),
		mk("sibling", "math", 2),
		mk("fresh", "math", 3),
		mk("current", "math", 4, "prereq"),
	}
	st := newFakeStore(
		state("u", "prereq", 0.2, 0, 2, 1),
		state("u", "sibling", 0.5, 0, 2, 2),
		state("u", "current", 0.3, 0.75, 4, 10),
	)
	e := newEngine(cat, st, nil)

	// Without the pivot the never-attempted "fresh" concept would win.
	wantID(t, mustSelect(t, e, "u", "math"), "prereq")
}

func TestSelectNextConcept_FrustrationPivotToSibling(t *testing.T) {
	cat := []concept.Concept{
		mk("prereq", "math", 1),
		mk("sibling", "math", 2),
		mk("other", "math", 3),
		mk("current", "math", 4, "prereq"),
		mk("elsewhere", "sci", 1),
	}
	st := newFakeStore(
		state("u", "prereq", 0.9, 0, 5, 1),
		state("u", "sibling", 0.5, 0, 2, 2),
		state("u", "other", 0.4, 0, 2, 3),
		state("u", "current", 0.1, 0.9, 2, 10),
	)
	e := newEngine(cat, st, nil)

	// Unscoped: elsewhere is eligible with mastery 0 but is not a sibling.
	wantID(t, mustSelect(t, e, "u", ""), "other")
}

func TestSelectNextConcept_StuckMovesOn(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1), mk("b", "math", 2), mk("c", "math", 3)}
	st := newFakeStore(
		state("u", "a", 0.1, 0.5, 5, 10),
		state("u", "b", 0.5, 0, 2, 1),
		state("u", "c", 0.3, 0, 2, 2),
	)
	e := newEngine(cat, st, nil)
	wantID(t, mustSelect(t, e, "u", "math"), "c")
}

func TestSelectNextConcept_StuckPivotTieGoesToLeastRecent(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1), mk("b", "math", 2), mk("c", "math", 3)}
	st := newFakeStore(
		state("u", "a", 0.04, 0, 4, 60),
		state("u", "b", 0.15, 0, 1, 40),
		state("u", "c", 0.15, 0, 1, 20),
	)
	e := newEngine(cat, st, nil)
	wantID(t, mustSelect(t, e, "u", "math"), "c")
}

func TestSelectNextConcept_FrustrationSiblingTieGoesToLeastRecent(t *testing.T) {
	cat := []concept.Concept{
		mk("current", "math", 1),
		mk("s1", "math", 2),
		mk("s2", "math", 3),
	}
	st := newFakeStore(
		state("u", "current", 0.3, 0.9, 3, 60),
		state("u", "s1", 0.15, 0, 1, 30),
		state("u", "s2", 0.15, 0, 1, 10),
	)
	e := newEngine(cat, st, nil)
	wantID(t, mustSelect(t, e, "u", "math"), "s2")
}

func TestSelectNextConcept_LowestMasteryThenLastSeen(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1), mk("b", "math", 2), mk("c", "math", 3)}
	st := newFakeStore(
		state("u", "a", 0.5, 0, 1, 9),
		state("u", "b", 0.5, 0, 1, 3),
		state("u", "c", 0.9, 0, 1, 10),
	)
	e := newEngine(cat, st, nil)
	wantID(t, mustSelect(t, e, "u", "math"), "b")
}

func TestSelectNextConcept_AbsoluteFallback(t *testing.T) {
	// A cycle keeps both concepts locked forever.
	cat := []concept.Concept{mk("a", "math", 1, "b"), mk("b", "math", 2, "a")}

	e := newEngine(cat, newFakeStore(), nil)
	wantID(t, mustSelect(t, e, "u", "math"), "a")

	st := newFakeStore(state("u", "b", 0.3, 0, 1, 1))
	e = newEngine(cat, st, nil)
	wantID(t, mustSelect(t, e, "u", "math"), "b")

	eligible, err := e.EligibleConcepts(context.Background(), "u", "math")
	if err != nil {
		t.Fatal(err)
	}
	if len(eligible) != 0 {
		t.Errorf("eligible = %v, want none", concept.IDs(eligible))
	}
}

func TestEligibleConcepts(t *testing.T) {
	cat := []concept.Concept{mk("a", "math", 1), mk("b", "math", 2, "a"), mk("c", "math", 3, "b"), mk("x", "sci", 1)}
	st := newFakeStore(state("u", "a", 0.6, 0, 3, 1), state("u", "b", 0.59, 0, 3, 2))
	e := newEngine(cat, st, nil)

	got, err := e.EligibleConcepts(context.Background(), "u", "math")
	if err != nil {
		t.Fatal(err)
	}
	ids := concept.IDs(got)
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("eligible = %v, want [a b]", ids)
	}

	all, err := e.EligibleConcepts(context.Background(), "u", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("unscoped eligible = %v, want 3", concept.IDs(all))
	}
}

func TestCloseSession(t *testing.T) {
	e := newEngine(nil, newFakeStore(), nil)
	s, err := e.CloseSession(context.Background(), "u")
	if err != nil || s != nil {
		t.Errorf("CloseSession without tracker = %v, %v", s, err)
	}

	sessions := &fixedSessions{id: uuid.New()}
	e = New(&fakeCatalog{}, newFakeStore(), sessions, nil, DefaultConfig(), nil)
	s, err = e.CloseSession(context.Background(), "u")
	if err != nil {
		t.Fatal(err)
	}
	if s == nil || s.Open() {
		t.Errorf("session = %+v, want closed", s)
	}
}

func TestBudgetFor(t *testing.T) {
	tests := []struct {
		budget, timeout, want time.Duration
	}{
		{0, 30 * time.Second, 20 * time.Second},
		{10 * time.Second, 30 * time.Second, 10 * time.Second},
		{30 * time.Second, 30 * time.Second, 20 * time.Second},
		{45 * time.Second, 30 * time.Second, 20 * time.Second},
		{5 * time.Second, 0, 5 * time.Second},
	}
	for _, tt := range tests {
		got := BudgetFor(tt.budget, tt.timeout)
		if got != tt.want {
			t.Errorf("BudgetFor(%v, %v) = %v, want %v", tt.budget, tt.timeout, got, tt.want)
		}
		if tt.timeout > 0 && got >= tt.timeout {
			t.Errorf("BudgetFor(%v, %v) = %v, not below timeout", tt.budget, tt.timeout, got)
		}
	}
}
