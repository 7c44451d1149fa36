package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/mastery"
	"golang.org/x/sync/errgroup"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testBase = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func testCatalog() *concept.Catalog {
	return &concept.Catalog{
		Courses: []concept.Course{
			{ID: "math", Name: "Math", GradeLevel: 3, Active: true},
			{ID: "old", Name: "Old Course", GradeLevel: 1, Active: false},
		},
		Concepts: []concept.Concept{
			{ID: "counting", CourseID: "math", Title: "Counting", Difficulty: 1, OrderIndex: 1, Active: true},
			{ID: "addition", CourseID: "math", Title: "Addition", Difficulty: 2, OrderIndex: 2, Prerequisites: []string{"counting"}, Active: true},
			{ID: "hidden", CourseID: "math", Title: "Hidden", Difficulty: 1, OrderIndex: 3, Active: false},
			{ID: "abacus", CourseID: "old", Title: "Abacus", Difficulty: 1, OrderIndex: 1, Active: true},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithConnPragmas(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"a.db", "a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file:x?mode=memory", "file:x?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"a.db?_pragma=journal_mode(WAL)", "a.db?_pragma=journal_mode(WAL)"},
	}
	for _, tt := range tests {
		if got := withConnPragmas(tt.dsn); got != tt.want {
			t.Errorf("withConnPragmas(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestUpsertCatalog(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	stats, err := repo.UpsertCatalog(ctx, testCatalog())
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if stats.CoursesCreated != 2 || stats.ConceptsCreated != 4 {
		t.Errorf("first upsert stats = %+v", stats)
	}

	cat := testCatalog()
	cat.Concepts[1].Title = "Adding Numbers"
	stats, err = repo.UpsertCatalog(ctx, cat)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if stats.ConceptsUpdated != 4 || stats.ConceptsCreated != 0 {
		t.Errorf("second upsert stats = %+v", stats)
	}

	c, err := repo.Concept(ctx, "addition")
	if err != nil {
		t.Fatalf("get concept: %v", err)
	}
	if c == nil || c.Title != "Adding Numbers" {
		t.Fatalf("concept = %+v, want updated title", c)
	}
	if len(c.Prerequisites) != 1 || c.Prerequisites[0] != "counting" {
		t.Errorf("prerequisites = %v, want [counting]", c.Prerequisites)
	}
}

func TestConcepts_ActiveOnly(t *testing.T) {
	s := openTestStore(t)
	repo := s.CatalogRepo()
	ctx := context.Background()

	if _, err := repo.UpsertCatalog(ctx, testCatalog()); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	active, err := repo.Concepts(ctx, true)
	if err != nil {
		t.Fatalf("active concepts: %v", err)
	}
	got := concept.IDs(active)
	if strings.Join(got, ",") != "counting,addition" {
		t.Errorf("active concepts = %v, want [counting addition]", got)
	}

	all, err := repo.Concepts(ctx, false)
	if err != nil {
		t.Fatalf("all concepts: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("got %d concepts, want 4", len(all))
	}
}

func TestConcept_NotFound(t *testing.T) {
	s := openTestStore(t)
	c, err := s.CatalogRepo().Concept(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil concept, got %+v", c)
	}
}

func TestCourses_Ordered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if _, err := s.CatalogRepo().UpsertCatalog(ctx, testCatalog()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	courses, err := s.CatalogRepo().Courses(ctx)
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	if len(courses) != 2 || courses[0].ID != "old" || courses[1].ID != "math" {
		t.Errorf("courses = %+v, want old then math", courses)
	}
}

func TestRecordAttempt_CreatesAndUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	st, err := repo.State(ctx, "u1", "counting")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if st != nil {
		t.Fatal("expected no state before first attempt")
	}

	g, err := repo.RecordAttempt(ctx, mastery.Grade{
		UserID: "u1", ConceptID: "counting", CourseID: "math", Score: 90, SessionID: "s1", At: testBase,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if g.Before.Attempts != 0 || g.Before.Mastery != 0 || !g.Before.LastSeen.IsZero() {
		t.Errorf("before = %+v, want fresh state", g.Before)
	}
	if g.After.Attempts != 1 || g.After.Mastery != 0.15 || g.Band != mastery.BandHigh {
		t.Errorf("after = %+v band %v", g.After, g.Band)
	}
	if g.Attempt.ID == 0 || g.Attempt.SessionID != "s1" || g.Attempt.CourseID != "math" {
		t.Errorf("attempt = %+v", g.Attempt)
	}

	g, err = repo.RecordAttempt(ctx, mastery.Grade{
		UserID: "u1", ConceptID: "counting", CourseID: "math", Score: 140, At: testBase.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("record second: %v", err)
	}
	if g.Before.Attempts != 1 || g.After.Attempts != 2 {
		t.Errorf("attempts before/after = %d/%d, want 1/2", g.Before.Attempts, g.After.Attempts)
	}
	if g.Attempt.ScorePercent != 100 {
		t.Errorf("stored score = %v, want clamped 100", g.Attempt.ScorePercent)
	}

	st, err = repo.State(ctx, "u1", "counting")
	if err != nil || st == nil {
		t.Fatalf("state after attempts: %v, %v", st, err)
	}
	if st.Attempts != 2 || !st.LastSeen.Equal(testBase.Add(time.Minute)) {
		t.Errorf("stored state = %+v", st)
	}
}

func TestStates_MostRecentFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.RecordAttempt(ctx, mastery.Grade{
			UserID: "u1", ConceptID: id, CourseID: "math", Score: 60, At: testBase.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}
	if _, err := repo.RecordAttempt(ctx, mastery.Grade{UserID: "u2", ConceptID: "a", CourseID: "math", Score: 60, At: testBase}); err != nil {
		t.Fatalf("record other user: %v", err)
	}

	states, err := repo.States(ctx, "u1")
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	var got []string
	for _, st := range states {
		got = append(got, st.ConceptID)
	}
	if strings.Join(got, ",") != "c,b,a" {
		t.Errorf("states order = %v, want [c b a]", got)
	}
}

func TestHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	grades := []mastery.Grade{
		{UserID: "u1", ConceptID: "counting", CourseID: "math", Score: 40, At: testBase},
		{UserID: "u1", ConceptID: "letters", CourseID: "reading", Score: 70, At: testBase.Add(time.Minute)},
		{UserID: "u1", ConceptID: "addition", CourseID: "math", Score: 85, At: testBase.Add(2 * time.Minute)},
	}
	for _, g := range grades {
		if _, err := repo.RecordAttempt(ctx, g); err != nil {
			t.Fatalf("record %s: %v", g.ConceptID, err)
		}
	}

	math, err := repo.History(ctx, "u1", "math", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(math) != 2 || math[0].ConceptID != "addition" || math[1].ConceptID != "counting" {
		t.Errorf("math history = %+v", math)
	}

	all, err := repo.History(ctx, "u1", "", 1)
	if err != nil {
		t.Fatalf("history all: %v", err)
	}
	if len(all) != 1 || all[0].ConceptID != "addition" {
		t.Errorf("limited history = %+v", all)
	}
}

func TestMarkRecommended(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	ok, err := repo.MarkRecommended(ctx, "u1", "counting")
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if ok {
		t.Error("mark reported success without a state row")
	}

	if _, err := repo.RecordAttempt(ctx, mastery.Grade{UserID: "u1", ConceptID: "counting", CourseID: "math", Score: 50, At: testBase}); err != nil {
		t.Fatalf("record: %v", err)
	}
	ok, err = repo.MarkRecommended(ctx, "u1", "counting")
	if err != nil || !ok {
		t.Fatalf("mark existing: ok=%v err=%v", ok, err)
	}
	st, _ := repo.State(ctx, "u1", "counting")
	if st == nil || !st.Recommended {
		t.Errorf("state = %+v, want recommended", st)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, err := repo.CreateSession(ctx, "u1", testBase)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !sess.Open() {
		t.Fatal("new session should be open")
	}

	open, err := repo.OpenSessions(ctx, "u1")
	if err != nil || len(open) != 1 {
		t.Fatalf("open sessions = %v, err %v", open, err)
	}

	updated, err := repo.UpdateSession(ctx, sess.ID, func(ls LearningSession) LearningSession {
		ls.TotalQuestions = 2
		ls.AverageScore = 75
		ls.ConceptsCovered = []string{"counting"}
		return ls
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TotalQuestions != 2 || updated.AverageScore != 75 || len(updated.ConceptsCovered) != 1 {
		t.Errorf("updated = %+v", updated)
	}

	if err := repo.EndSession(ctx, sess.ID, testBase.Add(time.Hour)); err != nil {
		t.Fatalf("end: %v", err)
	}
	open, _ = repo.OpenSessions(ctx, "u1")
	if len(open) != 0 {
		t.Errorf("got %d open sessions after end, want 0", len(open))
	}

	recent, err := repo.RecentSessions(ctx, "u1", 5)
	if err != nil || len(recent) != 1 {
		t.Fatalf("recent = %v, err %v", recent, err)
	}
	if recent[0].EndTime == nil || !recent[0].EndTime.Equal(testBase.Add(time.Hour)) {
		t.Errorf("end time = %v", recent[0].EndTime)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o", Purpose: "rank-concepts", InputTokens: 100, OutputTokens: 10, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "next-concept", InputTokens: 300, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "rank-concepts", InputTokens: 50, OutputTokens: 5, LatencyMs: 100, Success: false, ErrorMessage: "timeout"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "rank-concepts"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rank events, want 2", len(got))
	}

	one, err := repo.GetLLMEvent(ctx, got[0].ID)
	if err != nil || one == nil {
		t.Fatalf("get: %v %v", one, err)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("get missing = %v, %v; want nil, nil", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := map[string]PurposeUsage{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	if u := usage["rank-concepts"]; u.Calls != 2 || u.InputTokens != 150 || u.AvgLatencyMs != 150 {
		t.Errorf("rank-concepts usage = %+v", u)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("got %d models, want 2", len(byModel))
	}
}

func TestRecordAttempt_ConcurrentWritersAllLand(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "concurrent.db"))
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	repo := s.MasteryRepo()
	ctx := context.Background()

	const writers = 16
	var g errgroup.Group
	for i := 0; i < writers; i++ {
		at := testBase.Add(time.Duration(i) * time.Second)
		g.Go(func() error {
			_, err := repo.RecordAttempt(ctx, mastery.Grade{
				UserID: "u1", ConceptID: "counting", CourseID: "math", Score: 85, At: at,
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent record: %v", err)
	}

	st, err := repo.State(ctx, "u1", "counting")
	if err != nil || st == nil {
		t.Fatalf("state = %v, %v", st, err)
	}
	if st.Attempts != writers {
		t.Errorf("attempts = %d, want %d", st.Attempts, writers)
	}
	if st.Mastery != 1 {
		t.Errorf("mastery = %v, want clamped 1", st.Mastery)
	}

	history, err := repo.History(ctx, "u1", "math", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != writers {
		t.Errorf("attempt rows = %d, want %d", len(history), writers)
	}
}
