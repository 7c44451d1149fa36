package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/masteryforge/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTracker(t *testing.T) (*Tracker, *clock, store.SessionRepo) {
	t.Helper()
	repo := newTestStore(t).SessionRepo()
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewTracker(repo, WithClock(c.now)), c, repo
}

func TestCurrent_StartsAndReusesSession(t *testing.T) {
	tr, c, _ := newTracker(t)
	ctx := context.Background()

	first, err := tr.Current(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, first.Open())

	c.advance(30 * time.Minute)
	again, err := tr.Current(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestCurrent_ClosesExpiredSession(t *testing.T) {
	tr, c, repo := newTracker(t)
	ctx := context.Background()

	first, err := tr.Current(ctx, "u1")
	require.NoError(t, err)

	c.advance(DefaultWindow + time.Minute)
	next, err := tr.Current(ctx, "u1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, next.ID)

	open, err := repo.OpenSessions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, next.ID, open[0].ID)
}

func TestCurrent_ClosesExtraOpenSessions(t *testing.T) {
	tr, c, repo := newTracker(t)
	ctx := context.Background()

	_, err := repo.CreateSession(ctx, "u1", c.now().Add(-10*time.Minute))
	require.NoError(t, err)
	newest, err := repo.CreateSession(ctx, "u1", c.now().Add(-5*time.Minute))
	require.NoError(t, err)

	got, err := tr.Current(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, newest.ID, got.ID)

	open, err := repo.OpenSessions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestRecordQuiz_RunningAverage(t *testing.T) {
	tr, _, _ := newTracker(t)
	ctx := context.Background()

	_, err := tr.RecordQuiz(ctx, "u1", "fractions", 80)
	require.NoError(t, err)
	_, err = tr.RecordQuiz(ctx, "u1", "decimals", 40)
	require.NoError(t, err)
	s, err := tr.RecordQuiz(ctx, "u1", "fractions", 150) // clamped to 100
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalQuestions)
	assert.InDelta(t, (80.0+40.0+100.0)/3, s.AverageScore, 1e-9)
	assert.Equal(t, []string{"fractions", "decimals"}, s.ConceptsCovered)
}

func TestClose(t *testing.T) {
	tr, _, repo := newTracker(t)
	ctx := context.Background()

	none, err := tr.Close(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	started, err := tr.Current(ctx, "u1")
	require.NoError(t, err)

	closed, err := tr.Close(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, closed)
	assert.Equal(t, started.ID, closed.ID)
	assert.False(t, closed.Open())

	open, err := repo.OpenSessions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestAdd(t *testing.T) {
	s := Add(store.LearningSession{}, "a", 60)
	s = Add(s, "a", 90)
	assert.Equal(t, 2, s.TotalQuestions)
	assert.InDelta(t, 75.0, s.AverageScore, 1e-9)
	assert.Equal(t, []string{"a"}, s.ConceptsCovered)
}
