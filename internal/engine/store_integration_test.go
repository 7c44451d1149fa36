package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/recommend"
	"github.com/abhisek/masteryforge/internal/session"
	"github.com/abhisek/masteryforge/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_WithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	_, err = st.CatalogRepo().UpsertCatalog(ctx, &concept.Catalog{
		Courses: []concept.Course{{ID: "math", Name: "Math", GradeLevel: 4, Active: true}},
		Concepts: []concept.Concept{
			mk("place-value", "math", 1),
			mk("fractions", "math", 2, "place-value"),
			mk("decimals", "math", 3, "fractions"),
		},
	})
	require.NoError(t, err)

	now := t0
	clock := func() time.Time { return now }
	tracker := session.NewTracker(st.SessionRepo(), session.WithClock(clock))
	e := New(st.CatalogRepo(), st.MasteryRepo(), tracker, &recommend.Stub{}, DefaultConfig(), nil, WithClock(clock))

	next, err := e.SelectNextConcept(ctx, "ana", "math")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "place-value", next.ID)

	for _, score := range []float64{90, 85, 95, 100, 90} {
		now = now.Add(time.Minute)
		res, err := e.UpdateMasteryAfterQuiz(ctx, "ana", "place-value", score)
		require.NoError(t, err)
		assert.NotEmpty(t, res.SessionID)
		assert.Equal(t, res.SessionID, res.Attempt.SessionID)
	}

	eligible, err := e.EligibleConcepts(ctx, "ana", "math")
	require.NoError(t, err)
	assert.Equal(t, []string{"place-value", "fractions"}, concept.IDs(eligible))

	after, err := e.RecommendNextConceptAfterQuiz(ctx, "ana", "place-value", 100)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "fractions", after.ID)

	next, err = e.SelectNextConcept(ctx, "ana", "math")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "fractions", next.ID)

	sessions, err := st.SessionRepo().RecentSessions(ctx, "ana", 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 5, sessions[0].TotalQuestions)
	assert.InDelta(t, 92.0, sessions[0].AverageScore, 1e-9)

	closed, err := e.CloseSession(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, closed)
	assert.False(t, closed.Open())
}
