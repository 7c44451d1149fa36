package practice

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/store"
)

type quizCall struct {
	conceptID string
	score     float64
}

type fakeEngine struct {
	selectResult *concept.Concept
	selectErr    error
	updateErr    error
	next         *concept.Concept
	nextErr      error

	selects int
	updates []quizCall
	closes  int
}

func (f *fakeEngine) SelectNextConcept(_ context.Context, _, _ string) (*concept.Concept, error) {
	f.selects++
	return f.selectResult, f.selectErr
}

func (f *fakeEngine) UpdateMasteryAfterQuiz(_ context.Context, userID, conceptID string, score float64) (*engine.UpdateResult, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updates = append(f.updates, quizCall{conceptID, score})
	before := mastery.Fresh(userID, conceptID)
	after := mastery.Apply(before, score, before.LastSeen)
	return &engine.UpdateResult{
		Concept: concept.Concept{ID: conceptID, Title: strings.ToUpper(conceptID)},
		Before:  before,
		After:   after,
		Band:    mastery.BandFor(score),
		Attempt: mastery.Attempt{ConceptID: conceptID, ScorePercent: mastery.ClampScore(score)},
	}, nil
}

func (f *fakeEngine) RecommendNextConceptAfterQuiz(_ context.Context, _, _ string, _ float64) (*concept.Concept, error) {
	return f.next, f.nextErr
}

func (f *fakeEngine) CloseSession(_ context.Context, userID string) (*store.LearningSession, error) {
	f.closes++
	return &store.LearningSession{UserID: userID, TotalQuestions: len(f.updates)}, nil
}

var (
	addition    = &concept.Concept{ID: "add", CourseID: "math", Title: "Addition", Difficulty: 1}
	subtraction = &concept.Concept{ID: "sub", CourseID: "math", Title: "Subtraction", Difficulty: 2, Prerequisites: []string{"add"}}
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// send delivers msg and returns the updated model and its command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// run executes cmd and delivers its message.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	return m
}

func typeScore(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = send(t, m, keyPress(r))
	}
	return m
}

func started(t *testing.T, eng *fakeEngine) Model {
	t.Helper()
	m := New(context.Background(), eng, "u1", "math")
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return run(t, m, m.selectNext())
}

func TestPractice_ShowsSelectedConcept(t *testing.T) {
	eng := &fakeEngine{selectResult: addition}
	m := started(t, eng)

	assert.Equal(t, phaseQuiz, m.phase)
	assert.Equal(t, "add", m.current.ID)
	assert.Equal(t, 1, eng.selects)
	assert.Contains(t, m.render(), "Addition")
}

func TestPractice_RecordsScoreAndShowsRecommendation(t *testing.T) {
	eng := &fakeEngine{selectResult: addition, next: subtraction}
	m := started(t, eng)

	m = typeScore(t, m, "92")
	m, cmd := send(t, m, specialKey(tea.KeyEnter))
	assert.Equal(t, phaseLoading, m.phase)
	m = run(t, m, cmd)

	require.Len(t, eng.updates, 1)
	assert.Equal(t, quizCall{"add", 92}, eng.updates[0])
	assert.Equal(t, phaseFeedback, m.phase)
	assert.Equal(t, 1, m.Quizzes())
	assert.Equal(t, mastery.BandHigh, m.result.Band)
	assert.Equal(t, "sub", m.next.ID)

	view := m.render()
	assert.Contains(t, view, "Study next: Subtraction")
	assert.Contains(t, view, "high")

	// The first menu item studies the recommendation.
	m, cmd = send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)
	assert.Equal(t, phaseQuiz, m.phase)
	assert.Equal(t, "sub", m.current.ID)
	assert.Empty(t, m.input.Value())
}

func TestPractice_InvalidScoreStaysOnQuiz(t *testing.T) {
	eng := &fakeEngine{selectResult: addition}
	m := started(t, eng)

	m, cmd := send(t, m, specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Equal(t, phaseQuiz, m.phase)
	assert.NotEmpty(t, m.notice)
	assert.Empty(t, eng.updates)
}

func TestPractice_UpdateFailureKeepsConcept(t *testing.T) {
	eng := &fakeEngine{selectResult: addition, updateErr: errors.New("disk full")}
	m := started(t, eng)

	m = typeScore(t, m, "40")
	m, cmd := send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)

	assert.Equal(t, phaseQuiz, m.phase)
	assert.Equal(t, "add", m.current.ID)
	assert.Contains(t, m.notice, "disk full")
	assert.Equal(t, 0, m.Quizzes())
}

func TestPractice_NoRecommendationDisablesFirstItem(t *testing.T) {
	eng := &fakeEngine{selectResult: addition, nextErr: errors.New("timeout")}
	m := started(t, eng)

	m = typeScore(t, m, "30")
	m, cmd := send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)

	assert.Equal(t, phaseFeedback, m.phase)
	assert.Equal(t, 1, m.Quizzes())
	assert.Contains(t, m.notice, "timeout")
	assert.True(t, m.menu.Items[0].Disabled)
	assert.Equal(t, 1, m.menu.Selected)

	// "Repeat" is now the default choice.
	m, cmd = send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)
	assert.Equal(t, "add", m.current.ID)
}

func TestPractice_SchedulerPick(t *testing.T) {
	eng := &fakeEngine{selectResult: addition, next: subtraction}
	m := started(t, eng)

	m = typeScore(t, m, "60")
	m, cmd := send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)

	m, _ = send(t, m, specialKey(tea.KeyDown))
	m, _ = send(t, m, specialKey(tea.KeyDown))
	m, cmd = send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)

	assert.Equal(t, 2, eng.selects)
	assert.Equal(t, "add", m.current.ID)
}

func TestPractice_EmptyScope(t *testing.T) {
	eng := &fakeEngine{}
	m := started(t, eng)

	assert.Equal(t, phaseEmpty, m.phase)
	assert.Contains(t, m.render(), "Nothing to study")

	m, cmd := send(t, m, keyPress('r'))
	assert.Equal(t, phaseLoading, m.phase)
	m = run(t, m, cmd)
	assert.Equal(t, 2, eng.selects)
	assert.Equal(t, phaseEmpty, m.phase)
}

func TestPractice_SelectErrorIsShown(t *testing.T) {
	eng := &fakeEngine{selectErr: errors.New("db locked")}
	m := started(t, eng)

	assert.Equal(t, phaseEmpty, m.phase)
	assert.Contains(t, m.render(), "db locked")
}

func TestPractice_EscClosesSession(t *testing.T) {
	eng := &fakeEngine{selectResult: addition}
	m := started(t, eng)

	m = typeScore(t, m, "85")
	m, cmd := send(t, m, specialKey(tea.KeyEnter))
	m = run(t, m, cmd)

	m, cmd = send(t, m, specialKey(tea.KeyEscape))
	assert.Equal(t, phaseClosing, m.phase)

	// A second quit while closing does nothing.
	_, again := send(t, m, specialKey(tea.KeyEscape))
	assert.Nil(t, again)

	m, quit := send(t, m, cmd())
	assert.NotNil(t, quit)
	assert.Equal(t, phaseDone, m.phase)
	assert.Equal(t, 1, eng.closes)
	require.NotNil(t, m.Session())
	assert.Equal(t, 1, m.Session().TotalQuestions)
	assert.NoError(t, m.Err())
}

func TestPractice_SmallTerminal(t *testing.T) {
	eng := &fakeEngine{selectResult: addition}
	m := started(t, eng)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}
