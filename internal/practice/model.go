// Package practice is the interactive terminal loop for a single local
// learner: show the scheduled concept, read the quiz score, show the
// mastery change and the post-quiz recommendation, repeat.
package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/masteryforge/internal/concept"
	"github.com/abhisek/masteryforge/internal/engine"
	"github.com/abhisek/masteryforge/internal/store"
	"github.com/abhisek/masteryforge/internal/ui/components"
)

// Engine is the subset of *engine.Engine the practice loop calls.
type Engine interface {
	SelectNextConcept(ctx context.Context, userID, courseID string) (*concept.Concept, error)
	UpdateMasteryAfterQuiz(ctx context.Context, userID, conceptID string, scorePercent float64) (*engine.UpdateResult, error)
	RecommendNextConceptAfterQuiz(ctx context.Context, userID, conceptID string, scorePercent float64) (*concept.Concept, error)
	CloseSession(ctx context.Context, userID string) (*store.LearningSession, error)
}

type phase int

const (
	phaseLoading phase = iota
	phaseQuiz
	phaseFeedback
	phaseEmpty
	phaseClosing
	phaseDone
)

type (
	conceptMsg struct {
		concept *concept.Concept
		err     error
	}
	gradedMsg struct {
		result  *engine.UpdateResult
		next    *concept.Concept
		nextErr error
		err     error
	}
	studyMsg struct {
		concept *concept.Concept
	}
	closedMsg struct {
		session *store.LearningSession
		err     error
	}
)

// Model is the root Bubble Tea model of the practice loop.
type Model struct {
	ctx      context.Context
	engine   Engine
	userID   string
	courseID string

	width  int
	height int

	phase   phase
	current *concept.Concept
	input   components.ScoreInput
	result  *engine.UpdateResult
	next    *concept.Concept
	menu    components.Menu
	quizzes int

	// notice is an inline, recoverable problem shown under the content.
	notice string
	err    error
	closed *store.LearningSession
}

// New creates a practice model for one learner and an optional course.
func New(ctx context.Context, eng Engine, userID, courseID string) Model {
	return Model{
		ctx:      ctx,
		engine:   eng,
		userID:   userID,
		courseID: courseID,
		phase:    phaseLoading,
		input:    components.NewScoreInput("score 0-100"),
	}
}

// Init asks the engine for the first concept.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.selectNext(), m.input.Init())
}

// Session returns the session closed on exit, if any.
func (m Model) Session() *store.LearningSession { return m.closed }

// Quizzes returns how many scores were recorded.
func (m Model) Quizzes() int { return m.quizzes }

// Err returns the error that ended the loop, if any.
func (m Model) Err() error { return m.err }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case conceptMsg:
		if msg.err != nil {
			m.notice = "could not pick a concept: " + msg.err.Error()
			m.phase = phaseEmpty
			return m, nil
		}
		if msg.concept == nil {
			m.notice = ""
			m.phase = phaseEmpty
			return m, nil
		}
		return m.study(msg.concept), nil

	case studyMsg:
		return m.study(msg.concept), nil

	case gradedMsg:
		if msg.err != nil {
			m.notice = "could not record score: " + msg.err.Error()
			m.phase = phaseQuiz
			return m, nil
		}
		m.quizzes++
		m.result = msg.result
		m.next = msg.next
		m.notice = ""
		if msg.nextErr != nil {
			m.notice = "no recommendation: " + msg.nextErr.Error()
		}
		m.menu = m.feedbackMenu()
		m.phase = phaseFeedback
		return m, nil

	case closedMsg:
		m.closed = msg.session
		if msg.err != nil {
			m.err = msg.err
		}
		m.phase = phaseDone
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "esc" {
		return m.quit()
	}

	switch m.phase {
	case phaseQuiz:
		if key == "enter" {
			score, err := m.input.Score()
			if err != nil {
				m.notice = err.Error()
				return m, nil
			}
			m.notice = ""
			m.phase = phaseLoading
			return m, m.grade(m.current.ID, score)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case phaseEmpty:
		switch key {
		case "r":
			m.notice = ""
			m.phase = phaseLoading
			return m, m.selectNext()
		case "q", "enter":
			return m.quit()
		}
	}
	return m, nil
}

func (m Model) study(c *concept.Concept) Model {
	m.current = c
	m.result = nil
	m.next = nil
	m.input.Reset()
	m.phase = phaseQuiz
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.phase == phaseClosing || m.phase == phaseDone {
		return m, nil
	}
	m.phase = phaseClosing
	return m, m.closeSession()
}

func (m Model) feedbackMenu() components.Menu {
	items := make([]components.MenuItem, 0, 4)
	if m.next != nil {
		next := m.next
		items = append(items, components.MenuItem{
			Label:  "Study next: " + next.Title,
			Action: func() tea.Cmd { return study(next) },
		})
	} else {
		items = append(items, components.MenuItem{Label: "No recommendation", Disabled: true})
	}
	current := m.current
	items = append(items,
		components.MenuItem{
			Label:  "Repeat " + current.Title,
			Action: func() tea.Cmd { return study(current) },
		},
		components.MenuItem{
			Label:  "Let the scheduler pick",
			Action: m.selectNext,
		},
		components.MenuItem{
			Label:  "End session",
			Action: m.closeSession,
		},
	)
	return components.NewMenu(items)
}

func study(c *concept.Concept) tea.Cmd {
	return func() tea.Msg { return studyMsg{concept: c} }
}

func (m Model) selectNext() tea.Cmd {
	ctx, eng, user, course := m.ctx, m.engine, m.userID, m.courseID
	return func() tea.Msg {
		c, err := eng.SelectNextConcept(ctx, user, course)
		return conceptMsg{concept: c, err: err}
	}
}

// grade records the score and then asks for the post-quiz pivot. A
// recommendation failure does not undo the recorded attempt.
func (m Model) grade(conceptID string, score float64) tea.Cmd {
	ctx, eng, user := m.ctx, m.engine, m.userID
	return func() tea.Msg {
		res, err := eng.UpdateMasteryAfterQuiz(ctx, user, conceptID, score)
		if err != nil {
			return gradedMsg{err: err}
		}
		next, nextErr := eng.RecommendNextConceptAfterQuiz(ctx, user, conceptID, score)
		return gradedMsg{result: res, next: next, nextErr: nextErr}
	}
}

func (m Model) closeSession() tea.Cmd {
	ctx, eng, user := m.ctx, m.engine, m.userID
	return func() tea.Msg {
		s, err := eng.CloseSession(ctx, user)
		return closedMsg{session: s, err: err}
	}
}

// Run starts the practice loop and blocks until the learner quits.
func Run(ctx context.Context, eng Engine, userID, courseID string) (Model, error) {
	final, err := tea.NewProgram(New(ctx, eng, userID, courseID)).Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, m.err
}
