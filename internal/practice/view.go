package practice

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/masteryforge/internal/mastery"
	"github.com/abhisek/masteryforge/internal/ui/components"
	"github.com/abhisek/masteryforge/internal/ui/layout"
	"github.com/abhisek/masteryforge/internal/ui/theme"
)

// View renders the current phase inside the app frame.
func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}
	header := layout.RenderHeader(m.title(), m.userID, m.courseID, m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	return layout.RenderFrame(header, m.content(), footer, m.width, m.height)
}

func (m Model) title() string {
	switch m.phase {
	case phaseQuiz:
		return "Quiz"
	case phaseFeedback:
		return "Result"
	default:
		return "Practice"
	}
}

func (m Model) hints() []layout.KeyHint {
	switch m.phase {
	case phaseQuiz:
		return []layout.KeyHint{{Key: "enter", Description: "record score"}, {Key: "esc", Description: "end session"}}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "↑/↓", Description: "choose"}, {Key: "enter", Description: "select"}, {Key: "esc", Description: "end session"}}
	case phaseEmpty:
		return []layout.KeyHint{{Key: "r", Description: "retry"}, {Key: "q", Description: "quit"}}
	default:
		return []layout.KeyHint{{Key: "ctrl+c", Description: "quit"}}
	}
}

func (m Model) content() string {
	var b strings.Builder
	b.WriteString("\n")

	switch m.phase {
	case phaseLoading:
		b.WriteString(theme.Hint.Render("  Thinking..."))
	case phaseClosing, phaseDone:
		b.WriteString(theme.Hint.Render("  Closing session..."))
	case phaseEmpty:
		if m.notice == "" {
			b.WriteString(theme.Body.Render("  Nothing to study right now. Load a catalog or pick another course."))
		}
	case phaseQuiz:
		b.WriteString(m.conceptCard())
		b.WriteString("\n\n  Quiz score: ")
		b.WriteString(m.input.View())
	case phaseFeedback:
		b.WriteString(m.resultCard())
		b.WriteString("\n\n")
		b.WriteString(m.menu.View())
	}

	if m.notice != "" {
		b.WriteString("\n\n  ")
		b.WriteString(theme.Low.Render(m.notice))
	}
	return b.String()
}

func (m Model) cardWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	return w
}

func (m Model) conceptCard() string {
	c := m.current
	lines := []string{
		theme.Title.Render(c.Title),
		theme.Subtitle.Render(fmt.Sprintf("%s · difficulty %d", c.CourseID, c.Difficulty)),
	}
	if c.Description != "" {
		lines = append(lines, "", theme.Body.Render(c.Description))
	}
	if len(c.Prerequisites) > 0 {
		lines = append(lines, "", theme.Hint.Render("builds on "+strings.Join(c.Prerequisites, ", ")))
	}
	return theme.Card.Width(m.cardWidth()).Render(strings.Join(lines, "\n"))
}

func (m Model) resultCard() string {
	r := m.result
	barWidth := m.cardWidth() - 6

	before := components.NewProgressBar("before", r.Before.Mastery, true, barWidth)
	after := components.NewProgressBar("after ", r.After.Mastery, true, barWidth)
	after.Fill = bandColor(r.Band)

	level := mastery.LevelOf(r.After)
	lines := []string{
		theme.Title.Render(r.Concept.Title),
		bandStyle(r.Band).Render(fmt.Sprintf("Score %.0f%% (%s)", r.Attempt.ScorePercent, r.Band)),
		"",
		before.View(),
		after.View(),
		"",
		theme.Body.Render(fmt.Sprintf("%s %s · frustration %.2f · confidence %.2f · attempts %d",
			level.Icon(), level, r.After.Frustration, r.After.Confidence, r.After.Attempts)),
	}
	return theme.Card.Width(m.cardWidth()).Render(strings.Join(lines, "\n"))
}

func bandStyle(b mastery.Band) lipgloss.Style {
	switch b {
	case mastery.BandHigh:
		return theme.High
	case mastery.BandMid:
		return theme.Mid
	default:
		return theme.Low
	}
}

func bandColor(b mastery.Band) color.Color {
	switch b {
	case mastery.BandHigh:
		return theme.Success
	case mastery.BandMid:
		return theme.Warning
	default:
		return theme.Error
	}
}
