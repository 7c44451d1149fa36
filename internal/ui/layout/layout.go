// Package layout renders the frame around terminal screens.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/masteryforge/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 18
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small (%dx%d).\nNeed at least %dx%d.", width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// RenderHeader shows the product name and screen title on the left and the
// learner with their course scope on the right.
func RenderHeader(title, userID, courseID string, width int) string {
	if courseID == "" {
		courseID = "all courses"
	}
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("MasteryForge") +
		theme.Body.Render("  "+title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(userID) +
		theme.Hint.Render(" · "+courseID)

	// border and padding take two columns each side
	gap := max(width-4-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return bar(width).Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter lists key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) + " " + theme.Hint.Render(h.Description)
	}
	return bar(width).Render(strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer; content gets the
// remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
