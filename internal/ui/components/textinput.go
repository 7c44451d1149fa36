package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// ScoreInput wraps bubbles/textinput to accept a quiz score percentage.
// Only digits and a single decimal point get through.
type ScoreInput struct {
	Model textinput.Model
}

// NewScoreInput creates a focused score input.
func NewScoreInput(placeholder string) ScoreInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 6 // "100.00"
	ti.Focus()
	return ScoreInput{Model: ti}
}

// Init returns the initial command.
func (t ScoreInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update filters single-character keys before passing them on.
func (t ScoreInput) Update(msg tea.Msg) (ScoreInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !acceptScoreRune(key[0], t.Model.Value()) {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func acceptScoreRune(c byte, current string) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '.' && !strings.Contains(current, ".")
}

// View renders the input.
func (t ScoreInput) View() string {
	return t.Model.View()
}

// Value returns the raw text.
func (t ScoreInput) Value() string {
	return t.Model.Value()
}

// Reset clears the input.
func (t *ScoreInput) Reset() {
	t.Model.Reset()
}

// Score parses the input as a percentage. Values above 100 are accepted
// here; the engine clamps them.
func (t ScoreInput) Score() (float64, error) {
	v := strings.TrimSpace(t.Model.Value())
	if v == "" {
		return 0, fmt.Errorf("enter a score between 0 and 100")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", v)
	}
	return f, nil
}
