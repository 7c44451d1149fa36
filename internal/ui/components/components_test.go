package components

import (
	"math"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestFilled(t *testing.T) {
	tests := []struct {
		fraction float64
		width    int
		want     int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{1, 10, 10},
		{1.7, 10, 10},
		{-0.2, 10, 0},
		{math.NaN(), 10, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Filled(tt.fraction, tt.width), "fraction %v", tt.fraction)
	}
}

func TestAcceptScoreRune(t *testing.T) {
	assert.True(t, acceptScoreRune('7', ""))
	assert.True(t, acceptScoreRune('.', "87"))
	assert.False(t, acceptScoreRune('.', "87.5"))
	assert.False(t, acceptScoreRune('a', ""))
	assert.False(t, acceptScoreRune('-', ""))
}

func TestScoreInput_FiltersKeys(t *testing.T) {
	in := NewScoreInput("0-100")
	for _, r := range "8a5.-5.x" {
		in, _ = in.Update(keyPress(r))
	}
	assert.Equal(t, "85.5", in.Value())

	score, err := in.Score()
	assert.NoError(t, err)
	assert.InDelta(t, 85.5, score, 1e-9)
}

func TestScoreInput_Empty(t *testing.T) {
	in := NewScoreInput("")
	_, err := in.Score()
	assert.Error(t, err)
}

func TestMenu_SkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a", Action: func() tea.Cmd { fired = "a"; return nil }},
		{Label: "b", Disabled: true},
		{Label: "c", Action: func() tea.Cmd { fired = "c"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "c", fired)
}
