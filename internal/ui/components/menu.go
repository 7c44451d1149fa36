package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/masteryforge/internal/ui/theme"
)

// MenuItem is one row. Disabled rows are shown but never selected.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list driven by up/down (or k/j) and enter.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// move steps the selection to the next enabled item in direction dir.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			break
		}
		if it := m.Items[m.Selected]; !it.Disabled && it.Action != nil {
			return m, it.Action()
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		line := "    " + it.Label
		style := theme.Unselected
		switch {
		case it.Disabled:
			style = theme.Hint
		case i == m.Selected:
			line, style = "  ▸ "+it.Label, theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}
