package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = m.home.View()
	case constants.StateWorkouts:
		content = m.workouts.View()
	case constants.StateFood:
		content = m.foods.View()
	case constants.StateChat:
		content = m.chat.View()
	case constants.StateAddWorkout:
		content = m.workoutAdd.View()
	case constants.StateAddFood:
		content = m.foodAdd.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	switch m.state {
	case constants.StateAddWorkout:
		active = constants.StateWorkouts
	case constants.StateAddFood:
		active = constants.StateFood
	}

	tabs := []string{brandStyle.Render("GentleGains")}
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
