package home

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Width(34)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bigStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Model struct {
	overview dashboard.Overview
	loading  bool
	err      error
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetLoading() {
	m.loading = true
}

func (m Model) Loading() bool { return m.loading }

func (m *Model) SetOverview(o dashboard.Overview, err error) {
	m.loading = false
	m.err = err
	if err == nil {
		m.overview = o
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return "Loading..."
	}
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Failed to load logs: %v", m.err))
	}

	w := m.overview.Workouts
	last := "-"
	if w.LastLogged != nil {
		last = w.LastLogged.Local().Format(constants.DateTimeFormat)
	}
	workoutCard := cardStyle.Render(strings.Join([]string{
		titleStyle.Render("Workouts"),
		labelStyle.Render("This week"),
		bigStyle.Render(fmt.Sprintf("%d", w.WeeklyCount)),
		labelStyle.Render("Last logged"),
		last,
	}, "\n"))

	f := m.overview.Food
	foodLines := []string{
		titleStyle.Render("Nutrition"),
		labelStyle.Render("Calories"),
		bigStyle.Render(fmt.Sprintf("%.0f kcal", f.Totals.Calories)),
		fmt.Sprintf("P %.1fg · C %.1fg · F %.1fg", f.Totals.Protein, f.Totals.Carbs, f.Totals.Fat),
	}
	if len(f.Entries) > 0 {
		latest := f.Entries[0]
		foodLines = append(foodLines,
			labelStyle.Render("Latest meal"),
			fmt.Sprintf("%s %s %s", latest.MealType.Label(), latest.FoodName, models.Stars(models.Value(latest.Score))))
	}
	foodCard := cardStyle.Render(strings.Join(foodLines, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, workoutCard, " ", foodCard)
}
