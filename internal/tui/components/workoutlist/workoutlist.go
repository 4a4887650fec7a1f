package workoutlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/units"
)

type AddWorkoutMsg struct{}

type Item struct {
	Entry models.WorkoutLogEntry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s · %s", i.Entry.ExerciseName, i.Entry.BodyPart)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s kg (%s lb) × %d sets × %d reps · vol %s kg · %s",
		units.Format(i.Entry.Weight), units.Format(units.KgToLb(i.Entry.Weight)),
		i.Entry.Sets, i.Entry.Reps, units.Format(i.Entry.Volume()),
		i.Entry.CreatedAt.Local().Format(constants.DateTimeFormat))
}

func (i Item) FilterValue() string { return i.Entry.ExerciseName }

type KeyMap struct {
	Add key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add workout"),
		),
	}
}

var summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

type Model struct {
	list    list.Model
	keys    KeyMap
	summary dashboard.WorkoutSummary
	loading bool
	err     error
}

func New(width, height int) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Workouts"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add}
	}
	return Model{list: l, keys: keys}
}

func (m *Model) SetSize(width, height int) {
	// two lines for the summary header
	m.list.SetSize(width, height-2)
}

func (m *Model) SetLoading() {
	m.loading = true
}

func (m Model) Loading() bool { return m.loading }

func (m *Model) SetSummary(s dashboard.WorkoutSummary, err error) {
	m.loading = false
	m.err = err
	if err != nil {
		return
	}
	m.summary = s
	items := make([]list.Item, len(s.Entries))
	for i, e := range s.Entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Add) {
		return m, func() tea.Msg { return AddWorkoutMsg{} }
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) header() string {
	last := "-"
	if m.summary.LastLogged != nil {
		last = m.summary.LastLogged.Local().Format(constants.DateTimeFormat)
	}
	return summaryStyle.Render(fmt.Sprintf("This week: %d workouts · Last logged: %s", m.summary.WeeklyCount, last))
}

func (m Model) View() string {
	switch {
	case m.loading:
		return "Loading workouts..."
	case m.err != nil:
		return fmt.Sprintf("Failed to load workouts: %v", m.err)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), "", m.list.View())
}
