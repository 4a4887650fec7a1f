package foodlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/models"
)

type AddFoodMsg struct{}

type Item struct {
	Entry models.FoodLogEntry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s · %s  %s", i.Entry.MealType.Label(), i.Entry.FoodName, models.Stars(models.Value(i.Entry.Score)))
}

func (i Item) Description() string {
	e := i.Entry
	return fmt.Sprintf("%.0f kcal · P %.1fg · C %.1fg · F %.1fg · %s",
		models.Value(e.Calories), models.Value(e.Protein), models.Value(e.Carbs), models.Value(e.Fat),
		e.CreatedAt.Local().Format(constants.DateTimeFormat))
}

func (i Item) FilterValue() string { return i.Entry.FoodName }

type KeyMap struct {
	Add     key.Binding
	Comment key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add meal"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "coach comment"),
		),
	}
}

var (
	totalsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

type Model struct {
	list         list.Model
	keys         KeyMap
	summary      dashboard.FoodSummary
	showComments bool
	loading      bool
	err          error
}

func New(width, height int) Model {
	keys := DefaultKeyMap()
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Food Log"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Comment}
	}
	return Model{list: l, keys: keys}
}

func (m *Model) SetSize(width, height int) {
	// totals header and the selected row's comment
	m.list.SetSize(width, height-4)
}

func (m *Model) SetLoading() {
	m.loading = true
}

func (m Model) Loading() bool { return m.loading }

func (m *Model) SetSummary(s dashboard.FoodSummary, err error) {
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
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddFoodMsg{} }
		case key.Matches(msg, m.keys.Comment):
			m.showComments = !m.showComments
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch {
	case m.loading:
		return "Loading meals..."
	case m.err != nil:
		return fmt.Sprintf("Failed to load meals: %v", m.err)
	}

	t := m.summary.Totals
	header := totalsStyle.Render(fmt.Sprintf("Total: %.0f kcal · Protein %.1fg · Carbs %.1fg · Fat %.1fg",
		t.Calories, t.Protein, t.Carbs, t.Fat))

	comment := ""
	if item, ok := m.list.SelectedItem().(Item); ok && m.showComments && item.Entry.CoachComment != "" {
		comment = commentStyle.Render("💬 " + item.Entry.CoachComment)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.list.View(), comment)
}
