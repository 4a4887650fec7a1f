package foodadd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/foodentry"
	"github.com/julianstephens/gentlegains/internal/models"
)

// SavedMsg is sent when the user confirms an analysis the backend stored
type SavedMsg struct{}

type analyzedMsg struct {
	result models.AnalysisResult
	err    error
}

type formValues struct {
	Image string
	Name  string
	Meal  models.MealType
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model drives the photo → analysis → review flow on top of foodentry.Workflow
type Model struct {
	wf       *foodentry.Workflow
	analyzer foodentry.Analyzer
	values   *formValues
	form     *huh.Form
	spinner  spinner.Model
}

func New(analyzer foodentry.Analyzer) Model {
	wf := foodentry.New()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m := Model{
		wf:       wf,
		analyzer: analyzer,
		values:   &formValues{Meal: wf.MealType()},
		spinner:  sp,
	}
	m.form = newForm(m.values)
	return m
}

func newForm(v *formValues) *huh.Form {
	options := make([]huh.Option[models.MealType], 0, len(models.MealTypes()))
	for _, meal := range models.MealTypes() {
		options = append(options, huh.NewOption(meal.Label(), meal))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Photo").
				Description("Path to the meal photo").
				Value(&v.Image),
			huh.NewInput().
				Title("Food name").
				Value(&v.Name),
			huh.NewSelect[models.MealType]().
				Title("Meal").
				Options(options...).
				Value(&v.Meal),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}

func (m Model) State() foodentry.State { return m.wf.State() }

// Busy reports an analysis in flight
func (m Model) Busy() bool { return m.wf.State() == foodentry.StateAnalyzing }

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// resetForm rebuilds the form from the workflow's current values
func (m *Model) resetForm() tea.Cmd {
	m.values.Image = m.wf.Image()
	m.values.Name = m.wf.FoodName()
	m.values.Meal = m.wf.MealType()
	m.form = newForm(m.values)
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyzedMsg:
		if err := m.wf.Complete(msg.result, msg.err); err != nil {
			return m, nil
		}
		if m.wf.State() == foodentry.StateIdle {
			return m, m.resetForm()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.wf.State() {
		case foodentry.StateAnalyzing:
			return m, nil
		case foodentry.StateReview:
			switch msg.String() {
			case "enter", "y":
				if err := m.wf.Confirm(); err != nil {
					return m, nil
				}
				return m, func() tea.Msg { return SavedMsg{} }
			case "r":
				_ = m.wf.Reset()
				return m, m.resetForm()
			}
			return m, nil
		case foodentry.StateReviewWithDBError:
			if msg.String() == "r" {
				_ = m.wf.Reset()
				return m, m.resetForm()
			}
			return m, nil
		case foodentry.StateSuccess:
			if msg.String() == "n" || msg.String() == "enter" {
				_ = m.wf.Reset()
				return m, m.resetForm()
			}
			return m, nil
		}
	}

	if m.wf.State() != foodentry.StateIdle {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		return m.Submit()
	}
	return m, cmd
}

// Submit pushes the form values into the workflow and starts the analysis.
// Validation failures keep the form with a notice and send nothing.
func (m Model) Submit() (Model, tea.Cmd) {
	_ = m.wf.SelectImage(m.values.Image)
	_ = m.wf.SetFoodName(m.values.Name)
	_ = m.wf.SetMealType(m.values.Meal)

	if err := m.wf.Submit(); err != nil {
		return m, m.resetForm()
	}

	req, err := m.wf.BuildRequest()
	if err != nil {
		_ = m.wf.Complete(models.AnalysisResult{}, err)
		return m, m.resetForm()
	}

	analyzer := m.analyzer
	analyze := func() tea.Msg {
		result, err := analyzer.Analyze(context.Background(), req)
		return analyzedMsg{result: result, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, analyze)
}

func (m Model) header() string {
	return titleStyle.Render(fmt.Sprintf("%s · %s", m.wf.MealType().Label(), strings.TrimSpace(m.wf.FoodName())))
}

func (m Model) View() string {
	var b strings.Builder
	switch m.wf.State() {
	case foodentry.StateIdle:
		if n := m.wf.Notice(); n != "" {
			b.WriteString(noticeStyle.Render(n) + "\n\n")
		}
		b.WriteString(m.form.View())

	case foodentry.StateAnalyzing:
		fmt.Fprintf(&b, "%s Analyzing %s...\n", m.spinner.View(), strings.TrimSpace(m.wf.FoodName()))

	case foodentry.StateReview:
		b.WriteString(m.header() + "\n\n")
		b.WriteString(foodentry.FormatResult(*m.wf.Result()))
		b.WriteString("\n" + hintStyle.Render("[enter] confirm  [r] retake photo  [esc] back"))

	case foodentry.StateReviewWithDBError:
		b.WriteString(m.header() + "\n\n")
		b.WriteString(foodentry.FormatResult(*m.wf.Result()))
		b.WriteString("\n" + warningStyle.Render("⚠ "+m.wf.Notice()) + "\n")
		b.WriteString("\n" + hintStyle.Render("[r] retry  [esc] back"))

	case foodentry.StateSuccess:
		b.WriteString(successStyle.Render("✓ Saved to your food log") + "\n\n")
		b.WriteString(hintStyle.Render("[n] new entry  [esc] back"))
	}
	return b.String()
}
