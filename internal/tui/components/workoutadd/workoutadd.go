package workoutadd

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/units"
)

// SubmitMsg carries a validated entry for the parent to persist
type SubmitMsg struct {
	Entry models.WorkoutLogEntry
}

type field int

const (
	fieldName field = iota
	fieldBodyPart
	fieldKg
	fieldLb
	fieldSets
	fieldReps
	numFields
)

var fieldLabels = [numFields]string{"Exercise", "Body part", "Weight (kg)", "Weight (lb)", "Sets", "Reps"}

type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "body part"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "save"),
		),
	}
}

var (
	labelStyle   = lipgloss.NewStyle().Width(13).Foreground(lipgloss.Color("240"))
	focusStyle   = lipgloss.NewStyle().Width(13).Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Model is the add-workout form. The kg and lb inputs are kept in sync;
// only kg is submitted.
type Model struct {
	inputs   [numFields]textinput.Model
	bodyPart int
	weight   units.WeightPair
	focus    field
	keys     KeyMap
	saving   bool
	errs     []string
	notice   string
}

func New() Model {
	m := Model{keys: DefaultKeyMap()}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Placeholder = "Bench press"
	m.inputs[fieldKg].Placeholder = "0.0"
	m.inputs[fieldLb].Placeholder = "0.0"
	m.inputs[fieldSets].Placeholder = "3"
	m.inputs[fieldReps].Placeholder = "10"
	m.inputs[fieldName].Focus()
	return m
}

func (m Model) BodyPart() string {
	return models.BodyParts()[m.bodyPart]
}

func (m Model) Saving() bool { return m.saving }

// Weight returns the synced kg/lb text
func (m Model) Weight() units.WeightPair { return m.weight }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()
	case key.Matches(keyMsg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % numFields)
	case key.Matches(keyMsg, m.keys.Prev):
		return m, m.setFocus((m.focus - 1 + numFields) % numFields)
	}

	if m.focus == fieldBodyPart {
		n := len(models.BodyParts())
		switch {
		case key.Matches(keyMsg, m.keys.Left):
			m.bodyPart = (m.bodyPart - 1 + n) % n
		case key.Matches(keyMsg, m.keys.Right):
			m.bodyPart = (m.bodyPart + 1) % n
		}
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.notice = ""
		switch m.focus {
		case fieldKg:
			m.weight.SetKg(after)
			m.syncWeight()
		case fieldLb:
			m.weight.SetLb(after)
			m.syncWeight()
		}
	}
	return m, cmd
}

func (m *Model) syncWeight() {
	m.inputs[fieldKg].SetValue(m.weight.KgText())
	m.inputs[fieldLb].SetValue(m.weight.LbText())
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	if f == fieldBodyPart {
		return nil
	}
	return m.inputs[f].Focus()
}

// Entry builds the entry from the form. Unparseable numbers become zero
// and fail validation.
func (m Model) Entry() models.WorkoutLogEntry {
	kg, _ := m.weight.Kg()
	sets, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldSets].Value()))
	reps, _ := strconv.Atoi(strings.TrimSpace(m.inputs[fieldReps].Value()))
	return models.WorkoutLogEntry{
		ExerciseName: strings.TrimSpace(m.inputs[fieldName].Value()),
		BodyPart:     m.BodyPart(),
		Weight:       kg,
		Sets:         sets,
		Reps:         reps,
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	entry := m.Entry()
	m.errs = nil
	m.notice = ""
	if err := entry.Validate(); err != nil {
		m.errs = splitJoined(err)
		return m, nil
	}
	m.saving = true
	return m, func() tea.Msg { return SubmitMsg{Entry: entry} }
}

// Saved applies the persistence outcome. Success clears weight, sets and
// reps but keeps the exercise name and body part for the next set.
func (m *Model) Saved(err error) {
	m.saving = false
	if err != nil {
		m.errs = []string{"Failed to save workout: " + err.Error()}
		return
	}
	m.errs = nil
	m.notice = "✓ Workout logged"
	m.Clear()
}

func (m *Model) Clear() {
	m.weight.Clear()
	m.syncWeight()
	m.inputs[fieldSets].SetValue("")
	m.inputs[fieldReps].SetValue("")
}

func splitJoined(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

func (m Model) View() string {
	var b strings.Builder
	for f := field(0); f < numFields; f++ {
		label := labelStyle.Render(fieldLabels[f])
		if f == m.focus {
			label = focusStyle.Render(fieldLabels[f])
		}
		value := m.inputs[f].View()
		if f == fieldBodyPart {
			value = "‹ " + m.BodyPart() + " ›"
		}
		b.WriteString(label + " " + value + "\n")
	}
	b.WriteString("\n")
	if m.saving {
		b.WriteString("Saving...\n")
	}
	for _, e := range m.errs {
		b.WriteString(errorStyle.Render("✗ "+e) + "\n")
	}
	if m.notice != "" {
		b.WriteString(successStyle.Render(m.notice) + "\n")
	}
	return b.String()
}
