package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/gentlegains/internal/chat"
	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/foodentry"
	"github.com/julianstephens/gentlegains/internal/storage"
	"github.com/julianstephens/gentlegains/internal/tui/components/chatview"
	"github.com/julianstephens/gentlegains/internal/tui/components/foodadd"
	"github.com/julianstephens/gentlegains/internal/tui/components/foodlist"
	"github.com/julianstephens/gentlegains/internal/tui/components/home"
	"github.com/julianstephens/gentlegains/internal/tui/components/workoutadd"
	"github.com/julianstephens/gentlegains/internal/tui/components/workoutlist"
)

// Backend is the inference surface the TUI talks to
type Backend interface {
	foodentry.Analyzer
	chat.Transport
}

var tabTitles = []string{"Dashboard", "Workouts", "Food", "Chat"}

const numTabs = constants.StateChat + 1

type Model struct {
	store      storage.Provider
	backend    Backend
	state      constants.SessionState
	keys       KeyMap
	help       help.Model
	home       home.Model
	workouts   workoutlist.Model
	foods      foodlist.Model
	chat       chatview.Model
	workoutAdd workoutadd.Model
	foodAdd    foodadd.Model
	chatLoaded bool
	quitting   bool
	width      int
	height     int
}

func NewModel(store storage.Provider, backend Backend, sessionID string) Model {
	hm := home.New(0, 0)
	hm.SetLoading()
	return Model{
		store:      store,
		backend:    backend,
		state:      constants.StateDashboard,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		home:       hm,
		workouts:   workoutlist.New(0, 0),
		foods:      foodlist.New(0, 0),
		chat:       chatview.New(backend, sessionID, 0, 0),
		workoutAdd: workoutadd.New(),
		foodAdd:    foodadd.New(backend),
	}
}

func (m Model) State() constants.SessionState { return m.state }

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateAddWorkout, constants.StateAddFood:
		return []key.Binding{m.keys.Back, m.keys.ForceQuit}
	case constants.StateChat:
		return []key.Binding{m.keys.Tab, m.keys.Send, m.keys.ForceQuit}
	}
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateWorkouts:
		keys = append(keys, m.keys.Add)
	case constants.StateFood:
		keys = append(keys, m.keys.Add, m.keys.Comment)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.ForceQuit, m.keys.Help}

	var actions []key.Binding
	switch m.state {
	case constants.StateWorkouts:
		actions = []key.Binding{m.keys.Add}
	case constants.StateFood:
		actions = []key.Binding{m.keys.Add, m.keys.Comment}
	case constants.StateChat:
		actions = []key.Binding{m.keys.Send}
	case constants.StateAddWorkout, constants.StateAddFood:
		actions = []key.Binding{m.keys.Back}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return m.loadOverview()
}

// inTab reports whether the top-level tab bar owns the keyboard
func (m Model) inTab() bool {
	return m.state < numTabs
}
