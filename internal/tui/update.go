package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/tui/components/foodadd"
	"github.com/julianstephens/gentlegains/internal/tui/components/foodlist"
	"github.com/julianstephens/gentlegains/internal/tui/components/workoutadd"
	"github.com/julianstephens/gentlegains/internal/tui/components/workoutlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case overviewMsg:
		m.home.SetOverview(msg.overview, msg.err)
		return m, nil

	case workoutsMsg:
		m.workouts.SetSummary(msg.summary, msg.err)
		return m, nil

	case foodsMsg:
		m.foods.SetSummary(msg.summary, msg.err)
		return m, nil

	case workoutlist.AddWorkoutMsg:
		m.state = constants.StateAddWorkout
		return m, nil

	case workoutadd.SubmitMsg:
		return m, m.saveWorkout(msg.Entry)

	case workoutSavedMsg:
		m.workoutAdd.Saved(msg.err)
		if msg.err != nil {
			return m, nil
		}
		return m, tea.Batch(m.loadWorkouts(), m.loadOverview())

	case foodlist.AddFoodMsg:
		m.state = constants.StateAddFood
		m.foodAdd = foodadd.New(m.backend)
		return m, m.foodAdd.Init()

	case foodadd.SavedMsg:
		return m, tea.Batch(m.loadFoods(), m.loadOverview())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.broadcast(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateAddWorkout:
		if key.Matches(msg, m.keys.Back) && !m.workoutAdd.Saving() {
			return m.switchTab(constants.StateWorkouts)
		}
		m.workoutAdd, cmd = m.workoutAdd.Update(msg)
		return m, cmd

	case constants.StateAddFood:
		if key.Matches(msg, m.keys.Back) && !m.foodAdd.Busy() {
			return m.switchTab(constants.StateFood)
		}
		m.foodAdd, cmd = m.foodAdd.Update(msg)
		return m, cmd

	case constants.StateChat:
		switch {
		case key.Matches(msg, m.keys.Tab):
			return m.switchTab((m.state + 1) % numTabs)
		case key.Matches(msg, m.keys.ShiftTab):
			return m.switchTab((m.state - 1 + numTabs) % numTabs)
		}
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m.switchTab((m.state + 1) % numTabs)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchTab((m.state - 1 + numTabs) % numTabs)
	}

	switch m.state {
	case constants.StateWorkouts:
		m.workouts, cmd = m.workouts.Update(msg)
	case constants.StateFood:
		m.foods, cmd = m.foods.Update(msg)
	}
	return m, cmd
}

// switchTab mounts a tab and refreshes its data
func (m Model) switchTab(to constants.SessionState) (tea.Model, tea.Cmd) {
	m.state = to
	switch to {
	case constants.StateDashboard:
		m.home.SetLoading()
		return m, m.loadOverview()
	case constants.StateWorkouts:
		m.workouts.SetLoading()
		return m, m.loadWorkouts()
	case constants.StateFood:
		m.foods.SetLoading()
		return m, m.loadFoods()
	case constants.StateChat:
		// once per run; later messages live in the session
		if !m.chatLoaded {
			m.chatLoaded = true
			return m, m.chat.Load()
		}
	}
	return m, nil
}

// broadcast routes async results and ticks. Chat and food analysis keep
// running when the user navigates away, so they always receive messages.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.chat, cmd = m.chat.Update(msg)
	cmds = append(cmds, cmd)
	m.foodAdd, cmd = m.foodAdd.Update(msg)
	cmds = append(cmds, cmd)

	switch m.state {
	case constants.StateWorkouts:
		m.workouts, cmd = m.workouts.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateFood:
		m.foods, cmd = m.foods.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateAddWorkout:
		m.workoutAdd, cmd = m.workoutAdd.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) resize() {
	h, v := docStyle.GetFrameSize()
	width := m.width - h
	height := m.height - v - 1 - lineCount(m.help.View(m))
	m.home.SetSize(width, height)
	m.workouts.SetSize(width, height)
	m.foods.SetSize(width, height)
	m.chat.SetSize(width, height)
}
