package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/models"
)

type overviewMsg struct {
	overview dashboard.Overview
	err      error
}

type workoutsMsg struct {
	summary dashboard.WorkoutSummary
	err     error
}

type foodsMsg struct {
	summary dashboard.FoodSummary
	err     error
}

type workoutSavedMsg struct {
	entry models.WorkoutLogEntry
	err   error
}

func (m Model) loadOverview() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		food, err := store.GetFoodLogs()
		if err != nil {
			return overviewMsg{err: err}
		}
		workouts, err := store.GetWorkoutLogs()
		if err != nil {
			return overviewMsg{err: err}
		}
		return overviewMsg{overview: dashboard.Summarize(food, workouts, time.Now())}
	}
}

func (m Model) loadWorkouts() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		entries, err := store.GetWorkoutLogs()
		if err != nil {
			return workoutsMsg{err: err}
		}
		return workoutsMsg{summary: dashboard.SummarizeWorkouts(entries, time.Now())}
	}
}

func (m Model) loadFoods() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		entries, err := store.GetFoodLogs()
		if err != nil {
			return foodsMsg{err: err}
		}
		return foodsMsg{summary: dashboard.SummarizeFood(entries)}
	}
}

func (m Model) saveWorkout(entry models.WorkoutLogEntry) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		saved, err := store.AddWorkoutLog(entry)
		if err != nil {
			logger.Error("Failed to save workout", "exercise", entry.ExerciseName, "error", err)
		}
		return workoutSavedMsg{entry: saved, err: err}
	}
}
