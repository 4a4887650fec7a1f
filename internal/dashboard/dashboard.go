package dashboard

import (
	"time"

	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/nutrition"
)

// StartOfWeek returns Monday 00:00 of the week containing now, in now's location.
// Sunday belongs to the week that started six days earlier.
func StartOfWeek(now time.Time) time.Time {
	offset := int(now.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	y, m, d := now.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
}

// FoodSummary backs the food list view
type FoodSummary struct {
	Entries []models.FoodLogEntry
	Totals  nutrition.Totals
}

func SummarizeFood(entries []models.FoodLogEntry) FoodSummary {
	return FoodSummary{Entries: entries, Totals: nutrition.Aggregate(entries)}
}

// WorkoutSummary backs the workout list view
type WorkoutSummary struct {
	Entries     []models.WorkoutLogEntry
	WeeklyCount int
	// LastLogged is the newest row's time, nil when there are no rows
	LastLogged *time.Time
}

// SummarizeWorkouts expects rows newest first, as the store returns them
func SummarizeWorkouts(entries []models.WorkoutLogEntry, now time.Time) WorkoutSummary {
	start := StartOfWeek(now)
	s := WorkoutSummary{Entries: entries}
	for _, e := range entries {
		if !e.CreatedAt.Before(start) {
			s.WeeklyCount++
		}
	}
	if len(entries) > 0 {
		last := entries[0].CreatedAt
		s.LastLogged = &last
	}
	return s
}

// Overview backs the home page
type Overview struct {
	Food     FoodSummary
	Workouts WorkoutSummary
}

func Summarize(food []models.FoodLogEntry, workouts []models.WorkoutLogEntry, now time.Time) Overview {
	return Overview{
		Food:     SummarizeFood(food),
		Workouts: SummarizeWorkouts(workouts, now),
	}
}
