package storage

import "github.com/julianstephens/gentlegains/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Schema
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)

	// Food logs. Rows are returned newest first.
	GetFoodLogs() ([]models.FoodLogEntry, error)
	// AddFoodLog inserts a row and returns it with its id and created_at filled.
	// A zero CreatedAt takes the store's current time.
	AddFoodLog(models.FoodLogEntry) (models.FoodLogEntry, error)

	// Workout logs. Rows are returned newest first.
	GetWorkoutLogs() ([]models.WorkoutLogEntry, error)
	AddWorkoutLog(models.WorkoutLogEntry) (models.WorkoutLogEntry, error)

	// Utils
	GetConfigPath() string
}
