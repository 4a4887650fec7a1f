package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/storage"
)

// timeLayout sorts lexically in the same order as time
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func timeArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func (s *Store) GetFoodLogs() ([]models.FoodLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, food_name, meal_type, calories, protein, carbs, fat, score,
		       coach_comment, image_url, created_at
		FROM food_logs
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.FoodLogEntry
	for rows.Next() {
		var e models.FoodLogEntry
		var mealType, createdAt string
		var calories, protein, carbs, fat, score sql.NullFloat64

		if err := rows.Scan(&e.ID, &e.FoodName, &mealType, &calories, &protein, &carbs, &fat, &score,
			&e.CoachComment, &e.ImageURL, &createdAt); err != nil {
			return nil, err
		}

		e.MealType = models.MealType(mealType)
		e.Calories = storage.NullableFloat(calories)
		e.Protein = storage.NullableFloat(protein)
		e.Carbs = storage.NullableFloat(carbs)
		e.Fat = storage.NullableFloat(fat)
		e.Score = storage.NullableFloat(score)
		e.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for food log %d: %w", e.ID, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) AddFoodLog(e models.FoodLogEntry) (models.FoodLogEntry, error) {
	if e.MealType == "" {
		e.MealType = models.DefaultMealType
	}

	var createdAt string
	err := s.db.QueryRow(`
		INSERT INTO food_logs (food_name, meal_type, calories, protein, carbs, fat, score,
		                       coach_comment, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now')))
		RETURNING id, created_at`,
		e.FoodName, string(e.MealType),
		storage.FloatArg(e.Calories), storage.FloatArg(e.Protein), storage.FloatArg(e.Carbs),
		storage.FloatArg(e.Fat), storage.FloatArg(e.Score),
		e.CoachComment, e.ImageURL, timeArg(e.CreatedAt),
	).Scan(&e.ID, &createdAt)
	if err != nil {
		return models.FoodLogEntry{}, fmt.Errorf("failed to insert food log: %w", err)
	}

	e.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return models.FoodLogEntry{}, fmt.Errorf("failed to parse created_at for food log %d: %w", e.ID, err)
	}
	return e, nil
}

func (s *Store) GetWorkoutLogs() ([]models.WorkoutLogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, exercise_name, body_part, weight, sets, reps, created_at
		FROM workout_logs
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.WorkoutLogEntry
	for rows.Next() {
		var e models.WorkoutLogEntry
		var createdAt string

		if err := rows.Scan(&e.ID, &e.ExerciseName, &e.BodyPart, &e.Weight, &e.Sets, &e.Reps, &createdAt); err != nil {
			return nil, err
		}

		e.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for workout log %d: %w", e.ID, err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) AddWorkoutLog(e models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	var createdAt string
	err := s.db.QueryRow(`
		INSERT INTO workout_logs (exercise_name, body_part, weight, sets, reps, created_at)
		VALUES (?, ?, ?, ?, ?, COALESCE(?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now')))
		RETURNING id, created_at`,
		e.ExerciseName, e.BodyPart, e.Weight, e.Sets, e.Reps, timeArg(e.CreatedAt),
	).Scan(&e.ID, &createdAt)
	if err != nil {
		return models.WorkoutLogEntry{}, fmt.Errorf("failed to insert workout log: %w", err)
	}

	e.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return models.WorkoutLogEntry{}, fmt.Errorf("failed to parse created_at for workout log %d: %w", e.ID, err)
	}
	return e, nil
}
