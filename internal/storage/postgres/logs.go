package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/storage"
)

func timeArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
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
		var mealType string
		var calories, protein, carbs, fat, score sql.NullFloat64

		if err := rows.Scan(&e.ID, &e.FoodName, &mealType, &calories, &protein, &carbs, &fat, &score,
			&e.CoachComment, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.MealType = models.MealType(mealType)
		e.Calories = storage.NullableFloat(calories)
		e.Protein = storage.NullableFloat(protein)
		e.Carbs = storage.NullableFloat(carbs)
		e.Fat = storage.NullableFloat(fat)
		e.Score = storage.NullableFloat(score)

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) AddFoodLog(e models.FoodLogEntry) (models.FoodLogEntry, error) {
	if e.MealType == "" {
		e.MealType = models.DefaultMealType
	}

	err := s.db.QueryRow(`
		INSERT INTO food_logs (food_name, meal_type, calories, protein, carbs, fat, score,
		                       coach_comment, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10::timestamptz, now()))
		RETURNING id, created_at`,
		e.FoodName, string(e.MealType),
		storage.FloatArg(e.Calories), storage.FloatArg(e.Protein), storage.FloatArg(e.Carbs),
		storage.FloatArg(e.Fat), storage.FloatArg(e.Score),
		e.CoachComment, e.ImageURL, timeArg(e.CreatedAt),
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return models.FoodLogEntry{}, fmt.Errorf("failed to insert food log: %w", err)
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
		if err := rows.Scan(&e.ID, &e.ExerciseName, &e.BodyPart, &e.Weight, &e.Sets, &e.Reps, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) AddWorkoutLog(e models.WorkoutLogEntry) (models.WorkoutLogEntry, error) {
	err := s.db.QueryRow(`
		INSERT INTO workout_logs (exercise_name, body_part, weight, sets, reps, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, now()))
		RETURNING id, created_at`,
		e.ExerciseName, e.BodyPart, e.Weight, e.Sets, e.Reps, timeArg(e.CreatedAt),
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return models.WorkoutLogEntry{}, fmt.Errorf("failed to insert workout log: %w", err)
	}
	return e, nil
}
