package postgres

import (
	"os"
	"testing"
	"time"

	"github.com/julianstephens/gentlegains/internal/models"
)

// Set GENTLEGAINS_POSTGRES_TEST_URL to run against a real database, e.g.
// postgres://gentlegains@localhost:5432/gentlegains_test?sslmode=disable
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("GENTLEGAINS_POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("GENTLEGAINS_POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if _, err := store.db.Exec("TRUNCATE food_logs, workout_logs"); err != nil {
		t.Fatalf("Failed to reset tables: %v", err)
	}

	t.Run("FoodLogs", func(t *testing.T) {
		added, err := store.AddFoodLog(models.FoodLogEntry{
			FoodName: "Beef noodles",
			MealType: models.MealDinner,
			Calories: models.Float(650),
			Score:    models.Float(3),
		})
		if err != nil {
			t.Fatalf("AddFoodLog failed: %v", err)
		}
		if added.ID == 0 || added.CreatedAt.IsZero() {
			t.Errorf("AddFoodLog did not fill id/created_at: %+v", added)
		}

		logs, err := store.GetFoodLogs()
		if err != nil {
			t.Fatalf("GetFoodLogs failed: %v", err)
		}
		if len(logs) != 1 || logs[0].FoodName != "Beef noodles" || logs[0].Protein != nil {
			t.Errorf("unexpected food logs: %+v", logs)
		}
	})

	t.Run("WorkoutLogs", func(t *testing.T) {
		old := time.Now().Add(-48 * time.Hour)
		for _, e := range []models.WorkoutLogEntry{
			{ExerciseName: "Row", BodyPart: models.BodyPartBack, Weight: 60, Sets: 3, Reps: 10, CreatedAt: old},
			{ExerciseName: "Press", BodyPart: models.BodyPartShoulders, Weight: 40, Sets: 3, Reps: 8},
		} {
			if _, err := store.AddWorkoutLog(e); err != nil {
				t.Fatalf("AddWorkoutLog failed: %v", err)
			}
		}

		logs, err := store.GetWorkoutLogs()
		if err != nil {
			t.Fatalf("GetWorkoutLogs failed: %v", err)
		}
		if len(logs) != 2 || logs[0].ExerciseName != "Press" {
			t.Errorf("unexpected workout order: %+v", logs)
		}
	})

	t.Run("SchemaVersion", func(t *testing.T) {
		current, latest, err := store.SchemaVersion()
		if err != nil || current != latest {
			t.Errorf("SchemaVersion() = %d, %d, %v", current, latest, err)
		}
	})
}
