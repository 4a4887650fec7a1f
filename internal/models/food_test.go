package models

import (
	"errors"
	"testing"
)

func TestMealTypeLabelsAreBijective(t *testing.T) {
	seen := make(map[string]MealType)
	for _, m := range MealTypes() {
		label := m.Label()
		if label == string(m) {
			t.Errorf("MealType %q has no display label", m)
		}
		if prev, ok := seen[label]; ok {
			t.Errorf("label %q shared by %q and %q", label, prev, m)
		}
		seen[label] = m

		back, err := MealTypeFromLabel(label)
		if err != nil {
			t.Fatalf("MealTypeFromLabel(%q) failed: %v", label, err)
		}
		if back != m {
			t.Errorf("MealTypeFromLabel(%q) = %q, want %q", label, back, m)
		}
	}
	if len(seen) != len(mealLabels) {
		t.Errorf("expected %d labels, got %d", len(mealLabels), len(seen))
	}
}

func TestMealTypeLabel(t *testing.T) {
	tests := []struct {
		meal MealType
		want string
	}{
		{MealBreakfast, "早餐"},
		{MealLunch, "午餐"},
		{MealDinner, "晚餐"},
		{MealSnack, "點心"},
		{MealMidnightSnack, "宵夜"},
		{MealType("Brunch"), "Brunch"},
	}

	for _, tt := range tests {
		t.Run(string(tt.meal), func(t *testing.T) {
			if got := tt.meal.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseMealType(t *testing.T) {
	tests := []struct {
		input   string
		want    MealType
		wantErr bool
	}{
		{"Lunch", MealLunch, false},
		{"lunch", MealLunch, false},
		{" midnightsnack ", MealMidnightSnack, false},
		{"", "", true},
		{"Brunch", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMealType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMealType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMealType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMealTypeFromLabelUnknown(t *testing.T) {
	if _, err := MealTypeFromLabel("早午餐"); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "☆☆☆☆☆"},
		{0.5, "⯪☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{3.5, "★★★⯪☆"},
		{4.2, "★★★★☆"},
		{4.5, "★★★★⯪"},
		{5, "★★★★★"},
	}

	for _, tt := range tests {
		if got := Stars(tt.score); got != tt.want {
			t.Errorf("Stars(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestValue(t *testing.T) {
	if got := Value(nil); got != 0 {
		t.Errorf("Value(nil) = %v, want 0", got)
	}
	if got := Value(Float(12.5)); got != 12.5 {
		t.Errorf("Value(12.5) = %v, want 12.5", got)
	}
}

func TestWorkoutValidate(t *testing.T) {
	valid := WorkoutLogEntry{ExerciseName: "Bench Press", BodyPart: DefaultBodyPart, Weight: 60, Sets: 3, Reps: 10}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid entry failed: %v", err)
	}

	tests := []struct {
		name  string
		entry WorkoutLogEntry
		want  []error
	}{
		{
			name:  "blank name",
			entry: WorkoutLogEntry{ExerciseName: "   ", Weight: 60, Sets: 3, Reps: 10},
			want:  []error{ErrExerciseNameRequired},
		},
		{
			name:  "zero weight",
			entry: WorkoutLogEntry{ExerciseName: "Squat", Weight: 0, Sets: 3, Reps: 10},
			want:  []error{ErrWeightNotPositive},
		},
		{
			name:  "everything missing",
			entry: WorkoutLogEntry{},
			want:  []error{ErrExerciseNameRequired, ErrWeightNotPositive, ErrSetsNotPositive, ErrRepsNotPositive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("Validate() = %v, want to include %v", err, want)
				}
			}
		})
	}
}

func TestWorkoutVolume(t *testing.T) {
	w := WorkoutLogEntry{Weight: 62.5, Sets: 4, Reps: 8}
	if got := w.Volume(); got != 2000 {
		t.Errorf("Volume() = %v, want 2000", got)
	}
}

func TestPersistenceFailed(t *testing.T) {
	saved, notSaved := true, false
	tests := []struct {
		name    string
		isSaved *bool
		want    bool
	}{
		{"absent", nil, false},
		{"saved", &saved, false},
		{"not saved", &notSaved, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AnalysisResult{IsSaved: tt.isSaved}
			if got := r.PersistenceFailed(); got != tt.want {
				t.Errorf("PersistenceFailed() = %v, want %v", got, tt.want)
			}
		})
	}
}
