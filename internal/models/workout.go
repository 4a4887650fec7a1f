package models

import (
	"errors"
	"strings"
	"time"
)

const (
	BodyPartChest     = "胸部"
	BodyPartBack      = "背部"
	BodyPartLegs      = "腿部"
	BodyPartShoulders = "肩膀"
	BodyPartArms      = "手臂"
	BodyPartCore      = "核心"
	BodyPartFullBody  = "全身"

	DefaultBodyPart = BodyPartChest
)

// BodyParts returns the selectable body parts in display order
func BodyParts() []string {
	return []string{
		BodyPartChest,
		BodyPartBack,
		BodyPartLegs,
		BodyPartShoulders,
		BodyPartArms,
		BodyPartCore,
		BodyPartFullBody,
	}
}

// WorkoutLogEntry is a row of the workout_logs table. Weight is stored in kg.
type WorkoutLogEntry struct {
	ID           int64     `json:"id"`
	ExerciseName string    `json:"exercise_name"`
	BodyPart     string    `json:"body_part"`
	Weight       float64   `json:"weight"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrExerciseNameRequired = errors.New("exercise name is required")
	ErrWeightNotPositive    = errors.New("weight must be greater than 0")
	ErrSetsNotPositive      = errors.New("sets must be at least 1")
	ErrRepsNotPositive      = errors.New("reps must be at least 1")
)

// Validate checks an entry before insert. All failures are joined.
func (w WorkoutLogEntry) Validate() error {
	var errs []error
	if strings.TrimSpace(w.ExerciseName) == "" {
		errs = append(errs, ErrExerciseNameRequired)
	}
	if w.Weight <= 0 {
		errs = append(errs, ErrWeightNotPositive)
	}
	if w.Sets < 1 {
		errs = append(errs, ErrSetsNotPositive)
	}
	if w.Reps < 1 {
		errs = append(errs, ErrRepsNotPositive)
	}
	return errors.Join(errs...)
}

// Volume is weight × sets × reps in kg
func (w WorkoutLogEntry) Volume() float64 {
	return w.Weight * float64(w.Sets) * float64(w.Reps)
}
