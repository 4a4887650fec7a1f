package models

import (
	"fmt"
	"strings"
	"time"
)

// MealType is the meal a food entry belongs to
type MealType string

const (
	MealBreakfast     MealType = "Breakfast"
	MealLunch         MealType = "Lunch"
	MealDinner        MealType = "Dinner"
	MealSnack         MealType = "Snack"
	MealMidnightSnack MealType = "MidnightSnack"

	DefaultMealType = MealLunch
)

var mealLabels = map[MealType]string{
	MealBreakfast:     "早餐",
	MealLunch:         "午餐",
	MealDinner:        "晚餐",
	MealSnack:         "點心",
	MealMidnightSnack: "宵夜",
}

// MealTypes returns every meal type in display order
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack, MealMidnightSnack}
}

// Label returns the display label for the meal type.
// Unknown values are returned unchanged.
func (m MealType) Label() string {
	if label, ok := mealLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m MealType) Valid() bool {
	_, ok := mealLabels[m]
	return ok
}

// ParseMealType accepts a meal key case-insensitively
func ParseMealType(s string) (MealType, error) {
	s = strings.TrimSpace(s)
	for _, m := range MealTypes() {
		if strings.EqualFold(string(m), s) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid meal type: %q", s)
}

// MealTypeFromLabel is the inverse of Label
func MealTypeFromLabel(label string) (MealType, error) {
	label = strings.TrimSpace(label)
	for m, l := range mealLabels {
		if l == label {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown meal label: %q", label)
}

// FoodLogEntry is a row of the food_logs table. Macro fields may be NULL.
type FoodLogEntry struct {
	ID           int64     `json:"id"`
	FoodName     string    `json:"food_name"`
	MealType     MealType  `json:"meal_type"`
	Calories     *float64  `json:"calories"`
	Protein      *float64  `json:"protein"`
	Carbs        *float64  `json:"carbs"`
	Fat          *float64  `json:"fat"`
	Score        *float64  `json:"score"`
	CoachComment string    `json:"coach_comment"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Value dereferences an optional macro, treating NULL as zero
func Value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

const (
	starFull  = "★"
	starHalf  = "⯪"
	starEmpty = "☆"
	maxStars  = 5
)

// Stars renders a 0-5 score as five glyphs with half-star steps
func Stars(score float64) string {
	var b strings.Builder
	for i := 1; i <= maxStars; i++ {
		star := float64(i)
		switch {
		case score >= star:
			b.WriteString(starFull)
		case score >= star-0.5:
			b.WriteString(starHalf)
		default:
			b.WriteString(starEmpty)
		}
	}
	return b.String()
}
