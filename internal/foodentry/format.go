package foodentry

import (
	"fmt"
	"strings"

	"github.com/julianstephens/gentlegains/internal/models"
)

// FormatResult renders an analysis for the terminal
func FormatResult(r models.AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Calories: %.0f kcal\n", r.Calories)
	fmt.Fprintf(&b, "Protein:  %.1fg\n", r.Protein)
	fmt.Fprintf(&b, "Carbs:    %.1fg\n", r.Carbs)
	fmt.Fprintf(&b, "Fat:      %.1fg\n", r.Fat)
	fmt.Fprintf(&b, "Score:    %s (%.1f)\n", models.Stars(r.Score), r.Score)
	if r.CoachComment != "" {
		fmt.Fprintf(&b, "\nCoach: %s\n", r.CoachComment)
	}
	return b.String()
}
