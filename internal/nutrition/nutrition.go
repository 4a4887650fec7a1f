package nutrition

import "github.com/julianstephens/gentlegains/internal/models"

// Totals holds summed macros across food log rows
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Aggregate sums macro fields element-wise; NULL fields count as zero.
func Aggregate(entries []models.FoodLogEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += models.Value(e.Calories)
		t.Protein += models.Value(e.Protein)
		t.Carbs += models.Value(e.Carbs)
		t.Fat += models.Value(e.Fat)
	}
	return t
}
