package food

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/gentlegains/internal/api"
	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/nutrition"
	"github.com/julianstephens/gentlegains/internal/storage/sqlite"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func setupTestContext(t *testing.T, handler http.HandlerFunc) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := &cli.Context{Store: store}
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		ctx.API = api.NewClient(srv.URL).WithHTTPClient(srv.Client())
	}
	out := &bytes.Buffer{}
	ctx.Out = out
	return ctx, out
}

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meal.png")
	if err := os.WriteFile(path, pngHeader, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func analyzeHandler(t *testing.T, saved bool, got *api.AnalyzeRequest) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/analyze" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"calories": 520, "protein": 32, "carbs": 48, "fat": 18,
			"score": 3.5, "coach_comment": "Add some greens", "is_saved": saved,
		})
	}
}

func TestAddCmdReview(t *testing.T) {
	var req api.AnalyzeRequest
	ctx, out := setupTestContext(t, analyzeHandler(t, true, &req))

	cmd := &AddCmd{Image: writeImage(t), Name: "Chicken rice", Meal: "晚餐"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("AddCmd.Run() failed: %v", err)
	}

	if req.FoodName != "Chicken rice" || req.MealType != models.MealDinner {
		t.Errorf("request = %+v", req)
	}
	if !strings.HasPrefix(req.ImageBase64, "data:image/png;base64,") {
		t.Errorf("image not sent as data URL: %.40s", req.ImageBase64)
	}
	got := out.String()
	for _, want := range []string{"Calories: 520 kcal", "★★★⯪☆", "Add some greens", "✓ Saved"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestAddCmdReviewWithDBError(t *testing.T) {
	var req api.AnalyzeRequest
	ctx, out := setupTestContext(t, analyzeHandler(t, false, &req))

	cmd := &AddCmd{Image: writeImage(t), Name: "Ramen", Meal: "Lunch"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("AddCmd.Run() failed: %v", err)
	}
	if !strings.Contains(out.String(), constants.AnalyzeDBWarning) {
		t.Errorf("DB warning not shown:\n%s", out.String())
	}
	if strings.Contains(out.String(), "✓ Saved") {
		t.Error("unsaved analysis reported as saved")
	}
}

func TestAddCmdBackendFailure(t *testing.T) {
	ctx, _ := setupTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	cmd := &AddCmd{Image: writeImage(t), Name: "Ramen", Meal: "Lunch"}
	err := cmd.Run(ctx)
	if err == nil || !strings.Contains(err.Error(), constants.AnalyzeFailure) {
		t.Errorf("Run() error = %v, want analyze failure notice", err)
	}
}

func TestParseMeal(t *testing.T) {
	tests := map[string]models.MealType{
		"breakfast":     models.MealBreakfast,
		"MidnightSnack": models.MealMidnightSnack,
		"宵夜":            models.MealMidnightSnack,
		"點心":            models.MealSnack,
	}
	for in, want := range tests {
		got, err := parseMeal(in)
		if err != nil || got != want {
			t.Errorf("parseMeal(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseMeal("brunch"); err == nil {
		t.Error("parseMeal accepted brunch")
	}
}

func TestListCmd(t *testing.T) {
	ctx, out := setupTestContext(t, nil)

	for _, e := range []models.FoodLogEntry{
		{FoodName: "Oatmeal", MealType: models.MealBreakfast, Calories: models.Float(500), Protein: models.Float(30), Score: models.Float(4), CreatedAt: time.Date(2025, 3, 5, 7, 0, 0, 0, time.Local)},
		{FoodName: "Salad", MealType: models.MealLunch, Calories: models.Float(300), CoachComment: "Nice", CreatedAt: time.Date(2025, 3, 5, 12, 0, 0, 0, time.Local)},
	} {
		if _, err := ctx.Store.AddFoodLog(e); err != nil {
			t.Fatal(err)
		}
	}

	if err := (&ListCmd{Comments: true}).Run(ctx); err != nil {
		t.Fatalf("ListCmd.Run() failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Total: 800 kcal · Protein 30.0g") {
		t.Errorf("totals wrong:\n%s", got)
	}
	if strings.Index(got, "Salad") > strings.Index(got, "Oatmeal") {
		t.Errorf("rows not newest first:\n%s", got)
	}
	for _, want := range []string{"早餐", "午餐", "Nice", "★★★★☆"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestListCmdEmpty(t *testing.T) {
	ctx, out := setupTestContext(t, nil)
	if err := (&ListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Total: 0 kcal") || !strings.Contains(out.String(), "No meals logged yet") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestFormatTotals(t *testing.T) {
	got := FormatTotals(nutrition.Totals{Calories: 1234.4, Protein: 80.5, Carbs: 150, Fat: 40})
	want := "Total: 1234 kcal · Protein 80.5g · Carbs 150.0g · Fat 40.0g"
	if got != want {
		t.Errorf("FormatTotals() = %q, want %q", got, want)
	}
}
