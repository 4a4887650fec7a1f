package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/foodentry"
	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/nutrition"
)

type ListCmd struct {
	Comments bool `short:"c" help:"Show the coach comment under each entry."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetFoodLogs()
	if err != nil {
		return fmt.Errorf("failed to get food logs: %w", err)
	}
	summary := dashboard.SummarizeFood(entries)

	ctx.Println(FormatTotals(summary.Totals))
	if len(entries) == 0 {
		ctx.Println("\nNo meals logged yet. Use 'gentlegains food add' to analyze a photo.")
		return nil
	}

	ctx.Println()
	for _, e := range entries {
		ctx.Printf("  %s  %-4s %-20s %6.0f kcal  %s\n",
			cli.FormatTime(e.CreatedAt), e.MealType.Label(), e.FoodName,
			models.Value(e.Calories), models.Stars(models.Value(e.Score)))
		if c.Comments && e.CoachComment != "" {
			ctx.Printf("      %s\n", e.CoachComment)
		}
	}
	return nil
}

// FormatTotals renders the macro totals line
func FormatTotals(t nutrition.Totals) string {
	return fmt.Sprintf("Total: %.0f kcal · Protein %.1fg · Carbs %.1fg · Fat %.1fg",
		t.Calories, t.Protein, t.Carbs, t.Fat)
}

type AddCmd struct {
	Image string `arg:"" optional:"" help:"Path to the meal photo. Omit to fill in an interactive form." type:"path"`
	Name  string `short:"n" help:"Food name."`
	Meal  string `short:"m" help:"Meal (Breakfast|Lunch|Dinner|Snack|MidnightSnack, or its label)." default:"Lunch"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	meal, err := parseMeal(c.Meal)
	if err != nil {
		return err
	}

	if c.Image == "" || strings.TrimSpace(c.Name) == "" {
		if err := c.prompt(&meal); err != nil {
			return err
		}
	}

	wf := foodentry.New()
	if err := wf.SelectImage(c.Image); err != nil {
		return err
	}
	if err := wf.SetFoodName(c.Name); err != nil {
		return err
	}
	if err := wf.SetMealType(meal); err != nil {
		return err
	}

	ctx.Printf("Analyzing %s...\n", strings.TrimSpace(c.Name))
	if err := wf.Run(context.Background(), ctx.API); err != nil {
		return err
	}

	switch wf.State() {
	case foodentry.StateReview:
		ctx.Println()
		ctx.Print(foodentry.FormatResult(*wf.Result()))
		if err := wf.Confirm(); err != nil {
			return err
		}
		ctx.Println("\n✓ Saved to your food log")
	case foodentry.StateReviewWithDBError:
		ctx.Println()
		ctx.Print(foodentry.FormatResult(*wf.Result()))
		ctx.Printf("\n⚠ %s\n", wf.Notice())
	default:
		return fmt.Errorf("%s: %w", wf.Notice(), wf.Err())
	}
	return nil
}

func parseMeal(s string) (models.MealType, error) {
	if m, err := models.ParseMealType(s); err == nil {
		return m, nil
	}
	return models.MealTypeFromLabel(s)
}

func (c *AddCmd) prompt(meal *models.MealType) error {
	var meals []huh.Option[models.MealType]
	for _, m := range models.MealTypes() {
		meals = append(meals, huh.NewOption(m.Label(), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Photo").
				Description("Path to an image file").
				Value(&c.Image),
			huh.NewInput().
				Title("Food name").
				Value(&c.Name),
			huh.NewSelect[models.MealType]().
				Title("Meal").
				Options(meals...).
				Value(meal),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	return nil
}
