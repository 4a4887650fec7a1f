package overview

import (
	"fmt"

	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/cli/food"
	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/models"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	meals, err := ctx.Store.GetFoodLogs()
	if err != nil {
		return fmt.Errorf("failed to get food logs: %w", err)
	}
	workouts, err := ctx.Store.GetWorkoutLogs()
	if err != nil {
		return fmt.Errorf("failed to get workout logs: %w", err)
	}
	o := dashboard.Summarize(meals, workouts, ctx.Clock())

	ctx.Println("GentleGains")
	ctx.Println()
	ctx.Printf("Workouts this week: %d\n", o.Workouts.WeeklyCount)
	if o.Workouts.LastLogged != nil {
		ctx.Printf("Last workout:       %s\n", cli.FormatTime(*o.Workouts.LastLogged))
	} else {
		ctx.Println("Last workout:       -")
	}
	ctx.Println()
	ctx.Printf("Meals logged: %d\n", len(o.Food.Entries))
	ctx.Println(food.FormatTotals(o.Food.Totals))
	if len(o.Food.Entries) > 0 {
		latest := o.Food.Entries[0]
		ctx.Printf("Latest meal: %s %s %s\n", latest.MealType.Label(), latest.FoodName, models.Stars(models.Value(latest.Score)))
	}
	return nil
}
