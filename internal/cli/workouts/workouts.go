package workouts

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/dashboard"
	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/models"
	"github.com/julianstephens/gentlegains/internal/units"
)

type ListCmd struct {
	Unit string `short:"u" help:"Weight unit to display (kg|lb)." enum:"kg,lb" default:"kg"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries, err := ctx.Store.GetWorkoutLogs()
	if err != nil {
		return fmt.Errorf("failed to get workout logs: %w", err)
	}
	summary := dashboard.SummarizeWorkouts(entries, ctx.Clock())

	ctx.Printf("This week: %d workouts\n", summary.WeeklyCount)
	if summary.LastLogged != nil {
		ctx.Printf("Last logged: %s\n", cli.FormatTime(*summary.LastLogged))
	} else {
		ctx.Println("Last logged: -")
	}

	if len(entries) == 0 {
		ctx.Println("\nNo workouts logged yet. Use 'gentlegains workouts add' to log one.")
		return nil
	}

	ctx.Println()
	for _, e := range entries {
		ctx.Printf("  %s  %-20s %-4s %s × %d × %d  vol %s\n",
			cli.FormatTime(e.CreatedAt), e.ExerciseName, e.BodyPart,
			FormatWeight(e.Weight, c.Unit), e.Sets, e.Reps, FormatWeight(e.Volume(), c.Unit))
	}
	return nil
}

// FormatWeight renders a stored kg weight in the requested unit
func FormatWeight(kg float64, unit string) string {
	if unit == "lb" {
		return units.Format(units.KgToLb(kg)) + " lb"
	}
	return units.Format(kg) + " kg"
}

type AddCmd struct {
	Name     string `arg:"" optional:"" help:"Exercise name. Omit to fill in an interactive form."`
	BodyPart string `short:"b" help:"Body part (胸部|背部|腿部|肩膀|手臂|核心|全身)." default:"胸部"`
	Weight   string `short:"w" help:"Weight lifted."`
	Unit     string `short:"u" help:"Unit of --weight (kg|lb)." enum:"kg,lb" default:"kg"`
	Sets     int    `short:"s" help:"Number of sets."`
	Reps     int    `short:"r" help:"Reps per set."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Name) == "" {
		if err := c.prompt(); err != nil {
			return err
		}
	}

	entry, err := c.Entry()
	if err != nil {
		return err
	}

	saved, err := ctx.Store.AddWorkoutLog(entry)
	if err != nil {
		logger.Error("Failed to save workout", "exercise", entry.ExerciseName, "error", err)
		return fmt.Errorf("failed to save workout: %w", err)
	}

	ctx.Printf("✓ Logged %s: %s × %d × %d (%s)\n",
		saved.ExerciseName, FormatWeight(saved.Weight, "kg"), saved.Sets, saved.Reps,
		FormatWeight(saved.Weight, "lb"))
	return nil
}

// Entry converts the flags into a validated row with the weight in kg
func (c *AddCmd) Entry() (models.WorkoutLogEntry, error) {
	if !isBodyPart(c.BodyPart) {
		return models.WorkoutLogEntry{}, fmt.Errorf("invalid body part: %s", c.BodyPart)
	}

	var pair units.WeightPair
	if c.Unit == "lb" {
		pair.SetLb(c.Weight)
	} else {
		pair.SetKg(c.Weight)
	}
	kg, _ := pair.Kg()

	entry := models.WorkoutLogEntry{
		ExerciseName: strings.TrimSpace(c.Name),
		BodyPart:     c.BodyPart,
		Weight:       kg,
		Sets:         c.Sets,
		Reps:         c.Reps,
	}
	if err := entry.Validate(); err != nil {
		return models.WorkoutLogEntry{}, err
	}
	return entry, nil
}

func isBodyPart(s string) bool {
	for _, p := range models.BodyParts() {
		if p == s {
			return true
		}
	}
	return false
}

func (c *AddCmd) prompt() error {
	var sets, reps string
	if c.Sets > 0 {
		sets = strconv.Itoa(c.Sets)
	}
	if c.Reps > 0 {
		reps = strconv.Itoa(c.Reps)
	}

	var bodyParts []huh.Option[string]
	for _, p := range models.BodyParts() {
		bodyParts = append(bodyParts, huh.NewOption(p, p))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return models.ErrExerciseNameRequired
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Body part").
				Options(bodyParts...).
				Value(&c.BodyPart),
			huh.NewSelect[string]().
				Title("Unit").
				Options(huh.NewOption("kg", "kg"), huh.NewOption("lb", "lb")).
				Value(&c.Unit),
			huh.NewInput().
				Title("Weight").
				Value(&c.Weight).
				Validate(positiveFloat),
			huh.NewInput().
				Title("Sets").
				Value(&sets).
				Validate(positiveInt),
			huh.NewInput().
				Title("Reps").
				Value(&reps).
				Validate(positiveInt),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	c.Sets, _ = strconv.Atoi(strings.TrimSpace(sets))
	c.Reps, _ = strconv.Atoi(strings.TrimSpace(reps))
	return nil
}

func positiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return models.ErrWeightNotPositive
	}
	return nil
}

func positiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return fmt.Errorf("must be a whole number of at least 1")
	}
	return nil
}
