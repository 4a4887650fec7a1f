package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/config"
	"github.com/julianstephens/gentlegains/internal/storage"
	"github.com/julianstephens/gentlegains/internal/storage/postgres"
	"github.com/julianstephens/gentlegains/internal/storage/sqlite"
)

// ErrForceNotSQLite is returned when --force is used against a non-SQLite store
var ErrForceNotSQLite = errors.New("--force only applies to the local SQLite database; drop PostgreSQL tables manually")

type InitCmd struct {
	Force  bool   `help:"Delete the existing SQLite database before initialization."`
	Source string `help:"Source database path or connection string to copy logs from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying logs from: %s\n", c.Source)
		if err := c.copyLogs(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return ErrForceNotSQLite
	}

	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(config.ExpandHome(c.Source)); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if postgres.IsConnString(source) {
		if _, err := postgres.ValidateConnString(source); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	}
	return sqlite.NewStore(config.ExpandHome(source)), nil
}

// copyLogs replays the source rows oldest first so the destination ids keep
// the same relative order. Timestamps are preserved.
func (c *InitCmd) copyLogs(ctx *cli.Context) error {
	src, err := openSource(c.Source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	ctx.Println("  Copying food logs...")
	meals, err := src.GetFoodLogs()
	if err != nil {
		return fmt.Errorf("failed to get food logs from source: %w", err)
	}
	for i := len(meals) - 1; i >= 0; i-- {
		m := meals[i]
		m.ID = 0
		if _, err := ctx.Store.AddFoodLog(m); err != nil {
			return fmt.Errorf("failed to add food log %q: %w", m.FoodName, err)
		}
	}
	ctx.Printf("    Copied %d food logs\n", len(meals))

	ctx.Println("  Copying workout logs...")
	workouts, err := src.GetWorkoutLogs()
	if err != nil {
		return fmt.Errorf("failed to get workout logs from source: %w", err)
	}
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		w.ID = 0
		if _, err := ctx.Store.AddWorkoutLog(w); err != nil {
			return fmt.Errorf("failed to add workout log %q: %w", w.ExerciseName, err)
		}
	}
	ctx.Printf("    Copied %d workout logs\n", len(workouts))

	return nil
}
