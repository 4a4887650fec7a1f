package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/gentlegains/internal/api"
	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/cli/backups"
	"github.com/julianstephens/gentlegains/internal/cli/coach"
	"github.com/julianstephens/gentlegains/internal/cli/food"
	"github.com/julianstephens/gentlegains/internal/cli/overview"
	"github.com/julianstephens/gentlegains/internal/cli/settings"
	"github.com/julianstephens/gentlegains/internal/cli/system"
	"github.com/julianstephens/gentlegains/internal/cli/workouts"
	"github.com/julianstephens/gentlegains/internal/config"
	"github.com/julianstephens/gentlegains/internal/constants"
	"github.com/julianstephens/gentlegains/internal/errors"
	"github.com/julianstephens/gentlegains/internal/logger"
	"github.com/julianstephens/gentlegains/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string  `help:"Config file path." type:"string" default:"${config_file}"`
	DB      *string `name:"db" help:"SQLite path, PostgreSQL connection string without password, or 'keyring'. Overrides the config file."`
	Debug   bool    `help:"Enable debug logging."`

	Init      system.InitCmd        `cmd:"" help:"Initialize gentlegains storage."`
	Migrate   system.MigrateCmd     `cmd:"" help:"Run database migrations."`
	Doctor    system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui       system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard overview.DashboardCmd `cmd:"" help:"Show this week's training and logged nutrition totals."`
	Workouts  struct {
		List workouts.ListCmd `cmd:"" help:"List logged workouts." default:"1"`
		Add  workouts.AddCmd  `cmd:"" help:"Log a workout set."`
	} `cmd:"" help:"Manage workout logs."`
	Food struct {
		List food.ListCmd `cmd:"" help:"List analyzed meals." default:"1"`
		Add  food.AddCmd  `cmd:"" help:"Analyze a meal photo."`
	} `cmd:"" help:"Manage food logs."`
	Chat struct {
		Send    coach.SendCmd    `cmd:"" help:"Send a message to the coach."`
		History coach.HistoryCmd `cmd:"" help:"Show the coach conversation."`
	} `cmd:"" help:"Talk to the AI coach."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the database connection string in the OS keyring."`
	Settings settings.SettingsCmd `cmd:"" name:"config" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("AI fitness companion: meal analysis, workout logging and coaching"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	command := ctx.Command()

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.DB != nil {
		cfg.Database = *CLI.DB
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: config.Dir(CLI.Config),
		Quiet:     command == "tui",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Starting", "command", command, "version", constants.Version)

	if err := cfg.Validate(); err != nil && !strings.HasPrefix(command, "config") {
		errors.Fatal(fmt.Errorf("invalid configuration: %w", err))
	}

	if needsSession(command) {
		created, err := cfg.EnsureSessionID(CLI.Config)
		if err != nil {
			logger.Warn("Failed to persist session id", "error", err)
		} else if created {
			logger.Info("Created chat session", "session_id", cfg.SessionID)
		}
	}

	appCtx := &cli.Context{
		Config:     cfg,
		ConfigPath: CLI.Config,
		API:        api.NewClient(cfg.APIBaseURL),
	}

	if needsStore(command) {
		store, err := cli.OpenStore(cfg.Database)
		if err != nil {
			errors.Fatal(err)
		}
		appCtx.Store = store
	}

	err = ctx.Run(appCtx)
	closeStore(appCtx.Store)
	if err != nil {
		errors.Fatal(err)
	}
}

// needsStore is false for commands that only touch config or the keyring
func needsStore(command string) bool {
	return !strings.HasPrefix(command, "keyring") && !strings.HasPrefix(command, "config") &&
		!strings.HasPrefix(command, "chat")
}

func needsSession(command string) bool {
	return command == "tui" || strings.HasPrefix(command, "chat")
}

func closeStore(store storage.Provider) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}
}
