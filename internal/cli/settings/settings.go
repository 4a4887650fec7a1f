package settings

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/gentlegains/internal/cli"
	"github.com/julianstephens/gentlegains/internal/config"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	APIURL       *string `name:"api-url" help:"Base URL of the inference backend."`
	Database     *string `help:"SQLite path, PostgreSQL connection string without password, or 'keyring'."`
	DebugLogging *bool   `name:"debug-logging" help:"Enable or disable debug logging."`
	ResetSession bool    `help:"Start a new coach chat session."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Config File:  %s\n", config.ExpandHome(ctx.ConfigPath))
		ctx.Printf("  API URL:      %s\n", cfg.APIBaseURL)
		ctx.Printf("  Database:     %s\n", cfg.Database)
		ctx.Printf("  Session ID:   %s\n", orDash(cfg.SessionID))
		ctx.Printf("  Debug:        %v\n", cfg.Debug)
		return nil
	}

	apply := c.changes()
	if apply == nil {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	// file-backed values only; --db, --debug and env overrides stay out
	saved, err := config.LoadFile(ctx.ConfigPath)
	if err != nil {
		return err
	}
	apply(saved)
	if err := saved.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := saved.Save(ctx.ConfigPath); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	apply(cfg)
	ctx.Config = cfg
	ctx.Println("Settings updated successfully.")
	return nil
}

// changes returns a func applying the requested flags, or nil when none were set
func (c *SettingsCmd) changes() func(*config.Config) {
	if c.APIURL == nil && c.Database == nil && c.DebugLogging == nil && !c.ResetSession {
		return nil
	}
	session := ""
	if c.ResetSession {
		session = uuid.New().String()
	}
	return func(cfg *config.Config) {
		if c.APIURL != nil {
			cfg.APIBaseURL = strings.TrimRight(*c.APIURL, "/")
		}
		if c.Database != nil {
			cfg.Database = *c.Database
		}
		if c.DebugLogging != nil {
			cfg.Debug = *c.DebugLogging
		}
		if session != "" {
			cfg.SessionID = session
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
