package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/cli/backups"
	"github.com/julianstephens/studyplan/internal/cli/groups"
	"github.com/julianstephens/studyplan/internal/cli/plans"
	"github.com/julianstephens/studyplan/internal/cli/system"
	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/errors"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/validation"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the OS keyring, ${env_db}, or .pgpass instead." default:"${default_config}" env:"STUDYPLAN_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd    `cmd:"" help:"Initialize studyplan storage."`
	Generate plans.GenerateCmd `cmd:"" help:"Generate plans from a schedule payload and save them as a plan group."`
	Preview  plans.PreviewCmd  `cmd:"" help:"Preview plans with their session labels."`
	Browse   plans.BrowseCmd   `cmd:"" help:"Browse a stored plan group interactively."`
	Calendar plans.CalendarCmd `cmd:"" help:"Show the resolved exclusion calendar of a payload."`
	Validate plans.ValidateCmd `cmd:"" help:"Check a schedule payload for conflicts."`
	Groups   struct {
		List   groups.ListCmd   `cmd:"" help:"List plan groups." default:"1"`
		Delete groups.DeleteCmd `cmd:"" help:"Delete a plan group."`
		Export groups.ExportCmd `cmd:"" help:"Export a plan group as JSON or YAML."`
	} `cmd:"" help:"Manage stored plan groups."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage SQLite database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with its password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Study schedule flattening and sequencing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"env_db":         constants.EnvDBConnection,
		},
	)

	configDir := filepath.Dir(constants.DefaultConfigPath)
	if expanded, err := cli.ExpandPath(configDir); err == nil {
		configDir = expanded
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:     store,
		Scheduler: scheduler.New(),
		Validator: validation.New(),
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close storage", "error", closeErr)
	}
	errors.Fatal(err)
}
