package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/storage"
	"github.com/julianstephens/studyplan/internal/storage/postgres"
	"github.com/julianstephens/studyplan/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy plan groups from."`
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
		ctx.Printf("Copying plan groups from: %s\n", c.Source)
		if err := c.copyGroups(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("✓ Migration completed successfully!")
	}
	return nil
}

// reset removes an existing SQLite database file.
func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errors.New("--force is only supported for SQLite storage")
	}

	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
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

func (c *InitCmd) copyGroups(ctx *cli.Context) error {
	var source storage.Provider
	if postgres.IsConnString(c.Source) {
		if valid, err := postgres.ValidateConnString(c.Source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return err
		}
		source = postgres.New(c.Source)
	} else {
		path, err := cli.ExpandPath(c.Source)
		if err != nil {
			return err
		}
		source = sqlite.NewStore(path)
	}

	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	summaries, err := source.ListPlanGroups()
	if err != nil {
		return fmt.Errorf("failed to list plan groups from source: %w", err)
	}

	plans := 0
	for _, s := range summaries {
		group, err := source.GetPlanGroup(s.ID)
		if err != nil {
			return fmt.Errorf("failed to read plan group %s: %w", s.ID, err)
		}
		if _, err := ctx.Store.SavePlanGroup(group); err != nil {
			return fmt.Errorf("failed to save plan group %s: %w", s.ID, err)
		}
		plans += len(group.Plans)
	}
	ctx.Printf("  Migrated %d plan groups (%d plans)\n", len(summaries), plans)
	return nil
}
