package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studyplan/internal/backup"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/storage"
	"github.com/julianstephens/studyplan/internal/storage/sqlite"
	"github.com/julianstephens/studyplan/internal/validation"
)

type Context struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	Validator *validation.Validator

	// Out receives command output; nil means stdout.
	Out io.Writer
	// Confirm asks a yes/no question; nil uses an interactive form.
	Confirm func(title, description string) (bool, error)
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.writer(), args...)
}

func (c *Context) writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Ask runs the configured confirmation prompt.
func (c *Context) Ask(title, description string) (bool, error) {
	if c.Confirm != nil {
		return c.Confirm(title, description)
	}
	return confirmForm(title, description)
}

func confirmForm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("interactive form error: %w", err)
	}
	return confirmed, nil
}

// PerformAutomaticBackup snapshots a SQLite store before destructive writes.
// Failures are logged and never interrupt the command.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
