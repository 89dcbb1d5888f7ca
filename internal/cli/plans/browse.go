package plans

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/tui"
)

type BrowseCmd struct {
	Group string `arg:"" help:"Plan group ID to browse."`
}

func (c *BrowseCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	group, err := ctx.Store.GetPlanGroup(c.Group)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(group, ctx.Scheduler), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
