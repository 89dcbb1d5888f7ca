package groups

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/payload"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	groups, err := ctx.Store.ListPlanGroups()
	if err != nil {
		return fmt.Errorf("failed to list plan groups: %w", err)
	}

	if len(groups) == 0 {
		ctx.Println("No plan groups found.")
		return nil
	}

	ctx.Println(cli.RenderGroups(groups))
	return nil
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Plan group ID."`
	Yes bool   `help:"Delete without asking." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	group, err := ctx.Store.GetPlanGroup(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Ask(
			fmt.Sprintf("Delete plan group %q?", group.Name),
			fmt.Sprintf("All %d plans in the group will be removed.", len(group.Plans)),
		)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeletePlanGroup(c.ID); err != nil {
		return fmt.Errorf("failed to delete plan group: %w", err)
	}

	ctx.Printf("✓ Deleted plan group %s (%d plans)\n", group.ID, len(group.Plans))
	return nil
}

type ExportCmd struct {
	ID     string `arg:"" help:"Plan group ID."`
	Output string `help:"Output file. The format follows its extension. Writes JSON to stdout when omitted." short:"o"`
	Format string `help:"Output format when writing to stdout." enum:"json,yaml" default:"json"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	group, err := ctx.Store.GetPlanGroup(c.ID)
	if err != nil {
		return err
	}

	if c.Output == "" {
		var buf strings.Builder
		if err := payload.Encode(&buf, payload.Format(c.Format), group); err != nil {
			return err
		}
		ctx.Printf("%s", buf.String())
		return nil
	}

	format, err := payload.FormatFromPath(c.Output)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := payload.Encode(f, format, group); err != nil {
		return err
	}

	ctx.Printf("✓ Exported %d plans to %s\n", len(group.Plans), c.Output)
	return nil
}
