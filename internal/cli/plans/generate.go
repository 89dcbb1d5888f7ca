package plans

import (
	"errors"
	"fmt"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/payload"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/storage"
)

type GenerateCmd struct {
	File   string `arg:"" help:"Schedule payload (.json, .yaml or .yml)." type:"existingfile"`
	Group  string `help:"Plan group ID to replace. A new group is created when omitted."`
	Name   string `help:"Plan group name. Defaults to the payload name."`
	DryRun bool   `help:"Print the generated plans without saving them." name:"dry-run"`
	Yes    bool   `help:"Replace an existing group without asking." short:"y"`
}

func (c *GenerateCmd) Run(ctx *cli.Context) error {
	p, err := payload.Load(c.File)
	if err != nil {
		return err
	}

	if ctx.Validator != nil {
		if report := ctx.Validator.ValidatePayload(p); report.HasConflicts() {
			ctx.Println(cli.WarningStyle.Render(report.FormatReport()))
		}
	}

	result, err := ctx.Scheduler.Generate(scheduler.RequestFromPayload(p))
	if err != nil {
		return err
	}

	ctx.Printf("Generated %d plans for %s .. %s (%d excluded days)\n",
		len(result.Plans), result.PeriodStart, result.PeriodEnd, result.Calendar.Len())

	if c.DryRun {
		ctx.Println(cli.RenderPreview(ctx.Scheduler.Preview(result.Plans)))
		return nil
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = p.Name
	}

	if c.Group != "" {
		existing, err := ctx.Store.GetPlanGroup(c.Group)
		switch {
		case err == nil:
			if !c.Yes {
				ok, err := ctx.Ask(
					fmt.Sprintf("Replace plan group %q?", existing.Name),
					fmt.Sprintf("Its %d plans will be replaced by %d new plans.", len(existing.Plans), len(result.Plans)),
				)
				if err != nil {
					return err
				}
				if !ok {
					ctx.Println("Aborted. Plan group left unchanged.")
					return nil
				}
			}
			if name == "" {
				name = existing.Name
			}
			ctx.PerformAutomaticBackup()
		case errors.Is(err, storage.ErrNotFound):
		default:
			return fmt.Errorf("failed to load plan group: %w", err)
		}
	}

	saved, err := ctx.Store.SavePlanGroup(models.PlanGroup{
		ID:          c.Group,
		Name:        name,
		PeriodStart: result.PeriodStart,
		PeriodEnd:   result.PeriodEnd,
		Plans:       result.Plans,
	})
	if err != nil {
		return fmt.Errorf("failed to save plans: %w", err)
	}

	ctx.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Saved %d plans to group %s", len(saved.Plans), saved.ID)))
	return nil
}
