package plans

import (
	"errors"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/payload"
	"github.com/julianstephens/studyplan/internal/scheduler"
)

type PreviewCmd struct {
	Group string `help:"Stored plan group ID to preview." xor:"source" required:""`
	File  string `help:"Schedule payload to generate and preview without saving." xor:"source" required:"" type:"existingfile"`
}

func (c *PreviewCmd) Run(ctx *cli.Context) error {
	var plans []models.Plan

	switch {
	case c.Group != "":
		if err := ctx.Store.Load(); err != nil {
			return err
		}
		group, err := ctx.Store.GetPlanGroup(c.Group)
		if err != nil {
			return err
		}
		ctx.Printf("%s (%s .. %s)\n", group.Name, group.PeriodStart, group.PeriodEnd)
		plans = group.Plans
	case c.File != "":
		p, err := payload.Load(c.File)
		if err != nil {
			return err
		}
		result, err := ctx.Scheduler.Generate(scheduler.RequestFromPayload(p))
		if err != nil {
			return err
		}
		plans = result.Plans
	default:
		return errors.New("one of --group or --file is required")
	}

	if len(plans) == 0 {
		ctx.Println("No plans.")
		return nil
	}

	ctx.Println(cli.RenderPreview(ctx.Scheduler.Preview(plans)))
	return nil
}
