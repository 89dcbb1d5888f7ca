package plans

import (
	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/payload"
	"github.com/julianstephens/studyplan/internal/scheduler"
)

type CalendarCmd struct {
	File string `arg:"" help:"Schedule payload (.json, .yaml or .yml)." type:"existingfile"`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	p, err := payload.Load(c.File)
	if err != nil {
		return err
	}

	cal, start, end, err := ctx.Scheduler.ResolveCalendar(scheduler.RequestFromPayload(p))
	if err != nil {
		return err
	}

	if start == "" || end == "" {
		ctx.Println("No period given and no weeks to derive one from.")
		return nil
	}

	ctx.Printf("Excluded days %s .. %s: %d\n", start, end, cal.Len())
	if cal.Len() > 0 {
		ctx.Println(cli.RenderCalendar(cal.Days()))
	}
	return nil
}
