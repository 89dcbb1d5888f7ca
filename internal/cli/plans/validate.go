package plans

import (
	"fmt"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/payload"
	"github.com/julianstephens/studyplan/internal/validation"
)

type ValidateCmd struct {
	File string `arg:"" help:"Schedule payload (.json, .yaml or .yml)." type:"existingfile"`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	p, err := payload.Load(c.File)
	if err != nil {
		return err
	}

	v := ctx.Validator
	if v == nil {
		v = validation.New()
	}

	report := v.ValidatePayload(p)
	ctx.Println(report.FormatReport())
	if report.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found in %s", len(report.Conflicts), c.File)
	}
	return nil
}
