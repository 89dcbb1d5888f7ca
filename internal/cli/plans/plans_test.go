package plans

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/studyplan/internal/cli"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/storage/sqlite"
	"github.com/julianstephens/studyplan/internal/validation"
)

const termPayload = `name: spring term
period_start: "2024-01-15"
period_end: "2024-01-28"
weeks:
  - week_number: 1
    week_start: "2024-01-15"
    week_end: "2024-01-21"
    days:
      - date: "2024-01-15"
        day_of_week: 1
        total_minutes: 60
        assignments:
          - date: "2024-01-15"
            day_of_week: 1
            start_time: "09:00"
            end_time: "10:00"
            content_id: content-123
            content_type: textbook
            content_title: Linear Algebra
            subject: Math
            range_start: 1
            range_end: 20
            estimated_minutes: 60
exclusions:
  - date: "2024-01-17"
    kind: holiday
    reason: founders day
recurring_exclusions:
  - pattern: weekly
    days_of_week: [0]
    kind: personal schedule
`

const overlappingPayload = `weeks:
  - week_number: 1
    week_start: "2024-01-15"
    week_end: "2024-01-21"
    days:
      - date: "2024-01-15"
        day_of_week: 1
        assignments:
          - date: "2024-01-15"
            day_of_week: 1
            start_time: "09:00"
            end_time: "10:00"
            content_id: content-1
          - date: "2024-01-15"
            day_of_week: 1
            start_time: "09:30"
            end_time: "10:30"
            content_id: content-2
`

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	return &cli.Context{
		Store:     store,
		Scheduler: scheduler.New(),
		Validator: validation.New(),
		Out:       out,
		Confirm: func(title, description string) (bool, error) {
			t.Fatalf("unexpected confirmation prompt: %s", title)
			return false, nil
		},
	}, out
}

func writePayload(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}
	return path
}

func TestGenerateCmd_DryRun(t *testing.T) {
	ctx, out := setupTestContext(t)
	path := writePayload(t, "term.yaml", termPayload)

	cmd := &GenerateCmd{File: path, DryRun: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"Generated 4 plans", "Linear Algebra", "1st session", "designated holiday"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	groups, err := ctx.Store.ListPlanGroups()
	if err != nil {
		t.Fatalf("ListPlanGroups failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("dry run saved %d groups, want 0", len(groups))
	}
}

func TestGenerateCmd_Save(t *testing.T) {
	ctx, out := setupTestContext(t)
	path := writePayload(t, "term.yaml", termPayload)

	cmd := &GenerateCmd{File: path}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out.String(), "Saved 4 plans") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	groups, err := ctx.Store.ListPlanGroups()
	if err != nil {
		t.Fatalf("ListPlanGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if g.Name != "spring term" || g.PlanCount != 4 {
		t.Errorf("group = %+v, want name %q with 4 plans", g, "spring term")
	}
	if g.PeriodStart != "2024-01-15" || g.PeriodEnd != "2024-01-28" {
		t.Errorf("period = %s..%s", g.PeriodStart, g.PeriodEnd)
	}
}

func TestGenerateCmd_Replace(t *testing.T) {
	tests := []struct {
		name        string
		confirm     bool
		wantName    string
		wantOutput  string
		wantBackups int
	}{
		{"confirmed", true, "renamed", "Saved 4 plans", 1},
		{"declined", false, "spring term", "Aborted", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestContext(t)
			path := writePayload(t, "term.yaml", termPayload)

			if err := (&GenerateCmd{File: path}).Run(ctx); err != nil {
				t.Fatalf("first generate failed: %v", err)
			}
			groups, _ := ctx.Store.ListPlanGroups()
			id := groups[0].ID

			asked := false
			ctx.Confirm = func(title, description string) (bool, error) {
				asked = true
				return tt.confirm, nil
			}
			out.Reset()

			cmd := &GenerateCmd{File: path, Group: id, Name: "renamed"}
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("second generate failed: %v", err)
			}
			if !asked {
				t.Error("expected a confirmation prompt")
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output missing %q:\n%s", tt.wantOutput, out.String())
			}

			group, err := ctx.Store.GetPlanGroup(id)
			if err != nil {
				t.Fatalf("GetPlanGroup failed: %v", err)
			}
			if group.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", group.Name, tt.wantName)
			}

			entries, _ := os.ReadDir(filepath.Join(filepath.Dir(ctx.Store.GetConfigPath()), "backups"))
			if len(entries) != tt.wantBackups {
				t.Errorf("got %d backups, want %d", len(entries), tt.wantBackups)
			}
		})
	}
}

func TestGenerateCmd_YesSkipsPrompt(t *testing.T) {
	ctx, _ := setupTestContext(t)
	path := writePayload(t, "term.yaml", termPayload)

	if err := (&GenerateCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	groups, _ := ctx.Store.ListPlanGroups()

	cmd := &GenerateCmd{File: path, Group: groups[0].ID, Yes: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("generate with --yes failed: %v", err)
	}

	after, _ := ctx.Store.ListPlanGroups()
	if len(after) != 1 {
		t.Errorf("got %d groups, want 1", len(after))
	}
}

func TestGenerateCmd_InvalidPayload(t *testing.T) {
	ctx, out := setupTestContext(t)
	bad := strings.Replace(termPayload, `week_start: "2024-01-15"`, `week_start: "2024-13-01"`, 1)
	path := writePayload(t, "bad.yaml", bad)

	if err := (&GenerateCmd{File: path}).Run(ctx); err == nil {
		t.Fatal("expected error for invalid week start")
	}
	if !strings.Contains(out.String(), "Conflicts detected") {
		t.Errorf("expected validation warnings, got:\n%s", out.String())
	}

	groups, _ := ctx.Store.ListPlanGroups()
	if len(groups) != 0 {
		t.Errorf("failed generate saved %d groups", len(groups))
	}
}

func TestPreviewCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	path := writePayload(t, "term.yaml", termPayload)

	if err := (&PreviewCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("preview from file failed: %v", err)
	}
	if !strings.Contains(out.String(), "Linear Algebra") {
		t.Errorf("file preview missing content:\n%s", out.String())
	}

	if err := (&GenerateCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	groups, _ := ctx.Store.ListPlanGroups()
	out.Reset()

	if err := (&PreviewCmd{Group: groups[0].ID}).Run(ctx); err != nil {
		t.Fatalf("preview from group failed: %v", err)
	}
	for _, want := range []string{"spring term", "Linear Algebra", "1st session"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("group preview missing %q:\n%s", want, out.String())
		}
	}
}

func TestPreviewCmd_MissingGroup(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &PreviewCmd{Group: "6f1c9a52-8d0e-4b53-9f1e-2b7f4f3d1a10"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestCalendarCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	path := writePayload(t, "term.yaml", termPayload)

	if err := (&CalendarCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("calendar failed: %v", err)
	}

	output := out.String()
	for _, want := range []string{"2024-01-15 .. 2024-01-28: 3", "2024-01-17", "founders day", "2024-01-21", "2024-01-28"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestValidateCmd(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantErr    bool
		wantOutput string
	}{
		{"clean", termPayload, false, "No conflicts detected."},
		{"overlapping blocks", overlappingPayload, true, "Conflicts detected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := setupTestContext(t)
			path := writePayload(t, "payload.yaml", tt.content)

			err := (&ValidateCmd{File: path}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("output missing %q:\n%s", tt.wantOutput, out.String())
			}
		})
	}
}
