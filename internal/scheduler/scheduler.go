package scheduler

import (
	"fmt"

	"github.com/julianstephens/studyplan/internal/exclusion"
	"github.com/julianstephens/studyplan/internal/flattener"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/numbering"
	"github.com/julianstephens/studyplan/internal/utils"
)

// GenerateRequest is one schedule generation request.
type GenerateRequest struct {
	Weeks               []models.WeeklyMatrix
	Exclusions          []models.ExclusionRule
	RecurringExclusions []models.RecurringExclusionRule
	// PeriodStart and PeriodEnd bound the exclusion calendar (YYYY-MM-DD).
	// When empty they default to the earliest week start and latest week end.
	PeriodStart     string
	PeriodEnd       string
	IncludeSequence bool
}

// RequestFromPayload builds a GenerateRequest from a decoded payload.
func RequestFromPayload(p models.SchedulePayload) GenerateRequest {
	return GenerateRequest{
		Weeks:               p.Weeks,
		Exclusions:          p.Exclusions,
		RecurringExclusions: p.RecurringExclusions,
		PeriodStart:         p.PeriodStart,
		PeriodEnd:           p.PeriodEnd,
	}
}

// GenerateResult holds the flattened, plan-numbered records.
type GenerateResult struct {
	Plans       []models.Plan
	Calendar    *exclusion.Calendar
	PeriodStart string
	PeriodEnd   string
	// Sequences is nil unless the request asked for it
	Sequences numbering.Lookup
}

// PreviewRow is a plan annotated with its display sequence.
type PreviewRow struct {
	Plan     models.Plan
	Sequence int
	Label    string
}

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// ResolveCalendar expands the request's exclusion rules over its period,
// deriving the period from the weeks when it is not given. With no period at
// all the rules are still checked and an empty calendar is returned.
func (s *Scheduler) ResolveCalendar(req GenerateRequest) (*exclusion.Calendar, string, string, error) {
	start, end := req.PeriodStart, req.PeriodEnd
	if start == "" || end == "" {
		derivedStart, derivedEnd := schedulePeriod(req.Weeks)
		if start == "" {
			start = derivedStart
		}
		if end == "" {
			end = derivedEnd
		}
	}

	if start == "" || end == "" {
		if err := exclusion.Validate(req.Exclusions, req.RecurringExclusions); err != nil {
			return nil, start, end, err
		}
		return exclusion.NewCalendar(), start, end, nil
	}

	cal, err := exclusion.Resolve(req.Exclusions, req.RecurringExclusions, start, end)
	if err != nil {
		return nil, start, end, fmt.Errorf("failed to resolve exclusion calendar: %w", err)
	}
	return cal, start, end, nil
}

// Generate resolves the exclusion calendar, flattens the schedule and assigns
// plan numbers. Any error aborts the whole request.
func (s *Scheduler) Generate(req GenerateRequest) (GenerateResult, error) {
	result := GenerateResult{}

	cal, start, end, err := s.ResolveCalendar(req)
	result.PeriodStart, result.PeriodEnd = start, end
	if err != nil {
		return result, err
	}
	result.Calendar = cal

	flat, err := flattener.Flatten(req.Weeks, result.Calendar)
	if err != nil {
		return result, fmt.Errorf("failed to flatten schedule: %w", err)
	}

	result.Plans = numbering.AssignPlanNumbers(flat)
	if req.IncludeSequence {
		result.Sequences = numbering.Sequence(result.Plans)
	}

	logger.Info("Generated plans",
		"period_start", start,
		"period_end", end,
		"plans", len(result.Plans),
		"excluded_days", result.Calendar.Len(),
	)

	return result, nil
}

// Preview re-derives sequence numbers over already numbered plans and returns
// them as display rows in input order.
func (s *Scheduler) Preview(plans []models.Plan) []PreviewRow {
	lookup := numbering.Sequence(plans)

	rows := make([]PreviewRow, 0, len(plans))
	for _, p := range plans {
		row := PreviewRow{Plan: p}
		if seq := lookup.For(p); seq > 0 {
			row.Sequence = seq
			row.Label = numbering.Ordinal(seq) + " session"
		}
		rows = append(rows, row)
	}
	return rows
}

// schedulePeriod returns the earliest week start and latest week end that
// parse. Unparsable weeks are left for the flattener to reject.
func schedulePeriod(weeks []models.WeeklyMatrix) (string, string) {
	var start, end string
	for _, w := range weeks {
		if _, err := utils.ParseDate(w.WeekStart); err == nil && (start == "" || w.WeekStart < start) {
			start = w.WeekStart
		}
		if _, err := utils.ParseDate(w.WeekEnd); err == nil && (end == "" || w.WeekEnd > end) {
			end = w.WeekEnd
		}
	}
	return start, end
}
