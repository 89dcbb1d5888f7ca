package flattener

import (
	"fmt"
	"time"

	"github.com/julianstephens/studyplan/internal/errors"
	"github.com/julianstephens/studyplan/internal/exclusion"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// weekBounds is a parsed WeeklyMatrix date range.
type weekBounds struct {
	number     int
	start, end time.Time
}

// Flatten walks weeks, then days, then assignments, in input order and emits
// one Plan per assignment. Dates in the calendar that no day fills with
// assignments are appended afterwards as placeholder plans, in calendar order.
//
// PlanNumber is left at zero; numbering.AssignPlanNumbers fills it in.
func Flatten(weeks []models.WeeklyMatrix, calendar *exclusion.Calendar) ([]models.Plan, error) {
	plans := make([]models.Plan, 0)
	bounds := make([]weekBounds, 0, len(weeks))
	scheduled := make(map[string]bool)

	for _, week := range weeks {
		wb, err := parseWeek(week)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, wb)

		for _, day := range week.Days {
			dayPlans, err := flattenDay(week, wb, day)
			if err != nil {
				return nil, err
			}
			if len(dayPlans) > 0 {
				scheduled[day.Date] = true
			}
			plans = append(plans, dayPlans...)
		}
	}

	placeholders := 0
	for _, excluded := range calendar.Days() {
		if scheduled[excluded.Date] {
			continue
		}
		plans = append(plans, placeholder(excluded, bounds))
		placeholders++
	}

	logger.Debug("Flattened schedule",
		"weeks", len(weeks),
		"plans", len(plans),
		"placeholders", placeholders,
	)

	return plans, nil
}

func parseWeek(week models.WeeklyMatrix) (weekBounds, error) {
	malformed := func(format string, args ...interface{}) error {
		return &errors.MalformedScheduleError{Week: week.WeekNumber, BlockIndex: -1, Reason: fmt.Sprintf(format, args...)}
	}

	start, err := utils.ParseDate(week.WeekStart)
	if err != nil {
		return weekBounds{}, malformed("week start: %v", err)
	}
	end, err := utils.ParseDate(week.WeekEnd)
	if err != nil {
		return weekBounds{}, malformed("week end: %v", err)
	}
	if end.Before(start) {
		return weekBounds{}, malformed("week end %s is before week start %s", week.WeekEnd, week.WeekStart)
	}
	return weekBounds{number: week.WeekNumber, start: start, end: end}, nil
}

func flattenDay(week models.WeeklyMatrix, wb weekBounds, day models.DayMatrix) ([]models.Plan, error) {
	malformed := func(block int, format string, args ...interface{}) error {
		return &errors.MalformedScheduleError{
			Week:       week.WeekNumber,
			Date:       day.Date,
			BlockIndex: block,
			Reason:     fmt.Sprintf(format, args...),
		}
	}

	date, err := utils.ParseDate(day.Date)
	if err != nil {
		return nil, malformed(-1, "%v", err)
	}
	if !utils.InRange(date, wb.start, wb.end) {
		return nil, malformed(-1, "date is outside week bounds %s..%s", week.WeekStart, week.WeekEnd)
	}

	plans := make([]models.Plan, 0, len(day.Assignments))
	for i, a := range day.Assignments {
		if a.Date != day.Date {
			return nil, malformed(i, "assignment date %s does not match its day", a.Date)
		}
		if a.DayOfWeek != day.DayOfWeek {
			return nil, malformed(i, "assignment day of week %d does not match its day (%d)", a.DayOfWeek, day.DayOfWeek)
		}
		startMin, err := utils.ParseTimeToMinutes(a.StartTime)
		if err != nil {
			return nil, malformed(i, "start time: %v", err)
		}
		endMin, err := utils.ParseTimeToMinutes(a.EndTime)
		if err != nil {
			return nil, malformed(i, "end time: %v", err)
		}
		if endMin <= startMin {
			return nil, malformed(i, "end time %s is not after start time %s", a.EndTime, a.StartTime)
		}

		plans = append(plans, toPlan(week.WeekNumber, i, a))
	}
	return plans, nil
}

// toPlan applies the field defaults for a single assignment.
func toPlan(weekNumber, blockIndex int, a models.ContentAssignment) models.Plan {
	dayType := models.DayTypeStudy
	if a.Review {
		dayType = models.DayTypeReview
	}

	// An absent range reads as 0-0 downstream
	var startUnit, endUnit int
	if a.RangeStart != nil {
		startUnit = *a.RangeStart
	}
	if a.RangeEnd != nil {
		endUnit = *a.RangeEnd
	}

	var category *string
	if a.SubjectCategory != nil {
		c := *a.SubjectCategory
		category = &c
	}

	return models.Plan{
		PlanDate:               a.Date,
		BlockIndex:             blockIndex,
		ContentType:            models.NormalizeContentType(a.ContentType),
		ContentID:              a.ContentID,
		PlannedStartUnit:       startUnit,
		PlannedEndUnit:         endUnit,
		StartTime:              a.StartTime,
		EndTime:                a.EndTime,
		DayType:                dayType,
		Week:                   weekNumber,
		Day:                    a.DayOfWeek,
		ContentTitle:           a.ContentTitle,
		ContentSubject:         a.Subject,
		ContentSubjectCategory: category,
		IsPartial:              false,
		IsContinued:            false,
	}
}

// placeholder builds the content-less plan for an excluded day.
func placeholder(day models.ResolvedExclusionDay, bounds []weekBounds) models.Plan {
	p := models.Plan{
		PlanDate: day.Date,
		DayType:  day.Kind,
	}
	date, err := utils.ParseDate(day.Date)
	if err != nil {
		// Calendar dates come from Resolve and always parse
		return p
	}
	p.Day = int(date.Weekday())
	for _, wb := range bounds {
		if utils.InRange(date, wb.start, wb.end) {
			p.Week = wb.number
			break
		}
	}
	return p
}
