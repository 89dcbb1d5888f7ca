package validation

import (
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/studyplan/internal/exclusion"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidField        ConflictType = "invalid_field"
	ConflictInvalidExclusion    ConflictType = "invalid_exclusion"
	ConflictOverlappingBlocks   ConflictType = "overlapping_blocks"
	ConflictTotalMinutes        ConflictType = "total_minutes_mismatch"
	ConflictMissingContentID    ConflictType = "missing_content_id"
	ConflictInvalidDateTime     ConflictType = "invalid_datetime"
	ConflictDuplicateDay        ConflictType = "duplicate_day"
	ConflictInvalidPeriodBounds ConflictType = "invalid_period"
)

// Conflict represents a problem detected in a schedule payload
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Content IDs or field names involved
	TimeRange   string   // Human-readable time range (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks schedule payloads before they are generated
type Validator struct {
	structs *validator.Validate
}

// New creates a new Validator
func New() *Validator {
	return &Validator{structs: validator.New()}
}

// ValidatePayload runs field-level checks followed by per-day consistency
// checks. It never stops at the first problem.
func (v *Validator) ValidatePayload(payload models.SchedulePayload) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if err := v.structs.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidField,
					Description: fmt.Sprintf("Field %s failed %q check (value: %v)", fe.Namespace(), fe.Tag(), fe.Value()),
					Items:       []string{fe.Namespace()},
				})
			}
		} else {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidField,
				Description: err.Error(),
			})
		}
	}

	if payload.PeriodStart != "" && payload.PeriodEnd != "" && payload.PeriodEnd < payload.PeriodStart {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidPeriodBounds,
			Description: fmt.Sprintf("Period end (%s) is before period start (%s)", payload.PeriodEnd, payload.PeriodStart),
		})
	}

	if err := exclusion.Validate(payload.Exclusions, payload.RecurringExclusions); err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidExclusion,
			Description: err.Error(),
		})
	}

	seenDates := make(map[string]int)
	for _, week := range payload.Weeks {
		for _, day := range week.Days {
			seenDates[day.Date]++
			result.Conflicts = append(result.Conflicts, v.validateDay(day)...)
		}
	}

	dates := make([]string, 0, len(seenDates))
	for date, count := range seenDates {
		if count > 1 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	for _, date := range dates {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateDay,
			Description: fmt.Sprintf("%s: Day appears %d times in the schedule", date, seenDates[date]),
			Date:        date,
		})
	}

	return result
}

type timedBlock struct {
	index      int
	contentID  string
	start, end int
	startText  string
	endText    string
}

func (v *Validator) validateDay(day models.DayMatrix) []Conflict {
	var conflicts []Conflict

	var blocks []timedBlock
	totalMinutes := 0
	for i, a := range day.Assignments {
		if a.ContentID == "" {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictMissingContentID,
				Description: fmt.Sprintf("%s: Block %d has no content ID", day.Date, i),
				Date:        day.Date,
			})
		}

		start, err1 := utils.ParseTimeToMinutes(a.StartTime)
		end, err2 := utils.ParseTimeToMinutes(a.EndTime)
		if err1 != nil || err2 != nil {
			// Field checks already report the format
			continue
		}
		if end <= start {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("%s: Block %d end time '%s' is not after start time '%s'", day.Date, i, a.EndTime, a.StartTime),
				Date:        day.Date,
				Items:       []string{a.ContentID},
			})
			continue
		}

		if a.EstimatedMinutes > 0 {
			totalMinutes += a.EstimatedMinutes
		} else {
			totalMinutes += end - start
		}
		blocks = append(blocks, timedBlock{
			index: i, contentID: a.ContentID,
			start: start, end: end,
			startText: a.StartTime, endText: a.EndTime,
		})
	}

	// O(n²) on a single day's blocks
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].start < blocks[j].start
	})
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			b1, b2 := blocks[i], blocks[j]
			if b2.start >= b1.end {
				break
			}
			conflicts = append(conflicts, Conflict{
				Type: ConflictOverlappingBlocks,
				Description: fmt.Sprintf("%s: %s-%s \"%s\" overlaps %s-%s \"%s\"",
					day.Date, b1.startText, b1.endText, b1.contentID, b2.startText, b2.endText, b2.contentID),
				Date:      day.Date,
				Items:     []string{b1.contentID, b2.contentID},
				TimeRange: fmt.Sprintf("%s-%s", b1.startText, b1.endText),
			})
		}
	}

	if day.TotalMinutes > 0 && len(day.Assignments) > 0 && day.TotalMinutes != totalMinutes {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictTotalMinutes,
			Description: fmt.Sprintf("%s: total_minutes is %d but blocks add up to %d", day.Date, day.TotalMinutes, totalMinutes),
			Date:        day.Date,
		})
	}

	return conflicts
}
