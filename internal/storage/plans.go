package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/studyplan/internal/models"
)

// PlanColumns lists the plans table columns in insert and scan order.
var PlanColumns = []string{
	"group_id", "position", "plan_date", "block_index", "content_type", "content_id",
	"planned_start_unit", "planned_end_unit", "start_time", "end_time", "day_type",
	"week", "day", "content_title", "content_subject", "content_subject_category",
	"chapter", "is_partial", "is_continued", "plan_number", "subject_type", "content_category",
}

// InsertPlanSQL builds the plans insert statement using bind to render the
// n-th (1-based) placeholder.
func InsertPlanSQL(bind func(n int) string) string {
	params := make([]string, len(PlanColumns))
	for i := range PlanColumns {
		params[i] = bind(i + 1)
	}
	return fmt.Sprintf("INSERT INTO plans (%s) VALUES (%s)",
		strings.Join(PlanColumns, ", "), strings.Join(params, ", "))
}

// SelectPlansSQL selects every column after group_id for one group, ordered
// by emitted position.
func SelectPlansSQL(bind func(n int) string) string {
	return fmt.Sprintf("SELECT %s FROM plans WHERE group_id = %s ORDER BY position",
		strings.Join(PlanColumns[1:], ", "), bind(1))
}

// PlanArgs returns the insert arguments for one plan.
func PlanArgs(groupID string, position int, p models.Plan) []interface{} {
	return []interface{}{
		groupID, position, p.PlanDate, p.BlockIndex, string(p.ContentType), p.ContentID,
		p.PlannedStartUnit, p.PlannedEndUnit, p.StartTime, p.EndTime, p.DayType.String(),
		p.Week, p.Day, p.ContentTitle, p.ContentSubject, nullString(p.ContentSubjectCategory),
		nullString(p.Chapter), p.IsPartial, p.IsContinued, p.PlanNumber, nullString(p.SubjectType), nullString(p.ContentCategory),
	}
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanPlan reads one row produced by SelectPlansSQL.
func ScanPlan(row Scanner) (models.Plan, error) {
	var p models.Plan
	var position int
	var contentType, dayType string
	var subjectCategory, chapter, subjectType, contentCategory sql.NullString

	err := row.Scan(
		&position, &p.PlanDate, &p.BlockIndex, &contentType, &p.ContentID,
		&p.PlannedStartUnit, &p.PlannedEndUnit, &p.StartTime, &p.EndTime, &dayType,
		&p.Week, &p.Day, &p.ContentTitle, &p.ContentSubject, &subjectCategory,
		&chapter, &p.IsPartial, &p.IsContinued, &p.PlanNumber, &subjectType, &contentCategory,
	)
	if err != nil {
		return models.Plan{}, err
	}

	p.ContentType = models.ContentType(contentType)
	p.DayType, err = models.ParseDayType(dayType)
	if err != nil {
		return models.Plan{}, fmt.Errorf("plan at position %d: %w", position, err)
	}
	p.ContentSubjectCategory = stringPtr(subjectCategory)
	p.Chapter = stringPtr(chapter)
	p.SubjectType = stringPtr(subjectType)
	p.ContentCategory = stringPtr(contentCategory)

	return p, nil
}

// PrepareGroup assigns a new ID when missing and stamps the timestamps.
// createdAt is the stored creation time, or empty for a group not yet in
// the store, in which case the group's own CreatedAt is kept when set.
func PrepareGroup(group models.PlanGroup, createdAt string) models.PlanGroup {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if createdAt == "" {
		createdAt = group.CreatedAt
	}
	if createdAt == "" {
		createdAt = now
	}
	group.CreatedAt = createdAt
	group.UpdatedAt = now
	return group
}

// ValidateGroupID rejects IDs that are not UUIDs.
func ValidateGroupID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid plan group id %q: %w", id, err)
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
