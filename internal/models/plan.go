package models

// Plan is one flattened study-schedule record.
type Plan struct {
	PlanDate               string      `json:"plan_date" yaml:"plan_date"` // YYYY-MM-DD format
	BlockIndex             int         `json:"block_index" yaml:"block_index"`
	ContentType            ContentType `json:"content_type" yaml:"content_type"`
	ContentID              string      `json:"content_id" yaml:"content_id"`
	PlannedStartUnit       int         `json:"planned_start_unit" yaml:"planned_start_unit"`
	PlannedEndUnit         int         `json:"planned_end_unit" yaml:"planned_end_unit"`
	StartTime              string      `json:"start_time" yaml:"start_time"` // HH:MM format
	EndTime                string      `json:"end_time" yaml:"end_time"`   // HH:MM format
	DayType                DayType     `json:"day_type" yaml:"day_type"`
	Week                   int         `json:"week" yaml:"week"`
	Day                    int         `json:"day" yaml:"day"` // 0 = Sunday
	ContentTitle           string      `json:"content_title" yaml:"content_title"`
	ContentSubject         string      `json:"content_subject" yaml:"content_subject"`
	ContentSubjectCategory *string     `json:"content_subject_category" yaml:"content_subject_category"`
	Chapter                *string     `json:"chapter" yaml:"chapter"`
	IsPartial              bool        `json:"is_partial" yaml:"is_partial"`
	IsContinued            bool        `json:"is_continued" yaml:"is_continued"`
	PlanNumber             int         `json:"plan_number" yaml:"plan_number"`
	SubjectType            *string     `json:"subject_type" yaml:"subject_type"`
	ContentCategory        *string     `json:"content_category" yaml:"content_category"`
}

// IsPlaceholder reports whether the plan stands in for an excluded day
// without content.
func (p Plan) IsPlaceholder() bool {
	return p.ContentID == ""
}

// PlanGroup is the persisted unit of a generated schedule. Regenerating a
// group replaces all of its plans at once.
type PlanGroup struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	PeriodStart string `json:"period_start" yaml:"period_start"`
	PeriodEnd   string `json:"period_end" yaml:"period_end"`
	CreatedAt   string `json:"created_at" yaml:"created_at"` // RFC3339 timestamp
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"` // RFC3339 timestamp
	Plans       []Plan `json:"plans" yaml:"plans"`
}

// PlanGroupSummary is a plan group without its plans.
type PlanGroupSummary struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	PeriodStart string `json:"period_start" yaml:"period_start"`
	PeriodEnd   string `json:"period_end" yaml:"period_end"`
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"`
	PlanCount   int    `json:"plan_count" yaml:"plan_count"`
}
