package models

// WeeklyMatrix is one planning week of a generated schedule.
type WeeklyMatrix struct {
	WeekNumber int         `json:"week_number" yaml:"week_number" validate:"min=1"`
	WeekStart  string      `json:"week_start" yaml:"week_start" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD format
	WeekEnd    string      `json:"week_end" yaml:"week_end" validate:"required,datetime=2006-01-02"`     // YYYY-MM-DD format
	Days       []DayMatrix `json:"days" yaml:"days" validate:"dive"`
}

// DayMatrix is one calendar day within a WeeklyMatrix.
type DayMatrix struct {
	Date         string              `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD format
	DayOfWeek    int                 `json:"day_of_week" yaml:"day_of_week" validate:"min=0,max=6"`   // 0 = Sunday
	TotalMinutes int                 `json:"total_minutes" yaml:"total_minutes" validate:"min=0"`
	Assignments  []ContentAssignment `json:"assignments" yaml:"assignments" validate:"dive"`
}

// ContentAssignment is one scheduled block of study.
type ContentAssignment struct {
	Date             string  `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	DayOfWeek        int     `json:"day_of_week" yaml:"day_of_week" validate:"min=0,max=6"`
	StartTime        string  `json:"start_time" yaml:"start_time" validate:"required,datetime=15:04"` // HH:MM format
	EndTime          string  `json:"end_time" yaml:"end_time" validate:"required,datetime=15:04"`     // HH:MM format
	ContentID        string  `json:"content_id" yaml:"content_id"`
	ContentType      string  `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	ContentTitle     string  `json:"content_title" yaml:"content_title"`
	Subject          string  `json:"subject" yaml:"subject"`
	SubjectCategory  *string `json:"subject_category,omitempty" yaml:"subject_category,omitempty"`
	RangeStart       *int    `json:"range_start,omitempty" yaml:"range_start,omitempty" validate:"omitempty,min=0"`
	RangeEnd         *int    `json:"range_end,omitempty" yaml:"range_end,omitempty" validate:"omitempty,min=0"`
	EstimatedMinutes int     `json:"estimated_minutes" yaml:"estimated_minutes" validate:"min=0"`
	Review           bool    `json:"review,omitempty" yaml:"review,omitempty"`
}

// SchedulePayload is the full input of a generate or preview request.
type SchedulePayload struct {
	Name                string                   `json:"name,omitempty" yaml:"name,omitempty"`
	PeriodStart         string                   `json:"period_start,omitempty" yaml:"period_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PeriodEnd           string                   `json:"period_end,omitempty" yaml:"period_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Weeks               []WeeklyMatrix           `json:"weeks" yaml:"weeks" validate:"dive"`
	Exclusions          []ExclusionRule          `json:"exclusions,omitempty" yaml:"exclusions,omitempty" validate:"dive"`
	RecurringExclusions []RecurringExclusionRule `json:"recurring_exclusions,omitempty" yaml:"recurring_exclusions,omitempty"`
}
