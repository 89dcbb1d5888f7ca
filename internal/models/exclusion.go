package models

// RecurrencePattern is the cadence of a recurring exclusion rule.
type RecurrencePattern string

const (
	PatternWeekly   RecurrencePattern = "weekly"
	PatternBiweekly RecurrencePattern = "biweekly"
	PatternMonthly  RecurrencePattern = "monthly"
)

// ExclusionSource records which kind of rule produced a resolved day.
type ExclusionSource string

const (
	SourceOneOff    ExclusionSource = "one-off"
	SourceRecurring ExclusionSource = "recurring"
)

// ExclusionRule excludes a single date.
type ExclusionRule struct {
	Date   string  `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD format
	Kind   DayType `json:"kind" yaml:"kind"`
	Reason string  `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// RecurringExclusionRule excludes dates matching a weekly, biweekly or monthly
// pattern inside a validity window.
type RecurringExclusionRule struct {
	Pattern    RecurrencePattern `json:"pattern" yaml:"pattern"`
	DaysOfWeek []int             `json:"days_of_week,omitempty" yaml:"days_of_week,omitempty"` // weekly/biweekly, 0 = Sunday
	DayOfMonth int               `json:"day_of_month,omitempty" yaml:"day_of_month,omitempty"` // monthly, clamped to month length
	Kind       DayType           `json:"kind" yaml:"kind"`
	Reason     string            `json:"reason,omitempty" yaml:"reason,omitempty"`
	ValidFrom  string            `json:"valid_from,omitempty" yaml:"valid_from,omitempty"`   // YYYY-MM-DD, empty = unbounded
	ValidUntil *string           `json:"valid_until,omitempty" yaml:"valid_until,omitempty"` // YYYY-MM-DD, nil = unbounded
	// ReferenceDate anchors biweekly rules: only weeks an even number of weeks
	// away from the week containing it match. Nil behaves like weekly.
	ReferenceDate *string `json:"reference_date,omitempty" yaml:"reference_date,omitempty"`
}

// ResolvedExclusionDay is a concrete excluded date.
type ResolvedExclusionDay struct {
	Date      string          `json:"date"`
	Kind      DayType         `json:"kind"`
	Reason    string          `json:"reason,omitempty"`
	Source    ExclusionSource `json:"source"`
	RuleIndex int             `json:"rule_index"` // index into the one-off or recurring rule list
}
