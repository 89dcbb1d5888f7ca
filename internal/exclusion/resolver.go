package exclusion

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/julianstephens/studyplan/internal/constants"
	"github.com/julianstephens/studyplan/internal/errors"
	"github.com/julianstephens/studyplan/internal/logger"
	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/utils"
)

// ErrInvalidPeriod is returned when the planning period cannot be iterated.
var ErrInvalidPeriod = stderrors.New("invalid planning period")

// compiledRule is a validated recurring rule with its dates parsed.
type compiledRule struct {
	index  int
	rule   models.RecurringExclusionRule
	from   *time.Time
	until  *time.Time
	anchor *time.Time
}

func (r compiledRule) activeOn(date time.Time) bool {
	if r.from != nil && date.Before(*r.from) {
		return false
	}
	if r.until != nil && date.After(*r.until) {
		return false
	}
	return true
}

func (r compiledRule) matches(date time.Time) bool {
	if !r.activeOn(date) {
		return false
	}
	switch r.rule.Pattern {
	case models.PatternWeekly:
		return utils.IsWeekdayIn(date, r.rule.DaysOfWeek)
	case models.PatternBiweekly:
		if !utils.IsWeekdayIn(date, r.rule.DaysOfWeek) {
			return false
		}
		// Without an anchor there is no way to tell the on-weeks apart
		if r.anchor == nil {
			return true
		}
		return utils.IsOnBiweeklyCadence(date, *r.anchor)
	case models.PatternMonthly:
		return utils.IsMonthlyDate(date, r.rule.DayOfMonth)
	default:
		return false
	}
}

// Resolve expands one-off and recurring exclusion rules over the inclusive
// period [periodStart, periodEnd] (YYYY-MM-DD). For each date the first
// declared matching recurring rule applies, and a one-off rule for that date
// overrides it. Every rule is validated before any date is expanded.
func Resolve(oneOff []models.ExclusionRule, recurring []models.RecurringExclusionRule, periodStart, periodEnd string) (*Calendar, error) {
	start, err := utils.ParseDate(periodStart)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidPeriod, err)
	}
	end, err := utils.ParseDate(periodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidPeriod, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidPeriod, periodEnd, periodStart)
	}

	rules, err := compileRecurring(recurring)
	if err != nil {
		return nil, err
	}
	explicit, err := indexOneOff(oneOff)
	if err != nil {
		return nil, err
	}

	cal := NewCalendar()
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		key := utils.FormatDate(date)

		if idx, ok := explicit[key]; ok {
			rule := oneOff[idx]
			cal.set(models.ResolvedExclusionDay{
				Date:      key,
				Kind:      rule.Kind,
				Reason:    rule.Reason,
				Source:    models.SourceOneOff,
				RuleIndex: idx,
			})
			continue
		}

		for _, r := range rules {
			if r.matches(date) {
				cal.set(models.ResolvedExclusionDay{
					Date:      key,
					Kind:      r.rule.Kind,
					Reason:    r.rule.Reason,
					Source:    models.SourceRecurring,
					RuleIndex: r.index,
				})
				break
			}
		}
	}

	logger.Debug("Resolved exclusion calendar",
		"period_start", periodStart,
		"period_end", periodEnd,
		"one_off_rules", len(oneOff),
		"recurring_rules", len(recurring),
		"excluded_days", cal.Len(),
	)

	return cal, nil
}

// Validate checks every rule without expanding any dates.
func Validate(oneOff []models.ExclusionRule, recurring []models.RecurringExclusionRule) error {
	if _, err := compileRecurring(recurring); err != nil {
		return err
	}
	_, err := indexOneOff(oneOff)
	return err
}

// indexOneOff validates one-off rules and maps each date to the first rule
// declared for it.
func indexOneOff(rules []models.ExclusionRule) (map[string]int, error) {
	byDate := make(map[string]int, len(rules))
	for i, rule := range rules {
		invalid := func(reason string) error {
			return &errors.InvalidPatternError{Rule: errors.RuleOneOff, Index: i, Reason: reason}
		}
		date, err := utils.ParseDate(rule.Date)
		if err != nil {
			return nil, invalid(err.Error())
		}
		if !rule.Kind.IsExclusion() {
			return nil, invalid(fmt.Sprintf("kind %q is not an exclusion day type", rule.Kind))
		}
		key := utils.FormatDate(date)
		if _, seen := byDate[key]; !seen {
			byDate[key] = i
		}
	}
	return byDate, nil
}

func compileRecurring(rules []models.RecurringExclusionRule) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		c, err := compileRule(i, rule)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

func compileRule(index int, rule models.RecurringExclusionRule) (compiledRule, error) {
	invalid := func(format string, args ...interface{}) error {
		return &errors.InvalidPatternError{
			Rule:    errors.RuleRecurring,
			Index:   index,
			Pattern: string(rule.Pattern),
			Reason:  fmt.Sprintf(format, args...),
		}
	}

	c := compiledRule{index: index, rule: rule}

	switch rule.Pattern {
	case models.PatternWeekly, models.PatternBiweekly:
		if len(rule.DaysOfWeek) == 0 {
			return c, invalid("days of week must not be empty")
		}
		for _, d := range rule.DaysOfWeek {
			if d < constants.MinDayOfWeek || d > constants.MaxDayOfWeek {
				return c, invalid("day of week %d outside %d..%d", d, constants.MinDayOfWeek, constants.MaxDayOfWeek)
			}
		}
	case models.PatternMonthly:
		if rule.DayOfMonth < constants.MinDayOfMonth || rule.DayOfMonth > constants.MaxDayOfMonth {
			return c, invalid("day of month %d outside %d..%d", rule.DayOfMonth, constants.MinDayOfMonth, constants.MaxDayOfMonth)
		}
	default:
		return c, invalid("unknown pattern")
	}

	if !rule.Kind.IsExclusion() {
		return c, invalid("kind %q is not an exclusion day type", rule.Kind)
	}

	if rule.ValidFrom != "" {
		from, err := utils.ParseDate(rule.ValidFrom)
		if err != nil {
			return c, invalid("valid_from: %v", err)
		}
		c.from = &from
	}
	if rule.ValidUntil != nil {
		until, err := utils.ParseDate(*rule.ValidUntil)
		if err != nil {
			return c, invalid("valid_until: %v", err)
		}
		if c.from != nil && until.Before(*c.from) {
			return c, invalid("valid_until %s is before valid_from %s", *rule.ValidUntil, rule.ValidFrom)
		}
		c.until = &until
	}
	if rule.ReferenceDate != nil {
		if rule.Pattern != models.PatternBiweekly {
			return c, invalid("reference_date only applies to biweekly rules")
		}
		anchor, err := utils.ParseDate(*rule.ReferenceDate)
		if err != nil {
			return c, invalid("reference_date: %v", err)
		}
		c.anchor = &anchor
	}

	return c, nil
}
