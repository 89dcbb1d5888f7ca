package exclusion

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/julianstephens/studyplan/internal/models"
)

// Calendar maps excluded dates to their resolved classification. Iteration
// follows date order, which is the order Resolve inserts them in.
type Calendar struct {
	days *orderedmap.OrderedMap[string, models.ResolvedExclusionDay]
}

// NewCalendar returns an empty calendar.
func NewCalendar() *Calendar {
	return &Calendar{days: orderedmap.New[string, models.ResolvedExclusionDay]()}
}

func (c *Calendar) set(day models.ResolvedExclusionDay) {
	c.days.Set(day.Date, day)
}

// Get returns the resolved day for a date (YYYY-MM-DD). A nil calendar has no days.
func (c *Calendar) Get(date string) (models.ResolvedExclusionDay, bool) {
	if c == nil {
		return models.ResolvedExclusionDay{}, false
	}
	return c.days.Get(date)
}

// Len returns the number of excluded dates.
func (c *Calendar) Len() int {
	if c == nil {
		return 0
	}
	return c.days.Len()
}

// Dates returns the excluded dates in order.
func (c *Calendar) Dates() []string {
	if c == nil {
		return nil
	}
	dates := make([]string, 0, c.days.Len())
	for pair := c.days.Oldest(); pair != nil; pair = pair.Next() {
		dates = append(dates, pair.Key)
	}
	return dates
}

// Days returns the resolved days in order.
func (c *Calendar) Days() []models.ResolvedExclusionDay {
	if c == nil {
		return nil
	}
	days := make([]models.ResolvedExclusionDay, 0, c.days.Len())
	for pair := c.days.Oldest(); pair != nil; pair = pair.Next() {
		days = append(days, pair.Value)
	}
	return days
}
