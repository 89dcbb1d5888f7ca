package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/utils"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true).Padding(0, 1)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// newTable builds a bordered table; rows for which highlight returns true are
// rendered in the exclusion style.
func newTable(headers []string, rows [][]string, highlight func(row int) bool) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case highlight != nil && row >= 0 && highlight(row):
				return excludedStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

// RenderPreview renders plans with their session labels.
func RenderPreview(rows []scheduler.PreviewRow) string {
	headers := []string{"#", "Date", "Day", "Blk", "Type", "Content", "Units", "Time", "Plan", "Session"}
	data := make([][]string, 0, len(rows))
	for i, r := range rows {
		p := r.Plan
		pos := strconv.Itoa(i + 1)
		if p.IsPlaceholder() {
			data = append(data, []string{
				pos, p.PlanDate, weekdayName(p.Day), "-", p.DayType.String(),
				"", "", "", strconv.Itoa(p.PlanNumber), "",
			})
			continue
		}

		content := p.ContentTitle
		if content == "" {
			content = p.ContentID
		}
		data = append(data, []string{
			pos, p.PlanDate, weekdayName(p.Day), strconv.Itoa(p.BlockIndex), p.DayType.String(),
			content,
			fmt.Sprintf("%d-%d", p.PlannedStartUnit, p.PlannedEndUnit),
			fmt.Sprintf("%s-%s", p.StartTime, p.EndTime),
			strconv.Itoa(p.PlanNumber), r.Label,
		})
	}

	return newTable(headers, data, func(i int) bool {
		return rows[i].Plan.DayType.IsExclusion()
	})
}

// RenderCalendar renders resolved exclusion days in date order.
func RenderCalendar(days []models.ResolvedExclusionDay) string {
	headers := []string{"Date", "Day", "Kind", "Source", "Rule", "Reason"}
	data := make([][]string, 0, len(days))
	for _, d := range days {
		weekday := ""
		if t, err := utils.ParseDate(d.Date); err == nil {
			weekday = weekdayName(int(t.Weekday()))
		}
		data = append(data, []string{
			d.Date, weekday, d.Kind.String(), string(d.Source), "#" + strconv.Itoa(d.RuleIndex), d.Reason,
		})
	}
	return newTable(headers, data, nil)
}

// RenderGroups renders stored plan group summaries.
func RenderGroups(groups []models.PlanGroupSummary) string {
	headers := []string{"ID", "Name", "Period", "Plans", "Updated"}
	data := make([][]string, 0, len(groups))
	for _, g := range groups {
		period := ""
		if g.PeriodStart != "" || g.PeriodEnd != "" {
			period = g.PeriodStart + " .. " + g.PeriodEnd
		}
		updated := g.UpdatedAt
		if t, err := time.Parse(time.RFC3339, g.UpdatedAt); err == nil {
			updated = t.Local().Format("2006-01-02 15:04")
		}
		data = append(data, []string{g.ID, g.Name, period, strconv.Itoa(g.PlanCount), updated})
	}
	return newTable(headers, data, nil)
}

func weekdayName(day int) string {
	if day < 0 || day > 6 {
		return "?"
	}
	return time.Weekday(day).String()[:3]
}
