package plan

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studyplan/internal/scheduler"
)

var (
	dateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(13)
	contentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
)

// Model shows plans grouped by date in a scrollable viewport. When Focus is
// set only that content item's plans are shown.
type Model struct {
	viewport viewport.Model
	Rows     []scheduler.PreviewRow
	Focus    string
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.Rows) == 0 {
		return "No plans in this group."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetRows(rows []scheduler.PreviewRow) {
	m.Rows = rows
	m.Render()
}

// SetFocus limits the view to one content ID; an empty ID shows everything.
func (m *Model) SetFocus(contentID string) {
	m.Focus = contentID
	m.Render()
	m.viewport.GotoTop()
}

func (m *Model) Render() {
	m.viewport.SetContent(m.Content())
}

// Content renders the visible rows as text, one date header per day.
func (m Model) Content() string {
	var b strings.Builder
	lastDate := ""
	for _, r := range m.Rows {
		p := r.Plan
		if m.Focus != "" && p.ContentID != m.Focus {
			continue
		}
		if p.PlanDate != lastDate {
			if lastDate != "" {
				b.WriteString("\n")
			}
			b.WriteString(dateStyle.Render(fmt.Sprintf("%s  week %d", p.PlanDate, p.Week)))
			b.WriteString("\n")
			lastDate = p.PlanDate
		}

		if p.IsPlaceholder() {
			b.WriteString("  " + excludedStyle.Render(p.DayType.String()) + "\n")
			continue
		}

		title := p.ContentTitle
		if title == "" {
			title = p.ContentID
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			timeStyle.Render(p.StartTime+"-"+p.EndTime),
			contentStyle.Render(title),
			fmt.Sprintf("[%d-%d]", p.PlannedStartUnit, p.PlannedEndUnit),
			labelStyle.Render(r.Label),
		))
	}
	if lastDate == "" {
		return "No plans for this content."
	}
	return b.String()
}
