package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/scheduler"
	"github.com/julianstephens/studyplan/internal/tui/components/contentlist"
	"github.com/julianstephens/studyplan/internal/tui/components/plan"
)

type SessionState int

const (
	StatePlans SessionState = iota
	StateContent
)

var tabTitles = []string{"Plans", "Content"}

// Model browses one stored plan group.
type Model struct {
	group       models.PlanGroup
	state       SessionState
	keys        KeyMap
	help        help.Model
	planModel   plan.Model
	contentList contentlist.Model
	quitting    bool
	width       int
	height      int
}

func NewModel(group models.PlanGroup, sched *scheduler.Scheduler) Model {
	rows := sched.Preview(group.Plans)

	pm := plan.New(0, 0)
	pm.SetRows(rows)

	return Model{
		group:       group,
		state:       StatePlans,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		planModel:   pm,
		contentList: contentlist.New(contentlist.Summarize(rows), 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StatePlans && m.planModel.Focus != "" {
		keys = append(keys, m.keys.ShowAll)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) header() string {
	return headerStyle.Render(fmt.Sprintf("%s  %s .. %s  %d plans",
		m.group.Name, m.group.PeriodStart, m.group.PeriodEnd, len(m.group.Plans)))
}
