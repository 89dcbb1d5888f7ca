package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studyplan/internal/tui/components/contentlist"
)

// chromeHeight is the number of lines used by the header, tabs and help.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.planModel.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		m.contentList.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		return m, nil

	case contentlist.FocusContentMsg:
		m.planModel.SetFocus(msg.ContentID)
		m.state = StatePlans
		return m, nil

	case tea.KeyMsg:
		if m.state == StateContent && m.contentList.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case m.state == StatePlans && key.Matches(msg, m.keys.ShowAll):
			m.planModel.SetFocus("")
			return m, nil
		}
	}

	switch m.state {
	case StatePlans:
		m.planModel, cmd = m.planModel.Update(msg)
	case StateContent:
		m.contentList, cmd = m.contentList.Update(msg)
	}
	return m, cmd
}
