package contentlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studyplan/internal/models"
	"github.com/julianstephens/studyplan/internal/scheduler"
)

// FocusContentMsg asks the parent to show only one content item's plans.
type FocusContentMsg struct {
	ContentID string
}

// Item summarizes one content item across a plan group.
type Item struct {
	ContentID   string
	Name        string
	Subject     string
	ContentType models.ContentType
	Sessions    int
	Blocks      int
	First       string
	Last        string
}

func (i Item) Title() string { return i.Name }

func (i Item) Description() string {
	return fmt.Sprintf("%s | %s | %d sessions in %d blocks | %s .. %s",
		i.ContentType, i.Subject, i.Sessions, i.Blocks, i.First, i.Last)
}

func (i Item) FilterValue() string { return i.Name + " " + i.Subject }

// Summarize collects content items in order of first appearance. Sessions is
// the highest sequence number seen, so split blocks count once.
func Summarize(rows []scheduler.PreviewRow) []Item {
	index := make(map[string]int)
	var items []Item
	for _, r := range rows {
		p := r.Plan
		if p.IsPlaceholder() {
			continue
		}
		i, ok := index[p.ContentID]
		if !ok {
			title := p.ContentTitle
			if title == "" {
				title = p.ContentID
			}
			items = append(items, Item{
				ContentID:   p.ContentID,
				Name:        title,
				Subject:     p.ContentSubject,
				ContentType: p.ContentType,
				First:       p.PlanDate,
				Last:        p.PlanDate,
			})
			i = len(items) - 1
			index[p.ContentID] = i
		}

		item := &items[i]
		item.Blocks++
		if r.Sequence > item.Sessions {
			item.Sessions = r.Sequence
		}
		if p.PlanDate < item.First {
			item.First = p.PlanDate
		}
		if p.PlanDate > item.Last {
			item.Last = p.PlanDate
		}
	}
	return items
}

type KeyMap struct {
	Focus key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show plans"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Content"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Focus}
	}

	return Model{list: l, keys: keys}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m Model) Items() []Item {
	out := make([]Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if item, ok := it.(Item); ok {
			out = append(out, item)
		}
	}
	return out
}

// Filtering reports whether the filter prompt is capturing keys.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if key.Matches(msg, m.keys.Focus) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return FocusContentMsg{ContentID: i.ContentID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No content scheduled."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
