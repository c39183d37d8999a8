package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/N3moAhead/familytree/internal/person"
	"github.com/N3moAhead/familytree/internal/relation"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

const listTitle = "Family Tree"

type sessionState int

const (
	viewList sessionState = iota
	viewDetail
	viewAddSon
	viewAddDaughter
	viewAddSpouse
)

type model struct {
	state    sessionState
	rel      *relation.Relationships
	people   list.Model
	details  list.Model
	selected *person.Person // The person whose relations are shown

	input  textinput.Model
	status string
}

func newModel(rel *relation.Relationships) model {
	people := list.New(peopleToItems(rel.Tree().People()), list.NewDefaultDelegate(), 0, 0)
	people.Title = listTitle
	people.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "relations")),
		}
	}

	details := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	details.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "add son")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "add daughter")),
			key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add spouse")),
		}
	}

	ti := textinput.New()
	ti.Placeholder = "Name"

	return model{
		state:   viewList,
		rel:     rel,
		people:  people,
		details: details,
		input:   ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		h, v := docStyle.GetFrameSize()
		m.people.SetSize(msg.Width-h, msg.Height-v)
		m.details.SetSize(msg.Width-h, msg.Height-v-2)
	}

	switch m.state {
	case viewList:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" && !m.people.SettingFilter() {
			if p, ok := m.people.SelectedItem().(*person.Person); ok {
				m.selected = p
				m.status = ""
				m.state = viewDetail
				cmd = m.refreshDetails()
				return m, cmd
			}
			return m, nil
		}
		m.people, cmd = m.people.Update(msg)
		return m, cmd

	case viewDetail:
		if msg, ok := msg.(tea.KeyMsg); ok && !m.details.SettingFilter() {
			switch msg.String() {
			case "esc", "q":
				m.state = viewList
				m.selected = nil
				return m, nil
			case "s":
				return m.prompt(viewAddSon, "Son of "+m.selected.ID)
			case "d":
				return m.prompt(viewAddDaughter, "Daughter of "+m.selected.ID)
			case "m":
				return m.prompt(viewAddSpouse, "Spouse of "+m.selected.ID)
			}
		}
		m.details, cmd = m.details.Update(msg)
		return m, cmd

	case viewAddSon, viewAddDaughter, viewAddSpouse:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				m.state = viewDetail
				return m, nil
			case "enter":
				if err := m.apply(m.input.Value()); err != nil {
					m.status = err.Error()
				} else {
					m.status = ""
				}
				m.state = viewDetail
				cmd = tea.Batch(m.people.SetItems(peopleToItems(m.rel.Tree().People())), m.refreshDetails())
				return m, cmd
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) prompt(state sessionState, placeholder string) (tea.Model, tea.Cmd) {
	m.state = state
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	cmd := m.input.Focus()
	return m, cmd
}

// apply runs the mutation for the current input view.
func (m model) apply(name string) error {
	id := m.selected.ID
	switch m.state {
	case viewAddSon:
		return m.rel.AddSon(id, name)
	case viewAddDaughter:
		return m.rel.AddDaughter(id, name)
	case viewAddSpouse:
		if m.selected.IsMale {
			return m.rel.AddSpouse(id, name)
		}
		return m.rel.AddSpouse(name, id)
	}
	return nil
}

func (m *model) refreshDetails() tea.Cmd {
	m.details.Title = "Relations of " + m.selected.ID
	items := m.rel.All(m.selected.ID)
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	return m.details.SetItems(listItems)
}

func (m model) View() string {
	switch m.state {
	case viewList:
		return docStyle.Render(m.people.View())

	case viewDetail:
		if m.selected == nil {
			return "Error: no person selected"
		}
		s := titleStyle.Render(m.selected.ID) + " " + infoStyle.Render(m.selected.Sex()) + "\n"
		if m.status != "" {
			s += errorStyle.Render(m.status) + "\n"
		}
		s += m.details.View()
		return docStyle.Render(s)

	case viewAddSon, viewAddDaughter, viewAddSpouse:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render(m.input.Placeholder),
			m.input.View(),
			infoStyle.Render("Enter to save | ESC to cancel"),
		))
	}
	return ""
}

func peopleToItems(people []*person.Person) []list.Item {
	items := make([]list.Item, len(people))
	for i, p := range people {
		items[i] = p
	}
	return items
}
