package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// TopicPickerModal is the topic dropdown: a list of every topic in catalog
// order with the cursor on the current selection.
type TopicPickerModal struct {
	list list.Model
}

type topicItem string

func (t topicItem) FilterValue() string { return string(t) }
func (t topicItem) Title() string       { return string(t) }
func (t topicItem) Description() string { return "" }

// Ensure TopicPickerModal implements View.
var _ View = (*TopicPickerModal)(nil)

// NewTopicPickerModal creates a picker over topics with current highlighted.
func NewTopicPickerModal(topics []string, current string) *TopicPickerModal {
	items := make([]list.Item, len(topics))
	cursor := 0
	for i, name := range topics {
		items[i] = topicItem(name)
		if name == current {
			cursor = i
		}
	}
	l := list.New(items, NewCompactListDelegate(), 30, len(topics)+4)
	l.Title = "Select Topic"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Select(cursor)
	return &TopicPickerModal{list: l}
}

// Highlighted returns the topic under the cursor.
func (m *TopicPickerModal) Highlighted() string {
	if sel, ok := m.list.SelectedItem().(topicItem); ok {
		return string(sel)
	}
	return ""
}

// Init implements View.
func (m *TopicPickerModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *TopicPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			name := m.Highlighted()
			if name == "" {
				return m, nil
			}
			return m, func() tea.Msg { return SelectTopicMsg{Name: name} }
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *TopicPickerModal) View() string {
	help := "Enter: select  Esc: cancel"
	return Styles.BoxCompact.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}
