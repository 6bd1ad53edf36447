package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return m
}

// RenderKeybindHelp produces the transient help bar shown after SPC.
// With a pending sequence such as "SPC t" it lists the next level.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	hints := h.Registry.LeaderHints(h.CurrentSeq())
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, hint := range hints {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(hint.Key),
			key.WithHelp(hint.Key, hint.Desc),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	label := Styles.Muted.Render(h.CurrentSeq())
	return box.Render(label + " " + newHelpModel().ShortHelpView(bindings))
}

// browseKeyMap is the always-visible help bar of the browser view.
type browseKeyMap struct {
	Pick   key.Binding
	Step   key.Binding
	Jump   key.Binding
	Scroll key.Binding
	Leader key.Binding
	Quit   key.Binding
}

func newBrowseKeyMap(topics int) browseKeyMap {
	jump := "1-9"
	switch {
	case topics <= 1:
		jump = "1"
	case topics < 9:
		jump = "1-" + string(rune('0'+topics))
	}
	return browseKeyMap{
		Pick:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "topic")),
		Step:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "prev/next")),
		Jump:   key.NewBinding(key.WithKeys("1"), key.WithHelp(jump, "jump")),
		Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Leader: key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "commands")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Step, k.Jump, k.Scroll, k.Leader, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
