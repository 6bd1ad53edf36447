package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal drawn over the browser with a key that closes it.
type Overlay struct {
	View    View
	Dismiss string // e.g. "esc"; empty means only the modal itself can close it
}

// IsDismissKey reports whether key closes the overlay.
func (o Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open modals; the topmost receives input and is drawn.
type OverlayStack struct {
	items []Overlay
}

// Push opens o above any current overlay.
func (s *OverlayStack) Push(o Overlay) {
	s.items = append(s.items, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top, ok
}

// Peek returns the top overlay without closing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.items) == 0 {
		return Overlay{}, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.items)
}

// Clear closes every overlay, e.g. once a picker has made its choice.
func (s *OverlayStack) Clear() {
	s.items = nil
}

// HandleKey routes a key to the top overlay. A dismiss key closes it instead.
// handled is false when no overlay is open and the key should go elsewhere.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, handled bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	if top.IsDismissKey(msg.String()) {
		s.Pop()
		return nil, true
	}
	return s.UpdateTop(msg)
}

// UpdateTop passes msg to the top overlay and stores the updated view.
// Caller must run the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := &s.items[len(s.items)-1]
	next, cmd := top.View.Update(msg)
	top.View = next
	return cmd, true
}

// Render centers the top overlay in a width x height screen. With nothing
// open it returns base unchanged.
func (s *OverlayStack) Render(base string, width, height int) string {
	top, ok := s.Peek()
	if !ok {
		return base
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View())
}
