package ui

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"spool/internal/browser"
	"spool/internal/telemetry"
)

// maxJumpKeys is the number of digit shortcuts ("1".."9").
const maxJumpKeys = 9

// AppModel is the root model. It owns the browser state; every selection
// goes through Browser so observers see it exactly once.
type AppModel struct {
	Browser    *browser.Browser
	Screen     *BrowserView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Recorder   *telemetry.Recorder

	ctx    context.Context
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model for b. title is the shell
// title drawn above the page. rec may be nil.
func NewAppModel(ctx context.Context, b *browser.Browser, title string, rec *telemetry.Recorder) *AppModel {
	a := &AppModel{
		Browser:    b,
		KeyHandler: NewKeyHandler(newRegistry(b.Topics())),
		Recorder:   rec,
		ctx:        ctx,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	a.Screen = NewBrowserView(title, a.render())
	return a
}

// newRegistry binds the browser keys. Digit keys follow catalog order.
func newRegistry(topics []string) *KeybindRegistry {
	reg := NewKeybindRegistry()
	showPicker := func() tea.Msg { return ShowTopicPickerMsg{} }
	next := func() tea.Msg { return StepTopicMsg{Delta: 1} }
	prev := func() tea.Msg { return StepTopicMsg{Delta: -1} }

	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("t", showPicker, "Select topic")
	reg.Bind("]", next, "Next topic")
	reg.Bind("[", prev, "Previous topic")
	reg.Bind("SPC t t", showPicker, "Select topic")
	reg.Bind("SPC t n", next, "Next topic")
	reg.Bind("SPC t p", prev, "Previous topic")
	reg.Bind("SPC q", tea.Quit, "Quit")

	for i, name := range topics {
		if i == maxJumpKeys {
			break
		}
		reg.Bind(strconv.Itoa(i+1), func() tea.Msg { return SelectTopicMsg{Name: name} }, name)
	}
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// render projects the browser into a page inside a render span.
func (m *AppModel) render() browser.Page {
	_, done := m.Recorder.StartRender(m.ctx, m.Browser.Selected())
	page := m.Browser.Render()
	done(len(page.Cards))
	return page
}

// refresh redraws the view after a selection change.
func (m *AppModel) refresh() {
	m.Screen.SetPage(m.render())
}

func (m *AppModel) selectTopic(name string) {
	changed, err := m.Browser.Select(name)
	if err != nil {
		m.logSelectError(name, err)
		return
	}
	if changed {
		m.refresh()
	}
}

func (m *AppModel) stepTopic(delta int) {
	changed, err := m.Browser.Step(delta)
	if err != nil {
		m.logSelectError("", err)
		return
	}
	if changed {
		m.refresh()
	}
}

func (m *AppModel) logSelectError(name string, err error) {
	level := slog.LevelError
	if errors.Is(err, browser.ErrUnknownTopic) {
		level = slog.LevelWarn
	}
	m.Recorder.Logger().Log(m.ctx, level, "topic selection rejected",
		slog.String("topic", name), slog.Any("error", err))
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case SelectTopicMsg:
		a.Overlays.Clear()
		a.selectTopic(msg.Name)
		return a, nil
	case StepTopicMsg:
		a.stepTopic(msg.Delta)
		return a, nil
	case ShowTopicPickerMsg:
		if a.Overlays.Len() == 0 {
			modal := NewTopicPickerModal(a.Browser.Topics(), a.Browser.Selected())
			a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		}
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Modals get keys first.
		if cmd, handled := a.Overlays.HandleKey(msg); handled {
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	}

	_, cmd := a.Screen.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Screen.View()
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return a.Overlays.Render(base, a.width, a.height)
}
