package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"spool/internal/browser"
	"spool/internal/catalog"
	"spool/internal/telemetry"
)

func newTestApp(t *testing.T, opts ...browser.Option) (*AppModel, tea.Model) {
	t.Helper()
	a := NewAppModel(context.Background(), browser.New(catalog.Default(), opts...), "Spool", nil)
	return a, a.AsTeaModel()
}

// press feeds keys to m and runs the resulting commands until one quits or
// produces nothing. It reports whether a quit was requested.
func press(m tea.Model, keys ...string) (quit bool) {
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		for cmd != nil {
			msg := cmd()
			if msg == nil {
				break
			}
			if _, ok := msg.(tea.QuitMsg); ok {
				return true
			}
			_, cmd = m.Update(msg)
		}
	}
	return false
}

func TestApp_StartsOnDefaultTopic(t *testing.T) {
	a, _ := newTestApp(t)
	page := a.Screen.Page()
	if page.Selected != "Technology" {
		t.Errorf("selected = %q, want Technology", page.Selected)
	}
	if len(page.Cards) != 9 {
		t.Errorf("expected 9 cards, got %d", len(page.Cards))
	}
}

func TestApp_InitialTopicOption(t *testing.T) {
	a, _ := newTestApp(t, browser.WithInitialTopic("Sports"))
	if got := a.Screen.Page().Selected; got != "Sports" {
		t.Errorf("selected = %q, want Sports", got)
	}
}

func TestApp_StepKeys(t *testing.T) {
	a, m := newTestApp(t)

	press(m, "]")
	if got := a.Browser.Selected(); got != "Politics" {
		t.Fatalf("after ]: selected = %q, want Politics", got)
	}
	if got := a.Screen.Page().Cards[0].Title; got != "Election Updates" {
		t.Errorf("view not refreshed: first card %q", got)
	}

	press(m, "[", "[")
	if got := a.Browser.Selected(); got != "Health" {
		t.Errorf("[ should wrap to the last topic, got %q", got)
	}
}

func TestApp_LeaderStep(t *testing.T) {
	a, m := newTestApp(t)
	press(m, " ", "t", "n")
	if got := a.Browser.Selected(); got != "Politics" {
		t.Errorf("SPC t n: selected = %q, want Politics", got)
	}
	press(m, " ", "t", "p")
	if got := a.Browser.Selected(); got != "Technology" {
		t.Errorf("SPC t p: selected = %q, want Technology", got)
	}
}

func TestApp_DigitJump(t *testing.T) {
	a, m := newTestApp(t)
	press(m, "4")
	if got := a.Browser.Selected(); got != "Health" {
		t.Errorf("4: selected = %q, want Health", got)
	}
	// Only four topics; 5 is unbound and falls through to the view.
	press(m, "5")
	if got := a.Browser.Selected(); got != "Health" {
		t.Errorf("5 should be ignored, selected = %q", got)
	}
}

func TestApp_SameTopicDoesNotNotify(t *testing.T) {
	var calls int
	a, m := newTestApp(t, browser.WithObserver(func(from, to string) { calls++ }))

	press(m, "1")
	if calls != 0 {
		t.Errorf("re-selecting the current topic notified %d times", calls)
	}
	press(m, "2", "2")
	if calls != 1 {
		t.Errorf("expected exactly one notification, got %d", calls)
	}
	if a.Browser.Selected() != "Politics" {
		t.Errorf("selected = %q, want Politics", a.Browser.Selected())
	}
}

func TestApp_TopicPicker(t *testing.T) {
	a, m := newTestApp(t)

	press(m, "t")
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected picker overlay after t, got %d overlays", a.Overlays.Len())
	}
	top, _ := a.Overlays.Peek()
	picker, ok := top.View.(*TopicPickerModal)
	if !ok {
		t.Fatalf("expected TopicPickerModal on overlay, got %T", top.View)
	}
	if picker.Highlighted() != "Technology" {
		t.Errorf("cursor should start on current topic, got %q", picker.Highlighted())
	}
	if !strings.Contains(m.View(), "Select Topic") {
		t.Errorf("overlay not drawn:\n%s", m.View())
	}

	// Keys go to the picker, not the browser bindings.
	press(m, "]")
	if a.Browser.Selected() != "Technology" {
		t.Error("] must not step while the picker is open")
	}

	press(m, "down", "down", "enter")
	if a.Overlays.Len() != 0 {
		t.Errorf("picker should close after Enter, got %d overlays", a.Overlays.Len())
	}
	if got := a.Browser.Selected(); got != "Sports" {
		t.Errorf("selected = %q, want Sports", got)
	}
}

func TestApp_TopicPickerEscCancels(t *testing.T) {
	a, m := newTestApp(t)
	press(m, " ", "t", "t")
	if a.Overlays.Len() != 1 {
		t.Fatalf("SPC t t should open the picker, got %d overlays", a.Overlays.Len())
	}
	press(m, "down", "esc")
	if a.Overlays.Len() != 0 {
		t.Errorf("esc should dismiss the picker, got %d overlays", a.Overlays.Len())
	}
	if a.Browser.Selected() != "Technology" {
		t.Errorf("esc must not change the selection, got %q", a.Browser.Selected())
	}
}

func TestApp_PickerOpensOnce(t *testing.T) {
	a, m := newTestApp(t)
	m.Update(ShowTopicPickerMsg{})
	m.Update(ShowTopicPickerMsg{})
	if a.Overlays.Len() != 1 {
		t.Errorf("expected a single picker, got %d overlays", a.Overlays.Len())
	}
}

func TestApp_Quit(t *testing.T) {
	for _, keys := range [][]string{{"q"}, {"ctrl+c"}, {" ", "q"}} {
		_, m := newTestApp(t)
		if !press(m, keys...) {
			t.Errorf("%q should quit", keys)
		}
	}
}

func TestApp_CtrlCQuitsFromPicker(t *testing.T) {
	_, m := newTestApp(t)
	press(m, "t")
	if !press(m, "ctrl+c") {
		t.Error("ctrl+c should quit while the picker is open")
	}
	if press(m, "q") {
		t.Error("q inside the picker should not quit")
	}
}

func TestApp_UnknownSelectionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger, err := telemetry.NewLogger(&buf, "debug", "json", "ui")
	if err != nil {
		t.Fatal(err)
	}
	rec := telemetry.NewRecorder(logger, nil, telemetry.SurfaceTerminal)
	a := NewAppModel(context.Background(), browser.New(catalog.Default()), "Spool", rec)
	m := a.AsTeaModel()

	m.Update(SelectTopicMsg{Name: "Weather"})
	if a.Browser.Selected() != "Technology" {
		t.Errorf("unknown topic changed selection to %q", a.Browser.Selected())
	}
	if !strings.Contains(buf.String(), "topic selection rejected") {
		t.Errorf("expected rejection to be logged, got %s", buf.String())
	}
}

func TestApp_SelectionIsRecorded(t *testing.T) {
	var buf bytes.Buffer
	logger, err := telemetry.NewLogger(&buf, "debug", "json", "ui")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	rec := telemetry.NewRecorder(logger, nil, telemetry.SurfaceTerminal)
	b := browser.New(catalog.Default(), browser.WithObserver(rec.Observer(ctx)))
	m := NewAppModel(ctx, b, "Spool", rec).AsTeaModel()

	press(m, "3")
	out := buf.String()
	for _, want := range []string{`"msg":"topic selected"`, `"to":"Sports"`, `"msg":"page rendered"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s:\n%s", want, out)
		}
	}
}

func TestApp_LeaderHelpInView(t *testing.T) {
	_, m := newTestApp(t)
	if strings.Contains(m.View(), "cancel") {
		t.Error("leader help shown before SPC")
	}
	press(m, " ")
	if !strings.Contains(m.View(), "Topic") || !strings.Contains(m.View(), "cancel") {
		t.Errorf("leader help missing after SPC:\n%s", m.View())
	}
}

func TestApp_ViewShowsPage(t *testing.T) {
	_, m := newTestApp(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 100})
	view := m.View()
	for _, want := range []string{"Spool", "News Summarizer", "Technology", "AI Revolution", "Tech Startups", "Read More"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
