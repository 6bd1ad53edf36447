package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"spool/internal/browser"
	"spool/internal/ui/textutil"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// headerHeight covers the shell title, dropdown (3 lines), heading and a blank line.
	headerHeight = 6
	footerHeight = 1
)

// BrowserView draws a browser.Page: topic dropdown, heading, a scrollable
// card grid and the key help bar.
type BrowserView struct {
	page     browser.Page
	title    string
	viewport viewport.Model
	help     help.Model
	keys     browseKeyMap
	width    int
	height   int
}

// Ensure BrowserView implements View.
var _ View = (*BrowserView)(nil)

// NewBrowserView creates a view for page inside a shell titled title.
func NewBrowserView(title string, page browser.Page) *BrowserView {
	v := &BrowserView{
		title:    title,
		viewport: viewport.New(defaultWidth, defaultHeight-headerHeight-footerHeight),
		help:     newHelpModel(),
		keys:     newBrowseKeyMap(len(page.Choices)),
	}
	v.resize(defaultWidth, defaultHeight)
	v.SetPage(page)
	return v
}

// Page returns the page being displayed.
func (v *BrowserView) Page() browser.Page {
	return v.page
}

// SetPage replaces the displayed page and scrolls back to the top.
func (v *BrowserView) SetPage(p browser.Page) {
	v.page = p
	v.viewport.SetContent(RenderGrid(p.Cards, v.width))
	v.viewport.GotoTop()
}

func (v *BrowserView) resize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-headerHeight-footerHeight, 1)
	v.help.Width = width
}

// Init implements View.
func (v *BrowserView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *BrowserView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.resize(msg.Width, msg.Height)
		v.viewport.SetContent(RenderGrid(v.page.Cards, v.width))
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *BrowserView) View() string {
	var b strings.Builder
	b.WriteString(Styles.AppTitle.Render(v.title) + "\n")
	b.WriteString(v.dropdown() + "\n")
	b.WriteString(Styles.Title.Render(v.page.Heading) + "\n\n")
	b.WriteString(v.viewport.View() + "\n")
	b.WriteString(v.help.View(v.keys))
	return b.String()
}

// dropdown renders the closed topic selector followed by the topic strip.
func (v *BrowserView) dropdown() string {
	width := 0
	for _, c := range v.page.Choices {
		width = max(width, textutil.Width(c.Name))
	}
	current := Styles.Dropdown.Render(textutil.PadRight(v.page.Selected, width) + " ▾")

	strip := make([]string, len(v.page.Choices))
	for i, c := range v.page.Choices {
		label := fmt.Sprintf("%d %s", i+1, c.Name)
		if c.Selected {
			strip[i] = Styles.TopicActive.Render(label)
		} else {
			strip[i] = Styles.TopicInactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, current, "  ", strings.Join(strip, "  "))
}
