package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorButton    = "63"  // Blue - for the card action button
	ColorCard      = "238" // Dark gray - for card borders
)

// Card geometry. cardContentWidth is the text column inside a card; the frame
// adds a border and one column of padding on each side.
const (
	cardContentWidth = 26
	cardFrameWidth   = cardContentWidth + 4
	cardGap          = 1
	maxGridColumns   = 3
	maxSummaryLines  = 3
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Frame
	AppTitle lipgloss.Style // Shell title bar
	Title    lipgloss.Style // Bold accent color - for the page heading

	// Topic dropdown
	Dropdown      lipgloss.Style // Closed dropdown showing the current topic
	TopicActive   lipgloss.Style // Current topic in the topic strip
	TopicInactive lipgloss.Style // Other topics in the topic strip

	// Cards
	Card        lipgloss.Style // Card frame
	CardTitle   lipgloss.Style // Bold title
	CardSummary lipgloss.Style // Secondary text
	CardButton  lipgloss.Style // "Read More" label

	// Modals
	BoxCompact lipgloss.Style // Compact box with less padding (for lists)
	Selected   lipgloss.Style // Highlighted/selected items (bold highlight color)
	Muted      lipgloss.Style // Dimmed text (muted color)
	Hint       lipgloss.Style // Help/hint text (muted color)
	Empty      lipgloss.Style // Empty state text (muted, italic)
}{
	AppTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Dropdown: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TopicActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	TopicInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorCard)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	CardSummary: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	CardButton: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorButton)),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1).
		Margin(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
