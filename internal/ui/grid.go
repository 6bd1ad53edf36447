package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spool/internal/browser"
	"spool/internal/ui/textutil"
)

// gridColumns returns how many cards fit side by side in width columns.
// Never fewer than one, never more than maxGridColumns.
func gridColumns(width int) int {
	cols := (width + cardGap) / (cardFrameWidth + cardGap)
	if cols < 1 {
		return 1
	}
	if cols > maxGridColumns {
		return maxGridColumns
	}
	return cols
}

// cardBody renders the text inside a card: bold title and wrapped summary.
func cardBody(c browser.Card) string {
	title := Styles.CardTitle.Render(textutil.Truncate(c.Title, cardContentWidth))
	summary := lipgloss.NewStyle().Width(cardContentWidth).Render(c.Summary)
	summary = textutil.ClampLines(summary, maxSummaryLines, cardContentWidth)
	return title + "\n" + Styles.CardSummary.Render(summary)
}

// renderCard frames body, padding it to bodyHeight lines so every card in a
// row ends with its action button on the same line.
func renderCard(c browser.Card, body string, bodyHeight int) string {
	if h := lipgloss.Height(body); h < bodyHeight {
		body += strings.Repeat("\n", bodyHeight-h)
	}
	button := Styles.CardButton.Render("[ " + c.Action + " ]")
	content := lipgloss.NewStyle().
		Width(cardContentWidth).
		Render(body + "\n\n" + lipgloss.PlaceHorizontal(cardContentWidth, lipgloss.Center, button))
	return Styles.Card.Render(content)
}

// RenderGrid lays cards out row by row, left to right, in the order given.
func RenderGrid(cards []browser.Card, width int) string {
	if len(cards) == 0 {
		return Styles.Empty.Render("No stories for this topic.")
	}
	cols := gridColumns(width)
	gap := strings.Repeat(" ", cardGap)

	rows := make([]string, 0, (len(cards)+cols-1)/cols)
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := cards[start:end]

		bodies := make([]string, len(row))
		bodyHeight := 0
		for i, c := range row {
			bodies[i] = cardBody(c)
			bodyHeight = max(bodyHeight, lipgloss.Height(bodies[i]))
		}

		parts := make([]string, 0, 2*len(row)-1)
		for i, c := range row {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, renderCard(c, bodies[i], bodyHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
