package browser

import "spool/internal/catalog"

// Page is the display description of the topic browser.
type Page struct {
	Heading  string
	Selected string
	Choices  []Choice
	Cards    []Card
}

// Choice is one dropdown entry.
type Choice struct {
	Name     string
	Slug     string
	Selected bool
}

// Card is one news card. Action is the label of a button with no target.
type Card struct {
	Title   string
	Summary string
	Action  string
}

// Render builds the Page for selected. It never fails: a selection missing
// from the catalog renders every option unselected and no cards.
func Render(cat *catalog.Catalog, selected string) Page {
	keys := cat.Keys()
	choices := make([]Choice, len(keys))
	for i, k := range keys {
		choices[i] = Choice{Name: k, Slug: catalog.Slug(k), Selected: k == selected}
	}
	items := cat.Items(selected)
	cards := make([]Card, len(items))
	for i, it := range items {
		cards[i] = Card{Title: it.Title, Summary: it.Summary, Action: ReadMore}
	}
	return Page{
		Heading:  Heading,
		Selected: selected,
		Choices:  choices,
		Cards:    cards,
	}
}
