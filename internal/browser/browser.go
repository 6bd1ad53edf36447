// Package browser is the topic browser view-model: one selected topic, a
// catalog to read from, and a pure render step producing a display
// description that front-ends draw however they like.
package browser

import (
	"errors"
	"fmt"

	"spool/internal/catalog"
)

// Heading is the page heading shown above the topic grid.
const Heading = "News Summarizer"

// ReadMore is the label of the per-card action. It has no target.
const ReadMore = "Read More"

// ErrUnknownTopic is returned by Select for names not in the catalog.
var ErrUnknownTopic = errors.New("unknown topic")

// Observer is notified after the selection changes.
type Observer func(from, to string)

// Option configures a Browser.
type Option func(*Browser)

// WithObserver registers fn to run after every selection change.
func WithObserver(fn Observer) Option {
	return func(b *Browser) {
		if fn != nil {
			b.observers = append(b.observers, fn)
		}
	}
}

// WithInitialTopic starts the browser on name instead of the catalog default.
// Names not in the catalog are ignored.
func WithInitialTopic(name string) Option {
	return func(b *Browser) {
		if b.catalog.Has(name) {
			b.selected = name
		}
	}
}

// Browser owns the selection state. It is not safe for concurrent use;
// each front-end instance owns its own Browser.
type Browser struct {
	catalog   *catalog.Catalog
	selected  string
	observers []Observer
}

// New creates a browser selecting the catalog's default topic.
func New(cat *catalog.Catalog, opts ...Option) *Browser {
	b := &Browser{
		catalog:  cat,
		selected: cat.DefaultTopic(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Selected returns the currently selected topic.
func (b *Browser) Selected() string {
	return b.selected
}

// Topics returns the selectable topics in catalog order.
func (b *Browser) Topics() []string {
	return b.catalog.Keys()
}

// Select replaces the selection with name.
// Selecting the current topic is a no-op and reports changed=false.
func (b *Browser) Select(name string) (changed bool, err error) {
	if !b.catalog.Has(name) {
		return false, fmt.Errorf("%w: %q", ErrUnknownTopic, name)
	}
	if name == b.selected {
		return false, nil
	}
	from := b.selected
	b.selected = name
	for _, fn := range b.observers {
		fn(from, name)
	}
	return true, nil
}

// Step moves the selection by delta positions, wrapping around the catalog.
func (b *Browser) Step(delta int) (changed bool, err error) {
	n := b.catalog.Len()
	pos := b.catalog.Position(b.selected)
	next := ((pos+delta)%n + n) % n
	name, _ := b.catalog.At(next)
	return b.Select(name)
}

// Render projects the current selection into a Page.
func (b *Browser) Render() Page {
	return Render(b.catalog, b.selected)
}
