// Package catalog holds the static topic → news item table shown by Spool.
//
// The table is embedded in the binary as YAML, decoded once at first use and
// never mutated afterwards. Lookups are total: unknown topic names yield an
// empty result instead of a failure.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// ErrInvalidCatalog is returned when a catalog document fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// NewsItem is one title/summary pair. It has no identity beyond its position.
type NewsItem struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// Topic is a named, ordered list of news items.
type Topic struct {
	Name  string     `yaml:"name"`
	Items []NewsItem `yaml:"items"`
}

// Catalog is an ordered, read-only set of topics with unique names.
type Catalog struct {
	topics []Topic
	index  map[string]int
	slugs  map[string]string
}

type document struct {
	Topics []Topic `yaml:"topics"`
}

// Load decodes and validates a YAML catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	return New(doc.Topics)
}

// New builds a catalog from topics, keeping their order.
func New(topics []Topic) (*Catalog, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: no topics", ErrInvalidCatalog)
	}
	c := &Catalog{
		topics: make([]Topic, 0, len(topics)),
		index:  make(map[string]int, len(topics)),
		slugs:  make(map[string]string, len(topics)),
	}
	for i, t := range topics {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: topic %d has no name", ErrInvalidCatalog, i)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: duplicate topic %q", ErrInvalidCatalog, name)
		}
		slug := Slug(name)
		if other, dup := c.slugs[slug]; dup {
			return nil, fmt.Errorf("%w: topics %q and %q share slug %q", ErrInvalidCatalog, other, name, slug)
		}
		for j, it := range t.Items {
			if strings.TrimSpace(it.Title) == "" {
				return nil, fmt.Errorf("%w: topic %q item %d has no title", ErrInvalidCatalog, name, j)
			}
		}
		items := make([]NewsItem, len(t.Items))
		copy(items, t.Items)
		c.index[name] = len(c.topics)
		c.slugs[slug] = name
		c.topics = append(c.topics, Topic{Name: name, Items: items})
	}
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(embedded)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
	}
	return c
})

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog()
}

// Keys returns topic names in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.topics))
	for i, t := range c.topics {
		keys[i] = t.Name
	}
	return keys
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Has reports whether name is a topic in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// DefaultTopic returns the first topic's name.
func (c *Catalog) DefaultTopic() string {
	return c.topics[0].Name
}

// Items returns a copy of the topic's items in catalog order.
// Unknown names yield nil.
func (c *Catalog) Items(name string) []NewsItem {
	i, ok := c.index[name]
	if !ok {
		return nil
	}
	items := make([]NewsItem, len(c.topics[i].Items))
	copy(items, c.topics[i].Items)
	return items
}

// At returns the name of the topic at position i (0-based).
func (c *Catalog) At(i int) (string, bool) {
	if i < 0 || i >= len(c.topics) {
		return "", false
	}
	return c.topics[i].Name, true
}

// Position returns the 0-based position of name, or -1.
func (c *Catalog) Position(name string) int {
	i, ok := c.index[name]
	if !ok {
		return -1
	}
	return i
}

// BySlug maps a URL slug back to its topic name.
func (c *Catalog) BySlug(slug string) (string, bool) {
	name, ok := c.slugs[strings.ToLower(slug)]
	return name, ok
}

// Slug normalizes a topic name for URLs and file paths:
// lowercase, spaces replaced with hyphens.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
