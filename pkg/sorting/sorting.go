// Package sorting orders items, subsections and sections of a content tree.
package sorting

import (
	"cmp"
	"slices"
	"strings"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/datekey"
)

// Config how to sort a list of items
type Config struct {
	Key Key
	Rev bool
}

// FromContent translates a document sort table, nil stays nil
func FromContent(s *content.Sort) (*Config, error) {
	if s == nil {
		return nil, nil
	}
	k, err := ParseKey(strings.TrimSpace(s.By))
	if err != nil {
		return nil, err
	}
	if k == KeyNone {
		return nil, nil
	}
	return &Config{Key: k, Rev: s.Rev}, nil
}

// sortKey comparison value of an item, missing is set when no field of a date
// chain carries a value
type sortKey struct {
	value   string
	missing bool
}

func (c Config) keyOf(it *content.Item) sortKey {
	if c.Key == KeyTitle {
		return sortKey{value: it.Title}
	}
	for _, v := range c.Key.chain(it) {
		if strings.TrimSpace(v) != "" {
			return sortKey{value: datekey.Normalize(v)}
		}
	}
	return sortKey{missing: true}
}

// Compare builds the item comparator for the given configuration. Items
// without a usable date always end up last, the direction only applies to
// items that have one. The first field of the chain that is not blank wins,
// a whitespace only value counts as missing.
func Compare(c Config) func(a, b *content.Item) int {
	return func(a, b *content.Item) int {
		ka, kb := c.keyOf(a), c.keyOf(b)
		if ka.missing != kb.missing {
			if ka.missing {
				return 1
			}
			return -1
		}
		r := strings.Compare(ka.value, kb.value)
		if c.Rev {
			return -r
		}
		return r
	}
}

// Items sorts items in place. A nil config keeps document order.
func Items(items []*content.Item, c *Config) {
	if c == nil || c.Key == KeyNone {
		return
	}
	slices.SortStableFunc(items, Compare(*c))
}

// Sections orders by explicit order, ties by key
func Sections(sections []*content.Section) {
	slices.SortStableFunc(sections, func(a, b *content.Section) int {
		return cmp.Or(
			cmp.Compare(a.OrderOrDefault(), b.OrderOrDefault()),
			strings.Compare(a.Key, b.Key),
		)
	})
}

// Subsections orders by explicit order, ties by name
func Subsections(subsections []*content.Subsection) {
	slices.SortStableFunc(subsections, func(a, b *content.Subsection) int {
		return cmp.Or(
			cmp.Compare(a.OrderOrDefault(), b.OrderOrDefault()),
			strings.Compare(a.Name, b.Name),
		)
	})
}
