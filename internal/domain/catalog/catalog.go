// Package catalog partitions the emoji dataset into sorted category buckets.
package catalog

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/emojipick/internal/domain/entity"
)

// Catalog is the immutable, pre-sorted view of the dataset used by the picker.
// Slices returned by its methods are shared and must not be modified.
type Catalog struct {
	all     []entity.Emoji
	buckets map[entity.CategoryKey][]entity.Emoji
	index   map[string]int

	obsolete      int
	uncategorized int
}

// New builds a catalog from raw dataset records.
// Obsolete records and records whose category has no tab are left out.
// The flat list is ordered by ascending sort order, ties keep dataset order,
// and each bucket is the subsequence of the flat list for its category.
func New(records []entity.Emoji) *Catalog {
	c := &Catalog{
		buckets: make(map[entity.CategoryKey][]entity.Emoji),
		index:   make(map[string]int, len(records)),
	}

	all := make([]entity.Emoji, 0, len(records))
	for _, e := range records {
		if e.IsObsolete() {
			c.obsolete++
			continue
		}
		if _, ok := entity.CategoryByName(e.Category); !ok {
			c.uncategorized++
			continue
		}
		all = append(all, e)
	}

	slices.SortStableFunc(all, func(a, b entity.Emoji) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	for i, e := range all {
		cat, _ := entity.CategoryByName(e.Category)
		c.buckets[cat.Key] = append(c.buckets[cat.Key], e)
		key := strings.ToUpper(e.Unified)
		if _, seen := c.index[key]; !seen {
			c.index[key] = i
		}
	}

	c.all = all
	return c
}

// All returns every displayable record in sort order.
func (c *Catalog) All() []entity.Emoji {
	return c.all[:len(c.all):len(c.all)]
}

// Bucket returns the records of a category in sort order.
// CategoryAll yields the flat list; CategoryHistory has no static records.
func (c *Catalog) Bucket(key entity.CategoryKey) []entity.Emoji {
	switch key {
	case entity.CategoryAll:
		return c.All()
	case entity.CategoryHistory:
		return nil
	}
	b := c.buckets[key]
	return b[:len(b):len(b)]
}

// Lookup finds a record by its unified code point sequence.
func (c *Catalog) Lookup(unified string) (entity.Emoji, bool) {
	i, ok := c.index[strings.ToUpper(unified)]
	if !ok {
		return entity.Emoji{}, false
	}
	return c.all[i], true
}

// Len returns the number of displayable records.
func (c *Catalog) Len() int {
	return len(c.all)
}

// Stats describes what was dropped while building the catalog.
type Stats struct {
	Kept          int
	Obsolete      int
	Uncategorized int
}

// Stats returns build statistics.
func (c *Catalog) Stats() Stats {
	return Stats{Kept: len(c.all), Obsolete: c.obsolete, Uncategorized: c.uncategorized}
}

// Loader produces the raw dataset records.
type Loader func() ([]entity.Emoji, error)

var shared struct {
	once sync.Once
	cat  *Catalog
	err  error
}

// Shared returns the process-wide catalog, building it with load on first use.
// Later calls return the same catalog (or the same error) and ignore load.
func Shared(load Loader) (*Catalog, error) {
	shared.once.Do(func() {
		records, err := load()
		if err != nil {
			shared.err = err
			return
		}
		shared.cat = New(records)
	})
	return shared.cat, shared.err
}
