// Package picker holds the view state of the emoji picker and the pure
// transition function that drives it.
package picker

import (
	"github.com/bnema/emojipick/internal/domain/catalog"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/search"
)

// DefaultColumns is the grid width used when none is configured.
const DefaultColumns = 6

// Phase is the coarse lifecycle of the picker.
type Phase int

const (
	// Initializing means no usable layout width has been measured yet.
	Initializing Phase = iota
	// Ready means the grid can be laid out. It is never left once entered.
	Ready
)

func (p Phase) String() string {
	if p == Ready {
		return "ready"
	}
	return "initializing"
}

// State is the complete view state of one picker instance.
type State struct {
	SearchQuery    string
	ActiveCategory entity.CategoryKey
	Ready          bool
	History        []entity.Emoji

	// Width is the last measured layout width, ColumnSize the width of one cell.
	Width      int
	ColumnSize int
	Columns    int

	// Cursor indexes the visible list.
	Cursor int
	// ScrollToTop asks the presentation layer to reset its scroll offset.
	ScrollToTop bool
	// Err is the last history error; the previous history is kept alongside it.
	Err error
}

// NewState returns the state of a freshly mounted picker.
func NewState(columns int, category entity.CategoryKey) State {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if _, ok := entity.CategoryByKey(category); !ok {
		category = entity.CategoryAll
	}
	return State{
		ActiveCategory: category,
		Columns:        columns,
	}
}

// Phase returns the lifecycle phase.
func (s State) Phase() Phase {
	if s.Ready {
		return Ready
	}
	return Initializing
}

// Searching reports whether a search query overrides the active category.
func (s State) Searching() bool {
	return s.SearchQuery != ""
}

// Visible derives the list shown in the grid.
// It is exactly one of: the search results over the flat list, the flat list,
// the history, or the bucket of the active category.
// Search results keep dataset order with search.Substring. A ranking matcher
// such as search.Fuzzy reorders them by score, so they are then a subset of
// the flat list rather than a subsequence.
func Visible(s State, c *catalog.Catalog, m search.Matcher) []entity.Emoji {
	switch {
	case s.SearchQuery != "":
		if m == nil {
			m = search.Substring{}
		}
		return m.Match(s.SearchQuery, c.All())
	case s.ActiveCategory == entity.CategoryAll:
		return c.All()
	case s.ActiveCategory == entity.CategoryHistory:
		return s.History
	default:
		return c.Bucket(s.ActiveCategory)
	}
}
