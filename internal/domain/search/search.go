// Package search filters emoji records by their short names.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"

	"github.com/bnema/emojipick/internal/domain/entity"
)

// Mode selects a matcher.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModeFuzzy     Mode = "fuzzy"
)

// Matcher returns the subsequence of list that matches query.
type Matcher interface {
	Match(query string, list []entity.Emoji) []entity.Emoji
}

// ForMode returns the matcher for mode, defaulting to substring matching.
func ForMode(mode Mode) Matcher {
	if mode == ModeFuzzy {
		return Fuzzy{}
	}
	return Substring{}
}

// Substring keeps records with a short name containing the query,
// compared under Unicode case folding. Order of list is preserved.
type Substring struct{}

// Match implements Matcher.
func (Substring) Match(query string, list []entity.Emoji) []entity.Emoji {
	if query == "" {
		return list
	}

	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]entity.Emoji, 0)
	for _, e := range list {
		for _, name := range e.ShortNames {
			if strings.Contains(fold.String(name), needle) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Fuzzy ranks records by the best fuzzy score of any of their short names.
// Better matches come first.
type Fuzzy struct{}

type nameSource struct {
	names  []string
	owners []int
}

func (s nameSource) String(i int) string { return s.names[i] }
func (s nameSource) Len() int            { return len(s.names) }

// Match implements Matcher.
func (Fuzzy) Match(query string, list []entity.Emoji) []entity.Emoji {
	if query == "" {
		return list
	}

	src := nameSource{}
	for i, e := range list {
		for _, name := range e.ShortNames {
			src.names = append(src.names, name)
			src.owners = append(src.owners, i)
		}
	}

	matches := fuzzy.FindFrom(query, src)
	seen := make(map[int]bool, len(matches))
	out := make([]entity.Emoji, 0, len(matches))
	for _, m := range matches {
		owner := src.owners[m.Index]
		if seen[owner] {
			continue
		}
		seen[owner] = true
		out = append(out, list[owner])
	}
	return out
}
