package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/emojipick/internal/domain/catalog"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/search"
	"github.com/bnema/emojipick/internal/logging"
)

// ErrUnknownCategory is returned when a category key does not name a dataset-backed tab.
var ErrUnknownCategory = errors.New("unknown category")

// SearchEmojiUseCase answers non-interactive queries over the catalog.
type SearchEmojiUseCase struct {
	catalog *catalog.Catalog
	matcher search.Matcher
}

// NewSearchEmojiUseCase creates a new emoji search use case.
// A nil matcher falls back to substring matching.
func NewSearchEmojiUseCase(c *catalog.Catalog, m search.Matcher) *SearchEmojiUseCase {
	if m == nil {
		m = search.Substring{}
	}
	return &SearchEmojiUseCase{catalog: c, matcher: m}
}

// SearchInput contains search parameters.
type SearchInput struct {
	Query string
	Limit int
}

// SearchOutput contains search results.
type SearchOutput struct {
	Matches []entity.Emoji
}

// Search matches the query against the flat list. Limit <= 0 returns every match.
func (uc *SearchEmojiUseCase) Search(ctx context.Context, input SearchInput) *SearchOutput {
	log := logging.FromContext(ctx)

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchOutput{Matches: []entity.Emoji{}}
	}

	matches := uc.matcher.Match(query, uc.catalog.All())
	if input.Limit > 0 && len(matches) > input.Limit {
		matches = matches[:input.Limit]
	}

	log.Debug().
		Str("query", query).
		Int("matches", len(matches)).
		Msg("emoji search completed")

	return &SearchOutput{Matches: matches}
}

// List returns the bucket of a dataset-backed category, or the flat list for "all".
func (uc *SearchEmojiUseCase) List(key entity.CategoryKey) ([]entity.Emoji, error) {
	if key == "" || key == entity.CategoryAll {
		return uc.catalog.All(), nil
	}
	cat, ok := entity.CategoryByKey(key)
	if !ok || cat.IsSynthetic() {
		return nil, ErrUnknownCategory
	}
	return uc.catalog.Bucket(key), nil
}

// Counts returns the number of records per category key. History is not counted.
func (uc *SearchEmojiUseCase) Counts() map[entity.CategoryKey]int {
	out := make(map[entity.CategoryKey]int)
	out[entity.CategoryAll] = uc.catalog.Len()
	for _, c := range entity.Categories() {
		if c.IsSynthetic() {
			continue
		}
		out[c.Key] = len(uc.catalog.Bucket(c.Key))
	}
	return out
}
