package picker_test

import (
	"errors"
	"testing"

	"github.com/bnema/emojipick/internal/domain/catalog"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/picker"
	"github.com/bnema/emojipick/internal/domain/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	grinning = entity.Emoji{Unified: "1F600", Category: "Smileys & Emotion", ShortNames: []string{"grinning"}, SortOrder: 1}
	unicorn  = entity.Emoji{Unified: "1F984", Category: "Animals & Nature", ShortNames: []string{"unicorn"}, SortOrder: 1}
)

func scenarioCatalog() *catalog.Catalog {
	return catalog.New([]entity.Emoji{grinning, unicorn})
}

func readyState(t *testing.T) picker.State {
	t.Helper()
	s, _ := picker.Reduce(picker.NewState(6, entity.CategoryAll), picker.LayoutMeasured{Width: 300})
	require.True(t, s.Ready)
	return s
}

func unifieds(list []entity.Emoji) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Unified
	}
	return out
}

func TestNewState_Defaults(t *testing.T) {
	s := picker.NewState(0, "bogus")

	assert.Equal(t, picker.DefaultColumns, s.Columns)
	assert.Equal(t, entity.CategoryAll, s.ActiveCategory)
	assert.Equal(t, picker.Initializing, s.Phase())
	assert.Empty(t, s.SearchQuery)
}

func TestLayoutMeasured(t *testing.T) {
	s := picker.NewState(6, entity.CategoryAll)

	s, _ = picker.Reduce(s, picker.LayoutMeasured{Width: 0})
	assert.Equal(t, picker.Initializing, s.Phase())
	assert.Zero(t, s.ColumnSize)

	s, _ = picker.Reduce(s, picker.LayoutMeasured{Width: -10})
	assert.Equal(t, picker.Initializing, s.Phase())

	s, _ = picker.Reduce(s, picker.LayoutMeasured{Width: 300})
	assert.Equal(t, picker.Ready, s.Phase())
	assert.Equal(t, 50, s.ColumnSize)

	s, _ = picker.Reduce(s, picker.LayoutMeasured{Width: 0})
	assert.Equal(t, picker.Ready, s.Phase(), "ready never reverts")
	assert.Equal(t, 50, s.ColumnSize)

	s, _ = picker.Reduce(s, picker.LayoutMeasured{Width: 125})
	assert.Equal(t, 20, s.ColumnSize, "column size is floored")
}

func TestColumnsChanged(t *testing.T) {
	s := readyState(t)

	s, _ = picker.Reduce(s, picker.ColumnsChanged{Columns: 10})
	assert.Equal(t, 10, s.Columns)
	assert.Equal(t, 30, s.ColumnSize)

	s, _ = picker.Reduce(s, picker.ColumnsChanged{Columns: 0})
	assert.Equal(t, 10, s.Columns, "non-positive column counts are ignored")
}

func TestCategorySelected_IgnoredUntilReady(t *testing.T) {
	s := picker.NewState(6, entity.CategoryAll)
	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "x"})

	next, eff := picker.Reduce(s, picker.CategorySelected{Key: entity.CategoryFood})
	assert.Equal(t, s, next)
	assert.True(t, eff.None())
}

func TestCategorySelected_ClearsSearchAndScrolls(t *testing.T) {
	s := readyState(t)
	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "corn"})
	s, _ = picker.Reduce(s, picker.CursorMoved{Delta: 1, Len: 5})
	s.ScrollToTop = false

	s, _ = picker.Reduce(s, picker.CategorySelected{Key: entity.CategoryNature})

	assert.Equal(t, entity.CategoryNature, s.ActiveCategory)
	assert.Empty(t, s.SearchQuery)
	assert.Zero(t, s.Cursor)
	assert.True(t, s.ScrollToTop)
}

func TestCategorySelected_UnknownKey(t *testing.T) {
	s := readyState(t)
	next, _ := picker.Reduce(s, picker.CategorySelected{Key: "component"})
	assert.Equal(t, entity.CategoryAll, next.ActiveCategory)
}

func TestCategoryCycled_Wraps(t *testing.T) {
	s := readyState(t)

	s, _ = picker.Reduce(s, picker.CategoryCycled{Delta: -1})
	assert.Equal(t, entity.CategoryFlags, s.ActiveCategory)

	s, _ = picker.Reduce(s, picker.CategoryCycled{Delta: 1})
	assert.Equal(t, entity.CategoryAll, s.ActiveCategory)

	s, _ = picker.Reduce(s, picker.CategoryCycled{Delta: 2})
	assert.Equal(t, entity.CategoryEmotion, s.ActiveCategory)
}

func TestSearchChanged_KeepsCategory(t *testing.T) {
	s := picker.NewState(6, entity.CategoryFood)

	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "corn"})
	assert.Equal(t, "corn", s.SearchQuery)
	assert.Equal(t, entity.CategoryFood, s.ActiveCategory)
	assert.True(t, s.Searching())
}

func TestCursorMoved_Clamps(t *testing.T) {
	s := readyState(t)

	s, _ = picker.Reduce(s, picker.CursorMoved{Delta: -1, Len: 10})
	assert.Zero(t, s.Cursor)

	s, _ = picker.Reduce(s, picker.CursorMoved{Delta: 6, Len: 10})
	assert.Equal(t, 6, s.Cursor)

	s, _ = picker.Reduce(s, picker.CursorMoved{Delta: 6, Len: 10})
	assert.Equal(t, 9, s.Cursor)

	s, _ = picker.Reduce(s, picker.CursorMoved{Delta: 0, Len: 0})
	assert.Zero(t, s.Cursor)
}

func TestEmojiChosen_ProducesEffects(t *testing.T) {
	s := readyState(t)

	next, eff := picker.Reduce(s, picker.EmojiChosen{Emoji: unicorn})
	assert.Equal(t, s, next)
	require.NotNil(t, eff.Record)
	assert.Equal(t, "1F984", eff.Record.Unified)
	assert.Equal(t, "🦄", eff.Glyph)
}

func TestHistoryEvents(t *testing.T) {
	s := readyState(t)

	s, _ = picker.Reduce(s, picker.HistoryLoaded{History: []entity.Emoji{unicorn}})
	assert.Equal(t, []string{"1F984"}, unifieds(s.History))
	assert.NoError(t, s.Err)

	boom := errors.New("corrupt")
	s, _ = picker.Reduce(s, picker.HistoryRecorded{Err: boom})
	assert.Equal(t, []string{"1F984"}, unifieds(s.History), "stale history is kept on error")
	assert.ErrorIs(t, s.Err, boom)

	s, _ = picker.Reduce(s, picker.HistoryRecorded{History: []entity.Emoji{grinning, unicorn}})
	assert.Equal(t, []string{"1F600", "1F984"}, unifieds(s.History))
	assert.NoError(t, s.Err)
}

func TestVisible_Scenario(t *testing.T) {
	c := scenarioCatalog()
	s := readyState(t)

	s, _ = picker.Reduce(s, picker.CategorySelected{Key: entity.CategoryEmotion})
	assert.Equal(t, []string{"1F600"}, unifieds(picker.Visible(s, c, search.Substring{})))

	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "corn"})
	assert.Equal(t, []string{"1F984"}, unifieds(picker.Visible(s, c, search.Substring{})))
}

func TestVisible_AllAndHistory(t *testing.T) {
	c := scenarioCatalog()
	s := readyState(t)

	assert.Len(t, picker.Visible(s, c, nil), c.Len())

	s, _ = picker.Reduce(s, picker.HistoryLoaded{History: []entity.Emoji{unicorn}})
	s, _ = picker.Reduce(s, picker.CategorySelected{Key: entity.CategoryHistory})
	assert.Equal(t, []string{"1F984"}, unifieds(picker.Visible(s, c, nil)))
}

func TestVisible_SearchOverridesHistory(t *testing.T) {
	c := scenarioCatalog()
	s := readyState(t)
	s, _ = picker.Reduce(s, picker.CategorySelected{Key: entity.CategoryHistory})
	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "grin"})

	assert.Equal(t, []string{"1F600"}, unifieds(picker.Visible(s, c, nil)))
}

func TestVisible_SearchWithoutMatches(t *testing.T) {
	c := scenarioCatalog()
	s := readyState(t)
	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "zzz"})

	assert.Empty(t, picker.Visible(s, c, search.Substring{}))
}

func TestVisible_SearchOrderDependsOnMatcher(t *testing.T) {
	unicornFace := entity.Emoji{Unified: "1F984", Category: "Animals & Nature", ShortNames: []string{"unicorn_face"}, SortOrder: 1}
	corn := entity.Emoji{Unified: "1F33D", Category: "Food & Drink", ShortNames: []string{"corn"}, SortOrder: 2}
	c := catalog.New([]entity.Emoji{unicornFace, corn})

	s := readyState(t)
	s, _ = picker.Reduce(s, picker.SearchChanged{Query: "corn"})

	assert.Equal(t, []string{"1F984", "1F33D"}, unifieds(picker.Visible(s, c, search.Substring{})),
		"substring results follow dataset order")
	assert.Equal(t, []string{"1F33D", "1F984"}, unifieds(picker.Visible(s, c, search.Fuzzy{})),
		"fuzzy results are ranked by score")
}
