package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/search"
)

type countingMatcher struct {
	mu    sync.Mutex
	calls int
}

func (c *countingMatcher) Match(query string, list []entity.Emoji) []entity.Emoji {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return search.Substring{}.Match(query, list)
}

func fixtures() []entity.Emoji {
	return []entity.Emoji{
		{Unified: "1F600", ShortNames: []string{"grinning"}, Category: "Smileys & Emotion"},
		{Unified: "1F984", ShortNames: []string{"unicorn", "unicorn_face"}, Category: "Animals & Nature"},
		{Unified: "1F354", ShortNames: []string{"hamburger"}, Category: "Food & Drink"},
	}
}

func TestMatcher_CachesRepeatedQueries(t *testing.T) {
	inner := &countingMatcher{}
	m := NewMatcher(inner, 4)
	list := fixtures()

	first := m.Match("uni", list)
	second := m.Match("uni", list)

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, 1, m.Len())
}

func TestMatcher_KeyIncludesList(t *testing.T) {
	inner := &countingMatcher{}
	m := NewMatcher(inner, 4)
	list := fixtures()

	assert.Len(t, m.Match("u", list), 2)
	assert.Len(t, m.Match("u", list[2:]), 1)
	assert.Equal(t, 2, inner.calls)
}

func TestMatcher_EvictsLeastRecentlyUsed(t *testing.T) {
	inner := &countingMatcher{}
	m := NewMatcher(inner, 2)
	list := fixtures()

	m.Match("a", list)
	m.Match("b", list)
	m.Match("a", list) // a is now most recent
	m.Match("c", list) // evicts b
	require.Equal(t, 3, inner.calls)
	assert.Equal(t, 2, m.Len())

	m.Match("a", list)
	assert.Equal(t, 3, inner.calls)

	m.Match("b", list)
	assert.Equal(t, 4, inner.calls)
}

func TestMatcher_EmptyListBypassesCache(t *testing.T) {
	inner := &countingMatcher{}
	m := NewMatcher(inner, 0)

	assert.Empty(t, m.Match("x", nil))
	assert.Empty(t, m.Match("x", nil))
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, m.Len())
}

func TestMatcher_ConcurrentAccess(t *testing.T) {
	m := NewMatcher(search.Substring{}, 8)
	list := fixtures()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := []string{"g", "u", "h", "ni"}[i%4]
			m.Match(q, list)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, m.Len(), 8)
}
