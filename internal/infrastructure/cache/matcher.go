// Package cache memoizes search results for the picker.
package cache

import (
	"container/list"
	"sync"

	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/search"
)

// DefaultCapacity is the number of queries a Matcher remembers.
const DefaultCapacity = 64

// matchKey identifies a query against one backing list.
// Catalog lists are immutable, so the first element and length pin the list.
type matchKey struct {
	query string
	head  *entity.Emoji
	n     int
}

type matchEntry struct {
	key     matchKey
	matches []entity.Emoji
}

// Matcher wraps a search.Matcher with a least recently used result cache.
// Typing and deleting characters in the picker replays the same queries.
// Returned slices are shared between calls and must not be modified.
type Matcher struct {
	inner    search.Matcher
	capacity int

	mu    sync.Mutex
	items map[matchKey]*list.Element
	order *list.List // front = most recent
}

var _ search.Matcher = (*Matcher)(nil)

// NewMatcher returns a caching wrapper around inner.
// A non-positive capacity uses DefaultCapacity.
func NewMatcher(inner search.Matcher, capacity int) *Matcher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Matcher{
		inner:    inner,
		capacity: capacity,
		items:    make(map[matchKey]*list.Element),
		order:    list.New(),
	}
}

// Match implements search.Matcher.
func (m *Matcher) Match(query string, list []entity.Emoji) []entity.Emoji {
	if len(list) == 0 {
		return m.inner.Match(query, list)
	}
	key := matchKey{query: query, head: &list[0], n: len(list)}

	m.mu.Lock()
	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		matches := elem.Value.(*matchEntry).matches
		m.mu.Unlock()
		return matches
	}
	m.mu.Unlock()

	matches := m.inner.Match(query, list)

	m.mu.Lock()
	defer m.mu.Unlock()
	if elem, ok := m.items[key]; ok {
		m.order.MoveToFront(elem)
		return matches
	}
	if m.order.Len() >= m.capacity {
		if oldest := m.order.Back(); oldest != nil {
			m.order.Remove(oldest)
			delete(m.items, oldest.Value.(*matchEntry).key)
		}
	}
	m.items[key] = m.order.PushFront(&matchEntry{key: key, matches: matches})
	return matches
}

// Len returns the number of cached queries.
func (m *Matcher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
