package picker

import "github.com/bnema/emojipick/internal/domain/entity"

// Event is an input to Reduce.
type Event interface {
	event()
}

// LayoutMeasured reports the width available to the grid.
type LayoutMeasured struct{ Width int }

// CategorySelected is a tap on a category tab.
type CategorySelected struct{ Key entity.CategoryKey }

// CategoryCycled moves the active tab by Delta positions, wrapping around.
type CategoryCycled struct{ Delta int }

// SearchChanged carries the new content of the search field.
type SearchChanged struct{ Query string }

// EmojiChosen is a tap on a grid cell.
type EmojiChosen struct{ Emoji entity.Emoji }

// CursorMoved moves the grid cursor by Delta cells within a list of Len items.
type CursorMoved struct {
	Delta int
	Len   int
}

// ColumnsChanged updates the configured column count.
type ColumnsChanged struct{ Columns int }

// HistoryLoaded completes the initial history read.
type HistoryLoaded struct {
	History []entity.Emoji
	Err     error
}

// HistoryRecorded completes the write that follows a selection.
type HistoryRecorded struct {
	History []entity.Emoji
	Err     error
}

func (LayoutMeasured) event()   {}
func (CategorySelected) event() {}
func (CategoryCycled) event()   {}
func (SearchChanged) event()    {}
func (EmojiChosen) event()      {}
func (CursorMoved) event()      {}
func (ColumnsChanged) event()   {}
func (HistoryLoaded) event()    {}
func (HistoryRecorded) event()  {}

// Effect lists the side effects the caller must perform after a transition.
type Effect struct {
	// Record is the emoji to add to the persisted history, if any.
	Record *entity.Emoji
	// Glyph is the string to hand to the selection callback, if non-empty.
	Glyph string
}

// None reports whether the effect is empty.
func (e Effect) None() bool {
	return e.Record == nil && e.Glyph == ""
}

// Reduce applies ev to s and returns the new state together with the effects
// the transition requires. s is not modified.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case LayoutMeasured:
		s.Width = ev.Width
		if ev.Width > 0 {
			s.ColumnSize = ev.Width / s.columns()
			s.Ready = true
		}

	case ColumnsChanged:
		if ev.Columns > 0 {
			s.Columns = ev.Columns
			if s.Width > 0 {
				s.ColumnSize = s.Width / s.Columns
			}
		}

	case CategorySelected:
		if !s.Ready {
			break
		}
		if _, ok := entity.CategoryByKey(ev.Key); !ok {
			break
		}
		s.SearchQuery = ""
		s.ActiveCategory = ev.Key
		s.Cursor = 0
		s.ScrollToTop = true

	case CategoryCycled:
		if !s.Ready {
			break
		}
		keys := entity.CategoryKeys()
		i := entity.CategoryIndex(s.ActiveCategory)
		next := ((i+ev.Delta)%len(keys) + len(keys)) % len(keys)
		return Reduce(s, CategorySelected{Key: keys[next]})

	case SearchChanged:
		if ev.Query != s.SearchQuery {
			s.Cursor = 0
			s.ScrollToTop = true
		}
		s.SearchQuery = ev.Query

	case CursorMoved:
		if ev.Len <= 0 {
			s.Cursor = 0
			break
		}
		c := s.Cursor + ev.Delta
		if c < 0 {
			c = 0
		}
		if c > ev.Len-1 {
			c = ev.Len - 1
		}
		s.Cursor = c

	case EmojiChosen:
		e := ev.Emoji
		return s, Effect{Record: &e, Glyph: e.Glyph()}

	case HistoryLoaded:
		s.Err = ev.Err
		if ev.Err == nil {
			s.History = ev.History
		}

	case HistoryRecorded:
		s.Err = ev.Err
		if ev.Err == nil {
			s.History = ev.History
		}
	}

	return s, Effect{}
}

func (s State) columns() int {
	if s.Columns <= 0 {
		return DefaultColumns
	}
	return s.Columns
}
