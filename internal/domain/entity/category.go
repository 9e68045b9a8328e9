package entity

import "strings"

// CategoryKey identifies a tab of the picker.
type CategoryKey string

// Category keys, in tab order.
const (
	CategoryAll        CategoryKey = "all"
	CategoryHistory    CategoryKey = "history"
	CategoryEmotion    CategoryKey = "emotion"
	CategoryPeople     CategoryKey = "people"
	CategoryNature     CategoryKey = "nature"
	CategoryFood       CategoryKey = "food"
	CategoryActivities CategoryKey = "activities"
	CategoryPlaces     CategoryKey = "places"
	CategoryObjects    CategoryKey = "objects"
	CategorySymbols    CategoryKey = "symbols"
	CategoryFlags      CategoryKey = "flags"
)

// Category describes a picker tab.
// Name matches the "category" field of dataset records, except for the
// synthetic all and history categories which no record carries.
type Category struct {
	Key    CategoryKey `json:"key"`
	Symbol string      `json:"symbol"`
	Name   string      `json:"name"`
}

// IsSynthetic returns true for categories that are not backed by dataset records.
func (c Category) IsSynthetic() bool {
	return c.Key == CategoryAll || c.Key == CategoryHistory
}

var categories = []Category{
	{Key: CategoryAll, Symbol: "All", Name: "All"},
	{Key: CategoryHistory, Symbol: "🕘", Name: "Recently used"},
	{Key: CategoryEmotion, Symbol: "😀", Name: "Smileys & Emotion"},
	{Key: CategoryPeople, Symbol: "🧑", Name: "People & Body"},
	{Key: CategoryNature, Symbol: "🦄", Name: "Animals & Nature"},
	{Key: CategoryFood, Symbol: "🍔", Name: "Food & Drink"},
	{Key: CategoryActivities, Symbol: "⚾️", Name: "Activities"},
	{Key: CategoryPlaces, Symbol: "✈️", Name: "Travel & Places"},
	{Key: CategoryObjects, Symbol: "💡", Name: "Objects"},
	{Key: CategorySymbols, Symbol: "🔣", Name: "Symbols"},
	{Key: CategoryFlags, Symbol: "🏳️‍🌈", Name: "Flags"},
}

// Categories returns the category table in tab order.
// The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryKeys returns the category keys in tab order.
func CategoryKeys() []CategoryKey {
	keys := make([]CategoryKey, len(categories))
	for i, c := range categories {
		keys[i] = c.Key
	}
	return keys
}

// CategoryByKey returns the category with the given key.
func CategoryByKey(key CategoryKey) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByName returns the non-synthetic category whose dataset name matches.
func CategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if !c.IsSynthetic() && c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIndex returns the tab position of key, or -1.
func CategoryIndex(key CategoryKey) int {
	for i, c := range categories {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// ParseCategoryKey accepts a key ("nature") or a dataset name ("Animals & Nature"),
// case-insensitively.
func ParseCategoryKey(s string) (CategoryKey, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c.Key), s) || strings.EqualFold(c.Name, s) {
			return c.Key, true
		}
	}
	return "", false
}
