// Package entity defines domain entities for emojipick.
package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Emoji is a single record of the emoji dataset.
// Field names follow the emoji-datasource JSON schema.
//
// Records are values: they are decoded once and never mutated. Fields that
// emojipick does not model are kept verbatim so that a record read from a
// history blob is written back with the same content.
type Emoji struct {
	Name        string   `json:"name,omitempty"`
	Unified     string   `json:"unified"`
	ShortName   string   `json:"short_name,omitempty"`
	ShortNames  []string `json:"short_names"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	SortOrder   int      `json:"sort_order"`
	AddedIn     string   `json:"added_in,omitempty"`
	ObsoletedBy string   `json:"obsoleted_by,omitempty"`

	// raw holds every field of the source record, including the modelled ones.
	raw map[string]json.RawMessage
}

// emojiFields mirrors Emoji without methods, so it can be (un)marshalled
// without recursing into the custom codec.
type emojiFields struct {
	Name        string   `json:"name,omitempty"`
	Unified     string   `json:"unified"`
	ShortName   string   `json:"short_name,omitempty"`
	ShortNames  []string `json:"short_names"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	SortOrder   int      `json:"sort_order"`
	AddedIn     string   `json:"added_in,omitempty"`
	ObsoletedBy string   `json:"obsoleted_by,omitempty"`
}

// UnmarshalJSON decodes a dataset record and remembers all of its fields.
func (e *Emoji) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var f emojiFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*e = Emoji{
		Name:        f.Name,
		Unified:     f.Unified,
		ShortName:   f.ShortName,
		ShortNames:  f.ShortNames,
		Category:    f.Category,
		Subcategory: f.Subcategory,
		SortOrder:   f.SortOrder,
		AddedIn:     f.AddedIn,
		ObsoletedBy: f.ObsoletedBy,
		raw:         raw,
	}
	return nil
}

// MarshalJSON encodes the record. A decoded record is re-encoded from its
// original fields; a record built in code is encoded from its modelled fields.
func (e Emoji) MarshalJSON() ([]byte, error) {
	if e.raw != nil {
		return json.Marshal(e.raw)
	}
	return json.Marshal(emojiFields{
		Name:        e.Name,
		Unified:     e.Unified,
		ShortName:   e.ShortName,
		ShortNames:  e.ShortNames,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		SortOrder:   e.SortOrder,
		AddedIn:     e.AddedIn,
		ObsoletedBy: e.ObsoletedBy,
	})
}

// Extra returns the raw value of a field that is not modelled by Emoji.
func (e Emoji) Extra(field string) (json.RawMessage, bool) {
	v, ok := e.raw[field]
	return v, ok
}

// IsObsolete returns true if another record supersedes this one.
func (e Emoji) IsObsolete() bool {
	return e.ObsoletedBy != ""
}

// SameAs reports whether both records designate the same code point sequence.
func (e Emoji) SameAs(other Emoji) bool {
	return strings.EqualFold(e.Unified, other.Unified)
}

// Glyph returns the displayable string for the record.
func (e Emoji) Glyph() string {
	return GlyphFromUnified(e.Unified)
}

// Label returns the primary short name, used for display next to the glyph.
func (e Emoji) Label() string {
	if e.ShortName != "" {
		return e.ShortName
	}
	if len(e.ShortNames) > 0 {
		return e.ShortNames[0]
	}
	return strings.ToLower(e.Name)
}

// GlyphFromUnified converts a hyphen separated list of hexadecimal code points
// ("1F468-200D-1F4BB") into the string made of those code points.
// Tokens that are not valid Unicode scalar values are skipped.
func GlyphFromUnified(unified string) string {
	if unified == "" {
		return ""
	}

	var b strings.Builder
	for _, token := range strings.Split(unified, "-") {
		cp, err := strconv.ParseUint(strings.TrimSpace(token), 16, 32)
		if err != nil {
			continue
		}
		r := rune(cp)
		if r > 0x10FFFF || (r >= 0xD800 && r <= 0xDFFF) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
