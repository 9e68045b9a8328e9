package search_test

import (
	"strings"
	"testing"

	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var records = []entity.Emoji{
	{Unified: "1F600", ShortNames: []string{"grinning"}},
	{Unified: "1F984", ShortNames: []string{"unicorn_face", "unicorn"}},
	{Unified: "1F33D", ShortNames: []string{"corn"}},
	{Unified: "1F354", ShortNames: []string{"hamburger"}},
}

func unifieds(list []entity.Emoji) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Unified
	}
	return out
}

func TestSubstring_MatchesAnyShortName(t *testing.T) {
	got := search.Substring{}.Match("corn", records)
	assert.Equal(t, []string{"1F984", "1F33D"}, unifieds(got))
}

func TestSubstring_CaseInsensitive(t *testing.T) {
	got := search.Substring{}.Match("GRIN", records)
	assert.Equal(t, []string{"1F600"}, unifieds(got))
}

func TestSubstring_NoMatchYieldsEmpty(t *testing.T) {
	got := search.Substring{}.Match("zebra", records)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSubstring_EveryResultContainsQuery(t *testing.T) {
	for _, q := range []string{"a", "u", "n", "ham", "face"} {
		for _, e := range search.Substring{}.Match(q, records) {
			found := false
			for _, name := range e.ShortNames {
				if strings.Contains(strings.ToLower(name), strings.ToLower(q)) {
					found = true
				}
			}
			assert.True(t, found, "%s returned for %q", e.Unified, q)
		}
	}
}

func TestSubstring_EmptyQueryReturnsInput(t *testing.T) {
	assert.Len(t, search.Substring{}.Match("", records), len(records))
}

func TestFuzzy_RanksAndDedupes(t *testing.T) {
	got := search.Fuzzy{}.Match("unicorn", records)
	require.NotEmpty(t, got)
	assert.Equal(t, "1F984", got[0].Unified)

	count := 0
	for _, e := range got {
		if e.Unified == "1F984" {
			count++
		}
	}
	assert.Equal(t, 1, count, "a record matching through two names is listed once")
}

func TestFuzzy_MatchesSubsequence(t *testing.T) {
	got := search.Fuzzy{}.Match("hmbg", records)
	assert.Equal(t, []string{"1F354"}, unifieds(got))
}

func TestForMode(t *testing.T) {
	assert.IsType(t, search.Fuzzy{}, search.ForMode(search.ModeFuzzy))
	assert.IsType(t, search.Substring{}, search.ForMode(search.ModeSubstring))
	assert.IsType(t, search.Substring{}, search.ForMode("whatever"))
}
