package i18n_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTranslator_English(t *testing.T) {
	tr, err := i18n.New("en")
	require.NoError(t, err)

	assert.Equal(t, "Search Results", tr.T("picker.search_results"))
	assert.Equal(t, "Smileys & Emotion", tr.T("category.emotion"))
	assert.Equal(t, "History unavailable: boom", tr.TData("picker.history_error", map[string]any{"Error": "boom"}))
	assert.Equal(t, "3 emoji", tr.TCount("picker.count", 3))
}

func TestTranslator_French(t *testing.T) {
	tr, err := i18n.New("fr-FR")
	require.NoError(t, err)

	assert.Equal(t, "Drapeaux", tr.T("category.flags"))
	assert.Equal(t, "1 emoji", tr.TCount("picker.count", 1))
	assert.Equal(t, "2 emojis", tr.TCount("picker.count", 2))
}

func TestTranslator_Fallbacks(t *testing.T) {
	tr, err := i18n.New("ja")
	require.NoError(t, err)
	assert.Equal(t, "Flags", tr.T("category.flags"), "unknown languages fall back to English")
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))

	var nilTr *i18n.Translator
	assert.Equal(t, "category.flags", nilTr.T("category.flags"))
}

func TestDetectLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "fr_FR.UTF-8")
	assert.Equal(t, "fr-FR", i18n.DetectLanguage())

	t.Setenv("LC_ALL", "C")
	assert.Equal(t, "fr-FR", i18n.DetectLanguage(), "the C locale is skipped")

	t.Setenv("LANG", "")
	t.Setenv("LC_ALL", "")
	assert.Equal(t, "en", i18n.DetectLanguage())
}

func TestAvailable(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "fr"}, i18n.Available())
}

func TestLocales_HaveTheSameKeys(t *testing.T) {
	load := func(name string) map[string]any {
		data, err := os.ReadFile(filepath.Join("locales", name))
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, yaml.Unmarshal(data, &m))
		return m
	}

	en := load("active.en.yaml")
	fr := load("active.fr.yaml")
	for key := range en {
		assert.Contains(t, fr, key)
	}
	for key := range fr {
		assert.Contains(t, en, key)
	}

	for _, c := range entity.Categories() {
		assert.Contains(t, en, "category."+string(c.Key))
	}
}

func TestLocales_EnglishCategoriesMatchDatasetNames(t *testing.T) {
	tr, err := i18n.New("en")
	require.NoError(t, err)
	for _, c := range entity.Categories() {
		if c.IsSynthetic() {
			continue
		}
		assert.True(t, strings.EqualFold(c.Name, tr.T("category."+string(c.Key))), c.Key)
	}
}
