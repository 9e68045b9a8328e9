// Package i18n translates the picker's labels. Locale files are embedded YAML
// message files, English being the fallback.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Translator localizes message IDs for one language.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

		files, err := fs.ReadDir(localeFS, "locales")
		if err != nil {
			bundleErr = fmt.Errorf("failed to read locales: %w", err)
			return
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
			if err != nil {
				bundleErr = fmt.Errorf("failed to read locale %s: %w", f.Name(), err)
				return
			}
			if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
				bundleErr = fmt.Errorf("failed to parse locale %s: %w", f.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// New returns a translator for lang. An empty lang is detected from the
// environment; unknown languages fall back to English.
func New(lang string) (*Translator, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	if lang == "" {
		lang = DetectLanguage()
	}
	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(b, lang, language.English.String()),
	}, nil
}

// Lang returns the requested language.
func (t *Translator) Lang() string {
	return t.lang
}

// T translates messageID. Missing messages return the ID itself.
func (t *Translator) T(messageID string) string {
	return t.TData(messageID, nil)
}

// TData translates messageID, filling its template with data.
func (t *Translator) TData(messageID string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return messageID
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// TCount translates a message with plural forms.
func (t *Translator) TCount(messageID string, count int) string {
	if t == nil || t.localizer == nil {
		return messageID
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Available returns the languages with an embedded message file.
func Available() []string {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	tags := b.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

// DetectLanguage reads the POSIX locale variables and returns a BCP 47 tag.
func DetectLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" && v != "C" && v != "POSIX" {
			return posixToBCP47(v)
		}
	}
	return language.English.String()
}

// posixToBCP47 turns "fr_FR.UTF-8@euro" into "fr-FR".
func posixToBCP47(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	return strings.ReplaceAll(v, "_", "-")
}
