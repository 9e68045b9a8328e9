package config

import (
	"fmt"
	"strings"

	"github.com/bnema/emojipick/internal/domain/entity"
	domainvalidation "github.com/bnema/emojipick/internal/domain/validation"
	"golang.org/x/text/language"
)

const maxColumns = 32

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePicker(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLanguage(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePicker(config *Config) []string {
	var validationErrors []string
	if config.Picker.Columns < 1 || config.Picker.Columns > maxColumns {
		validationErrors = append(validationErrors, fmt.Sprintf("picker.columns must be between 1 and %d", maxColumns))
	}
	if config.Picker.Theme != "" && !domainvalidation.IsHexColor(config.Picker.Theme) {
		validationErrors = append(validationErrors, "picker.theme must be empty or a hex color like #RRGGBB")
	}
	if _, ok := entity.ParseCategoryKey(config.Picker.DefaultCategory); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("picker.default_category must be one of: %s", joinCategoryKeys()))
	}
	return validationErrors
}

func joinCategoryKeys() string {
	keys := entity.CategoryKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func validateSearch(config *Config) []string {
	switch config.Search.Mode {
	case SearchModeSubstring, SearchModeFuzzy:
		return nil
	default:
		return []string{"search.mode must be one of: substring, fuzzy"}
	}
}

func validateHistory(config *Config) []string {
	var validationErrors []string
	switch config.History.Backend {
	case HistoryBackendSQLite, HistoryBackendDiskv, HistoryBackendMemory:
	default:
		validationErrors = append(validationErrors, "history.backend must be one of: sqlite, diskv, memory")
	}
	if config.History.Key == "" {
		validationErrors = append(validationErrors, "history.key cannot be empty")
	}
	if config.History.MaxEntries < 0 {
		validationErrors = append(validationErrors, "history.max_entries must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			"logging.level must be one of: trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "text", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: text, console, json")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidateHexColors("appearance.palette",
		domainvalidation.ColorField{Name: "background", Value: p.Background},
		domainvalidation.ColorField{Name: "surface", Value: p.Surface},
		domainvalidation.ColorField{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.ColorField{Name: "text", Value: p.Text},
		domainvalidation.ColorField{Name: "muted", Value: p.Muted},
		domainvalidation.ColorField{Name: "accent", Value: p.Accent},
		domainvalidation.ColorField{Name: "border", Value: p.Border},
	)
}

func validateLanguage(config *Config) []string {
	if config.Language == "" {
		return nil
	}
	if _, err := language.Parse(config.Language); err != nil {
		return []string{fmt.Sprintf("language %q is not a valid BCP 47 tag", config.Language)}
	}
	return nil
}
