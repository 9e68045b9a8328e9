// Package config loads, validates and watches the emojipick configuration.
package config

// Config represents the complete configuration for emojipick.
type Config struct {
	Picker     PickerConfig     `mapstructure:"picker" yaml:"picker" toml:"picker" json:"picker"`
	Search     SearchConfig     `mapstructure:"search" yaml:"search" toml:"search" json:"search"`
	History    HistoryConfig    `mapstructure:"history" yaml:"history" toml:"history" json:"history"`
	Dataset    DatasetConfig    `mapstructure:"dataset" yaml:"dataset" toml:"dataset" json:"dataset"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// Language selects the locale of category labels (e.g. "en", "fr"). Empty follows $LANG.
	Language string `mapstructure:"language" yaml:"language" toml:"language" json:"language"`
}

// PickerConfig holds the interactive picker options.
type PickerConfig struct {
	// Columns is the number of grid columns.
	Columns int `mapstructure:"columns" yaml:"columns" toml:"columns" json:"columns" jsonschema:"minimum=1,maximum=32"`
	// Theme overrides the palette accent colour (#RRGGBB). Empty keeps the palette accent.
	Theme string `mapstructure:"theme" yaml:"theme" toml:"theme" json:"theme"`
	// DefaultCategory is the tab shown on open.
	DefaultCategory string `mapstructure:"default_category" yaml:"default_category" toml:"default_category" json:"default_category"`
	ShowHistory     bool   `mapstructure:"show_history" yaml:"show_history" toml:"show_history" json:"show_history"`
	CloseOnSelect   bool   `mapstructure:"close_on_select" yaml:"close_on_select" toml:"close_on_select" json:"close_on_select"`
	// CopyToClipboard copies the selected glyph in addition to printing it.
	CopyToClipboard bool `mapstructure:"copy_to_clipboard" yaml:"copy_to_clipboard" toml:"copy_to_clipboard" json:"copy_to_clipboard"` //nolint:lll // struct tags must stay on one line
}

// SearchMode selects the search matcher.
type SearchMode string

const (
	SearchModeSubstring SearchMode = "substring"
	SearchModeFuzzy     SearchMode = "fuzzy"
)

// SearchConfig holds search options.
type SearchConfig struct {
	// Mode "substring" keeps results in dataset order. Mode "fuzzy" ranks them by
	// match score, so results are no longer a subsequence of the full list.
	Mode SearchMode `mapstructure:"mode" yaml:"mode" toml:"mode" json:"mode" jsonschema:"enum=substring,enum=fuzzy" jsonschema_description:"substring keeps dataset order; fuzzy ranks results by match score instead of dataset order"` //nolint:lll // struct tags must stay on one line
}

// HistoryBackend selects where the recently used list is stored.
type HistoryBackend string

const (
	HistoryBackendSQLite HistoryBackend = "sqlite"
	HistoryBackendDiskv  HistoryBackend = "diskv"
	HistoryBackendMemory HistoryBackend = "memory"
)

// HistoryConfig holds recently used list configuration.
type HistoryConfig struct {
	Backend HistoryBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=diskv,enum=memory"`
	// Key is the storage key of the list.
	Key string `mapstructure:"key" yaml:"key" toml:"key" json:"key"`
	// MaxEntries caps the list length. 0 keeps every entry.
	MaxEntries int `mapstructure:"max_entries" yaml:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=0"`
	// Path is the sqlite file or diskv directory. Empty uses the XDG data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// DatasetConfig points at an external emoji-datasource file.
type DatasetConfig struct {
	// Path to emoji.json. Empty uses the built-in dataset.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=json,enum=console"`

	// File output configuration
	File       bool `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
	MaxSizeMB  int  `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}

// AppearanceConfig holds terminal colours.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette contains semantic color tokens.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}
