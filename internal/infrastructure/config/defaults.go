package config

// Default configuration constants
const (
	defaultColumns         = 6
	defaultCategory        = "all"
	defaultHistoryKey      = "emojipick:history"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultLogMaxSizeMB    = 5
	defaultLogMaxBackups   = 3
	defaultHistoryBackend  = HistoryBackendSQLite
	defaultSearchMode      = SearchModeSubstring
	defaultCloseOnSelect   = true
	defaultShowHistory     = true
	defaultCopyToClipboard = false
)

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			Columns:         defaultColumns,
			DefaultCategory: defaultCategory,
			ShowHistory:     defaultShowHistory,
			CloseOnSelect:   defaultCloseOnSelect,
			CopyToClipboard: defaultCopyToClipboard,
		},
		Search: SearchConfig{
			Mode: defaultSearchMode,
		},
		History: HistoryConfig{
			Backend: defaultHistoryBackend,
			Key:     defaultHistoryKey,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}
