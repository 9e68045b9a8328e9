package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	configFile string
	fileLoaded bool

	log zerolog.Logger
}

// Option customizes a Manager.
type Option func(*Manager)

// WithConfigFile reads path instead of the XDG config file.
func WithConfigFile(path string) Option {
	return func(m *Manager) {
		m.configFile = path
	}
}

// WithLogger sets the logger used by the file watcher.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = logger
	}
}

// SetLogger replaces the logger used by the file watcher.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = logger
}

// NewManager creates a new configuration manager.
func NewManager(opts ...Option) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.configFile == "" {
		configFile, err := GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.configFile = configFile
	}

	v := m.viper
	v.SetConfigFile(m.configFile)
	v.SetConfigType("toml")

	// EMOJIPICK_PICKER_COLUMNS, EMOJIPICK_HISTORY_BACKEND, ...
	v.SetEnvPrefix("EMOJIPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the log settings.
	if err := v.BindEnv("logging.level", "EMOJIPICK_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind EMOJIPICK_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "EMOJIPICK_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind EMOJIPICK_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.build()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.fileLoaded = true
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		m.fileLoaded = false
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
}

// build unmarshals, normalizes and validates the current viper state.
func (m *Manager) build() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	normalizeConfig(config)

	if err := ensureHistoryPath(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureHistoryPath(config *Config) error {
	if config.History.Path != "" {
		return nil
	}
	path, err := GetHistoryPath(config.History.Backend)
	if err != nil {
		return fmt.Errorf("failed to get history path: %w", err)
	}
	config.History.Path = path
	return nil
}

func normalizeConfig(config *Config) {
	config.Search.Mode = SearchMode(strings.ToLower(strings.TrimSpace(string(config.Search.Mode))))
	if config.Search.Mode == "" {
		config.Search.Mode = defaultSearchMode
	}

	config.History.Backend = HistoryBackend(strings.ToLower(strings.TrimSpace(string(config.History.Backend))))
	if config.History.Backend == "" {
		config.History.Backend = defaultHistoryBackend
	}
	config.History.Key = strings.TrimSpace(config.History.Key)

	config.Picker.Theme = strings.TrimSpace(config.Picker.Theme)
	config.Picker.DefaultCategory = strings.ToLower(strings.TrimSpace(config.Picker.DefaultCategory))
	if config.Picker.DefaultCategory == "" {
		config.Picker.DefaultCategory = defaultCategory
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Language = strings.TrimSpace(config.Language)
	config.Dataset.Path = strings.TrimSpace(config.Dataset.Path)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path of the configuration file, whether or not it exists.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// FileLoaded reports whether the last Load found a configuration file.
func (m *Manager) FileLoaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fileLoaded
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPickerDefaults(defaults)
	m.setSearchDefaults(defaults)
	m.setHistoryDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.viper.SetDefault("dataset.path", defaults.Dataset.Path)
	m.viper.SetDefault("language", defaults.Language)
}

func (m *Manager) setPickerDefaults(defaults *Config) {
	m.viper.SetDefault("picker.columns", defaults.Picker.Columns)
	m.viper.SetDefault("picker.theme", defaults.Picker.Theme)
	m.viper.SetDefault("picker.default_category", defaults.Picker.DefaultCategory)
	m.viper.SetDefault("picker.show_history", defaults.Picker.ShowHistory)
	m.viper.SetDefault("picker.close_on_select", defaults.Picker.CloseOnSelect)
	m.viper.SetDefault("picker.copy_to_clipboard", defaults.Picker.CopyToClipboard)
}

func (m *Manager) setSearchDefaults(defaults *Config) {
	m.viper.SetDefault("search.mode", string(defaults.Search.Mode))
}

func (m *Manager) setHistoryDefaults(defaults *Config) {
	m.viper.SetDefault("history.backend", string(defaults.History.Backend))
	m.viper.SetDefault("history.key", defaults.History.Key)
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
	m.viper.SetDefault("history.path", defaults.History.Path)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
