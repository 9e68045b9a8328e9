// Package cli wires configuration, logging and use cases for the CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/emojipick/internal/application/usecase"
	"github.com/bnema/emojipick/internal/cli/styles"
	"github.com/bnema/emojipick/internal/domain/build"
	"github.com/bnema/emojipick/internal/domain/catalog"
	"github.com/bnema/emojipick/internal/domain/entity"
	"github.com/bnema/emojipick/internal/domain/repository"
	"github.com/bnema/emojipick/internal/domain/search"
	"github.com/bnema/emojipick/internal/i18n"
	"github.com/bnema/emojipick/internal/infrastructure/cache"
	"github.com/bnema/emojipick/internal/infrastructure/clipboard"
	"github.com/bnema/emojipick/internal/infrastructure/config"
	"github.com/bnema/emojipick/internal/infrastructure/dataset"
	"github.com/bnema/emojipick/internal/infrastructure/persistence/diskv"
	"github.com/bnema/emojipick/internal/infrastructure/persistence/memory"
	"github.com/bnema/emojipick/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/emojipick/internal/logging"
)

// Options are the global flags that influence wiring.
type Options struct {
	// ConfigFile overrides the XDG config path.
	ConfigFile string
	// Verbose sends console logs to stderr.
	Verbose bool
	// Ephemeral keeps history in memory for this run.
	Ephemeral bool
}

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	Theme      *styles.Theme
	BuildInfo  build.Info
	Translator *i18n.Translator
	Catalog    *catalog.Catalog
	Matcher    search.Matcher
	Store      repository.KeyValueStore

	// Use cases
	HistoryUC *usecase.ManageHistoryUseCase
	SearchUC  *usecase.SearchEmojiUseCase
	CopyUC    *usecase.CopyGlyphUseCase

	configMgr *config.Manager

	// Context with logger
	ctx        context.Context
	logCleanup func()
	closeOnce  sync.Once
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	var mgrOpts []config.Option
	if opts.ConfigFile != "" {
		mgrOpts = append(mgrOpts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(mgrOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err = mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup, err := newLogger(cfg.Logging, opts.Verbose)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)
	mgr.SetLogger(logger.With().Str("component", "config").Logger())

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Bool("config_loaded", mgr.FileLoaded()).
		Str("history_backend", string(cfg.History.Backend)).
		Msg("configuration loaded")

	backend := cfg.History.Backend
	if opts.Ephemeral {
		backend = config.HistoryBackendMemory
	}

	// The dataset decode and the store setup are independent.
	var (
		cat   *catalog.Catalog
		store repository.KeyValueStore
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, loadErr := catalog.Shared(func() ([]entity.Emoji, error) {
			return dataset.Load(gctx, cfg.Dataset.Path)
		})
		if loadErr != nil {
			return fmt.Errorf("load dataset: %w", loadErr)
		}
		cat = c
		return nil
	})
	g.Go(func() error {
		s, openErr := openStore(gctx, backend, cfg.History.Path)
		if openErr != nil {
			return fmt.Errorf("open history store: %w", openErr)
		}
		store = s
		return nil
	})
	if err = g.Wait(); err != nil {
		if store != nil {
			_ = store.Close()
		}
		logCleanup()
		return nil, err
	}

	stats := cat.Stats()
	logger.Debug().
		Int("kept", stats.Kept).
		Int("obsolete", stats.Obsolete).
		Int("uncategorized", stats.Uncategorized).
		Msg("catalog ready")

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		_ = store.Close()
		logCleanup()
		return nil, fmt.Errorf("load translations: %w", err)
	}
	logger.Debug().Str("language", tr.Lang()).Msg("translations loaded")

	matcher := cache.NewMatcher(search.ForMode(search.Mode(cfg.Search.Mode)), cache.DefaultCapacity)

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(cfg),
		Translator: tr,
		Catalog:    cat,
		Matcher:    matcher,
		Store:      store,
		HistoryUC: usecase.NewManageHistoryUseCase(store, usecase.HistoryOptions{
			Key:        cfg.History.Key,
			MaxEntries: cfg.History.MaxEntries,
		}),
		SearchUC:   usecase.NewSearchEmojiUseCase(cat, matcher),
		CopyUC:     usecase.NewCopyGlyphUseCase(clipboard.New()),
		configMgr:  mgr,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// openStore builds the key-value store for backend. An empty path uses the XDG data directory.
func openStore(ctx context.Context, backend config.HistoryBackend, path string) (repository.KeyValueStore, error) {
	log := logging.FromContext(ctx)

	if backend == config.HistoryBackendMemory {
		log.Debug().Msg("history kept in memory")
		return memory.NewStore(), nil
	}

	if path == "" {
		var err error
		path, err = config.GetHistoryPath(backend)
		if err != nil {
			return nil, err
		}
	}
	log.Debug().Str("backend", string(backend)).Str("path", path).Msg("history store selected")

	switch backend {
	case config.HistoryBackendDiskv:
		return diskv.NewKeyValueStore(path)
	case config.HistoryBackendSQLite:
		// Opened on first use so commands that never read history skip the engine start-up.
		return sqlite.NewKeyValueStore(path), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

// newLogger returns the process logger. The picker owns the terminal, so logs go to a
// rotating file when enabled and are discarded otherwise; verbose mode writes to stderr.
func newLogger(cfg config.LoggingConfig, verbose bool) (zerolog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.Level)
	format := cfg.Format
	if format == "text" {
		format = "console"
	}
	logCfg := logging.Config{Level: level, Format: format, TimeFormat: "15:04:05"}

	if verbose {
		if level > zerolog.DebugLevel {
			logCfg.Level = zerolog.DebugLevel
		}
		return logging.New(logCfg, os.Stderr), func() {}, nil
	}

	if !cfg.File {
		return zerolog.Nop(), func() {}, nil
	}

	path, err := config.GetLogFile()
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("resolve log file: %w", err)
	}
	file, err := logging.NewRotatingFile(path, cfg.MaxSizeMB, cfg.MaxBackups)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(logCfg, file), func() { _ = file.Close() }, nil
}

// WatchConfig calls onChange with every valid reload of the config file.
// It returns config.ErrNoConfigFile when running on defaults.
func (a *App) WatchConfig(onChange func(*config.Config)) error {
	a.configMgr.OnConfigChange(onChange)
	if err := a.configMgr.Watch(); err != nil {
		if !errors.Is(err, config.ErrNoConfigFile) {
			logging.FromContext(a.ctx).Warn().Err(err).Msg("config watch failed")
		}
		return err
	}
	return nil
}

// ConfigFile returns the config file path in use.
func (a *App) ConfigFile() string {
	return a.configMgr.GetConfigFile()
}

// ConfigFileLoaded reports whether a config file was read.
func (a *App) ConfigFileLoaded() bool {
	return a.configMgr.FileLoaded()
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		if a.Store != nil {
			err = a.Store.Close()
		}
		if a.logCleanup != nil {
			a.logCleanup()
		}
	})
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
