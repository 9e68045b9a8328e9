package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "emojipick"
	databaseName = "history.sqlite"
	diskvDirName = "history"
	logFileName  = "emojipick.log"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for emojipick:
// - $XDG_CONFIG_HOME/emojipick (default: ~/.config/emojipick)
// - $XDG_DATA_HOME/emojipick (default: ~/.local/share/emojipick)
// - $XDG_STATE_HOME/emojipick (default: ~/.local/state/emojipick)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")), appName),
		DataHome:   filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")), appName),
		StateHome:  filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(homeDir, ".local", "state")), appName),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetConfigDir returns the XDG config directory.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// GetLogFile returns the log file path. Logs are state, not data.
func GetLogFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, logFileName), nil
}

// GetHistoryPath returns the default storage location for a history backend.
// The memory backend has none.
func GetHistoryPath(backend HistoryBackend) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	switch backend {
	case HistoryBackendDiskv:
		return filepath.Join(dirs.DataHome, diskvDirName), nil
	case HistoryBackendMemory:
		return "", nil
	default:
		return filepath.Join(dirs.DataHome, databaseName), nil
	}
}
