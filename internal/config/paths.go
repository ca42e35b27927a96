package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".noted"

// SettingsFileName is the settings file inside the data directory.
const SettingsFileName = "config.toml"

// DataDir returns the base directory for noted's files.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// SettingsPath returns the path to the settings file.
func SettingsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, SettingsFileName), nil
}

// UILogPath returns the log file the TUI writes to while it owns the
// terminal.
func UILogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "ui.log"), nil
}
