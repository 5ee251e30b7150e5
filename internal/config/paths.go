// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global algosort directory.
	GlobalDirName = ".algosort"

	// SettingsFileName is the name of the settings file within the global directory.
	SettingsFileName = "settings.yaml"
)

// userHomeDir is swapped out by tests.
var userHomeDir = os.UserHomeDir

// GlobalDir returns the path to the global algosort directory (~/.algosort/).
func GlobalDir() (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}
