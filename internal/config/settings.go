package config

import (
	"fmt"

	"github.com/watchfire-io/algosort/internal/models"
)

// LoadSettings loads the global settings from ~/.algosort/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings saves the global settings to ~/.algosort/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
