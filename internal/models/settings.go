// Package models defines the persisted data types.
package models

import (
	"fmt"

	"github.com/watchfire-io/algosort/internal/sequence"
)

// LoggingConfig controls the session transcript.
type LoggingConfig struct {
	Dir     string `yaml:"dir"`     // relative paths resolve against the working directory
	Ask     bool   `yaml:"ask"`     // ask at start-up whether to record the session
	Enabled bool   `yaml:"enabled"` // used when ask is false
}

// GeneratorConfig controls the start-up sequence.
type GeneratorConfig struct {
	InitialSize int `yaml:"initial_size"`
}

// Settings represents global application settings.
// This corresponds to ~/.algosort/settings.yaml.
type Settings struct {
	Version   int             `yaml:"version"`
	Logging   LoggingConfig   `yaml:"logging"`
	Generator GeneratorConfig `yaml:"generator"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Logging: LoggingConfig{
			Dir: "Logs",
			Ask: true,
		},
		Generator: GeneratorConfig{
			InitialSize: sequence.DefaultSize,
		},
	}
}

// Validate checks values that cannot be corrected silently.
func (s *Settings) Validate() error {
	if s.Logging.Dir == "" {
		return fmt.Errorf("logging.dir must not be empty")
	}
	if n := s.Generator.InitialSize; !sequence.ValidSize(n) {
		return fmt.Errorf("generator.initial_size %d out of range [%d, %d]", n, sequence.MinSize, sequence.MaxSize)
	}
	return nil
}
