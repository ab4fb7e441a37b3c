// Package files persists editor configuration and the pattern library
// under the .alva directory. Documents themselves are not persisted
// here.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/01DesignX/alva/pkg/models"
)

const (
	AlvaDir      = ".alva"
	SettingsFile = "settings.yaml"
)

// InitProjectStructure creates the .alva directory and a default
// settings file when none exists.
func InitProjectStructure() error {
	if err := os.MkdirAll(AlvaDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", AlvaDir, err)
	}
	path := filepath.Join(AlvaDir, SettingsFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return WriteSettings(models.DefaultSettings())
}

// ReadSettings loads settings from .alva/settings.yaml, falling back to
// defaults when the file is missing.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(AlvaDir, SettingsFile)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return settings, nil
}

// WriteSettings saves settings to .alva/settings.yaml.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(AlvaDir, SettingsFile)
	if err := os.MkdirAll(AlvaDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", AlvaDir, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
