package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tallypad/tallypad-cli/pkg/models"
)

const (
	// ConfigDirName is the directory under the user config dir that holds
	// the settings file.
	ConfigDirName = "tallypad"

	// SettingsFile is the settings file name.
	SettingsFile = "settings.yaml"
)

// SettingsPath returns the full path of the settings file.
func SettingsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, ConfigDirName, SettingsFile), nil
}

// ReadSettings loads the settings file, falling back to defaults when the
// file does not exist.
func ReadSettings() (*models.Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return ReadSettingsFrom(path)
}

// ReadSettingsFrom loads settings from an explicit path.
func ReadSettingsFrom(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return settings, nil
}

// WriteSettings writes the settings to the default location, creating the
// config directory if needed.
func WriteSettings(settings *models.Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return WriteSettingsTo(path, settings)
}

// WriteSettingsTo writes settings to an explicit path.
func WriteSettingsTo(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
