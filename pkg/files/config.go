package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/inkwell-md/inkwell/pkg/models"
)

const (
	// AppDirName is the directory under the platform config dir holding
	// settings, the recent-files list, and the log file.
	AppDirName   = "inkwell"
	SettingsFile = "settings.yaml"
	RecentsFile  = "recent.yaml"
	LogFile      = "inkwell.log"
)

// configDir is swapped out by tests.
var configDir = defaultConfigDir

func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// ConfigDir returns the application config directory, creating it if needed.
func ConfigDir() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}

// LogPath returns the path of the application log file.
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFile), nil
}

// LoadSettings reads settings from the config directory. A missing file is
// a first launch and yields defaults with no error. A corrupt or invalid
// file also yields defaults, with the error returned so callers can log it.
func LoadSettings() (*models.Settings, error) {
	dir, err := ConfigDir()
	if err != nil {
		return models.DefaultSettings(), err
	}

	path := filepath.Join(dir, SettingsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.DefaultSettings(), nil
		}
		return models.DefaultSettings(), fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return models.DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return models.DefaultSettings(), fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes settings to the config directory.
func SaveSettings(settings *models.Settings) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	path := filepath.Join(dir, SettingsFile)
	if err := os.WriteFile(path, data, DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// LoadRecent reads the persisted recent-files list. A missing file yields
// an empty list.
func LoadRecent() ([]models.RecentFile, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, RecentsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read recent files: %w", err)
	}

	var recent []models.RecentFile
	if err := yaml.Unmarshal(data, &recent); err != nil {
		return nil, fmt.Errorf("failed to parse recent files: %w", err)
	}
	return recent, nil
}

// SaveRecent writes the recent-files list to the config directory.
func SaveRecent(recent []models.RecentFile) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(recent)
	if err != nil {
		return fmt.Errorf("failed to marshal recent files: %w", err)
	}
	path := filepath.Join(dir, RecentsFile)
	if err := os.WriteFile(path, data, DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write recent files: %w", err)
	}
	return nil
}

// ConfigStore adapts the config-dir persistence functions to the interfaces
// consumed by the workspace package.
type ConfigStore struct{}

func (ConfigStore) LoadRecent() ([]models.RecentFile, error) { return LoadRecent() }

func (ConfigStore) SaveRecent(recent []models.RecentFile) error { return SaveRecent(recent) }
