// Package settings persists user preferences for jobclip as a JSON file
// under the user config directory.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobclip/internal/relay"
)

// EnvConfigDir overrides the settings directory when set. Used mainly by
// tests and containerized setups.
const EnvConfigDir = "JOBCLIP_CONFIG_DIR"

// fileName is the settings file name inside the config directory.
const fileName = "settings.json"

// ErrUnknownKey is returned by Set for keys that do not map to a setting.
var ErrUnknownKey = errors.New("unknown settings key")

// Settings holds the user-editable preferences. APIBaseURL must be a valid
// URL; the other fields are plain toggles.
type Settings struct {
	AutoExtract       bool   `json:"autoExtract"`
	ShowNotifications bool   `json:"showNotifications"`
	APIBaseURL        string `json:"apiBaseUrl" validate:"required,url"`
}

var validate = validator.New()

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		AutoExtract:       true,
		ShowNotifications: true,
		APIBaseURL:        relay.DefaultBaseURL,
	}
}

// Path returns the settings file location.
func Path() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, fileName), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(configDir, "jobclip", fileName), nil
}

// Load reads settings from disk. A missing file is not an error: defaults
// are returned so first runs work without any setup.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return s, nil
}

// Validate checks the settings for well-formedness. An invalid API base URL
// is the main rejection case.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("invalid value for %s", fieldErrs[0].Field())
		}
		return err
	}
	return nil
}

// Save validates and writes the settings to disk. An invalid value never
// reaches the file, so the prior valid settings are retained.
func Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return nil
}

// Set updates one setting by its CLI key, persisting the result. The write
// only happens after validation, so a bad value leaves the file untouched.
func Set(key, value string) (Settings, error) {
	s, err := Load()
	if err != nil {
		return s, err
	}

	switch key {
	case "auto-extract":
		b, err := parseBool(value)
		if err != nil {
			return s, err
		}
		s.AutoExtract = b
	case "notifications":
		b, err := parseBool(value)
		if err != nil {
			return s, err
		}
		s.ShowNotifications = b
	case "api-url":
		s.APIBaseURL = value
	default:
		return s, fmt.Errorf("%w: %q (valid keys: auto-extract, notifications, api-url)", ErrUnknownKey, key)
	}

	if err := Save(s); err != nil {
		return s, err
	}
	return s, nil
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true", "on", "1", "yes":
		return true, nil
	case "false", "off", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected a boolean value, got %q", value)
	}
}
