package settings

import (
	_ "embed"
	"fmt"
	"os"

	"composedetect/internal/detector"

	"gopkg.in/yaml.v3"
)

//go:embed default_settings.yaml
var defaultSettingsData []byte

// Settings is the effective configuration for a detection run.
type Settings struct {
	TargetKey         string        `yaml:"target_key"`
	Mode              detector.Mode `yaml:"mode"`
	DevcontainerPaths []string      `yaml:"devcontainer_paths"`
}

// Load returns the embedded defaults merged with the file at path, if any.
func Load(path string) (Settings, error) {
	base, err := parse(defaultSettingsData)
	if err != nil {
		return Settings{}, fmt.Errorf("parse default settings: %w", err)
	}

	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("read settings: %w", err)
	}
	user, err := parse(data)
	if err != nil {
		return base, fmt.Errorf("parse settings: %w", err)
	}

	merge(&base, user)
	return base, nil
}

func parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if s.Mode != "" {
		if _, err := detector.ParseMode(string(s.Mode)); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}

func merge(base *Settings, override Settings) {
	if override.TargetKey != "" {
		base.TargetKey = override.TargetKey
	}
	if override.Mode != "" {
		base.Mode = override.Mode
	}
	if len(override.DevcontainerPaths) > 0 {
		base.DevcontainerPaths = override.DevcontainerPaths
	}
}

// DetectorOptions converts the settings into detector options.
func (s Settings) DetectorOptions() detector.Options {
	return detector.Options{Key: s.TargetKey, Mode: s.Mode}
}

// ToYAML renders the settings to YAML.
func (s Settings) ToYAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DefaultYAML returns the embedded default settings YAML.
func DefaultYAML() string {
	return string(defaultSettingsData)
}
