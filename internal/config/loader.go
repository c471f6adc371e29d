package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/memorize.yaml
var defaultSettingsYAML []byte

const settingsFile = "memorize.yaml"

// Load reads the settings and sanitizes them.
// Search order: customPath -> ~/.arcade/configs/memorize.yaml -> ./configs/memorize.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSettings(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultSettings(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := UserConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", settingsFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings(), nil
	}
	return cfg, nil
}

// Save writes sanitized settings to path, or to the user config path when
// path is empty. Parent directories are created as needed.
func Save(path string, s Settings) error {
	if path == "" {
		path = UserConfigPath()
		if path == "" {
			return fmt.Errorf("config: no home directory for settings")
		}
	}

	data, err := yaml.Marshal(Sanitize(s))
	if err != nil {
		return fmt.Errorf("config: marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}

// UserConfigPath returns the path to the user settings file, or empty if home
// is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", settingsFile)
}

// parse decodes YAML on top of the defaults so missing keys keep their
// default value, then sanitizes the result.
func parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSettings(), err
	}
	return Sanitize(cfg), nil
}
