package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/notepad/internal/notes"
)

const (
	configDir  = ".config/notepad"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	UI     rawUIConfig     `json:"ui"`
	Editor rawEditorConfig `json:"editor"`
	Export ExportConfig    `json:"export"`
	Keymap KeymapConfig    `json:"keymap"`
}

type rawUIConfig struct {
	DarkMode   *bool `json:"darkMode"`
	ShowFooter *bool `json:"showFooter"`
}

type rawEditorConfig struct {
	DefaultColor    string `json:"defaultColor"`
	DefaultFontSize *int   `json:"defaultFontSize"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notepad/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // no home dir, defaults only
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	mergeConfig(cfg, &raw)
	cfg.Export.Dir = ExpandPath(cfg.Export.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// UI
	if raw.UI.DarkMode != nil {
		cfg.UI.DarkMode = *raw.UI.DarkMode
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}

	// Editor
	if raw.Editor.DefaultColor != "" {
		cfg.Editor.DefaultColor = strings.TrimSpace(raw.Editor.DefaultColor)
	}
	if raw.Editor.DefaultFontSize != nil {
		cfg.Editor.DefaultFontSize = notes.FontSize(*raw.Editor.DefaultFontSize)
	}

	// Export
	if raw.Export.FileName != "" {
		cfg.Export.FileName = raw.Export.FileName
	}
	if raw.Export.Dir != "" {
		cfg.Export.Dir = raw.Export.Dir
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// Dir returns the directory holding the config file.
func Dir() string {
	if p := ConfigPath(); p != "" {
		return filepath.Dir(p)
	}
	return ""
}
