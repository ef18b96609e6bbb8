package config

import (
	"github.com/marcus/notepad/internal/colorutil"
	"github.com/marcus/notepad/internal/export"
	"github.com/marcus/notepad/internal/notes"
)

// Config is the root configuration structure.
type Config struct {
	UI     UIConfig     `json:"ui"`
	Editor EditorConfig `json:"editor"`
	Export ExportConfig `json:"export"`
	Keymap KeymapConfig `json:"keymap"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	DarkMode   bool `json:"darkMode"`   // initial theme; toggling is not saved
	ShowFooter bool `json:"showFooter"` // key hint footer
}

// EditorConfig holds the values the editor panel starts with and resets to
// after each submit.
type EditorConfig struct {
	DefaultColor    string         `json:"defaultColor"`
	DefaultFontSize notes.FontSize `json:"defaultFontSize"`
}

// ExportConfig configures where the PDF is written.
type ExportConfig struct {
	FileName string `json:"fileName"`
	Dir      string `json:"dir"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ShowFooter: true,
		},
		Editor: EditorConfig{
			DefaultColor:    "#000000",
			DefaultFontSize: notes.DefaultFontSize,
		},
		Export: ExportConfig{
			FileName: export.DefaultFileName,
			Dir:      ".",
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate checks the configuration and replaces unusable values with
// defaults.
func (c *Config) Validate() error {
	if !c.Editor.DefaultFontSize.Valid() {
		c.Editor.DefaultFontSize = notes.DefaultFontSize
	}
	if _, ok := colorutil.Resolve(c.Editor.DefaultColor); !ok {
		c.Editor.DefaultColor = "#000000"
	}
	if c.Export.FileName == "" {
		c.Export.FileName = export.DefaultFileName
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	if c.Keymap.Overrides == nil {
		c.Keymap.Overrides = make(map[string]string)
	}
	return nil
}
