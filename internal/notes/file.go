package notes

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// fileNote is one entry of a notes input document. Page and heading are
// assigned by the store, so they are not read.
type fileNote struct {
	Content  string `yaml:"content"`
	Color    string `yaml:"color"`
	FontSize *int   `yaml:"fontSize"`
}

type fileDoc struct {
	Notes []fileNote `yaml:"notes"`
}

// Parse builds a store from a YAML (or JSON) notes document by replaying
// each entry through Add. Missing colors default to black and missing
// font sizes to DefaultFontSize.
func Parse(data []byte, logger *slog.Logger) (*Store, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	s := NewStore(logger)
	for i, fn := range doc.Notes {
		color := fn.Color
		if color == "" {
			color = "#000000"
		}
		size := DefaultFontSize
		if fn.FontSize != nil {
			size = FontSize(*fn.FontSize)
		}
		if _, err := s.Add(fn.Content, color, size); err != nil {
			return nil, fmt.Errorf("add note %d: %w", i, err)
		}
	}
	return s, nil
}

// LoadFile reads a notes document from path.
func LoadFile(path string, logger *slog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}
	return Parse(data, logger)
}
