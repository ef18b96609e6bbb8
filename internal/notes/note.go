package notes

import (
	"fmt"
	"strconv"
	"strings"
)

// FontSize is the point size a note body is rendered with.
type FontSize int

// Selectable font sizes, in selector order.
const (
	FontSize12 FontSize = 12
	FontSize16 FontSize = 16
	FontSize20 FontSize = 20
	FontSize24 FontSize = 24

	// DefaultFontSize is the selector's initial value.
	DefaultFontSize = FontSize16
)

var fontSizes = []FontSize{FontSize12, FontSize16, FontSize20, FontSize24}

// FontSizes returns the selectable sizes in order.
func FontSizes() []FontSize {
	out := make([]FontSize, len(fontSizes))
	copy(out, fontSizes)
	return out
}

// Valid reports whether s is one of the selectable sizes.
func (s FontSize) Valid() bool {
	return s.index() >= 0
}

func (s FontSize) index() int {
	for i, fs := range fontSizes {
		if fs == s {
			return i
		}
	}
	return -1
}

// Next returns the following selectable size, wrapping around.
// Sizes outside the set step to the default.
func (s FontSize) Next() FontSize {
	i := s.index()
	if i < 0 {
		return DefaultFontSize
	}
	return fontSizes[(i+1)%len(fontSizes)]
}

// Prev returns the preceding selectable size, wrapping around.
func (s FontSize) Prev() FontSize {
	i := s.index()
	if i < 0 {
		return DefaultFontSize
	}
	return fontSizes[(i+len(fontSizes)-1)%len(fontSizes)]
}

func (s FontSize) String() string {
	return strconv.Itoa(int(s))
}

// ParseFontSize coerces a selector value such as "20" into a FontSize.
// Only integer coercion is performed; membership in the set is not enforced.
func ParseFontSize(v string) (FontSize, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("parse font size %q: %w", v, err)
	}
	return FontSize(n), nil
}

// Note is a single note record.
type Note struct {
	Page     int      `json:"page" yaml:"page"`
	Heading  string   `json:"heading" yaml:"heading"`
	Content  string   `json:"content" yaml:"content"`
	Color    string   `json:"color" yaml:"color"`
	FontSize FontSize `json:"fontSize" yaml:"fontSize"`
}

// HeadingFor returns the heading assigned to a note created on page.
func HeadingFor(page int) string {
	return fmt.Sprintf("Page %d Notes", page)
}
