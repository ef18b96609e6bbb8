package colorutil

import (
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// hexColorRegex accepts #rgb and #rrggbb.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// IsValidHex checks if a string is a #rgb or #rrggbb color code.
func IsValidHex(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// Resolve parses a note color: a hex code or a CSS/SVG color name such as
// "red" or "steelblue". ok is false when the value is neither.
func Resolve(value string) (c colorful.Color, ok bool) {
	v := strings.TrimSpace(value)
	if IsValidHex(v) {
		c, err := colorful.Hex(strings.ToLower(v))
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	if named, found := colornames.Map[strings.ToLower(v)]; found {
		c, _ := colorful.MakeColor(named)
		return c, true
	}
	return colorful.Color{}, false
}

// RGB255 returns the 0-255 channels of a note color. Unresolvable values
// yield black.
func RGB255(value string) (r, g, b int) {
	c, ok := Resolve(value)
	if !ok {
		return 0, 0, 0
	}
	r8, g8, b8 := c.Clamped().RGB255()
	return int(r8), int(g8), int(b8)
}

// FormatHex normalizes a note color to lowercase #rrggbb. Unresolvable
// values yield fallback.
func FormatHex(value, fallback string) string {
	c, ok := Resolve(value)
	if !ok {
		return fallback
	}
	return c.Clamped().Hex()
}
