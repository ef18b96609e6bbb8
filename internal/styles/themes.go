package styles

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// hexColorRegex validates hex color codes (#RRGGBB)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	// Surface colors
	Background   string `json:"background"`
	Text         string `json:"text"`
	ToggleButton string `json:"toggleButton"`
	TextArea     string `json:"textArea"`
	Card         string `json:"card"`
	Border       string `json:"border"`

	// Terminal-only accents
	Focus     string `json:"focus"`     // border of the focused region
	TextMuted string `json:"textMuted"` // hints, labels
	Success   string `json:"success"`
	Error     string `json:"error"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Background:   "#ffffff",
			Text:         "#000000",
			ToggleButton: "#dddddd",
			TextArea:     "#ffffff",
			Card:         "#f9f9f9",
			Border:       "#cccccc",

			Focus:     "#3B82F6",
			TextMuted: "#6B7280",
			Success:   "#10B981",
			Error:     "#EF4444",
		},
	}

	DarkTheme = Theme{
		Name:        "dark",
		DisplayName: "Dark",
		Colors: ColorPalette{
			Background:   "#333333",
			Text:         "#ffffff",
			ToggleButton: "#555555",
			TextArea:     "#555555",
			Card:         "#444444",
			Border:       "#cccccc",

			Focus:     "#60A5FA",
			TextMuted: "#9CA3AF",
			Success:   "#10B981",
			Error:     "#EF4444",
		},
	}
)

var darkMode bool

// IsDarkMode reports whether the dark palette is active.
func IsDarkMode() bool { return darkMode }

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	if darkMode {
		return DarkTheme
	}
	return LightTheme
}

// SetDarkMode selects the light or dark palette and rebuilds every style.
func SetDarkMode(dark bool) {
	darkMode = dark
	ApplyThemeColors(CurrentTheme())
}

// ToggleDarkMode flips the theme and returns the new value.
func ToggleDarkMode() bool {
	SetDarkMode(!darkMode)
	return darkMode
}

// IsValidHexColor checks if a string is a valid #RRGGBB color.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// ApplyThemeColors updates all style package variables from a theme.
//
// Not safe for concurrent use. Call it from the Bubble Tea update loop or
// before the program starts.
func ApplyThemeColors(theme Theme) {
	c := theme.Colors

	Background = lipgloss.Color(c.Background)
	TextPrimary = lipgloss.Color(c.Text)
	ToggleButtonBg = lipgloss.Color(c.ToggleButton)
	TextAreaBg = lipgloss.Color(c.TextArea)
	CardBg = lipgloss.Color(c.Card)
	BorderNormal = lipgloss.Color(c.Border)

	BorderActive = lipgloss.Color(c.Focus)
	TextMuted = lipgloss.Color(c.TextMuted)
	Success = lipgloss.Color(c.Success)
	Error = lipgloss.Color(c.Error)

	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors
func rebuildStyles() {
	// Panel styles
	App = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Background)

	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		BorderBackground(Background).
		Padding(0, 1)

	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		BorderBackground(Background).
		Padding(0, 1)

	TextArea = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(TextAreaBg)

	Card = lipgloss.NewStyle().
		Background(CardBg).
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderNormal).
		BorderBackground(Background).
		Padding(0, 1)

	CardSelected = Card.
		BorderForeground(BorderActive)

	// Text styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(CardBg).
		Padding(0, 1)

	Badge = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(ToggleButtonBg).
		Padding(0, 1)

	// Buttons
	Button = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(ToggleButtonBg).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(ToggleButtonBg).
		Padding(0, 2).
		Bold(true).
		Underline(true)

	ButtonDanger = lipgloss.NewStyle().
		Foreground(Error).
		Background(ToggleButtonBg).
		Padding(0, 2)

	// Footer and toasts
	Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Background)

	ToastSuccess = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(Success).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(Error).
		Padding(0, 1)
}

func init() {
	ApplyThemeColors(LightTheme)
}
