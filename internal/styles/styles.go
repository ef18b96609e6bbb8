package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - light theme until ApplyThemeColors runs
var (
	// Surface colors
	Background     lipgloss.Color
	TextPrimary    lipgloss.Color
	ToggleButtonBg lipgloss.Color
	TextAreaBg     lipgloss.Color
	CardBg         lipgloss.Color
	BorderNormal   lipgloss.Color

	// Accents
	BorderActive lipgloss.Color
	TextMuted    lipgloss.Color
	Success      lipgloss.Color
	Error        lipgloss.Color
)

// Panel styles
var (
	// App fills the whole screen with the theme background.
	App lipgloss.Style

	// Active panel with highlighted border
	PanelActive lipgloss.Style

	// Inactive panel with subtle border
	PanelInactive lipgloss.Style

	TextArea     lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
)

// Text styles
var (
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	KeyHint lipgloss.Style
	Badge   lipgloss.Style
)

// Button styles
var (
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonDanger  lipgloss.Style
)

// Footer and toasts
var (
	Footer       lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
)

// Panel returns the active or inactive panel style.
func Panel(focused bool) lipgloss.Style {
	if focused {
		return PanelActive
	}
	return PanelInactive
}

// RenderButton renders a button label, highlighted when focused.
func RenderButton(label string, focused bool) string {
	if focused {
		return ButtonFocused.Render(label)
	}
	return Button.Render(label)
}
