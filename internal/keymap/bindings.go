package keymap

// Contexts, one per focus region of the notepad screen.
const (
	ContextGlobal = "global"
	ContextTheme  = "notepad-theme"
	ContextEditor = "notepad-editor"
	ContextColor  = "notepad-color"
	ContextSize   = "notepad-size"
	ContextButton = "notepad-button"
	ContextList   = "notepad-list"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings, active even while typing
		{Key: "ctrl+c", Command: "quit", Context: ContextGlobal},
		{Key: "ctrl+t", Command: "toggle-theme", Context: ContextGlobal},
		{Key: "ctrl+g", Command: "generate-pdf", Context: ContextGlobal},
		{Key: "ctrl+s", Command: "submit", Context: ContextGlobal},
		{Key: "tab", Command: "focus-next", Context: ContextGlobal},
		{Key: "shift+tab", Command: "focus-prev", Context: ContextGlobal},
		{Key: "esc", Command: "cancel-edit", Context: ContextGlobal},

		// Theme toggle button
		{Key: "enter", Command: "toggle-theme", Context: ContextTheme},
		{Key: " ", Command: "toggle-theme", Context: ContextTheme},
		{Key: "q", Command: "quit", Context: ContextTheme},

		// Font size selector
		{Key: "left", Command: "size-prev", Context: ContextSize},
		{Key: "h", Command: "size-prev", Context: ContextSize},
		{Key: "right", Command: "size-next", Context: ContextSize},
		{Key: "l", Command: "size-next", Context: ContextSize},
		{Key: "enter", Command: "size-next", Context: ContextSize},
		{Key: "q", Command: "quit", Context: ContextSize},

		// Add / Generate PDF buttons
		{Key: "enter", Command: "press", Context: ContextButton},
		{Key: " ", Command: "press", Context: ContextButton},
		{Key: "q", Command: "quit", Context: ContextButton},

		// Note list
		{Key: "j", Command: "cursor-down", Context: ContextList},
		{Key: "down", Command: "cursor-down", Context: ContextList},
		{Key: "k", Command: "cursor-up", Context: ContextList},
		{Key: "up", Command: "cursor-up", Context: ContextList},
		{Key: "g", Command: "cursor-top", Context: ContextList},
		{Key: "G", Command: "cursor-bottom", Context: ContextList},
		{Key: "e", Command: "edit-note", Context: ContextList},
		{Key: "enter", Command: "edit-note", Context: ContextList},
		{Key: "d", Command: "delete-note", Context: ContextList},
		{Key: "delete", Command: "delete-note", Context: ContextList},
		{Key: "y", Command: "yank-note", Context: ContextList},
		{Key: "q", Command: "quit", Context: ContextList},

		// Color field
		{Key: "enter", Command: "submit", Context: ContextColor},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
