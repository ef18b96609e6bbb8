package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/notepad/internal/config"
	"github.com/marcus/notepad/internal/export"
	"github.com/marcus/notepad/internal/keymap"
	"github.com/marcus/notepad/internal/notes"
	"github.com/marcus/notepad/internal/styles"
)

const editorHeight = 5

// focusRegion is a focusable part of the screen, in tab order.
type focusRegion int

const (
	focusTheme focusRegion = iota
	focusContent
	focusColor
	focusSize
	focusAdd
	focusExport
	focusList
	focusCount
)

// context returns the keymap context for the region.
func (f focusRegion) context() string {
	switch f {
	case focusTheme:
		return keymap.ContextTheme
	case focusContent:
		return keymap.ContextEditor
	case focusColor:
		return keymap.ContextColor
	case focusSize:
		return keymap.ContextSize
	case focusAdd, focusExport:
		return keymap.ContextButton
	case focusList:
		return keymap.ContextList
	}
	return keymap.ContextGlobal
}

// noteList caches wrapped card bodies. Model is copied on every update, so
// the cache lives behind a pointer that the store subscription can mark
// dirty.
type noteList struct {
	dirty  bool
	width  int
	bodies []string
}

func (l *noteList) onEvent(notes.Event) { l.dirty = true }

func (l *noteList) invalidate() { l.dirty = true }

// Model is the root Bubble Tea model for the notepad screen.
type Model struct {
	// Configuration
	cfg    *config.Config
	logger *slog.Logger

	// Keymap
	keymap *keymap.Registry

	// Notes and export
	store       *notes.Store
	engine      *export.Engine
	list        *noteList
	unsubscribe func()

	// Editor panel
	focus    focusRegion
	content  textarea.Model
	color    textinput.Model
	fontSize notes.FontSize

	// Note list selection
	cursor int

	// UI state
	width, height int
	showFooter    bool
	exporting     bool
	ready         bool

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Error handling
	lastError error
}

// New creates a new application model. A nil store, engine or logger is
// replaced with a fresh default.
func New(store *notes.Store, km *keymap.Registry, cfg *config.Config, engine *export.Engine, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if store == nil {
		store = notes.NewStore(logger)
	}
	if engine == nil {
		engine = export.New(export.WithFileName(cfg.Export.FileName), export.WithLogger(logger))
	}
	if km == nil {
		km = keymap.NewRegistry()
		keymap.RegisterDefaults(km)
	}

	styles.SetDarkMode(cfg.UI.DarkMode)

	ta := textarea.New()
	ta.Placeholder = "Enter note"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetHeight(editorHeight)

	ti := textinput.New()
	ti.Placeholder = "#000000"
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 16
	ti.SetValue(cfg.Editor.DefaultColor)

	list := &noteList{dirty: true}
	m := Model{
		cfg:         cfg,
		logger:      logger,
		keymap:      km,
		store:       store,
		engine:      engine,
		list:        list,
		unsubscribe: store.Subscribe(list.onEvent),
		content:     ta,
		color:       ti,
		fontSize:    cfg.Editor.DefaultFontSize,
		showFooter:  cfg.UI.ShowFooter,
	}
	m.applyInputStyles()
	m.setFocus(focusContent)
	return m
}

// Init starts cursor blinking and the toast clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, tickCmd())
}

// Store returns the note store backing the model.
func (m Model) Store() *notes.Store { return m.store }

// setFocus moves focus to f, focusing or blurring the text widgets.
func (m *Model) setFocus(f focusRegion) tea.Cmd {
	m.focus = f
	m.content.Blur()
	m.color.Blur()
	switch f {
	case focusContent:
		return m.content.Focus()
	case focusColor:
		return m.color.Focus()
	}
	return nil
}

// applyInputStyles re-skins the text widgets after a theme change.
func (m *Model) applyInputStyles() {
	field := styles.TextArea
	m.content.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       field,
		CursorLineNumber: styles.Muted,
		EndOfBuffer:      field,
		LineNumber:       styles.Muted,
		Placeholder:      styles.Muted.Background(styles.TextAreaBg),
		Prompt:           field,
		Text:             field,
	}
	m.content.BlurredStyle = m.content.FocusedStyle

	m.color.TextStyle = field
	m.color.PlaceholderStyle = styles.Muted.Background(styles.TextAreaBg)
}

// resizeInputs fits the text widgets to the window width.
func (m *Model) resizeInputs() {
	w := m.width - 4 // panel border and padding
	if w < 10 {
		w = 10
	}
	m.content.SetWidth(w)
}

// clampCursor keeps the list cursor on an existing note.
func (m *Model) clampCursor() {
	if n := m.store.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}
