package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/marcus/notepad/internal/colorutil"
	"github.com/marcus/notepad/internal/keymap"
	"github.com/marcus/notepad/internal/notes"
	"github.com/marcus/notepad/internal/styles"
)

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()
	editor := m.renderEditor()
	controls := m.renderControls()
	buttons := m.renderButtons()

	var footer string
	if m.showFooter {
		footer = m.renderFooter()
	}

	top := lipgloss.JoinVertical(lipgloss.Left, header, editor, controls, buttons)
	listHeight := m.height - lipgloss.Height(top)
	if footer != "" {
		listHeight -= lipgloss.Height(footer)
	}
	list := m.renderList(listHeight)

	sections := []string{top, list}
	if footer != "" {
		sections = append(sections, footer)
	}
	return styles.App.
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader renders the theme toggle and the title.
func (m Model) renderHeader() string {
	label := "Dark Mode"
	if styles.IsDarkMode() {
		label = "Light Mode"
	}
	toggle := styles.RenderButton(label, m.focus == focusTheme)
	title := styles.Title.Render("My Notepad")
	return lipgloss.JoinHorizontal(lipgloss.Center, toggle, "  ", title) + "\n"
}

// renderEditor renders the content text area.
func (m Model) renderEditor() string {
	label := "Note"
	if idx, ok := m.store.Editing(); ok {
		if n, err := m.store.Get(idx); err == nil {
			label = "Editing " + n.Heading
		}
	}
	panel := styles.Panel(m.focus == focusContent).Width(m.width - 2)
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Muted.Render(label),
		panel.Render(m.content.View()),
	)
}

// renderControls renders the color field and font size selector.
func (m Model) renderControls() string {
	swatch := styles.Muted.Render("??")
	if hex := colorutil.FormatHex(m.color.Value(), ""); hex != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
	}
	colorBox := styles.Panel(m.focus == focusColor).Render(m.color.View() + " " + swatch)
	sizeBox := styles.Panel(m.focus == focusSize).Render("◀ " + m.fontSize.String() + " ▶")

	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Muted.Render("Note Color: "), colorBox,
		"   ",
		styles.Muted.Render("Font Size: "), sizeBox,
	)
}

// renderButtons renders the Add Note and Generate PDF buttons.
func (m Model) renderButtons() string {
	add := "Add Note"
	if _, ok := m.store.Editing(); ok {
		add = "Update Note"
	}
	gen := "Generate PDF"
	if m.exporting {
		gen = "Generating..."
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.RenderButton(add, m.focus == focusAdd),
		" ",
		styles.RenderButton(gen, m.focus == focusExport),
	) + "\n"
}

// renderList renders the note cards, scrolled so the cursor stays visible.
func (m Model) renderList(height int) string {
	title := styles.Title.Render("Notes")
	if height < 2 {
		return title
	}

	list := m.store.Notes()
	if len(list) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, styles.Muted.Render("No notes yet"))
	}

	cardWidth := m.width - 2
	bodies := m.list.ensure(list, cardWidth-4)
	editIdx, editing := m.store.Editing()

	cards := make([]string, len(list))
	for i, n := range list {
		selected := m.focus == focusList && i == m.cursor
		cards[i] = m.renderCard(n, bodies[i], cardWidth, selected, editing && i == editIdx)
	}

	cursor := min(m.cursor, len(cards)-1)
	avail := height - 1
	start := 0
	for start < cursor && stackHeight(cards[start:cursor+1]) > avail {
		start++
	}

	var b strings.Builder
	b.WriteString(title)
	used := 0
	for _, card := range cards[start:] {
		h := lipgloss.Height(card)
		if used > 0 && used+h > avail {
			break
		}
		b.WriteString("\n")
		b.WriteString(card)
		used += h
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

func stackHeight(cards []string) int {
	h := 0
	for _, c := range cards {
		h += lipgloss.Height(c)
	}
	return h
}

// renderCard renders one note: heading with size badge, colored body and
// the edit/delete actions.
func (m Model) renderCard(n notes.Note, body string, width int, selected, editing bool) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	inner := width - 4

	badge := styles.Badge.Render(n.FontSize.String() + "pt")
	heading := n.Heading
	if editing {
		heading += " (editing)"
	}
	heading = ansi.Truncate(heading, inner-lipgloss.Width(badge)-1, "…")
	top := styles.Title.Background(styles.CardBg).Render(heading) + " " + badge

	actions := styles.Muted.Background(styles.CardBg).Render(
		"[" + m.firstKey("edit-note") + "] Edit  [" + m.firstKey("delete-note") + "] Delete")

	rows := []string{top}
	if body != "" {
		rows = append(rows, body)
	}
	rows = append(rows, actions)
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) firstKey(command string) string {
	if keys := m.keymap.KeysFor(command, keymap.ContextList); len(keys) > 0 {
		return keys[0]
	}
	return "?"
}

// ensure returns one wrapped, styled body per note, rebuilding the cache
// after store changes, theme toggles or resizes.
func (l *noteList) ensure(list []notes.Note, width int) []string {
	if !l.dirty && l.width == width && len(l.bodies) == len(list) {
		return l.bodies
	}
	l.bodies = make([]string, len(list))
	for i, n := range list {
		l.bodies[i] = renderBody(n, width)
	}
	l.width = width
	l.dirty = false
	return l.bodies
}

// renderBody wraps content to width and paints it in the note's color.
// Terminals have one glyph size, so font size maps to emphasis.
func renderBody(n notes.Note, width int) string {
	if n.Content == "" {
		return ""
	}
	if width < 1 {
		width = 1
	}
	wrapped := wrap.String(wordwrap.String(n.Content, width), width)

	hex := colorutil.FormatHex(n.Color, "#000000")
	return fontSizeStyle(n.FontSize).
		Foreground(lipgloss.Color(hex)).
		Background(styles.CardBg).
		Render(wrapped)
}

func fontSizeStyle(size notes.FontSize) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch size {
	case notes.FontSize12:
		return s.Faint(true)
	case notes.FontSize20:
		return s.Bold(true)
	case notes.FontSize24:
		return s.Bold(true).Underline(true)
	}
	return s
}

// footerHint pairs a command with its footer label.
type footerHint struct {
	command string
	desc    string
}

var contextHints = map[string][]footerHint{
	keymap.ContextTheme:  {{"toggle-theme", "theme"}},
	keymap.ContextSize:   {{"size-prev", "smaller"}, {"size-next", "larger"}},
	keymap.ContextButton: {{"press", "press"}},
	keymap.ContextColor:  {{"submit", "add"}},
	keymap.ContextList: {
		{"cursor-down", "down"}, {"cursor-up", "up"},
		{"edit-note", "edit"}, {"delete-note", "delete"}, {"yank-note", "copy"},
	},
}

var globalHints = []footerHint{
	{"submit", "add"},
	{"generate-pdf", "pdf"},
	{"toggle-theme", "theme"},
	{"focus-next", "next"},
	{"cancel-edit", "cancel"},
	{"quit", "quit"},
}

// renderFooter renders key hints on the left and the toast on the right.
func (m Model) renderFooter() string {
	var status string
	if m.statusMsg != "" {
		toastStyle := styles.ToastSuccess
		if m.statusIsError {
			toastStyle = styles.ToastError
		}
		status = toastStyle.Render(m.statusMsg)
	}

	ctx := m.focus.context()
	var parts []string
	seen := make(map[string]bool)
	for _, h := range append(append([]footerHint{}, contextHints[ctx]...), globalHints...) {
		if seen[h.command] {
			continue
		}
		seen[h.command] = true
		b := m.keymap.HelpBinding(h.command, ctx, h.desc)
		if !b.Enabled() {
			continue
		}
		parts = append(parts, styles.KeyHint.Render(b.Help().Key)+" "+styles.Muted.Render(b.Help().Desc))
	}
	hints := strings.Join(parts, "  ")

	avail := m.width - lipgloss.Width(status) - 2
	if avail < 0 {
		avail = 0
	}
	hints = ansi.Truncate(hints, avail, "…")

	spacing := m.width - lipgloss.Width(hints) - lipgloss.Width(status)
	if spacing < 0 {
		spacing = 0
	}
	return styles.Footer.Width(m.width).Render(hints + strings.Repeat(" ", spacing) + status)
}
