package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	appmsg "github.com/marcus/notepad/internal/msg"
	"github.com/marcus/notepad/internal/notes"
	"github.com/marcus/notepad/internal/styles"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeInputs()
		m.list.invalidate()
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case appmsg.ToastMsg:
		m.ShowToast(msg.Message, msg.Duration, msg.IsError)
		return m, nil

	case ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.lastError = msg.Err
			m.logger.Error("notepad: export failed", "error", msg.Err)
			m.ShowToast("PDF export failed: "+msg.Err.Error(), 5*time.Second, true)
			return m, nil
		}
		m.logger.Info("notepad: exported", "path", msg.Path, "pages", msg.Result.Pages)
		m.ShowToast(fmt.Sprintf("Saved %s (%s)", msg.Path, pluralPages(msg.Result.Pages)), 3*time.Second, false)
		return m, nil

	case ErrorMsg:
		m.lastError = msg.Err
		m.logger.Error("notepad: error", "error", msg.Err)
		m.ShowToast("Error: "+msg.Err.Error(), 5*time.Second, true)
		return m, nil
	}

	// Cursor blink and other widget messages
	return m.updateInputs(msg)
}

// handleKeyMsg processes keyboard input. Bound keys run commands; anything
// else goes to the focused text widget.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmdID, ok := m.keymap.Lookup(msg.String(), m.focus.context()); ok {
		return m.runCommand(cmdID)
	}
	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused text widget.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusContent:
		m.content, cmd = m.content.Update(msg)
	case focusColor:
		m.color, cmd = m.color.Update(msg)
	}
	return m, cmd
}

// runCommand executes a keymap command.
func (m Model) runCommand(id string) (tea.Model, tea.Cmd) {
	switch id {
	case "quit":
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return m, tea.Quit
	case "toggle-theme":
		m.toggleTheme()
		return m, nil
	case "generate-pdf":
		return m, m.generatePDF()
	case "submit":
		return m, m.submit()
	case "cancel-edit":
		return m, m.cancelEdit()
	case "focus-next":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "focus-prev":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "size-next":
		m.fontSize = m.fontSize.Next()
		return m, nil
	case "size-prev":
		m.fontSize = m.fontSize.Prev()
		return m, nil
	case "press":
		if m.focus == focusExport {
			return m, m.generatePDF()
		}
		return m, m.submit()
	case "cursor-down":
		m.cursor++
		m.clampCursor()
		return m, nil
	case "cursor-up":
		m.cursor--
		m.clampCursor()
		return m, nil
	case "cursor-top":
		m.cursor = 0
		return m, nil
	case "cursor-bottom":
		m.cursor = m.store.Len() - 1
		m.clampCursor()
		return m, nil
	case "edit-note":
		return m, m.editSelected()
	case "delete-note":
		return m, m.deleteSelected()
	case "yank-note":
		return m, m.yankSelected()
	}
	m.logger.Debug("notepad: unknown command", "command", id)
	return m, nil
}

// submit adds a note, or updates the note under edit.
func (m *Model) submit() tea.Cmd {
	color := strings.TrimSpace(m.color.Value())
	if color == "" {
		color = m.cfg.Editor.DefaultColor
		m.color.SetValue(color)
	}

	note, action, err := m.store.Submit(m.content.Value(), color, m.fontSize)
	if err != nil {
		return ReportError(fmt.Errorf("save note: %w", err))
	}
	m.content.Reset()

	verb := "Updated"
	if action == notes.ActionCreate {
		verb = "Added"
		m.cursor = m.store.Len() - 1
	}
	return appmsg.ShowToast(verb+" "+note.Heading, 2*time.Second)
}

// cancelEdit leaves edit mode and clears the editor.
func (m *Model) cancelEdit() tea.Cmd {
	if _, ok := m.store.Editing(); !ok {
		return nil
	}
	m.store.CancelEdit()
	m.content.Reset()
	return appmsg.ShowToast("Edit cancelled", 2*time.Second)
}

// editSelected loads the selected note into the editor.
func (m *Model) editSelected() tea.Cmd {
	if m.store.Len() == 0 {
		return nil
	}
	n, err := m.store.BeginEdit(m.cursor)
	if err != nil {
		return ReportError(fmt.Errorf("edit note: %w", err))
	}
	m.content.SetValue(n.Content)
	m.color.SetValue(n.Color)
	m.fontSize = n.FontSize
	return m.setFocus(focusContent)
}

// deleteSelected removes the selected note.
func (m *Model) deleteSelected() tea.Cmd {
	if m.store.Len() == 0 {
		return nil
	}
	n, err := m.store.Remove(m.cursor)
	if err != nil {
		if errors.Is(err, notes.ErrIndexOutOfRange) {
			m.clampCursor()
		}
		return ReportError(fmt.Errorf("delete note: %w", err))
	}
	m.clampCursor()
	return appmsg.ShowToast("Deleted "+n.Heading, 2*time.Second)
}

// yankSelected copies the selected note's content to the system clipboard.
func (m *Model) yankSelected() tea.Cmd {
	n, err := m.store.Get(m.cursor)
	if err != nil {
		return nil
	}
	if err := clipboard.WriteAll(n.Content); err != nil {
		return appmsg.ShowError("Copy failed: "+err.Error(), 2*time.Second)
	}
	return appmsg.ShowToast("Copied note content", 2*time.Second)
}

// toggleTheme flips the palette and restyles everything that caches colors.
func (m *Model) toggleTheme() {
	dark := styles.ToggleDarkMode()
	m.applyInputStyles()
	m.list.invalidate()
	m.logger.Debug("notepad: theme toggled", "dark", dark)
}

// generatePDF starts an export of the current notes.
func (m *Model) generatePDF() tea.Cmd {
	if m.exporting {
		return appmsg.ShowToast("Export already running", 2*time.Second)
	}
	m.exporting = true
	return exportCmd(m.engine, m.cfg.Export.Dir, m.store.Notes())
}

func pluralPages(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}
