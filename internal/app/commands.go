package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notepad/internal/export"
	"github.com/marcus/notepad/internal/notes"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick.
	TickMsg time.Time

	// ExportDoneMsg reports the outcome of a PDF export.
	ExportDoneMsg struct {
		Path   string
		Result export.Result
		Err    error
	}

	// ErrorMsg represents an error condition.
	ErrorMsg struct {
		Err error
	}
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// exportCmd renders snapshot into dir off the update loop. snapshot must
// not be shared with the store.
func exportCmd(e *export.Engine, dir string, snapshot []notes.Note) tea.Cmd {
	return func() tea.Msg {
		path, res, err := e.Save(dir, snapshot)
		return ExportDoneMsg{Path: path, Result: res, Err: err}
	}
}

// ReportError returns a command to report an error.
func ReportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
