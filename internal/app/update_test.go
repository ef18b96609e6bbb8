package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notepad/internal/config"
	"github.com/marcus/notepad/internal/keymap"
	appmsg "github.com/marcus/notepad/internal/msg"
	"github.com/marcus/notepad/internal/notes"
	"github.com/marcus/notepad/internal/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Export.Dir = t.TempDir()
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	m := New(nil, km, cfg, nil, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	return updated.(Model)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func addNote(t *testing.T, m Model, content string) Model {
	t.Helper()
	if m.focus != focusContent {
		m.setFocus(focusContent)
	}
	m, _ = send(t, m, runes(content), key(tea.KeyCtrlS))
	return m
}

func TestFocusRegionContext(t *testing.T) {
	tests := []struct {
		focus focusRegion
		want  string
	}{
		{focusTheme, keymap.ContextTheme},
		{focusContent, keymap.ContextEditor},
		{focusColor, keymap.ContextColor},
		{focusSize, keymap.ContextSize},
		{focusAdd, keymap.ContextButton},
		{focusExport, keymap.ContextButton},
		{focusList, keymap.ContextList},
	}
	for _, tt := range tests {
		if got := tt.focus.context(); got != tt.want {
			t.Errorf("focus %d context = %q, want %q", tt.focus, got, tt.want)
		}
	}
}

func TestSubmit_AddsNoteAndClearsEditor(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, runes("hello world"), key(tea.KeyCtrlS))

	list := m.Store().Notes()
	if len(list) != 1 {
		t.Fatalf("got %d notes, want 1", len(list))
	}
	if list[0].Content != "hello world" || list[0].Heading != "Page 1 Notes" {
		t.Errorf("note = %+v", list[0])
	}
	if list[0].Color != "#000000" || list[0].FontSize != notes.FontSize16 {
		t.Errorf("defaults not applied: %+v", list[0])
	}
	if m.content.Value() != "" {
		t.Errorf("editor not cleared: %q", m.content.Value())
	}
	if cmd == nil {
		t.Fatal("expected toast command")
	}
	if toast, ok := cmd().(appmsg.ToastMsg); !ok || toast.Message != "Added Page 1 Notes" {
		t.Errorf("toast = %+v", toast)
	}
}

func TestSubmit_KeepsColorAndSize(t *testing.T) {
	m := newTestModel(t)
	m.color.SetValue("#ff0000")
	m.fontSize = notes.FontSize24

	m = addNote(t, m, "a")
	m = addNote(t, m, "b")

	for _, n := range m.Store().Notes() {
		if n.Color != "#ff0000" || n.FontSize != notes.FontSize24 {
			t.Errorf("note %q = %s/%d, want #ff0000/24", n.Content, n.Color, n.FontSize)
		}
	}
}

func TestTypingQInEditorDoesNotQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runes("q"))
	if m.content.Value() != "q" {
		t.Errorf("content = %q, want q", m.content.Value())
	}
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t)
	want := []focusRegion{focusColor, focusSize, focusAdd, focusExport, focusList, focusTheme, focusContent}
	for _, f := range want {
		m, _ = send(t, m, key(tea.KeyTab))
		if m.focus != f {
			t.Fatalf("focus = %d, want %d", m.focus, f)
		}
	}
	m, _ = send(t, m, key(tea.KeyShiftTab))
	if m.focus != focusTheme {
		t.Errorf("shift+tab focus = %d, want theme", m.focus)
	}
}

func TestFontSizeSelector(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusSize)

	m, _ = send(t, m, key(tea.KeyRight))
	if m.fontSize != notes.FontSize20 {
		t.Errorf("right: size = %d, want 20", m.fontSize)
	}
	m, _ = send(t, m, key(tea.KeyLeft), key(tea.KeyLeft))
	if m.fontSize != notes.FontSize12 {
		t.Errorf("left x2: size = %d, want 12", m.fontSize)
	}
}

func TestEditFlow(t *testing.T) {
	m := newTestModel(t)
	m = addNote(t, m, "first")
	m.fontSize = notes.FontSize20
	m.color.SetValue("blue")
	m = addNote(t, m, "second")

	m.setFocus(focusList)
	m, _ = send(t, m, runes("k"), runes("e"))

	idx, ok := m.Store().Editing()
	if !ok || idx != 0 {
		t.Fatalf("Editing() = (%d, %v), want (0, true)", idx, ok)
	}
	if m.focus != focusContent {
		t.Errorf("focus = %d, want content", m.focus)
	}
	if m.content.Value() != "first" || m.color.Value() != "#000000" || m.fontSize != notes.FontSize16 {
		t.Errorf("editor not loaded: %q %q %d", m.content.Value(), m.color.Value(), m.fontSize)
	}
	if !strings.Contains(m.View(), "Update Note") {
		t.Error("button should read Update Note while editing")
	}

	m, _ = send(t, m, runes(" edited"), key(tea.KeyCtrlS))

	list := m.Store().Notes()
	if len(list) != 2 {
		t.Fatalf("update added a note: len = %d", len(list))
	}
	if list[0].Content != "first edited" || list[0].Heading != "Page 1 Notes" {
		t.Errorf("note 0 = %+v", list[0])
	}
	if _, ok := m.Store().Editing(); ok {
		t.Error("submit should leave edit mode")
	}
	if !strings.Contains(m.View(), "Add Note") {
		t.Error("button should read Add Note after update")
	}
}

func TestEscCancelsEdit(t *testing.T) {
	m := newTestModel(t)
	m = addNote(t, m, "first")
	m.setFocus(focusList)
	m, _ = send(t, m, runes("e"), key(tea.KeyEsc))

	if _, ok := m.Store().Editing(); ok {
		t.Error("esc should cancel edit mode")
	}
	if m.content.Value() != "" {
		t.Errorf("editor not cleared: %q", m.content.Value())
	}
	if n, _ := m.Store().Get(0); n.Content != "first" {
		t.Errorf("cancel changed the note: %+v", n)
	}
}

func TestDeleteFromList(t *testing.T) {
	m := newTestModel(t)
	m = addNote(t, m, "a")
	m = addNote(t, m, "b")

	m.setFocus(focusList)
	m, _ = send(t, m, runes("G"), runes("d"))

	if m.Store().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Store().Len())
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.cursor)
	}
	if m.Store().NextPage() != 2 {
		t.Errorf("NextPage() = %d, want 2", m.Store().NextPage())
	}

	m, _ = send(t, m, runes("d"), runes("d"))
	if m.Store().Len() != 0 || m.Store().NextPage() != 1 {
		t.Errorf("after deleting all: len=%d next=%d", m.Store().Len(), m.Store().NextPage())
	}
}

func TestToggleTheme(t *testing.T) {
	defer styles.SetDarkMode(false)
	m := newTestModel(t)

	if !strings.Contains(m.View(), "Dark Mode") {
		t.Error("light theme button should read Dark Mode")
	}
	m, _ = send(t, m, key(tea.KeyCtrlT))
	if !styles.IsDarkMode() {
		t.Fatal("ctrl+t should enable dark mode")
	}
	if !strings.Contains(m.View(), "Light Mode") {
		t.Error("dark theme button should read Light Mode")
	}
	m, _ = send(t, m, key(tea.KeyCtrlT))
	if styles.IsDarkMode() {
		t.Error("second toggle should restore light mode")
	}
}

func TestStoreEventsInvalidateCardCache(t *testing.T) {
	m := newTestModel(t)
	m = addNote(t, m, "a")
	_ = m.View()
	if m.list.dirty {
		t.Fatal("View should rebuild the cache")
	}

	m.Store().Add("external", "#000000", notes.FontSize16)
	if !m.list.dirty {
		t.Error("store event should mark the cache dirty")
	}
	if !strings.Contains(m.View(), "external") {
		t.Error("view missing note added outside the update loop")
	}
}

func TestGeneratePDF(t *testing.T) {
	m := newTestModel(t)
	m = addNote(t, m, "one")
	m = addNote(t, m, "two")

	m, cmd := send(t, m, key(tea.KeyCtrlG))
	if !m.exporting {
		t.Error("exporting flag not set")
	}
	if cmd == nil {
		t.Fatal("expected export command")
	}

	done, ok := cmd().(ExportDoneMsg)
	if !ok {
		t.Fatalf("got %T, want ExportDoneMsg", cmd())
	}
	if done.Err != nil {
		t.Fatalf("export failed: %v", done.Err)
	}
	if done.Path != filepath.Join(m.cfg.Export.Dir, "notes.pdf") {
		t.Errorf("path = %q", done.Path)
	}
	if done.Result.Pages != 2 {
		t.Errorf("pages = %d, want 2", done.Result.Pages)
	}
	if _, err := os.Stat(done.Path); err != nil {
		t.Errorf("notes.pdf not written: %v", err)
	}

	m, _ = send(t, m, done)
	if m.exporting {
		t.Error("exporting flag not cleared")
	}
	if m.statusIsError || !strings.Contains(m.statusMsg, "2 pages") {
		t.Errorf("status = %q (error=%v)", m.statusMsg, m.statusIsError)
	}
}

func TestGeneratePDF_ZeroNotes(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, key(tea.KeyCtrlG))
	done := cmd().(ExportDoneMsg)
	if done.Err != nil {
		t.Fatalf("empty export failed: %v", done.Err)
	}
	m, _ = send(t, m, done)
	if m.statusIsError {
		t.Errorf("unexpected error toast: %q", m.statusMsg)
	}
}

func TestExportButtonPress(t *testing.T) {
	m := newTestModel(t)
	m.setFocus(focusExport)
	m, cmd := send(t, m, key(tea.KeyEnter))
	if !m.exporting || cmd == nil {
		t.Error("enter on Generate PDF should start an export")
	}
}

func TestErrorMsgShowsErrorToast(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, ErrorMsg{Err: notes.ErrIndexOutOfRange})
	if !m.statusIsError || m.lastError == nil {
		t.Errorf("status = %q error=%v", m.statusMsg, m.statusIsError)
	}
}
