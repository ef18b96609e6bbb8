package notes

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ActionType represents the type of mutation performed on the store.
type ActionType string

const (
	ActionCreate     ActionType = "create"
	ActionUpdate     ActionType = "update"
	ActionDelete     ActionType = "delete"
	ActionBeginEdit  ActionType = "begin-edit"
	ActionCancelEdit ActionType = "cancel-edit"
)

var (
	// ErrIndexOutOfRange is returned when an index does not address a note.
	ErrIndexOutOfRange = errors.New("note index out of range")
	// ErrEditInProgress is returned by Add while a note is being edited.
	ErrEditInProgress = errors.New("a note is being edited")
)

// Event describes a completed mutation. Index is the position the action
// applied to (the removed position for deletes, -1 for cancel-edit).
type Event struct {
	Action ActionType
	Index  int
	Note   Note
}

type subscriber struct {
	id int
	fn func(Event)
}

// Store holds the ordered note list, the shared page counter and the
// single edit slot. It is owned by one goroutine and is not safe for
// concurrent use.
type Store struct {
	notes    []Note
	nextPage int

	editing   int
	isEditing bool

	subscribers []subscriber
	nextSubID   int

	logger *slog.Logger
}

// NewStore creates an empty store. A nil logger discards output.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		nextPage: 1,
		logger:   logger,
	}
}

// Subscribe registers fn to be called after every successful mutation,
// in subscription order. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) publish(ev Event) {
	for _, sub := range s.subscribers {
		sub.fn(ev)
	}
}

// Notes returns a copy of the notes in insertion order.
func (s *Store) Notes() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// Get returns the note at index.
func (s *Store) Get(index int) (Note, error) {
	if err := s.checkIndex(index); err != nil {
		return Note{}, err
	}
	return s.notes[index], nil
}

// NextPage returns the page number the next created note will receive.
func (s *Store) NextPage() int { return s.nextPage }

// Editing returns the index of the note in edit mode, if any.
func (s *Store) Editing() (int, bool) {
	return s.editing, s.isEditing
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.notes) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.notes))
	}
	return nil
}

// Add appends a new note on the current page and advances the page counter.
// Empty content is allowed.
func (s *Store) Add(content, color string, size FontSize) (Note, error) {
	if s.isEditing {
		return Note{}, ErrEditInProgress
	}

	note := Note{
		Page:     s.nextPage,
		Heading:  HeadingFor(s.nextPage),
		Content:  content,
		Color:    color,
		FontSize: size,
	}
	s.notes = append(s.notes, note)
	s.nextPage++

	s.logger.Debug("notes: created", "page", note.Page, "index", len(s.notes)-1)
	s.publish(Event{Action: ActionCreate, Index: len(s.notes) - 1, Note: note})
	return note, nil
}

// Update replaces the content, color and font size of the note at index
// and leaves edit mode. Page and heading keep their creation values.
func (s *Store) Update(index int, content, color string, size FontSize) (Note, error) {
	if err := s.checkIndex(index); err != nil {
		return Note{}, err
	}

	note := &s.notes[index]
	note.Content = content
	note.Color = color
	note.FontSize = size
	s.isEditing = false
	s.editing = 0

	s.logger.Debug("notes: updated", "page", note.Page, "index", index)
	s.publish(Event{Action: ActionUpdate, Index: index, Note: *note})
	return *note, nil
}

// Remove deletes the note at index and decrements the page counter. The
// counter returns to 1 once the store is empty.
func (s *Store) Remove(index int) (Note, error) {
	if err := s.checkIndex(index); err != nil {
		return Note{}, err
	}

	removed := s.notes[index]
	s.notes = append(s.notes[:index], s.notes[index+1:]...)

	s.nextPage--
	if len(s.notes) == 0 {
		s.nextPage = 1
	}

	if s.isEditing {
		switch {
		case s.editing == index:
			s.isEditing = false
			s.editing = 0
		case s.editing > index:
			s.editing--
		}
	}

	s.logger.Debug("notes: deleted", "page", removed.Page, "index", index, "nextPage", s.nextPage)
	s.publish(Event{Action: ActionDelete, Index: index, Note: removed})
	return removed, nil
}

// BeginEdit makes the note at index the edit target and returns it so the
// caller can load its fields into the editor.
func (s *Store) BeginEdit(index int) (Note, error) {
	if err := s.checkIndex(index); err != nil {
		return Note{}, err
	}

	s.editing = index
	s.isEditing = true

	note := s.notes[index]
	s.publish(Event{Action: ActionBeginEdit, Index: index, Note: note})
	return note, nil
}

// CancelEdit leaves edit mode without changing any note.
func (s *Store) CancelEdit() {
	if !s.isEditing {
		return
	}
	s.isEditing = false
	s.editing = 0
	s.publish(Event{Action: ActionCancelEdit, Index: -1})
}

// Submit applies the editor's working fields: the edit target is updated
// when a note is being edited, otherwise a new note is added.
func (s *Store) Submit(content, color string, size FontSize) (Note, ActionType, error) {
	if idx, ok := s.Editing(); ok {
		note, err := s.Update(idx, content, color, size)
		return note, ActionUpdate, err
	}
	note, err := s.Add(content, color, size)
	return note, ActionCreate, err
}
