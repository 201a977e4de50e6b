package shell

import (
	"context"
	"errors"

	"github.com/aretw0/notes/pkg/core"
)

// errExit is returned by the exit handler to stop the loop.
var errExit = errors.New("exit requested")

// Handler runs one dispatcher command.
type Handler interface {
	Run(ctx context.Context, s *Session) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, s *Session) error

func (f HandlerFunc) Run(ctx context.Context, s *Session) error {
	return f(ctx, s)
}

// DefaultHandlers returns the handler table for every command kind.
func DefaultHandlers() map[Kind]Handler {
	return map[Kind]Handler{
		KindAdd:    HandlerFunc(addNote),
		KindList:   HandlerFunc(listNotes),
		KindView:   HandlerFunc(viewNote),
		KindEdit:   HandlerFunc(editNote),
		KindDelete: HandlerFunc(deleteNote),
		KindFilter: HandlerFunc(filterNotes),
		KindExit:   HandlerFunc(exit),
	}
}

func addNote(ctx context.Context, s *Session) error {
	title, err := s.Prompt("Enter note title: ")
	if err != nil {
		return err
	}
	body, err := s.Prompt("Enter note body: ")
	if err != nil {
		return err
	}

	if _, err := s.Service.Add(ctx, title, body); err != nil {
		return err
	}
	s.Println(msgSaved)
	return nil
}

func listNotes(ctx context.Context, s *Session) error {
	notes, err := s.Service.List(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		s.Println(msgEmpty)
		return nil
	}
	for _, n := range notes {
		s.Println(FormatSummary(n))
	}
	return nil
}

func viewNote(ctx context.Context, s *Session) error {
	id, err := s.promptID("Enter the number of the note to view: ")
	if err != nil {
		return err
	}

	note, err := s.Service.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Println(FormatDetail(note))
	return nil
}

// editNote checks the note exists before asking for the new content.
func editNote(ctx context.Context, s *Session) error {
	id, err := s.promptID("Enter the number of the note to edit: ")
	if err != nil {
		return err
	}
	if _, err := s.Service.Get(ctx, id); err != nil {
		return err
	}

	title, err := s.Prompt("Enter new note title: ")
	if err != nil {
		return err
	}
	body, err := s.Prompt("Enter new note body: ")
	if err != nil {
		return err
	}

	if _, err := s.Service.Edit(ctx, id, title, body); err != nil {
		return err
	}
	s.Println(msgEdited)
	return nil
}

func deleteNote(ctx context.Context, s *Session) error {
	id, err := s.promptID("Enter the number of the note to delete: ")
	if err != nil {
		return err
	}

	if err := s.Service.Delete(ctx, id); err != nil {
		return err
	}
	s.Println(msgDeleted)
	return nil
}

func filterNotes(ctx context.Context, s *Session) error {
	date, err := s.Prompt("Enter a date (YYYY-MM-DD) to filter notes: ")
	if err != nil {
		return err
	}

	notes, err := s.Service.FilterByDate(ctx, date)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		s.Println(msgNoneForDate)
		return nil
	}
	for _, n := range notes {
		s.Println(FormatSummary(n))
	}
	return nil
}

func exit(ctx context.Context, s *Session) error {
	return errExit
}

func (s *Session) promptID(label string) (int, error) {
	raw, err := s.Prompt(label)
	if err != nil {
		return 0, err
	}
	return core.ParseID(raw)
}
