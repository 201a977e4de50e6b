package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Service handles the business logic for notes.
// Every operation loads the whole collection, acts on it in memory and,
// for mutations, writes the whole collection back.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces the time source used to stamp notes.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new Service.
func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() Store {
	return s.store
}

// Add creates a note stamped with the current time and appends it to the collection.
func (s *Service) Add(ctx context.Context, title, body string) (Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	note := Note{
		ID:        NextID(notes),
		Title:     title,
		Body:      body,
		Timestamp: FormatTimestamp(s.now()),
	}
	notes = append(notes, note)

	if err := s.store.Save(ctx, notes); err != nil {
		return Note{}, fmt.Errorf("failed to save note %d: %w", note.ID, err)
	}

	s.logger.Debug("note added", "id", note.ID, "count", len(notes))
	return note, nil
}

// List returns all notes in stored order.
func (s *Service) List(ctx context.Context) ([]Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("notes listed", "count", len(notes))
	return notes, nil
}

// Get returns the first note with the given ID.
func (s *Service) Get(ctx context.Context, id int) (Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return Note{}, err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return notes[i], nil
}

// Edit replaces the title and body of a note and refreshes its timestamp.
// The ID is preserved.
func (s *Service) Edit(ctx context.Context, id int, title, body string) (Note, error) {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return Note{}, err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}

	notes[i] = Note{
		ID:        id,
		Title:     title,
		Body:      body,
		Timestamp: FormatTimestamp(s.now()),
	}

	if err := s.store.Save(ctx, notes); err != nil {
		return Note{}, fmt.Errorf("failed to save note %d: %w", id, err)
	}

	s.logger.Debug("note edited", "id", id)
	return notes[i], nil
}

// Delete removes the first note with the given ID.
func (s *Service) Delete(ctx context.Context, id int) error {
	notes, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(notes, id)
	if i < 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}

	notes = append(notes[:i], notes[i+1:]...)

	if err := s.store.Save(ctx, notes); err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}

	s.logger.Debug("note deleted", "id", id, "count", len(notes))
	return nil
}

// FilterByDate returns the notes whose timestamp falls on the given day.
// The date is validated before the store is read.
func (s *Service) FilterByDate(ctx context.Context, date string) ([]Note, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	notes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Note
	for _, n := range notes {
		if _, err := n.Time(); err != nil {
			s.logger.Warn("skipping note with malformed timestamp", "id", n.ID, "timestamp", n.Timestamp)
			continue
		}
		if n.OnDate(day) {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// slashStandIn replaces '/' in titles and patterns before matching, so that
// wildcards are not stopped by doublestar's path separator.
const slashStandIn = "\x00"

// Match returns the notes whose title matches a glob pattern (e.g. "meeting*").
// Titles are free text: '*' and '?' also match '/'.
func (s *Service) Match(ctx context.Context, pattern string) ([]Note, error) {
	pattern = strings.ReplaceAll(pattern, "/", slashStandIn)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", ErrInvalidInput, pattern)
	}

	notes, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var matched []Note
	for _, n := range notes {
		ok, err := doublestar.Match(pattern, strings.ReplaceAll(n.Title, "/", slashStandIn))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if ok {
			matched = append(matched, n)
		}
	}
	return matched, nil
}

// Watch observes changes in the store if supported.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}

// Close releases the underlying store if it holds resources.
func (s *Service) Close() error {
	if c, ok := s.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ParseID parses a user supplied note number.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a note number", ErrInvalidInput, raw)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD day in the local time zone.
func ParseDate(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w (got %q)", ErrInvalidDate, raw)
	}
	return day, nil
}

func indexOf(notes []Note, id int) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
