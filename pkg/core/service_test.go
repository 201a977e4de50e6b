package core_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/aretw0/notes/pkg/core"
)

// MockStore implements core.Store in memory.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockStore struct {
	notes   []core.Note
	loadErr error
	saves   int
}

func (m *MockStore) Load(ctx context.Context) ([]core.Note, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]core.Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

func (m *MockStore) Save(ctx context.Context, notes []core.Note) error {
	m.notes = make([]core.Note, len(notes))
	copy(m.notes, notes)
	m.saves++
	return nil
}

// fixedClock returns a clock advancing one minute per call starting at start.
func fixedClock(start time.Time) func() time.Time {
	t := start.Add(-time.Minute)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newService(store core.Store) *core.Service {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	return core.NewService(store, core.WithClock(fixedClock(start)))
}

func TestService_CRUD(t *testing.T) {
	store := &MockStore{}
	service := newService(store)
	ctx := context.TODO()

	// 1. Add
	note, err := service.Add(ctx, "title1", "body1")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if note.ID != 1 {
		t.Errorf("expected id 1, got %d", note.ID)
	}
	if note.Timestamp != "2024-01-01 10:00:00" {
		t.Errorf("unexpected timestamp %q", note.Timestamp)
	}

	// 2. Get
	got, err := service.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != note {
		t.Errorf("expected %+v, got %+v", note, got)
	}

	// 3. Edit
	edited, err := service.Edit(ctx, 1, "title1b", "body1b")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if edited.ID != 1 || edited.Title != "title1b" || edited.Body != "body1b" {
		t.Errorf("unexpected edit result %+v", edited)
	}
	if edited.Timestamp != "2024-01-01 10:01:00" {
		t.Errorf("expected refreshed timestamp, got %q", edited.Timestamp)
	}

	// 4. Delete
	if err := service.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := service.Get(ctx, 1); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
	if store.saves != 3 {
		t.Errorf("expected 3 saves, got %d", store.saves)
	}
}

func TestService_ListKeepsInsertionOrder(t *testing.T) {
	service := newService(&MockStore{})
	ctx := context.TODO()

	titles := []string{"c", "a", "b", "d"}
	for _, title := range titles {
		if _, err := service.Add(ctx, title, ""); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	notes, err := service.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notes) != len(titles) {
		t.Fatalf("expected %d notes, got %d", len(titles), len(notes))
	}
	for i, n := range notes {
		if n.Title != titles[i] {
			t.Errorf("position %d: expected %q, got %q", i, titles[i], n.Title)
		}
		if i > 0 && n.ID <= notes[i-1].ID {
			t.Errorf("ids not strictly increasing: %d after %d", n.ID, notes[i-1].ID)
		}
	}
}

func TestService_DeleteKeepsOthersInOrder(t *testing.T) {
	service := newService(&MockStore{})
	ctx := context.TODO()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := service.Add(ctx, title, ""); err != nil {
			t.Fatal(err)
		}
	}

	if err := service.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	notes, _ := service.List(ctx)
	if len(notes) != 2 || notes[0].Title != "one" || notes[1].Title != "three" {
		t.Errorf("unexpected notes after delete: %+v", notes)
	}
}

func TestService_NotFound(t *testing.T) {
	store := &MockStore{}
	service := newService(store)
	ctx := context.TODO()

	if _, err := service.Get(ctx, 42); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if _, err := service.Edit(ctx, 42, "t", "b"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Edit: expected ErrNotFound, got %v", err)
	}
	if err := service.Delete(ctx, 42); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("store should not be written, got %d saves", store.saves)
	}
}

// Ids are derived from the collection size, so a delete followed by an add
// hands out an id that was already used.
func TestService_IDReuseAfterDelete(t *testing.T) {
	service := newService(&MockStore{})
	ctx := context.TODO()

	first, _ := service.Add(ctx, "A", "B")
	if first.ID != 1 {
		t.Fatalf("expected id 1, got %d", first.ID)
	}
	if err := service.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	second, _ := service.Add(ctx, "C", "D")
	if second.ID != 1 {
		t.Errorf("expected reused id 1, got %d", second.ID)
	}
}

func TestService_FilterByDate(t *testing.T) {
	store := &MockStore{notes: []core.Note{
		{ID: 1, Title: "first", Timestamp: "2024-01-01 10:00:00"},
		{ID: 2, Title: "second", Timestamp: "2024-01-02 09:00:00"},
		{ID: 3, Title: "broken", Timestamp: "yesterday"},
		{ID: 4, Title: "late", Timestamp: "2024-01-01 23:59:59"},
	}}
	service := newService(store)
	ctx := context.TODO()

	t.Run("Matches Date Component", func(t *testing.T) {
		notes, err := service.FilterByDate(ctx, "2024-01-01")
		if err != nil {
			t.Fatalf("FilterByDate failed: %v", err)
		}
		if len(notes) != 2 || notes[0].ID != 1 || notes[1].ID != 4 {
			t.Errorf("unexpected result: %+v", notes)
		}
	})

	t.Run("No Matches", func(t *testing.T) {
		notes, err := service.FilterByDate(ctx, "1999-12-31")
		if err != nil {
			t.Fatalf("FilterByDate failed: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("expected no notes, got %+v", notes)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		for _, input := range []string{"not-a-date", "2024-13-01", "01-01-2024", ""} {
			_, err := service.FilterByDate(ctx, input)
			if !errors.Is(err, core.ErrInvalidDate) {
				t.Errorf("%q: expected ErrInvalidDate, got %v", input, err)
			}
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Errorf("%q: expected ErrInvalidInput, got %v", input, err)
			}
		}
	})
}

func TestService_Match(t *testing.T) {
	store := &MockStore{notes: []core.Note{
		{ID: 1, Title: "meeting monday"},
		{ID: 2, Title: "groceries"},
		{ID: 3, Title: "meeting friday"},
	}}
	service := newService(store)

	notes, err := service.Match(context.TODO(), "meeting*")
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if len(notes) != 2 || notes[0].ID != 1 || notes[1].ID != 3 {
		t.Errorf("unexpected matches: %+v", notes)
	}

	if _, err := service.Match(context.TODO(), "[unclosed"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for bad pattern, got %v", err)
	}
}

func TestService_MatchTitleWithSlash(t *testing.T) {
	store := &MockStore{notes: []core.Note{
		{ID: 1, Title: "meeting 1/2"},
		{ID: 2, Title: "meeting"},
		{ID: 3, Title: "todo 3/4"},
	}}
	service := newService(store)

	tests := []struct {
		pattern string
		want    []int
	}{
		{"meeting*", []int{1, 2}},
		{"*/*", []int{1, 3}},
		{"todo 3?4", []int{3}},
		{"meeting 1/2", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			notes, err := service.Match(context.TODO(), tt.pattern)
			if err != nil {
				t.Fatalf("Match failed: %v", err)
			}
			var got []int
			for _, n := range notes {
				got = append(got, n.ID)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestService_CorruptStatePropagates(t *testing.T) {
	store := &MockStore{loadErr: core.ErrCorruptState}
	service := newService(store)
	ctx := context.TODO()

	if _, err := service.Add(ctx, "t", "b"); !errors.Is(err, core.ErrCorruptState) {
		t.Errorf("Add: expected ErrCorruptState, got %v", err)
	}
	if _, err := service.List(ctx); !errors.Is(err, core.ErrCorruptState) {
		t.Errorf("List: expected ErrCorruptState, got %v", err)
	}
	if store.saves != 0 {
		t.Errorf("corrupt state must not be overwritten")
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := newService(&MockStore{})

	_, err := service.Watch(context.TODO())
	if err == nil {
		t.Fatal("expected error for non-watchable store")
	}
	if err.Error() != "store does not support watching" {
		t.Errorf("unexpected error msg: %v", err)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: " 12 ", want: 12},
		{input: "-3", want: -3},
		{input: "abc", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := core.ParseID(tt.input)
		if tt.wantErr {
			if !errors.Is(err, core.ErrInvalidInput) {
				t.Errorf("ParseID(%q): expected ErrInvalidInput, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseID(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
