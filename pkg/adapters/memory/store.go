// Package memory provides a core.Store kept in a byte buffer.
//
// The collection is encoded exactly as the file store encodes it, so tests
// exercise the same parse and corrupt-state paths without touching disk.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// Store implements core.Store in memory.
type Store struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	serializer fs.Serializer
	readOnly   bool
	saves      int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{serializer: fs.NewJSONSerializer()}
}

// NewWithContent creates a store seeded with raw persisted bytes.
func NewWithContent(data []byte) *Store {
	s := New()
	s.buf.Write(data)
	return s
}

// SetReadOnly toggles rejection of saves.
func (s *Store) SetReadOnly(readOnly bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readOnly = readOnly
}

func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serializer.Parse(s.buf.Bytes())
}

func (s *Store) Save(ctx context.Context, notes []core.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return core.ErrReadOnly
	}

	data, err := s.serializer.Serialize(notes)
	if err != nil {
		return err
	}
	s.buf.Reset()
	s.buf.Write(data)
	s.saves++
	return nil
}

// Bytes returns a copy of the encoded collection.
func (s *Store) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.buf.Bytes())
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Bytes    int  `json:"bytes"`
	Saves    int  `json:"saves"`
	ReadOnly bool `json:"read_only"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StoreState{Bytes: s.buf.Len(), Saves: s.saves, ReadOnly: s.readOnly}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
