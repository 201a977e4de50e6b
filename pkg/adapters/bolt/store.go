// Package bolt stores the note collection in a bbolt database.
//
// The whole collection lives under a single key so a save is one
// transaction and the store keeps whole-collection semantics.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/introspection"
	bolt "go.etcd.io/bbolt"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

var (
	bucketName    = []byte("notes")
	collectionKey = []byte("collection")
)

// Config holds the configuration for the bbolt store.
type Config struct {
	Path     string
	Logger   *slog.Logger
	ReadOnly bool
	Timeout  time.Duration // how long to wait for the database file lock
}

// Store implements core.Store using bbolt.
type Store struct {
	Path       string
	db         *bolt.DB
	serializer fs.Serializer
	logger     *slog.Logger
	readOnly   bool
}

// Open opens the database at config.Path, creating it unless the store is
// read-only. A read-only store takes a shared lock.
func Open(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, errors.New("store path cannot be empty")
	}
	if config.Timeout == 0 {
		config.Timeout = time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{
		Path:       config.Path,
		serializer: fs.NewJSONSerializer(),
		logger:     logger,
		readOnly:   config.ReadOnly,
	}

	if config.ReadOnly {
		// A missing database reads as an empty collection and is not created.
		if _, err := os.Stat(config.Path); errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
	} else if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(config.Path, 0600, &bolt.Options{
		Timeout:  config.Timeout,
		ReadOnly: config.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}
	store.db = db

	return store, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	if s.db == nil {
		return []core.Note{}, nil
	}

	var notes []core.Note

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			notes = []core.Note{}
			return nil
		}

		var err error
		notes, err = s.serializer.Parse(b.Get(collectionKey))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}

	return notes, nil
}

func (s *Store) Save(ctx context.Context, notes []core.Note) error {
	if s.readOnly {
		return core.ErrReadOnly
	}

	data, err := s.serializer.Serialize(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put(collectionKey, data)
	})
	if err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}

	s.logger.Debug("store saved", "path", s.Path, "count", len(notes))
	return nil
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Path     string `json:"path"`
	ReadOnly bool   `json:"read_only"`
	TxCount  int    `json:"tx_count"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	state := StoreState{
		Path:     s.Path,
		ReadOnly: s.readOnly,
	}
	if s.db != nil {
		state.TxCount = s.db.Stats().TxN
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "bolt"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
