package fs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/notes/pkg/core"
)

// DefaultPerm is the file mode used for the store file.
const DefaultPerm os.FileMode = 0644

// Config holds the configuration for the file-backed store.
type Config struct {
	Path        string
	Logger      *slog.Logger
	ReadOnly    bool
	Perm        os.FileMode
	Serializers map[string]Serializer // keyed by extension; nil means DefaultSerializers()
}

// Store implements core.Store on top of a single file.
// Every save rewrites the whole file atomically.
type Store struct {
	Path       string
	config     Config
	serializer Serializer
	logger     *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// NewStore creates a file store. The encoding is chosen from the file
// extension; a path without extension is treated as JSON.
func NewStore(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, errors.New("store path cannot be empty")
	}
	if config.Perm == 0 {
		config.Perm = DefaultPerm
	}
	if config.Serializers == nil {
		config.Serializers = DefaultSerializers()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ext := strings.ToLower(filepath.Ext(config.Path))
	if ext == "" {
		ext = ".json"
	}
	serializer, ok := config.Serializers[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported store format %q", ext)
	}

	return &Store{
		Path:       config.Path,
		config:     config,
		serializer: serializer,
		logger:     logger,
	}, nil
}

// Load reads the whole collection. A missing file yields an empty collection.
func (s *Store) Load(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []core.Note{}, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	notes, err := s.serializer.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return notes, nil
}

// Save overwrites the file with notes.
func (s *Store) Save(ctx context.Context, notes []core.Note) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := s.serializer.Serialize(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	if err := writeFileAtomic(s.Path, data, s.config.Perm); err != nil {
		return err
	}

	s.recordSave()
	s.logger.Debug("store saved", "path", s.Path, "count", len(notes), "bytes", len(data))
	return nil
}

// Format returns the encoding used by the store.
func (s *Store) Format() string {
	return s.serializer.Format()
}

func (s *Store) recordSave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastSave = &now
}

var _ core.Store = (*Store)(nil)
