package notes

import (
	"log/slog"
	"time"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Service is a public alias for the core service.
type Service = core.Service

// Store is a public alias for the storage port.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring the service.
type Option = platform.Option

// Backend names.
const (
	BackendFS     = platform.BackendFS
	BackendBolt   = platform.BackendBolt
	BackendMemory = platform.BackendMemory
)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithBackend selects the storage backend by name.
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithReadOnly rejects every save with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithClock replaces the time source used to stamp notes.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithSerializer registers a file format for the fs backend.
func WithSerializer(ext string, s fs.Serializer) Option {
	return platform.WithSerializer(ext, s)
}

// --- Factory ---

// New creates a new notes Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Open creates the store only.
func Open(path string, opts ...Option) (core.Store, error) {
	return platform.Open(path, opts...)
}
