package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
)

// Backend names accepted by WithBackend.
const (
	BackendFS     = "fs"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// options holds the internal configuration for the notes service.
type options struct {
	store       core.Store
	logger      *slog.Logger
	backend     string
	readOnly    bool
	clock       func() time.Time
	serializers map[string]fs.Serializer
}

// Option defines a functional option for configuring the notes service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend:     BackendFS,
		serializers: fs.DefaultSerializers(),
	}
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom store (e.g. a mock).
// If provided, the backend and path are ignored.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithBackend selects the storage backend by name ("fs", "bolt" or "memory").
// Defaults to "fs".
func WithBackend(name string) Option {
	return func(o *options) {
		if name != "" {
			o.backend = name
		}
	}
}

// WithReadOnly makes every save fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithClock replaces the time source used to stamp notes.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithSerializer registers a serializer for a file extension of the fs backend.
func WithSerializer(ext string, s fs.Serializer) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}
