package platform

import (
	"fmt"

	"github.com/aretw0/notes/pkg/adapters/bolt"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/adapters/memory"
	"github.com/aretw0/notes/pkg/core"
)

// Open builds the store selected by the options.
// The URI argument is backend-specific (a file path for "fs" and "bolt",
// ignored for "memory").
func Open(uri string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return open(uri, o)
}

func open(uri string, o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	switch o.backend {
	case BackendFS:
		return fs.NewStore(fs.Config{
			Path:        uri,
			Logger:      o.logger,
			ReadOnly:    o.readOnly,
			Serializers: o.serializers,
		})
	case BackendBolt:
		return bolt.Open(bolt.Config{
			Path:     uri,
			Logger:   o.logger,
			ReadOnly: o.readOnly,
		})
	case BackendMemory:
		store := memory.New()
		store.SetReadOnly(o.readOnly)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", o.backend)
	}
}

// New creates a notes service on top of the configured store.
//
//	svc, err := notes.New("notes.json", notes.WithBackend("fs"))
func New(uri string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store, err := open(uri, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(store,
		core.WithServiceLogger(o.logger),
		core.WithClock(o.clock),
	), nil
}
