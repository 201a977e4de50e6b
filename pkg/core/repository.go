package core

import "context"

// Store defines the contract for persisting the note collection.
// The collection is always read and written as a whole; implementations
// must never leave partially written state behind.
type Store interface {
	// Load returns every persisted note in stored order.
	// A store with no state yet yields an empty collection.
	// Unparseable state is reported as ErrCorruptState.
	Load(ctx context.Context) ([]Note, error)

	// Save replaces the persisted state with notes.
	Save(ctx context.Context, notes []Note) error
}

// Watchable is implemented by stores able to report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
