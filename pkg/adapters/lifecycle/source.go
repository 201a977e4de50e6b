// Package lifecycle exposes store change notifications as a lifecycle.Source.
package lifecycle

import (
	"context"
	"fmt"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notes/pkg/core"
)

type storeSource struct {
	store core.Watchable
	out   chan lifecycle.Event
}

// NewSource creates a lifecycle.Source emitting the change events of a watchable store.
// Watching starts when Start is called; Events is closed once ctx ends.
func NewSource(store core.Watchable) lifecycle.Source {
	return &storeSource{
		store: store,
		out:   make(chan lifecycle.Event),
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *storeSource) Start(ctx context.Context) error {
	events, err := s.store.Watch(ctx)
	if err != nil {
		close(s.out)
		return fmt.Errorf("failed to watch store: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
