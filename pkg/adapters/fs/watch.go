package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/notes/pkg/core"
)

// Watch reports changes made to the store file by other processes.
// The parent directory is watched because saves replace the file by rename.
// The returned channel is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan core.Event, error) {
	target, err := filepath.Abs(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := mapEvent(target, event)
				if !ok {
					continue
				}
				s.logger.Debug("store changed", "op", event.Op.String(), "path", event.Name)
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.logger.Error("watcher error", "error", err)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("watcher panic", "error", err)
	}))

	return events, nil
}

// mapEvent translates a raw filesystem event on the store directory.
// Events for other files, including temp files of atomic saves, are dropped.
func mapEvent(target string, event fsnotify.Event) (core.Event, bool) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		t = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      t,
		Path:      target,
		Timestamp: time.Now().Unix(),
	}, true
}
