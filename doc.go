// Package notes is the composition root of the notes tool.
//
// It connects the core note logic (pkg/core) with a storage adapter
// (pkg/adapters/...) chosen through functional options.
//
// The whole collection is loaded at the start of every operation and written
// back in full after every change, so the persisted file is always a complete,
// readable JSON (or YAML) document.
//
// Usage:
//
//	svc, err := notes.New("notes.json",
//		notes.WithLogger(logger),
//	)
//
//	note, err := svc.Add(ctx, "Groceries", "milk, bread")
package notes
