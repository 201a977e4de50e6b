package notes_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/notes"
)

// Example_basic demonstrates how to open a notes file, add notes and filter them by day.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	svc, err := notes.New(filepath.Join(tmpDir, "notes.json"),
		notes.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if _, err := svc.Add(ctx, "Groceries", "milk, bread"); err != nil {
		log.Fatal(err)
	}
	now = now.Add(24 * time.Hour)
	if _, err := svc.Add(ctx, "Call Bob", "about the trip"); err != nil {
		log.Fatal(err)
	}

	found, err := svc.FilterByDate(ctx, "2024-01-02")
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range found {
		fmt.Printf("%d. %s (%s)\n", n.ID, n.Title, n.Timestamp)
	}
	// Output:
	// 2. Call Bob (2024-01-02 10:00:00)
}
