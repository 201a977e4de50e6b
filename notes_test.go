package notes_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/pkg/adapters/fs"
)

func TestOpen_CustomSerializer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	store, err := notes.Open(path, notes.WithSerializer(".txt", fs.NewYAMLSerializer()))
	require.NoError(t, err)

	fsStore, ok := store.(*fs.Store)
	require.True(t, ok, "fs backend should return *fs.Store, got %T", store)
	assert.Equal(t, "yaml", fsStore.Format())
	assert.Equal(t, "yaml", fsStore.State().(fs.StoreState).Format)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []notes.Note{{ID: 1, Title: "A", Body: "B", Timestamp: "2024-01-01 10:00:00"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: A")
}

func TestOpen_UnknownExtension(t *testing.T) {
	_, err := notes.Open(filepath.Join(t.TempDir(), "notes.txt"))
	assert.Error(t, err)
}
