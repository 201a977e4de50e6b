package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/adapters/memory"
	"github.com/aretw0/notes/pkg/core"
)

func TestStore_RoundTrip(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	in := []core.Note{
		{ID: 1, Title: "A", Body: "B", Timestamp: "2024-01-01 10:00:00"},
		{ID: 2, Title: "Ünïcode", Body: "", Timestamp: "2024-01-02 09:00:00"},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.Contains(t, string(store.Bytes()), "Ünïcode")
}

func TestStore_Corrupt(t *testing.T) {
	store := memory.NewWithContent([]byte("not json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, core.ErrCorruptState)
}

func TestStore_ReadOnly(t *testing.T) {
	store := memory.New()
	store.SetReadOnly(true)

	err := store.Save(context.Background(), []core.Note{{ID: 1}})
	assert.ErrorIs(t, err, core.ErrReadOnly)

	state := store.State().(memory.StoreState)
	assert.Equal(t, 0, state.Saves)
	assert.True(t, state.ReadOnly)
}
